// Package toc implements the two-stage resolution of declared table-of-contents
// entries against a document's structured rendering and its plain-text
// extraction. Stage A matches an entry's title to one text block on its target
// page; Stage B relocates the matched heading to a single plain-text line.
package toc

import (
	"github.com/jackzampolin/tocmark/internal/structure"
)

// MatchTier identifies the match strategy that succeeded for an entry.
type MatchTier string

const (
	// TierExactSingle: exactly one block's normalized text equals the title.
	TierExactSingle MatchTier = "exact_single"
	// TierExactLargestFont: several exact blocks; largest font size won.
	TierExactLargestFont MatchTier = "exact_largest_font"
	// TierProximityFallback: containing blocks only; the one nearest the link
	// target coordinate won.
	TierProximityFallback MatchTier = "proximity_fallback"
	// TierNone: no block matched or no usable disambiguation signal.
	TierNone MatchTier = "none"
)

// Status is the terminal outcome for an entry after both stages.
type Status string

const (
	// StatusSuccess: the heading was located as a plain-text line.
	StatusSuccess Status = "success"
	// StatusNotInText: Stage A found no heading block on the target page.
	StatusNotInText Status = "toc_item_not_in_text"
	// StatusUnmatchedInText: Stage A matched but no plain-text line carries
	// the title.
	StatusUnmatchedInText Status = "toc_item_unmatched_in_text"
)

// LinkKind discriminates an entry's declared link destination.
type LinkKind string

const (
	LinkGoto  LinkKind = "goto"
	LinkNamed LinkKind = "named"
	LinkNone  LinkKind = "none"
)

// Link is an entry's declared destination. Y is the page-relative target
// coordinate for goto links; nil when the destination carries no point.
type Link struct {
	Kind LinkKind `json:"kind" yaml:"kind"`
	Y    *float64 `json:"y,omitempty" yaml:"y,omitempty"`
}

// Entry is one declared ToC heading, progressively enriched by the two
// resolution stages. Level, Title, PageNum and Link never change after
// construction; each enrichment field is written by exactly one stage,
// at most once.
type Entry struct {
	Level   int    `json:"level" yaml:"level"`
	Title   string `json:"title" yaml:"title"`
	PageNum int    `json:"page_num" yaml:"page_num"`
	Link    Link   `json:"link" yaml:"link"`

	// Stage A enrichment. Empty context string means no non-empty
	// neighboring block existed.
	Resolved      bool      `json:"resolved" yaml:"resolved"`
	MatchTier     MatchTier `json:"match_tier" yaml:"match_tier"`
	MatchedText   string    `json:"matched_text,omitempty" yaml:"matched_text,omitempty"`
	ContextBefore string    `json:"context_before,omitempty" yaml:"context_before,omitempty"`
	ContextAfter  string    `json:"context_after,omitempty" yaml:"context_after,omitempty"`

	// Stage B enrichment. LineIndex is page-relative; nil until located.
	Located   bool   `json:"located" yaml:"located"`
	LineIndex *int   `json:"line_index,omitempty" yaml:"line_index,omitempty"`
	Status    Status `json:"status" yaml:"status"`
}

// FromOutline constructs the ordered entry list from a dump's outline
// declarations. This is the single construction point; everything after this
// only enriches.
func FromOutline(items []structure.OutlineItem) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		link := Link{Kind: LinkNone}
		switch item.Dest.Kind {
		case structure.DestGoto:
			link.Kind = LinkGoto
			if item.Dest.To != nil {
				y := item.Dest.To.Y
				link.Y = &y
			}
		case structure.DestNamed:
			link.Kind = LinkNamed
		}

		entries = append(entries, Entry{
			Level:   item.Level,
			Title:   item.Title,
			PageNum: item.Page,
			Link:    link,
		})
	}
	return entries
}
