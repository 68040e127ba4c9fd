package toc

import (
	"math"
	"strings"
)

// Resolve runs Stage A for one entry against its target page's block index:
// classify every block against the normalized title, then select by
// escalating tier. Exact matches are disambiguated by font size (a heading
// is set larger than a cross-reference to it); containing matches need the
// link's goto coordinate as a spatial signal, and without one the entry is
// left unresolved. Resolve never fails: tier "none" is an outcome, not an
// error.
func Resolve(e *Entry, blocks []TextBlock) {
	needle := Normalize(e.Title)

	var exact, containing []int
	for i, b := range blocks {
		if b.NormText == "" {
			continue
		}
		switch {
		case b.NormText == needle:
			exact = append(exact, i)
		case strings.Contains(b.NormText, needle):
			containing = append(containing, i)
		}
	}

	if len(exact) > 0 {
		best := exact[0]
		for _, i := range exact[1:] {
			// strict > keeps the earliest block on font-size ties
			if blocks[i].MaxFontSize > blocks[best].MaxFontSize {
				best = i
			}
		}
		tier := TierExactLargestFont
		if len(exact) == 1 {
			tier = TierExactSingle
		}
		markResolved(e, blocks, best, tier)
		return
	}

	if len(containing) > 0 {
		// Without a target coordinate there is no principled way to pick
		// among partial matches; leave the entry unresolved.
		if e.Link.Kind != LinkGoto || e.Link.Y == nil {
			e.MatchTier = TierNone
			return
		}
		targetY := *e.Link.Y

		best := containing[0]
		for _, i := range containing[1:] {
			if math.Abs(blocks[i].TopY-targetY) < math.Abs(blocks[best].TopY-targetY) {
				best = i
			}
		}
		markResolved(e, blocks, best, TierProximityFallback)
		return
	}

	e.MatchTier = TierNone
}

// markResolved records the Stage A outcome and captures disambiguating
// context: the nearest preceding and following blocks with non-empty text.
func markResolved(e *Entry, blocks []TextBlock, matched int, tier MatchTier) {
	e.Resolved = true
	e.MatchTier = tier
	e.MatchedText = blocks[matched].Text

	for i := matched - 1; i >= 0; i-- {
		if strings.TrimSpace(blocks[i].Text) != "" {
			e.ContextBefore = blocks[i].Text
			break
		}
	}
	for i := matched + 1; i < len(blocks); i++ {
		if strings.TrimSpace(blocks[i].Text) != "" {
			e.ContextAfter = blocks[i].Text
			break
		}
	}
}
