package toc

import (
	"testing"

	"github.com/jackzampolin/tocmark/internal/structure"
)

func TestFromOutline(t *testing.T) {
	items := []structure.OutlineItem{
		{Level: 1, Title: "Part One", Page: 3,
			Dest: structure.Dest{Kind: structure.DestGoto, To: &structure.DestPoint{X: 72, Y: 140.5}}},
		{Level: 2, Title: "Chapter 1", Page: 5,
			Dest: structure.Dest{Kind: structure.DestGoto}},
		{Level: 2, Title: "Chapter 2", Page: 9,
			Dest: structure.Dest{Kind: structure.DestNamed}},
		{Level: 1, Title: "Appendix", Page: 90},
	}

	entries := FromOutline(items)

	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Level != 1 || first.Title != "Part One" || first.PageNum != 3 {
		t.Errorf("unexpected first entry: %+v", first)
	}
	if first.Link.Kind != LinkGoto || first.Link.Y == nil || *first.Link.Y != 140.5 {
		t.Errorf("expected goto link with y=140.5, got %+v", first.Link)
	}

	if entries[1].Link.Kind != LinkGoto || entries[1].Link.Y != nil {
		t.Errorf("goto without point must carry nil y, got %+v", entries[1].Link)
	}
	if entries[2].Link.Kind != LinkNamed {
		t.Errorf("expected named link, got %+v", entries[2].Link)
	}
	if entries[3].Link.Kind != LinkNone {
		t.Errorf("expected none link, got %+v", entries[3].Link)
	}

	// Freshly constructed entries carry no enrichment yet
	for i, e := range entries {
		if e.Resolved || e.Located || e.LineIndex != nil || e.Status != "" {
			t.Errorf("entry %d carries premature enrichment: %+v", i, e)
		}
	}
}

func TestFromOutline_Empty(t *testing.T) {
	if entries := FromOutline(nil); len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
