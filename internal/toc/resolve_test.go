package toc

import "testing"

func floatPtr(f float64) *float64 { return &f }

func TestResolve_ExactSingle(t *testing.T) {
	blocks := []TextBlock{
		{Index: 0, TopY: 50, Text: "Some preamble", NormText: "some preamble", MaxFontSize: 10},
		{Index: 1, TopY: 120, Text: "Introduction", NormText: "introduction", MaxFontSize: 18},
		{Index: 2, TopY: 200, Text: "Body follows.", NormText: "body follows.", MaxFontSize: 10},
	}
	e := Entry{Level: 1, Title: "Introduction", PageNum: 1}

	Resolve(&e, blocks)

	if !e.Resolved {
		t.Fatal("expected entry to resolve")
	}
	if e.MatchTier != TierExactSingle {
		t.Errorf("expected exact_single, got %s", e.MatchTier)
	}
	if e.MatchedText != "Introduction" {
		t.Errorf("unexpected matched text: %q", e.MatchedText)
	}
	if e.ContextBefore != "Some preamble" {
		t.Errorf("unexpected context before: %q", e.ContextBefore)
	}
	if e.ContextAfter != "Body follows." {
		t.Errorf("unexpected context after: %q", e.ContextAfter)
	}
}

func TestResolve_ExactLargestFont(t *testing.T) {
	// Same text twice with differing fonts: the heading itself is set larger
	// than a cross-reference to it.
	blocks := []TextBlock{
		{Index: 0, TopY: 100, Text: "Introduction", NormText: "introduction", MaxFontSize: 10},
		{Index: 1, TopY: 300, Text: "Introduction", NormText: "introduction", MaxFontSize: 18},
	}
	e := Entry{Level: 1, Title: "Introduction", PageNum: 1}

	Resolve(&e, blocks)

	if e.MatchTier != TierExactLargestFont {
		t.Fatalf("expected exact_largest_font, got %s", e.MatchTier)
	}
	if e.ContextBefore != "Introduction" {
		t.Errorf("expected the font-18 block (index 1) to win, context before %q", e.ContextBefore)
	}
}

func TestResolve_ExactFontTieTakesEarliest(t *testing.T) {
	blocks := []TextBlock{
		{Index: 0, TopY: 100, Text: "Summary", NormText: "summary", MaxFontSize: 14},
		{Index: 1, TopY: 300, Text: "Summary", NormText: "summary", MaxFontSize: 14},
		{Index: 2, TopY: 400, Text: "Trailer", NormText: "trailer", MaxFontSize: 10},
	}
	e := Entry{Level: 1, Title: "Summary", PageNum: 1}

	Resolve(&e, blocks)

	if e.MatchTier != TierExactLargestFont {
		t.Fatalf("expected exact_largest_font, got %s", e.MatchTier)
	}
	// Earliest block has no preceding context; its follower is block 1.
	if e.ContextBefore != "" {
		t.Errorf("expected first block to win the tie, got context before %q", e.ContextBefore)
	}
	if e.ContextAfter != "Summary" {
		t.Errorf("unexpected context after: %q", e.ContextAfter)
	}
}

func TestResolve_NormalizedComparison(t *testing.T) {
	blocks := []TextBlock{
		{Index: 0, TopY: 100, Text: "CHAPTER   5", NormText: Normalize("CHAPTER   5"), MaxFontSize: 16},
	}
	e := Entry{Level: 1, Title: "Chapter 5", PageNum: 1}

	Resolve(&e, blocks)

	if e.MatchTier != TierExactSingle {
		t.Errorf("expected normalized exact match, got %s", e.MatchTier)
	}
}

func TestResolve_ProximityFallback(t *testing.T) {
	blocks := []TextBlock{
		{Index: 0, TopY: 100, Text: "See Chapter 5 for details", NormText: "see chapter 5 for details", MaxFontSize: 10},
		{Index: 1, TopY: 310, Text: "Chapter 5 The Reckoning", NormText: "chapter 5 the reckoning", MaxFontSize: 16},
	}
	e := Entry{
		Level:   1,
		Title:   "Chapter 5",
		PageNum: 1,
		Link:    Link{Kind: LinkGoto, Y: floatPtr(300)},
	}

	Resolve(&e, blocks)

	if !e.Resolved {
		t.Fatal("expected entry to resolve")
	}
	if e.MatchTier != TierProximityFallback {
		t.Errorf("expected proximity_fallback, got %s", e.MatchTier)
	}
	if e.MatchedText != "Chapter 5 The Reckoning" {
		t.Errorf("expected the y=310 block, got %q", e.MatchedText)
	}
}

func TestResolve_ContainingWithoutCoordinate(t *testing.T) {
	blocks := []TextBlock{
		{Index: 0, TopY: 100, Text: "See Chapter 5 for details", NormText: "see chapter 5 for details", MaxFontSize: 10},
		{Index: 1, TopY: 310, Text: "Chapter 5 The Reckoning", NormText: "chapter 5 the reckoning", MaxFontSize: 16},
	}

	t.Run("named destination", func(t *testing.T) {
		e := Entry{Title: "Chapter 5", PageNum: 1, Link: Link{Kind: LinkNamed}}
		Resolve(&e, blocks)
		if e.Resolved || e.MatchTier != TierNone {
			t.Errorf("expected unresolved/none, got resolved=%v tier=%s", e.Resolved, e.MatchTier)
		}
	})

	t.Run("goto without point", func(t *testing.T) {
		e := Entry{Title: "Chapter 5", PageNum: 1, Link: Link{Kind: LinkGoto}}
		Resolve(&e, blocks)
		if e.Resolved || e.MatchTier != TierNone {
			t.Errorf("expected unresolved/none, got resolved=%v tier=%s", e.Resolved, e.MatchTier)
		}
	})
}

func TestResolve_NoMatch(t *testing.T) {
	blocks := []TextBlock{
		{Index: 0, TopY: 100, Text: "Totally unrelated", NormText: "totally unrelated", MaxFontSize: 12},
	}
	e := Entry{Title: "Chapter 5", PageNum: 1, Link: Link{Kind: LinkGoto, Y: floatPtr(300)}}

	Resolve(&e, blocks)

	if e.Resolved {
		t.Error("expected entry to stay unresolved")
	}
	if e.MatchTier != TierNone {
		t.Errorf("expected tier none, got %s", e.MatchTier)
	}
	if e.MatchedText != "" || e.ContextBefore != "" || e.ContextAfter != "" {
		t.Error("no-match must not capture context")
	}
}

func TestResolve_EmptyIndex(t *testing.T) {
	e := Entry{Title: "Chapter 5", PageNum: 1}
	Resolve(&e, nil)
	if e.Resolved || e.MatchTier != TierNone {
		t.Errorf("expected none on empty index, got resolved=%v tier=%s", e.Resolved, e.MatchTier)
	}
}

func TestResolve_ContextSkipsEmptyBlocks(t *testing.T) {
	blocks := []TextBlock{
		{Index: 0, TopY: 50, Text: "Part Two", NormText: "part two", MaxFontSize: 12},
		{Index: 1, TopY: 80, Text: "", NormText: "", MaxFontSize: 0}, // spanless block
		{Index: 2, TopY: 120, Text: "Chapter 5", NormText: "chapter 5", MaxFontSize: 18},
		{Index: 3, TopY: 160, Text: "   ", NormText: "", MaxFontSize: 8},
		{Index: 4, TopY: 200, Text: "It began at dawn.", NormText: "it began at dawn.", MaxFontSize: 10},
	}
	e := Entry{Title: "Chapter 5", PageNum: 1}

	Resolve(&e, blocks)

	if e.MatchTier != TierExactSingle {
		t.Fatalf("expected exact_single, got %s", e.MatchTier)
	}
	if e.ContextBefore != "Part Two" {
		t.Errorf("expected empty neighbor skipped, got context before %q", e.ContextBefore)
	}
	if e.ContextAfter != "It began at dawn." {
		t.Errorf("expected empty neighbor skipped, got context after %q", e.ContextAfter)
	}
}

func TestResolve_MatchAtPageEdges(t *testing.T) {
	blocks := []TextBlock{
		{Index: 0, TopY: 50, Text: "Epilogue", NormText: "epilogue", MaxFontSize: 18},
	}
	e := Entry{Title: "Epilogue", PageNum: 1}

	Resolve(&e, blocks)

	if e.MatchTier != TierExactSingle {
		t.Fatalf("expected exact_single, got %s", e.MatchTier)
	}
	if e.ContextBefore != "" || e.ContextAfter != "" {
		t.Error("missing neighbors must leave context unset, not error")
	}
}

func TestResolve_EmptyBlocksNeverMatch(t *testing.T) {
	// An empty title would be a substring of everything; empty blocks must
	// not classify either way.
	blocks := []TextBlock{
		{Index: 0, TopY: 50, Text: "", NormText: "", MaxFontSize: 0},
	}
	e := Entry{Title: "", PageNum: 1}

	Resolve(&e, blocks)

	if e.Resolved {
		t.Error("empty block must never participate as a match")
	}
}
