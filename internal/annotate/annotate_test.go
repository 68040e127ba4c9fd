package annotate

import (
	"strings"
	"testing"

	"github.com/jackzampolin/tocmark/internal/toc"
)

func located(title string, level, pageNum, line int) toc.Entry {
	idx := line
	return toc.Entry{
		Level:     level,
		Title:     title,
		PageNum:   pageNum,
		Resolved:  true,
		Located:   true,
		LineIndex: &idx,
		Status:    toc.StatusSuccess,
	}
}

func TestApply(t *testing.T) {
	pages := []string{
		"Preamble\nChapter 1\nIt begins.\n",
		"More text\nChapter 2\nIt continues.\n",
	}
	entries := []toc.Entry{
		located("Chapter 1", 1, 1, 1),
		located("Chapter 2", 2, 2, 1),
	}

	got := Apply(pages, entries, 6)

	want := "Preamble\n# Chapter 1\nIt begins.\n\fMore text\n## Chapter 2\nIt continues.\n"
	if got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}
}

func TestApply_LevelCaps(t *testing.T) {
	pages := []string{"Deep Heading\n"}

	t.Run("level capped at 6", func(t *testing.T) {
		got := Apply(pages, []toc.Entry{located("Deep Heading", 9, 1, 0)}, 6)
		if !strings.HasPrefix(got, "###### ") {
			t.Errorf("expected 6-deep marker, got %q", got)
		}
	})

	t.Run("configured max level", func(t *testing.T) {
		got := Apply(pages, []toc.Entry{located("Deep Heading", 4, 1, 0)}, 2)
		if !strings.HasPrefix(got, "## ") {
			t.Errorf("expected marker capped at 2, got %q", got)
		}
	})

	t.Run("level below one clamps up", func(t *testing.T) {
		got := Apply(pages, []toc.Entry{located("Deep Heading", 0, 1, 0)}, 6)
		if !strings.HasPrefix(got, "# ") {
			t.Errorf("expected single marker, got %q", got)
		}
	})
}

func TestApply_FirstEntryWinsContestedLine(t *testing.T) {
	pages := []string{"Shared Heading\n"}
	entries := []toc.Entry{
		located("Shared Heading", 1, 1, 0),
		located("Shared Heading", 3, 1, 0),
	}

	got := Apply(pages, entries, 6)
	if got != "# Shared Heading\n" {
		t.Errorf("expected first entry's marker only, got %q", got)
	}
}

func TestApply_IgnoresNonSuccessEntries(t *testing.T) {
	pages := []string{"Chapter 1\n"}
	entries := []toc.Entry{
		{Title: "Chapter 1", Level: 1, PageNum: 1, Status: toc.StatusNotInText},
		{Title: "Chapter 1", Level: 1, PageNum: 1, Status: toc.StatusUnmatchedInText},
	}

	if got := Apply(pages, entries, 6); got != "Chapter 1\n" {
		t.Errorf("expected untouched text, got %q", got)
	}
}

func TestApply_OutOfRangeTargetsSkipped(t *testing.T) {
	pages := []string{"Chapter 1\n"}
	entries := []toc.Entry{
		located("Beyond", 1, 5, 0),  // page out of range
		located("Too far", 1, 1, 9), // line out of range
	}

	if got := Apply(pages, entries, 6); got != "Chapter 1\n" {
		t.Errorf("expected untouched text, got %q", got)
	}
}

func TestApply_RoundTripsUntouchedPages(t *testing.T) {
	pages := []string{"page one\n", "page two, no trailing newline"}

	got := Apply(pages, nil, 6)
	if got != "page one\n\fpage two, no trailing newline" {
		t.Errorf("expected page join round-trip, got %q", got)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	pages := []string{"Chapter 1\n"}
	Apply(pages, []toc.Entry{located("Chapter 1", 1, 1, 0)}, 6)

	if pages[0] != "Chapter 1\n" {
		t.Errorf("input pages mutated: %q", pages[0])
	}
}
