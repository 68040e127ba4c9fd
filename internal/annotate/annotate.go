// Package annotate inserts markdown heading markers into extracted plain
// text at the lines the resolution pipeline located.
package annotate

import (
	"strings"

	"github.com/jackzampolin/tocmark/internal/toc"
)

// Apply prefixes each successfully located line with a markdown heading
// marker: one '#' per ToC level, capped at maxLevel (itself capped at 6, the
// markdown ceiling). A line receives at most one marker; the first entry in
// ToC order wins a contested line. Pages are re-joined with form feeds so the
// annotated text round-trips with the extractor's page split. The input
// slice is not mutated.
func Apply(pages []string, entries []toc.Entry, maxLevel int) string {
	if maxLevel < 1 || maxLevel > 6 {
		maxLevel = 6
	}

	pageLines := make([][]string, len(pages))
	marked := make(map[[2]int]bool)

	for _, e := range entries {
		if e.Status != toc.StatusSuccess || e.LineIndex == nil {
			continue
		}
		page := e.PageNum - 1
		if page < 0 || page >= len(pages) {
			continue
		}
		if pageLines[page] == nil {
			pageLines[page] = toc.SplitLines(pages[page])
		}

		line := *e.LineIndex
		if line < 0 || line >= len(pageLines[page]) {
			continue
		}
		key := [2]int{page, line}
		if marked[key] {
			continue
		}
		marked[key] = true

		pageLines[page][line] = marker(e.Level, maxLevel) + " " + pageLines[page][line]
	}

	out := make([]string, len(pages))
	for i, page := range pages {
		if pageLines[i] == nil {
			out[i] = page
			continue
		}
		out[i] = strings.Join(pageLines[i], "")
	}
	return strings.Join(out, "\f")
}

// marker builds the heading prefix for a ToC level.
func marker(level, maxLevel int) string {
	if level < 1 {
		level = 1
	}
	if level > maxLevel {
		level = maxLevel
	}
	return strings.Repeat("#", level)
}
