package toc

import (
	"strings"

	"github.com/jackzampolin/tocmark/internal/structure"
)

// TextBlock is a page-scoped derived view of one text block: its position in
// the page's text-block sequence, the bbox top-y coordinate, the concatenated
// span text and the largest span font size. Rebuilt per page, never persisted.
type TextBlock struct {
	Index       int
	TopY        float64
	Text        string
	NormText    string
	MaxFontSize float64
}

// BuildIndex derives the ordered text-block index for a page. Image and other
// non-text blocks are dropped; relative order of text blocks is preserved.
// A block with no spans yields empty text and font size 0.0 and is still
// retained so neighbor lookups stay aligned, but it never classifies as a
// match. The input is not mutated.
func BuildIndex(blocks []structure.Block) []TextBlock {
	index := make([]TextBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.Type != structure.BlockTypeText {
			continue
		}

		var texts []string
		maxSize := 0.0
		for _, line := range b.Lines {
			for _, span := range line.Spans {
				if span.Size > maxSize {
					maxSize = span.Size
				}
				texts = append(texts, span.Text)
			}
		}
		text := strings.TrimSpace(strings.Join(texts, " "))

		index = append(index, TextBlock{
			Index:       len(index),
			TopY:        b.BBox[1],
			Text:        text,
			NormText:    Normalize(text),
			MaxFontSize: maxSize,
		})
	}
	return index
}
