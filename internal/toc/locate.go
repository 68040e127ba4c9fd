package toc

import "strings"

// SplitLines splits page text into lines, keeping each line's trailing
// newline so joining with "" round-trips the input. Line ordinals are stable
// for the lifetime of the slice.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// Locate runs Stage B for one entry against its target page's plain-text
// lines. Entries Stage A left unresolved short-circuit to StatusNotInText.
// Candidate lines contain the RAW title as a literal substring: the plain
// text comes from a different extractor than the structured rendering, and
// literal containment is the most permissive filter that still avoids
// spurious matches (normalizing here would change outcomes the structural
// pass never validated).
func Locate(e *Entry, lines []string) {
	if !e.Resolved {
		e.Status = StatusNotInText
		return
	}

	var candidates []int
	for i, line := range lines {
		if strings.Contains(line, e.Title) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		e.Status = StatusUnmatchedInText
		return
	}

	best := candidates[0]
	bestScore := -1.0
	for _, loc := range candidates {
		// strict > keeps the first occurrence on score ties
		if score := compositeScore(e, lines, loc); score > bestScore {
			bestScore = score
			best = loc
		}
	}

	e.Located = true
	idx := best
	e.LineIndex = &idx
	e.Status = StatusSuccess
}

// compositeScore is the mean of up to three Jaccard components for candidate
// line loc: surrounding-context overlap before and after, plus the line
// itself against the title. The before/after text is windowed to exactly the
// context's own word count so a short context cannot score high against a
// long unrelated span by small-set overlap noise.
func compositeScore(e *Entry, lines []string, loc int) float64 {
	var scores []float64

	if e.ContextBefore != "" && loc > 0 {
		ctx := Tokens(e.ContextBefore)
		before := Tokens(strings.Join(lines[:loc], ""))
		if len(before) > len(ctx) {
			before = before[len(before)-len(ctx):]
		}
		scores = append(scores, Jaccard(before, ctx))
	}

	scores = append(scores, Jaccard(Tokens(lines[loc]), Tokens(e.Title)))

	if e.ContextAfter != "" && loc+1 != len(lines) {
		ctx := Tokens(e.ContextAfter)
		after := Tokens(strings.Join(lines[loc+1:], ""))
		if len(after) > len(ctx) {
			after = after[:len(ctx)]
		}
		scores = append(scores, Jaccard(after, ctx))
	}

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
