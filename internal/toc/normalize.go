package toc

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns a simplified form of text for lenient comparison:
// whitespace runs (including newlines) collapse to single spaces, the result
// is NFKC-normalized, lowercased and trimmed. Pure and total; empty input
// yields an empty string.
func Normalize(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	return strings.TrimSpace(strings.ToLower(norm.NFKC.String(collapsed)))
}
