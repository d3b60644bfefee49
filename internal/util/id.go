package util

import (
	"fmt"
	"strings"
	"unicode"
)

// TaskID returns a synthesized task ID in the format t-1, t-2, ... for rows
// that carry no explicit identifier. Sequence numbers are 1-based.
func TaskID(seq int) string {
	return fmt.Sprintf("t-%d", seq)
}

// NormalizeHeader lowercases a column header and collapses runs of spaces,
// underscores and hyphens to single spaces, so "Start_Week", "start-week"
// and "Start Week" all match the same alias.
func NormalizeHeader(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '%' || r == '(' || r == ')':
			b.WriteRune(unicode.ToLower(r))
			lastSpace = false
		case r == ' ' || r == '_' || r == '-' || r == '\t':
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}
