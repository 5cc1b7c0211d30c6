// ABOUTME: Text utilities for cleaning and truncating scraped content
// ABOUTME: Provides whitespace normalization and rune-safe truncation

package text

import "strings"

// Clean collapses all whitespace runs to single spaces and trims the ends.
// Scraped HTML text arrives full of newlines and indentation; this normalizes
// it to a single readable line.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts s to at most max runes. Counting runes instead of bytes keeps
// multi-byte characters intact at the cut point.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
