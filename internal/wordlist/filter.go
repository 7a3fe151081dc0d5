package wordlist

import "github.com/verte-zerg/fingerdrill/internal/finger"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Filter returns the words accepted by keep, preserving order.
func Filter(words []string, keep FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

// Hintable keeps words whose every character has a dedicated finger, so the
// hand diagram always has something to highlight.
func Hintable(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !finger.Mapped(r) {
			return false
		}
	}
	return true
}
