package typing

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// minElapsed replaces a zero elapsed time so WPM never divides by zero.
const minElapsed = time.Second

// Stats holds the live numbers shown while typing.
type Stats struct {
	WPM      int
	Accuracy int
	Chars    int
	Errors   int
	// Fresh is true when nothing has been typed yet.
	Fresh bool
}

// AccuracyText renders the accuracy cell, e.g. "80%".
func (s Stats) AccuracyText() string {
	if s.Fresh {
		return "100%"
	}
	return fmt.Sprintf("%d%%", s.Accuracy)
}

// Compute derives WPM and accuracy from the typed text, the error counter and
// the elapsed time. Accuracy is not clamped: an inflated error counter can push
// it below zero.
func Compute(typed string, errors int, elapsed time.Duration) Stats {
	if elapsed <= 0 {
		elapsed = minElapsed
	}
	minutes := elapsed.Minutes()
	chars := utf8.RuneCountInString(typed)
	words := len(strings.Fields(typed))

	stats := Stats{
		WPM:    roundHalfUp(float64(words) / minutes),
		Chars:  chars,
		Errors: errors,
		Fresh:  chars == 0,
	}
	if stats.Fresh {
		stats.Accuracy = 100
		return stats
	}
	stats.Accuracy = roundHalfUp(float64(chars-errors) / float64(max(1, chars)) * 100)
	return stats
}

// Idle returns the stats shown before any typing.
func Idle() Stats {
	return Stats{Accuracy: 100, Fresh: true}
}

func roundHalfUp(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Floor(v + 0.5))
}
