// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/fingerdrill/internal/model"
)

const sparkChars = " .:-=+*#%@"

// historyTimeLayout formats session timestamps in the history table.
const historyTimeLayout = "2006-01-02 15:04"

// Summary aggregates a list of finished runs.
type Summary struct {
	Sessions    int
	AvgWPM      float64
	BestWPM     int
	AvgAccuracy float64
	TotalChars  int
	TotalErrors int
}

// Summarize aggregates sessions.
func Summarize(sessions []model.SessionRecord) Summary {
	var sum Summary
	if len(sessions) == 0 {
		return sum
	}
	var totalWPM, totalAcc float64
	for _, s := range sessions {
		totalWPM += float64(s.WPM)
		totalAcc += float64(s.Accuracy)
		if s.WPM > sum.BestWPM {
			sum.BestWPM = s.WPM
		}
		sum.TotalChars += s.Chars
		sum.TotalErrors += s.Errors
	}
	count := float64(len(sessions))
	sum.Sessions = len(sessions)
	sum.AvgWPM = totalWPM / count
	sum.AvgAccuracy = totalAcc / count
	return sum
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary for sessions.
func RenderSummary(w io.Writer, sessions []model.SessionRecord) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	sum := Summarize(sessions)
	if _, err := fmt.Fprintln(w, heading(w, "Summary")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sessions: %d\n", sum.Sessions); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg WPM: %.2f\n", sum.AvgWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best WPM: %d\n", sum.BestWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %.2f%%\n", sum.AvgAccuracy); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Chars typed: %d (%d errors)\n", sum.TotalChars, sum.TotalErrors); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderCurve prints a smoothed WPM sparkline.
func RenderCurve(w io.Writer, sessions []model.SessionRecord, window int) error {
	if len(sessions) == 0 {
		return nil
	}
	wpms := make([]float64, len(sessions))
	for i, s := range sessions {
		wpms[i] = float64(s.WPM)
	}
	smoothed := MovingAverage(wpms, window)
	if _, err := fmt.Fprintln(w, heading(w, "WPM Curve")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "[%s] %.1f\n\n", Sparkline(smoothed), smoothed[len(smoothed)-1]); err != nil {
		return err
	}
	return nil
}

// RenderHistory prints one row per session, newest last.
func RenderHistory(w io.Writer, sessions []model.SessionRecord) error {
	if len(sessions) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, heading(w, "Sessions")); err != nil {
		return err
	}
	headers := []string{"Ended", "Mode", "Duration", "WPM", "Accuracy", "Chars", "Errors"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			s.EndedAt.Local().Format(historyTimeLayout),
			s.Mode,
			fmt.Sprintf("%ds", s.Duration),
			fmt.Sprintf("%d", s.WPM),
			fmt.Sprintf("%d%%", s.Accuracy),
			fmt.Sprintf("%d", s.Chars),
			fmt.Sprintf("%d", s.Errors),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true, 5: true, 6: true}
	return writeLines(w, formatTable(headers, rows, rightAlign))
}

// RenderLeaderboard prints the ranked scores.
func RenderLeaderboard(w io.Writer, scores []model.Score) error {
	if len(scores) == 0 {
		_, err := fmt.Fprintln(w, "No scores yet.")
		return err
	}
	headers := []string{"#", "WPM", "Accuracy", "Time"}
	rows := make([][]string, 0, len(scores))
	for i, s := range scores {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.WPM),
			s.Acc,
			s.Time,
		})
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true}
	return writeLines(w, formatTable(headers, rows, rightAlign))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
