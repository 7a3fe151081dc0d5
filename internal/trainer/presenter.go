package trainer

import (
	"github.com/verte-zerg/fingerdrill/internal/finger"
	"github.com/verte-zerg/fingerdrill/internal/model"
	"github.com/verte-zerg/fingerdrill/internal/typing"
)

// Presenter is everything the controller needs from a display.
type Presenter interface {
	// RenderIdle shows message in place of the target text.
	RenderIdle(message string)
	// RenderClassification shows the target with one state per rune. cursor is
	// the index of the next expected rune, or -1 once the target is covered.
	RenderClassification(target []rune, states []typing.CharState, cursor int)
	// RenderHint shows the next-character label and its finger.
	RenderHint(label string, hint finger.Hint)
	RenderStats(stats typing.Stats)
	// RenderCountdown shows the remaining time and progress in percent.
	RenderCountdown(display string, progress float64)
	RenderLeaderboard(scores []model.Score)
	SetInputEnabled(enabled bool)
}
