// Package trainer drives a typing session: it owns the session state and the
// countdown and pushes every change to a Presenter.
package trainer

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/fingerdrill/internal/clock"
	"github.com/verte-zerg/fingerdrill/internal/finger"
	"github.com/verte-zerg/fingerdrill/internal/leaderboard"
	"github.com/verte-zerg/fingerdrill/internal/model"
	"github.com/verte-zerg/fingerdrill/internal/textsource"
	"github.com/verte-zerg/fingerdrill/internal/typing"
)

// IdlePrompt is shown in place of the target text while no session is set.
const IdlePrompt = "Press enter to start (or c for custom text)"

// ScoreTimeLayout formats the leaderboard timestamp.
const ScoreTimeLayout = "15:04:05"

// DefaultDuration is the countdown length when none is configured.
const DefaultDuration = 30 * time.Second

// HistoryWriter appends finished runs to the session history.
type HistoryWriter interface {
	InsertSession(ctx context.Context, rec model.SessionRecord) error
}

// Options configures a Controller. Presenter and Board are required.
type Options struct {
	Mode       textsource.Mode
	Duration   time.Duration
	CustomText string
	Provider   *textsource.Provider
	Board      *leaderboard.Board
	History    HistoryWriter
	Presenter  Presenter
	Logger     *zap.Logger
	Now        func() time.Time
}

// Controller owns one session at a time.
type Controller struct {
	ctx      context.Context
	provider *textsource.Provider
	board    *leaderboard.Board
	history  HistoryWriter
	view     Presenter
	logger   *zap.Logger
	now      func() time.Time

	clock        *clock.Clock
	mode         textsource.Mode
	custom       string
	session      *Session
	inputEnabled bool
}

// New builds a controller and renders the idle state and leaderboard.
func New(ctx context.Context, opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Provider == nil {
		opts.Provider = &textsource.Provider{}
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.Mode == "" {
		opts.Mode = textsource.ModeDefault
	}
	c := &Controller{
		ctx:      ctx,
		provider: opts.Provider,
		board:    opts.Board,
		history:  opts.History,
		view:     opts.Presenter,
		logger:   opts.Logger.Named("trainer"),
		now:      opts.Now,
		clock:    clock.New(opts.Duration),
		mode:     opts.Mode,
		custom:   opts.CustomText,
	}
	c.RefreshLeaderboard()
	c.Reset()
	return c
}

// Mode returns the selected text mode.
func (c *Controller) Mode() textsource.Mode {
	return c.mode
}

// SetMode selects the text mode used by the next Start.
func (c *Controller) SetMode(mode textsource.Mode) {
	c.mode = mode
}

// Duration returns the countdown length used by the next Start.
func (c *Controller) Duration() time.Duration {
	return c.clock.Duration()
}

// SetDuration changes the countdown length for the next Start. A running
// countdown keeps its length; otherwise the display shows the new length.
func (c *Controller) SetDuration(d time.Duration) {
	if d <= 0 {
		return
	}
	if c.clock.State() == clock.Running {
		return
	}
	c.clock.SetDuration(d)
	r := c.clock.IdleReading()
	c.view.RenderCountdown(r.Display, r.Progress)
}

// State returns the countdown state.
func (c *Controller) State() clock.State {
	return c.clock.State()
}

// InputEnabled reports whether keystrokes are accepted.
func (c *Controller) InputEnabled() bool {
	return c.inputEnabled
}

// Session returns the current session, or nil after Reset.
func (c *Controller) Session() *Session {
	return c.session
}

// Start begins a new session and returns the tag its ticks must carry. Any
// previously scheduled tick is invalidated first.
func (c *Controller) Start() int {
	c.session = newSession(c.mode, c.clock.Duration())
	c.SetTarget(c.provider.Text(c.mode, c.custom))
	c.setInputEnabled(true)
	now := c.now()
	tag := c.clock.Start(now)
	c.session.StartedAt = now
	r := c.clock.IdleReading()
	c.view.RenderCountdown(r.Display, r.Progress)
	c.logger.Debug("session started",
		zap.String("id", c.session.ID),
		zap.String("mode", string(c.mode)),
		zap.Duration("duration", c.clock.Duration()))
	return tag
}

// Reset cancels the countdown and returns the display to its initial state.
// It may be called any number of times.
func (c *Controller) Reset() {
	c.clock.Reset()
	c.session = nil
	c.setInputEnabled(false)
	c.view.RenderIdle(IdlePrompt)
	c.view.RenderStats(typing.Idle())
	c.view.RenderHint(finger.Label(0, false), finger.Hint{})
	r := c.clock.IdleReading()
	c.view.RenderCountdown(r.Display, r.Progress)
}

// SetTarget replaces the target text, clearing typed text and the error
// counter whatever the session state.
func (c *Controller) SetTarget(text string) {
	if c.session == nil {
		c.session = newSession(c.mode, c.clock.Duration())
	}
	c.session.setTarget(text)
	target := c.session.Target()
	c.view.RenderClassification(target, make([]typing.CharState, len(target)), c.session.cursor())
	c.renderStats()
	c.renderHint()
}

// UseCustom switches to custom mode with text. Whitespace runs are collapsed
// to single spaces; blank text is ignored.
func (c *Controller) UseCustom(text string) bool {
	text = textsource.Normalize(text)
	if text == "" {
		return false
	}
	c.custom = text
	c.mode = textsource.ModeCustom
	c.SetTarget(text)
	return true
}

// Input replaces the typed text and re-evaluates it. Ignored while input is
// disabled.
func (c *Controller) Input(typed string) {
	if !c.inputEnabled || c.session == nil {
		return
	}
	c.session.typed = []rune(typed)
	c.evaluate()
}

// TypeRunes appends runes to the typed text, stopping at the end of the target.
func (c *Controller) TypeRunes(runes []rune) {
	if !c.inputEnabled || c.session == nil {
		return
	}
	typed := append([]rune(nil), c.session.typed...)
	for _, r := range runes {
		if len(typed) >= len(c.session.Target()) {
			break
		}
		typed = append(typed, r)
	}
	c.Input(string(typed))
}

// Backspace removes the last typed rune.
func (c *Controller) Backspace() {
	if !c.inputEnabled || c.session == nil || len(c.session.typed) == 0 {
		return
	}
	c.Input(string(c.session.typed[:len(c.session.typed)-1]))
}

// DeleteWord removes the last typed word and the spaces after it.
func (c *Controller) DeleteWord() {
	if !c.inputEnabled || c.session == nil || len(c.session.typed) == 0 {
		return
	}
	c.Input(deleteLastWord(c.session.Typed()))
}

// Tick handles a countdown tick. It reports whether another tick should be
// scheduled for the same tag.
func (c *Controller) Tick(msg clock.TickMsg) bool {
	reading, ok := c.clock.Tick(msg)
	if !ok {
		return false
	}
	c.view.RenderCountdown(reading.Display, reading.Progress)
	if reading.Ended {
		c.finish(msg.Time)
		return false
	}
	return true
}

// RefreshLeaderboard re-reads and renders the stored scores.
func (c *Controller) RefreshLeaderboard() {
	if c.board == nil {
		c.view.RenderLeaderboard(nil)
		return
	}
	c.view.RenderLeaderboard(c.board.List(c.ctx))
}

func (c *Controller) evaluate() {
	s := c.session
	states := s.comparator.Evaluate(s.typed)
	c.view.RenderClassification(s.Target(), states, s.cursor())
	c.renderStats()
	c.renderHint()
}

func (c *Controller) renderStats() {
	s := c.session
	s.last = typing.Compute(s.Typed(), s.Errors(), c.clock.Elapsed(c.now()))
	c.view.RenderStats(s.last)
}

func (c *Controller) renderHint() {
	next, ok := c.session.comparator.Next(c.session.typed)
	if !ok {
		c.view.RenderHint(finger.Label(0, false), finger.Hint{})
		return
	}
	c.view.RenderHint(finger.Label(next, true), finger.Lookup(next))
}

func (c *Controller) setInputEnabled(enabled bool) {
	c.inputEnabled = enabled
	c.view.SetInputEnabled(enabled)
}

// finish records the score of the running session exactly once.
func (c *Controller) finish(endedAt time.Time) {
	s := c.session
	c.setInputEnabled(false)
	if s == nil || s.finalized {
		return
	}
	s.finalized = true

	stats := s.last
	score := model.Score{
		WPM:  stats.WPM,
		Acc:  stats.AccuracyText(),
		Time: endedAt.Format(ScoreTimeLayout),
	}
	c.logger.Info("session finished",
		zap.String("id", s.ID),
		zap.Int("wpm", stats.WPM),
		zap.Int("accuracy", stats.Accuracy),
		zap.Int("errors", stats.Errors))

	if c.board != nil {
		scores, err := c.board.Record(c.ctx, score)
		if err != nil {
			c.logger.Warn("failed to record score", zap.Error(err))
			scores = c.board.List(c.ctx)
		}
		c.view.RenderLeaderboard(scores)
	}

	if c.history != nil {
		rec := model.SessionRecord{
			ID:        s.ID,
			StartedAt: s.StartedAt,
			EndedAt:   endedAt,
			Mode:      string(s.Mode),
			Duration:  int(s.Duration / time.Second),
			WPM:       stats.WPM,
			Accuracy:  stats.Accuracy,
			Chars:     stats.Chars,
			Errors:    stats.Errors,
		}
		if err := c.history.InsertSession(c.ctx, rec); err != nil {
			c.logger.Warn("failed to save session history", zap.Error(err))
		}
	}
}

func deleteLastWord(s string) string {
	trimmed := strings.TrimRight(s, " ")
	idx := strings.LastIndex(trimmed, " ")
	if idx < 0 {
		return ""
	}
	return trimmed[:idx+1]
}
