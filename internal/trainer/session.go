package trainer

import (
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/fingerdrill/internal/textsource"
	"github.com/verte-zerg/fingerdrill/internal/typing"
)

// Session is one practice run: created on Start or when a text is set,
// mutated on every input and tick, finalized once when the clock ends.
type Session struct {
	ID        string
	Mode      textsource.Mode
	StartedAt time.Time
	Duration  time.Duration

	comparator *typing.Comparator
	typed      []rune
	last       typing.Stats
	finalized  bool
}

func newSession(mode textsource.Mode, duration time.Duration) *Session {
	return &Session{
		ID:         uuid.NewString(),
		Mode:       mode,
		Duration:   duration,
		comparator: typing.NewComparator(""),
		last:       typing.Idle(),
	}
}

// setTarget replaces the target and clears typed text and errors.
func (s *Session) setTarget(text string) {
	s.comparator.SetTarget(text)
	s.typed = nil
	s.last = typing.Idle()
}

// Target returns the target runes.
func (s *Session) Target() []rune {
	return s.comparator.Target()
}

// Typed returns the typed text so far.
func (s *Session) Typed() string {
	return string(s.typed)
}

// Errors returns the running error counter.
func (s *Session) Errors() int {
	return s.comparator.Errors()
}

// Stats returns the most recently rendered stats.
func (s *Session) Stats() typing.Stats {
	return s.last
}

// Finalized reports whether the score was already recorded.
func (s *Session) Finalized() bool {
	return s.finalized
}

func (s *Session) cursor() int {
	if len(s.typed) < len(s.comparator.Target()) {
		return len(s.typed)
	}
	return -1
}
