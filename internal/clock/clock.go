// Package clock implements the session countdown.
//
// Ticks are delivered as Bubble Tea messages. Every Start issues a fresh tag;
// a tick carrying any other tag is stale and dropped, which is how Reset and
// restart cancel timers that are already in flight.
package clock

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Interval is the tick period.
const Interval = 100 * time.Millisecond

// State is the clock lifecycle state.
type State int

const (
	// Idle means no session is running.
	Idle State = iota
	// Running means ticks are being processed.
	Running
	// Ended means the countdown reached zero.
	Ended
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Ended:
		return "ended"
	default:
		return "idle"
	}
}

// TickMsg is delivered on every scheduled tick.
type TickMsg struct {
	Tag  int
	Time time.Time
}

// Reading is the countdown display computed on a tick.
type Reading struct {
	Elapsed   time.Duration
	Remaining time.Duration
	Display   string
	Progress  float64
	// Ended is set on the single tick that finished the countdown.
	Ended bool
}

// Clock is a single countdown. It is not safe for concurrent use; Bubble Tea
// delivers messages one at a time.
type Clock struct {
	duration time.Duration
	start    time.Time
	state    State
	tag      int
}

// New returns an idle clock for the given duration.
func New(duration time.Duration) *Clock {
	return &Clock{duration: duration}
}

// State returns the current state.
func (c *Clock) State() State {
	return c.state
}

// Duration returns the configured countdown length.
func (c *Clock) Duration() time.Duration {
	return c.duration
}

// SetDuration changes the countdown length used by the next Start.
func (c *Clock) SetDuration(d time.Duration) {
	c.duration = d
}

// StartedAt returns the start timestamp of the current run.
func (c *Clock) StartedAt() time.Time {
	return c.start
}

// Start cancels any pending tick, records now as the start and returns the
// tag the next tick must carry.
func (c *Clock) Start(now time.Time) int {
	c.cancel()
	c.start = now
	c.state = Running
	return c.tag
}

// Reset returns to Idle and invalidates any pending tick. Safe to call repeatedly.
func (c *Clock) Reset() {
	c.cancel()
	c.state = Idle
	c.start = time.Time{}
}

func (c *Clock) cancel() {
	c.tag++
}

// Tick processes a tick message. ok is false for stale ticks or when the
// clock is not running; such ticks must not be rescheduled.
func (c *Clock) Tick(msg TickMsg) (reading Reading, ok bool) {
	if msg.Tag != c.tag || c.state != Running {
		return Reading{}, false
	}
	reading = c.read(msg.Time)
	if reading.Remaining <= 0 {
		c.state = Ended
		c.cancel()
		reading.Ended = true
	}
	return reading, true
}

func (c *Clock) read(now time.Time) Reading {
	elapsed := now.Sub(c.start)
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := c.duration - elapsed
	if remaining < 0 {
		remaining = 0
	}
	progress := 100.0
	if c.duration > 0 {
		progress = math.Min(100, float64(elapsed)/float64(c.duration)*100)
	}
	return Reading{
		Elapsed:   elapsed,
		Remaining: remaining,
		Display:   FormatRemaining(remaining),
		Progress:  progress,
	}
}

// Elapsed returns the time since Start, or zero when idle.
func (c *Clock) Elapsed(now time.Time) time.Duration {
	if c.state == Idle || c.start.IsZero() {
		return 0
	}
	return c.read(now).Elapsed
}

// IdleReading returns the display shown before a session starts.
func (c *Clock) IdleReading() Reading {
	return Reading{
		Remaining: c.duration,
		Display:   FormatRemaining(c.duration),
	}
}

// TickCmd schedules the next tick for tag.
func TickCmd(tag int) tea.Cmd {
	return tea.Tick(Interval, func(t time.Time) tea.Msg {
		return TickMsg{Tag: tag, Time: t}
	})
}

// FormatRemaining renders whole seconds as mm:ss, truncating fractions.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
