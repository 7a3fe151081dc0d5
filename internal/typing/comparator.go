// Package typing compares typed input against a target text and derives live stats.
package typing

// CharState classifies one target position.
type CharState int

const (
	// Pending means the position has not been typed yet.
	Pending CharState = iota
	// Correct means the typed rune matches the target.
	Correct
	// Wrong means the typed rune differs from the target.
	Wrong
)

func (s CharState) String() string {
	switch s {
	case Correct:
		return "correct"
	case Wrong:
		return "wrong"
	default:
		return "pending"
	}
}

// Comparator classifies input against a fixed target and keeps the error counter.
//
// The counter is reset only by SetTarget. Every Evaluate adds the wrong
// positions it sees, so re-evaluating an uncorrected mistake counts it again.
type Comparator struct {
	target []rune
	errors int
}

// NewComparator returns a comparator for target.
func NewComparator(target string) *Comparator {
	c := &Comparator{}
	c.SetTarget(target)
	return c
}

// SetTarget replaces the target text and resets the error counter.
func (c *Comparator) SetTarget(target string) {
	c.target = []rune(target)
	c.errors = 0
}

// Target returns the target runes.
func (c *Comparator) Target() []rune {
	return c.target
}

// Errors returns the running error counter.
func (c *Comparator) Errors() int {
	return c.errors
}

// Evaluate classifies every target position against typed. Typed runes past
// the end of the target are ignored.
func (c *Comparator) Evaluate(typed []rune) []CharState {
	states := make([]CharState, len(c.target))
	for i, want := range c.target {
		if i >= len(typed) {
			break
		}
		if typed[i] == want {
			states[i] = Correct
			continue
		}
		states[i] = Wrong
		c.errors++
	}
	return states
}

// Next returns the next expected rune, or false once typed covers the target.
func (c *Comparator) Next(typed []rune) (rune, bool) {
	if len(typed) >= len(c.target) {
		return 0, false
	}
	return c.target[len(typed)], true
}
