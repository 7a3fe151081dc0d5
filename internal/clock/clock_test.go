package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestTickComputesRemainingAndProgress(t *testing.T) {
	c := New(30 * time.Second)
	tag := c.Start(epoch)
	require.Equal(t, Running, c.State())

	r, ok := c.Tick(TickMsg{Tag: tag, Time: epoch.Add(7500 * time.Millisecond)})
	require.True(t, ok)
	assert.Equal(t, "00:22", r.Display)
	assert.InDelta(t, 25.0, r.Progress, 1e-9)
	assert.False(t, r.Ended)
}

func TestTickEndsExactlyOnce(t *testing.T) {
	c := New(2 * time.Second)
	tag := c.Start(epoch)

	r, ok := c.Tick(TickMsg{Tag: tag, Time: epoch.Add(2500 * time.Millisecond)})
	require.True(t, ok)
	assert.True(t, r.Ended)
	assert.Equal(t, "00:00", r.Display)
	assert.Equal(t, 100.0, r.Progress)
	assert.Equal(t, Ended, c.State())

	_, ok = c.Tick(TickMsg{Tag: tag, Time: epoch.Add(3 * time.Second)})
	assert.False(t, ok)
}

func TestResetDropsInFlightTick(t *testing.T) {
	c := New(30 * time.Second)
	tag := c.Start(epoch)
	c.Reset()
	c.Reset()

	_, ok := c.Tick(TickMsg{Tag: tag, Time: epoch.Add(time.Second)})
	assert.False(t, ok)
	assert.Equal(t, Idle, c.State())
}

func TestRestartInvalidatesPreviousTag(t *testing.T) {
	c := New(30 * time.Second)
	first := c.Start(epoch)
	second := c.Start(epoch.Add(time.Second))
	require.NotEqual(t, first, second)

	_, ok := c.Tick(TickMsg{Tag: first, Time: epoch.Add(2 * time.Second)})
	assert.False(t, ok)

	r, ok := c.Tick(TickMsg{Tag: second, Time: epoch.Add(2 * time.Second)})
	require.True(t, ok)
	assert.Equal(t, "00:29", r.Display)
}

func TestIdleReading(t *testing.T) {
	c := New(90 * time.Second)
	r := c.IdleReading()
	assert.Equal(t, "01:30", r.Display)
	assert.Zero(t, r.Progress)
	assert.Zero(t, c.Elapsed(epoch))
}

func TestElapsed(t *testing.T) {
	c := New(time.Minute)
	c.Start(epoch)
	assert.Equal(t, 1500*time.Millisecond, c.Elapsed(epoch.Add(1500*time.Millisecond)))
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "00:30", FormatRemaining(30*time.Second))
	assert.Equal(t, "00:29", FormatRemaining(29900*time.Millisecond))
	assert.Equal(t, "02:05", FormatRemaining(125*time.Second))
	assert.Equal(t, "00:00", FormatRemaining(-time.Second))
}

func TestTickCmdCarriesTag(t *testing.T) {
	cmd := TickCmd(7)
	require.NotNil(t, cmd)
}
