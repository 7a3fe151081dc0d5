package finger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		in     rune
		finger string
		region Region
	}{
		{'a', "Left Pinky", RegionLeftPinky},
		{'q', "Left Pinky", RegionLeftPinky},
		{'z', "Left Pinky", RegionLeftPinky},
		{'A', "Left Pinky", RegionLeftPinky},
		{'s', "Left Ring Finger", RegionLeftRing},
		{'c', "Left Middle Finger", RegionLeftMiddle},
		{'g', "Left Index Finger", RegionLeftIndex},
		{'J', "Right Index Finger", RegionRightIndex},
		{',', "Right Middle Finger", RegionRightMiddle},
		{'.', "Right Ring Finger", RegionRightRing},
		{';', "Right Pinky", RegionRightPinky},
		{':', "Right Pinky", RegionRightPinky},
		{'/', "Right Pinky", RegionRightPinky},
		{' ', "Thumb (Space bar)", RegionThumbs},
		{'1', AnyFinger, RegionNone},
		{'!', AnyFinger, RegionNone},
		{0, AnyFinger, RegionNone},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got := Lookup(tt.in)
			assert.Equal(t, tt.finger, got.Finger)
			assert.Equal(t, tt.region, got.Region)
		})
	}
}

func TestMapped(t *testing.T) {
	assert.True(t, Mapped('k'))
	assert.True(t, Mapped(' '))
	assert.False(t, Mapped('7'))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "␣ (space)", Label(' ', true))
	assert.Equal(t, "x", Label('x', true))
	assert.Equal(t, "—", Label(0, false))
}

func TestDiagramSingleHighlight(t *testing.T) {
	var d Diagram
	d.Highlight(RegionLeftPinky)
	assert.True(t, d.IsActive(RegionLeftPinky))

	d.Highlight(RegionThumbs)
	assert.False(t, d.IsActive(RegionLeftPinky))
	assert.True(t, d.IsActive(RegionThumbs))

	d.Highlight(RegionNone)
	assert.Equal(t, RegionNone, d.Active())
	for _, r := range Regions {
		assert.False(t, d.IsActive(r))
	}
}

func TestRegionName(t *testing.T) {
	assert.Equal(t, "pinky", RegionRightPinky.Name())
	assert.Equal(t, "thumbs", RegionThumbs.Name())
	assert.Equal(t, "", RegionNone.Name())
}
