// Package finger maps characters to the finger that should press them.
package finger

import (
	"strings"
	"unicode"
)

// Region identifies a zone on the hand diagram.
type Region string

// Diagram regions. RegionNone means nothing is highlighted.
const (
	RegionNone        Region = ""
	RegionLeftPinky   Region = "leftPinky"
	RegionLeftRing    Region = "leftRing"
	RegionLeftMiddle  Region = "leftMiddle"
	RegionLeftIndex   Region = "leftIndex"
	RegionThumbs      Region = "thumbs"
	RegionRightIndex  Region = "rightIndex"
	RegionRightMiddle Region = "rightMiddle"
	RegionRightRing   Region = "rightRing"
	RegionRightPinky  Region = "rightPinky"
)

// Regions lists every diagram region from left to right.
var Regions = []Region{
	RegionLeftPinky,
	RegionLeftRing,
	RegionLeftMiddle,
	RegionLeftIndex,
	RegionThumbs,
	RegionRightIndex,
	RegionRightMiddle,
	RegionRightRing,
	RegionRightPinky,
}

// AnyFinger is the hint for characters outside the home layout.
const AnyFinger = "Any finger"

// Hint names the finger for a character and its diagram region.
type Hint struct {
	Finger string
	Region Region
}

type assignment struct {
	keys   string
	finger string
	region Region
}

var assignments = []assignment{
	{keys: "qaz", finger: "Left Pinky", region: RegionLeftPinky},
	{keys: "wsx", finger: "Left Ring Finger", region: RegionLeftRing},
	{keys: "edc", finger: "Left Middle Finger", region: RegionLeftMiddle},
	{keys: "rfvtgb", finger: "Left Index Finger", region: RegionLeftIndex},
	{keys: "yhnujm", finger: "Right Index Finger", region: RegionRightIndex},
	{keys: "ik,", finger: "Right Middle Finger", region: RegionRightMiddle},
	{keys: "ol.", finger: "Right Ring Finger", region: RegionRightRing},
	{keys: "p;:/", finger: "Right Pinky", region: RegionRightPinky},
	{keys: " ", finger: "Thumb (Space bar)", region: RegionThumbs},
}

// Lookup returns the finger hint for r. Matching is case-insensitive.
func Lookup(r rune) Hint {
	r = unicode.ToLower(r)
	for _, a := range assignments {
		if strings.ContainsRune(a.keys, r) {
			return Hint{Finger: a.finger, Region: a.region}
		}
	}
	return Hint{Finger: AnyFinger}
}

// Mapped reports whether r has a dedicated finger.
func Mapped(r rune) bool {
	return Lookup(r).Region != RegionNone
}

// Label renders the next-character label.
func Label(r rune, ok bool) string {
	if !ok {
		return "—"
	}
	if r == ' ' {
		return "␣ (space)"
	}
	return string(r)
}

// Name returns a short display name for a region.
func (r Region) Name() string {
	switch r {
	case RegionLeftPinky, RegionRightPinky:
		return "pinky"
	case RegionLeftRing, RegionRightRing:
		return "ring"
	case RegionLeftMiddle, RegionRightMiddle:
		return "middle"
	case RegionLeftIndex, RegionRightIndex:
		return "index"
	case RegionThumbs:
		return "thumbs"
	default:
		return ""
	}
}
