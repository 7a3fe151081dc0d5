package tui

import (
	"testing"

	"github.com/verte-zerg/fingerdrill/internal/typing"
)

func TestBuildStyledRunesCursor(t *testing.T) {
	target := []rune("ab")
	states := []typing.CharState{typing.Correct, typing.Pending}

	runes := buildStyledRunes(target, states, 1)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildStyledRunesNoCursorWhenComplete(t *testing.T) {
	target := []rune("a")
	states := []typing.CharState{typing.Correct}

	runes := buildStyledRunes(target, states, -1)
	if len(runes) != 1 {
		t.Fatalf("expected 1 rune, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for completed rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	target := []rune("ab")
	states := []typing.CharState{typing.Correct, typing.Wrong}

	runes := buildStyledRunes(target, states, -1)
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style for second rune")
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	target := []rune("one two")
	states := make([]typing.CharState, len(target))
	states[0] = typing.Correct

	runes := buildStyledRunes(target, states, 1)
	if runes[0].s != correctStyle.Render("o") {
		t.Fatalf("expected correct style for typed rune")
	}
	if runes[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style for untyped in current word")
	}
	if runes[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
	if runes[6].s != pendingStyle.Render("o") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	target := []rune("a b")
	states := []typing.CharState{typing.Correct, typing.Wrong, typing.Pending}

	runes := buildStyledRunes(target, states, 2)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
	if !runes[1].isSpace {
		t.Fatalf("expected wrong space to keep wrap position")
	}
}

func TestBuildStyledRunesShortStates(t *testing.T) {
	runes := buildStyledRunes([]rune("xy"), nil, -1)
	if runes[0].s != currentWordStyle.Render("x") {
		t.Fatalf("expected missing states to render as pending")
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	runes := []styledRune{}
	for _, r := range "ab cd ef" {
		runes = append(runes, styledRune{s: string(r), width: 1, isSpace: r == ' '})
	}
	got := wrapStyledRunes(runes, 5)
	if got != "ab\ncd ef" {
		t.Fatalf("unexpected wrap %q", got)
	}
}
