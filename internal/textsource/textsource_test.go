package textsource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/fingerdrill/internal/generator"
)

func TestTextFixedModes(t *testing.T) {
	var p Provider
	assert.Equal(t, WordsSample, p.Text(ModeWords, "ignored"))
	assert.Equal(t, SentencesSample, p.Text(ModeSentences, "ignored"))
	assert.Equal(t, DefaultSample, p.Text(ModeDefault, ""))
	assert.Equal(t, DefaultSample, p.Text(Mode("unknown"), ""))
}

func TestTextCustom(t *testing.T) {
	var p Provider
	assert.Equal(t, "my text", p.Text(ModeCustom, "  my text \n"))
	assert.Equal(t, CustomPlaceholder, p.Text(ModeCustom, ""))
	assert.Equal(t, CustomPlaceholder, p.Text(ModeCustom, " \t "))
	assert.Equal(t, "ab cd ef", p.Text(ModeCustom, "ab\ncd\t\tef"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ab cd", Normalize("ab\ncd"))
	assert.Equal(t, "ab cd", Normalize("  ab \r\n\t cd  "))
	assert.Equal(t, "", Normalize("\n\t"))
}

func TestTextRandom(t *testing.T) {
	p := &Provider{
		Words:     []string{"home", "row"},
		Generator: generator.NewSeeded(3),
		Options:   generator.Options{Count: 6},
	}
	text := p.Text(ModeRandom, "")
	words := strings.Fields(text)
	require.Len(t, words, 6)
	for _, w := range words {
		assert.Contains(t, []string{"home", "row"}, w)
	}
}

func TestTextRandomWithoutWordsFallsBack(t *testing.T) {
	var p Provider
	assert.Equal(t, WordsSample, p.Text(ModeRandom, ""))

	var nilProvider *Provider
	assert.Equal(t, WordsSample, nilProvider.Text(ModeRandom, ""))
}

func TestNextCycles(t *testing.T) {
	m := ModeDefault
	seen := map[Mode]bool{}
	for range Modes {
		seen[m] = true
		m = Next(m)
	}
	assert.Equal(t, ModeDefault, m)
	assert.Len(t, seen, len(Modes))
	assert.Equal(t, ModeDefault, Next(Mode("bogus")))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"", ModeDefault},
		{"words", ModeWords},
		{"SENTENCES", ModeSentences},
		{"sent", ModeSentences},
		{"cust", ModeCustom},
		{"random", ModeRandom},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseModeUnknown(t *testing.T) {
	_, err := ParseMode("xyz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}
