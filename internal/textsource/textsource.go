// Package textsource supplies the practice text for each mode.
package textsource

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/verte-zerg/fingerdrill/internal/generator"
)

// Mode selects where the practice text comes from.
type Mode string

// Practice modes.
const (
	ModeDefault   Mode = "default"
	ModeWords     Mode = "words"
	ModeSentences Mode = "sentences"
	ModeCustom    Mode = "custom"
	ModeRandom    Mode = "random"
)

// Modes lists the selectable modes in cycling order.
var Modes = []Mode{ModeDefault, ModeWords, ModeSentences, ModeRandom, ModeCustom}

// Built-in samples and the custom-mode placeholder.
const (
	WordsSample       = "Typing is fun and improves speed"
	SentencesSample   = "In a digital world, fast typing is valuable."
	DefaultSample     = "Typing practice improves accuracy."
	CustomPlaceholder = "Paste your custom text"
)

// Provider returns practice text. The zero value serves the fixed samples;
// random mode needs a word list and generator.
type Provider struct {
	Words     []string
	Generator *generator.Generator
	Options   generator.Options
}

// Text returns a non-empty practice text for mode. custom is only consulted
// in custom mode.
func (p *Provider) Text(mode Mode, custom string) string {
	switch mode {
	case ModeWords:
		return WordsSample
	case ModeSentences:
		return SentencesSample
	case ModeCustom:
		if text := Normalize(custom); text != "" {
			return text
		}
		return CustomPlaceholder
	case ModeRandom:
		if p == nil || p.Generator == nil || len(p.Words) == 0 {
			return WordsSample
		}
		words := p.Generator.Generate(p.Words, p.Options)
		if len(words) == 0 {
			return WordsSample
		}
		return strings.Join(words, " ")
	default:
		return DefaultSample
	}
}

// Normalize collapses every run of whitespace, newlines and tabs included,
// into a single space and trims the ends. Only a space can be typed between
// words.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Next returns the mode after m in cycling order.
func Next(m Mode) Mode {
	for i, candidate := range Modes {
		if candidate == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return Modes[0]
}

// ParseMode resolves a mode name. Exact names win; otherwise an unambiguous
// fuzzy match is accepted ("sent" resolves to sentences).
func ParseMode(name string) (Mode, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return ModeDefault, nil
	}
	names := make([]string, len(Modes))
	for i, m := range Modes {
		if string(m) == name {
			return m, nil
		}
		names[i] = string(m)
	}
	matches := fuzzy.Find(name, names)
	switch {
	case len(matches) == 1:
		return Mode(matches[0].Str), nil
	case len(matches) > 1 && matches[0].Score > matches[1].Score:
		return Mode(matches[0].Str), nil
	case len(matches) > 1:
		return "", fmt.Errorf("ambiguous mode %q (matches: %s)", name, joinMatches(matches))
	default:
		return "", fmt.Errorf("unknown mode %q (available: %s)", name, strings.Join(names, ", "))
	}
}

func joinMatches(matches fuzzy.Matches) string {
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Str
	}
	return strings.Join(names, ", ")
}
