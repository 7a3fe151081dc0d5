// Package wordlist loads word lists and custom text from files.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/verte-zerg/fingerdrill/internal/textsource"
)

// builtin is the drill vocabulary used when no word list file is configured.
var builtin = []string{
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
	"typing", "practice", "improves", "accuracy", "speed", "fun",
	"digital", "world", "fast", "valuable", "keyboard", "finger",
	"home", "row", "rhythm", "steady", "focus", "hands", "light",
	"reach", "press", "space", "shift", "letter", "word", "line",
	"small", "habits", "daily", "minute", "clock", "score", "best",
	"slow", "smooth", "calm", "flow", "learn", "train", "skill",
}

// Builtin returns a copy of the built-in word list.
func Builtin() []string {
	return append([]string(nil), builtin...)
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// LoadText reads a custom practice text, collapsing runs of whitespace
// (including newlines) into single spaces.
func LoadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := textsource.Normalize(string(data))
	if text == "" {
		return "", fmt.Errorf("text file is empty")
	}
	return text, nil
}
