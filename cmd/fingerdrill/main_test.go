package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/fingerdrill/internal/model"
	"github.com/verte-zerg/fingerdrill/internal/textsource"
)

func validConfig() model.Config {
	return model.Config{
		Mode:     defaultMode,
		Duration: defaultDuration,
		Words:    defaultWords,
		PunctSet: defaultPunctSet,
	}
}

func TestValidateConfig(t *testing.T) {
	require.NoError(t, validateConfig(validConfig()))

	cases := map[string]func(*model.Config){
		"zero duration":  func(c *model.Config) { c.Duration = 0 },
		"long duration":  func(c *model.Config) { c.Duration = maxDuration + 1 },
		"no words":       func(c *model.Config) { c.Words = 0 },
		"caps range":     func(c *model.Config) { c.CapsPct = 1.5 },
		"punct range":    func(c *model.Config) { c.PunctPct = -0.1 },
		"punct no chars": func(c *model.Config) { c.PunctPct = 0.5; c.PunctSet = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(&cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}

func TestResolveMode(t *testing.T) {
	cfg := validConfig()
	mode, err := resolveMode(cfg)
	require.NoError(t, err)
	assert.Equal(t, textsource.ModeDefault, mode)

	cfg.CustomText = "my text"
	mode, err = resolveMode(cfg)
	require.NoError(t, err)
	assert.Equal(t, textsource.ModeCustom, mode)

	cfg.Mode = "sent"
	mode, err = resolveMode(cfg)
	require.NoError(t, err)
	assert.Equal(t, textsource.ModeSentences, mode)

	cfg.Mode = "zzz"
	_, err = resolveMode(cfg)
	assert.Error(t, err)
}

func TestBuildStatsConfig(t *testing.T) {
	cfg, err := buildStatsConfig("2024-06-01", 5, 3)
	require.NoError(t, err)
	require.NotNil(t, cfg.Since)
	assert.Equal(t, 2024, cfg.Since.Year())
	assert.Equal(t, 5, cfg.Last)
	assert.Equal(t, 3, cfg.CurveWindow)

	_, err = buildStatsConfig("06/01/2024", 0, 3)
	assert.Error(t, err)
	_, err = buildStatsConfig("", -1, 3)
	assert.Error(t, err)
	_, err = buildStatsConfig("", 0, 0)
	assert.Error(t, err)
}

func TestLoadWordsDropsUnhintable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nnaïve\nbeta\n"), 0o644))

	words, err := loadWords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, words)
}

func TestLoadWordsBuiltin(t *testing.T) {
	words, err := loadWords("")
	require.NoError(t, err)
	assert.NotEmpty(t, words)
}

func TestLoadWordsNothingTypeable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("ñ\n"), 0o644))

	_, err := loadWords(path)
	assert.Error(t, err)
}

func TestApplyConfigRespectsFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var mode string
	var words int
	cmd.Flags().StringVar(&mode, "mode", "default", "")
	cmd.Flags().IntVar(&words, "words", 25, "")
	require.NoError(t, cmd.Flags().Set("mode", "words"))

	fromFile := "random"
	fileWords := 40
	applyStringConfig(cmd, "mode", &mode, &fromFile)
	applyIntConfig(cmd, "words", &words, &fileWords)

	assert.Equal(t, "words", mode)
	assert.Equal(t, 40, words)
}
