// Package main provides the CLI entrypoint for fingerdrill.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/verte-zerg/fingerdrill/internal/config"
	"github.com/verte-zerg/fingerdrill/internal/generator"
	"github.com/verte-zerg/fingerdrill/internal/leaderboard"
	"github.com/verte-zerg/fingerdrill/internal/model"
	"github.com/verte-zerg/fingerdrill/internal/stats"
	"github.com/verte-zerg/fingerdrill/internal/store"
	"github.com/verte-zerg/fingerdrill/internal/textsource"
	"github.com/verte-zerg/fingerdrill/internal/trainer"
	"github.com/verte-zerg/fingerdrill/internal/tui"
	"github.com/verte-zerg/fingerdrill/internal/wordlist"
)

const (
	defaultMode        = string(textsource.ModeDefault)
	defaultDuration    = 30
	maxDuration        = 3600
	defaultWords       = 25
	defaultCaps        = 0.0
	defaultPunct       = 0.0
	defaultCurveWindow = 10
)

const defaultPunctSet = ".,!?;:"

var (
	practiceMode     string
	practiceDuration int
	practiceText     string
	practiceTextFile string
	practiceWordList string
	practiceWords    int
	practiceCaps     float64
	practicePunct    float64
	practicePunctSet string

	statsSince       string
	statsLast        int
	statsCurveWindow int

	scoresClear bool

	verbose bool
	logger  *zap.Logger
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fingerdrill",
		Short:         "Timed typing drills with finger hints",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			logger, err = newLogger(config.DefaultLogPath(), verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runPracticeCmd,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVar(&practiceMode, "mode", defaultMode, "text mode: default, words, sentences, random, custom")
	rootCmd.Flags().IntVar(&practiceDuration, "duration", defaultDuration, "session length in seconds")
	rootCmd.Flags().StringVar(&practiceText, "text", "", "custom practice text")
	rootCmd.Flags().StringVar(&practiceTextFile, "text-file", "", "read custom practice text from a file")
	rootCmd.Flags().StringVar(&practiceWordList, "wordlist", "", "word list for random mode (one word per line)")
	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per random text")
	rootCmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func newLogger(path string, debug bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &practiceMode, fileCfg.Practice.Mode)
	applyIntConfig(cmd, "duration", &practiceDuration, fileCfg.Practice.Duration)
	applyStringConfig(cmd, "text", &practiceText, fileCfg.Practice.CustomText)
	applyStringConfig(cmd, "wordlist", &practiceWordList, fileCfg.Practice.WordList)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyFloatConfig(cmd, "caps", &practiceCaps, fileCfg.Practice.CapsPct)
	applyFloatConfig(cmd, "punct", &practicePunct, fileCfg.Practice.PunctPct)
	applyStringConfig(cmd, "punct-set", &practicePunctSet, fileCfg.Practice.PunctSet)

	customText := practiceText
	if practiceTextFile != "" {
		customText, err = wordlist.LoadText(practiceTextFile)
		if err != nil {
			return fmt.Errorf("failed to load text file: %w", err)
		}
	}

	cfg := model.Config{
		Mode:         practiceMode,
		Duration:     practiceDuration,
		CustomText:   customText,
		WordListPath: practiceWordList,
		Words:        practiceWords,
		CapsPct:      practiceCaps,
		PunctPct:     practicePunct,
		PunctSet:     practicePunctSet,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	mode, err := resolveMode(cfg)
	if err != nil {
		return err
	}

	words, err := loadWords(cfg.WordListPath)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	logger.Debug("starting trainer",
		zap.String("mode", string(mode)),
		zap.Int("duration", cfg.Duration),
		zap.Int("words", len(words)))

	provider := &textsource.Provider{
		Words:     words,
		Generator: generator.New(),
		Options: generator.Options{
			Count:    cfg.Words,
			CapsPct:  cfg.CapsPct,
			PunctPct: cfg.PunctPct,
			PunctSet: []rune(cfg.PunctSet),
		},
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	m := tui.NewModel(ctx, trainer.Options{
		Mode:       mode,
		Duration:   time.Duration(cfg.Duration) * time.Second,
		CustomText: cfg.CustomText,
		Provider:   provider,
		Board:      leaderboard.New(st, logger),
		History:    st,
		Logger:     logger,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		logger.Info("created config", zap.String("path", path))
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show the leaderboard",
		Args:  cobra.NoArgs,
		RunE:  runScoresCmd,
	}
	cmd.Flags().BoolVar(&scoresClear, "clear", false, "remove all saved scores")
	return cmd
}

func runScoresCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	board := leaderboard.New(st, logger)
	if scoresClear {
		if err := board.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear scores: %w", err)
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), "Leaderboard cleared."); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if err := stats.RenderLeaderboard(cmd.OutOrStdout(), board.List(ctx)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show session history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildStatsConfig(statsSince, statsLast, statsCurveWindow)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	report, err := stats.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}
	if err := report.Render(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func buildStatsConfig(since string, last, window int) (model.StatsConfig, error) {
	if last < 0 {
		return model.StatsConfig{}, fmt.Errorf("--last must be >= 0")
	}
	if window <= 0 {
		return model.StatsConfig{}, fmt.Errorf("--curve-window must be > 0")
	}
	var sinceTime *time.Time
	if since != "" {
		parsed, err := time.ParseInLocation("2006-01-02", since, time.Local)
		if err != nil {
			return model.StatsConfig{}, fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	return model.StatsConfig{
		Since:       sinceTime,
		Last:        last,
		CurveWindow: window,
	}, nil
}

// resolveMode parses the configured mode. Custom text without an explicit
// mode selects custom mode.
func resolveMode(cfg model.Config) (textsource.Mode, error) {
	mode, err := textsource.ParseMode(cfg.Mode)
	if err != nil {
		return "", fmt.Errorf("invalid --mode: %w", err)
	}
	if mode == textsource.ModeDefault && strings.TrimSpace(cfg.CustomText) != "" {
		return textsource.ModeCustom, nil
	}
	return mode, nil
}

// loadWords returns the random-mode word list with words the finger map
// cannot hint dropped.
func loadWords(path string) ([]string, error) {
	words := wordlist.Builtin()
	if path != "" {
		loaded, err := wordlist.LoadWords(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
		}
		words = loaded
	}
	words = wordlist.Filter(words, wordlist.Hintable)
	if len(words) == 0 {
		return nil, fmt.Errorf("word list %s has no typeable words", path)
	}
	return words, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# fingerdrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# mode = %q          # default, words, sentences, random, custom
# duration = %d             # Session length in seconds (1-%d)
# custom-text = ""          # Text for custom mode
# wordlist = ""             # Word list for random mode (one word per line)
# words = %d                # Words per random text
# caps = %.2f               # Probability of capitalized first letter (0-1)
# punct = %.2f              # Punctuation probability per word (0-1)
# punct-set = %q        # Punctuation set
`,
		defaultMode,
		defaultDuration,
		maxDuration,
		defaultWords,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Duration < 1 || cfg.Duration > maxDuration {
		return fmt.Errorf("--duration must be between 1 and %d", maxDuration)
	}
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
