// Package main provides the CLI entrypoint for termtyper.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/termtyper/internal/config"
	"github.com/verte-zerg/termtyper/internal/generator"
	"github.com/verte-zerg/termtyper/internal/model"
	"github.com/verte-zerg/termtyper/internal/session"
	"github.com/verte-zerg/termtyper/internal/stats"
	"github.com/verte-zerg/termtyper/internal/store"
	"github.com/verte-zerg/termtyper/internal/tui"
	"github.com/verte-zerg/termtyper/internal/wordlist"
)

const (
	defaultLang  = wordlist.English
	defaultWords = 50
	debugEnv     = "TERMTYPER_DEBUG"
)

var (
	practiceLang        string
	practiceWords       int
	practiceWordListDir string
	practicePoll        time.Duration

	wordlistLang string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "termtyper",
		Short:         "Terminal typing trainer",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE:       preparePracticeCmd,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().IntVarP(&practiceWords, "words", "n", defaultWords, "number of words in the passage")
	rootCmd.Flags().StringVarP(&practiceLang, "language", "l", defaultLang, "word list language ("+strings.Join(wordlist.Languages, ", ")+")")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newWordlistCmd())

	return rootCmd
}

// preparePracticeCmd merges the config file under the flags and validates
// the result before any terminal setup happens.
func preparePracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyStringConfig(cmd, "language", &practiceLang, fileCfg.Practice.Language)
	practiceWordListDir = config.DefaultWordListDir()
	if fileCfg.Practice.WordListDir != nil {
		practiceWordListDir = *fileCfg.Practice.WordListDir
	}
	practicePoll = fileCfg.Terminal.PollInterval()

	practiceLang = strings.ToLower(strings.TrimSpace(practiceLang))
	return validateConfig(currentConfig())
}

func currentConfig() model.Config {
	return model.Config{
		Lang:         practiceLang,
		Words:        practiceWords,
		WordListDir:  practiceWordListDir,
		PollInterval: practicePoll,
	}
}

func runPracticeCmd(_ *cobra.Command, _ []string) error {
	cfg := currentConfig()

	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

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
	provider := wordlist.NewProvider(st, cfg.WordListDir, generator.New())
	engine, err := session.New(ctx, cfg, provider)
	if err != nil {
		return wordListLoadError(cfg.Lang, err)
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdout is not a terminal")
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("failed to read terminal size: %w", err)
	}
	if err := engine.Resize(width, height); err != nil {
		return err
	}
	log.Printf("starting: lang=%s words=%d size=%dx%d", cfg.Lang, cfg.Words, width, height)

	m := tui.NewModel(engine, cfg.PollInterval)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if results := m.Results(); len(results) > 0 {
		if err := stats.RenderRounds(os.Stdout, results); err != nil {
			logErrf("failed to print summary: %v\n", err)
		}
	}
	return m.Err()
}

// setupLogging routes the log package to the debug file named by
// TERMTYPER_DEBUG, or discards it. The alt screen owns stderr while the
// program runs.
func setupLogging() (func(), error) {
	path := strings.TrimSpace(os.Getenv(debugEnv))
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "termtyper")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close debug log: %v\n", cerr)
		}
	}, nil
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
	if err := writeDefaultConfig(path); err != nil {
		return err
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

// writeDefaultConfig creates the config file from the template unless it exists.
func writeDefaultConfig(path string) error {
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
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List languages and the word list each one uses",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	dir := config.DefaultWordListDir()
	if fileCfg.Practice.WordListDir != nil {
		dir = *fileCfg.Practice.WordListDir
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

	return printLangs(cmd.Context(), cmd.OutOrStdout(), st, dir)
}

func printLangs(ctx context.Context, w io.Writer, st *store.Store, dir string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	provider := wordlist.NewProvider(st, dir, nil)
	infos, err := provider.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve word lists: %w", err)
	}
	imported, err := st.ListWordLists(ctx)
	if err != nil {
		return fmt.Errorf("failed to list imported word lists: %w", err)
	}
	importedAt := make(map[string]model.WordListInfo, len(imported))
	for _, info := range imported {
		importedAt[info.Lang] = info
	}

	for _, info := range infos {
		line := fmt.Sprintf("%-8s %-9s %6d words", info.Lang, info.Source, info.Size)
		if imp, ok := importedAt[info.Lang]; ok && info.Source == wordlist.SourceStore {
			line += fmt.Sprintf("  from %s (%s)", imp.Source, imp.ImportedAt.Local().Format("2006-01-02 15:04"))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Manage imported word lists",
	}
	cmd.PersistentFlags().StringVar(&wordlistLang, "lang", "", "language of the word list")

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a word list (.json or one word per line)",
		Args:  cobra.ExactArgs(1),
		RunE:  runWordlistImportCmd,
	}
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove the imported word list and fall back to the default",
		Args:  cobra.NoArgs,
		RunE:  runWordlistResetCmd,
	}
	cmd.AddCommand(importCmd, resetCmd)
	return cmd
}

func runWordlistImportCmd(cmd *cobra.Command, args []string) error {
	lang, err := requireLang(wordlistLang)
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

	n, err := importWordList(context.Background(), st, lang, args[0], time.Now())
	if err != nil {
		return err
	}
	logErrf("Imported %d %s words from %s\n", n, lang, args[0])
	return nil
}

// importWordList loads path, keeps the words valid for lang and stores them.
func importWordList(ctx context.Context, st *store.Store, lang, path string, now time.Time) (int, error) {
	raw, err := wordlist.LoadWords(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load word list: %w", err)
	}
	words := wordlist.Filter(lang, raw)
	if dropped := len(raw) - len(words); dropped > 0 {
		logErrf("Skipped %d words not valid for %s\n", dropped, lang)
	}
	if len(words) == 0 {
		return 0, fmt.Errorf("%w: no %s words in %s", wordlist.ErrInsufficientWords, lang, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if err := st.ReplaceWords(ctx, lang, abs, words, now); err != nil {
		return 0, fmt.Errorf("failed to store word list: %w", err)
	}
	return len(words), nil
}

func runWordlistResetCmd(_ *cobra.Command, _ []string) error {
	lang, err := requireLang(wordlistLang)
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

	removed, err := st.DeleteWords(context.Background(), lang)
	if err != nil {
		return fmt.Errorf("failed to remove word list: %w", err)
	}
	if !removed {
		logErrln("No imported word list for", lang)
		return nil
	}
	logErrln("Removed imported word list for", lang)
	return nil
}

func requireLang(lang string) (string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return "", fmt.Errorf("--lang is required (available: %s)", wordlist.SuggestionText())
	}
	if err := validateLang(lang); err != nil {
		return "", err
	}
	return lang, nil
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# termtyper configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# words = %d                 # Words per passage
# language = %q         # One of: %s
# wordlist-dir = %q

[terminal]
# poll-interval-ms = %d      # Redraw period while idle
`,
		defaultWords,
		defaultLang,
		wordlist.SuggestionText(),
		config.DefaultWordListDir(),
		tui.DefaultPollInterval.Milliseconds(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	return validateLang(cfg.Lang)
}

func validateLang(lang string) error {
	if wordlist.IsSupported(lang) {
		return nil
	}
	msg := fmt.Sprintf("invalid language %q (available: %s)", lang, wordlist.SuggestionText())
	if s := suggestLanguage(lang); s != "" {
		msg += fmt.Sprintf("; did you mean %q?", s)
	}
	return errors.New(msg)
}

// suggestLanguage returns the best fuzzy match for input, or "".
func suggestLanguage(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}
	matches := fuzzy.Find(input, wordlist.Languages)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

func wordListLoadError(lang string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("language %q has no usable word list", lang),
		"Run: termtyper langs",
		fmt.Sprintf("Import: termtyper wordlist import --lang %s FILE", lang),
		fmt.Sprintf("Reset to built-in: termtyper wordlist reset --lang %s", lang),
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
