package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/termtyper/internal/config"
	"github.com/verte-zerg/termtyper/internal/model"
	"github.com/verte-zerg/termtyper/internal/store"
	"github.com/verte-zerg/termtyper/internal/wordlist"
)

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(model.Config{Lang: "english", Words: 50}); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	if err := validateConfig(model.Config{Lang: "english", Words: 0}); err == nil {
		t.Fatalf("expected error for zero words")
	}
	err := validateConfig(model.Config{Lang: "englsh", Words: 5})
	if err == nil {
		t.Fatalf("expected error for unknown language")
	}
	if !strings.Contains(err.Error(), `did you mean "english"?`) {
		t.Fatalf("expected suggestion, got %v", err)
	}
}

func TestSuggestLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"englsh", "english"},
		{"polsh", "polish"},
		{"PL", "polish"},
		{"xyz", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := suggestLanguage(tt.input); got != tt.want {
			t.Fatalf("suggestLanguage(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRootFlagsOverrideConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	data := "[practice]\nwords = 12\nlanguage = \"polish\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"-n", "7"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if err := preparePracticeCmd(cmd, nil); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	cfg := currentConfig()
	if cfg.Words != 7 {
		t.Fatalf("expected flag to win, got %d words", cfg.Words)
	}
	if cfg.Lang != wordlist.Polish {
		t.Fatalf("expected config language, got %q", cfg.Lang)
	}
	if cfg.WordListDir != config.DefaultWordListDir() {
		t.Fatalf("unexpected wordlist dir %q", cfg.WordListDir)
	}
}

func TestRootRejectsInvalidLanguage(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--language", "polsh"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	err := preparePracticeCmd(cmd, nil)
	if err == nil || !strings.Contains(err.Error(), "polish") {
		t.Fatalf("expected invalid language error with suggestion, got %v", err)
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termtyper", "config.toml")
	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("write default config: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("template must decode: %v", err)
	}
	if cfg.Practice.Words != nil || cfg.Terminal.PollIntervalMS != nil {
		t.Fatalf("template values must be commented out: %+v", cfg)
	}
}

func TestImportAndListWordLists(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "termtyper.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	src := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(src, []byte("alpha\nbeta\nnaïve\ngamma\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	ctx := context.Background()
	n, err := importWordList(ctx, st, wordlist.English, src, time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 words after filtering, got %d", n)
	}

	var out bytes.Buffer
	if err := printLangs(ctx, &out, st, t.TempDir()); err != nil {
		t.Fatalf("print langs: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(wordlist.Languages) {
		t.Fatalf("expected one line per language, got %q", out.String())
	}
	if !strings.HasPrefix(lines[0], "english") || !strings.Contains(lines[0], wordlist.SourceStore) || !strings.Contains(lines[0], "3 words") {
		t.Fatalf("unexpected english line %q", lines[0])
	}
	if !strings.Contains(lines[1], wordlist.SourceEmbedded) {
		t.Fatalf("expected polish to use the built-in list, got %q", lines[1])
	}
}

func TestImportRejectsEmptyResult(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "termtyper.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	src := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(src, []byte("ÆØÅ\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	_, err = importWordList(context.Background(), st, wordlist.English, src, time.Now())
	if !errors.Is(err, wordlist.ErrInsufficientWords) {
		t.Fatalf("expected ErrInsufficientWords, got %v", err)
	}
}

func TestRequireLang(t *testing.T) {
	if _, err := requireLang(""); err == nil {
		t.Fatalf("expected error for missing --lang")
	}
	got, err := requireLang(" Polish ")
	if err != nil || got != wordlist.Polish {
		t.Fatalf("requireLang = %q, %v", got, err)
	}
}
