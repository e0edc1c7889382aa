package wordlist

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/termtyper/internal/generator"
	"github.com/verte-zerg/termtyper/internal/model"
)

// Supported languages.
const (
	English = "english"
	Polish  = "polish"
)

// Languages lists the supported language identifiers.
var Languages = []string{English, Polish}

// Word list sources, in lookup order.
const (
	SourceStore    = "imported"
	SourceFile     = "file"
	SourceEmbedded = "builtin"
)

//go:embed words/*.json
var embedded embed.FS

// IsSupported reports whether lang is a known language identifier.
func IsSupported(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// WordStore returns imported word lists.
type WordStore interface {
	Words(ctx context.Context, lang string) ([]string, error)
}

// Provider resolves word lists and samples passages from them.
type Provider struct {
	store WordStore
	dir   string
	gen   *generator.Generator
}

// NewProvider builds a provider. store and dir are optional.
func NewProvider(store WordStore, dir string, gen *generator.Generator) *Provider {
	if gen == nil {
		gen = generator.New()
	}
	return &Provider{store: store, dir: dir, gen: gen}
}

// Sample draws count distinct words for lang.
func (p *Provider) Sample(ctx context.Context, lang string, count int) ([]string, error) {
	words, _, err := p.Words(ctx, lang)
	if err != nil {
		return nil, err
	}
	if count > len(words) {
		return nil, fmt.Errorf("%w: %s has %d words, %d requested", ErrInsufficientWords, lang, len(words), count)
	}
	return p.gen.Sample(words, count), nil
}

// Words resolves the word list for lang and reports where it came from.
func (p *Provider) Words(ctx context.Context, lang string) ([]string, string, error) {
	if !IsSupported(lang) {
		return nil, "", fmt.Errorf("%w: unsupported language %q", ErrNotFound, lang)
	}
	if p.store != nil {
		words, err := p.store.Words(ctx, lang)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read imported word list: %w", err)
		}
		if len(words) > 0 {
			return words, SourceStore, nil
		}
	}
	if p.dir != "" {
		words, err := p.loadDir(lang)
		if err == nil {
			return words, SourceFile, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", err
		}
	}
	words, err := loadEmbedded(lang)
	if err != nil {
		return nil, "", err
	}
	return words, SourceEmbedded, nil
}

// Info describes the list each supported language resolves to.
func (p *Provider) Info(ctx context.Context) ([]model.WordListInfo, error) {
	out := make([]model.WordListInfo, 0, len(Languages))
	for _, lang := range Languages {
		words, source, err := p.Words(ctx, lang)
		if err != nil {
			return nil, err
		}
		out = append(out, model.WordListInfo{Lang: lang, Source: source, Size: len(words)})
	}
	return out, nil
}

func (p *Provider) loadDir(lang string) ([]string, error) {
	for _, name := range []string{lang + "_words.json", lang + ".txt"} {
		path := filepath.Join(p.dir, name)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		return LoadWords(path)
	}
	return nil, os.ErrNotExist
}

func loadEmbedded(lang string) ([]string, error) {
	data, err := embedded.ReadFile("words/" + lang + "_words.json")
	if err != nil {
		return nil, fmt.Errorf("%w: no built-in list for %s", ErrNotFound, lang)
	}
	words, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, lang, err)
	}
	return words, nil
}

// SuggestionText formats a list of languages for error messages.
func SuggestionText() string {
	return strings.Join(Languages, ", ")
}
