// Package wordlist loads word lists and samples passages from them.
package wordlist

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound reports a missing or malformed word list.
	ErrNotFound = errors.New("word list not found")
	// ErrInsufficientWords reports a request for more words than a list holds.
	ErrInsufficientWords = errors.New("not enough words")
)

type jsonWordList struct {
	Words []string `json:"words"`
}

// LoadWords reads a word list file. Files ending in .json hold
// {"words": [...]}; anything else is read as one word per line.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	if strings.EqualFold(filepath.Ext(path), ".json") {
		words, err = parseJSON(file)
	} else {
		words, err = parseLines(file)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	return words, nil
}

// ParseJSON decodes an embedded or on-disk JSON word list.
func ParseJSON(data []byte) ([]string, error) {
	return parseJSON(bytes.NewReader(data))
}

func parseJSON(r io.Reader) ([]string, error) {
	var list jsonWordList
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("malformed word list: %w", err)
	}
	return cleanWords(list.Words)
}

func parseLines(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cleanWords(words)
}

func cleanWords(raw []string) ([]string, error) {
	words := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.ContainsAny(line, " \t") {
			return nil, fmt.Errorf("entry %q contains whitespace", line)
		}
		words = append(words, line)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
