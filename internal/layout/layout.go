// Package layout wraps word sequences to a fixed terminal width.
package layout

import "strings"

// Passage is a word sequence wrapped to a width.
type Passage struct {
	Words   []string
	Wrapped string
	Lines   int
	Width   int
}

// NewPassage wraps words at width.
func NewPassage(words []string, width int) Passage {
	copied := append([]string(nil), words...)
	wrapped := Wrap(copied, width)
	return Passage{
		Words:   copied,
		Wrapped: wrapped,
		Lines:   LineCount(wrapped, width),
		Width:   width,
	}
}

// Rewrap rebuilds the passage for a new width from the original words.
func (p Passage) Rewrap(width int) Passage {
	return NewPassage(p.Words, width)
}

// Wrap joins words with single spaces and pads the space before any word
// that would cross a line boundary so that it starts on the next line.
// A word longer than a line is left to overflow.
func Wrap(words []string, width int) string {
	text := []rune(strings.Join(words, " "))
	if width <= 0 {
		return string(text)
	}
	for k := 1; k*width < len(text); k++ {
		boundary := k * width
		if text[boundary-1] == ' ' || text[boundary] == ' ' {
			continue
		}
		idx := lastSpace(text, (k-1)*width, boundary-1)
		if idx < 0 {
			continue
		}
		pad := boundary - idx
		out := make([]rune, 0, len(text)+pad-1)
		out = append(out, text[:idx]...)
		for i := 0; i < pad; i++ {
			out = append(out, ' ')
		}
		out = append(out, text[idx+1:]...)
		text = out
	}
	return string(text)
}

// lastSpace returns the index of the last space in text[from:to], or -1.
func lastSpace(text []rune, from, to int) int {
	if from < 0 {
		from = 0
	}
	for i := to - 1; i >= from; i-- {
		if text[i] == ' ' {
			return i
		}
	}
	return -1
}

// Unwrap collapses wrap padding back to single spaces.
func Unwrap(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// LineCount returns the number of display lines text occupies at width.
func LineCount(text string, width int) int {
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	if width <= 0 {
		return 1
	}
	return (n + width - 1) / width
}

// Anchors returns the wrapped index of every rune that is not wrap padding.
// A space that directly follows another space is padding.
func Anchors(wrapped []rune) []int {
	out := make([]int, 0, len(wrapped))
	for i, r := range wrapped {
		if r == ' ' && i > 0 && wrapped[i-1] == ' ' {
			continue
		}
		out = append(out, i)
	}
	return out
}
