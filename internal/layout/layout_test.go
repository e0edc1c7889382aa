package layout

import (
	"strings"
	"testing"
)

func TestWrapPadsMidWordBoundaries(t *testing.T) {
	got := Wrap([]string{"go", "do", "it"}, 4)
	if got != "go  do  it" {
		t.Fatalf("unexpected wrap: %q", got)
	}
	if lines := LineCount(got, 4); lines != 3 {
		t.Fatalf("expected 3 lines, got %d", lines)
	}
}

func TestWrapLeavesSpaceBoundaries(t *testing.T) {
	tests := []struct {
		words []string
		width int
		want  string
	}{
		{[]string{"abcd", "efgh"}, 5, "abcd efgh"},
		{[]string{"abc", "de"}, 3, "abc de"},
		{[]string{"one", "two", "three"}, 0, "one two three"},
		{[]string{"short"}, 10, "short"},
	}
	for _, tt := range tests {
		if got := Wrap(tt.words, tt.width); got != tt.want {
			t.Fatalf("Wrap(%v, %d) = %q, want %q", tt.words, tt.width, got, tt.want)
		}
	}
}

func TestWrapOverflowsLongWords(t *testing.T) {
	words := []string{"a", "verylongword", "b"}
	got := Wrap(words, 4)
	if got != "a   verylongword b" {
		t.Fatalf("unexpected wrap: %q", got)
	}
	if Unwrap(got) != strings.Join(words, " ") {
		t.Fatalf("unwrap lost characters: %q", Unwrap(got))
	}
}

func TestWrapNeverSplitsWords(t *testing.T) {
	words := strings.Fields("the quick brown fox jumps over the lazy dog while a zebra naps under the old oak tree")
	for width := 5; width <= 40; width++ {
		text := []rune(Wrap(words, width))
		for b := width; b < len(text); b += width {
			if text[b-1] != ' ' && text[b] != ' ' {
				t.Fatalf("width %d: word split at %d in %q", width, b, string(text))
			}
		}
		if Unwrap(string(text)) != strings.Join(words, " ") {
			t.Fatalf("width %d: unwrap mismatch %q", width, string(text))
		}
	}
}

func TestWrapKeepsUnicodeWords(t *testing.T) {
	words := []string{"źdźbło", "łąka", "żółw"}
	got := Wrap(words, 8)
	if got != "źdźbło  łąka    żółw" {
		t.Fatalf("unexpected wrap: %q", got)
	}
	if LineCount(got, 8) != 3 {
		t.Fatalf("expected 3 lines, got %d", LineCount(got, 8))
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  int
	}{
		{"", 10, 0},
		{"abc", 0, 1},
		{"abcd", 4, 1},
		{"abcde", 4, 2},
		{"go  do  it", 4, 3},
	}
	for _, tt := range tests {
		if got := LineCount(tt.text, tt.width); got != tt.want {
			t.Fatalf("LineCount(%q, %d) = %d, want %d", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestRewrapIsStable(t *testing.T) {
	words := strings.Fields("alpha beta gamma delta epsilon zeta eta theta")
	p := NewPassage(words, 12)
	first := p.Rewrap(12)
	second := first.Rewrap(30).Rewrap(12)
	if first.Wrapped != p.Wrapped || second.Wrapped != p.Wrapped {
		t.Fatalf("rewrap drifted: %q / %q / %q", p.Wrapped, first.Wrapped, second.Wrapped)
	}
	if second.Lines != p.Lines || second.Width != 12 {
		t.Fatalf("unexpected passage metadata: %+v", second)
	}
}

func TestNewPassageCopiesWords(t *testing.T) {
	words := []string{"one", "two"}
	p := NewPassage(words, 10)
	words[0] = "changed"
	if p.Words[0] != "one" {
		t.Fatalf("passage shares word slice with caller")
	}
}

func TestAnchorsSkipPadding(t *testing.T) {
	got := Anchors([]rune("go  do  it"))
	want := []int{0, 1, 2, 4, 5, 6, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
