package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/termtyper/internal/model"
)

func TestStyleRunesCursor(t *testing.T) {
	runes := styleRunes([]rune("ab"), []bool{true}, 1)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0] != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1] != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestStyleRunesKeepsTargetOnMistype(t *testing.T) {
	runes := styleRunes([]rune("ab"), []bool{true, false}, -1)
	if runes[1] != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style for second rune")
	}
}

func TestStyleRunesWordHighlighting(t *testing.T) {
	runes := styleRunes([]rune("one two"), []bool{true}, 1)
	if runes[2] != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style for untyped in current word")
	}
	if runes[4] != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestStyleRunesWrongSpaceDot(t *testing.T) {
	runes := styleRunes([]rune("a b"), []bool{true, false}, 2)
	if runes[1] != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
}

func TestRenderPassageSplitsByWidth(t *testing.T) {
	snap := model.Snapshot{Passage: "go  do  it", Width: 4, Mode: model.EndTest, Typed: 10}
	out := renderPassage(snap)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Fatalf("expected 3 lines, got %d newlines", got)
	}
}

func TestWordForCursor(t *testing.T) {
	words := findWords([]rune("go  do"))
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if w := wordForCursor(words, 3); w == nil || w.start != 4 {
		t.Fatalf("expected cursor on padding to point at the next word, got %+v", w)
	}
	if w := wordForCursor(words, -1); w != nil {
		t.Fatalf("expected no current word without a cursor")
	}
}
