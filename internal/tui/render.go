package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/termtyper/internal/model"
)

type wordRange struct {
	start int
	end   int
}

// styleRunes renders each target rune according to what was typed over it.
func styleRunes(target []rune, correct []bool, cursorIndex int) []string {
	words := findWords(target)
	currentWord := wordForCursor(words, cursorIndex)

	out := make([]string, 0, len(target))
	for i, r := range target {
		displayed := r
		style := pendingStyle
		if i < len(correct) {
			switch {
			case correct[i]:
				style = correctStyle
			case r == ' ':
				displayed = '•'
				style = incorrectStyle
			default:
				style = incorrectStyle
			}
		} else if r != ' ' && currentWord != nil && i >= currentWord.start && i < currentWord.end {
			style = currentWordStyle
		}
		if i == cursorIndex {
			style = style.Underline(true)
		}
		out = append(out, style.Render(string(displayed)))
	}
	return out
}

// renderPassage splits the wrapped passage into display lines of width runes.
func renderPassage(snap model.Snapshot) string {
	target := []rune(snap.Passage)
	cursorIndex := -1
	if snap.Mode == model.BeginTest && snap.Typed < len(target) {
		cursorIndex = snap.Typed
	}
	styled := styleRunes(target, snap.Correct, cursorIndex)
	width := snap.Width
	if width <= 0 {
		width = len(styled)
	}
	var b strings.Builder
	for start := 0; start < len(styled); start += width {
		if start > 0 {
			b.WriteByte('\n')
		}
		end := start + width
		if end > len(styled) {
			end = len(styled)
		}
		b.WriteString(strings.Join(styled[start:end], ""))
	}
	return b.String()
}

// footerLines renders the fixed-height block under the passage.
func footerLines(snap model.Snapshot, h help.Model) []string {
	lines := []string{
		"",
		h.ShortHelpView(hintBindings(snap.Hints)),
		statsStyle.Render(fmt.Sprintf("WPM: %.1f  CPM: %.1f", snap.Stats.WPM, snap.Stats.CPM)),
		statsStyle.Render(fmt.Sprintf("accuracy: %.1f%%", snap.Stats.Accuracy)),
		statsStyle.Render(fmt.Sprintf("time: %.2fs", snap.Stats.ElapsedSeconds)),
	}
	if snap.Mode == model.EndTest {
		lines = append(lines, doneStyle.Render("You've completed the text."))
	} else {
		lines = append(lines, footerStyle.Render(fmt.Sprintf("Progress %d%%", progress(snap))))
	}
	return lines
}

func progress(snap model.Snapshot) int {
	total := len([]rune(snap.Passage))
	if total == 0 {
		return 0
	}
	return int(float64(snap.Typed) / float64(total) * 100)
}

func hintBindings(hints []model.Hint) []key.Binding {
	bindings := make([]key.Binding, 0, len(hints))
	for _, hint := range hints {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(hint.Key),
			key.WithHelp(hint.Key, hint.Desc),
		))
	}
	return bindings
}

func findWords(targetRunes []rune) []wordRange {
	words := []wordRange{}
	start := -1
	for i, r := range targetRunes {
		if r == ' ' {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(targetRunes)})
	}
	return words
}

func wordForCursor(words []wordRange, cursorIndex int) *wordRange {
	if len(words) == 0 || cursorIndex < 0 {
		return nil
	}
	for i, w := range words {
		if cursorIndex < w.end {
			return &words[i]
		}
	}
	return nil
}
