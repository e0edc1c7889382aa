// Package keys classifies raw terminal input into typing actions.
package keys

import (
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// Raw event names for keys that have no printable form.
const (
	ResizeEvent    = "KEY_RESIZE"
	BackspaceEvent = "KEY_BACKSPACE"
	DeleteEvent    = "KEY_DC"
)

// Kind identifies a logical key action.
type Kind int

// Action kinds.
const (
	None Kind = iota
	Printable
	Backspace
	Resize
	Enter
	Tab
	Escape
	Regenerate
	Cancel
)

var kindNames = map[Kind]string{
	None:       "none",
	Printable:  "printable",
	Backspace:  "backspace",
	Resize:     "resize",
	Enter:      "enter",
	Tab:        "tab",
	Escape:     "escape",
	Regenerate: "regenerate",
	Cancel:     "cancel",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action is a classified key event. Char is set for Printable only.
type Action struct {
	Kind Kind
	Char rune
}

// Classify maps a raw input event to an Action. It never fails: anything it
// does not recognise is None.
func Classify(raw string) Action {
	switch raw {
	case "\x03":
		return Action{Kind: Cancel}
	case BackspaceEvent, DeleteEvent, "\b", "\x7f":
		return Action{Kind: Backspace}
	case ResizeEvent:
		return Action{Kind: Resize}
	case "\n", "\r":
		return Action{Kind: Enter}
	case "\t":
		return Action{Kind: Tab}
	case "\x1b":
		return Action{Kind: Escape}
	case "\x12":
		return Action{Kind: Regenerate}
	case "", "\x00":
		return Action{Kind: None}
	}
	r, size := utf8.DecodeRuneInString(raw)
	if r == utf8.RuneError || size != len(raw) || !unicode.IsPrint(r) {
		return Action{Kind: None}
	}
	return Action{Kind: Printable, Char: r}
}

// IsValidStartKey reports whether a may begin a round.
func IsValidStartKey(a Action) bool {
	return a.Kind == Printable
}

// FromTea converts a bubbletea key message into raw events, one per rune.
// Navigation keys and alt combinations produce no events.
func FromTea(msg tea.KeyMsg) []string {
	if msg.Alt {
		return nil
	}
	switch msg.Type {
	case tea.KeyCtrlC:
		return []string{"\x03"}
	case tea.KeyBackspace:
		return []string{"\x7f"}
	case tea.KeyCtrlH:
		return []string{"\b"}
	case tea.KeyDelete:
		return []string{DeleteEvent}
	case tea.KeyEnter:
		return []string{"\r"}
	case tea.KeyTab:
		return []string{"\t"}
	case tea.KeyEsc:
		return []string{"\x1b"}
	case tea.KeyCtrlR:
		return []string{"\x12"}
	case tea.KeySpace:
		return []string{" "}
	case tea.KeyRunes:
		out := make([]string, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, string(r))
		}
		return out
	default:
		return nil
	}
}
