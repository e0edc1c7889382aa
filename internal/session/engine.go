// Package session implements the typing round state machine.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/verte-zerg/termtyper/internal/keys"
	"github.com/verte-zerg/termtyper/internal/layout"
	"github.com/verte-zerg/termtyper/internal/model"
	"github.com/verte-zerg/termtyper/internal/stats"
)

// FooterHeight is the number of rows reserved below the passage.
const FooterHeight = 6

// WordSource supplies random words for a passage.
type WordSource interface {
	Sample(ctx context.Context, lang string, count int) ([]string, error)
}

// Event tells the caller what a handled action did.
type Event int

// Engine events.
const (
	EventNone Event = iota
	EventQuit
	EventCompleted
	EventNewRound
)

// LayoutError reports a terminal too small for the passage and footer.
type LayoutError struct {
	Width  int
	Height int
	Need   int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("terminal window too small: need %d rows at width %d, have %d; resize and retry", e.Need, e.Width, e.Height)
}

// Engine owns one round at a time: passage, transcript, timing and mode.
type Engine struct {
	cfg   model.Config
	words WordSource
	now   func() time.Time

	width  int
	height int

	passage    layout.Passage
	target     []rune
	transcript []rune

	started   bool
	startTime time.Time
	mode      model.Mode

	typed    int
	mistyped int
	final    model.Metrics

	results []model.RoundResult
}

// New samples the first passage and returns an engine in BeginTest.
func New(ctx context.Context, cfg model.Config, words WordSource) (*Engine, error) {
	e := &Engine{
		cfg:   cfg,
		words: words,
		now:   time.Now,
	}
	if err := e.loadPassage(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// SetSize records the terminal size. The layout follows on the next Resize action.
func (e *Engine) SetSize(width, height int) {
	e.width = width
	e.height = height
}

// Resize records the terminal size and lays the passage out for it.
func (e *Engine) Resize(width, height int) error {
	e.SetSize(width, height)
	return e.relayout()
}

// Handle applies one classified key action.
func (e *Engine) Handle(a keys.Action) (Event, error) {
	switch a.Kind {
	case keys.Cancel:
		return EventQuit, nil
	case keys.Resize:
		return EventNone, e.relayout()
	}

	if e.mode == model.EndTest {
		if a.Kind == keys.Tab {
			if err := e.loadPassage(context.Background()); err != nil {
				return EventNone, err
			}
			return EventNewRound, nil
		}
		return EventNone, nil
	}

	switch a.Kind {
	case keys.Printable:
		e.typeRune(a.Char)
	case keys.Backspace:
		e.backspace()
	case keys.Escape:
		if !e.started {
			return EventQuit, nil
		}
		e.resetRound()
		return EventNone, nil
	case keys.Regenerate:
		if e.started {
			return EventNone, nil
		}
		if err := e.loadPassage(context.Background()); err != nil {
			return EventNone, err
		}
		return EventNewRound, nil
	default:
		return EventNone, nil
	}

	if e.complete() {
		e.finish()
		return EventCompleted, nil
	}
	return EventNone, nil
}

func (e *Engine) typeRune(c rune) {
	if len(e.transcript) >= len(e.target) {
		return
	}
	if c == ' ' {
		if e.fillSpaces() > 0 {
			e.typed++
		}
		return
	}
	if e.startTime.IsZero() {
		e.startTime = e.now()
	}
	e.started = true
	if c != e.target[len(e.transcript)] {
		e.mistyped++
	}
	e.typed++
	e.transcript = append(e.transcript, c)
	e.fillSpaces()
}

// fillSpaces appends the run of target spaces at the cursor.
func (e *Engine) fillSpaces() int {
	n := 0
	for len(e.transcript) < len(e.target) && e.target[len(e.transcript)] == ' ' {
		e.transcript = append(e.transcript, ' ')
		n++
	}
	return n
}

func (e *Engine) backspace() {
	if len(e.transcript) == 0 {
		return
	}
	e.transcript = e.transcript[:len(e.transcript)-1]
	if len(e.transcript) == 0 {
		e.startTime = time.Time{}
	}
}

func (e *Engine) complete() bool {
	return len(e.transcript) == len(e.target) && string(e.transcript) == string(e.target)
}

func (e *Engine) finish() {
	now := e.now()
	e.final = stats.Snapshot(string(e.transcript), e.typed, e.mistyped, e.startTime, now)
	e.results = append(e.results, model.RoundResult{
		Round:    len(e.results) + 1,
		Lang:     e.cfg.Lang,
		Words:    len(e.passage.Words),
		Metrics:  e.final,
		Duration: stats.Elapsed(e.startTime, now),
	})
	e.started = false
	e.mode = model.EndTest
}

func (e *Engine) resetRound() {
	e.transcript = nil
	e.started = false
	e.startTime = time.Time{}
	e.typed = 0
	e.mistyped = 0
	e.final = model.Metrics{}
	e.mode = model.BeginTest
}

func (e *Engine) loadPassage(ctx context.Context) error {
	words, err := e.words.Sample(ctx, e.cfg.Lang, e.cfg.Words)
	if err != nil {
		return fmt.Errorf("failed to load words: %w", err)
	}
	e.passage = layout.NewPassage(words, e.width)
	e.target = []rune(e.passage.Wrapped)
	e.resetRound()
	return e.checkFit()
}

func (e *Engine) relayout() error {
	next := e.passage.Rewrap(e.width)
	nextTarget := []rune(next.Wrapped)
	e.transcript = remapTranscript(e.target, nextTarget, e.transcript)
	e.passage = next
	e.target = nextTarget
	return e.checkFit()
}

func (e *Engine) checkFit() error {
	if e.width <= 0 || e.height <= 0 {
		return nil
	}
	need := e.passage.Lines + FooterHeight
	if need > e.height {
		return &LayoutError{Width: e.width, Height: e.height, Need: need}
	}
	return nil
}

// remapTranscript carries typed runes from one wrapping of a passage to
// another. Padding the user never typed is dropped and the new padding is
// filled in.
func remapTranscript(oldTarget, newTarget, transcript []rune) []rune {
	canonical := make([]int, len(oldTarget))
	for i := range canonical {
		canonical[i] = -1
	}
	for k, idx := range layout.Anchors(oldTarget) {
		canonical[idx] = k
	}
	anchors := layout.Anchors(newTarget)

	out := make([]rune, 0, len(newTarget))
	for i, r := range transcript {
		if i >= len(canonical) || canonical[i] < 0 {
			continue
		}
		pos := anchors[canonical[i]]
		for len(out) < pos {
			out = append(out, ' ')
		}
		out = append(out, r)
		if newTarget[pos] == ' ' {
			for len(out) < len(newTarget) && newTarget[len(out)] == ' ' {
				out = append(out, ' ')
			}
		}
	}
	return out
}

// Snapshot returns what the renderer should paint now.
func (e *Engine) Snapshot() model.Snapshot {
	metrics := e.final
	if e.mode == model.BeginTest {
		metrics = stats.Snapshot(string(e.transcript), e.typed, e.mistyped, e.startTime, e.now())
	}
	correct := make([]bool, len(e.transcript))
	for i, r := range e.transcript {
		correct[i] = r == e.target[i]
	}
	return model.Snapshot{
		Passage: e.passage.Wrapped,
		Width:   e.width,
		Lines:   e.passage.Lines,
		Typed:   len(e.transcript),
		Correct: correct,
		Stats:   metrics,
		Mode:    e.mode,
		Started: e.started,
		Hints:   e.hints(),
	}
}

func (e *Engine) hints() []model.Hint {
	if e.mode == model.EndTest {
		return []model.Hint{
			{Key: "tab", Desc: "play again"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	}
	if e.started {
		return []model.Hint{{Key: "esc", Desc: "restart"}}
	}
	return []model.Hint{
		{Key: "esc", Desc: "quit"},
		{Key: "ctrl+r", Desc: "new text"},
	}
}

// Mode returns the current session mode.
func (e *Engine) Mode() model.Mode {
	return e.mode
}

// Transcript returns what has been typed this round.
func (e *Engine) Transcript() string {
	return string(e.transcript)
}

// Passage returns the current passage.
func (e *Engine) Passage() layout.Passage {
	return e.passage
}

// Results returns the rounds completed so far.
func (e *Engine) Results() []model.RoundResult {
	return append([]model.RoundResult(nil), e.results...)
}
