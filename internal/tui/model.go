// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/termtyper/internal/keys"
	"github.com/verte-zerg/termtyper/internal/model"
	"github.com/verte-zerg/termtyper/internal/session"
)

// DefaultPollInterval is the idle redraw period.
const DefaultPollInterval = 100 * time.Millisecond

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Faint(true)
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	statsStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	doneStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type tickMsg time.Time

// Model implements the Bubble Tea typing UI around a session engine.
type Model struct {
	engine   *session.Engine
	interval time.Duration
	help     help.Model
	err      error
}

// NewModel constructs a typing TUI model.
func NewModel(engine *session.Engine, interval time.Duration) *Model {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Model{
		engine:   engine,
		interval: interval,
		help:     help.New(),
	}
}

// Err returns the fatal error that stopped the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Results returns the rounds completed during the run.
func (m *Model) Results() []model.RoundResult {
	return m.engine.Results()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.engine.SetSize(msg.Width, msg.Height)
		return m, m.dispatch(keys.ResizeEvent)
	case tea.KeyMsg:
		for _, raw := range keys.FromTea(msg) {
			if cmd := m.dispatch(raw); cmd != nil {
				return m, cmd
			}
		}
		return m, nil
	default:
		return m, nil
	}
}

// dispatch classifies one raw event and feeds it to the engine. It returns
// tea.Quit when the program should stop.
func (m *Model) dispatch(raw string) tea.Cmd {
	ev, err := m.engine.Handle(keys.Classify(raw))
	if err != nil {
		log.Printf("fatal: %v", err)
		m.err = err
		return tea.Quit
	}
	switch ev {
	case session.EventQuit:
		return tea.Quit
	case session.EventCompleted:
		results := m.engine.Results()
		last := results[len(results)-1]
		log.Printf("round %d completed: %.1f wpm, %.1f%% accuracy", last.Round, last.Metrics.WPM, last.Metrics.Accuracy)
	case session.EventNewRound:
		log.Printf("new passage: %d lines", m.engine.Passage().Lines)
	}
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.err != nil {
		return ""
	}
	snap := m.engine.Snapshot()
	var b strings.Builder
	b.WriteString(renderPassage(snap))
	b.WriteByte('\n')
	b.WriteString(strings.Join(footerLines(snap, m.help), "\n"))
	return b.String()
}
