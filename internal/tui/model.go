package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"renamefiles/internal/processor"
)

// Model shows live counters while report lines scroll above it.
type Model struct {
	events   <-chan processor.Event
	cancel   func()
	styles   Styles
	started  time.Time
	scanned  int
	matched  int
	renamed  int
	skipped  int
	last     string
	quitting bool
}

type doneMsg struct{}

type eventMsg processor.Event

// NewModel listens on events until the channel is closed. cancel is called
// when the user presses ctrl+c; the walk then stops at the next entry.
func NewModel(events <-chan processor.Event, cancel func()) Model {
	return Model{
		events:  events,
		cancel:  cancel,
		styles:  NewStyles(lipgloss.DefaultRenderer()),
		started: time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return listenForEvents(m.events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		ev := processor.Event(msg)
		m.count(ev)
		if line, ok := m.styles.Line(ev); ok {
			return m, tea.Sequence(tea.Println(line), listenForEvents(m.events))
		}
		return m, listenForEvents(m.events)
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC && m.cancel != nil {
			m.cancel()
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) count(ev processor.Event) {
	m.scanned++
	m.last = ev.Path
	switch ev.Kind {
	case processor.EventSkipped:
		m.skipped++
	case processor.EventMatch, processor.EventPreview:
		m.matched++
	case processor.EventRename:
		m.matched++
		m.renamed++
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	elapsed := time.Since(m.started).Round(time.Millisecond)
	lines := []string{
		m.styles.Title.Render("renamefiles"),
		m.styles.Label.Render(fmt.Sprintf("Entries: %d", m.scanned)) + m.styles.Dim.Render(fmt.Sprintf("  skipped:%d", m.skipped)),
		m.styles.Label.Render(fmt.Sprintf("Matches: %d", m.matched)),
		m.styles.Label.Render(fmt.Sprintf("Renamed: %d", m.renamed)),
		m.styles.Dim.Render(fmt.Sprintf("Elapsed: %s", elapsed)),
	}
	if m.last != "" {
		lines = append(lines, m.styles.Dim.Render(m.last))
	}

	return strings.Join(lines, "\n")
}

func listenForEvents(events <-chan processor.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}
