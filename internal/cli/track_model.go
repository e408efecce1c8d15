package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/project"
	"github.com/alexanderramin/tally/internal/recorder"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// flashMsg shows a transient status line message; recorder notifications
// arrive as these from outside the bubbletea loop.
type flashMsg struct {
	text  string
	isErr bool
}

// clearFlashMsg removes a flash after a pause; stale timeouts are ignored.
type clearFlashMsg struct{ seq int }

// tickMsg refreshes the elapsed-time display once a second.
type tickMsg time.Time

type trackKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Stop   key.Binding
	Quit   key.Binding
}

func newTrackKeys() trackKeys {
	return trackKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "record")),
		Stop:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// trackModel presents the project forest and forwards selections to the
// recorder. The recorder owns all recording state; the model only reads it
// back for display.
type trackModel struct {
	rec      *recorder.Recorder
	rows     []project.Row
	cursor   int
	keys     trackKeys
	now      time.Time
	flash    string
	flashErr bool
	flashSeq int
}

func newTrackModel(rec *recorder.Recorder, forest *project.Forest) trackModel {
	return trackModel{
		rec:  rec,
		rows: forest.Flatten(),
		keys: newTrackKeys(),
		now:  time.Now(),
	}
}

func (m trackModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m trackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()

	case flashMsg:
		m.flash = msg.text
		m.flashErr = msg.isErr
		m.flashSeq++
		seq := m.flashSeq
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearFlashMsg{seq: seq}
		})

	case clearFlashMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if m.cursor < len(m.rows) {
				if err := m.rec.Select(m.rows[m.cursor].Path); err != nil {
					return m, func() tea.Msg {
						return flashMsg{text: err.Error(), isErr: true}
					}
				}
			}
		case key.Matches(msg, m.keys.Stop):
			if err := m.rec.Stop(); err != nil {
				return m, func() tea.Msg {
					return flashMsg{text: err.Error(), isErr: true}
				}
			}
		case key.Matches(msg, m.keys.Quit):
			// Close any open session before leaving.
			if err := m.rec.Stop(); err != nil {
				return m, tea.Sequence(
					func() tea.Msg { return flashMsg{text: err.Error(), isErr: true} },
					tea.Quit,
				)
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m trackModel) View() string {
	var b strings.Builder

	state := m.rec.State()
	b.WriteString("  " + formatter.StateIndicator(state))
	if path, startedAt, ok := m.rec.Session(); ok {
		elapsed := m.now.Sub(startedAt).Round(time.Second)
		if elapsed < 0 {
			elapsed = 0
		}
		b.WriteString("  " + formatter.StateStyle(state).Render(path.String()))
		b.WriteString("  " + formatter.Dim(elapsed.String()))
	}
	b.WriteString("\n\n")

	current, _, recording := m.rec.Session()
	for i, row := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		name := row.Path[len(row.Path)-1]
		line := cursor + strings.Repeat("  ", row.Depth)
		if recording && row.Path.Equal(current) {
			line += formatter.StateStyle(state).Render(name)
		} else {
			line += name
		}
		if row.Description != "" {
			line += " " + formatter.Dim(row.Description)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n  " + formatter.Dim("enter record · s stop · q quit") + "\n")
	if m.flash != "" {
		style := formatter.StyleYellow
		if m.flashErr {
			style = formatter.StyleRed
		}
		b.WriteString("  " + style.Render(m.flash) + "\n")
	}
	return b.String()
}

// teaNotifier adapts recorder notifications into bubbletea messages. send is
// set once the program exists; notifications before that are dropped.
type teaNotifier struct {
	send func(tea.Msg)
}

func (n *teaNotifier) Hide() {}

func (n *teaNotifier) Show() {
	if n.send != nil {
		n.send(flashMsg{text: "recording timed out, pick a project to keep counting"})
	}
}

func (n *teaNotifier) Problem(err error) {
	if n.send != nil {
		n.send(flashMsg{text: fmt.Sprintf("log write failed: %v", err), isErr: true})
	}
}
