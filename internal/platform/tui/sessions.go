package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spriteloop/internal/storage"
)

const sessionTimeFormat = "Jan 02 15:04:05"

// SessionsModel is the Bubble Tea model for the session history screen.
type SessionsModel struct {
	sessions []storage.Session
	table    table.Model
	help     help.Model
	keys     SessionsKeyMap
	width    int
	height   int
	quitting bool
}

// NewSessionsModel creates a session history model.
func NewSessionsModel(sessions []storage.Session, width, height int) SessionsModel {
	m := SessionsModel{
		sessions: sessions,
		help:     help.New(),
		keys:     DefaultSessionsKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	return m
}

func (m *SessionsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Started", Width: 16},
		{Title: "Duration", Width: 10},
		{Title: "Frames", Width: 8},
		{Title: "Distance", Width: 10},
		{Title: "Renderer", Width: 10},
		{Title: "Exit", Width: 8},
	}

	height := m.height - 6
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(sessionRows(m.sessions)),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func sessionRows(sessions []storage.Session) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		rows[i] = table.Row{
			s.StartedAt.Local().Format(sessionTimeFormat),
			s.Duration.Round(100 * time.Millisecond).String(),
			fmt.Sprintf("%d", s.Frames),
			fmt.Sprintf("%.1f", s.Distance),
			s.Renderer,
			s.ExitReason,
		}
	}
	return rows
}

// Init initializes the model.
func (m SessionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the session table.
func (m SessionsModel) View() string {
	if m.quitting {
		return ""
	}
	styles := DefaultStyles()

	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("SESSIONS (%d)", len(m.sessions))))
	b.WriteString("\n\n")
	if len(m.sessions) == 0 {
		b.WriteString(styles.Muted.Render("No sessions recorded yet."))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View()))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	return b.String()
}

// ShowSessions runs the history table as a full Bubble Tea program.
func ShowSessions(sessions []storage.Session, width, height int, opts ...tea.ProgramOption) error {
	if _, err := tea.NewProgram(NewSessionsModel(sessions, width, height), opts...).Run(); err != nil {
		return fmt.Errorf("session viewer: %w", err)
	}
	return nil
}
