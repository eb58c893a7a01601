package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AutoRenderer is the picker entry that leaves the choice to the backend.
const AutoRenderer = "auto"

// PickerModel lets users choose a render driver before the window opens.
type PickerModel struct {
	items    []string
	cursor   int
	current  string
	keys     PickerKeyMap
	help     help.Model
	width    int
	chosen   bool
	canceled bool
}

// NewPickerModel lists drivers after an "auto" entry. The cursor starts on
// current if it is one of them.
func NewPickerModel(drivers []string, current string) PickerModel {
	items := append([]string{AutoRenderer}, drivers...)
	m := PickerModel{
		items:   items,
		current: current,
		keys:    DefaultPickerKeyMap(),
		help:    help.New(),
		width:   60,
	}
	for i, name := range items {
		if name == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.canceled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.chosen || m.canceled {
		return ""
	}

	styles := DefaultStyles()
	var b strings.Builder

	b.WriteString(styles.Title.Render("Select a renderer"))
	b.WriteString("\n\n")

	for i, name := range m.items {
		cursor := "  "
		style := styles.Value
		if i == m.cursor {
			cursor = "> "
			style = styles.Active
		}
		label := name
		if name == m.current || (name == AutoRenderer && m.current == "") {
			label += styles.Muted.Render(" (configured)")
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, style.Render(label)))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

// Choice returns the chosen driver name, "" for the backend default. The
// second result is false when the user cancelled.
func (m PickerModel) Choice() (string, bool) {
	if !m.chosen {
		return "", false
	}
	name := m.items[m.cursor]
	if name == AutoRenderer {
		return "", true
	}
	return name, true
}

// Pick runs the picker as a full Bubble Tea program.
func Pick(drivers []string, current string, opts ...tea.ProgramOption) (string, bool, error) {
	final, err := tea.NewProgram(NewPickerModel(drivers, current), opts...).Run()
	if err != nil {
		return "", false, fmt.Errorf("renderer picker: %w", err)
	}
	m, ok := final.(PickerModel)
	if !ok {
		return "", false, nil
	}
	name, chosen := m.Choice()
	return name, chosen, nil
}
