package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spriteloop/internal/storage"
)

// Styles holds the lipgloss styles used by CLI reports.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Active lipgloss.Style
	OK     lipgloss.Style
	Fail   lipgloss.Style
	Muted  lipgloss.Style
}

// DefaultStyles returns the report palette.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18),
		Value:  lipgloss.NewStyle(),
		Active: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		OK:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Field renders an aligned "label value" line.
func (s Styles) Field(label, value string) string {
	return s.Label.Render(label) + s.Value.Render(value)
}

// Check renders one smoke-test step as passed or failed.
func (s Styles) Check(step string, err error) string {
	if err != nil {
		return s.Fail.Render("✗ "+step) + s.Muted.Render(": "+err.Error())
	}
	return s.OK.Render("✓ " + step)
}

// List renders names as a bulleted list under a title.
func (s Styles) List(title string, names []string) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n")
	if len(names) == 0 {
		b.WriteString(s.Muted.Render("  (none)"))
		b.WriteString("\n")
	}
	for i, n := range names {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i, n))
	}
	return b.String()
}

// SessionsReport renders sessions as plain aligned text for non-interactive
// output.
func (s Styles) SessionsReport(sessions []storage.Session) string {
	if len(sessions) == 0 {
		return s.Muted.Render("No sessions recorded yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(fmt.Sprintf("%-16s %-10s %8s %10s %-10s %s",
		"STARTED", "DURATION", "FRAMES", "DISTANCE", "RENDERER", "EXIT")))
	b.WriteString("\n")
	for _, row := range sessionRows(sessions) {
		b.WriteString(fmt.Sprintf("%-16s %-10s %8s %10s %-10s %s\n",
			row[0], row[1], row[2], row[3], row[4], row[5]))
	}
	return b.String()
}
