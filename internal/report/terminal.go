package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorAccent = lipgloss.Color("#06B6D4")
	colorMuted  = lipgloss.Color("#6B7280")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginTop(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	noteStyle   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
)

// Render draws a table for the terminal. The first column is left-aligned,
// the rest right-aligned.
func Render(t Table) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(titleStyle.Render(t.Title))
		b.WriteString("\n")
	}
	b.WriteString(tbl.Render())
	b.WriteString("\n")
	for _, n := range t.Notes {
		b.WriteString(noteStyle.Render(n))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderAll draws several tables one after the other.
func RenderAll(tables ...Table) string {
	parts := make([]string, 0, len(tables))
	for _, t := range tables {
		parts = append(parts, Render(t))
	}
	return strings.Join(parts, "\n")
}
