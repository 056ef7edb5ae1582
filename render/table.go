package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// maxCell bounds rendered cell width so collected-list columns do not
// swallow the terminal.
const maxCell = 80

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Table renders headers and rows as a bordered table.
func Table(headers []string, rows [][]string) string {
	clipped := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = Truncate(cell, maxCell)
		}
		clipped[i] = cells
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(clipped...)
	return t.Render()
}

// Section writes one titled result section. Nil rows means the query
// never produced a result set and prints "(no results)"; a non-nil
// zero-length slice means the query ran and matched nothing and prints
// "(empty)".
func Section(w io.Writer, title string, headers []string, rows [][]string) {
	fmt.Fprintln(w, titleStyle.Render("== "+title+" =="))
	switch {
	case rows == nil:
		fmt.Fprintln(w, "(no results)")
	case len(rows) == 0:
		fmt.Fprintln(w, "(empty)")
	default:
		fmt.Fprintln(w, Table(headers, rows))
	}
	fmt.Fprintln(w)
}

// Truncate clips s to max runes, appending an ellipsis when clipped.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// Join renders a collected list as a single comma-separated cell.
func Join(items []string) string {
	return strings.Join(items, ", ")
}
