package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Mark is shown in a grid cell when the person is available.
const Mark = "✓"

// AvailabilityGrid renders a header and 0/1 rows as a bordered table, with
// a check mark for "1" and an empty cell otherwise. The first column is
// copied as is.
func AvailabilityGrid(header []string, rows [][]string) string {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			switch {
			case j == 0:
				cells[i][j] = v
			case v == "1":
				cells[i][j] = Mark
			default:
				cells[i][j] = ""
			}
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(header...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return lipgloss.NewStyle().Padding(0, 1)
			default:
				return markStyle.Padding(0, 1).Align(lipgloss.Center)
			}
		})

	return t.Render()
}
