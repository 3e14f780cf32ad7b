package tui

import (
	"fmt"
	"path"
	"strings"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshCells rebuilds the content table from the board.
func (m *Model) refreshCells() {
	coords := m.board.Cells()
	if len(coords) == 0 {
		m.showCells = false
		m.setStatus("no cells with content")
		return
	}
	grid := m.board.Grid()
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "cell", Width: 8},
		{Title: "text", Width: 28},
		{Title: "image", Width: 20},
		{Title: "grid", Width: 6},
	}
	rows := make([]table.Row, 0, len(coords))
	for i, a := range coords {
		c, _ := m.board.Cell(a)
		img := ""
		if c.Image != "" {
			img = path.Base(c.Image)
		}
		onGrid := "yes"
		if !grid.Contains(a) {
			onGrid = "orphan"
		}
		text := strings.ReplaceAll(c.Text, "\n", " ")
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			a.Key(),
			truncate(text, 28),
			truncate(img, 20),
			onGrid,
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	if m.tbl.Cursor() >= len(rows) {
		m.tbl.SetCursor(len(rows) - 1)
	}
	m.cellRows = coords
}
