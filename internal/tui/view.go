package tui

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Layout sizes
	contentWidth := max(10, m.width)
	_, _, mapWidth, mapHeight := m.mapRect()

	// Header
	header := titleStyle.Render(" hexagrid ─ terminal hex notes ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.picking != pickNone {
		sidebar = lipgloss.NewStyle().Width(28).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.editing() && m.picking == pickNone:
		mapView = placeCentered(mapWidth, mapHeight, m.renderDialog(mapWidth, mapHeight))
	case m.showCells:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		cellsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = placeCentered(mapWidth, mapHeight, cellsBox)
	default:
		// plain map canvas: no border
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderHexMap(mapWidth, mapHeight))
	}

	// Body row
	body := mapView
	if m.picking != pickNone {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	st := dimStyle
	if m.statusErr {
		st = errStyle
	}
	status := st.Render(" " + m.status + " ")
	help := m.renderHelp()
	// hovered cell at bottom-right
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  cell %s  ", m.hover.Key()))
	}
	left := lipgloss.JoinVertical(lipgloss.Left, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderDialog is the edit dialog for the selected cell.
func (m Model) renderDialog(w, h int) string {
	sel, _ := m.board.Selected()
	c, _ := m.board.Cell(sel)
	dw := min(w-4, 56)
	m.ta.SetWidth(max(10, dw-4))
	m.ta.SetHeight(max(2, min(h-8, 6)))

	img := dimStyle.Render("no image")
	if c.Image != "" {
		img = imageStyle.Render("▣ " + truncate(path.Base(c.Image), dw-8))
	}
	parts := []string{
		titleStyle.Render("cell " + sel.Key()),
		m.ta.View(),
		img,
	}
	return dialogStyle.Width(dw).Render(strings.Join(parts, "\n"))
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	return " " + m.help.ShortHelpView(m.shortHelp())
}
