package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hexagrid/internal/hex"
)

// cell highlight kinds on the map canvas
const (
	kindPlain uint8 = iota
	kindSelected
	kindHover
	kindLabel
	kindImage
)

// renderHexMap draws every visible hex of the board into a w x h block of
// terminal cells.
func (m Model) renderHexMap(w, h int) string {
	br := newBrailleBuf(w, h)
	kinds := make([][]uint8, h)
	for i := range kinds {
		kinds[i] = make([]uint8, w)
	}

	b := m.board
	layout := b.Layout()
	inner := inset(layout, 0.5)
	sel, editing := b.Selected()
	off := b.Offset()

	var labelled []hex.Axial
	for _, a := range b.Grid().Coords() {
		if !b.Visible(a) {
			continue
		}
		pts := toMicro(layout.Corners(a), off)
		br.strokePoly(pts)
		c, has := b.Cell(a)
		switch {
		case editing && a == sel:
			br.fillPoly(pts)
			m.markCells(kinds, a, pts, kindSelected)
		case m.hovering && a == m.hover:
			m.markCells(kinds, a, pts, kindHover)
		}
		if has && c.Image != "" {
			br.strokePoly(toMicro(inner.Corners(a), off))
		}
		if has {
			labelled = append(labelled, a)
		}
	}

	grid := br.toRunes()
	labelW := max(1, int(math.Sqrt(3)*layout.Size/2)-1)
	for _, a := range labelled {
		c, _ := b.Cell(a)
		label, kind := cellLabel(c.Text, c.Image, labelW)
		if label == "" {
			continue
		}
		p := b.ToScreen(a)
		cx, cy := int(p.X)/2, int(p.Y)/4
		if cy < 0 || cy >= h {
			continue
		}
		rs := []rune(label)
		start := cx - len(rs)/2
		for i, r := range rs {
			x := start + i
			if x < 0 || x >= w {
				continue
			}
			grid[cy][x] = r
			kinds[cy][x] = kind
		}
	}

	lines := make([]string, h)
	for y := 0; y < h; y++ {
		lines[y] = styleRow(grid[y], kinds[y])
	}
	return strings.Join(lines, "\n")
}

// markCells tags the terminal cells whose centre falls inside hex a.
func (m Model) markCells(kinds [][]uint8, a hex.Axial, pts [][2]int, kind uint8) {
	minX, maxX, minY, maxY := pts[0][0], pts[0][0], pts[0][1], pts[0][1]
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p[0]), max(maxX, p[0])
		minY, maxY = min(minY, p[1]), max(maxY, p[1])
	}
	for cy := max(0, minY/4); cy <= maxY/4 && cy < len(kinds); cy++ {
		for cx := max(0, minX/2); cx <= maxX/2 && cx < len(kinds[cy]); cx++ {
			if got, ok := m.board.CellAt(hex.Point{X: float64(cx*2 + 1), Y: float64(cy*4 + 2)}); ok && got == a {
				kinds[cy][cx] = kind
			}
		}
	}
}

// cellLabel picks what to print in the middle of a hex: the first line of
// the note, or an image marker when there is no note.
func cellLabel(text, image string, width int) (string, uint8) {
	if first, _, _ := strings.Cut(strings.TrimSpace(text), "\n"); first != "" {
		return truncate(first, width), kindLabel
	}
	if image != "" {
		return "▣", kindImage
	}
	return "", kindPlain
}

// styleRow renders one canvas row, styling runs of equal kind together.
func styleRow(row []rune, kinds []uint8) string {
	var sb strings.Builder
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && kinds[i] == kinds[start] {
			continue
		}
		run := string(row[start:i])
		switch kinds[start] {
		case kindSelected:
			run = selectedStyle.Render(run)
		case kindHover:
			run = hoverStyle.Render(run)
		case kindLabel:
			run = labelStyle.Render(run)
		case kindImage:
			run = imageStyle.Render(run)
		}
		sb.WriteString(run)
		start = i
	}
	return sb.String()
}

// inset shrinks the outline of every hex by f while keeping the centres.
func inset(l hex.Layout, f float64) hex.Layout {
	return hex.Layout{Size: l.Size * f, Spacing: l.Spacing + l.Size*(1-f)}
}

func toMicro(corners [6]hex.Point, off hex.Point) [][2]int {
	pts := make([][2]int, len(corners))
	for i, c := range corners {
		p := c.Add(off)
		pts[i] = [2]int{int(math.Round(p.X)), int(math.Round(p.Y))}
	}
	return pts
}

func placeCentered(w, h int, s string) string {
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, s)
}
