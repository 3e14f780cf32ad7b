package board

import (
	"fmt"

	"hexagrid/internal/hex"
)

// Document exports the grid and content.
func (s State) Document() Document {
	d := Document{
		Hexagons: s.grid.Coords(),
		Texts:    map[string]string{},
		Images:   map[string]string{},
	}
	for a, c := range s.cells {
		if c.Text != "" {
			d.Texts[a.Key()] = c.Text
		}
		if c.Image != "" {
			d.Images[a.Key()] = c.Image
		}
	}
	return d
}

// Replace installs a loaded document as the whole grid and content, then
// recomputes the bounds. Any edit in progress is dropped. On error the
// receiver is returned unchanged.
func (s State) Replace(d Document, policy OrphanPolicy) (State, error) {
	cells, err := d.cells()
	if err != nil {
		return s, fmt.Errorf("replace board: %w", err)
	}
	grid := hex.NewGrid(d.Hexagons)
	switch policy {
	case OrphanAdopt, "":
		for _, a := range sortedKeys(cells) {
			grid = grid.With(a)
		}
	case OrphanPrune:
		for a := range cells {
			if !grid.Contains(a) {
				delete(cells, a)
			}
		}
	case OrphanKeep:
	default:
		return s, fmt.Errorf("replace board: unknown orphan policy %q", policy)
	}
	s = s.idle()
	s.dragging = false
	s.cells = cells
	return s.withGrid(grid), nil
}

// Prune drops content that is not on the grid.
func (s State) Prune() (State, int) {
	orphans := s.Orphans()
	for _, a := range orphans {
		s = s.withCell(a, Cell{})
	}
	return s, len(orphans)
}

func sortedKeys(cells map[hex.Axial]Cell) []hex.Axial {
	tmp := State{cells: cells}
	return tmp.Cells()
}
