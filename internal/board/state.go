package board

import (
	"fmt"
	"sort"

	"hexagrid/internal/hex"
)

// Cell is the content stored on one hex.
type Cell struct {
	Text  string
	Image string
}

func (c Cell) Empty() bool { return c.Text == "" && c.Image == "" }

// Mode is the edit state of the board.
type Mode int

const (
	ModeIdle Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeEditing:
		return "editing"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// OrphanPolicy says what Replace does with content whose coordinate is not
// part of the loaded grid.
type OrphanPolicy string

const (
	// OrphanAdopt adds the coordinate to the grid so the content stays reachable.
	OrphanAdopt OrphanPolicy = "adopt"
	// OrphanPrune drops the content.
	OrphanPrune OrphanPolicy = "prune"
	// OrphanKeep retains the content off-grid.
	OrphanKeep OrphanPolicy = "keep"
)

func ParseOrphanPolicy(s string) (OrphanPolicy, error) {
	switch p := OrphanPolicy(s); p {
	case OrphanAdopt, OrphanPrune, OrphanKeep:
		return p, nil
	case "":
		return OrphanAdopt, nil
	}
	return "", fmt.Errorf("unknown orphan policy %q", s)
}

// State is the whole board: grid, content, edit state and viewport. Every
// operation returns a new State and leaves the receiver unchanged.
type State struct {
	layout hex.Layout
	grid   hex.Grid
	cells  map[hex.Axial]Cell

	mode     Mode
	selected hex.Axial
	draft    string

	// ExpandOnSelect grows the grid around a selected cell.
	ExpandOnSelect bool

	screenW, screenH float64
	bounds           hex.Bounds
	hasBounds        bool

	offset   hex.Point
	dragBase hex.Point
	dragging bool
}

// New returns an idle board holding the grid of the given radius.
func New(layout hex.Layout, radius int) State {
	return State{
		layout: layout,
		grid:   hex.GenerateGrid(radius),
		cells:  map[hex.Axial]Cell{},
	}
}

func (s State) Layout() hex.Layout { return s.layout }
func (s State) Grid() hex.Grid { return s.grid }
func (s State) Mode() Mode { return s.mode }
func (s State) Draft() string { return s.draft }
func (s State) Offset() hex.Point { return s.offset }
func (s State) Dragging() bool { return s.dragging }
func (s State) Bounds() (hex.Bounds, bool) { return s.bounds, s.hasBounds }

// Selected returns the cell being edited, if any.
func (s State) Selected() (hex.Axial, bool) {
	return s.selected, s.mode == ModeEditing
}

// Cell returns the content stored at a.
func (s State) Cell(a hex.Axial) (Cell, bool) {
	c, ok := s.cells[a]
	return c, ok
}

// Cells returns the coordinates holding content, sorted by r then q.
func (s State) Cells() []hex.Axial {
	out := make([]hex.Axial, 0, len(s.cells))
	for a := range s.cells {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].R != out[j].R {
			return out[i].R < out[j].R
		}
		return out[i].Q < out[j].Q
	})
	return out
}

// Orphans lists content coordinates that are not on the grid.
func (s State) Orphans() []hex.Axial {
	var out []hex.Axial
	for _, a := range s.Cells() {
		if !s.grid.Contains(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s State) withCell(a hex.Axial, c Cell) State {
	cells := make(map[hex.Axial]Cell, len(s.cells)+1)
	for k, v := range s.cells {
		cells[k] = v
	}
	if c.Empty() {
		delete(cells, a)
	} else {
		cells[a] = c
	}
	s.cells = cells
	return s
}

func (s State) withGrid(g hex.Grid) State {
	s.grid = g
	return s.rebound()
}
