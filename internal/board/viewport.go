package board

import "hexagrid/internal/hex"

// Resize sets the screen size in pixels, recomputes the pan bounds and pulls
// the offset back inside them.
func (s State) Resize(w, h float64) State {
	s.screenW, s.screenH = w, h
	return s.rebound()
}

func (s State) ScreenSize() (float64, float64) { return s.screenW, s.screenH }

// Center places the grid origin in the middle of the screen.
func (s State) Center() State {
	s.offset = s.clamp(hex.Point{X: s.screenW / 2, Y: s.screenH / 2})
	s.dragBase = s.offset
	return s
}

// BeginDrag starts a pan gesture from the committed offset.
func (s State) BeginDrag() State {
	s.dragging = true
	s.dragBase = s.offset
	return s
}

// DragMove follows the gesture: the offset becomes the clamped sum of the
// drag base and the translation so far.
func (s State) DragMove(dx, dy float64) State {
	if !s.dragging {
		s = s.BeginDrag()
	}
	s.offset = s.clamp(s.dragBase.Add(hex.Point{X: dx, Y: dy}))
	return s
}

// DragEnd commits the current offset as the new base.
func (s State) DragEnd() State {
	s.dragging = false
	s.dragBase = s.offset
	return s
}

// PanBy moves the committed offset in one step.
func (s State) PanBy(dx, dy float64) State {
	return s.BeginDrag().DragMove(dx, dy).DragEnd()
}

// ToScreen maps a cell centre to screen pixels.
func (s State) ToScreen(a hex.Axial) hex.Point {
	return s.layout.ToPixel(a).Add(s.offset)
}

// CellAt hit-tests a screen point. ok is false when the nearest cell is not
// on the grid.
func (s State) CellAt(p hex.Point) (hex.Axial, bool) {
	a := s.layout.FromPixel(p.Sub(s.offset))
	return a, s.grid.Contains(a)
}

// Visible reports whether any part of the cell's outline is on screen.
func (s State) Visible(a hex.Axial) bool {
	c := s.ToScreen(a)
	r := s.layout.Size
	return c.X+r >= 0 && c.X-r < s.screenW && c.Y+r >= 0 && c.Y-r < s.screenH
}

// rebound recomputes the bounds from the current grid. With an empty grid
// the bounds are dropped and the offset is left alone.
func (s State) rebound() State {
	s.bounds, s.hasBounds = hex.ComputeBounds(s.grid.Coords(), s.layout, s.screenW, s.screenH)
	s.offset = s.clamp(s.offset)
	s.dragBase = s.clamp(s.dragBase)
	return s
}

func (s State) clamp(p hex.Point) hex.Point {
	if !s.hasBounds {
		return p
	}
	return s.bounds.Clamp(p)
}
