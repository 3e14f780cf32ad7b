package board

import (
	"testing"

	"hexagrid/internal/hex"
)

func TestDragClampsToBounds(t *testing.T) {
	s := newTestBoard(6).Center()
	b, ok := s.Bounds()
	if !ok {
		t.Fatal("expected bounds for a non-empty grid")
	}

	tests := []struct {
		name   string
		dx, dy float64
		want   func(start hex.Point) hex.Point
	}{
		{"small move follows", 1, -1, func(p hex.Point) hex.Point { return b.Clamp(hex.Point{X: p.X + 1, Y: p.Y - 1}) }},
		{"past max x", 1e6, 0, func(p hex.Point) hex.Point { return hex.Point{X: b.MaxX, Y: p.Y} }},
		{"past min x", -1e6, 0, func(p hex.Point) hex.Point { return hex.Point{X: b.MinX, Y: p.Y} }},
		{"past both", 1e6, -1e6, func(hex.Point) hex.Point { return hex.Point{X: b.MaxX, Y: b.MinY} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := s.Offset()
			moved := s.BeginDrag().DragMove(tt.dx, tt.dy)
			if got, want := moved.Offset(), tt.want(start); got != want {
				t.Errorf("offset = %v, want %v", got, want)
			}
			if !moved.Dragging() {
				t.Error("expected drag in progress")
			}
			done := moved.DragEnd()
			if done.Dragging() {
				t.Error("expected drag committed")
			}
			if done.Offset() != moved.Offset() {
				t.Errorf("commit changed offset: %v -> %v", moved.Offset(), done.Offset())
			}
		})
	}
}

func TestDragFollowsFromBase(t *testing.T) {
	s := newTestBoard(6).Center().BeginDrag()
	base := s.Offset()
	// every move is relative to the base, not the previous move
	s = s.DragMove(3, 0).DragMove(1, 0)
	b, _ := s.Bounds()
	if got, want := s.Offset(), b.Clamp(hex.Point{X: base.X + 1, Y: base.Y}); got != want {
		t.Errorf("offset = %v, want %v", got, want)
	}
}

func TestEmptyGridSkipsBounds(t *testing.T) {
	s := New(hex.Layout{Size: 6}, -1).Resize(100, 100)
	if _, ok := s.Bounds(); ok {
		t.Fatal("expected no bounds for an empty grid")
	}
	s = s.PanBy(1e6, -1e6)
	if got := s.Offset(); got != (hex.Point{X: 1e6, Y: -1e6}) {
		t.Errorf("offset = %v, want unclamped pan", got)
	}
}

func TestCellAt(t *testing.T) {
	s := newTestBoard(2).Center()
	for _, a := range s.Grid().Coords() {
		got, ok := s.CellAt(s.ToScreen(a))
		if !ok || got != a {
			t.Errorf("CellAt(ToScreen(%v)) = %v, %v", a, got, ok)
		}
	}
	if _, ok := s.CellAt(s.ToScreen(hex.Axial{Q: 9, R: 0})); ok {
		t.Error("expected off-grid cell to miss")
	}
}

func TestResizeReclamps(t *testing.T) {
	s := newTestBoard(6).PanBy(1e6, 1e6)
	b, _ := s.Bounds()
	if s.Offset() != (hex.Point{X: b.MaxX, Y: b.MaxY}) {
		t.Fatalf("offset = %v, want max corner", s.Offset())
	}
	s = s.Resize(40, 40)
	nb, _ := s.Bounds()
	if !nb.Contains(s.Offset()) {
		t.Errorf("offset %v outside bounds %v after resize", s.Offset(), nb)
	}
}
