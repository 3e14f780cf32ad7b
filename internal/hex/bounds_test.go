package hex

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestComputeBounds(t *testing.T) {
	l := Layout{Size: 10, Spacing: 0}

	Convey("Given a grid larger than the screen", t, func() {
		cells := Generate(4)
		b, ok := ComputeBounds(cells, l, 100, 80)
		So(ok, ShouldBeTrue)

		Convey("Each axis follows the extent formula", func() {
			minX, maxX := l.ToPixel(Axial{Q: -4, R: 0}).X, l.ToPixel(Axial{Q: 4, R: 0}).X
			minY, maxY := l.ToPixel(Axial{Q: 0, R: -4}).Y, l.ToPixel(Axial{Q: 0, R: 4}).Y
			So(b.MinX, ShouldAlmostEqual, 100-(maxX+10), 1e-9)
			So(b.MaxX, ShouldAlmostEqual, -(minX - 10), 1e-9)
			So(b.MinY, ShouldAlmostEqual, 80-(maxY+10), 1e-9)
			So(b.MaxY, ShouldAlmostEqual, -(minY - 10), 1e-9)
		})
	})

	Convey("Given a grid smaller than the screen", t, func() {
		b, ok := ComputeBounds(Generate(1), l, 1000, 1000)
		So(ok, ShouldBeTrue)

		Convey("The range is still ordered", func() {
			So(b.MinX, ShouldBeLessThanOrEqualTo, b.MaxX)
			So(b.MinY, ShouldBeLessThanOrEqualTo, b.MaxY)
		})
	})

	Convey("Given an empty grid", t, func() {
		_, ok := ComputeBounds(nil, l, 100, 100)
		So(ok, ShouldBeFalse)
	})
}

func TestClamp(t *testing.T) {
	b := Bounds{MinX: -50, MaxX: 20, MinY: -10, MaxY: 30}
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Point{X: 0, Y: 0}, Point{X: 0, Y: 0}},
		{"on edge", Point{X: -50, Y: 30}, Point{X: -50, Y: 30}},
		{"left of min", Point{X: -51, Y: 0}, Point{X: -50, Y: 0}},
		{"far right", Point{X: 1e6, Y: 0}, Point{X: 20, Y: 0}},
		{"above", Point{X: 5, Y: -999}, Point{X: 5, Y: -10}},
		{"both axes", Point{X: 99, Y: 99}, Point{X: 20, Y: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Clamp(tt.in)
			if got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if again := b.Clamp(got); again != got {
				t.Errorf("Clamp not idempotent: %v -> %v", got, again)
			}
			if !b.Contains(got) {
				t.Errorf("clamped %v outside bounds", got)
			}
		})
	}
}
