package hex

import "math"

var sqrt3 = math.Sqrt(3)

// Point is a position in pixel space.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

// Layout fixes the size of a hex and the gap between neighbours.
type Layout struct {
	Size    float64
	Spacing float64
}

func (l Layout) HexWidth() float64  { return sqrt3 * (l.Size + l.Spacing) }
func (l Layout) HexHeight() float64 { return 1.5 * (l.Size + l.Spacing) }

// ToPixel maps a cell to the pixel position of its centre. The mapping is
// linear, the origin maps to (0, 0).
func (l Layout) ToPixel(a Axial) Point {
	q, r := float64(a.Q), float64(a.R)
	return Point{
		X: l.HexWidth() * (q + r/2),
		Y: l.HexHeight() * r,
	}
}

// FromPixel returns the cell whose centre is nearest to p.
func (l Layout) FromPixel(p Point) Axial {
	w, h := l.HexWidth(), l.HexHeight()
	if w == 0 || h == 0 {
		return Axial{}
	}
	r := p.Y / h
	q := p.X/w - r/2
	return roundAxial(q, r)
}

// Corners returns the six outline vertices of a, Size away from its centre.
func (l Layout) Corners(a Axial) [6]Point {
	c := l.ToPixel(a)
	var out [6]Point
	for i := 0; i < 6; i++ {
		ang := math.Pi / 180 * float64(60*i-30)
		out[i] = Point{X: c.X + l.Size*math.Cos(ang), Y: c.Y + l.Size*math.Sin(ang)}
	}
	return out
}

// roundAxial rounds fractional axial coordinates through cube space.
func roundAxial(fq, fr float64) Axial {
	fs := -fq - fr
	q, r, s := math.Round(fq), math.Round(fr), math.Round(fs)
	dq, dr, ds := math.Abs(q-fq), math.Abs(r-fr), math.Abs(s-fs)
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return Axial{Q: int(q), R: int(r)}
}
