package hex

// Bounds is the allowed range of the viewport offset on each axis.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// ComputeBounds derives the pan range for a grid drawn on a screen of the
// given size. Screen position is pixel + offset. Per axis the range is
// [screen - (maxPixel + size), -(minPixel - size)]; when the grid is smaller
// than the screen the two ends swap so the grid stays fully visible.
// An empty grid has no bounds.
func ComputeBounds(coords []Axial, l Layout, screenW, screenH float64) (Bounds, bool) {
	if len(coords) == 0 {
		return Bounds{}, false
	}
	p := l.ToPixel(coords[0])
	minX, maxX, minY, maxY := p.X, p.X, p.Y, p.Y
	for _, a := range coords[1:] {
		p := l.ToPixel(a)
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	b := Bounds{
		MinX: screenW - (maxX + l.Size),
		MaxX: -(minX - l.Size),
		MinY: screenH - (maxY + l.Size),
		MaxY: -(minY - l.Size),
	}
	if b.MinX > b.MaxX {
		b.MinX, b.MaxX = b.MaxX, b.MinX
	}
	if b.MinY > b.MaxY {
		b.MinY, b.MaxY = b.MaxY, b.MinY
	}
	return b, true
}

// Clamp limits each axis of p to the bounds independently.
func (b Bounds) Clamp(p Point) Point {
	return Point{
		X: clamp(p.X, b.MinX, b.MaxX),
		Y: clamp(p.Y, b.MinY, b.MaxY),
	}
}

func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
