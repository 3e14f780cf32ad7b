package tui

import "sort"

// brailleBuf is a canvas of 2x4 micro-pixels per terminal cell.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dot bits for column 0 and 1, rows 0..3
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// strokePoly draws a closed outline.
func (b *brailleBuf) strokePoly(pts [][2]int) {
	for i := range pts {
		a := pts[i]
		c := pts[(i+1)%len(pts)]
		b.drawLineMicro(a[0], a[1], c[0], c[1])
	}
}

// fillPoly fills a closed polygon with the even-odd rule, one micro scanline
// at a time.
func (b *brailleBuf) fillPoly(pts [][2]int) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0][1], pts[0][1]
	for _, p := range pts[1:] {
		minY = min(minY, p[1])
		maxY = max(maxY, p[1])
	}
	minY = max(minY, 0)
	maxY = min(maxY, b.h*4-1)
	var xs []int
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		for i := range pts {
			a := pts[i]
			c := pts[(i+1)%len(pts)]
			if a[1] == c[1] { // horizontal edge: skip
				continue
			}
			if (y >= a[1] && y < c[1]) || (y >= c[1] && y < a[1]) {
				t := float64(y-a[1]) / float64(c[1]-a[1])
				xs = append(xs, int(float64(a[0])+t*float64(c[0]-a[0])))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(0, xs[i]); x <= min(xs[i+1], b.w*2-1); x++ {
				b.setPixel(x, y)
			}
		}
	}
}

func (b *brailleBuf) toRunes() [][]rune {
	out := make([][]rune, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = row
	}
	return out
}
