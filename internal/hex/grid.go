package hex

// Generate returns every cell within distance n of the origin, in the order
// of the q/r double loop. The result holds 3n²+3n+1 cells; a negative radius
// gives none.
func Generate(n int) []Axial {
	if n < 0 {
		return nil
	}
	out := make([]Axial, 0, 3*n*n+3*n+1)
	for q := -n; q <= n; q++ {
		for r := max(-n, -q-n); r <= min(n, -q+n); r++ {
			out = append(out, Axial{Q: q, R: r})
		}
	}
	return out
}

// Grid is an insertion-ordered set of cells.
type Grid struct {
	order []Axial
	index map[Axial]struct{}
}

func NewGrid(coords []Axial) Grid {
	g := Grid{index: make(map[Axial]struct{}, len(coords))}
	for _, a := range coords {
		g = g.add(a)
	}
	return g
}

// GenerateGrid is Generate wrapped in a Grid.
func GenerateGrid(n int) Grid { return NewGrid(Generate(n)) }

func (g Grid) Len() int { return len(g.order) }

func (g Grid) Contains(a Axial) bool {
	_, ok := g.index[a]
	return ok
}

// Coords returns a copy of the cells in insertion order.
func (g Grid) Coords() []Axial {
	out := make([]Axial, len(g.order))
	copy(out, g.order)
	return out
}

// With returns a grid that also contains the given cells. The receiver is
// left untouched.
func (g Grid) With(cells ...Axial) Grid {
	missing := false
	for _, a := range cells {
		if !g.Contains(a) {
			missing = true
			break
		}
	}
	if !missing {
		return g
	}
	ng := g.clone()
	for _, a := range cells {
		ng = ng.add(a)
	}
	return ng
}

// Expand adds the neighbours of a.
func (g Grid) Expand(a Axial) Grid {
	n := a.Neighbors()
	return g.With(n[:]...)
}

func (g Grid) clone() Grid {
	ng := Grid{
		order: make([]Axial, len(g.order), len(g.order)+6),
		index: make(map[Axial]struct{}, len(g.index)+6),
	}
	copy(ng.order, g.order)
	for a := range g.index {
		ng.index[a] = struct{}{}
	}
	return ng
}

// add mutates g; callers own g.
func (g Grid) add(a Axial) Grid {
	if g.index == nil {
		g.index = make(map[Axial]struct{})
	}
	if _, ok := g.index[a]; ok {
		return g
	}
	g.index[a] = struct{}{}
	g.order = append(g.order, a)
	return g
}
