package hex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Axial identifies a hex cell in axial coordinates. It is comparable and is
// used directly as a map key.
type Axial struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// directions in the order neighbours are emitted
var directions = [6]Axial{
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
	{Q: 0, R: -1},
	{Q: 1, R: -1},
}

func (a Axial) Add(b Axial) Axial { return Axial{Q: a.Q + b.Q, R: a.R + b.R} }

// Key formats the coordinate as "q,r", the form used in saved documents.
func (a Axial) Key() string {
	return strconv.Itoa(a.Q) + "," + strconv.Itoa(a.R)
}

func (a Axial) String() string { return "(" + a.Key() + ")" }

// Distance is the hex distance from the origin: max(|q|, |r|, |q+r|).
func (a Axial) Distance() int {
	return max(abs(a.Q), abs(a.R), abs(a.Q+a.R))
}

// Neighbors returns the six adjacent cells.
func (a Axial) Neighbors() [6]Axial {
	var out [6]Axial
	for i, d := range directions {
		out[i] = a.Add(d)
	}
	return out
}

// ErrNonCanonicalKey marks a key that parses but is not spelled the way Key
// writes it, such as "+1,0" or "01,0".
var ErrNonCanonicalKey = errors.New("non-canonical hex key")

// ParseKey is the inverse of Key. Only the exact "q,r" spelling is accepted,
// so every coordinate has a single key.
func ParseKey(key string) (Axial, error) {
	qs, rs, ok := strings.Cut(key, ",")
	if !ok {
		return Axial{}, fmt.Errorf("hex key %q: missing comma", key)
	}
	q, err := strconv.Atoi(qs)
	if err != nil {
		return Axial{}, fmt.Errorf("hex key %q: q: %w", key, err)
	}
	r, err := strconv.Atoi(rs)
	if err != nil {
		return Axial{}, fmt.Errorf("hex key %q: r: %w", key, err)
	}
	a := Axial{Q: q, R: r}
	if a.Key() != key {
		return Axial{}, fmt.Errorf("hex key %q: %w, want %q", key, ErrNonCanonicalKey, a.Key())
	}
	return a, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
