package board

import (
	"encoding/json"
	"fmt"

	"hexagrid/internal/hex"
)

// Document is the persisted form of a board.
type Document struct {
	Hexagons []hex.Axial       `json:"hexagons"`
	Texts    map[string]string `json:"texts"`
	Images   map[string]string `json:"images"`
}

// Decode parses a saved document. Missing keys come back as empty
// collections; hexagons are not cross-checked against texts or images.
func Decode(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}
	if d.Hexagons == nil {
		d.Hexagons = []hex.Axial{}
	}
	if d.Texts == nil {
		d.Texts = map[string]string{}
	}
	if d.Images == nil {
		d.Images = map[string]string{}
	}
	return d, nil
}

// Encode serialises the document; pretty output is indented for export.
func (d Document) Encode(pretty bool) ([]byte, error) {
	out := d
	if out.Hexagons == nil {
		out.Hexagons = []hex.Axial{}
	}
	if out.Texts == nil {
		out.Texts = map[string]string{}
	}
	if out.Images == nil {
		out.Images = map[string]string{}
	}
	var (
		b   []byte
		err error
	)
	if pretty {
		b, err = json.MarshalIndent(out, "", "  ")
	} else {
		b, err = json.Marshal(out)
	}
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return b, nil
}

// cells folds texts and images into content records keyed by coordinate.
func (d Document) cells() (map[hex.Axial]Cell, error) {
	out := make(map[hex.Axial]Cell, len(d.Texts)+len(d.Images))
	for k, v := range d.Texts {
		a, err := hex.ParseKey(k)
		if err != nil {
			return nil, fmt.Errorf("texts: %w", err)
		}
		c := out[a]
		c.Text = v
		out[a] = c
	}
	for k, v := range d.Images {
		a, err := hex.ParseKey(k)
		if err != nil {
			return nil, fmt.Errorf("images: %w", err)
		}
		c := out[a]
		c.Image = v
		out[a] = c
	}
	for a, c := range out {
		if c.Empty() {
			delete(out, a)
		}
	}
	return out, nil
}
