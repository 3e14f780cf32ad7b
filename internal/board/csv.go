package board

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"hexagrid/internal/hex"
)

// DecodeCSV reads cell notes from a CSV with q and r columns and optional
// text and image columns. Column detection is case-insensitive:
// q, r, text|note|label and image|img|uri. Rows with unparsable coordinates
// are skipped.
func DecodeCSV(rd io.Reader) (Document, error) {
	r := csv.NewReader(rd)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return Document{}, err
	}
	if len(recs) == 0 {
		return Document{}, errors.New("empty csv")
	}
	idxQ, idxR, idxText, idxImage := -1, -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "q":
			if idxQ == -1 {
				idxQ = i
			}
		case "r":
			if idxR == -1 {
				idxR = i
			}
		case "text", "note", "label":
			if idxText == -1 {
				idxText = i
			}
		case "image", "img", "uri":
			if idxImage == -1 {
				idxImage = i
			}
		}
	}
	if idxQ == -1 || idxR == -1 {
		return Document{}, errors.New("csv: q/r columns not found")
	}
	d := Document{Hexagons: []hex.Axial{}, Texts: map[string]string{}, Images: map[string]string{}}
	seen := map[hex.Axial]bool{}
	field := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i]
	}
	for _, row := range recs[1:] {
		q, err1 := strconv.Atoi(strings.TrimSpace(field(row, idxQ)))
		rr, err2 := strconv.Atoi(strings.TrimSpace(field(row, idxR)))
		if err1 != nil || err2 != nil {
			continue
		}
		a := hex.Axial{Q: q, R: rr}
		if !seen[a] {
			seen[a] = true
			d.Hexagons = append(d.Hexagons, a)
		}
		if t := field(row, idxText); t != "" {
			d.Texts[a.Key()] = t
		}
		if img := strings.TrimSpace(field(row, idxImage)); img != "" {
			d.Images[a.Key()] = img
		}
	}
	if len(d.Hexagons) == 0 {
		return Document{}, errors.New("csv: no valid cells parsed")
	}
	return d, nil
}
