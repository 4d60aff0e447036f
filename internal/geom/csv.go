package geom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a CSV of vertices in file order.
func LoadCSV(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV reads vertices from a CSV with a header row.
// Column detection: x|lon|lng|long|longitude and y|lat|latitude (case-insensitive).
// A row without two numbers is an error.
func ParseCSV(r io.Reader) (Data, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return Data{}, err
	}
	if len(recs) == 0 {
		return Data{}, errors.New("empty csv")
	}
	idxX, idxY := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "lon", "lng", "long", "longitude":
			if idxX == -1 {
				idxX = i
			}
		case "y", "lat", "latitude":
			if idxY == -1 {
				idxY = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return Data{}, errors.New("csv: x/y columns not found")
	}
	var d Data
	var bb bboxBuilder
	for i, row := range recs[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			return Data{}, fmt.Errorf("csv: row %d: missing x/y", i+2)
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if err1 != nil || err2 != nil {
			return Data{}, fmt.Errorf("csv: row %d: malformed coordinate (%q, %q)", i+2, row[idxX], row[idxY])
		}
		pt := [2]float64{x, y}
		d.Points = append(d.Points, pt)
		bb.add(pt)
	}
	if len(d.Points) == 0 {
		return Data{}, errors.New("csv: no valid points parsed")
	}
	d.BBox = bb.box
	return d, nil
}
