package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseWKTData parses a subset of WKT into Data.
// Supported: POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...), POLYGON((x y, ...), (...))
func ParseWKTData(wkt string) (Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Data{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	var d Data
	var bb bboxBuilder
	// body returns the text between the first open and last close delimiter.
	body := func(open, close, kind string) (string, error) {
		i := strings.Index(s, open)
		j := strings.LastIndex(s, close)
		if i < 0 || j <= i {
			return "", errors.New("wkt " + kind + ": invalid")
		}
		return s[i+len(open) : j], nil
	}
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"), strings.HasPrefix(up, "POINT"):
		b, err := body("(", ")", "point")
		if err != nil {
			return Data{}, err
		}
		// MULTIPOINT((1 2), (3 4)) is also valid
		b = strings.NewReplacer("(", "", ")", "").Replace(b)
		if d.Points, err = parseWKTTuples(b); err != nil {
			return Data{}, err
		}
		bb.addAll(d.Points)
	case strings.HasPrefix(up, "LINESTRING"):
		b, err := body("(", ")", "linestring")
		if err != nil {
			return Data{}, err
		}
		ls, err := parseWKTTuples(b)
		if err != nil {
			return Data{}, err
		}
		d.Lines = append(d.Lines, ls)
		bb.addAll(ls)
	case strings.HasPrefix(up, "POLYGON"):
		b, err := body("((", "))", "polygon")
		if err != nil {
			return Data{}, err
		}
		// normalize spaces around ring separators
		b = strings.ReplaceAll(b, ") , (", "),(")
		b = strings.ReplaceAll(b, "), (", "),(")
		var poly [][][2]float64
		for _, rp := range strings.Split(b, "),(") {
			ring, err := parseWKTTuples(rp)
			if err != nil {
				return Data{}, err
			}
			poly = append(poly, ring)
			bb.addAll(ring)
		}
		d.Polygons = append(d.Polygons, poly)
	default:
		return Data{}, errors.New("unsupported wkt type")
	}
	if bb.n == 0 {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	d.BBox = bb.box
	return d, nil
}

// parseWKTTuples splits "x y, x y, ..." into points. Z and M values are
// ignored; a tuple without two numbers is an error.
func parseWKTTuples(block string) ([][2]float64, error) {
	if strings.TrimSpace(block) == "" {
		return nil, nil
	}
	var out [][2]float64
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(tup)
		if len(parts) < 2 {
			return nil, fmt.Errorf("wkt: malformed coordinate %q", strings.TrimSpace(tup))
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			return nil, fmt.Errorf("wkt: malformed coordinate %q", strings.TrimSpace(tup))
		}
		out = append(out, [2]float64{x, y})
	}
	return out, nil
}

// FormatWKT writes p as a single-ring POLYGON, repeating the first vertex
// to close the ring.
func FormatWKT(p *Polygon) string {
	var sb strings.Builder
	sb.WriteString("POLYGON((")
	n := p.Len()
	for i := 0; i <= n; i++ {
		v := p.Vertex(i % n)
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v[0], 'g', -1, 64))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(v[1], 'g', -1, 64))
	}
	sb.WriteString("))")
	return sb.String()
}
