package geom

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Curve picks the vertex list that outlines d: the outer ring of the first
// polygon, else the first line string, else all points in order.
func (d Data) Curve() ([][2]float64, error) {
	for _, poly := range d.Polygons {
		if len(poly) > 0 && len(poly[0]) > 0 {
			return OpenRing(poly[0]), nil
		}
	}
	for _, ls := range d.Lines {
		if len(ls) > 0 {
			return OpenRing(ls), nil
		}
	}
	if len(d.Points) > 0 {
		return OpenRing(d.Points), nil
	}
	return nil, errors.New("no curve in data")
}

// Polygon builds a polygon from d's curve.
func (d Data) Polygon() (*Polygon, error) {
	c, err := d.Curve()
	if err != nil {
		return nil, err
	}
	return NewPolygon(c)
}

// Supported reports whether the file extension has a loader.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json", ".csv", ".kml", ".wkt":
		return true
	}
	return false
}

// Load reads any supported file, dispatching on extension.
func Load(path string) (Data, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".geojson", ".json":
		return LoadGeo(path)
	case ".csv":
		return LoadCSV(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		b, err := os.ReadFile(path)
		if err != nil {
			return Data{}, err
		}
		return ParseWKTData(string(b))
	}
	return Data{}, fmt.Errorf("unsupported file: %q", ext)
}

// LoadPolygon reads path and builds a polygon from its curve.
func LoadPolygon(path string) (*Polygon, error) {
	d, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	p, err := d.Polygon()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return p, nil
}
