package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadGeo reads a GeoJSON file and returns Data (points, lines, polygons)
func LoadGeo(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	return ParseGeoJSON(b)
}

// ParseGeoJSON accepts a bare geometry, a Feature or a FeatureCollection.
func ParseGeoJSON(b []byte) (Data, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return Data{}, err
	}
	var geoms []orb.Geometry
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(b)
		if err != nil {
			return Data{}, err
		}
		for _, f := range fc.Features {
			geoms = append(geoms, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(b)
		if err != nil {
			return Data{}, err
		}
		geoms = append(geoms, f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(b)
		if err != nil {
			return Data{}, fmt.Errorf("geojson %q: %w", head.Type, err)
		}
		geoms = append(geoms, g.Geometry())
	}

	var d Data
	var bb bboxBuilder
	addLine := func(ls []orb.Point) {
		pts := points(ls)
		d.Lines = append(d.Lines, pts)
		bb.addAll(pts)
	}
	addPoly := func(poly orb.Polygon) {
		rings := make([][][2]float64, 0, len(poly))
		for _, r := range poly {
			ring := points(r)
			rings = append(rings, ring)
			bb.addAll(ring)
		}
		d.Polygons = append(d.Polygons, rings)
	}
	var walk func(g orb.Geometry)
	walk = func(g orb.Geometry) {
		switch g := g.(type) {
		case orb.Point:
			d.Points = append(d.Points, g)
			bb.add(g)
		case orb.MultiPoint:
			pts := points(g)
			d.Points = append(d.Points, pts...)
			bb.addAll(pts)
		case orb.LineString:
			addLine(g)
		case orb.MultiLineString:
			for _, ls := range g {
				addLine(ls)
			}
		case orb.Ring:
			addPoly(orb.Polygon{g})
		case orb.Polygon:
			addPoly(g)
		case orb.MultiPolygon:
			for _, poly := range g {
				addPoly(poly)
			}
		case orb.Collection:
			for _, sub := range g {
				walk(sub)
			}
		}
	}
	for _, g := range geoms {
		if g != nil {
			walk(g)
		}
	}
	if len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0 {
		return Data{}, errors.New("no geometries found")
	}
	d.BBox = bb.box
	return d, nil
}

func points(ps []orb.Point) [][2]float64 {
	out := make([][2]float64, len(ps))
	for i, p := range ps {
		out[i] = p
	}
	return out
}
