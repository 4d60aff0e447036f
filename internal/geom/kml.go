package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPolygon struct {
	Outer kmlCoords   `xml:"outerBoundaryIs>LinearRing"`
	Inner []kmlCoords `xml:"innerBoundaryIs>LinearRing"`
}

type kmlPlacemark struct {
	Point      *kmlCoords   `xml:"Point"`
	LineString *kmlCoords   `xml:"LineString"`
	Polygon    *kmlPolygon  `xml:"Polygon"`
	Multi      []kmlPolygon `xml:"MultiGeometry>Polygon"`
}

type kmlFolder struct {
	Placemarks []kmlPlacemark `xml:"Placemark"`
	Folders    []kmlFolder    `xml:"Folder"`
}

type kmlDoc struct {
	kmlFolder
	Document *kmlFolder `xml:"Document"`
}

// LoadKML reads Placemark points, line strings and polygons from a KML file.
func LoadKML(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	return ParseKML(b)
}

// ParseKML decodes KML. Coordinates are "lon,lat[,alt]"; altitude is ignored.
func ParseKML(b []byte) (Data, error) {
	var doc kmlDoc
	if err := xml.Unmarshal(b, &doc); err != nil {
		return Data{}, err
	}
	var d Data
	var bb bboxBuilder
	addPoly := func(kp kmlPolygon) error {
		outer, err := parseKMLCoords(kp.Outer.Coordinates)
		if err != nil {
			return err
		}
		poly := [][][2]float64{outer}
		for _, in := range kp.Inner {
			ring, err := parseKMLCoords(in.Coordinates)
			if err != nil {
				return err
			}
			poly = append(poly, ring)
		}
		for _, ring := range poly {
			bb.addAll(ring)
		}
		d.Polygons = append(d.Polygons, poly)
		return nil
	}
	var walk func(f kmlFolder) error
	walk = func(f kmlFolder) error {
		for _, pm := range f.Placemarks {
			if pm.Point != nil {
				pts, err := parseKMLCoords(pm.Point.Coordinates)
				if err != nil {
					return err
				}
				d.Points = append(d.Points, pts...)
				bb.addAll(pts)
			}
			if pm.LineString != nil {
				ls, err := parseKMLCoords(pm.LineString.Coordinates)
				if err != nil {
					return err
				}
				d.Lines = append(d.Lines, ls)
				bb.addAll(ls)
			}
			if pm.Polygon != nil {
				if err := addPoly(*pm.Polygon); err != nil {
					return err
				}
			}
			for _, kp := range pm.Multi {
				if err := addPoly(kp); err != nil {
					return err
				}
			}
		}
		for _, sub := range f.Folders {
			if err := walk(sub); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(doc.kmlFolder); err != nil {
		return Data{}, err
	}
	if doc.Document != nil {
		if err := walk(*doc.Document); err != nil {
			return Data{}, err
		}
	}
	if bb.n == 0 {
		return Data{}, errors.New("kml: no coordinates found")
	}
	d.BBox = bb.box
	return d, nil
}

// parseKMLCoords splits whitespace-separated "lon,lat[,alt]" tuples. A
// tuple without two numbers is an error.
func parseKMLCoords(s string) ([][2]float64, error) {
	var out [][2]float64
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			return nil, fmt.Errorf("kml: malformed coordinate %q", tuple)
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("kml: malformed coordinate %q", tuple)
		}
		out = append(out, [2]float64{lon, lat})
	}
	return out, nil
}
