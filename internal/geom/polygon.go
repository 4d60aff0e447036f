package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPolygon is returned when a vertex list cannot form a polygon.
var ErrInvalidPolygon = errors.New("invalid polygon")

// Polygon is a closed piecewise-linear curve. The last vertex is implicitly
// joined to the first. A Polygon is immutable once built, so it can be
// shared freely between estimators.
type Polygon struct {
	vertices [][2]float64
	bbox     BBox
	signed   float64
}

// NewPolygon copies vertices into a new polygon. It fails with
// ErrInvalidPolygon when fewer than 3 vertices are given or a coordinate is
// NaN or infinite. Collinear vertices are accepted; such a polygon has zero
// area and contains no point.
func NewPolygon(vertices [][2]float64) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 vertices, got %d", ErrInvalidPolygon, len(vertices))
	}
	for i, v := range vertices {
		if !finite(v[0]) || !finite(v[1]) {
			return nil, fmt.Errorf("%w: vertex %d (%g, %g) is not finite", ErrInvalidPolygon, i, v[0], v[1])
		}
	}
	vs := make([][2]float64, len(vertices))
	copy(vs, vertices)
	return &Polygon{
		vertices: vs,
		bbox:     BBoxOf(vs),
		signed:   signedShoelace(vs),
	}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Len returns the number of vertices.
func (p *Polygon) Len() int { return len(p.vertices) }

// Vertex returns the i'th vertex.
func (p *Polygon) Vertex(i int) [2]float64 { return p.vertices[i] }

// Vertices returns a copy of the vertex list.
func (p *Polygon) Vertices() [][2]float64 {
	out := make([][2]float64, len(p.vertices))
	copy(out, p.vertices)
	return out
}

func (p *Polygon) BBox() BBox { return p.bbox }

// Area returns the exact enclosed area, independent of winding order.
func (p *Polygon) Area() float64 { return math.Abs(p.signed) }

// Shoelace recomputes the area from the vertices, bypassing the value
// cached at construction.
func (p *Polygon) Shoelace() float64 { return ShoelaceArea(p.vertices) }

// SignedArea is positive for counter-clockwise vertex order.
func (p *Polygon) SignedArea() float64 { return p.signed }

// Contains reports whether (x, y) is inside the polygon. See PointInRing
// for the boundary convention.
func (p *Polygon) Contains(x, y float64) bool {
	if !p.bbox.Contains(x, y) {
		return false
	}
	return PointInRing(p.vertices, x, y)
}

// PointInRing tests (x, y) against the closed ring with the even-odd rule,
// casting a ray toward +x and counting the edges it crosses.
//
// An edge counts when exactly one endpoint lies strictly above y, so a ray
// through a vertex is counted once and horizontal edges never count. The
// crossing must lie strictly right of x. The test is therefore half-open:
// points on a left or bottom boundary are inside, points on a right or top
// boundary are outside. Rings with fewer than 3 vertices contain nothing.
func PointInRing(ring [][2]float64, x, y float64) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	in := false
	a := ring[n-1]
	for _, b := range ring {
		if (a[1] > y) != (b[1] > y) &&
			x < (a[0]-b[0])*(y-b[1])/(a[1]-b[1])+b[0] {
			in = !in
		}
		a = b
	}
	return in
}

// ShoelaceArea returns the absolute area of the ring, or 0 for fewer than
// 3 vertices.
func ShoelaceArea(ring [][2]float64) float64 {
	return math.Abs(signedShoelace(ring))
}

func signedShoelace(ring [][2]float64) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var sum float64
	a := ring[n-1]
	for _, b := range ring {
		sum += a[0]*b[1] - b[0]*a[1]
		a = b
	}
	return sum / 2
}

// OpenRing drops trailing vertices equal to the first, as closed rings in
// WKT, GeoJSON and KML repeat their start point. The input is not modified.
func OpenRing(ring [][2]float64) [][2]float64 {
	for len(ring) > 1 && ring[len(ring)-1] == ring[0] {
		ring = ring[:len(ring)-1]
	}
	return ring
}
