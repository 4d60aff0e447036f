package geom

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

func approxEqual(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
}

func mustPolygon(t *testing.T, vs [][2]float64) *Polygon {
	t.Helper()
	p, err := NewPolygon(vs)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNewPolygonRejectsShortInput(t *testing.T) {
	for _, vs := range [][][2]float64{nil, {{0, 0}}, {{0, 0}, {1, 1}}} {
		if _, err := NewPolygon(vs); !errors.Is(err, ErrInvalidPolygon) {
			t.Errorf("NewPolygon(%v): got %v, want ErrInvalidPolygon", vs, err)
		}
	}
}

func TestNewPolygonRejectsNonFinite(t *testing.T) {
	vs := [][2]float64{{0, 0}, {1, math.NaN()}, {0, 1}}
	if _, err := NewPolygon(vs); !errors.Is(err, ErrInvalidPolygon) {
		t.Errorf("got %v, want ErrInvalidPolygon", err)
	}
	vs = [][2]float64{{0, 0}, {math.Inf(1), 0}, {0, 1}}
	if _, err := NewPolygon(vs); !errors.Is(err, ErrInvalidPolygon) {
		t.Errorf("got %v, want ErrInvalidPolygon", err)
	}
}

func TestPolygonCopiesVertices(t *testing.T) {
	vs := [][2]float64{{0, 0}, {4, 0}, {2, 3}}
	p := mustPolygon(t, vs)
	vs[0] = [2]float64{100, 100}
	diff(t, [2]float64{0, 0}, p.Vertex(0))
	out := p.Vertices()
	out[1] = [2]float64{-1, -1}
	diff(t, [2]float64{4, 0}, p.Vertex(1))
}

func TestBBox(t *testing.T) {
	p := mustPolygon(t, [][2]float64{{-1, 2}, {3, -4}, {5, 6}})
	diff(t, BBox{MinX: -1, MinY: -4, MaxX: 5, MaxY: 6}, p.BBox())
	if a := p.BBox().Area(); a != 60 {
		t.Errorf("got bbox area %v, want 60", a)
	}
	diff(t, BBox{}, BBoxOf(nil))
}

func TestTriangleArea(t *testing.T) {
	p := mustPolygon(t, [][2]float64{{0, 0}, {4, 0}, {2, 3}})
	if a := p.Area(); !approxEqual(a, 6) {
		t.Errorf("got area %v, want 6", a)
	}
}

func TestRectangleArea(t *testing.T) {
	for _, wh := range [][2]float64{{1, 1}, {4, 3}, {0.1, 250}, {1e6, 1e-3}} {
		w, h := wh[0], wh[1]
		p := mustPolygon(t, [][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}})
		if a := p.Area(); math.Abs(a-w*h) > 1e-12*w*h {
			t.Errorf("%vx%v: got area %v, want %v", w, h, a, w*h)
		}
	}
}

func TestAreaIgnoresWinding(t *testing.T) {
	ccw := [][2]float64{{0, 0}, {4, 0}, {4, 3}, {0, 3}}
	cw := slices.Clone(ccw)
	slices.Reverse(cw)
	a, b := mustPolygon(t, ccw), mustPolygon(t, cw)
	if a.Area() != b.Area() {
		t.Errorf("got areas %v and %v, expected them to be equal", a.Area(), b.Area())
	}
	if a.SignedArea() <= 0 || b.SignedArea() >= 0 {
		t.Errorf("got signed areas %v and %v, want positive then negative", a.SignedArea(), b.SignedArea())
	}
}

func TestShoelaceMatchesPlanar(t *testing.T) {
	star := make([][2]float64, 10)
	for i := range star {
		r := 4.0
		if i%2 == 1 {
			r = 2
		}
		a := 2 * math.Pi * float64(i) / 10
		star[i] = [2]float64{r * math.Cos(a), r * math.Sin(a)}
	}
	tests := map[string][][2]float64{
		"triangle":  {{0, 0}, {4, 0}, {2, 3}},
		"pentagon":  {{3, 0}, {0.927, 2.853}, {-2.427, 1.763}, {-2.427, -1.763}, {0.927, -2.853}},
		"star":      star,
		"clockwise": {{0, 3}, {4, 3}, {4, 0}, {0, 0}},
	}
	for name, vs := range tests {
		ring := make(orb.Ring, 0, len(vs)+1)
		for _, v := range vs {
			ring = append(ring, v)
		}
		ring = append(ring, vs[0])
		want := math.Abs(planar.Area(ring))
		if got := ShoelaceArea(vs); math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: got %v, planar.Area gives %v", name, got, want)
		}
		if got := mustPolygon(t, vs).Shoelace(); math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: Shoelace got %v, want %v", name, got, want)
		}
	}
}

func TestShoelaceDoesNotAllocate(t *testing.T) {
	p := mustPolygon(t, [][2]float64{{0, 0}, {4, 0}, {4, 3}, {0, 3}})
	allocs := testing.AllocsPerRun(100, func() {
		p.Shoelace()
	})
	if allocs != 0 {
		t.Errorf("got %v allocations per call, want 0", allocs)
	}
}

func TestDegenerateArea(t *testing.T) {
	if a := ShoelaceArea([][2]float64{{0, 0}, {5, 5}}); a != 0 {
		t.Errorf("two vertices: got area %v, want 0", a)
	}
	if a := ShoelaceArea(nil); a != 0 {
		t.Errorf("no vertices: got area %v, want 0", a)
	}
	p := mustPolygon(t, [][2]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	if a := p.Area(); a != 0 {
		t.Errorf("collinear: got area %v, want 0", a)
	}
}

func TestContainsCentroid(t *testing.T) {
	tests := [][][2]float64{
		{{0, 0}, {4, 0}, {2, 3}},
		{{0, 0}, {4, 0}, {4, 3}, {0, 3}},
		{{3, 0}, {0.927, 2.853}, {-2.427, 1.763}, {-2.427, -1.763}, {0.927, -2.853}},
	}
	for _, vs := range tests {
		p := mustPolygon(t, vs)
		var cx, cy float64
		for _, v := range vs {
			cx += v[0]
			cy += v[1]
		}
		cx /= float64(len(vs))
		cy /= float64(len(vs))
		if !p.Contains(cx, cy) {
			t.Errorf("%v: centroid (%v, %v) not inside", vs, cx, cy)
		}
		bb := p.BBox()
		if p.Contains(bb.MaxX+100, bb.MaxY+100) || p.Contains(bb.MinX-1e6, cy) {
			t.Errorf("%v: far point classified inside", vs)
		}
	}
}

func TestContainsConcave(t *testing.T) {
	// U shape opening upward
	p := mustPolygon(t, [][2]float64{{0, 0}, {3, 0}, {3, 3}, {2, 3}, {2, 1}, {1, 1}, {1, 3}, {0, 3}})
	tests := []struct {
		x, y float64
		want bool
	}{
		{0.5, 2, true},
		{2.5, 2, true},
		{1.5, 2, false}, // in the notch
		{1.5, 0.5, true},
		{1.5, 3, false},
	}
	for _, tt := range tests {
		if got := p.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestContainsThroughVertex(t *testing.T) {
	// A ray from (0, 1) passes exactly through the vertex (2, 1); it must
	// count one crossing, not two.
	p := mustPolygon(t, [][2]float64{{1, 0}, {2, 1}, {1, 2}, {-1, 1}})
	if !p.Contains(0, 1) {
		t.Error("point whose ray hits a vertex classified outside")
	}
	if p.Contains(3, 1) {
		t.Error("point right of the vertex classified inside")
	}
}

func TestBoundaryConvention(t *testing.T) {
	sq := [][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"left edge", 0, 1, true},
		{"bottom edge", 1, 0, true},
		{"right edge", 2, 1, false},
		{"top edge", 1, 2, false},
		{"bottom-left corner", 0, 0, true},
		{"top-right corner", 2, 2, false},
	}
	for _, tt := range tests {
		if got := PointInRing(sq, tt.x, tt.y); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDegenerateNeverContains(t *testing.T) {
	two := [][2]float64{{0, 0}, {5, 5}}
	for _, pt := range [][2]float64{{0, 0}, {2.5, 2.5}, {1, 0}, {-1, -1}} {
		if PointInRing(two, pt[0], pt[1]) {
			t.Errorf("two-vertex ring contains %v", pt)
		}
	}
	if PointInRing(nil, 0, 0) {
		t.Error("empty ring contains origin")
	}
	line := mustPolygon(t, [][2]float64{{0, 0}, {1, 1}, {2, 2}})
	if line.Contains(1, 1) || line.Contains(0.5, 0.5) {
		t.Error("collinear polygon contains a point on its line")
	}
}

func TestPointInRingDoesNotAllocate(t *testing.T) {
	ring := [][2]float64{{0, 0}, {4, 0}, {4, 3}, {0, 3}}
	allocs := testing.AllocsPerRun(100, func() {
		PointInRing(ring, 1, 1)
	})
	if allocs != 0 {
		t.Errorf("got %v allocations per call, want 0", allocs)
	}
}

func TestOpenRing(t *testing.T) {
	closed := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 0}}
	diff(t, [][2]float64{{0, 0}, {1, 0}, {1, 1}}, OpenRing(closed))
	open := [][2]float64{{0, 0}, {1, 0}, {1, 1}}
	diff(t, open, OpenRing(open))
	diff(t, [][2]float64{{2, 2}}, OpenRing([][2]float64{{2, 2}, {2, 2}}))
}

func BenchmarkPointInRing(b *testing.B) {
	ring := [][2]float64{{4, 0}, {1.6, 1.2}, {1.2, 3.8}, {-0.6, 1.9}, {-3.2, 2.4}, {-2, 0}, {-3.2, -2.4}, {-0.6, -1.9}, {1.2, -3.8}, {1.6, -1.2}}
	for i := 0; i < b.N; i++ {
		PointInRing(ring, 0.3, 0.7)
	}
}
