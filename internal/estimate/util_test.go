package estimate

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"curvearea/internal/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustPolygon(t testing.TB, vs [][2]float64) *geom.Polygon {
	t.Helper()
	p, err := geom.NewPolygon(vs)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

var (
	rectangle = [][2]float64{{0, 0}, {4, 0}, {4, 3}, {0, 3}}
	triangle  = [][2]float64{{0, 0}, {4, 0}, {2, 3}}
)

// star is a five-pointed star with outer radius 4 and inner radius 2.
func star() [][2]float64 {
	vs := make([][2]float64, 10)
	for i := range vs {
		r := 4.0
		if i%2 == 1 {
			r = 2
		}
		a := 2 * math.Pi * float64(i) / 10
		vs[i] = [2]float64{r * math.Cos(a), r * math.Sin(a)}
	}
	return vs
}

// countingSource counts the values drawn from it.
type countingSource struct {
	n   int
	src rand.Source
}

func (c *countingSource) Uint64() uint64 {
	c.n++
	return c.src.Uint64()
}
