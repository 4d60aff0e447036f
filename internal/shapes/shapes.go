// Package shapes builds the example curves used by the report and viewer.
package shapes

import (
	"math"

	"github.com/samber/lo"

	"curvearea/internal/estimate"
	"curvearea/internal/geom"
)

func Triangle() [][2]float64 {
	return [][2]float64{{0, 0}, {4, 0}, {2, 3}}
}

// Rectangle has corners (0,0) and (w,h), counter-clockwise.
func Rectangle(w, h float64) [][2]float64 {
	return [][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}}
}

// Regular returns an n-gon of the given circumradius centred on the origin,
// first vertex on the +x axis.
func Regular(n int, radius float64) [][2]float64 {
	return lo.Times(n, func(i int) [2]float64 {
		a := 2 * math.Pi * float64(i) / float64(n)
		return [2]float64{radius * math.Cos(a), radius * math.Sin(a)}
	})
}

// Star alternates outer and inner radii over 2*points vertices.
func Star(points int, outer, inner float64) [][2]float64 {
	n := 2 * points
	return lo.Times(n, func(i int) [2]float64 {
		a := 2 * math.Pi * float64(i) / float64(n)
		r := lo.Ternary(i%2 == 0, outer, inner)
		return [2]float64{r * math.Cos(a), r * math.Sin(a)}
	})
}

// Example is a named curve with the estimator settings it is reported with.
type Example struct {
	Name       string
	Vertices   [][2]float64
	Grid       estimate.GridConfig
	MonteCarlo int
}

// Polygon builds the example's polygon. Examples always have enough vertices.
func (e Example) Polygon() *geom.Polygon {
	p, err := geom.NewPolygon(e.Vertices)
	if err != nil {
		panic(err)
	}
	return p
}

// Configs returns the example's grid settings and base with the example's
// sample count, keeping base's seed.
func (e Example) Configs(base estimate.MonteCarloConfig) (estimate.GridConfig, estimate.MonteCarloConfig) {
	base.Samples = e.MonteCarlo
	return e.Grid, base
}

// Examples returns the built-in examples in presentation order.
func Examples() []Example {
	return []Example{
		{
			Name:       "Simple Triangle",
			Vertices:   Triangle(),
			Grid:       estimate.GridConfig{Resolution: 50, SamplesPerCell: 16},
			MonteCarlo: 50000,
		},
		{
			Name:       "Regular Pentagon",
			Vertices:   Regular(5, 3),
			Grid:       estimate.GridConfig{Resolution: 100, SamplesPerCell: 25},
			MonteCarlo: 100000,
		},
		{
			Name:       "Star Shape",
			Vertices:   Star(5, 4, 2),
			Grid:       estimate.GridConfig{Resolution: 150, SamplesPerCell: 25},
			MonteCarlo: 150000,
		},
		{
			Name:       "Rectangle 4x3",
			Vertices:   Rectangle(4, 3),
			Grid:       estimate.GridConfig{Resolution: 20, SamplesPerCell: 1},
			MonteCarlo: 10000,
		},
	}
}

// Find returns the example with the given name.
func Find(name string) (Example, bool) {
	return lo.Find(Examples(), func(e Example) bool { return e.Name == name })
}

// SweepPoint is one grid run of a resolution sweep.
type SweepPoint struct {
	Resolution int
	Result     estimate.GridResult
	Error      estimate.RelError
}

// ResolutionSweep runs the grid estimator on p at each resolution, showing
// how the error shrinks as cells get smaller.
func ResolutionSweep(p *geom.Polygon, samplesPerCell int, resolutions ...int) ([]SweepPoint, error) {
	exact := p.Area()
	out := make([]SweepPoint, 0, len(resolutions))
	for _, r := range resolutions {
		res, err := estimate.Grid(p, estimate.GridConfig{Resolution: r, SamplesPerCell: samplesPerCell})
		if err != nil {
			return nil, err
		}
		out = append(out, SweepPoint{Resolution: r, Result: res, Error: estimate.RelativeError(res.Area, exact)})
	}
	return out, nil
}
