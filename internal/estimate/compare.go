package estimate

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sanity-io/litter"
	log "github.com/sirupsen/logrus"

	"curvearea/internal/geom"
)

// RelError is |estimate − exact| / exact. It is undefined when the exact
// area is zero.
type RelError struct {
	Value   float64
	Defined bool
}

// RelativeError compares an estimate against the exact value.
func RelativeError(estimate, exact float64) RelError {
	if exact == 0 {
		return RelError{}
	}
	return RelError{Value: math.Abs(estimate-exact) / math.Abs(exact), Defined: true}
}

// Percent formats the error as a percentage, or "N/A".
func (e RelError) Percent() string {
	if !e.Defined {
		return "N/A"
	}
	return fmt.Sprintf("%.3f%%", e.Value*100)
}

func (e RelError) String() string { return e.Percent() }

// Report is the outcome of running every method on one polygon.
type Report struct {
	ID       uuid.UUID
	Vertices int
	BBox     geom.BBox

	Analytical        float64
	AnalyticalElapsed time.Duration

	Grid      GridResult
	GridError RelError

	MonteCarlo      MonteCarloResult
	MonteCarloError RelError
}

// Compare runs the analytical, grid and Monte Carlo computations on p.
// Both configs are validated before any work starts.
func Compare(p *geom.Polygon, grid GridConfig, mc MonteCarloConfig) (Report, error) {
	if err := grid.Validate(); err != nil {
		return Report{}, err
	}
	if err := mc.Validate(); err != nil {
		return Report{}, err
	}
	r := Report{
		ID:       uuid.New(),
		Vertices: p.Len(),
		BBox:     p.BBox(),
	}

	start := time.Now()
	r.Analytical = p.Shoelace()
	r.AnalyticalElapsed = time.Since(start)

	var err error
	if r.Grid, err = Grid(p, grid); err != nil {
		return Report{}, err
	}
	r.GridError = RelativeError(r.Grid.Area, r.Analytical)

	if r.MonteCarlo, err = MonteCarlo(p, mc); err != nil {
		return Report{}, err
	}
	r.MonteCarloError = RelativeError(r.MonteCarlo.Area, r.Analytical)

	log.WithFields(log.Fields{
		"report":     r.ID,
		"vertices":   r.Vertices,
		"analytical": r.Analytical,
		"grid":       r.Grid.Area,
		"grid_err":   r.GridError.Percent(),
		"mc":         r.MonteCarlo.Area,
		"mc_err":     r.MonteCarloError.Percent(),
		"mc_seed":    r.MonteCarlo.Seed,
	}).Debug("comparison finished")
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Trace(litter.Sdump(r))
	}
	return r, nil
}
