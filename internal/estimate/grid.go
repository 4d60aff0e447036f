// Package estimate approximates polygon areas by sampling: a grid of cells
// each sampled at fixed positions, and uniform Monte Carlo darts over the
// bounding box. Both classify samples with geom.Polygon.Contains, so they
// share its boundary convention.
package estimate

import (
	"errors"
	"fmt"
	"math"
	"time"

	"curvearea/internal/geom"
)

// ErrInvalidParameter is returned for non-positive resolutions and sample counts.
var ErrInvalidParameter = errors.New("invalid parameter")

type GridConfig struct {
	Resolution     int // cells per axis
	SamplesPerCell int
}

func (c GridConfig) Validate() error {
	if c.Resolution <= 0 {
		return fmt.Errorf("%w: grid resolution must be positive, got %d", ErrInvalidParameter, c.Resolution)
	}
	if c.SamplesPerCell <= 0 {
		return fmt.Errorf("%w: samples per cell must be positive, got %d", ErrInvalidParameter, c.SamplesPerCell)
	}
	// cell and sample counts must fit in an int
	cells := c.Resolution
	if cells > math.MaxInt/cells {
		return fmt.Errorf("%w: grid resolution %d is too large", ErrInvalidParameter, c.Resolution)
	}
	cells *= c.Resolution
	if c.SamplesPerCell > math.MaxInt/cells {
		return fmt.Errorf("%w: %d cells with %d samples each is too many", ErrInvalidParameter, cells, c.SamplesPerCell)
	}
	return nil
}

type GridResult struct {
	Area           float64
	Elapsed        time.Duration
	Resolution     int
	SamplesPerCell int
	Cells          int
}

// Grid estimates the area of p by summing the sampled coverage of
// Resolution×Resolution cells over its bounding box.
func Grid(p *geom.Polygon, cfg GridConfig) (GridResult, error) {
	if err := cfg.Validate(); err != nil {
		return GridResult{}, err
	}
	start := time.Now()
	var total float64
	cellArea := walkCells(p, cfg, func(_, _ int, frac float64) {
		total += frac
	})
	return GridResult{
		Area:           total * cellArea,
		Elapsed:        time.Since(start),
		Resolution:     cfg.Resolution,
		SamplesPerCell: cfg.SamplesPerCell,
		Cells:          cfg.Resolution * cfg.Resolution,
	}, nil
}

// CoverageMap holds the coverage fraction of every grid cell, row-major
// with row 0 at MinY.
type CoverageMap struct {
	Resolution int
	BBox       geom.BBox
	Fractions  []float64
}

// At returns the coverage of the cell at (row, col).
func (m CoverageMap) At(row, col int) float64 {
	return m.Fractions[row*m.Resolution+col]
}

// CellAt returns the cell containing (x, y), or ok=false outside the box.
func (m CoverageMap) CellAt(x, y float64) (row, col int, ok bool) {
	if m.Resolution == 0 || !m.BBox.Valid() || !m.BBox.Contains(x, y) {
		return 0, 0, false
	}
	col = cellIndex((x-m.BBox.MinX)/m.BBox.Width(), m.Resolution)
	row = cellIndex((y-m.BBox.MinY)/m.BBox.Height(), m.Resolution)
	return row, col, true
}

func cellIndex(t float64, n int) int {
	i := int(t * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Area sums the map into an area estimate, matching Grid for the same config.
func (m CoverageMap) Area() float64 {
	if m.Resolution == 0 {
		return 0
	}
	var total float64
	for _, f := range m.Fractions {
		total += f
	}
	n := float64(m.Resolution)
	cell := (m.BBox.Width() / n) * (m.BBox.Height() / n)
	return total * cell
}

// Coverage returns the per-cell coverage fractions Grid would sum, for
// rendering.
func Coverage(p *geom.Polygon, cfg GridConfig) (CoverageMap, error) {
	if err := cfg.Validate(); err != nil {
		return CoverageMap{}, err
	}
	m := CoverageMap{
		Resolution: cfg.Resolution,
		BBox:       p.BBox(),
		Fractions:  make([]float64, cfg.Resolution*cfg.Resolution),
	}
	walkCells(p, cfg, func(row, col int, frac float64) {
		m.Fractions[row*cfg.Resolution+col] = frac
	})
	return m, nil
}

// walkCells samples every cell and reports its coverage fraction. It
// returns the area of one cell. cfg must be valid.
func walkCells(p *geom.Polygon, cfg GridConfig, visit func(row, col int, frac float64)) float64 {
	bb := p.BBox()
	n := cfg.Resolution
	cw := bb.Width() / float64(n)
	ch := bb.Height() / float64(n)
	offsets := cellOffsets(cfg.SamplesPerCell)
	inv := 1 / float64(len(offsets))
	for row := 0; row < n; row++ {
		bottom := bb.MinY + float64(row)*ch
		for col := 0; col < n; col++ {
			left := bb.MinX + float64(col)*cw
			inside := 0
			for _, o := range offsets {
				if p.Contains(left+o[0]*cw, bottom+o[1]*ch) {
					inside++
				}
			}
			visit(row, col, float64(inside)*inv)
		}
	}
	return cw * ch
}

// cellOffsets places n samples in the unit cell by stratification: floor(√n)
// rows, the samples spread as evenly as possible across them, each sample at
// the centre of its stratum. One sample sits at the cell centre.
func cellOffsets(n int) [][2]float64 {
	rows := int(math.Sqrt(float64(n)))
	out := make([][2]float64, 0, n)
	for r := 0; r < rows; r++ {
		cols := n*(r+1)/rows - n*r/rows
		y := (float64(r) + 0.5) / float64(rows)
		for c := 0; c < cols; c++ {
			out = append(out, [2]float64{(float64(c) + 0.5) / float64(cols), y})
		}
	}
	return out
}
