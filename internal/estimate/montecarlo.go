package estimate

import (
	"fmt"
	"math/rand/v2"
	"time"

	"curvearea/internal/geom"
)

// MonteCarloConfig selects the sample count and random stream. With Seeded
// set, the stream is derived from Seed and runs are exactly reproducible.
// Otherwise a fresh seed is drawn and reported in the result.
type MonteCarloConfig struct {
	Samples int
	Seed    uint64
	Seeded  bool
}

// Seeded returns a config with a fixed seed.
func Seeded(samples int, seed uint64) MonteCarloConfig {
	return MonteCarloConfig{Samples: samples, Seed: seed, Seeded: true}
}

func (c MonteCarloConfig) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("%w: sample count must be positive, got %d", ErrInvalidParameter, c.Samples)
	}
	return nil
}

// seed returns the configured seed, or a new random one.
func (c MonteCarloConfig) seed() uint64 {
	if c.Seeded {
		return c.Seed
	}
	return rand.Uint64()
}

// NewRand returns the generator used for a given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type MonteCarloResult struct {
	Area           float64
	Elapsed        time.Duration
	Samples        int
	Inside         int
	FractionInside float64
	BBoxArea       float64
	Seed           uint64
}

// MonteCarlo estimates the area of p from the fraction of uniform samples
// in its bounding box that land inside it.
func MonteCarlo(p *geom.Polygon, cfg MonteCarloConfig) (MonteCarloResult, error) {
	if err := cfg.Validate(); err != nil {
		return MonteCarloResult{}, err
	}
	seed := cfg.seed()
	res, err := MonteCarloWith(p, cfg.Samples, NewRand(seed))
	if err != nil {
		return MonteCarloResult{}, err
	}
	res.Seed = seed
	return res, nil
}

// MonteCarloWith is MonteCarlo with a caller-owned generator. The result's
// Seed is left zero since the stream's origin is unknown.
func MonteCarloWith(p *geom.Polygon, samples int, rng *rand.Rand) (MonteCarloResult, error) {
	if samples <= 0 {
		return MonteCarloResult{}, fmt.Errorf("%w: sample count must be positive, got %d", ErrInvalidParameter, samples)
	}
	start := time.Now()
	inside := 0
	throw(p, samples, rng, func(_, _ float64, in bool) {
		if in {
			inside++
		}
	})
	frac := float64(inside) / float64(samples)
	bbArea := p.BBox().Area()
	return MonteCarloResult{
		Area:           frac * bbArea,
		Elapsed:        time.Since(start),
		Samples:        samples,
		Inside:         inside,
		FractionInside: frac,
		BBoxArea:       bbArea,
	}, nil
}

// Dart is one Monte Carlo sample and its classification.
type Dart struct {
	X, Y   float64
	Inside bool
}

// Darts materialises the samples MonteCarlo would draw for cfg, for
// rendering. For a seeded config the inside count matches MonteCarlo's.
func Darts(p *geom.Polygon, cfg MonteCarloConfig) ([]Dart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	out := make([]Dart, 0, cfg.Samples)
	throw(p, cfg.Samples, NewRand(cfg.seed()), func(x, y float64, in bool) {
		out = append(out, Dart{X: x, Y: y, Inside: in})
	})
	return out, nil
}

// throw draws n points uniformly in p's bounding box, x before y.
func throw(p *geom.Polygon, n int, rng *rand.Rand, visit func(x, y float64, in bool)) {
	bb := p.BBox()
	w, h := bb.Width(), bb.Height()
	for i := 0; i < n; i++ {
		x := bb.MinX + rng.Float64()*w
		y := bb.MinY + rng.Float64()*h
		visit(x, y, p.Contains(x, y))
	}
}
