package estimate

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestMonteCarloSeededIsReproducible(t *testing.T) {
	p := mustPolygon(t, star())
	a, err := MonteCarlo(p, Seeded(20000, 42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := MonteCarlo(p, Seeded(20000, 42))
	if err != nil {
		t.Fatal(err)
	}
	if a.Area != b.Area || a.Inside != b.Inside || a.Seed != 42 {
		t.Errorf("seed 42 gave %+v then %+v", a, b)
	}
	d42, err := Darts(p, Seeded(10, 42))
	if err != nil {
		t.Fatal(err)
	}
	d43, err := Darts(p, Seeded(10, 43))
	if err != nil {
		t.Fatal(err)
	}
	if d42[0] == d43[0] {
		t.Errorf("seeds 42 and 43 both threw %+v first", d42[0])
	}
}

func TestMonteCarloUnseededRecordsSeed(t *testing.T) {
	p := mustPolygon(t, triangle)
	a, err := MonteCarlo(p, MonteCarloConfig{Samples: 5000})
	if err != nil {
		t.Fatal(err)
	}
	b, err := MonteCarlo(p, Seeded(5000, a.Seed))
	if err != nil {
		t.Fatal(err)
	}
	if a.Inside != b.Inside {
		t.Errorf("replaying seed %d: got %d inside, want %d", a.Seed, b.Inside, a.Inside)
	}
}

func TestMonteCarloResultFields(t *testing.T) {
	p := mustPolygon(t, triangle)
	res, err := MonteCarlo(p, Seeded(10000, 1))
	if err != nil {
		t.Fatal(err)
	}
	if res.Samples != 10000 || res.BBoxArea != 12 {
		t.Errorf("got samples %d, bbox area %v", res.Samples, res.BBoxArea)
	}
	if want := float64(res.Inside) / 10000; res.FractionInside != want {
		t.Errorf("got fraction %v, want %v", res.FractionInside, want)
	}
	if want := res.FractionInside * 12; res.Area != want {
		t.Errorf("got area %v, want %v", res.Area, want)
	}
	if res.Area < 0 || res.Area > res.BBoxArea {
		t.Errorf("area %v outside [0, %v]", res.Area, res.BBoxArea)
	}
}

func TestMonteCarloRejectsInvalidSamples(t *testing.T) {
	p := mustPolygon(t, triangle)
	for _, n := range []int{0, -5} {
		if _, err := MonteCarlo(p, Seeded(n, 1)); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("MonteCarlo(%d): got %v, want ErrInvalidParameter", n, err)
		}
		if _, err := Darts(p, Seeded(n, 1)); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Darts(%d): got %v, want ErrInvalidParameter", n, err)
		}
		src := &countingSource{src: rand.NewPCG(1, 2)}
		if _, err := MonteCarloWith(p, n, rand.New(src)); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("MonteCarloWith(%d): got %v, want ErrInvalidParameter", n, err)
		}
		if src.n != 0 {
			t.Errorf("MonteCarloWith(%d) drew %d values before failing", n, src.n)
		}
	}
}

func TestMonteCarloWithDrawsTwicePerSample(t *testing.T) {
	p := mustPolygon(t, rectangle)
	src := &countingSource{src: rand.NewPCG(7, 7)}
	if _, err := MonteCarloWith(p, 1000, rand.New(src)); err != nil {
		t.Fatal(err)
	}
	if src.n != 2000 {
		t.Errorf("drew %d values for 1000 samples, want 2000", src.n)
	}
}

func TestMonteCarloOfBoundingBox(t *testing.T) {
	p := mustPolygon(t, rectangle)
	res, err := MonteCarlo(p, Seeded(1000, 9))
	if err != nil {
		t.Fatal(err)
	}
	if res.Inside != 1000 || res.Area != 12 {
		t.Errorf("got %d inside, area %v; want all samples inside and area 12", res.Inside, res.Area)
	}
}

func TestMonteCarloStarWithinOnePercent(t *testing.T) {
	if testing.Short() {
		t.Skip("large sample run")
	}
	p := mustPolygon(t, star())
	res, err := MonteCarlo(p, Seeded(400000, 2024))
	if err != nil {
		t.Fatal(err)
	}
	if e := RelativeError(res.Area, p.Area()); e.Value > 0.01 {
		t.Errorf("got area %v for exact %v, relative error %v", res.Area, p.Area(), e)
	}
}

func TestMonteCarloErrorShrinksWithSamples(t *testing.T) {
	if testing.Short() {
		t.Skip("large sample run")
	}
	p := mustPolygon(t, star())
	exact := p.Area()
	medianErr := func(samples int) float64 {
		var errs []float64
		for seed := uint64(1); seed <= 9; seed++ {
			res, err := MonteCarlo(p, Seeded(samples, seed))
			if err != nil {
				t.Fatal(err)
			}
			errs = append(errs, math.Abs(res.Area-exact))
		}
		slices.Sort(errs)
		return errs[len(errs)/2]
	}
	small, large := medianErr(1000), medianErr(100000)
	if large > small {
		t.Errorf("median error with 100000 samples (%v) exceeds 1000 samples (%v)", large, small)
	}
}

func TestDartsMatchMonteCarlo(t *testing.T) {
	p := mustPolygon(t, star())
	cfg := Seeded(3000, 11)
	darts, err := Darts(p, cfg)
	if err != nil {
		t.Fatal(err)
	}
	res, err := MonteCarlo(p, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(darts) != 3000 {
		t.Fatalf("got %d darts, want 3000", len(darts))
	}
	inside := 0
	bb := p.BBox()
	for _, d := range darts {
		if d.Inside {
			inside++
		}
		if d.Inside != p.Contains(d.X, d.Y) {
			t.Errorf("dart (%v, %v) misclassified", d.X, d.Y)
		}
		if !bb.Contains(d.X, d.Y) {
			t.Errorf("dart (%v, %v) outside the bounding box", d.X, d.Y)
		}
	}
	if inside != res.Inside {
		t.Errorf("darts have %d inside, MonteCarlo counted %d", inside, res.Inside)
	}
}
