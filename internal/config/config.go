// Package config reads settings from .env and CURVEAREA_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"curvearea/internal/estimate"
)

const prefix = "CURVEAREA_"

type Config struct {
	Grid        estimate.GridConfig
	MonteCarlo  estimate.MonteCarloConfig
	DartSamples int

	LogLevel  string
	LogFormat string
	LogFile   string
}

func Default() Config {
	return Config{
		Grid:        estimate.GridConfig{Resolution: 100, SamplesPerCell: 16},
		MonteCarlo:  estimate.MonteCarloConfig{Samples: 100000},
		DartSamples: 3000,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads the given .env files (missing files are ignored) and then the
// environment. Variables already set in the environment win over .env.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an environment lookup function.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	get := func(key string) (string, bool) {
		v, ok := lookup(prefix + key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"GRID_RESOLUTION", &c.Grid.Resolution},
		{"SAMPLES_PER_CELL", &c.Grid.SamplesPerCell},
		{"MC_SAMPLES", &c.MonteCarlo.Samples},
		{"DART_SAMPLES", &c.DartSamples},
	}
	for _, f := range ints {
		v, ok := get(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s%s: %w", prefix, f.key, err)
		}
		*f.dst = n
	}
	if v, ok := get("MC_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: %sMC_SEED: %w", prefix, err)
		}
		c.MonteCarlo.Seed, c.MonteCarlo.Seeded = seed, true
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.LogFormat = strings.ToLower(v)
	}
	if v, ok := get("LOG_FILE"); ok {
		c.LogFile = v
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.MonteCarlo.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.DartSamples <= 0 {
		return fmt.Errorf("config: %w: dart samples must be positive, got %d", estimate.ErrInvalidParameter, c.DartSamples)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	return nil
}
