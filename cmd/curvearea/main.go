package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"curvearea/internal/config"
	"curvearea/internal/estimate"
	"curvearea/internal/geom"
	"curvearea/internal/logger"
	"curvearea/internal/report"
	"curvearea/internal/shapes"
	"curvearea/internal/tui"
)

const usage = `usage:
  curvearea              interactive viewer
  curvearea FILE         viewer with FILE loaded (.wkt .geojson .json .kml .csv)
  curvearea report       print comparison reports for the built-in examples
  curvearea report FILE  print the comparison report for FILE`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	args := os.Args[1:]
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help" || args[0] == "help") {
		fmt.Println(usage)
		return
	}
	if len(args) > 0 && args[0] == "report" {
		closer, err := logger.Setup(cfg, os.Stderr)
		if err != nil {
			log.Fatal(err)
		}
		defer closer.Close()
		if err := runReport(os.Stdout, cfg, args[1:]); err != nil {
			log.Fatal(err)
		}
		return
	}

	closer, err := logger.Setup(cfg, io.Discard)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()
	var m tea.Model
	if len(args) > 0 {
		m = tui.NewWithPath(cfg, args[0])
	} else {
		m = tui.New(cfg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}

// runReport prints the comparison for a file, or for every built-in
// example followed by a grid resolution sweep over the star.
func runReport(w io.Writer, cfg config.Config, args []string) error {
	pr := report.New(w)
	if len(args) > 0 {
		p, err := geom.LoadPolygon(args[0])
		if err != nil {
			return err
		}
		r, err := estimate.Compare(p, cfg.Grid, cfg.MonteCarlo)
		if err != nil {
			return err
		}
		pr.Title(args[0])
		pr.Report(r)
		return nil
	}
	for i, ex := range shapes.Examples() {
		grid, mc := ex.Configs(cfg.MonteCarlo)
		r, err := estimate.Compare(ex.Polygon(), grid, mc)
		if err != nil {
			return fmt.Errorf("%s: %w", ex.Name, err)
		}
		pr.Title(fmt.Sprintf("EXAMPLE %d: %s", i+1, ex.Name))
		pr.Report(r)
		fmt.Fprintln(w)
	}
	star, _ := shapes.Find("Star Shape")
	sweep, err := shapes.ResolutionSweep(star.Polygon(), cfg.Grid.SamplesPerCell, 10, 25, 50, 100, 200)
	if err != nil {
		return err
	}
	pr.Title("RESOLUTION ANALYSIS: Star Shape")
	pr.Sweep(sweep)
	return nil
}
