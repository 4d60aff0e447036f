// Package report renders comparison reports as plain text blocks.
package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"curvearea/internal/estimate"
	"curvearea/internal/shapes"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true)
	rule         = strings.Repeat("-", 60)
	banner       = strings.Repeat("=", 80)
)

// Printer writes reports with English digit grouping.
type Printer struct {
	w io.Writer
	p *message.Printer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w, p: message.NewPrinter(language.English)}
}

// Title writes a banner heading.
func (pr *Printer) Title(s string) {
	pr.p.Fprintf(pr.w, "%s\n%s\n%s\n", banner, titleStyle.Render(s), banner)
}

// Report writes every section of r.
func (pr *Printer) Report(r estimate.Report) {
	p, w := pr.p, pr.w
	p.Fprintf(w, "Curve with %d vertices\n", r.Vertices)
	p.Fprintf(w, "Bounding box: [%.2f, %.2f] × [%.2f, %.2f]\n", r.BBox.MinX, r.BBox.MaxX, r.BBox.MinY, r.BBox.MaxY)
	p.Fprintf(w, "Bounding box area: %.4f\n", r.BBox.Area())
	p.Fprintf(w, "%s\n", rule)

	p.Fprintf(w, "Analytical area (Shoelace formula): %.6f\n", r.Analytical)
	p.Fprintf(w, "%s\n", rule)

	g := r.Grid
	p.Fprintf(w, "%s\n", sectionStyle.Render("Grid Method Results:"))
	p.Fprintf(w, "  Estimated area: %.6f\n", g.Area)
	p.Fprintf(w, "  Error: %s\n", r.GridError.Percent())
	p.Fprintf(w, "  Grid resolution: %d×%d\n", g.Resolution, g.Resolution)
	p.Fprintf(w, "  Samples per cell: %d\n", g.SamplesPerCell)
	p.Fprintf(w, "  Total cells: %d\n", g.Cells)
	p.Fprintf(w, "  Computation time: %.4f seconds\n", g.Elapsed.Seconds())
	p.Fprintf(w, "%s\n", rule)

	mc := r.MonteCarlo
	p.Fprintf(w, "%s\n", sectionStyle.Render("Monte Carlo Method Results:"))
	p.Fprintf(w, "  Estimated area: %.6f\n", mc.Area)
	p.Fprintf(w, "  Error: %s\n", r.MonteCarloError.Percent())
	p.Fprintf(w, "  Sample points: %d\n", mc.Samples)
	p.Fprintf(w, "  Points inside: %d\n", mc.Inside)
	p.Fprintf(w, "  Fraction inside: %.6f\n", mc.FractionInside)
	p.Fprintf(w, "  Seed: %d\n", mc.Seed)
	p.Fprintf(w, "  Computation time: %.4f seconds\n", mc.Elapsed.Seconds())
	p.Fprintf(w, "%s\n", rule)
}

// Sweep writes one line per resolution of a grid sweep.
func (pr *Printer) Sweep(points []shapes.SweepPoint) {
	for _, sp := range points {
		pr.p.Fprintf(pr.w, "  %4d×%-4d  area %.6f  error %s  (%.4fs)\n",
			sp.Resolution, sp.Resolution, sp.Result.Area, sp.Error.Percent(), sp.Result.Elapsed.Seconds())
	}
}

// Rows flattens r into (metric, analytical, grid, monte carlo) rows for tabular views.
func Rows(r estimate.Report) [][]string {
	p := message.NewPrinter(language.English)
	return [][]string{
		{"area", p.Sprintf("%.6f", r.Analytical), p.Sprintf("%.6f", r.Grid.Area), p.Sprintf("%.6f", r.MonteCarlo.Area)},
		{"error", "0", r.GridError.Percent(), r.MonteCarloError.Percent()},
		{"samples", "-", p.Sprintf("%d", r.Grid.Cells*r.Grid.SamplesPerCell), p.Sprintf("%d", r.MonteCarlo.Samples)},
		{"time", r.AnalyticalElapsed.String(), r.Grid.Elapsed.String(), r.MonteCarlo.Elapsed.String()},
	}
}
