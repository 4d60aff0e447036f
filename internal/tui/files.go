package tui

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"curvearea/internal/estimate"
	"curvearea/internal/geom"
	"curvearea/internal/shapes"
)

type curveItem struct {
	title, desc string
	path        string // empty for built-in shapes
}

func (c curveItem) Title() string       { return c.title }
func (c curveItem) Description() string { return c.desc }
func (c curveItem) FilterValue() string { return c.title }

// refreshItems lists the built-in shapes followed by supported files in cwd.
func (m *Model) refreshItems() {
	var items []list.Item
	for _, ex := range shapes.Examples() {
		items = append(items, curveItem{title: ex.Name, desc: fmt.Sprintf("%d vertices", len(ex.Vertices))})
	}
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
	}
	var files []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !geom.Supported(name) {
			continue
		}
		files = append(files, curveItem{title: name, desc: strings.ToLower(filepath.Ext(name)), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].(curveItem).Title() < files[j].(curveItem).Title() })
	m.items = append(items, files...)
	m.l.SetItems(m.items)
}

// loadItem loads a sidebar entry.
func (m *Model) loadItem(it curveItem) tea.Cmd {
	if it.path != "" {
		return m.loadPath(it.path)
	}
	ex, ok := shapes.Find(it.title)
	if !ok {
		m.status = "unknown shape: " + it.title
		return nil
	}
	grid, mc := ex.Configs(m.cfg.MonteCarlo)
	return m.setCurve(ex.Name, ex.Polygon(), grid, mc)
}

// loadPath loads a supported file into the model.
func (m *Model) loadPath(p string) tea.Cmd {
	poly, err := geom.LoadPolygon(p)
	if err != nil {
		log.WithError(err).WithField("path", p).Warn("load failed")
		m.status = "load error: " + err.Error()
		return nil
	}
	return m.setCurve(filepath.Base(p), poly, m.cfg.Grid, m.cfg.MonteCarlo)
}

// setCurve makes poly current, rebuilds the visual layers and starts the
// comparison with grid and mc in the background.
func (m *Model) setCurve(name string, poly *geom.Polygon, grid estimate.GridConfig, mc estimate.MonteCarloConfig) tea.Cmd {
	m.name = name
	m.poly = poly
	m.grid, m.mc = grid, mc
	m.bbox = padBBox(poly.BBox(), 0.05)
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.inspectPopup = ""
	m.report = nil
	m.computing = true
	m.rebuildCoverage()
	m.rollDarts(false)
	m.status = fmt.Sprintf("loaded: %s  vertices=%d  area=%.6f", name, poly.Len(), poly.Area())
	log.WithFields(log.Fields{"curve": name, "vertices": poly.Len()}).Info("curve loaded")
	return compareCmd(poly, grid, mc)
}

func (m *Model) rebuildCoverage() {
	cfg := m.grid
	cfg.Resolution = min(cfg.Resolution, maxVizResolution)
	cov, err := estimate.Coverage(m.poly, cfg)
	if err != nil {
		m.status = "coverage error: " + err.Error()
		return
	}
	m.coverage = cov
}

// rollDarts throws a new set of darts. A configured seed is used for the
// first throw and stepped on each reroll; otherwise every throw is random.
func (m *Model) rollDarts(reroll bool) {
	mc := m.mc
	var seed uint64
	switch {
	case mc.Seeded && !reroll:
		seed = mc.Seed
	case mc.Seeded:
		seed = m.dartSeed + 1
	default:
		seed = rand.Uint64()
	}
	darts, err := estimate.Darts(m.poly, estimate.Seeded(m.cfg.DartSamples, seed))
	if err != nil {
		m.status = "darts error: " + err.Error()
		return
	}
	m.darts = darts
	m.dartSeed = seed
}

// padBBox grows b by frac of its size on every side so edges stay visible.
// Degenerate boxes get a unit extent.
func padBBox(b geom.BBox, frac float64) geom.BBox {
	dx, dy := b.Width()*frac, b.Height()*frac
	if dx == 0 {
		dx = 0.5
	}
	if dy == 0 {
		dy = 0.5
	}
	return geom.BBox{MinX: b.MinX - dx, MinY: b.MinY - dy, MaxX: b.MaxX + dx, MaxY: b.MaxY + dy}
}
