package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"curvearea/internal/config"
	"curvearea/internal/estimate"
	"curvearea/internal/geom"
)

type viewMode int

const (
	modeOutline viewMode = iota
	modeGrid
	modeDarts
)

func (v viewMode) String() string {
	switch v {
	case modeGrid:
		return "grid"
	case modeDarts:
		return "darts"
	}
	return "outline"
}

// maxVizResolution caps the coverage grid drawn on screen; finer grids
// are not visible at terminal resolution.
const maxVizResolution = 80

type Model struct {
	width  int
	height int

	cfg config.Config

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Sidebar: example shapes and loadable files
	cwd   string
	l     list.Model
	items []list.Item

	// Current curve
	name string
	poly *geom.Polygon
	bbox geom.BBox

	// settings the current curve is compared and drawn with
	grid estimate.GridConfig
	mc   estimate.MonteCarloConfig

	mode     viewMode
	coverage estimate.CoverageMap
	darts    []estimate.Dart
	dartSeed uint64

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverX      float64
	hoverY      float64
	hoverInside bool

	// comparison report
	showReport bool
	computing  bool
	report     *estimate.Report
	tbl        table.Model
}

func New(cfg config.Config) Model {
	m := Model{
		cfg:         cfg,
		showSidebar: true,
		helpVisible: true,
		zoom:        1.0,
		status:      "curvearea ready",
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Curves"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste a WKT POLYGON or LINESTRING. Press Enter to load; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = newReportTable()
	m.refreshItems()
	return m
}

// NewWithPath preloads a file's curve at launch.
func NewWithPath(cfg config.Config, path string) Model {
	m := New(cfg)
	m.showSidebar = false
	m.loadPath(path)
	return m
}

// Init starts the comparison for a curve loaded before the program ran.
func (m Model) Init() tea.Cmd {
	if m.poly == nil {
		return nil
	}
	return compareCmd(m.poly, m.grid, m.mc)
}
