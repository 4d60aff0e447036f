package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"curvearea/internal/geom"
)

const sidebarWidth = 28

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; will be refined in View
		}
	case reportMsg:
		m.applyReport(msg)
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "m":
			m.setMode((m.mode + 1) % 3)
		case "o":
			m.setMode(modeOutline)
		case "g":
			m.setMode(modeGrid)
		case "d":
			if m.mode == modeDarts && m.poly != nil {
				m.rollDarts(true)
				m.status = fmt.Sprintf("darts: %d rethrown (seed %d)", len(m.darts), m.dartSeed)
			} else {
				m.setMode(modeDarts)
			}
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshItems()
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "r":
			m.showReport = !m.showReport
			if m.showReport && m.report == nil {
				m.status = "no report yet"
				if m.computing {
					m.status = "comparing..."
				}
			}
		case "i":
			m.inspect()
		case "esc":
			m.inspectPopup = ""
			m.showReport = false
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(curveItem); ok {
					return m, m.loadItem(it)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.trackHover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setMode(v viewMode) {
	m.mode = v
	switch v {
	case modeGrid:
		m.status = fmt.Sprintf("grid: %d×%d cells, %d samples each, area≈%.6f",
			m.coverage.Resolution, m.coverage.Resolution, m.grid.SamplesPerCell, m.coverage.Area())
	case modeDarts:
		inside := 0
		for _, d := range m.darts {
			if d.Inside {
				inside++
			}
		}
		m.status = fmt.Sprintf("darts: %d thrown, %d inside", len(m.darts), inside)
	default:
		m.status = "outline"
	}
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := geom.ParseWKTData(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		poly, err := d.Polygon()
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.pasteMode = false
		m.ta.Blur()
		return m, m.setCurve("<pasted>", poly, m.cfg.Grid, m.cfg.MonteCarlo)
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m *Model) inspect() {
	idx, ok := m.inspectNearest()
	if !ok {
		m.inspectPopup = "no curve loaded"
		m.status = m.inspectPopup
		return
	}
	bb := m.poly.BBox()
	v := m.poly.Vertex(idx)
	winding := "counter-clockwise"
	if m.poly.SignedArea() < 0 {
		winding = "clockwise"
	}
	meta := []string{
		fmt.Sprintf("name: %s", m.name),
		fmt.Sprintf("vertices: %d (%s)", m.poly.Len(), winding),
		fmt.Sprintf("bbox: [%.4f, %.4f] × [%.4f, %.4f]", bb.MinX, bb.MaxX, bb.MinY, bb.MaxY),
		fmt.Sprintf("bbox area: %.6f", bb.Area()),
		fmt.Sprintf("area: %.6f", m.poly.Area()),
		fmt.Sprintf("nearest vertex #%d: (%.6f, %.6f)", idx, v[0], v[1]),
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

// mapLayout returns the map origin and size; it must match View.
func (m Model) mapLayout() (x, y, w, h int) {
	sw, ox := 0, 0
	if m.showSidebar {
		sw, ox = sidebarWidth, sidebarWidth+1
	}
	headerHeight, footerHeight := 1, 2
	h = max(4, m.height-headerHeight-footerHeight)
	w = max(10, max(10, m.width)-sw-1)
	return ox, headerHeight, w, h
}

// trackHover records the hovered plane coordinate, its classification and
// the nearest vertex.
func (m *Model) trackHover(cx, cy int) {
	ox, oy, w, h := m.mapLayout()
	if m.poly == nil || cx < ox || cx >= ox+w || cy < oy || cy >= oy+h {
		m.hovering = false
		m.hoverHasGeo = false
		return
	}
	mx, my := (cx-ox)*2+1, (cy-oy)*4+2
	x, y, ok := m.microToXY(mx, my, w, h)
	m.hoverHasGeo = ok
	if ok {
		m.hoverX, m.hoverY = x, y
		m.hoverInside = m.poly.Contains(x, y)
	}
	idx, ok := m.nearestVertexMicro(mx, my, w, h)
	m.hovering = ok
	if ok {
		v := m.poly.Vertex(idx)
		m.hoverMicX, m.hoverMicY, _ = m.screenXYMicro(v[0], v[1], w, h)
	}
}
