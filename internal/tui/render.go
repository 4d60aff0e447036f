package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellToXY converts a map cell coordinate back to plane coordinates using bbox, zoom, and pan.
func (m Model) cellToXY(cx, cy, w, h int) (float64, float64, bool) {
	return m.microToXY(cx*2+1, cy*4+2, w, h)
}

// microToXY converts a micro-pixel (2x4 per cell) back to plane coordinates.
func (m Model) microToXY(mx, my, w, h int) (float64, float64, bool) {
	if !m.bbox.Valid() || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	wMic, hMic := w*2, h*4
	zx := float64(mx-m.offsetX*2) / float64(wMic-1)
	zy := 1.0 - float64(my-m.offsetY*4)/float64(hMic-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	return m.bbox.MinX + nx*m.bbox.Width(), m.bbox.MinY + ny*m.bbox.Height(), true
}

// screenXYMicro maps plane coordinates into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	nx := (x - m.bbox.MinX) / m.bbox.Width()
	ny := (y - m.bbox.MinY) / m.bbox.Height()
	// Apply zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// canvas is a grid of pre-styled single-cell strings.
type canvas [][]string

func newCanvas(w, h int) canvas {
	c := make(canvas, h)
	for y := range c {
		c[y] = make([]string, w)
		for x := range c[y] {
			c[y][x] = " "
		}
	}
	return c
}

// overlay paints every non-empty braille cell of b onto c with style.
func (c canvas) overlay(b *brailleBuf, style lipgloss.Style) {
	for y := 0; y < b.h && y < len(c); y++ {
		for x := 0; x < b.w && x < len(c[y]); x++ {
			if r := b.glyph(x, y); r != 0 {
				c[y][x] = style.Render(string(r))
			}
		}
	}
}

func (c canvas) String() string {
	lines := make([]string, len(c))
	for y, row := range c {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderMap(w, h int) string {
	if m.poly == nil {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			dimStyle.Render("Tab to pick a curve, p to paste WKT"))
	}
	c := newCanvas(w, h)
	edgeStyle := outlineStyle
	switch m.mode {
	case modeOutline:
		c.overlay(m.fillBuf(w, h), fillStyle)
	case modeGrid:
		m.paintCoverage(c, w, h)
		edgeStyle = boundaryStyle
	case modeDarts:
		in, out := m.dartBufs(w, h)
		c.overlay(out, outsideStyle)
		c.overlay(in, insideStyle)
	}
	c.overlay(m.edgeBuf(w, h), edgeStyle)

	// Hover highlight: draw an orange circle at the hovered vertex cell
	if m.hovering {
		cx, cy := m.hoverMicX/2, m.hoverMicY/4
		if cy >= 0 && cy < h && cx >= 0 && cx < w {
			c[cy][cx] = hoverStyle.Render("◯")
		}
	}
	return c.String()
}

// edgeBuf draws the closed ring at micro resolution.
func (m Model) edgeBuf(w, h int) *brailleBuf {
	br := newBrailleBuf(w, h)
	n := m.poly.Len()
	for i := 0; i < n; i++ {
		a, b := m.poly.Vertex(i), m.poly.Vertex((i+1)%n)
		ax, ay, ok1 := m.screenXYMicro(a[0], a[1], w, h)
		bx, by, ok2 := m.screenXYMicro(b[0], b[1], w, h)
		if ok1 && ok2 {
			br.drawLineMicro(ax, ay, bx, by)
		}
	}
	return br
}

// fillBuf classifies every micro-pixel centre with the polygon's own
// point-in-polygon test, so the fill shows exactly what the estimators see.
func (m Model) fillBuf(w, h int) *brailleBuf {
	br := newBrailleBuf(w, h)
	for my := 0; my < h*4; my++ {
		for mx := 0; mx < w*2; mx++ {
			x, y, ok := m.microToXY(mx, my, w, h)
			if ok && m.poly.Contains(x, y) {
				br.setPixel(mx, my)
			}
		}
	}
	return br
}

// paintCoverage shades each screen cell by the coverage of the grid cell
// under its centre.
func (m Model) paintCoverage(c canvas, w, h int) {
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			x, y, ok := m.cellToXY(cx, cy, w, h)
			if !ok {
				continue
			}
			row, col, ok := m.coverage.CellAt(x, y)
			if !ok {
				continue
			}
			if f := m.coverage.At(row, col); f > 0 {
				c[cy][cx] = lipgloss.NewStyle().Foreground(coverageColor(f)).Render("█")
			}
		}
	}
}

// dartBufs splits the darts into inside and outside dot layers.
func (m Model) dartBufs(w, h int) (in, out *brailleBuf) {
	in, out = newBrailleBuf(w, h), newBrailleBuf(w, h)
	for _, d := range m.darts {
		mx, my, ok := m.screenXYMicro(d.X, d.Y, w, h)
		if !ok {
			continue
		}
		if d.Inside {
			in.setPixel(mx, my)
		} else {
			out.setPixel(mx, my)
		}
	}
	return in, out
}

// inspectNearest finds the vertex closest to the viewport center.
func (m Model) inspectNearest() (idx int, ok bool) {
	if m.poly == nil {
		return 0, false
	}
	_, _, w, h := m.mapLayout()
	return m.nearestVertexMicro(w, h*2, w, h)
}

// nearestVertexMicro returns the vertex whose micro position is closest to (mx, my).
func (m Model) nearestVertexMicro(mx, my, w, h int) (int, bool) {
	best, bestD := -1, 1<<62
	for i := 0; i < m.poly.Len(); i++ {
		v := m.poly.Vertex(i)
		vx, vy, ok := m.screenXYMicro(v[0], v[1], w, h)
		if !ok {
			continue
		}
		dx, dy := vx-mx, vy-my
		if d := dx*dx + dy*dy; d < bestD {
			best, bestD = i, d
		}
	}
	return best, best >= 0
}
