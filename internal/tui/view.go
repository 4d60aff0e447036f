package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	ox, _, mapWidth, mapHeight := m.mapLayout()
	contentWidth := max(10, m.width)
	contentHeight := mapHeight

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
	}

	// Header
	title := " curvearea ─ polygon area estimation "
	if m.poly != nil {
		title += "─ " + m.name + " [" + m.mode.String() + "] "
	}
	header := lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(titleStyle.Render(title))

	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.pasteMode:
		// size textarea to map area
		m.ta.SetWidth(mapWidth)
		m.ta.SetHeight(min(mapHeight, 12))
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.ta.View())
	case m.showReport:
		body := m.reportView()
		box := boxStyle.Render(body)
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, box)
	default:
		// plain map canvas: no border, no background highlight
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderMap(mapWidth, mapHeight))
	}

	// Build inspect popup box (center-left overlay, not in map column)
	popup := ""
	if m.inspectPopup != "" && !m.showReport {
		maxPopupW := max(20, min(52, contentWidth/2))
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(contentWidth, lipgloss.Height(box), lipgloss.Left, lipgloss.Center, box)
	}

	body := mapView
	if m.showSidebar && ox > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	// hovered coordinate and its classification at bottom-right
	coords := ""
	if m.hoverHasGeo {
		where := outsideStyle.Render("outside")
		if m.hoverInside {
			where = insideStyle.Render("inside")
		}
		coords = dimStyle.Render(fmt.Sprintf("  x=%.4f y=%.4f ", m.hoverX, m.hoverY)) + where + "  "
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// reportView renders the comparison table with a short caption.
func (m Model) reportView() string {
	if m.report == nil {
		if m.computing {
			return dimStyle.Render("comparing...")
		}
		return dimStyle.Render("no report")
	}
	r := m.report
	caption := fmt.Sprintf("%s  grid %d×%d/%d  mc %d (seed %d)",
		m.name, r.Grid.Resolution, r.Grid.Resolution, r.Grid.SamplesPerCell, r.MonteCarlo.Samples, r.MonteCarlo.Seed)
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(caption), m.tbl.View())
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"Tab curves",
		"Enter open",
		"m mode",
		"d darts",
		"r report",
		"p paste",
		"i inspect",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
