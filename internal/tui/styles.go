package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)

	fillStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4C3A8A"))
	outlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA"))
	boundaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	insideStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	outsideStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	hoverStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
)

// coverageColor ramps from light to dark green as coverage goes 0 → 1,
// starting a third of the way in so partial cells stay visible.
func coverageColor(frac float64) lipgloss.Color {
	light := [3]float64{0xC7, 0xE9, 0xC0}
	dark := [3]float64{0x00, 0x44, 0x1B}
	t := 0.3 + 0.7*frac
	var c [3]int
	for i := range c {
		c[i] = int(light[i] + (dark[i]-light[i])*t)
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c[0], c[1], c[2]))
}
