package tui

import (
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"curvearea/internal/estimate"
	"curvearea/internal/geom"
	"curvearea/internal/report"
)

// reportMsg carries a finished comparison back to Update. poly identifies
// the curve it was computed for so late results for a replaced curve are
// dropped.
type reportMsg struct {
	poly   *geom.Polygon
	report estimate.Report
	err    error
}

func compareCmd(poly *geom.Polygon, grid estimate.GridConfig, mc estimate.MonteCarloConfig) tea.Cmd {
	return func() tea.Msg {
		r, err := estimate.Compare(poly, grid, mc)
		return reportMsg{poly: poly, report: r, err: err}
	}
}

var reportColumns = []table.Column{
	{Title: "", Width: 8},
	{Title: "analytical", Width: 14},
	{Title: "grid", Width: 14},
	{Title: "monte carlo", Width: 14},
}

func newReportTable() table.Model {
	t := table.New(table.WithColumns(reportColumns), table.WithFocused(true))
	t.SetHeight(6)
	return t
}

// applyReport stores a finished comparison and refreshes the table.
func (m *Model) applyReport(msg reportMsg) {
	if msg.poly != m.poly {
		return
	}
	m.computing = false
	if msg.err != nil {
		log.WithError(msg.err).Error("comparison failed")
		m.status = "compare error: " + msg.err.Error()
		return
	}
	r := msg.report
	m.report = &r
	rows := lo.Map(report.Rows(r), func(cells []string, _ int) table.Row { return table.Row(cells) })
	// Avoid transient mismatch: clear rows, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetRows(rows)
	m.status = "grid " + r.GridError.Percent() + "  monte carlo " + r.MonteCarloError.Percent()
}
