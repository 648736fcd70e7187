package report

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/lox/pokernow-stats/internal/analysis"
)

// WriteWorkbook writes the showdown chart and the player metrics chart into
// a single XLSX workbook, one sheet each.
func (e *Emitter) WriteWorkbook(rows []analysis.ShowdownRow, metrics map[string]*analysis.PlayerMetrics) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, "Showdowns", showsHeader, showdownRowsWithSeparators(rows)); err != nil {
		return err
	}

	var metricRows [][]string
	for _, m := range analysis.SortedMetrics(metrics) {
		metricRows = append(metricRows, []string{
			m.Player,
			fmt.Sprint(m.HandsPlayed),
			fmt.Sprint(m.VPIP),
			fmt.Sprint(m.PFR),
			fmt.Sprint(m.ThreeBet),
			formatPct(m.VPIPPct),
			formatPct(m.PFRPct),
			formatPct(m.ThreeBetPct),
		})
	}
	if err := writeSheet(f, "Player Metrics", metricsHeader, metricRows); err != nil {
		return err
	}

	// excelize creates a default sheet we never use
	f.DeleteSheet("Sheet1")

	path := filepath.Join(e.baseDir, "session.xlsx")
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	e.logger.Debug().Str("path", path).Msg("workbook written")
	return nil
}

func writeSheet(f *excelize.File, name string, header []string, rows [][]string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("creating sheet %q: %w", name, err)
	}
	writeRow := func(rowIdx int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		cells := make([]any, len(values))
		for i, v := range values {
			cells[i] = v
		}
		return f.SetSheetRow(name, cell, &cells)
	}

	if err := writeRow(1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writeRow(i+2, row); err != nil {
			return err
		}
	}
	return nil
}
