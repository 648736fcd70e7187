package report

import (
	"bytes"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/lox/pokernow-stats/internal/fileutil"
	"github.com/lox/pokernow-stats/internal/hands"
)

// WritePotChart renders the average pot size by street as a PNG bar chart
// under charts/.
func (e *Emitter) WritePotChart(averages map[hands.Street]decimal.Decimal, width int) error {
	bars := make([]chart.Value, 0, len(hands.Streets))
	for _, street := range hands.Streets {
		avg, _ := averages[street].Float64()
		bars = append(bars, chart.Value{
			Label: string(street),
			Value: avg,
		})
	}

	graph := chart.BarChart{
		Title:    "Average pot by street",
		Width:    width,
		Height:   400,
		BarWidth: 60,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(filepath.Join(e.baseDir, "charts", "avg_pot_by_street.png"), buf.Bytes(), 0o644)
}
