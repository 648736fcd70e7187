package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lox/pokernow-stats/cmd/pokernow-stats/shared"
	"github.com/lox/pokernow-stats/internal/analysis"
	"github.com/lox/pokernow-stats/internal/config"
	"github.com/lox/pokernow-stats/internal/hands"
	"github.com/lox/pokernow-stats/internal/logrow"
	"github.com/lox/pokernow-stats/internal/report"
)

// AnalyzeCmd runs the full pipeline: normalize, reconstruct, link showdowns,
// compute metrics and the per-player ledger, then write every report.
type AnalyzeCmd struct {
	Input   string `arg:"" name:"input" help:"Raw PokerNow CSV export (or cleaned file with --cleaned)"`
	Player  string `short:"p" required:"" help:"Player name to build the net ledger for"`
	Cleaned bool   `help:"Treat the input as an already-cleaned CSV"`
	Config  string `short:"c" help:"HCL config file"`
	Output  string `short:"o" help:"Report directory (default: derived from the input name)"`
	Debug   bool   `help:"Enable debug logging"`
}

func (c *AnalyzeCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	outputDir := c.Output
	if outputDir == "" {
		outputDir = reportDir(c.Input)
	}

	emitter, err := report.NewEmitter(outputDir, logger)
	if err != nil {
		return err
	}

	var records []logrow.ActionRecord
	if c.Cleaned {
		records, err = logrow.ReadCleanedCSV(c.Input)
		if err != nil {
			return err
		}
	} else {
		rows, err := logrow.ReadRawCSV(c.Input)
		if err != nil {
			return err
		}
		records = logrow.NormalizeAll(rows)
		if err := logrow.WriteCleanedCSV(filepath.Join(outputDir, "cleaned_data.csv"), records); err != nil {
			return err
		}
	}

	session := hands.NewReconstructor(logger).Reconstruct(records)
	logger.Info().Int("hands", len(session)).Msg("Reconstructed session")

	threshold := cfg.NoiseThreshold()
	showdowns := analysis.LinkShowdowns(session, threshold)
	history := analysis.PlayerShowdownHistory(session, threshold)

	metrics := analysis.ComputePlayerMetrics(session)
	analysis.ApplyLabelThreeBets(metrics, showdowns)

	ledger := analysis.ComputeNet(session, c.Player, analysis.NetOptions{
		ReconcileUncalled: cfg.Analysis.ReconcileUncalled,
	})
	wins := analysis.TopWins(ledger, cfg.Analysis.TopHands)
	losses := analysis.TopLosses(ledger, cfg.Analysis.TopHands)

	if err := emitter.WriteShowdownCharts(showdowns); err != nil {
		return err
	}
	if err := emitter.WritePlayerHistories(history); err != nil {
		return err
	}
	if err := emitter.WriteMetricsChart(metrics); err != nil {
		return err
	}
	if err := emitter.WriteNetReports(c.Player, wins, losses); err != nil {
		return err
	}

	averages := analysis.AveragePotByStreet(session)
	if cfg.Report.Chart {
		if err := emitter.WritePotChart(averages, cfg.Report.ChartWidth); err != nil {
			return err
		}
	}
	if cfg.Report.XLSX {
		if err := emitter.WriteWorkbook(showdowns, metrics); err != nil {
			return err
		}
	}

	logger.Info().
		Str("output", emitter.BaseDir()).
		Int("showdowns", len(showdowns)).
		Int("players", len(metrics)).
		Msg("Reports written")

	fmt.Println(report.Render(report.Summary{
		Hands:       len(session),
		Players:     len(metrics),
		TargetName:  c.Player,
		AveragePots: averages,
		Wins:        wins,
		Losses:      losses,
	}))
	return nil
}

// reportDir derives the default report directory from the input name.
func reportDir(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_reports"
}
