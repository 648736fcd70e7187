// Package report serializes analysis output to flat report files.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokernow-stats/internal/analysis"
	"github.com/lox/pokernow-stats/internal/fileutil"
)

var (
	showsHeader   = []string{"Hand Number", "Player", "Show Details", "Preflop Amount", "Bet Level"}
	playerHeader  = []string{"Hand Number", "Show Details", "Preflop Amount", "Bet Level"}
	metricsHeader = []string{"Player", "Hands Played", "VPIP", "Preflop Raise", "Threebet", "VPIP %", "Preflop Raise %", "Threebet %"}
	netHeader     = []string{"Hand Number", "My Cards", "Flop", "Turn", "River", "Invested", "Collected", "Net", "Pot Size", "Opponent"}
)

// Emitter writes the report files for one analyzed session under a base
// output directory: charts/ for the session-wide charts, players/ for
// per-player aggression histories and hands/ for the target player's
// win/loss files.
type Emitter struct {
	baseDir string
	logger  zerolog.Logger
}

// NewEmitter creates an emitter rooted at baseDir, creating the directory
// tree as needed.
func NewEmitter(baseDir string, logger zerolog.Logger) (*Emitter, error) {
	for _, dir := range []string{baseDir, filepath.Join(baseDir, "charts"), filepath.Join(baseDir, "players"), filepath.Join(baseDir, "hands")} {
		if err := fileutil.EnsureDir(dir); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return &Emitter{baseDir: baseDir, logger: logger}, nil
}

// BaseDir returns the emitter's output root.
func (e *Emitter) BaseDir() string { return e.baseDir }

// WriteShowdownCharts writes the full showdown/aggression chart plus one
// filtered chart per bet level. The full chart gets a blank separator row
// between groups of differing hand numbers.
func (e *Emitter) WriteShowdownCharts(rows []analysis.ShowdownRow) error {
	g := new(errgroup.Group)

	g.Go(func() error {
		return e.writeCSV(filepath.Join(e.baseDir, "charts", "full_shows_chart.csv"), showsHeader, showdownRowsWithSeparators(rows))
	})

	for _, level := range analysis.BetLevels(rows) {
		level := level
		g.Go(func() error {
			var filtered [][]string
			for _, row := range rows {
				if row.BetLevel == level {
					filtered = append(filtered, showdownRow(row))
				}
			}
			name := fmt.Sprintf("chart_%s.csv", strings.ReplaceAll(level, " ", "_"))
			return e.writeCSV(filepath.Join(e.baseDir, "charts", name), showsHeader, filtered)
		})
	}

	return g.Wait()
}

// WritePlayerHistories writes one aggression-history file per player with
// qualifying showdown data.
func (e *Emitter) WritePlayerHistories(history map[string][]analysis.ShowdownRow) error {
	g := new(errgroup.Group)
	for player, rows := range history {
		player, rows := player, rows
		g.Go(func() error {
			var out [][]string
			for _, row := range rows {
				out = append(out, []string{
					strconv.Itoa(row.HandNumber),
					row.ShowDetails,
					row.Amount.String(),
					row.BetLevel,
				})
			}
			path := filepath.Join(e.baseDir, "players", safeFilename(player)+".csv")
			return e.writeCSV(path, playerHeader, out)
		})
	}
	return g.Wait()
}

// WriteMetricsChart writes the per-player metrics chart ordered by VPIP
// percentage descending.
func (e *Emitter) WriteMetricsChart(metrics map[string]*analysis.PlayerMetrics) error {
	var out [][]string
	for _, m := range analysis.SortedMetrics(metrics) {
		out = append(out, []string{
			m.Player,
			strconv.Itoa(m.HandsPlayed),
			strconv.Itoa(m.VPIP),
			strconv.Itoa(m.PFR),
			strconv.Itoa(m.ThreeBet),
			formatPct(m.VPIPPct),
			formatPct(m.PFRPct),
			formatPct(m.ThreeBetPct),
		})
	}
	return e.writeCSV(filepath.Join(e.baseDir, "charts", "player_metrics_chart.csv"), metricsHeader, out)
}

// WriteNetReports writes the target player's top winning and losing hands.
func (e *Emitter) WriteNetReports(player string, wins, losses []analysis.HandNet) error {
	g := new(errgroup.Group)
	g.Go(func() error {
		path := filepath.Join(e.baseDir, "hands", safeFilename(player)+"_top10_wins.csv")
		return e.writeCSV(path, netHeader, netRows(wins))
	})
	g.Go(func() error {
		path := filepath.Join(e.baseDir, "hands", safeFilename(player)+"_top10_losses.csv")
		return e.writeCSV(path, netHeader, netRows(losses))
	})
	return g.Wait()
}

func (e *Emitter) writeCSV(path string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	e.logger.Debug().Str("path", path).Int("rows", len(rows)).Msg("report written")
	return nil
}

func showdownRow(row analysis.ShowdownRow) []string {
	return []string{
		strconv.Itoa(row.HandNumber),
		row.Player,
		row.ShowDetails,
		row.Amount.String(),
		row.BetLevel,
	}
}

// showdownRowsWithSeparators inserts a blank row whenever the hand number
// changes between consecutive rows.
func showdownRowsWithSeparators(rows []analysis.ShowdownRow) [][]string {
	out := make([][]string, 0, len(rows))
	currentHand := -1
	for i, row := range rows {
		if i > 0 && row.HandNumber != currentHand {
			out = append(out, make([]string, len(showsHeader)))
		}
		currentHand = row.HandNumber
		out = append(out, showdownRow(row))
	}
	return out
}

func netRows(results []analysis.HandNet) [][]string {
	out := make([][]string, 0, len(results))
	for _, r := range results {
		out = append(out, []string{
			strconv.Itoa(r.HandNumber),
			r.MyCards,
			strings.Join(r.Flop, ", "),
			strings.Join(r.Turn, ", "),
			strings.Join(r.River, ", "),
			r.Invested.String(),
			r.Collected.String(),
			r.Net.String(),
			r.PotSize.String(),
			r.Opponent,
		})
	}
	return out
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// safeFilename makes a player identity usable as a file name.
func safeFilename(player string) string {
	name := strings.ReplaceAll(strings.TrimSpace(player), " ", "_")
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, name)
	if name == "" {
		name = "unknown"
	}
	return name
}
