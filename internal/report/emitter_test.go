package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokernow-stats/internal/analysis"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestEmitter(t *testing.T) *Emitter {
	t.Helper()
	e, err := NewEmitter(filepath.Join(t.TempDir(), "out"), zerolog.Nop())
	require.NoError(t, err)
	return e
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestNewEmitterCreatesTree(t *testing.T) {
	e := newTestEmitter(t)
	for _, sub := range []string{"charts", "players", "hands"} {
		info, err := os.Stat(filepath.Join(e.BaseDir(), sub))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestWriteShowdownCharts(t *testing.T) {
	e := newTestEmitter(t)
	rows := []analysis.ShowdownRow{
		{HandNumber: 2, Player: "alice", ShowDetails: "A♠, A♥", Amount: dec("50"), BetLevel: "raise"},
		{HandNumber: 2, Player: "alice", ShowDetails: "A♠, A♥", Amount: dec("30"), BetLevel: "3bet"},
		{HandNumber: 7, Player: "bob", ShowDetails: "K♦, K♣", Amount: dec("20"), BetLevel: "raise"},
	}

	require.NoError(t, e.WriteShowdownCharts(rows))

	full := readCSV(t, filepath.Join(e.BaseDir(), "charts", "full_shows_chart.csv"))
	// Header, two rows for hand 2, separator, one row for hand 7.
	require.Len(t, full, 5)
	assert.Equal(t, showsHeader, full[0])
	assert.Equal(t, "2", full[1][0])
	assert.Equal(t, []string{"", "", "", "", ""}, full[3], "separator row between hand groups")
	assert.Equal(t, "7", full[4][0])

	raises := readCSV(t, filepath.Join(e.BaseDir(), "charts", "chart_raise.csv"))
	require.Len(t, raises, 3)
	assert.Equal(t, "raise", raises[1][4])
	assert.Equal(t, "raise", raises[2][4])

	threebets := readCSV(t, filepath.Join(e.BaseDir(), "charts", "chart_3bet.csv"))
	require.Len(t, threebets, 2)
	assert.Equal(t, "30", threebets[1][3])
}

func TestWritePlayerHistories(t *testing.T) {
	e := newTestEmitter(t)
	history := map[string][]analysis.ShowdownRow{
		"alice": {
			{HandNumber: 1, Player: "alice", ShowDetails: "A♠, A♥", Amount: dec("25"), BetLevel: "raise"},
		},
	}

	require.NoError(t, e.WritePlayerHistories(history))

	rows := readCSV(t, filepath.Join(e.BaseDir(), "players", "alice.csv"))
	require.Len(t, rows, 2)
	assert.Equal(t, playerHeader, rows[0])
	assert.Equal(t, []string{"1", "A♠, A♥", "25", "raise"}, rows[1])
}

func TestWriteMetricsChartOrdering(t *testing.T) {
	e := newTestEmitter(t)
	metrics := map[string]*analysis.PlayerMetrics{
		"alice": {Player: "alice", HandsPlayed: 10, VPIP: 4, VPIPPct: 40},
		"bob":   {Player: "bob", HandsPlayed: 10, VPIP: 8, VPIPPct: 80},
	}

	require.NoError(t, e.WriteMetricsChart(metrics))

	rows := readCSV(t, filepath.Join(e.BaseDir(), "charts", "player_metrics_chart.csv"))
	require.Len(t, rows, 3)
	assert.Equal(t, "bob", rows[1][0], "highest VPIP first")
	assert.Equal(t, "80.00", rows[1][5])
	assert.Equal(t, "alice", rows[2][0])
}

func TestWriteNetReports(t *testing.T) {
	e := newTestEmitter(t)
	wins := []analysis.HandNet{
		{
			HandNumber: 3,
			MyCards:    "A♠, A♥",
			Flop:       []string{"2♣", "3♦", "4♠"},
			Invested:   dec("20"),
			Collected:  dec("45"),
			Net:        dec("25"),
			PotSize:    dec("45"),
			Opponent:   "bob: K♦, K♣",
		},
	}

	require.NoError(t, e.WriteNetReports("alice @ a1", wins, nil))

	winRows := readCSV(t, filepath.Join(e.BaseDir(), "hands", "alice_@_a1_top10_wins.csv"))
	require.Len(t, winRows, 2)
	assert.Equal(t, netHeader, winRows[0])
	assert.Equal(t, "3", winRows[1][0])
	assert.Equal(t, "2♣, 3♦, 4♠", winRows[1][2])
	assert.Equal(t, "25", winRows[1][7])

	lossRows := readCSV(t, filepath.Join(e.BaseDir(), "hands", "alice_@_a1_top10_losses.csv"))
	require.Len(t, lossRows, 1, "header only when there are no losses")
}
