package logrow

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHandBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		entry      string
		wantKind   ActionKind
		wantNumber int
	}{
		{"hand start", `-- starting hand #12 (No Limit Texas Hold'em) --`, KindHandStart, 12},
		{"hand end", `-- ending hand #12 --`, KindHandEnd, 12},
		{"quoted hand start", `"-- starting hand #3 (No Limit Texas Hold'em) --"`, KindHandStart, 3},
		{"start without number", `-- starting hand --`, KindHandStart, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Normalize(RawRow{Entry: tt.entry})
			assert.Equal(t, tt.wantKind, rec.Kind)
			assert.Equal(t, tt.wantNumber, rec.HandNumber)
			assert.Empty(t, rec.Player)
		})
	}
}

func TestNormalizeShows(t *testing.T) {
	rec := Normalize(RawRow{Entry: `"alice @ abc123" shows a K♠, Q♦.`})
	require.Equal(t, KindShows, rec.Kind)
	assert.Equal(t, "alice @ abc123", rec.Player)
	assert.Equal(t, "shows a K♠, Q♦.", rec.Details)
}

func TestNormalizeCollected(t *testing.T) {
	rec := Normalize(RawRow{Entry: `"bob @ def456" collected 12.50 from pot`})
	require.Equal(t, KindCollected, rec.Kind)
	assert.Equal(t, "bob @ def456", rec.Player)
	assert.True(t, rec.Amount.Equal(decimal.RequireFromString("12.50")), "amount %s", rec.Amount)
	assert.Equal(t, "collected 12.50 from pot", rec.Details)
}

func TestNormalizeKeywordSplit(t *testing.T) {
	tests := []struct {
		name        string
		entry       string
		wantKind    ActionKind
		wantPlayer  string
		wantDetails string
	}{
		{"folds", `"alice @ abc" folds`, KindFolds, "alice @ abc", "folds"},
		{"calls", `"alice @ abc" calls 10`, KindCalls, "alice @ abc", "calls 10"},
		{"bets", `"alice @ abc" bets 25`, KindBets, "alice @ abc", "bets 25"},
		{"checks", `"alice @ abc" checks`, KindChecks, "alice @ abc", "checks"},
		{"stand up", `"alice @ abc" stand up with the stack of 80`, KindStandUp, "alice @ abc", "stand up with the stack of 80"},
		{"quits", `"alice @ abc" quits the game with a stack of 80`, KindQuits, "alice @ abc", "quits the game with a stack of 80"},
		{"blind post", `"alice @ abc" posts a small blind of 1`, KindOther, "alice @ abc", "posts a small blind of 1"},
		{"street line", `Flop: [2♣, 3♦, 4♠]`, KindOther, "Flop: [2♣, 3♦,", "4♠]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Normalize(RawRow{Entry: tt.entry})
			assert.Equal(t, tt.wantKind, rec.Kind)
			assert.Equal(t, tt.wantPlayer, rec.Player)
			assert.Equal(t, tt.wantDetails, rec.Details)
		})
	}
}

func TestNormalizeUnknown(t *testing.T) {
	rec := Normalize(RawRow{Entry: "singleword"})
	assert.Equal(t, KindUnknown, rec.Kind)
	assert.Equal(t, "singleword", rec.Details)
}

func TestNormalizeCollapsesDoubledQuotes(t *testing.T) {
	rec := Normalize(RawRow{Entry: `"""alice @ abc"" calls 10"`})
	assert.Equal(t, KindCalls, rec.Kind)
	assert.Equal(t, "alice @ abc", rec.Player)
}

func TestNormalizePreservesRowMetadata(t *testing.T) {
	rec := Normalize(RawRow{Entry: `"alice @ abc" folds`, At: "2024-01-01T00:00:00Z", Order: 42})
	assert.Equal(t, "2024-01-01T00:00:00Z", rec.At)
	assert.Equal(t, int64(42), rec.Order)
}

func TestNormalizeAllKeepsOrder(t *testing.T) {
	rows := []RawRow{
		{Entry: "-- starting hand #1 --", Order: 1},
		{Entry: `"alice @ abc" calls 10`, Order: 2},
		{Entry: "-- ending hand #1 --", Order: 3},
	}
	records := NormalizeAll(rows)
	require.Len(t, records, 3)
	assert.Equal(t, KindHandStart, records[0].Kind)
	assert.Equal(t, KindCalls, records[1].Kind)
	assert.Equal(t, KindHandEnd, records[2].Kind)
}

func TestParseAmount(t *testing.T) {
	assert.True(t, ParseAmount("12.50").Equal(decimal.RequireFromString("12.5")))
	assert.True(t, ParseAmount(" 3 ").Equal(decimal.NewFromInt(3)))
	assert.True(t, ParseAmount("not a number").IsZero())
	assert.True(t, ParseAmount("").IsZero())
}
