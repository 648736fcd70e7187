// Package analysis derives statistics and reports from reconstructed hands.
// Everything here reads the immutable hand list; nothing mutates it.
package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lox/pokernow-stats/internal/hands"
)

// DefaultNoiseThreshold excludes blind-sized postings from bet-level
// charting.
var DefaultNoiseThreshold = decimal.NewFromFloat(2.0)

// ShowdownRow is one (showdown, aggression) pairing with its bet-level label.
type ShowdownRow struct {
	HandNumber  int
	Player      string
	ShowDetails string
	Amount      decimal.Decimal
	BetLevel    string
}

// LinkShowdowns pairs every showdown reveal with the revealing player's
// preflop aggression above the noise threshold and labels each pairing by
// descending amount: the largest is "raise", the second "3bet", the third
// "4bet" and so on. Shows with no qualifying aggression, or whose reveal
// lists a single card (no comma), produce no rows. The result is globally
// ranked by amount descending, hand number ascending.
func LinkShowdowns(handList []*hands.Hand, threshold decimal.Decimal) []ShowdownRow {
	var rows []ShowdownRow
	for _, hand := range handList {
		for _, show := range hand.Shows {
			rows = append(rows, linkShow(show, threshold)...)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Amount.Equal(rows[j].Amount) {
			return rows[i].Amount.GreaterThan(rows[j].Amount)
		}
		return rows[i].HandNumber < rows[j].HandNumber
	})
	return rows
}

func linkShow(show hands.ShowEvent, threshold decimal.Decimal) []ShowdownRow {
	// A reveal without a comma is a single-card flash, not a full showdown.
	if !strings.Contains(show.Details, ",") {
		return nil
	}

	qualifying := make([]hands.AggressionEvent, 0, len(show.Aggression))
	for _, agg := range show.Aggression {
		if agg.Street == hands.StreetPreflop && agg.Amount.GreaterThan(threshold) {
			qualifying = append(qualifying, agg)
		}
	}
	if len(qualifying) == 0 {
		return nil
	}

	sort.SliceStable(qualifying, func(i, j int) bool {
		return qualifying[i].Amount.GreaterThan(qualifying[j].Amount)
	})

	rows := make([]ShowdownRow, 0, len(qualifying))
	for i, agg := range qualifying {
		rows = append(rows, ShowdownRow{
			HandNumber:  show.HandNumber,
			Player:      hands.NormalizeIdentity(show.Player),
			ShowDetails: show.Details,
			Amount:      agg.Amount,
			BetLevel:    betLevelLabel(i),
		})
	}
	return rows
}

// betLevelLabel maps a descending-amount rank to its label: 0 is the opening
// raise, 1 the 3-bet, 2 the 4-bet, and so on.
func betLevelLabel(index int) string {
	if index == 0 {
		return "raise"
	}
	return fmt.Sprintf("%dbet", index+2)
}

// PlayerShowdownHistory builds each player's qualifying showdown rows,
// keyed by normalised identity. Only players who revealed both cards in a
// hand get rows for that hand.
func PlayerShowdownHistory(handList []*hands.Hand, threshold decimal.Decimal) map[string][]ShowdownRow {
	history := make(map[string][]ShowdownRow)

	for _, hand := range handList {
		showDetails := make(map[string]string)
		for _, show := range hand.Shows {
			if strings.Contains(show.Details, ",") {
				showDetails[hands.NormalizeIdentity(show.Player)] = show.Details
			}
		}

		byPlayer := make(map[string][]hands.AggressionEvent)
		for _, agg := range hand.Aggression {
			if agg.Street != hands.StreetPreflop || !agg.Amount.GreaterThan(threshold) {
				continue
			}
			player := hands.NormalizeIdentity(agg.Player)
			byPlayer[player] = append(byPlayer[player], agg)
		}

		for player, aggs := range byPlayer {
			details, ok := showDetails[player]
			if !ok {
				continue
			}
			sort.SliceStable(aggs, func(i, j int) bool {
				return aggs[i].Amount.GreaterThan(aggs[j].Amount)
			})
			for i, agg := range aggs {
				history[player] = append(history[player], ShowdownRow{
					HandNumber:  hand.Number,
					Player:      player,
					ShowDetails: details,
					Amount:      agg.Amount,
					BetLevel:    betLevelLabel(i),
				})
			}
		}
	}

	for player := range history {
		rows := history[player]
		sort.SliceStable(rows, func(i, j int) bool {
			if !rows[i].Amount.Equal(rows[j].Amount) {
				return rows[i].Amount.GreaterThan(rows[j].Amount)
			}
			return rows[i].HandNumber < rows[j].HandNumber
		})
	}
	return history
}

var betLevelDigitsRe = regexp.MustCompile(`\d+`)

// BetLevels returns the distinct bet levels present in rows, ordered raise
// first, then 3bet, 4bet, ...
func BetLevels(rows []ShowdownRow) []string {
	seen := make(map[string]bool)
	var levels []string
	for _, row := range rows {
		if !seen[row.BetLevel] {
			seen[row.BetLevel] = true
			levels = append(levels, row.BetLevel)
		}
	}
	sort.SliceStable(levels, func(i, j int) bool {
		return betLevelSortKey(levels[i]) < betLevelSortKey(levels[j])
	})
	return levels
}

func betLevelSortKey(level string) int {
	if strings.EqualFold(level, "raise") {
		return 1
	}
	if m := betLevelDigitsRe.FindString(level); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}
	return int(^uint(0) >> 1)
}
