package analysis

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lox/pokernow-stats/internal/hands"
	"github.com/lox/pokernow-stats/internal/logrow"
)

// PlayerMetrics holds per-player participation and aggression counts, keyed
// by normalised identity.
//
// ThreeBet is the raw count: hands where any of the player's aggression
// details contain "3bet" literally. The linker's label-based count is a
// different lens and supersedes this one for final reporting; see
// ApplyLabelThreeBets.
type PlayerMetrics struct {
	Player      string
	HandsPlayed int
	VPIP        int
	PFR         int
	ThreeBet    int
	VPIPPct     float64
	PFRPct      float64
	ThreeBetPct float64
}

// ComputePlayerMetrics folds the hand list into per-player statistics. A
// player participates in a hand when their identity token appears in any of
// its actions; VPIP counts hands with any aggression entry (at any street,
// matching the historical behaviour), PFR counts hands where an aggression
// entry was a bet.
func ComputePlayerMetrics(handList []*hands.Hand) map[string]*PlayerMetrics {
	metrics := make(map[string]*PlayerMetrics)
	get := func(player string) *PlayerMetrics {
		m, ok := metrics[player]
		if !ok {
			m = &PlayerMetrics{Player: player}
			metrics[player] = m
		}
		return m
	}

	for _, hand := range handList {
		for player := range hand.Participants() {
			get(player).HandsPlayed++
		}

		vpip := make(map[string]bool)
		pfr := make(map[string]bool)
		threeBet := make(map[string]bool)
		for _, agg := range hand.Aggression {
			player := hands.NormalizeIdentity(agg.Player)
			if player == "" {
				continue
			}
			vpip[player] = true
			if agg.Action == logrow.KindBets.String() {
				pfr[player] = true
			}
			if strings.Contains(strings.ToLower(agg.Details), "3bet") {
				threeBet[player] = true
			}
		}
		for player := range vpip {
			get(player).VPIP++
		}
		for player := range pfr {
			get(player).PFR++
		}
		for player := range threeBet {
			get(player).ThreeBet++
		}
	}

	for _, m := range metrics {
		m.VPIPPct = percentage(m.VPIP, m.HandsPlayed)
		m.PFRPct = percentage(m.PFR, m.HandsPlayed)
		m.ThreeBetPct = percentage(m.ThreeBet, m.HandsPlayed)
	}
	return metrics
}

// ApplyLabelThreeBets replaces each player's raw 3-bet count with the
// label-based one: the number of distinct hands where the linker assigned
// them a "3bet" row. Players without linked rows drop to zero.
func ApplyLabelThreeBets(metrics map[string]*PlayerMetrics, rows []ShowdownRow) {
	counts := make(map[string]map[int]bool)
	for _, row := range rows {
		if row.BetLevel != "3bet" {
			continue
		}
		if counts[row.Player] == nil {
			counts[row.Player] = make(map[int]bool)
		}
		counts[row.Player][row.HandNumber] = true
	}

	for player, m := range metrics {
		m.ThreeBet = len(counts[player])
		m.ThreeBetPct = percentage(m.ThreeBet, m.HandsPlayed)
	}
}

// SortedMetrics returns the metrics ordered by VPIP percentage descending,
// the order the player chart is rendered in.
func SortedMetrics(metrics map[string]*PlayerMetrics) []*PlayerMetrics {
	out := make([]*PlayerMetrics, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].VPIPPct != out[j].VPIPPct {
			return out[i].VPIPPct > out[j].VPIPPct
		}
		return out[i].Player < out[j].Player
	})
	return out
}

// AveragePotByStreet computes the mean pot size observed at each street
// across all pot-history snapshots, rounded to 2 decimals.
func AveragePotByStreet(handList []*hands.Hand) map[hands.Street]decimal.Decimal {
	totals := make(map[hands.Street]decimal.Decimal)
	counts := make(map[hands.Street]int)
	for _, hand := range handList {
		for _, snap := range hand.PotHistory {
			totals[snap.Street] = totals[snap.Street].Add(snap.Pot)
			counts[snap.Street]++
		}
	}

	averages := make(map[hands.Street]decimal.Decimal, len(hands.Streets))
	for _, street := range hands.Streets {
		if counts[street] == 0 {
			averages[street] = decimal.Zero
			continue
		}
		averages[street] = totals[street].Div(decimal.NewFromInt(int64(counts[street]))).Round(2)
	}
	return averages
}

// percentage is count/total*100 rounded to 2 decimals, zero when total is 0.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*100*100) / 100
}
