package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lox/pokernow-stats/internal/hands"
)

// HandNet is one hand's profit accounting for the target player.
type HandNet struct {
	HandNumber int
	MyCards    string
	Flop       []string
	Turn       []string
	River      []string
	Invested   decimal.Decimal
	Collected  decimal.Decimal
	Net        decimal.Decimal
	PotSize    decimal.Decimal
	Opponent   string
}

// NetOptions controls the accountant.
//
// ReconcileUncalled enables the corrected accounting mode: uncalled bets
// returned to the target player are subtracted from their invested total.
// Off by default, which reproduces the historical figures (an uncontested
// all-in shows up as invested even though it came back).
type NetOptions struct {
	ReconcileUncalled bool
}

// ComputeNet builds the per-hand invested/collected/net ledger for the given
// player across every hand they participated in. Participation means the
// player appears in the hand's hole cards or in any aggression entry.
func ComputeNet(handList []*hands.Hand, player string, opts NetOptions) []HandNet {
	target := hands.NormalizeIdentity(player)
	var results []HandNet

	for _, hand := range handList {
		if !participated(hand, target) {
			continue
		}

		invested := decimal.Zero
		for _, agg := range hand.Aggression {
			if hands.NormalizeIdentity(agg.Player) == target {
				invested = invested.Add(agg.Amount)
			}
		}
		if opts.ReconcileUncalled {
			for _, bet := range hand.UncalledBets {
				if hands.NormalizeIdentity(bet.Player) == target {
					invested = invested.Sub(bet.Amount)
				}
			}
		}

		collected := decimal.Zero
		for _, coll := range hand.Collected {
			if hands.NormalizeIdentity(coll.Player) == target {
				collected = collected.Add(coll.Amount)
			}
		}

		results = append(results, HandNet{
			HandNumber: hand.Number,
			MyCards:    myCards(hand, target),
			Flop:       hand.Board[hands.StreetFlop],
			Turn:       hand.Board[hands.StreetTurn],
			River:      hand.Board[hands.StreetRiver],
			Invested:   invested,
			Collected:  collected,
			Net:        collected.Sub(invested),
			PotSize:    hand.FinalPot(),
			Opponent:   opponentSummary(hand, target),
		})
	}
	return results
}

func participated(hand *hands.Hand, target string) bool {
	for key := range hand.HoleCards {
		if hands.NormalizeIdentity(key) == target {
			return true
		}
	}
	for _, agg := range hand.Aggression {
		if hands.NormalizeIdentity(agg.Player) == target {
			return true
		}
	}
	return false
}

// myCards prefers the dealt hole cards, falls back to the player's own
// showdown reveal, and is empty when neither exists.
func myCards(hand *hands.Hand, target string) string {
	for key, cards := range hand.HoleCards {
		if hands.NormalizeIdentity(key) == target {
			return strings.Join(cards, ", ")
		}
	}
	for _, show := range hand.Shows {
		if hands.NormalizeIdentity(show.Player) == target {
			return show.Details
		}
	}
	return ""
}

// opponentSummary formats every other player's showdown reveal as
// "name: cards", joined by ", ". When a show carries no card detail the
// opponent's hole cards are used, and failing that just the name.
func opponentSummary(hand *hands.Hand, target string) string {
	var parts []string
	for _, show := range hand.Shows {
		name := hands.NormalizeIdentity(show.Player)
		if name == target {
			continue
		}
		cards := strings.TrimSpace(show.Details)
		if cards == "" {
			for key, hole := range hand.HoleCards {
				if hands.NormalizeIdentity(key) == name {
					cards = strings.Join(hole, ", ")
					break
				}
			}
		}
		if cards != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", name, cards))
		} else {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}

// TopWins returns up to n hands with positive net, largest first.
func TopWins(results []HandNet, n int) []HandNet {
	var wins []HandNet
	for _, r := range results {
		if r.Net.GreaterThan(decimal.Zero) {
			wins = append(wins, r)
		}
	}
	sort.SliceStable(wins, func(i, j int) bool { return wins[i].Net.GreaterThan(wins[j].Net) })
	return truncate(wins, n)
}

// TopLosses returns up to n hands with negative net, most negative first.
func TopLosses(results []HandNet, n int) []HandNet {
	var losses []HandNet
	for _, r := range results {
		if r.Net.LessThan(decimal.Zero) {
			losses = append(losses, r)
		}
	}
	sort.SliceStable(losses, func(i, j int) bool { return losses[i].Net.LessThan(losses[j].Net) })
	return truncate(losses, n)
}

func truncate(results []HandNet, n int) []HandNet {
	if n > 0 && len(results) > n {
		return results[:n]
	}
	return results
}
