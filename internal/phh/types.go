// Package phh serializes reconstructed hands into a PHH-style TOML session
// file, one section per hand.
package phh

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lox/pokernow-stats/internal/hands"
)

// SessionHand is the flat TOML shape of one reconstructed hand. It keeps to
// scalars and string arrays so every field lives directly under its
// [hand_N] section.
type SessionHand struct {
	HandID     string   `toml:"hand"`
	Number     int      `toml:"number,omitempty"`
	SmallBlind string   `toml:"small_blind,omitempty"`
	BigBlind   string   `toml:"big_blind,omitempty"`
	Flop       []string `toml:"flop,omitempty"`
	Turn       []string `toml:"turn,omitempty"`
	River      []string `toml:"river,omitempty"`
	FinalPot   string   `toml:"final_pot"`
	PotHistory []string `toml:"pot_history,omitempty"`
	Shows      []string `toml:"shows,omitempty"`
	Collected  []string `toml:"collected,omitempty"`
	Players    []string `toml:"players,omitempty"`
}

// FromHand converts a reconstructed hand to its session shape. index is the
// 1-based position in the session, used when the log carried no hand number.
func FromHand(hand *hands.Hand, index int) SessionHand {
	number := hand.Number
	handID := fmt.Sprintf("hand-%d", number)
	if number == 0 {
		handID = fmt.Sprintf("hand-%d", index)
	}

	sh := SessionHand{
		HandID:   handID,
		Number:   number,
		Flop:     hand.Board[hands.StreetFlop],
		Turn:     hand.Board[hands.StreetTurn],
		River:    hand.Board[hands.StreetRiver],
		FinalPot: hand.FinalPot().String(),
	}

	if blind, ok := hand.Blinds["small"]; ok {
		sh.SmallBlind = fmt.Sprintf("%s %s", hands.NormalizeIdentity(blind.Player), blind.Amount.String())
	}
	if blind, ok := hand.Blinds["big"]; ok {
		sh.BigBlind = fmt.Sprintf("%s %s", hands.NormalizeIdentity(blind.Player), blind.Amount.String())
	}

	for _, snap := range hand.PotHistory {
		sh.PotHistory = append(sh.PotHistory, fmt.Sprintf("%s %s", snap.Street, snap.Pot.String()))
	}
	for _, show := range hand.Shows {
		sh.Shows = append(sh.Shows, fmt.Sprintf("%s: %s", hands.NormalizeIdentity(show.Player), show.Details))
	}
	for _, coll := range hand.Collected {
		sh.Collected = append(sh.Collected, fmt.Sprintf("%s %s", hands.NormalizeIdentity(coll.Player), coll.Amount.String()))
	}

	players := hand.Participants()
	for player := range players {
		sh.Players = append(sh.Players, player)
	}
	sort.Strings(sh.Players)

	return sh
}

// sectionKeyLess orders hand_N keys numerically with a lexical fallback.
func sectionKeyLess(a, b string) bool {
	ai, errA := sectionIndex(a)
	bi, errB := sectionIndex(b)
	if errA == nil && errB == nil {
		return ai < bi
	}
	return a < b
}

func sectionIndex(key string) (int, error) {
	var n int
	_, err := fmt.Sscanf(strings.TrimPrefix(key, "hand_"), "%d", &n)
	return n, err
}
