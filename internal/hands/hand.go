package hands

import (
	"github.com/shopspring/decimal"

	"github.com/lox/pokernow-stats/internal/logrow"
)

// Street is a betting round.
type Street string

const (
	StreetPreflop Street = "preflop"
	StreetFlop    Street = "flop"
	StreetTurn    Street = "turn"
	StreetRiver   Street = "river"
)

// Streets lists the betting rounds in play order.
var Streets = []Street{StreetPreflop, StreetFlop, StreetTurn, StreetRiver}

func (s Street) rank() int {
	switch s {
	case StreetPreflop:
		return 0
	case StreetFlop:
		return 1
	case StreetTurn:
		return 2
	case StreetRiver:
		return 3
	default:
		return -1
	}
}

// previous returns the street a pot snapshot is tagged with when this street
// is announced: the round whose betting just closed.
func (s Street) previous() Street {
	switch s {
	case StreetFlop:
		return StreetPreflop
	case StreetTurn:
		return StreetFlop
	case StreetRiver:
		return StreetTurn
	default:
		return StreetPreflop
	}
}

// PotSnapshot records the pot total at the close of a street.
type PotSnapshot struct {
	Street Street
	Pot    decimal.Decimal
}

// Blind records a posted blind.
type Blind struct {
	Player string
	Amount decimal.Decimal
}

// AggressionEvent is one bet, call or raise, tagged with the street that was
// active when it happened. Historically this list was called "preflop
// aggression" even though it records aggression at any street; the street tag
// is what downstream consumers filter on.
type AggressionEvent struct {
	Player  string
	Action  string
	Amount  decimal.Decimal
	Details string
	Street  Street
	Board   map[Street][]string
	At      string
}

// Collection records chips collected from the pot.
type Collection struct {
	Player  string
	Amount  decimal.Decimal
	Details string
	At      string
}

// ShowEvent captures a showdown reveal with the hand state frozen at reveal
// time. Aggression holds the revealing player's aggression events recorded so
// far; it is a snapshot, not recomputed later.
type ShowEvent struct {
	HandNumber int
	Player     string
	Details    string
	PotTotal   decimal.Decimal
	Street     Street
	Board      map[Street][]string
	Aggression []AggressionEvent
}

// UncalledBet records a wager returned to its bettor. Informational only: the
// amount is never reconciled against the pot (see the accounting note in
// DESIGN.md).
type UncalledBet struct {
	Player  string
	Amount  decimal.Decimal
	Details string
}

// PlayerEvent records a player joining or quitting the table.
type PlayerEvent struct {
	Player  string
	Details string
	At      string
}

// Hand is one reconstructed hand. Built incrementally by the Reconstructor
// and sealed on hand end; a sealed hand is never mutated again.
type Hand struct {
	Number        int
	CurrentStreet Street
	PotTotal      decimal.Decimal
	PotHistory    []PotSnapshot
	Board         map[Street][]string
	Blinds        map[string]Blind
	Aggression    []AggressionEvent
	Collected     []Collection
	Shows         []ShowEvent
	HoleCards     map[string][]string
	UncalledBets  []UncalledBet
	JoinEvents    []PlayerEvent
	QuitEvents    []PlayerEvent
	Actions       []logrow.ActionRecord
}

func newHand(start logrow.ActionRecord) *Hand {
	return &Hand{
		Number:        start.HandNumber,
		CurrentStreet: StreetPreflop,
		PotTotal:      decimal.Zero,
		Board:         make(map[Street][]string),
		Blinds:        make(map[string]Blind),
		HoleCards:     make(map[string][]string),
		Actions:       []logrow.ActionRecord{start},
	}
}

// boardSnapshot returns an independent copy of the board as it stands.
func (h *Hand) boardSnapshot() map[Street][]string {
	snapshot := make(map[Street][]string, len(h.Board))
	for street, cards := range h.Board {
		snapshot[street] = append([]string(nil), cards...)
	}
	return snapshot
}

// FinalPot returns the pot total of the last snapshot, the figure reports use
// as the hand's pot size.
func (h *Hand) FinalPot() decimal.Decimal {
	if len(h.PotHistory) == 0 {
		return decimal.Zero
	}
	return h.PotHistory[len(h.PotHistory)-1].Pot
}

// Participants returns the normalised identities of every player whose
// identity token appears in the hand's actions.
func (h *Hand) Participants() map[string]bool {
	players := make(map[string]bool)
	for _, action := range h.Actions {
		if IsIdentityToken(action.Player) {
			players[NormalizeIdentity(action.Player)] = true
		}
	}
	return players
}

// AggressionBy returns the aggression events recorded for the given
// normalised identity.
func (h *Hand) AggressionBy(player string) []AggressionEvent {
	var events []AggressionEvent
	for _, agg := range h.Aggression {
		if NormalizeIdentity(agg.Player) == player {
			events = append(events, agg)
		}
	}
	return events
}
