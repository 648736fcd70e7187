package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokernow-stats/internal/hands"
)

func TestComputeNet(t *testing.T) {
	hand := &hands.Hand{
		Number:    12,
		HoleCards: map[string][]string{"alice": {"A♠", "A♥"}},
		Board: map[hands.Street][]string{
			hands.StreetFlop:  {"2♣", "3♦", "4♠"},
			hands.StreetTurn:  {"2♣", "3♦", "4♠", "K♣"},
			hands.StreetRiver: {"2♣", "3♦", "4♠", "K♣", "9♥"},
		},
		Aggression: []hands.AggressionEvent{
			{Player: "alice @ a1", Action: "bets", Amount: dec("20")},
			{Player: "bob @ b1", Action: "calls", Amount: dec("20")},
		},
		Collected: []hands.Collection{
			{Player: "alice @ a1", Amount: dec("45")},
		},
		PotHistory: []hands.PotSnapshot{{Street: hands.StreetRiver, Pot: dec("45")}},
		Shows: []hands.ShowEvent{
			{Player: "bob @ b1", Details: "K♦, K♣"},
		},
	}

	results := ComputeNet([]*hands.Hand{hand}, "Alice @ a1", NetOptions{})
	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, 12, r.HandNumber)
	assert.Equal(t, "A♠, A♥", r.MyCards)
	assert.True(t, r.Invested.Equal(dec("20")))
	assert.True(t, r.Collected.Equal(dec("45")))
	assert.True(t, r.Net.Equal(dec("25")))
	assert.True(t, r.PotSize.Equal(dec("45")))
	assert.Equal(t, "bob: K♦, K♣", r.Opponent)
	assert.Equal(t, []string{"2♣", "3♦", "4♠"}, r.Flop)
}

func TestComputeNetLoss(t *testing.T) {
	hand := &hands.Hand{
		Number: 2,
		Aggression: []hands.AggressionEvent{
			{Player: "alice @ a1", Action: "calls", Amount: dec("30")},
		},
		Collected: []hands.Collection{
			{Player: "bob @ b1", Amount: dec("60")},
		},
	}

	results := ComputeNet([]*hands.Hand{hand}, "alice", NetOptions{})
	require.Len(t, results, 1)
	assert.True(t, results[0].Net.Equal(dec("-30")))
}

func TestComputeNetSkipsHandsWithoutParticipation(t *testing.T) {
	hand := &hands.Hand{
		Number: 3,
		Aggression: []hands.AggressionEvent{
			{Player: "bob @ b1", Action: "bets", Amount: dec("5")},
		},
	}

	results := ComputeNet([]*hands.Hand{hand}, "alice", NetOptions{})
	assert.Empty(t, results)
}

func TestComputeNetMyCardsFallsBackToShow(t *testing.T) {
	hand := &hands.Hand{
		Number: 4,
		Aggression: []hands.AggressionEvent{
			{Player: "alice @ a1", Action: "bets", Amount: dec("5")},
		},
		Shows: []hands.ShowEvent{
			{Player: "alice @ a1", Details: "Q♠, Q♥"},
		},
	}

	results := ComputeNet([]*hands.Hand{hand}, "alice", NetOptions{})
	require.Len(t, results, 1)
	assert.Equal(t, "Q♠, Q♥", results[0].MyCards)
	assert.Empty(t, results[0].Opponent)
}

func TestComputeNetReconcileUncalled(t *testing.T) {
	hand := &hands.Hand{
		Number: 5,
		Aggression: []hands.AggressionEvent{
			{Player: "alice @ a1", Action: "bets", Amount: dec("50")},
		},
		UncalledBets: []hands.UncalledBet{
			{Player: "alice @ a1", Amount: dec("50")},
		},
		Collected: []hands.Collection{
			{Player: "alice @ a1", Amount: dec("3")},
		},
	}

	historical := ComputeNet([]*hands.Hand{hand}, "alice", NetOptions{})
	require.Len(t, historical, 1)
	assert.True(t, historical[0].Net.Equal(dec("-47")), "returned bet still counts as invested")

	reconciled := ComputeNet([]*hands.Hand{hand}, "alice", NetOptions{ReconcileUncalled: true})
	require.Len(t, reconciled, 1)
	assert.True(t, reconciled[0].Net.Equal(dec("3")))
}

func TestTopWinsAndLosses(t *testing.T) {
	results := []HandNet{
		{HandNumber: 1, Net: dec("10")},
		{HandNumber: 2, Net: dec("-5")},
		{HandNumber: 3, Net: dec("30")},
		{HandNumber: 4, Net: dec("0")},
		{HandNumber: 5, Net: dec("-20")},
		{HandNumber: 6, Net: dec("7")},
	}

	wins := TopWins(results, 2)
	require.Len(t, wins, 2)
	assert.Equal(t, 3, wins[0].HandNumber)
	assert.Equal(t, 1, wins[1].HandNumber)

	losses := TopLosses(results, 10)
	require.Len(t, losses, 2)
	assert.Equal(t, 5, losses[0].HandNumber)
	assert.Equal(t, 2, losses[1].HandNumber)
}
