package hands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCards(t *testing.T) {
	assert.Equal(t, []string{"2♣", "3♦", "4♠"}, ExtractCards("[2♣, 3♦, 4♠]"))
	assert.Equal(t, []string{"K♣"}, ExtractCards("Turn: [K♣]"))
	assert.Nil(t, ExtractCards("no cards here"))
}

func TestExtractHoleCards(t *testing.T) {
	assert.Equal(t, []string{"5♣", "6♠"}, ExtractHoleCards("Your hand is 5♣, 6♠"))
	assert.Equal(t, []string{"A♥", "A♦"}, ExtractHoleCards("your hand is A♥, A♦"))
	assert.Nil(t, ExtractHoleCards("collected 10 from pot"))
}

func TestExtractBoardCards(t *testing.T) {
	tests := []struct {
		name    string
		player  string
		details string
		want    []string
	}{
		{
			name:    "flop all in details",
			player:  "Flop:",
			details: "[2♣, 3♦, 4♠]",
			want:    []string{"2♣", "3♦", "4♠"},
		},
		{
			name:    "flop split by greedy player match",
			player:  "Flop: [2♣, 3♦,",
			details: "4♠]",
			want:    []string{"2♣", "3♦", "4♠"},
		},
		{
			name:    "turn repeats board then brackets new card",
			player:  "Turn: 2♣, 3♦,",
			details: "4♠ [K♣]",
			want:    []string{"2♣", "3♦", "4♠", "K♣"},
		},
		{
			name:    "river",
			player:  "River: 2♣, 3♦, 4♠,",
			details: "K♣ [9♥]",
			want:    []string{"2♣", "3♦", "4♠", "K♣", "9♥"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBoardCards(tt.player, tt.details))
		})
	}
}
