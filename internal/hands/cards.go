package hands

import (
	"regexp"
	"strings"
)

var (
	bracketRe   = regexp.MustCompile(`\[([^\]]+)\]`)
	holeCardsRe = regexp.MustCompile(`(?i)your hand is\s*(.*)`)
)

var streetPrefixes = []string{"flop:", "turn:", "river:"}

// ExtractCards pulls the card tokens out of a bracketed, comma-separated
// list like "[2♣, 3♦, 4♠]". Returns nil when no bracketed list is present.
func ExtractCards(details string) []string {
	m := bracketRe.FindStringSubmatch(details)
	if m == nil {
		return nil
	}
	return splitCardList(m[1])
}

// ExtractHoleCards pulls the card tokens from a hole-card announcement like
// "Your hand is 5♣, 6♠".
func ExtractHoleCards(details string) []string {
	m := holeCardsRe.FindStringSubmatch(details)
	if m == nil {
		return nil
	}
	return splitCardList(m[1])
}

// ExtractBoardCards recovers board cards from a street announcement whose
// text the upstream export splits inconsistently between the player column
// and the details column (e.g. player "Turn: 3♦, J♦, 2♠" with details
// "[K♣]"). The two halves are re-joined, the street prefix stripped, a
// separating comma ensured before any bracketed suffix, and the result
// coerced into a single bracketed list before splitting.
func ExtractBoardCards(playerText, details string) []string {
	combined := strings.TrimSpace(playerText + " " + details)

	lowered := strings.ToLower(combined)
	for _, prefix := range streetPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			combined = strings.TrimSpace(combined[len(prefix):])
			break
		}
	}

	if idx := strings.Index(combined, "["); idx > 0 && combined[idx-1] != ',' {
		combined = strings.TrimRight(combined[:idx], " ") + ", " + combined[idx:]
	}

	combined = strings.Trim(combined, ` "`)
	if !strings.HasPrefix(combined, "[") {
		combined = "[" + combined
	}
	if !strings.HasSuffix(combined, "]") {
		combined = combined + "]"
	}

	cards := ExtractCards(combined)
	out := make([]string, 0, len(cards))
	for _, card := range cards {
		out = append(out, strings.TrimSpace(strings.TrimLeft(card, "[")))
	}
	return out
}

func splitCardList(list string) []string {
	parts := strings.Split(list, ",")
	cards := make([]string, 0, len(parts))
	for _, part := range parts {
		card := strings.Trim(part, " \"\n")
		if card != "" {
			cards = append(cards, card)
		}
	}
	return cards
}
