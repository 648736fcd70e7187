package hands

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/lox/pokernow-stats/internal/logrow"
)

var (
	amountRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
	raisesToRe = regexp.MustCompile(`(?i)raises to\s+(\d+(?:\.\d+)?)`)
	uncalledRe = regexp.MustCompile(`(?i)uncalled bet of\s+(\d+(?:\.\d+)?)(?:\s+returned to\s+"?([^"]+)"?)?`)
)

// Reconstructor folds an ordered stream of action records into sealed hands.
// Exactly one hand is under construction at a time; completed hands go onto
// an immutable result list and are never touched again.
type Reconstructor struct {
	logger zerolog.Logger
}

// NewReconstructor returns a reconstructor that logs recovery events (forced
// seals, stray hand ends) at debug level.
func NewReconstructor(logger zerolog.Logger) *Reconstructor {
	return &Reconstructor{logger: logger}
}

// Reconstruct runs the state machine over the full record stream. A hand
// still open when the stream ends is flushed as if a hand end had been seen.
func (r *Reconstructor) Reconstruct(records []logrow.ActionRecord) []*Hand {
	var (
		result  []*Hand
		current *Hand
	)

	seal := func() {
		current.PotHistory = append(current.PotHistory, PotSnapshot{
			Street: current.CurrentStreet,
			Pot:    current.PotTotal,
		})
		result = append(result, current)
		current = nil
	}

	for _, rec := range records {
		switch rec.Kind {
		case logrow.KindHandStart:
			if current != nil {
				// Malformed input missing a hand end: force-close the
				// previous hand before opening the next.
				r.logger.Debug().Int("hand", current.Number).Msg("hand start while hand open, sealing previous hand")
				seal()
			}
			current = newHand(rec)

		case logrow.KindHandEnd:
			if current == nil {
				r.logger.Debug().Int64("order", rec.Order).Msg("ignoring hand end with no open hand")
				continue
			}
			current.Actions = append(current.Actions, r.inherit(rec, current))
			seal()

		default:
			if current == nil {
				continue
			}
			r.apply(current, r.inherit(rec, current))
		}
	}

	if current != nil {
		r.logger.Debug().Int("hand", current.Number).Msg("stream ended with hand open, flushing")
		seal()
	}

	return result
}

// inherit fills a record's missing hand number from the enclosing hand.
func (r *Reconstructor) inherit(rec logrow.ActionRecord, hand *Hand) logrow.ActionRecord {
	if rec.HandNumber == 0 && hand.Number != 0 {
		rec.HandNumber = hand.Number
	}
	return rec
}

func (r *Reconstructor) apply(hand *Hand, rec logrow.ActionRecord) {
	switch rec.Kind {
	case logrow.KindBets, logrow.KindCalls:
		amount := resolveAmount(rec.Amount, rec.Details)
		hand.PotTotal = hand.PotTotal.Add(amount)
		rec.Amount = amount
		hand.Actions = append(hand.Actions, rec)
		hand.Aggression = append(hand.Aggression, AggressionEvent{
			Player:  rec.Player,
			Action:  rec.Kind.String(),
			Amount:  amount,
			Details: rec.Details,
			Street:  hand.CurrentStreet,
			Board:   hand.boardSnapshot(),
			At:      rec.At,
		})

	case logrow.KindFolds:
		hand.Actions = append(hand.Actions, rec)

	case logrow.KindShows:
		details := rec.Details
		if prefix := "shows a"; len(details) >= len(prefix) && strings.EqualFold(details[:len(prefix)], prefix) {
			details = strings.TrimSpace(details[len(prefix):])
		}
		player := NormalizeIdentity(rec.Player)
		hand.Shows = append(hand.Shows, ShowEvent{
			HandNumber: hand.Number,
			Player:     rec.Player,
			Details:    details,
			PotTotal:   hand.PotTotal,
			Street:     hand.CurrentStreet,
			Board:      hand.boardSnapshot(),
			Aggression: hand.AggressionBy(player),
		})
		hand.Actions = append(hand.Actions, rec)

	case logrow.KindCollected:
		hand.Collected = append(hand.Collected, Collection{
			Player:  rec.Player,
			Amount:  rec.Amount,
			Details: rec.Details,
			At:      rec.At,
		})
		hand.Actions = append(hand.Actions, rec)

	case logrow.KindOther:
		r.applyOther(hand, rec)

	default:
		// checks, stand_up, quits and unknown rows carry no hand state
	}
}

// applyOther handles the richest branch: raise detection, street transitions,
// blinds, uncalled bets, hole cards and join/quit events. The checks are
// independent; several can fire for one record.
func (r *Reconstructor) applyOther(hand *Hand, rec logrow.ActionRecord) {
	playerText := strings.TrimSpace(rec.Player)
	details := strings.TrimSpace(rec.Details)
	lowerPlayer := strings.ToLower(playerText)
	lowerDetails := strings.ToLower(details)
	combined := strings.TrimSpace(playerText + " " + details)
	lowerCombined := strings.ToLower(combined)

	if m := raisesToRe.FindStringSubmatch(details); m != nil {
		amount := logrow.ParseAmount(m[1])
		hand.PotTotal = hand.PotTotal.Add(amount)
		hand.Aggression = append(hand.Aggression, AggressionEvent{
			Player:  rec.Player,
			Action:  "raises",
			Amount:  amount,
			Details: details,
			Street:  hand.CurrentStreet,
			Board:   hand.boardSnapshot(),
			At:      rec.At,
		})
	}

	for _, street := range []Street{StreetFlop, StreetTurn, StreetRiver} {
		prefix := string(street) + ":"
		if strings.HasPrefix(lowerPlayer, prefix) || strings.HasPrefix(lowerDetails, prefix) {
			hand.Board[street] = ExtractBoardCards(rec.Player, details)
			hand.PotHistory = append(hand.PotHistory, PotSnapshot{
				Street: street.previous(),
				Pot:    hand.PotTotal,
			})
			if street.rank() > hand.CurrentStreet.rank() {
				hand.CurrentStreet = street
			}
			break
		}
	}

	switch {
	case strings.Contains(lowerDetails, "small blind"):
		amount := resolveAmount(rec.Amount, details)
		hand.Blinds["small"] = Blind{Player: rec.Player, Amount: amount}
		hand.PotTotal = hand.PotTotal.Add(amount)
	case strings.Contains(lowerDetails, "big blind"):
		amount := resolveAmount(rec.Amount, details)
		hand.Blinds["big"] = Blind{Player: rec.Player, Amount: amount}
		hand.PotTotal = hand.PotTotal.Add(amount)
	}

	if strings.Contains(lowerCombined, "uncalled bet") {
		bet := UncalledBet{Player: rec.Player, Amount: rec.Amount, Details: details}
		if m := uncalledRe.FindStringSubmatch(combined); m != nil {
			bet.Amount = logrow.ParseAmount(m[1])
			if m[2] != "" {
				bet.Player = strings.TrimSpace(m[2])
			}
		}
		hand.UncalledBets = append(hand.UncalledBets, bet)
	}

	if strings.Contains(lowerCombined, "your hand is") {
		if cards := ExtractHoleCards(combined); cards != nil {
			hand.HoleCards[NormalizeIdentity(rec.Player)] = cards
		}
	}

	if strings.Contains(lowerDetails, "joined the game") {
		hand.JoinEvents = append(hand.JoinEvents, PlayerEvent{Player: rec.Player, Details: details, At: rec.At})
	}
	if strings.Contains(lowerDetails, "quits") {
		hand.QuitEvents = append(hand.QuitEvents, PlayerEvent{Player: rec.Player, Details: details, At: rec.At})
	}

	hand.Actions = append(hand.Actions, rec)
}

// resolveAmount falls back to scanning the details text when a record's
// amount is zero or absent; the raw export writes most amounts inline.
func resolveAmount(amount decimal.Decimal, details string) decimal.Decimal {
	if !amount.IsZero() {
		return amount
	}
	if m := amountRe.FindStringSubmatch(details); m != nil {
		return logrow.ParseAmount(m[1])
	}
	return decimal.Zero
}
