// Package logrow turns raw poker session log lines into typed action records.
//
// The raw export carries one free-text log message per row together with a
// timestamp and an ordering key. Nothing in the format is schematised: hand
// boundaries, player actions and amounts all have to be recognised from the
// text itself. This package owns that first normalisation step and the CSV
// contracts on either side of it.
package logrow

import (
	"github.com/shopspring/decimal"
)

// ActionKind classifies a normalised log row.
type ActionKind string

const (
	KindHandStart ActionKind = "hand_start"
	KindHandEnd   ActionKind = "hand_end"
	KindShows     ActionKind = "shows"
	KindCollected ActionKind = "collected"
	KindFolds     ActionKind = "folds"
	KindCalls     ActionKind = "calls"
	KindBets      ActionKind = "bets"
	KindChecks    ActionKind = "checks"
	KindStandUp   ActionKind = "stand_up"
	KindQuits     ActionKind = "quits"
	KindOther     ActionKind = "other"
	KindUnknown   ActionKind = "unknown"
)

// ParseActionKind maps the string form back to an ActionKind, returning
// KindUnknown for anything unrecognised.
func ParseActionKind(s string) ActionKind {
	switch ActionKind(s) {
	case KindHandStart, KindHandEnd, KindShows, KindCollected, KindFolds,
		KindCalls, KindBets, KindChecks, KindStandUp, KindQuits, KindOther:
		return ActionKind(s)
	default:
		return KindUnknown
	}
}

func (k ActionKind) String() string { return string(k) }

// ActionRecord is one normalised log row. Immutable once produced.
//
// HandNumber is zero when the row carries no hand number (the reconstructor
// inherits the enclosing hand's number where possible). Player is the raw
// identity token, typically "name @ sessionid". Amount is zero when absent or
// unparseable.
type ActionRecord struct {
	Kind       ActionKind
	HandNumber int
	Player     string
	Amount     decimal.Decimal
	Details    string
	At         string
	Order      int64
}

// RawRow is one row of the raw export before normalisation.
type RawRow struct {
	Entry string
	At    string
	Order int64
}
