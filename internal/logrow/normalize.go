package logrow

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	handStartRe = regexp.MustCompile(`(?i)-- starting hand #(\d+)`)
	handEndRe   = regexp.MustCompile(`(?i)-- ending hand #(\d+)`)
	showsRe     = regexp.MustCompile(`(?i)^"?([^"]+)"?\s+shows\s+(.*)`)
	collectedRe = regexp.MustCompile(`(?i)^"?([^"]+)"?\s+collected\s+([\d.,]+)\s+from pot`)
	splitRe     = regexp.MustCompile(`^"?([^"]+)"?\s+(.*)`)
)

// keyword classification for the generic player/details split, first match wins
var detailKeywords = []struct {
	needle string
	kind   ActionKind
}{
	{"folds", KindFolds},
	{"calls", KindCalls},
	{"bets", KindBets},
	{"checks", KindChecks},
	{"stand up", KindStandUp},
	{"quits", KindQuits},
}

// Normalize maps one raw log row to exactly one ActionRecord. It never fails:
// text that matches no rule degrades to KindUnknown with the cleaned text
// preserved in Details.
func Normalize(row RawRow) ActionRecord {
	cleaned := cleanEntry(row.Entry)
	rec := ActionRecord{At: row.At, Order: row.Order}
	lower := strings.ToLower(cleaned)

	switch {
	case strings.HasPrefix(lower, "-- starting hand"):
		rec.Kind = KindHandStart
		rec.HandNumber = extractHandNumber(handStartRe, cleaned)
		rec.Details = cleaned
		return rec

	case strings.HasPrefix(lower, "-- ending hand"):
		rec.Kind = KindHandEnd
		rec.HandNumber = extractHandNumber(handEndRe, cleaned)
		rec.Details = cleaned
		return rec
	}

	if strings.Contains(lower, " shows ") {
		if m := showsRe.FindStringSubmatch(cleaned); m != nil {
			rec.Kind = KindShows
			rec.Player = strings.TrimSpace(m[1])
			rec.Details = "shows " + strings.TrimSpace(m[2])
			return rec
		}
	}

	if strings.Contains(lower, " collected ") {
		if m := collectedRe.FindStringSubmatch(cleaned); m != nil {
			rec.Kind = KindCollected
			rec.Player = strings.TrimSpace(m[1])
			amount := strings.TrimSpace(m[2])
			rec.Amount = ParseAmount(amount)
			rec.Details = "collected " + amount + " from pot"
			return rec
		}
	}

	if m := splitRe.FindStringSubmatch(cleaned); m != nil {
		rec.Player = strings.TrimSpace(m[1])
		rec.Details = strings.TrimSpace(m[2])
		rec.Kind = KindOther
		lowered := strings.ToLower(rec.Details)
		for _, kw := range detailKeywords {
			if strings.Contains(lowered, kw.needle) {
				rec.Kind = kw.kind
				break
			}
		}
		return rec
	}

	rec.Kind = KindUnknown
	rec.Details = cleaned
	return rec
}

// NormalizeAll normalises a slice of raw rows in order.
func NormalizeAll(rows []RawRow) []ActionRecord {
	records := make([]ActionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, Normalize(row))
	}
	return records
}

// cleanEntry strips surrounding quotes and collapses doubled inner quotes,
// the CSV-escape artifacts of the raw export.
func cleanEntry(entry string) string {
	cleaned := strings.TrimSpace(entry)
	cleaned = strings.Trim(cleaned, `"`)
	return strings.ReplaceAll(cleaned, `""`, `"`)
}

func extractHandNumber(re *regexp.Regexp, text string) int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// ParseAmount parses a decimal amount, returning zero for anything
// unparseable. Numeric parse failures are never fatal.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
