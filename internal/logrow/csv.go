package logrow

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// cleanedHeader is the intermediate file contract shared with the analyzer.
var cleanedHeader = []string{"action_type", "hand_number", "player", "amount", "details", "at", "order"}

// ReadRawCSV reads a raw session export. The file must have a header row with
// at least an "entry" column; "at" and "order" are carried through when
// present. Rows are returned sorted stably by order so ties preserve the
// original relative order.
func ReadRawCSV(path string) ([]RawRow, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: file is empty", path)
	}

	cols := indexColumns(rows[0])
	entryIdx, ok := cols["entry"]
	if !ok {
		return nil, fmt.Errorf("%s: no %q column in header", path, "entry")
	}
	atIdx, hasAt := cols["at"]
	orderIdx, hasOrder := cols["order"]

	raw := make([]RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if entryIdx >= len(row) {
			continue
		}
		rr := RawRow{Entry: row[entryIdx]}
		if hasAt && atIdx < len(row) {
			rr.At = row[atIdx]
		}
		if hasOrder && orderIdx < len(row) {
			rr.Order, _ = strconv.ParseInt(strings.TrimSpace(row[orderIdx]), 10, 64)
		}
		raw = append(raw, rr)
	}

	sort.SliceStable(raw, func(i, j int) bool { return raw[i].Order < raw[j].Order })
	return raw, nil
}

// WriteCleanedCSV writes normalised records in the intermediate contract:
// action_type, hand_number, player, amount, details, at, order.
func WriteCleanedCSV(path string, records []ActionRecord) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(cleanedHeader); err != nil {
		return err
	}
	for _, rec := range records {
		handNum := ""
		if rec.HandNumber != 0 {
			handNum = strconv.Itoa(rec.HandNumber)
		}
		amount := ""
		if !rec.Amount.IsZero() {
			amount = rec.Amount.String()
		}
		row := []string{
			rec.Kind.String(),
			handNum,
			rec.Player,
			amount,
			rec.Details,
			rec.At,
			strconv.FormatInt(rec.Order, 10),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadCleanedCSV loads a previously cleaned file back into ActionRecords,
// sorted stably by order.
func ReadCleanedCSV(path string) ([]ActionRecord, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: file is empty", path)
	}

	cols := indexColumns(rows[0])
	for _, name := range []string{"action_type", "details"} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%s: no %q column in header", path, name)
		}
	}

	field := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	records := make([]ActionRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := ActionRecord{
			Kind:    ParseActionKind(field(row, "action_type")),
			Player:  field(row, "player"),
			Amount:  ParseAmount(field(row, "amount")),
			Details: field(row, "details"),
			At:      field(row, "at"),
		}
		rec.HandNumber, _ = strconv.Atoi(strings.TrimSpace(field(row, "hand_number")))
		rec.Order, _ = strconv.ParseInt(strings.TrimSpace(field(row, "order")), 10, 64)
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].Order < records[j].Order })
	return records, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}
