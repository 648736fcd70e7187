package main

import (
	"path/filepath"
	"strings"

	"github.com/lox/pokernow-stats/cmd/pokernow-stats/shared"
	"github.com/lox/pokernow-stats/internal/logrow"
)

// CleanCmd normalizes a raw log export without running any analysis.
type CleanCmd struct {
	Input  string `arg:"" name:"input" help:"Raw PokerNow CSV export"`
	Output string `short:"o" help:"Cleaned CSV path (default: <input>_cleaned.csv)"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *CleanCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	rows, err := logrow.ReadRawCSV(c.Input)
	if err != nil {
		return err
	}

	records := logrow.NormalizeAll(rows)

	output := c.Output
	if output == "" {
		output = cleanedPath(c.Input)
	}
	if err := logrow.WriteCleanedCSV(output, records); err != nil {
		return err
	}

	logger.Info().
		Int("rows", len(records)).
		Str("output", output).
		Msg("Wrote cleaned log")
	return nil
}

// cleanedPath derives the default cleaned-file path from the input name.
func cleanedPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_cleaned.csv"
}
