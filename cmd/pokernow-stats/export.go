package main

import (
	"path/filepath"
	"strings"

	"github.com/lox/pokernow-stats/cmd/pokernow-stats/shared"
	"github.com/lox/pokernow-stats/internal/fileutil"
	"github.com/lox/pokernow-stats/internal/hands"
	"github.com/lox/pokernow-stats/internal/logrow"
	"github.com/lox/pokernow-stats/internal/phh"
)

// ExportCmd serializes the reconstructed session as PHH-style TOML.
type ExportCmd struct {
	Input   string `arg:"" name:"input" help:"Raw PokerNow CSV export (or cleaned file with --cleaned)"`
	Output  string `short:"o" help:"Session file path (default: <input>_session.toml)"`
	Cleaned bool   `help:"Treat the input as an already-cleaned CSV"`
	Debug   bool   `help:"Enable debug logging"`
}

func (c *ExportCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	var records []logrow.ActionRecord
	if c.Cleaned {
		var err error
		records, err = logrow.ReadCleanedCSV(c.Input)
		if err != nil {
			return err
		}
	} else {
		rows, err := logrow.ReadRawCSV(c.Input)
		if err != nil {
			return err
		}
		records = logrow.NormalizeAll(rows)
	}

	session := hands.NewReconstructor(logger).Reconstruct(records)

	data, err := phh.EncodeSessionToBytes(session)
	if err != nil {
		return err
	}

	output := c.Output
	if output == "" {
		ext := filepath.Ext(c.Input)
		output = strings.TrimSuffix(c.Input, ext) + "_session.toml"
	}
	if err := fileutil.WriteFileAtomic(output, data, 0o644); err != nil {
		return err
	}

	logger.Info().
		Int("hands", len(session)).
		Str("output", output).
		Msg("Wrote session export")
	return nil
}
