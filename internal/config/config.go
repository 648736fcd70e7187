// Package config loads the optional analysis configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
)

// Config is the complete analyzer configuration.
type Config struct {
	Analysis AnalysisSettings `hcl:"analysis,block"`
	Report   ReportSettings   `hcl:"report,block"`
}

// AnalysisSettings tunes the linker and the net accountant.
type AnalysisSettings struct {
	// NoiseThreshold excludes blind-sized aggression from bet-level charting.
	NoiseThreshold float64 `hcl:"noise_threshold,optional"`
	// TopHands is the number of winning/losing hands reported per player.
	TopHands int `hcl:"top_hands,optional"`
	// ReconcileUncalled subtracts returned uncalled bets from invested
	// totals. Off by default: the historical accounting counts them.
	ReconcileUncalled bool `hcl:"reconcile_uncalled,optional"`
}

// ReportSettings selects optional report outputs.
type ReportSettings struct {
	XLSX       bool `hcl:"xlsx,optional"`
	Chart      bool `hcl:"chart,optional"`
	ChartWidth int  `hcl:"chart_width,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Analysis: AnalysisSettings{
			NoiseThreshold: 2.0,
			TopHands:       10,
		},
		Report: ReportSettings{
			Chart:      true,
			ChartWidth: 800,
		},
	}
}

// Load reads an HCL configuration file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Analysis.NoiseThreshold == 0 {
		cfg.Analysis.NoiseThreshold = 2.0
	}
	if cfg.Analysis.TopHands == 0 {
		cfg.Analysis.TopHands = 10
	}
	if cfg.Report.ChartWidth == 0 {
		cfg.Report.ChartWidth = 800
	}

	return &cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Analysis.NoiseThreshold < 0 {
		return fmt.Errorf("noise_threshold must not be negative: %v", c.Analysis.NoiseThreshold)
	}
	if c.Analysis.TopHands < 1 {
		return fmt.Errorf("top_hands must be at least 1: %d", c.Analysis.TopHands)
	}
	if c.Report.ChartWidth < 100 {
		return fmt.Errorf("chart_width must be at least 100: %d", c.Report.ChartWidth)
	}
	return nil
}

// NoiseThreshold returns the configured threshold as a decimal.
func (c *Config) NoiseThreshold() decimal.Decimal {
	return decimal.NewFromFloat(c.Analysis.NoiseThreshold)
}
