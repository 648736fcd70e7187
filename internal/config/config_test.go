package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.hcl")
	content := `
analysis {
  noise_threshold    = 5.0
  top_hands          = 3
  reconcile_uncalled = true
}

report {
  xlsx        = true
  chart       = false
  chart_width = 1200
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Analysis.NoiseThreshold)
	assert.Equal(t, 3, cfg.Analysis.TopHands)
	assert.True(t, cfg.Analysis.ReconcileUncalled)
	assert.True(t, cfg.Report.XLSX)
	assert.False(t, cfg.Report.Chart)
	assert.Equal(t, 1200, cfg.Report.ChartWidth)
	require.NoError(t, cfg.Validate())
}

func TestLoadAppliesDefaultsForZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.hcl")
	content := `
analysis {
  reconcile_uncalled = true
}

report {
  xlsx = true
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Analysis.NoiseThreshold)
	assert.Equal(t, 10, cfg.Analysis.TopHands)
	assert.Equal(t, 800, cfg.Report.ChartWidth)
}

func TestLoadInvalidHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte("analysis {"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"negative threshold", func(c *Config) { c.Analysis.NoiseThreshold = -1 }, "noise_threshold"},
		{"zero top hands", func(c *Config) { c.Analysis.TopHands = 0 }, "top_hands"},
		{"tiny chart", func(c *Config) { c.Report.ChartWidth = 10 }, "chart_width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNoiseThresholdDecimal(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.NoiseThreshold().Equal(decimal.NewFromFloat(2.0)))
}
