package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerodds/internal/equity"
	"github.com/lox/pokerodds/internal/trials"
)

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "poker-odds.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
engine {
  mode       = "random"
  iterations = 50000
  parallel   = false
  seed       = 7
  oracle     = "paulhankin"
}

log {
  level  = "debug"
  format = "json"
}
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "paulhankin", cfg.Engine.Oracle)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	ec, err := cfg.Engine.EquityConfig()
	require.NoError(t, err)
	assert.Equal(t, equity.Config{
		Mode:            trials.ModeRandom,
		Iterations:      50000,
		Parallel:        false,
		ExhaustiveLimit: trials.DefaultExhaustiveLimit,
		BatchSize:       equity.DefaultBatchSize,
		Seed:            7,
	}, ec)
}

func TestParsePartial(t *testing.T) {
	t.Parallel()
	cfg, err := Parse([]byte(`engine { workers = 3 }`), "partial.hcl")
	require.NoError(t, err)

	ec, err := cfg.Engine.EquityConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, ec.Workers)
	assert.True(t, ec.Parallel)
	assert.Equal(t, trials.ModeAuto, ec.Mode)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "syntax", src: `engine {`, wantErr: "failed to parse"},
		{name: "unknown attribute", src: `engine { speed = 3 }`, wantErr: "failed to decode"},
		{name: "unknown mode", src: `engine { mode = "fast" }`, wantErr: "unknown mode"},
		{name: "unknown oracle", src: `engine { oracle = "treys" }`, wantErr: "unknown oracle"},
		{name: "negative workers", src: `engine { workers = -1 }`, wantErr: "workers"},
		{name: "bad log level", src: `log { level = "loud" }`, wantErr: "log level"},
		{name: "bad log format", src: `log { format = "xml" }`, wantErr: "log format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tc.src), tc.name+".hcl")
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}
