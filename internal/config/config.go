// Package config loads poker-odds settings from an optional HCL file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerodds/internal/equity"
	"github.com/lox/pokerodds/internal/logging"
	"github.com/lox/pokerodds/internal/oracle"
	"github.com/lox/pokerodds/internal/trials"
)

// Config is the complete file configuration with defaults applied.
type Config struct {
	Engine EngineSettings
	Log    LogSettings
}

type fileConfig struct {
	Engine *EngineSettings `hcl:"engine,block"`
	Log    *LogSettings    `hcl:"log,block"`
}

// EngineSettings mirrors equity.Config plus the oracle choice.
type EngineSettings struct {
	Mode            string `hcl:"mode,optional"`
	Iterations      int    `hcl:"iterations,optional"`
	Parallel        *bool  `hcl:"parallel,optional"`
	Workers         int    `hcl:"workers,optional"`
	ExhaustiveLimit int    `hcl:"exhaustive_limit,optional"`
	BatchSize       int    `hcl:"batch_size,optional"`
	Seed            int64  `hcl:"seed,optional"`
	Oracle          string `hcl:"oracle,optional"`
}

// LogSettings selects the log level and output format.
type LogSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	d := equity.DefaultConfig()
	parallel := d.Parallel
	return &Config{
		Engine: EngineSettings{
			Mode:            d.Mode.String(),
			Iterations:      d.Iterations,
			Parallel:        &parallel,
			ExhaustiveLimit: int(d.ExhaustiveLimit),
			BatchSize:       d.BatchSize,
			Oracle:          "native",
		},
		Log: LogSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads filename. An empty name or a missing file yields Default.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills unset values from Default.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if e := fc.Engine; e != nil {
		if e.Mode != "" {
			cfg.Engine.Mode = e.Mode
		}
		if e.Iterations != 0 {
			cfg.Engine.Iterations = e.Iterations
		}
		if e.Parallel != nil {
			cfg.Engine.Parallel = e.Parallel
		}
		if e.ExhaustiveLimit != 0 {
			cfg.Engine.ExhaustiveLimit = e.ExhaustiveLimit
		}
		if e.BatchSize != 0 {
			cfg.Engine.BatchSize = e.BatchSize
		}
		if e.Oracle != "" {
			cfg.Engine.Oracle = e.Oracle
		}
		cfg.Engine.Workers = e.Workers
		cfg.Engine.Seed = e.Seed
	}
	if l := fc.Log; l != nil {
		if l.Level != "" {
			cfg.Log.Level = l.Level
		}
		if l.Format != "" {
			cfg.Log.Format = l.Format
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks names and ranges.
func (c *Config) Validate() error {
	if _, err := c.Engine.EquityConfig(); err != nil {
		return err
	}
	if _, err := oracle.ByName(c.Engine.Oracle); err != nil {
		return err
	}
	if c.Engine.ExhaustiveLimit < 0 {
		return errors.New("exhaustive_limit must be non-negative")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q (want console or json)", c.Log.Format)
	}
	return nil
}

// EquityConfig converts the engine block into an equity.Config.
func (s EngineSettings) EquityConfig() (equity.Config, error) {
	mode, err := trials.ParseMode(s.Mode)
	if err != nil {
		return equity.Config{}, err
	}
	cfg := equity.Config{
		Mode:            mode,
		Iterations:      s.Iterations,
		Parallel:        s.Parallel == nil || *s.Parallel,
		Workers:         s.Workers,
		ExhaustiveLimit: uint64(max(s.ExhaustiveLimit, 0)),
		BatchSize:       s.BatchSize,
		Seed:            s.Seed,
	}
	return cfg, cfg.Validate()
}
