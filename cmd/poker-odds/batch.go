package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/lox/pokerodds/internal/config"
)

type BatchCmd struct {
	File          string `arg:"" type:"existingfile" help:"TOML file with [[scenario]] tables"`
	Possibilities bool   `short:"p" help:"Show hand category probabilities"`
	Output        string `short:"o" type:"path" help:"Also write all results as JSON to this file"`

	EngineFlags `embed:""`
}

// scenario is one [[scenario]] table. Iterations and Mode override the
// engine settings for that scenario only.
type scenario struct {
	Name       string   `toml:"name"`
	Hands      []string `toml:"hands"`
	Board      string   `toml:"board"`
	Dead       string   `toml:"dead"`
	Iterations int      `toml:"iterations"`
	Mode       string   `toml:"mode"`
}

type scenarioFile struct {
	Scenarios []scenario `toml:"scenario"`
}

func loadScenarios(path string) ([]scenario, error) {
	var f scenarioFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("no [[scenario]] tables in %s", path)
	}
	for i := range f.Scenarios {
		if f.Scenarios[i].Name == "" {
			f.Scenarios[i].Name = fmt.Sprintf("scenario %d", i+1)
		}
	}
	return f.Scenarios, nil
}

func (c *BatchCmd) Run(g *Globals) error {
	logger, cfg, err := g.setup()
	if err != nil {
		return err
	}
	scenarios, err := loadScenarios(c.File)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	base := c.apply(cfg.Engine)
	var reports []report
	for i, sc := range scenarios {
		engine, err := newEngine(logger, sc.settings(base))
		if err != nil {
			return fmt.Errorf("%s: %w", sc.Name, err)
		}
		r, err := calculate(ctx, engine, sc.Name, sc.Hands, sc.Board, sc.Dead)
		if err != nil {
			return fmt.Errorf("%s: %w", sc.Name, err)
		}
		logScenario(logger, r)

		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		displayReport(os.Stdout, r, c.Possibilities)
		reports = append(reports, r)
	}

	return writeOutput(c.Output, reports)
}

// settings applies the scenario overrides to base.
func (sc scenario) settings(base config.EngineSettings) config.EngineSettings {
	if sc.Iterations != 0 {
		base.Iterations = sc.Iterations
	}
	if sc.Mode != "" {
		base.Mode = sc.Mode
	}
	return base
}

func logScenario(logger zerolog.Logger, r report) {
	logger.Debug().
		Str("scenario", r.Name).
		Str("run_id", r.RunID).
		Uint64("trials", r.Trials).
		Msg("Scenario complete")
}
