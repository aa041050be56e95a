package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/lox/pokerodds/internal/config"
	"github.com/lox/pokerodds/internal/equity"
	"github.com/lox/pokerodds/internal/logging"
	"github.com/lox/pokerodds/internal/oracle"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config   string `help:"HCL configuration file" type:"path" env:"POKER_ODDS_CONFIG" placeholder:"FILE"`
	Debug    bool   `help:"Enable debug logging" env:"POKER_ODDS_DEBUG"`
	JSONLogs bool   `name:"json-logs" help:"Log JSON instead of console output" env:"POKER_ODDS_JSON_LOGS"`
	NoColor  bool   `name:"no-color" help:"Disable colored output"`
}

// setup loads the configuration file and builds the logger.
func (g *Globals) setup() (zerolog.Logger, *config.Config, error) {
	if g.NoColor || termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.Load(g.Config)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	structured := g.JSONLogs || cfg.Log.Format == "json"
	if g.Debug || level == zerolog.InfoLevel {
		if structured {
			return logging.SetupStructuredLogger(g.Debug), cfg, nil
		}
		return logging.SetupLogger(g.Debug), cfg, nil
	}
	return logging.New(os.Stderr, level, structured), cfg, nil
}

// EngineFlags override the engine block of the configuration file.
type EngineFlags struct {
	Iterations *int   `short:"i" help:"Number of Monte Carlo iterations" env:"POKER_ODDS_ITERATIONS"`
	Mode       string `help:"Trial mode: auto, exhaustive or random" env:"POKER_ODDS_MODE"`
	Parallel   *bool  `help:"Spread trials over worker goroutines (--parallel=false to disable)" env:"POKER_ODDS_PARALLEL"`
	Serial     bool   `help:"Run every trial on one goroutine, overriding --parallel" env:"POKER_ODDS_SERIAL"`
	Workers    *int   `help:"Worker goroutines (default GOMAXPROCS)" env:"POKER_ODDS_WORKERS"`
	Seed       *int64 `help:"Random seed for reproducible results" env:"POKER_ODDS_SEED"`
	Oracle     string `help:"Hand evaluator: native or paulhankin" env:"POKER_ODDS_ORACLE"`
}

// apply returns s with every flag that was given written over it.
func (f EngineFlags) apply(s config.EngineSettings) config.EngineSettings {
	if f.Iterations != nil {
		s.Iterations = *f.Iterations
	}
	if f.Mode != "" {
		s.Mode = f.Mode
	}
	if f.Parallel != nil {
		parallel := *f.Parallel
		s.Parallel = &parallel
	}
	if f.Serial {
		parallel := false
		s.Parallel = &parallel
	}
	if f.Workers != nil {
		s.Workers = *f.Workers
	}
	if f.Seed != nil {
		s.Seed = *f.Seed
	}
	if f.Oracle != "" {
		s.Oracle = f.Oracle
	}
	return s
}

// newEngine builds an equity engine from settings.
func newEngine(logger zerolog.Logger, s config.EngineSettings) (*equity.Engine, error) {
	ecfg, err := s.EquityConfig()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", equity.ErrInvalidInput, err)
	}
	o, err := oracle.ByName(s.Oracle)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", equity.ErrInvalidInput, err)
	}
	return equity.NewEngine(logger, ecfg, equity.WithOracle(o))
}

// signalContext is cancelled on interrupt or SIGTERM.
func signalContext(logger zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			logger.Info().Str("signal", sig.String()).Msg("Received signal, stopping")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
