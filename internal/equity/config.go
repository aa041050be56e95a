package equity

import (
	"errors"
	"fmt"

	"github.com/lox/pokerodds/internal/trials"
)

const (
	DefaultIterations = 1_000_000
	DefaultBatchSize  = 512
)

// Config controls how a run generates and distributes trials.
type Config struct {
	// Mode selects exhaustive or random completions. ModeAuto enumerates
	// whenever that is no more work than the iteration budget.
	Mode trials.Mode `json:"mode"`
	// Iterations is the sample count for random runs.
	Iterations int `json:"iterations"`
	// Parallel spreads trials over worker goroutines.
	Parallel bool `json:"parallel"`
	// Workers caps the parallel worker count; zero means GOMAXPROCS.
	Workers int `json:"workers,omitempty"`
	// ExhaustiveLimit is the completion count ModeAuto always enumerates.
	ExhaustiveLimit uint64 `json:"exhaustive_limit,omitempty"`
	// BatchSize is the number of boards handed to a worker at once.
	BatchSize int `json:"batch_size,omitempty"`
	// Seed fixes the random stream; zero picks a fresh seed per run.
	Seed int64 `json:"seed,omitempty"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Mode:            trials.ModeAuto,
		Iterations:      DefaultIterations,
		Parallel:        true,
		ExhaustiveLimit: trials.DefaultExhaustiveLimit,
		BatchSize:       DefaultBatchSize,
	}
}

// Validate checks the configuration for obvious errors.
func (c Config) Validate() error {
	switch c.Mode {
	case trials.ModeAuto, trials.ModeExhaustive, trials.ModeRandom:
	default:
		return fmt.Errorf("unknown mode %s", c.Mode)
	}
	if c.Iterations < 0 {
		return errors.New("iterations must be non-negative")
	}
	if c.Mode == trials.ModeRandom && c.Iterations == 0 {
		return errors.New("random mode requires iterations > 0")
	}
	if c.Workers < 0 {
		return errors.New("workers must be non-negative")
	}
	if c.BatchSize < 0 {
		return errors.New("batch size must be non-negative")
	}
	return nil
}
