// Package equity computes showdown probabilities for two or more hold'em
// hands.
//
// Every run deals the missing board cards from the cards not otherwise in
// play, asks an oracle for each player's hand on the completed board and
// counts wins, ties and hand categories. Completions are either enumerated
// or sampled (see package trials) and are played on the calling goroutine
// or spread over a pool of workers that each own a shard of the counters.
package equity

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lox/pokerodds/internal/oracle"
	"github.com/lox/pokerodds/internal/randutil"
	"github.com/lox/pokerodds/internal/trials"
	"github.com/lox/pokerodds/poker"
)

// Engine runs evaluations with a fixed configuration. It is safe for
// concurrent use; every Evaluate call builds and tears down its own workers.
type Engine struct {
	logger zerolog.Logger
	cfg    Config
	oracle oracle.Oracle
	clock  quartz.Clock
}

// Option customises an Engine.
type Option func(*Engine)

// WithOracle replaces the native evaluator.
func WithOracle(o oracle.Oracle) Option {
	return func(e *Engine) { e.oracle = o }
}

// WithClock sets the clock used to time runs.
func WithClock(c quartz.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// NewEngine validates cfg and returns an Engine.
func NewEngine(logger zerolog.Logger, cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.ExhaustiveLimit == 0 {
		cfg.ExhaustiveLimit = trials.DefaultExhaustiveLimit
	}

	e := &Engine{
		logger: logger.With().Str("component", "equity").Logger(),
		cfg:    cfg,
		oracle: oracle.Native{},
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine configuration with defaults applied.
func (e *Engine) Config() Config { return e.cfg }

// Evaluate computes the outcome distribution for in. It blocks until every
// trial has been played, the context is cancelled or a trial fails; no
// partial result is ever returned.
func (e *Engine) Evaluate(ctx context.Context, in Input) (*Result, error) {
	known, err := in.known()
	if err != nil {
		return nil, err
	}
	deck := poker.Remaining(known)
	length := 5 - len(in.Board)

	seed := randutil.Seed(e.cfg.Seed)
	src, err := trials.Select(deck, length, trials.SelectOptions{
		Mode:            e.cfg.Mode,
		Iterations:      e.cfg.Iterations,
		ExhaustiveLimit: e.cfg.ExhaustiveLimit,
		RNG:             randutil.New(seed),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	count := src.Count()
	if count == 0 {
		return nil, fmt.Errorf("%w: %d cards left, %d needed to complete the board",
			ErrEmptyTrialSet, len(deck), length)
	}

	workers := 1
	if e.cfg.Parallel {
		want := e.cfg.Workers
		if want == 0 {
			want = runtime.GOMAXPROCS(0)
		}
		workers = workerCount(want, count, e.cfg.BatchSize)
	}

	runID := uuid.New()
	logger := e.logger.With().Str("run_id", runID.String()).Logger()
	logger.Debug().
		Str("mode", src.Mode().String()).
		Str("oracle", e.oracle.Name()).
		Int("players", len(in.Hands)).
		Uint64("trials", count).
		Int("workers", workers).
		Bool("parallel", e.cfg.Parallel).
		Msg("Starting evaluation")

	j := &job{oracle: e.oracle, hands: in.Hands, board: in.Board}
	start := e.clock.Now()

	var tally *Tally
	if e.cfg.Parallel {
		tally, err = runParallel(ctx, j, src, workers, e.cfg.BatchSize)
	} else {
		tally, err = runSequential(ctx, j, src)
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			logger.Error().Err(err).Msg("Evaluation failed")
		}
		return nil, err
	}

	res := &Result{
		RunID:    runID,
		Mode:     src.Mode(),
		Oracle:   e.oracle.Name(),
		Trials:   tally.Trials(),
		Workers:  workers,
		Duration: e.clock.Since(start),
		Tally:    *tally,
	}
	if res.Mode == trials.ModeRandom {
		res.Seed = seed
	}

	logger.Debug().
		Uint64("trials", res.Trials).
		Dur("duration", res.Duration).
		Msg("Evaluation complete")
	return res, nil
}

// HeadsUp returns the outright win probabilities of hole against adversary.
// The remainder, 1 - p0 - p1, is the probability of a split pot. Cards are
// given one per string, e.g. []string{"Ah", "Ad"}; board may be empty.
func HeadsUp(ctx context.Context, hole, adversary, board []string, parallel bool, iterations int) (float64, float64, error) {
	in, err := ParseInput(
		[]string{strings.Join(hole, ""), strings.Join(adversary, "")},
		strings.Join(board, ""), "",
	)
	if err != nil {
		return 0, 0, err
	}

	cfg := DefaultConfig()
	cfg.Parallel = parallel
	cfg.Iterations = iterations
	e, err := NewEngine(zerolog.Nop(), cfg)
	if err != nil {
		return 0, 0, err
	}

	res, err := e.Evaluate(ctx, in)
	if err != nil {
		return 0, 0, err
	}
	p := res.WinProbabilities()
	return p[0], p[1], nil
}
