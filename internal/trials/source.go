// Package trials produces the board completions a simulation is run over.
//
// A Source either enumerates every completion of the missing board cards
// exactly once (exhaustive) or draws a fixed number of independent random
// completions (random). Select applies the dispatch policy between the two.
package trials

import (
	"errors"
	"fmt"
	"iter"
	rand "math/rand/v2"
	"strings"

	"github.com/lox/pokerodds/poker"
)

// Mode chooses how completions are generated.
type Mode uint8

const (
	// ModeAuto enumerates when that is no more work than sampling.
	ModeAuto Mode = iota
	ModeExhaustive
	ModeRandom
)

var modeNames = [...]string{"auto", "exhaustive", "random"}

func (m Mode) String() string {
	if int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// ParseMode accepts the names printed by Mode.String, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (want auto, exhaustive or random)", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Source yields board completions. The slice passed to each yield is reused
// between iterations and must be copied if retained.
type Source interface {
	Mode() Mode
	// Length is the number of cards in every completion.
	Length() int
	// Count is the number of completions All yields.
	Count() uint64
	All() iter.Seq[[]poker.Card]
}

// DefaultExhaustiveLimit is the largest completion count ModeAuto enumerates
// regardless of the iteration budget. It keeps every flop and turn exact.
const DefaultExhaustiveLimit = 100_000

// ErrInvalidOptions reports a Select configuration that cannot produce trials.
var ErrInvalidOptions = errors.New("invalid trial options")

// SelectOptions configures Select.
type SelectOptions struct {
	Mode Mode
	// Iterations is the number of random completions. Required for ModeRandom.
	Iterations int
	// ExhaustiveLimit overrides DefaultExhaustiveLimit when non-zero.
	ExhaustiveLimit uint64
	// RNG drives random completions. A seeded generator is created when nil.
	RNG *rand.Rand
}

// Select returns the Source for completing a board with length cards drawn
// from deck.
//
// A zero length always gets a single empty exhaustive completion. ModeAuto
// enumerates when C(len(deck), length) is within max(ExhaustiveLimit,
// Iterations) and samples otherwise.
func Select(deck []poker.Card, length int, opts SelectOptions) (Source, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative completion length %d", ErrInvalidOptions, length)
	}
	if length == 0 {
		return NewExhaustive(deck, 0), nil
	}

	switch opts.Mode {
	case ModeExhaustive:
		return NewExhaustive(deck, length), nil
	case ModeRandom:
		if opts.Iterations <= 0 {
			return nil, fmt.Errorf("%w: random mode needs a positive iteration count, got %d", ErrInvalidOptions, opts.Iterations)
		}
		return NewRandom(deck, length, opts.Iterations, opts.RNG), nil
	case ModeAuto:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidOptions, opts.Mode)
	}

	limit := opts.ExhaustiveLimit
	if limit == 0 {
		limit = DefaultExhaustiveLimit
	}
	if opts.Iterations > 0 {
		limit = max(limit, uint64(opts.Iterations))
	}
	if Binomial(len(deck), length) <= limit {
		return NewExhaustive(deck, length), nil
	}
	if opts.Iterations <= 0 {
		return nil, fmt.Errorf("%w: %d completions exceed the exhaustive limit and no iteration count was given",
			ErrInvalidOptions, Binomial(len(deck), length))
	}
	return NewRandom(deck, length, opts.Iterations, opts.RNG), nil
}

// Binomial returns C(n, k), or 0 when k is out of range.
func Binomial(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	r := uint64(1)
	for i := range k {
		r = r * uint64(n-i) / uint64(i+1)
	}
	return r
}
