package equity

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/lox/pokerodds/internal/trials"
	"github.com/lox/pokerodds/poker"
)

// Result is the outcome of one Evaluate call.
type Result struct {
	RunID    uuid.UUID     `json:"run_id"`
	Mode     trials.Mode   `json:"mode"`
	Oracle   string        `json:"oracle"`
	Trials   uint64        `json:"trials"`
	Workers  int           `json:"workers"`
	Seed     int64         `json:"seed,omitempty"`
	Duration time.Duration `json:"duration_ns"`
	Tally    Tally         `json:"tally"`
}

// WinProbabilities returns each player's outright win probability in input
// order. Ties are excluded; see TieProbability.
func (r *Result) WinProbabilities() []float64 {
	out := make([]float64, len(r.Tally.Wins))
	for i := range out {
		out[i] = r.ratio(r.Tally.Wins[i])
	}
	return out
}

// TieProbability returns the probability that two or more players share the
// best hand. It and WinProbabilities sum to one.
func (r *Result) TieProbability() float64 {
	return r.ratio(r.Tally.Ties)
}

// CategoryProbability returns how often player ends with a hand of category
// cat.
func (r *Result) CategoryProbability(player int, cat poker.HandType) float64 {
	return r.ratio(r.Tally.Histograms[player][cat])
}

// ConfidenceInterval returns a 95% normal-approximation interval for the win
// probability of player. Exhaustive runs are exact and get a zero-width
// interval.
func (r *Result) ConfidenceInterval(player int) (lo, hi float64) {
	p := r.WinProbabilities()[player]
	if r.Mode == trials.ModeExhaustive || r.Trials == 0 {
		return p, p
	}
	se := math.Sqrt(p * (1 - p) / float64(r.Trials))
	margin := 1.96 * se
	return max(0, p-margin), min(1, p+margin)
}

func (r *Result) ratio(n uint64) float64 {
	total := r.Tally.Trials()
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}
