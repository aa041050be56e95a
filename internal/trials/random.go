package trials

import (
	"iter"
	rand "math/rand/v2"
	"slices"

	"github.com/lox/pokerodds/internal/randutil"
	"github.com/lox/pokerodds/poker"
)

// Random yields a fixed number of independently sampled completions.
type Random struct {
	deck       []poker.Card
	length     int
	iterations int
	rng        *rand.Rand
}

var _ Source = (*Random)(nil)

// NewRandom copies deck. Each completion is a partial Fisher-Yates draw of
// length distinct cards over a private working copy, so one draw never
// depletes the deck seen by the next. A nil rng gets a randomly seeded one.
//
// The sequence depends only on the rng state, so a seeded generator makes
// runs reproducible. All consumes the generator; iterate it once.
func NewRandom(deck []poker.Card, length, iterations int, rng *rand.Rand) *Random {
	if rng == nil {
		rng = randutil.New(randutil.Seed(0))
	}
	return &Random{
		deck:       slices.Clone(deck),
		length:     length,
		iterations: max(iterations, 0),
		rng:        rng,
	}
}

func (r *Random) Mode() Mode  { return ModeRandom }
func (r *Random) Length() int { return r.length }

func (r *Random) Count() uint64 {
	if r.length < 0 || r.length > len(r.deck) {
		return 0
	}
	return uint64(r.iterations)
}

func (r *Random) All() iter.Seq[[]poker.Card] {
	return func(yield func([]poker.Card) bool) {
		if r.Count() == 0 {
			return
		}
		work := slices.Clone(r.deck)
		n := len(work)
		for range r.iterations {
			for i := range r.length {
				j := i + r.rng.IntN(n-i)
				work[i], work[j] = work[j], work[i]
			}
			if !yield(work[:r.length]) {
				return
			}
		}
	}
}
