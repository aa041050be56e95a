package trials

import (
	"iter"
	"slices"

	"github.com/lox/pokerodds/poker"
)

// Exhaustive yields every length-card combination of a deck exactly once,
// in lexicographic order of deck positions.
type Exhaustive struct {
	deck   []poker.Card
	length int
}

var _ Source = (*Exhaustive)(nil)

// NewExhaustive copies deck. A zero length yields one empty completion; a
// length above len(deck) yields nothing.
func NewExhaustive(deck []poker.Card, length int) *Exhaustive {
	return &Exhaustive{deck: slices.Clone(deck), length: length}
}

func (e *Exhaustive) Mode() Mode    { return ModeExhaustive }
func (e *Exhaustive) Length() int   { return e.length }
func (e *Exhaustive) Count() uint64 { return Binomial(len(e.deck), e.length) }

func (e *Exhaustive) All() iter.Seq[[]poker.Card] {
	return func(yield func([]poker.Card) bool) {
		n, k := len(e.deck), e.length
		if k < 0 || k > n {
			return
		}

		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		buf := make([]poker.Card, k)

		for {
			for i, j := range idx {
				buf[i] = e.deck[j]
			}
			if !yield(buf) {
				return
			}

			// Advance the rightmost index that still has room.
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}
