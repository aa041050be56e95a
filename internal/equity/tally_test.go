package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerodds/internal/oracle"
	"github.com/lox/pokerodds/internal/randutil"
	"github.com/lox/pokerodds/poker"
)

type outcome struct {
	winner  oracle.Winner
	results []oracle.Result
}

func randomOutcomes(players, n int) []outcome {
	rng := randutil.New(11)
	out := make([]outcome, n)
	for i := range out {
		w := oracle.Winner(rng.IntN(players+1) - 1)
		results := make([]oracle.Result, players)
		for p := range results {
			results[p].Category = poker.HandType(rng.IntN(poker.NumHandTypes))
		}
		out[i] = outcome{winner: w, results: results}
	}
	return out
}

func TestShardedTallyReduce(t *testing.T) {
	t.Parallel()
	const players, shards = 3, 4
	outcomes := randomOutcomes(players, 5000)

	want := NewTally(players)
	for _, o := range outcomes {
		want.record(o.winner, o.results)
	}

	// The same outcomes split across shards in two different ways must
	// reduce to the same tally as recording them in one place.
	byIndex := NewShardedTally(shards, players)
	for i, o := range outcomes {
		byIndex.view(i%shards).record(o.winner, o.results)
	}
	reversed := NewShardedTally(shards, players)
	for i := len(outcomes) - 1; i >= 0; i-- {
		o := outcomes[i]
		reversed.view((i*7+3)%shards).record(o.winner, o.results)
	}
	single := NewShardedTally(1, players)
	for _, o := range outcomes {
		single.view(0).record(o.winner, o.results)
	}

	assert.Equal(t, want, byIndex.Reduce())
	assert.Equal(t, want, reversed.Reduce())
	assert.Equal(t, want, single.Reduce())
	assert.Equal(t, uint64(len(outcomes)), want.Trials())
}

func TestShardedTallyIsolation(t *testing.T) {
	t.Parallel()
	s := NewShardedTally(3, 2)
	s.view(1).record(oracle.Tie, []oracle.Result{{Category: poker.Flush}, {Category: poker.Flush}})
	s.view(1).record(0, []oracle.Result{{Category: poker.Pair}, {Category: poker.HighCard}})

	assert.Equal(t, []uint64{0, 0, 0}, s.view(0).outcomes)
	assert.Equal(t, []uint64{1, 0, 1}, s.view(1).outcomes, "wins then the tie slot")
	assert.Equal(t, []uint64{0, 0, 0}, s.view(2).outcomes)

	for _, i := range []int{0, 2} {
		for _, n := range s.view(i).hists {
			require.Zero(t, n)
		}
	}
}

func TestRowStride(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 3, 8, 9, 20, 230} {
		stride := rowStride(n)
		assert.Zero(t, stride%lineWords, "stride %d for %d counters is not whole lines", stride, n)
		assert.GreaterOrEqual(t, stride-n, lineWords, "need a full spare line after %d counters", n)
	}
}
