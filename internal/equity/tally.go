package equity

import (
	"github.com/lox/pokerodds/internal/oracle"
	"github.com/lox/pokerodds/poker"
)

// Tally is the outcome count of a run. Players are indexed as in the input.
type Tally struct {
	Wins       []uint64                     `json:"wins"`
	Ties       uint64                       `json:"ties"`
	Histograms [][poker.NumHandTypes]uint64 `json:"histograms"`
}

// NewTally returns an empty tally for players players.
func NewTally(players int) *Tally {
	return &Tally{
		Wins:       make([]uint64, players),
		Histograms: make([][poker.NumHandTypes]uint64, players),
	}
}

// Trials is the number of recorded trials: every trial is one win or one tie.
func (t *Tally) Trials() uint64 {
	n := t.Ties
	for _, w := range t.Wins {
		n += w
	}
	return n
}

func (t *Tally) record(winner oracle.Winner, results []oracle.Result) {
	if winner == oracle.Tie {
		t.Ties++
	} else {
		t.Wins[winner]++
	}
	for i, r := range results {
		t.Histograms[i][r.Category]++
	}
}

// recorder receives one trial outcome at a time. Implementations are owned
// by a single goroutine.
type recorder interface {
	record(winner oracle.Winner, results []oracle.Result)
}

const lineWords = 64 / 8 // uint64 counters per cache line

// rowStride pads a shard row of n counters to whole cache lines plus one
// spare line, so neighbouring rows never share a line even when the backing
// array is not line aligned.
func rowStride(n int) int {
	return (n+lineWords-1)/lineWords*lineWords + lineWords
}

// ShardedTally holds one counter row per worker in two flat regions:
// outcomes (players win slots, then the tie slot) and per-player category
// histograms. Each shard is written by exactly one worker, so no counter
// needs a lock or an atomic.
type ShardedTally struct {
	shards  int
	players int

	outcomeStride int
	outcomes      []uint64

	histStride int
	hists      []uint64
}

// NewShardedTally allocates shards zeroed rows for players players.
func NewShardedTally(shards, players int) *ShardedTally {
	s := &ShardedTally{
		shards:        shards,
		players:       players,
		outcomeStride: rowStride(players + 1),
		histStride:    rowStride(players * poker.NumHandTypes),
	}
	s.outcomes = make([]uint64, shards*s.outcomeStride)
	s.hists = make([]uint64, shards*s.histStride)
	return s
}

// view returns the writable counters of shard i.
func (s *ShardedTally) view(i int) *shard {
	o := i * s.outcomeStride
	h := i * s.histStride
	return &shard{
		players:  s.players,
		outcomes: s.outcomes[o : o+s.players+1 : o+s.players+1],
		hists:    s.hists[h : h+s.players*poker.NumHandTypes : h+s.players*poker.NumHandTypes],
	}
}

// Reduce sums every shard position-wise into a Tally. Addition commutes, so
// the result does not depend on which worker handled which trial.
func (s *ShardedTally) Reduce() *Tally {
	t := NewTally(s.players)
	for i := range s.shards {
		sh := s.view(i)
		for p := range s.players {
			t.Wins[p] += sh.outcomes[p]
			for c := range poker.NumHandTypes {
				t.Histograms[p][c] += sh.hists[p*poker.NumHandTypes+c]
			}
		}
		t.Ties += sh.outcomes[s.players]
	}
	return t
}

// shard is one worker's slice of a ShardedTally.
type shard struct {
	players  int
	outcomes []uint64
	hists    []uint64
}

func (sh *shard) record(winner oracle.Winner, results []oracle.Result) {
	if winner == oracle.Tie {
		sh.outcomes[sh.players]++
	} else {
		sh.outcomes[winner]++
	}
	for i, r := range results {
		sh.hists[i*poker.NumHandTypes+int(r.Category)]++
	}
}
