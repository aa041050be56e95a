package trials

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerodds/internal/randutil"
	"github.com/lox/pokerodds/poker"
)

func collect(t *testing.T, src Source) [][]poker.Card {
	t.Helper()
	var out [][]poker.Card
	for board := range src.All() {
		require.Len(t, board, src.Length())
		out = append(out, slices.Clone(board))
	}
	return out
}

func TestBinomial(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n, k int
		want uint64
	}{
		{52, 5, 2_598_960},
		{48, 5, 1_712_304},
		{45, 2, 990},
		{44, 1, 44},
		{5, 0, 1},
		{0, 0, 1},
		{3, 5, 0},
		{5, -1, 0},
		{52, 26, 495_918_532_948_104},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Binomial(tc.n, tc.k), "C(%d,%d)", tc.n, tc.k)
	}
}

func TestExhaustiveSmallDeck(t *testing.T) {
	t.Parallel()
	deck := poker.MustParseCards("2c3c4c5c6c7c")
	src := NewExhaustive(deck, 3)
	assert.Equal(t, ModeExhaustive, src.Mode())
	assert.Equal(t, uint64(20), src.Count())

	boards := collect(t, src)
	require.Len(t, boards, 20)

	seen := make(map[poker.Hand]bool)
	for _, b := range boards {
		h := poker.NewHand(b...)
		require.Equal(t, 3, h.CountCards(), "cards within a completion are distinct")
		require.False(t, seen[h], "completion %s repeated", poker.FormatCards(b))
		seen[h] = true
	}
	assert.Equal(t, "2c 3c 4c", poker.FormatCards(boards[0]))
	assert.Equal(t, "5c 6c 7c", poker.FormatCards(boards[19]))
}

func TestExhaustiveEdgeLengths(t *testing.T) {
	t.Parallel()
	deck := poker.MustParseCards("2c3c")

	boards := collect(t, NewExhaustive(deck, 0))
	require.Len(t, boards, 1, "zero length is one empty completion")
	assert.Empty(t, boards[0])

	assert.Empty(t, collect(t, NewExhaustive(deck, 3)))
	assert.Zero(t, NewExhaustive(deck, 3).Count())

	assert.Len(t, collect(t, NewExhaustive(nil, 0)), 1)
}

func TestExhaustiveStopsEarly(t *testing.T) {
	t.Parallel()
	n := 0
	for range NewExhaustive(poker.FullDeck(), 5).All() {
		n++
		if n == 10 {
			break
		}
	}
	assert.Equal(t, 10, n)
}

func TestExhaustiveFullFlop(t *testing.T) {
	if testing.Short() {
		t.Skip("enumerates 1.7M boards")
	}
	t.Parallel()
	known := poker.NewHand(poker.MustParseCards("AhAd2c2d")...)
	src := NewExhaustive(poker.Remaining(known), 5)

	seen := make(map[poker.Hand]struct{}, 1_712_304)
	for board := range src.All() {
		h := poker.NewHand(board...)
		require.Equal(t, 5, h.CountCards())
		require.Zero(t, h&known, "known card dealt")
		seen[h] = struct{}{}
	}
	assert.Len(t, seen, 1_712_304)
}

func TestRandomReproducible(t *testing.T) {
	t.Parallel()
	deck := poker.Remaining(poker.NewHand(poker.MustParseCards("AhAd2c2d")...))

	a := collect(t, NewRandom(deck, 5, 500, randutil.New(7)))
	b := collect(t, NewRandom(deck, 5, 500, randutil.New(7)))
	c := collect(t, NewRandom(deck, 5, 500, randutil.New(8)))
	require.Len(t, a, 500)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	for _, board := range a {
		assert.Equal(t, 5, poker.NewHand(board...).CountCards())
	}
}

func TestRandomCoversDeck(t *testing.T) {
	t.Parallel()
	deck := poker.MustParseCards("2c3c4c5c6c")
	counts := make(map[poker.Card]int)
	src := NewRandom(deck, 1, 5000, randutil.New(3))
	for board := range src.All() {
		counts[board[0]]++
	}
	require.Len(t, counts, 5)
	for c, n := range counts {
		assert.InDelta(t, 1000, n, 150, "card %s drawn %d times", c, n)
	}
}

func TestRandomTooFewCards(t *testing.T) {
	t.Parallel()
	src := NewRandom(poker.MustParseCards("2c3c"), 3, 10, randutil.New(1))
	assert.Zero(t, src.Count())
	assert.Empty(t, collect(t, src))
}

func TestSelect(t *testing.T) {
	t.Parallel()
	flop := poker.Remaining(poker.NewHand(poker.MustParseCards("AhAd2c2d 7s8s9s")...))
	preflop := poker.Remaining(poker.NewHand(poker.MustParseCards("AhAd2c2d")...))

	tests := []struct {
		name     string
		deck     []poker.Card
		length   int
		opts     SelectOptions
		wantMode Mode
		wantErr  bool
	}{
		{name: "flop auto enumerates", deck: flop, length: 2, opts: SelectOptions{Iterations: 1000}, wantMode: ModeExhaustive},
		{name: "preflop auto samples", deck: preflop, length: 5, opts: SelectOptions{Iterations: 10000}, wantMode: ModeRandom},
		{name: "preflop auto with large budget enumerates", deck: preflop, length: 5, opts: SelectOptions{Iterations: 2_000_000}, wantMode: ModeExhaustive},
		{name: "preflop auto with raised limit", deck: preflop, length: 5, opts: SelectOptions{Iterations: 10, ExhaustiveLimit: 2_000_000}, wantMode: ModeExhaustive},
		{name: "random forced on flop", deck: flop, length: 2, opts: SelectOptions{Mode: ModeRandom, Iterations: 10}, wantMode: ModeRandom},
		{name: "exhaustive forced preflop", deck: preflop, length: 5, opts: SelectOptions{Mode: ModeExhaustive}, wantMode: ModeExhaustive},
		{name: "river is always exhaustive", deck: flop, length: 0, opts: SelectOptions{Mode: ModeRandom, Iterations: 10}, wantMode: ModeExhaustive},
		{name: "random without iterations", deck: flop, length: 2, opts: SelectOptions{Mode: ModeRandom}, wantErr: true},
		{name: "auto preflop without iterations", deck: preflop, length: 5, opts: SelectOptions{}, wantErr: true},
		{name: "negative length", deck: flop, length: -1, wantErr: true},
		{name: "unknown mode", deck: flop, length: 2, opts: SelectOptions{Mode: Mode(9)}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			src, err := Select(tc.deck, tc.length, tc.opts)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidOptions)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantMode, src.Mode())
			assert.Equal(t, tc.length, src.Length())
		})
	}
}

func TestSelectRiverSingleTrial(t *testing.T) {
	t.Parallel()
	src, err := Select(poker.MustParseCards("2c3c"), 0, SelectOptions{Mode: ModeRandom, Iterations: 100})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), src.Count())
	assert.Len(t, collect(t, src), 1)
}

func TestParseMode(t *testing.T) {
	t.Parallel()
	for _, m := range []Mode{ModeAuto, ModeExhaustive, ModeRandom} {
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	var m Mode
	require.NoError(t, m.UnmarshalText([]byte("RANDOM")))
	assert.Equal(t, ModeRandom, m)
	text, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "random", string(text))

	_, err = ParseMode("montecarlo")
	require.Error(t, err)
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
