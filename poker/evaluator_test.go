package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hand(t testing.TB, s string) Hand {
	t.Helper()
	cards, err := ParseCards(s)
	require.NoError(t, err)
	return NewHand(cards...)
}

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards string
		want  HandType
	}{
		{"As Kh Qd Jc 9s 7h 5d", HighCard},
		{"As Ah Kd Qc Js 9h 7d", Pair},
		{"As Ah Kd Kc Qs 9h 7d", TwoPair},
		{"As Ah Kd Kc Qs Qh 7d", TwoPair},
		{"As Ah Ad Kc Qs 9h 7d", ThreeOfAKind},
		{"As Kh Qd Jc Ts 9h 7d", Straight},
		{"Ah 2d 3c 4s 5h 9c Kd", Straight},
		{"As Ks 9s 7s 2s Kh Kd", Flush},
		{"As Ah Ad Kc Ks 9h 7d", FullHouse},
		{"As Ah Ad Kc Ks Kh 7d", FullHouse},
		{"As Ah Ad Ac Ks 9h 7d", FourOfAKind},
		{"9s 8s 7s 6s 5s Ah Ad", StraightFlush},
		{"As 2s 3s 4s 5s Kh Kd", StraightFlush},
		{"As Ks Qs Js Ts 9h 7d", RoyalFlush},
	}

	for _, tc := range tests {
		t.Run(tc.cards, func(t *testing.T) {
			t.Parallel()
			rank := Evaluate(hand(t, tc.cards))
			assert.Equal(t, tc.want, rank.Type(), "got %s", rank)
		})
	}
}

func TestEvaluateOrdering(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		better string
		worse  string
	}{
		{"category beats kickers", "2s 2h 3d 4c 7s 8h 9d", "As Kh Qd Jc 9s 7h 5d"},
		{"higher pair", "Ks Kh 3d 4c 7s 8h 9d", "Qs Qh Ad Kc 7s 8h 9d"},
		{"pair kicker", "Ks Kh Ad 4c 7s 8h 9d", "Ks Kd Qd 4c 7s 8h 9d"},
		{"two pair third pair becomes kicker", "As Ah Kd Kc 3s 3h Qd", "As Ah Kd Kc 3s 3h Jd"},
		{"six high straight beats wheel", "Ah 2d 3c 4s 5h 6c Kd", "Ah 2d 3c 4s 5h 9c Kd"},
		{"broadway beats king high straight", "As Kh Qd Jc Ts 2h 3d", "Kh Qd Jc Ts 9s 2h 3d"},
		{"flush fifth card", "As Ks 9s 7s 3s 2h 4d", "As Ks 9s 7s 2s 5h 4d"},
		{"full house trips first", "3s 3h 3d 2c 2s 9h 7d", "2s 2h 2d Ac As 9h 7d"},
		{"quads kicker", "As Ah Ad Ac Ks 2h 3d", "As Ah Ad Ac Qs 2h 3d"},
		{"steel wheel beats quads", "As 2s 3s 4s 5s Kh Kd", "Ks Kh Kd Kc 2h 3d 4c"},
		{"royal beats straight flush", "As Ks Qs Js Ts 2h 3d", "Ks Qs Js Ts 9s 2h 3d"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			better := Evaluate(hand(t, tc.better))
			worse := Evaluate(hand(t, tc.worse))
			assert.Equal(t, 1, better.Compare(worse), "%s vs %s", better, worse)
			assert.Equal(t, -1, worse.Compare(better))
		})
	}
}

func TestEvaluateSplitPot(t *testing.T) {
	t.Parallel()
	// Board plays for both players.
	a := Evaluate(hand(t, "2c 3d As Ks Qs Js Ts"))
	b := Evaluate(hand(t, "4c 5d As Ks Qs Js Ts"))
	assert.Equal(t, 0, a.Compare(b))

	// Same straight from different hole cards.
	a = Evaluate(hand(t, "9c 2d Th Jd Qc Ks 3h"))
	b = Evaluate(hand(t, "9d 4d Th Jd Qc Ks 3h"))
	assert.Equal(t, 0, a.Compare(b))
}

func TestHandTypeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "High Card", HighCard.String())
	assert.Equal(t, "Royal Flush", RoyalFlush.String())
	assert.Equal(t, "Unknown", HandType(NumHandTypes).String())
}

func BenchmarkEvaluate(b *testing.B) {
	h := hand(b, "As Kh Qd Jc 9s 7h 5d")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(h)
	}
}
