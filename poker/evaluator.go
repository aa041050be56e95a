package poker

import (
	"math/bits"
)

// HandType enumerates the hand categories from weakest to strongest.
// The values are stable and index per-category histograms.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// NumHandTypes is the number of distinct hand categories.
const NumHandTypes = 10

var handTypeNames = [NumHandTypes]string{
	"High Card",
	"Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Royal Flush",
}

// String returns a human-readable category name.
func (t HandType) String() string {
	if int(t) >= len(handTypeNames) {
		return "Unknown"
	}
	return handTypeNames[t]
}

// HandRank is the comparable strength of a best five-card hand. Higher values
// are stronger. The category sits above bit 20; below it five 4-bit rank
// nibbles hold the tie-breakers, most significant first.
type HandRank uint32

const typeShift = 20

// Type returns the category of the hand.
func (hr HandRank) Type() HandType {
	return HandType(hr >> typeShift)
}

// String returns the category name.
func (hr HandRank) String() string {
	return hr.Type().String()
}

// Compare returns 1 if hr beats other, -1 if other wins and 0 on a tie.
func (hr HandRank) Compare(other HandRank) int {
	switch {
	case hr > other:
		return 1
	case hr < other:
		return -1
	}
	return 0
}

// Evaluate returns the rank of the best five-card hand contained in h.
// It is meant for five to seven cards; with fewer the result is still
// ordered but names a weaker category than the cards could make.
func Evaluate(h Hand) HandRank {
	var suits [4]uint16
	var ranks uint16
	for suit := range uint8(4) {
		suits[suit] = h.SuitMask(suit)
		ranks |= suits[suit]
	}

	// At most one suit can hold five of seven cards, and when it does neither
	// quads nor a full house fit in the remaining cards.
	for _, mask := range suits {
		if bits.OnesCount16(mask) < 5 {
			continue
		}
		if high, ok := straightHigh(mask); ok {
			if high == Ace {
				return pack(RoyalFlush, high)
			}
			return pack(StraightFlush, high)
		}
		top := topRanks(mask, 5)
		return pack(Flush, top[0], top[1], top[2], top[3], top[4])
	}

	s0, s1, s2, s3 := suits[0], suits[1], suits[2], suits[3]
	quads := s0 & s1 & s2 & s3
	atLeast3 := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	atLeast2 := (s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)
	trips := atLeast3 &^ quads
	pairs := atLeast2 &^ atLeast3

	if quads != 0 {
		quad := highest(quads)
		kicker := highest(ranks &^ (1 << quad))
		return pack(FourOfAKind, quad, kicker)
	}

	if trips != 0 {
		trip := highest(trips)
		if rest := pairs | trips&^(1<<trip); rest != 0 {
			return pack(FullHouse, trip, highest(rest))
		}
	}

	if high, ok := straightHigh(ranks); ok {
		return pack(Straight, high)
	}

	if trips != 0 {
		trip := highest(trips)
		k := topRanks(ranks&^(1<<trip), 2)
		return pack(ThreeOfAKind, trip, k[0], k[1])
	}

	if pairs != 0 {
		top := highest(pairs)
		rest := pairs &^ (1 << top)
		if rest != 0 {
			second := highest(rest)
			kicker := highest(ranks &^ (1<<top | 1<<second))
			return pack(TwoPair, top, second, kicker)
		}
		k := topRanks(ranks&^(1<<top), 3)
		return pack(Pair, top, k[0], k[1], k[2])
	}

	k := topRanks(ranks, 5)
	return pack(HighCard, k[0], k[1], k[2], k[3], k[4])
}

func pack(t HandType, ranks ...uint8) HandRank {
	hr := HandRank(t) << typeShift
	shift := typeShift - 4
	for _, r := range ranks {
		hr |= HandRank(r) << shift
		shift -= 4
	}
	return hr
}

// highest returns the highest rank set in mask; mask must be non-zero.
func highest(mask uint16) uint8 {
	return uint8(bits.Len16(mask) - 1)
}

// topRanks returns the n highest ranks in mask, descending. Missing ranks
// are reported as deuces, which only happens for hands under five cards.
func topRanks(mask uint16, n int) [5]uint8 {
	var out [5]uint8
	for i := 0; i < n && mask != 0; i++ {
		r := highest(mask)
		out[i] = r
		mask &^= 1 << r
	}
	return out
}

// straightHigh returns the top rank of the best straight in mask.
func straightHigh(mask uint16) (uint8, bool) {
	const wheel = 1<<Ace | 0xF // A-2-3-4-5

	run := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if run != 0 {
		return highest(run) + 4, true
	}
	if mask&wheel == wheel {
		return Five, true
	}
	return 0, false
}
