package poker

// StartingClass is a coarse preflop strength bucket for a pair of hole cards.
type StartingClass uint8

const (
	ClassTrash StartingClass = iota
	ClassWeak
	ClassMedium
	ClassStrong
	ClassPremium
)

var startingClassNames = [...]string{"Trash", "Weak", "Medium", "Strong", "Premium"}

func (c StartingClass) String() string {
	if int(c) >= len(startingClassNames) {
		return "Unknown"
	}
	return startingClassNames[c]
}

// ClassifyStartingHand buckets hole cards:
// Premium (JJ+, AK), Strong (TT, AQ, AJ), Medium (77-99, suited broadway),
// Weak (22-66, suited cards within two ranks), Trash (everything else).
func ClassifyStartingHand(hole [2]Card) StartingClass {
	hi, lo := hole[0].Rank(), hole[1].Rank()
	if lo > hi {
		hi, lo = lo, hi
	}
	suited := hole[0].Suit() == hole[1].Suit()
	pair := hi == lo

	switch {
	case pair && lo >= Jack, hi == Ace && lo == King:
		return ClassPremium
	case pair && lo == Ten, hi == Ace && (lo == Queen || lo == Jack):
		return ClassStrong
	case pair && lo >= Seven, suited && lo >= Ten:
		return ClassMedium
	case pair, suited && hi-lo <= 2:
		return ClassWeak
	}
	return ClassTrash
}

// StartingHandNotation returns the shorthand for hole cards with the higher
// rank first, e.g. "AKs", "T9o" or "QQ".
func StartingHandNotation(hole [2]Card) string {
	hi, lo := hole[0].Rank(), hole[1].Rank()
	if lo > hi {
		hi, lo = lo, hi
	}
	s := string(rankChars[hi]) + string(rankChars[lo])
	switch {
	case hi == lo:
		return s
	case hole[0].Suit() == hole[1].Suit():
		return s + "s"
	}
	return s + "o"
}
