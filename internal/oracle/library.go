package oracle

import (
	"fmt"

	ph "github.com/paulhankin/poker"

	"github.com/lox/pokerodds/poker"
)

// Library ranks hands with github.com/paulhankin/poker's seven-card
// evaluator. Categories still come from the native evaluator since the
// library only reports a score.
type Library struct{}

type libraryBoard struct {
	hand  poker.Hand
	cards [5]ph.Card
}

// libCards maps a card's bit index to the library's representation.
var libCards = func() [poker.DeckSize]ph.Card {
	suits := [4]ph.Suit{ph.Club, ph.Diamond, ph.Heart, ph.Spade}
	var out [poker.DeckSize]ph.Card
	for i, c := range poker.FullDeck() {
		// The library counts ace as rank 1 and two through king as 2-13.
		rank := ph.Rank(c.Rank() + 2)
		if c.Rank() == poker.Ace {
			rank = 1
		}
		lc, err := ph.MakeCard(suits[c.Suit()], rank)
		if err != nil {
			panic(fmt.Sprintf("paulhankin card for %s: %v", c, err))
		}
		out[i] = lc
	}
	return out
}()

func toLibrary(c poker.Card) ph.Card {
	return libCards[int(c.Suit())*13+int(c.Rank())]
}

func (Library) Name() string { return "paulhankin" }

func (Library) Preprocess(board []poker.Card) (Precomputed, error) {
	h, err := boardHand(board)
	if err != nil {
		return nil, err
	}
	lb := &libraryBoard{hand: h}
	for i, c := range board {
		lb.cards[i] = toLibrary(c)
	}
	return lb, nil
}

func (l Library) Detect(hole [2]poker.Card, board []poker.Card, pre Precomputed) (Result, error) {
	lb, ok := pre.(*libraryBoard)
	if !ok {
		p, err := l.Preprocess(board)
		if err != nil {
			return Result{}, err
		}
		lb = p.(*libraryBoard)
	}
	if !hole[0].Valid() || !hole[1].Valid() {
		return Result{}, fmt.Errorf("invalid hole cards %s%s", hole[0], hole[1])
	}
	if lb.hand.HasCard(hole[0]) || lb.hand.HasCard(hole[1]) || hole[0] == hole[1] {
		return Result{}, fmt.Errorf("%w: %s%s", ErrCardConflict, hole[0], hole[1])
	}

	var seven [7]ph.Card
	copy(seven[:5], lb.cards[:])
	seven[5] = toLibrary(hole[0])
	seven[6] = toLibrary(hole[1])

	category := poker.Evaluate(lb.hand | poker.NewHand(hole[0], hole[1])).Type()
	return Result{Category: category, Key: int32(ph.Eval7(&seven))}, nil
}

func (Library) Compare(results []Result) (Winner, error) {
	return best(results)
}
