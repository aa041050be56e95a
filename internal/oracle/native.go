package oracle

import (
	"fmt"

	"github.com/lox/pokerodds/poker"
)

// Native evaluates hands with the bitmask evaluator in package poker.
// Its Precomputed value is the board as a poker.Hand.
type Native struct{}

func (Native) Name() string { return "native" }

func (Native) Preprocess(board []poker.Card) (Precomputed, error) {
	return boardHand(board)
}

func (Native) Detect(hole [2]poker.Card, board []poker.Card, pre Precomputed) (Result, error) {
	bh, ok := pre.(poker.Hand)
	if !ok {
		var err error
		if bh, err = boardHand(board); err != nil {
			return Result{}, err
		}
	}
	if !hole[0].Valid() || !hole[1].Valid() {
		return Result{}, fmt.Errorf("invalid hole cards %s%s", hole[0], hole[1])
	}
	if bh.HasCard(hole[0]) || bh.HasCard(hole[1]) || hole[0] == hole[1] {
		return Result{}, fmt.Errorf("%w: %s%s", ErrCardConflict, hole[0], hole[1])
	}

	hr := poker.Evaluate(bh | poker.NewHand(hole[0], hole[1]))
	return Result{Category: hr.Type(), Key: int32(hr)}, nil
}

func (Native) Compare(results []Result) (Winner, error) {
	return best(results)
}
