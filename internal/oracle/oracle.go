// Package oracle decides hand categories and showdown winners for one trial.
//
// An Oracle is consulted once per completed board: Preprocess is called once
// with the full five-card board, Detect once per player, and Compare once
// with every player's result in player order. Implementations must be safe
// for concurrent use by multiple goroutines.
package oracle

import (
	"errors"
	"fmt"

	"github.com/lox/pokerodds/poker"
)

// Precomputed is whatever per-board state an Oracle derives in Preprocess and
// wants handed back to Detect.
type Precomputed any

// Result is one player's showdown outcome. Keys are comparable across players
// of the same trial; a larger Key is a stronger hand.
type Result struct {
	Category poker.HandType
	Key      int32
}

// Winner is the index of the player who won a trial, or Tie.
type Winner int

// Tie marks a trial where two or more players share the best hand.
const Tie Winner = -1

func (w Winner) String() string {
	if w == Tie {
		return "tie"
	}
	return fmt.Sprintf("player %d", int(w))
}

// Oracle evaluates hands against a completed board.
type Oracle interface {
	Name() string
	Preprocess(board []poker.Card) (Precomputed, error)
	Detect(hole [2]poker.Card, board []poker.Card, pre Precomputed) (Result, error)
	Compare(results []Result) (Winner, error)
}

var (
	ErrNoResults    = errors.New("no results to compare")
	ErrBadBoard     = errors.New("board must hold exactly five cards")
	ErrCardConflict = errors.New("hole card already on board")
	ErrUnknown      = errors.New("unknown oracle")
)

// Names lists the oracles accepted by ByName.
var Names = []string{"native", "paulhankin"}

// ByName returns the oracle registered under name.
func ByName(name string) (Oracle, error) {
	switch name {
	case "", "native":
		return Native{}, nil
	case "paulhankin":
		return Library{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// best returns the index holding the unique largest key, or Tie.
func best(results []Result) (Winner, error) {
	if len(results) == 0 {
		return 0, ErrNoResults
	}
	winner := Winner(0)
	top := results[0].Key
	shared := false
	for i, r := range results[1:] {
		switch {
		case r.Key > top:
			winner, top, shared = Winner(i+1), r.Key, false
		case r.Key == top:
			shared = true
		}
	}
	if shared {
		return Tie, nil
	}
	return winner, nil
}

func boardHand(board []poker.Card) (poker.Hand, error) {
	if len(board) != 5 {
		return 0, fmt.Errorf("%w: got %d", ErrBadBoard, len(board))
	}
	h := poker.NewHand(board...)
	if h.CountCards() != 5 {
		return 0, fmt.Errorf("%w: duplicate card in %s", ErrBadBoard, poker.FormatCards(board))
	}
	return h, nil
}
