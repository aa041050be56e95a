package equity

import (
	"fmt"

	"github.com/lox/pokerodds/poker"
)

// Input is the card state of one evaluation.
type Input struct {
	// Hands holds each player's hole cards; at least two players.
	Hands [][2]poker.Card
	// Board is the known community cards, 0-5.
	Board []poker.Card
	// Dead cards are out of play and never dealt.
	Dead []poker.Card
}

// ParseInput builds an Input from card notation, one string per hand.
func ParseInput(hands []string, board, dead string) (Input, error) {
	var in Input
	for i, s := range hands {
		cards, err := poker.ParseCards(s)
		if err != nil {
			return Input{}, fmt.Errorf("%w: hand %d: %w", ErrInvalidInput, i, err)
		}
		if len(cards) != 2 {
			return Input{}, fmt.Errorf("%w: hand %d %q has %d cards, want 2", ErrInvalidInput, i, s, len(cards))
		}
		in.Hands = append(in.Hands, [2]poker.Card{cards[0], cards[1]})
	}

	var err error
	if in.Board, err = poker.ParseCards(board); err != nil {
		return Input{}, fmt.Errorf("%w: board: %w", ErrInvalidInput, err)
	}
	if in.Dead, err = poker.ParseCards(dead); err != nil {
		return Input{}, fmt.Errorf("%w: dead cards: %w", ErrInvalidInput, err)
	}
	if err := in.Validate(); err != nil {
		return Input{}, err
	}
	return in, nil
}

// Validate checks player count, board size and that no card appears twice
// across hands, board and dead cards.
func (in Input) Validate() error {
	_, err := in.known()
	return err
}

// known validates the input and returns every card in play.
func (in Input) known() (poker.Hand, error) {
	if len(in.Hands) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 hands, got %d", ErrInvalidInput, len(in.Hands))
	}
	if len(in.Board) > 5 {
		return 0, fmt.Errorf("%w: board has %d cards, at most 5 allowed", ErrInvalidInput, len(in.Board))
	}

	var seen poker.Hand
	add := func(where string, c poker.Card) error {
		if !c.Valid() {
			return fmt.Errorf("%w: invalid card in %s", ErrInvalidInput, where)
		}
		if seen.HasCard(c) {
			return fmt.Errorf("%w: duplicate card %s in %s", ErrInvalidInput, c, where)
		}
		seen.AddCard(c)
		return nil
	}

	for i, h := range in.Hands {
		for _, c := range h {
			if err := add(fmt.Sprintf("hand %d", i), c); err != nil {
				return 0, err
			}
		}
	}
	for _, c := range in.Board {
		if err := add("board", c); err != nil {
			return 0, err
		}
	}
	for _, c := range in.Dead {
		if err := add("dead cards", c); err != nil {
			return 0, err
		}
	}
	return seen, nil
}
