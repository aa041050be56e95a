package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Card is a single playing card encoded as one set bit in a uint64.
// Bit position = suit*13 + rank, so a Card can be OR-ed straight into a Hand.
type Card uint64

// Hand is a set of cards. Any number of bits may be set.
type Hand uint64

// Suits
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

// Ranks, deuce (0) through ace (12)
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"

	// DeckSize is the number of cards in a standard deck.
	DeckSize = 52
)

// NewCard creates a card from rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(1) << (suit*13 + rank)
}

// index returns the bit position of the card, or 255 for the zero Card.
func (c Card) index() uint8 {
	if c == 0 {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// Rank returns the rank of the card (0-12).
func (c Card) Rank() uint8 {
	idx := c.index()
	if idx == 255 {
		return 255
	}
	return idx % 13
}

// Suit returns the suit of the card (0-3).
func (c Card) Suit() uint8 {
	idx := c.index()
	if idx == 255 {
		return 255
	}
	return idx / 13
}

// Valid reports whether c encodes exactly one of the 52 cards.
func (c Card) Valid() bool {
	return c != 0 && c&(c-1) == 0 && c.index() < DeckSize
}

// String returns the two character notation, e.g. "As" or "Td".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string(rankChars[c.Rank()]) + string(suitChars[c.Suit()])
}

// ParseCard parses a string like "As" into a Card. Rank and suit are case-insensitive.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card %q: want rank and suit", s)
	}

	rank := strings.IndexByte(rankChars, upper(s[0]))
	if rank < 0 {
		return 0, fmt.Errorf("invalid rank %q in card %q", s[0], s)
	}
	suit := strings.IndexByte(suitChars, lower(s[1]))
	if suit < 0 {
		return 0, fmt.Errorf("invalid suit %q in card %q", s[1], s)
	}

	return NewCard(uint8(rank), uint8(suit)), nil
}

// ParseCards parses run-together or space separated notation such as
// "AsKd", "As Kd" or "as,kd" into cards, preserving order.
func ParseCards(s string) ([]Card, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', ',', '\t':
			return -1
		}
		return r
	}, s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length %d in %q", len(s), s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i/2, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is ParseCards that panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

// FormatCards renders cards space separated, e.g. "As Kd".
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// NewHand creates a hand from cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard reports whether the hand contains c.
func (h Hand) HasCard(c Card) bool {
	return h&Hand(c) != 0
}

// CountCards returns the number of cards in the hand.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// SuitMask returns the 13-bit rank mask of the cards of one suit.
func (h Hand) SuitMask(suit uint8) uint16 {
	return uint16(h>>(suit*13)) & 0x1FFF
}

// Cards returns the cards of the hand in ascending bit order.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	for rest := uint64(h); rest != 0; rest &= rest - 1 {
		cards = append(cards, Card(rest&-rest))
	}
	return cards
}

// String renders the hand in ascending bit order.
func (h Hand) String() string {
	return FormatCards(h.Cards())
}
