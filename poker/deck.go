package poker

// fullDeck is every card in ascending bit order (clubs deuce first).
var fullDeck = func() [DeckSize]Card {
	var d [DeckSize]Card
	i := 0
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			d[i] = NewCard(rank, suit)
			i++
		}
	}
	return d
}()

// allCards is the Hand holding all 52 cards.
const allCards = Hand(1)<<DeckSize - 1

// FullDeck returns a fresh copy of all 52 cards in ascending bit order.
func FullDeck() []Card {
	d := fullDeck
	return d[:]
}

// Remaining returns every card not in known, in ascending bit order.
// The order is fixed so that enumerations over the result are reproducible.
func Remaining(known Hand) []Card {
	left := allCards &^ known
	cards := make([]Card, 0, left.CountCards())
	for _, c := range fullDeck {
		if left.HasCard(c) {
			cards = append(cards, c)
		}
	}
	return cards
}
