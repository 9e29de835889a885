package game

import "github.com/robalobadob/setgame/internal/cards"

// NewStacked builds a table with fixed open cards and a fixed draw pool.
func NewStacked(rng cards.RNG, open, pool []cards.Card) *Table {
	t := &Table{
		deck: cards.NewDeckFrom(rng, pool),
		open: append([]cards.Card(nil), open...),
		rng:  rng,
	}
	t.refresh()
	return t
}

// DrainDeck discards n cards from the table's deck.
func DrainDeck(t *Table, n int) []cards.Card { return t.deck.Draw(n) }
