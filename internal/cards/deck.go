// internal/cards/deck.go
//
// Draw pool for a single game session.
// Responsibilities:
//   - Hold the cards that have not been dealt yet (starts with all 81).
//   - Draw uniformly at random without replacement through an injected RNG.
//
// Notes:
//   - The pool only ever shrinks; a drawn card never comes back.
//   - Asking for more cards than remain is not an error: the result is short.

package cards

import (
	"math/rand/v2"
	"time"
)

// RNG abstracts random number generation so draws and shuffles can be
// reproduced in tests.
type RNG interface {
	// IntN returns a non-negative random int in [0, n). n must be > 0.
	IntN(n int) int
}

// NewRNG returns a deterministic PCG-backed generator for the given seed.
func NewRNG(seed uint64) RNG {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SystemRNG returns a generator seeded from the clock, for normal play.
func SystemRNG() RNG {
	return NewRNG(uint64(time.Now().UnixNano()))
}

// Deck is the mutable pool of undrawn cards.
type Deck struct {
	cards []Card
	rng   RNG
}

// NewDeck returns a pool holding all 81 cards.
func NewDeck(rng RNG) *Deck {
	return &Deck{cards: NewFullDeck(), rng: rng}
}

// NewDeckFrom returns a pool holding a copy of the given cards.
// Callers are responsible for the cards being distinct.
func NewDeckFrom(rng RNG, pool []Card) *Deck {
	return &Deck{cards: append([]Card(nil), pool...), rng: rng}
}

// Draw removes and returns up to n cards picked uniformly at random.
// When fewer than n remain, every remaining card is returned and the deck is empty.
func (d *Deck) Draw(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Card, 0, n)
	for range n {
		// Swap the picked card to the end and truncate.
		last := len(d.cards) - 1
		i := d.rng.IntN(last + 1)
		d.cards[i], d.cards[last] = d.cards[last], d.cards[i]
		out = append(out, d.cards[last])
		d.cards = d.cards[:last]
	}
	return out
}

// Remaining returns the number of undrawn cards.
func (d *Deck) Remaining() int { return len(d.cards) }

// Contains reports whether c is still in the pool.
func (d *Deck) Contains(c Card) bool {
	for _, x := range d.cards {
		if x == c {
			return true
		}
	}
	return false
}
