// internal/game/engine.go
//
// Table engine for a single Set session.
// Responsibilities:
//   - Deal the initial 12 cards from a fresh, randomly drawn 81-card deck.
//   - Deal 3 additional cards, or replace a found set (in place, or by
//     shrinking back toward 12 after bonus deals).
//   - Shuffle the open cards and remove named cards.
//   - Keep the match set equal to a brute-force recomputation after every
//     mutation.
//
// Notes:
//   - Randomness comes from the injected cards.RNG so sessions are reproducible.
//   - Insufficient deck cards are reported via ErrInsufficientCards and never
//     abort a command; contract violations are ErrInvalidArgument and leave
//     the table untouched.
//   - The match set is rebuilt from scratch each time. At table sizes up to
//     ~21 cards that is at most C(21,3) = 1330 predicate calls.
package game

import (
	"fmt"

	"github.com/robalobadob/setgame/internal/cards"
)

// New starts a session: a fresh deck drawn through rng and 12 open cards.
func New(rng cards.RNG) *Table {
	t := &Table{
		deck: cards.NewDeck(rng),
		rng:  rng,
	}
	t.open = append(t.open, t.deck.Draw(InitialSize)...)
	t.refresh()
	return t
}

// DealAdditional appends 3 cards from the deck.
// Returns true on a full deal. With fewer than 3 cards left it deals what
// remains (possibly nothing) and returns false with ErrInsufficientCards.
func (t *Table) DealAdditional() (bool, error) {
	defer t.refresh()

	if t.deck.Remaining() < DealSize {
		short := t.deck.Remaining()
		t.open = append(t.open, t.deck.Draw(DealSize)...)
		return false, fmt.Errorf("deal additional: %d of %d cards: %w", short, DealSize, ErrInsufficientCards)
	}
	t.open = append(t.open, t.deck.Draw(DealSize)...)
	return true, nil
}

// DealReplacing takes a found set off the table.
//
// Preconditions (else ErrInvalidArgument, nothing changes):
//   - the three cards are distinct and all currently open,
//   - they form a set.
//
// Behavior:
//   - table larger than 12: the cards are removed, nothing is drawn.
//   - otherwise: up to 3 new cards overwrite the removed slots in place;
//     slots the deck could not fill are dropped and ErrInsufficientCards
//     is returned alongside false.
func (t *Table) DealReplacing(set cards.Triplet) (bool, error) {
	if err := t.validateSet(set); err != nil {
		return false, err
	}
	defer t.refresh()

	if len(t.open) > InitialSize {
		t.remove(set[:]...)
		return true, nil
	}

	drawn := t.deck.Draw(DealSize)
	var unfilled []cards.Card
	for i, c := range set {
		if i >= len(drawn) {
			unfilled = append(unfilled, c)
			continue
		}
		t.open[t.IndexOf(c)] = drawn[i]
	}
	if len(unfilled) > 0 {
		t.remove(unfilled...)
		return false, fmt.Errorf("deal replacing: %d of %d cards: %w", len(drawn), DealSize, ErrInsufficientCards)
	}
	return true, nil
}

// validateSet checks the DealReplacing contract.
func (t *Table) validateSet(set cards.Triplet) error {
	if !set.Distinct() {
		return fmt.Errorf("replace %v: duplicate cards: %w", set, ErrInvalidArgument)
	}
	for _, c := range set {
		if t.IndexOf(c) < 0 {
			return fmt.Errorf("replace: %v is not on the table: %w", c, ErrInvalidArgument)
		}
	}
	if !set.IsMatch() {
		return fmt.Errorf("replace %v: not a set: %w", set, ErrInvalidArgument)
	}
	return nil
}

// Shuffle permutes the open cards. Contents and match set are unchanged,
// though the match set is rebuilt so its order follows the new slots.
func (t *Table) Shuffle() {
	for i := len(t.open) - 1; i > 0; i-- {
		j := t.rng.IntN(i + 1)
		t.open[i], t.open[j] = t.open[j], t.open[i]
	}
	t.refresh()
}

// Remove takes the named cards off the table without touching the deck.
// Cards that are not open are ignored. Returns how many were removed.
func (t *Table) Remove(cs ...cards.Card) int {
	n := t.remove(cs...)
	t.refresh()
	return n
}

func (t *Table) remove(cs ...cards.Card) int {
	kept := t.open[:0]
	removed := 0
	for _, c := range t.open {
		if containsCard(cs, c) {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	t.open = kept
	return removed
}

// refresh rebuilds the match set from the current open cards.
func (t *Table) refresh() {
	t.matches = cards.AllMatches(t.open)
}

// AllMatches returns a copy of every set currently on the table,
// in lexicographic order of slot indices.
func (t *Table) AllMatches() []cards.Triplet {
	out := make([]cards.Triplet, len(t.matches))
	copy(out, t.matches)
	return out
}

// Hint returns one available set: the last one enumerated.
func (t *Table) Hint() (cards.Triplet, bool) {
	if len(t.matches) == 0 {
		return cards.Triplet{}, false
	}
	return t.matches[len(t.matches)-1], true
}

// RemainingDeckCount returns how many cards are left to deal.
func (t *Table) RemainingDeckCount() int { return t.deck.Remaining() }

// OpenCards returns a copy of the face-up cards in slot order.
func (t *Table) OpenCards() []cards.Card {
	out := make([]cards.Card, len(t.open))
	copy(out, t.open)
	return out
}

// Size returns the number of open cards.
func (t *Table) Size() int { return len(t.open) }

// IndexOf returns the slot of c, or -1 when c is not open.
func (t *Table) IndexOf(c cards.Card) int {
	for i, x := range t.open {
		if x == c {
			return i
		}
	}
	return -1
}

// Contains reports whether c is open.
func (t *Table) Contains(c cards.Card) bool { return t.IndexOf(c) >= 0 }

// Over reports the normal end of a game: no set on the table and an empty deck.
func (t *Table) Over() bool {
	return len(t.matches) == 0 && t.deck.Remaining() == 0
}

// Snapshot copies the state a display needs.
func (t *Table) Snapshot() Snapshot {
	return Snapshot{
		Open:       t.OpenCards(),
		Matches:    len(t.matches),
		DeckRemain: t.deck.Remaining(),
		Over:       t.Over(),
	}
}

func containsCard(cs []cards.Card, c cards.Card) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}
