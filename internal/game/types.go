// internal/game/types.go
//
// Core type definitions for the table engine.
// Defines:
//   - Table: state for one game session (draw pool, open cards, match set).
//   - Snapshot: read-only view handed to the presentation layer.
//   - Sentinel errors for deal and replace commands.

package game

import (
	"errors"

	"github.com/robalobadob/setgame/internal/cards"
)

const (
	// InitialSize is the number of cards dealt when a session starts, and the
	// size the table shrinks back toward after bonus deals.
	InitialSize = 12
	// DealSize is the number of cards added or replaced per deal.
	DealSize = 3
)

var (
	// ErrInsufficientCards means the deck could not supply a full deal.
	// Recoverable: the command did as much as it could.
	ErrInsufficientCards = errors.New("insufficient cards in deck")

	// ErrInvalidArgument means the caller broke a command's contract, e.g.
	// replacing cards that are not on the table or do not form a set.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Table holds the state of a single game session.
// It is not safe for concurrent use; each session owns its own Table.
type Table struct {
	deck    *cards.Deck     // undrawn cards
	open    []cards.Card    // face-up cards, in slot order
	matches []cards.Triplet // every set among open, recomputed on each mutation
	rng     cards.RNG       // shared with deck; used for Shuffle
}

// Snapshot is a copy of everything a display needs after a command.
type Snapshot struct {
	Open       []cards.Card `json:"open"`
	Matches    int          `json:"matches"`
	DeckRemain int          `json:"deckRemaining"`
	Over       bool         `json:"over"`
}
