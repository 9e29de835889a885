// internal/cards/card.go
//
// Card model for the Set game.
// Defines:
//   - Value: one of the three values an attribute can take (1..3).
//   - Card:  four independent attributes (shape, style, color, count).
//   - Attributes: the fixed list of attribute accessors, iterated by the
//     match rule instead of reflecting over struct fields.
//
// The full universe is 3^4 = 81 distinct cards (see NewFullDeck).

package cards

import "fmt"

// Value is a single attribute value. Valid values are 1, 2 and 3.
type Value uint8

const (
	MinValue  Value = 1
	MaxValue  Value = 3
	NumValues       = int(MaxValue-MinValue) + 1
)

// Valid reports whether v is inside 1..3.
func (v Value) Valid() bool { return v >= MinValue && v <= MaxValue }

// Card is an immutable value; two cards are equal iff all four attributes match.
type Card struct {
	Shape Value `json:"shape"`
	Style Value `json:"style"`
	Color Value `json:"color"`
	Count Value `json:"count"`
}

// Attribute extracts one attribute value from a card.
type Attribute func(Card) Value

// Attributes lists the accessors for all four attributes, in declaration order.
var Attributes = [4]Attribute{
	func(c Card) Value { return c.Shape },
	func(c Card) Value { return c.Style },
	func(c Card) Value { return c.Color },
	func(c Card) Value { return c.Count },
}

// NumCards is the size of the full card universe.
const NumCards = 81

// Valid reports whether every attribute is inside 1..3.
func (c Card) Valid() bool {
	for _, attr := range Attributes {
		if !attr(c).Valid() {
			return false
		}
	}
	return true
}

// Key returns a compact integer identity (shape*1000 + style*100 + color*10 + count).
func (c Card) Key() int {
	return int(c.Shape)*1000 + int(c.Style)*100 + int(c.Color)*10 + int(c.Count)
}

func (c Card) String() string {
	return fmt.Sprintf("Card: %d.%d.%d.%d", c.Shape, c.Style, c.Color, c.Count)
}

// NewFullDeck enumerates all 81 cards in a fixed order:
// shape, then style, then color, then count (count varies fastest).
// It is the canonical identity set, not a gameplay order.
func NewFullDeck() []Card {
	deck := make([]Card, 0, NumCards)
	for shape := MinValue; shape <= MaxValue; shape++ {
		for style := MinValue; style <= MaxValue; style++ {
			for color := MinValue; color <= MaxValue; color++ {
				for count := MinValue; count <= MaxValue; count++ {
					deck = append(deck, Card{Shape: shape, Style: style, Color: color, Count: count})
				}
			}
		}
	}
	return deck
}
