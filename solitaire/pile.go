package solitaire

import (
	"encoding/json"
	"fmt"
)

// Pile is a persistent ordered sequence of cards; the last card is the top.
//
// Every operation returns a new Pile and leaves the receiver untouched. The
// returned pile may share its prefix with the receiver, but its capacity is
// clipped to its length so a later Push always copies instead of writing into
// storage another snapshot can see.
type Pile struct {
	cards []Card
}

// NewPile creates a pile holding a private copy of cards
func NewPile(cards ...Card) Pile {
	if len(cards) == 0 {
		return Pile{}
	}
	owned := make([]Card, len(cards))
	copy(owned, cards)
	return Pile{cards: owned}
}

// Len returns the number of cards in the pile
func (p Pile) Len() int {
	return len(p.cards)
}

// Empty reports whether the pile has no cards
func (p Pile) Empty() bool {
	return len(p.cards) == 0
}

// At returns the card at position i and whether it exists
func (p Pile) At(i int) (Card, bool) {
	if i < 0 || i >= len(p.cards) {
		return Card{}, false
	}
	return p.cards[i], true
}

// Top returns the top card and whether the pile is non-empty
func (p Pile) Top() (Card, bool) {
	return p.At(len(p.cards) - 1)
}

// Cards returns a copy of the pile contents, bottom to top
func (p Pile) Cards() []Card {
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// From returns a copy of the cards from position i to the top
func (p Pile) From(i int) []Card {
	if i < 0 || i >= len(p.cards) {
		return nil
	}
	out := make([]Card, len(p.cards)-i)
	copy(out, p.cards[i:])
	return out
}

// Push returns a pile with cards appended on top
func (p Pile) Push(cards ...Card) Pile {
	if len(cards) == 0 {
		return p
	}
	n := len(p.cards)
	// Full slice expression forces append to allocate
	return Pile{cards: append(p.cards[:n:n], cards...)}
}

// Truncate returns the pile with position i and everything above it removed
func (p Pile) Truncate(i int) Pile {
	if i <= 0 {
		return Pile{}
	}
	if i >= len(p.cards) {
		return p
	}
	return Pile{cards: p.cards[:i:i]}
}

// Pop returns the pile without its top card, and that card
func (p Pile) Pop() (Pile, Card, bool) {
	top, ok := p.Top()
	if !ok {
		return p, Card{}, false
	}
	return p.Truncate(len(p.cards) - 1), top, true
}

// WithCard returns a pile with position i replaced
func (p Pile) WithCard(i int, c Card) Pile {
	if i < 0 || i >= len(p.cards) {
		return p
	}
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	out[i] = c
	return Pile{cards: out}
}

// revealTop flips the top card face-up if it is face-down
func (p Pile) revealTop() Pile {
	top, ok := p.Top()
	if !ok || top.FaceUp {
		return p
	}
	return p.WithCard(len(p.cards)-1, top.Up())
}

// String renders the pile bottom to top, face-down cards as "##"
func (p Pile) String() string {
	s := "["
	for i, c := range p.cards {
		if i > 0 {
			s += " "
		}
		if c.FaceUp {
			s += c.String()
		} else {
			s += "##"
		}
	}
	return s + "]"
}

// MarshalJSON encodes the pile as an array of cards
func (p Pile) MarshalJSON() ([]byte, error) {
	if p.cards == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.cards)
}

// UnmarshalJSON decodes an array of cards
func (p *Pile) UnmarshalJSON(data []byte) error {
	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return fmt.Errorf("decode pile: %w", err)
	}
	*p = NewPile(cards...)
	return nil
}
