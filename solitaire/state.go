package solitaire

import (
	"errors"
	"fmt"
)

const (
	// DeckSize is the number of cards in play
	DeckSize = 52
	// NumFoundations is the number of foundation piles
	NumFoundations = 4
	// NumTableau is the number of tableau columns
	NumTableau = 7
)

// ErrIntegrity is returned by CheckIntegrity when the closure invariant is broken
var ErrIntegrity = errors.New("solitaire: card set is not closed")

// PileKind identifies which kind of pile a PileID refers to
type PileKind uint8

const (
	Stock PileKind = iota
	Waste
	Foundation
	Tableau
)

func (k PileKind) String() string {
	switch k {
	case Stock:
		return "stock"
	case Waste:
		return "waste"
	case Foundation:
		return "foundation"
	case Tableau:
		return "tableau"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name
func (k PileKind) MarshalText() ([]byte, error) {
	if k > Tableau {
		return nil, fmt.Errorf("invalid pile kind: %d", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name
func (k *PileKind) UnmarshalText(text []byte) error {
	for _, kind := range []PileKind{Stock, Waste, Foundation, Tableau} {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("invalid pile kind: %q", text)
}

// PileID names a pile. Index is only meaningful for foundations and tableau.
type PileID struct {
	Kind  PileKind `json:"kind"`
	Index int      `json:"index"`
}

// StockPile returns the id of the stock
func StockPile() PileID { return PileID{Kind: Stock} }

// WastePile returns the id of the waste
func WastePile() PileID { return PileID{Kind: Waste} }

// FoundationPile returns the id of foundation i
func FoundationPile(i int) PileID { return PileID{Kind: Foundation, Index: i} }

// TableauPile returns the id of tableau column i
func TableauPile(i int) PileID { return PileID{Kind: Tableau, Index: i} }

// Valid reports whether the id names an existing pile
func (id PileID) Valid() bool {
	switch id.Kind {
	case Stock, Waste:
		return id.Index == 0
	case Foundation:
		return id.Index >= 0 && id.Index < NumFoundations
	case Tableau:
		return id.Index >= 0 && id.Index < NumTableau
	default:
		return false
	}
}

func (id PileID) String() string {
	switch id.Kind {
	case Foundation, Tableau:
		return fmt.Sprintf("%s-%d", id.Kind, id.Index)
	default:
		return id.Kind.String()
	}
}

// GameState is one immutable snapshot of the table. Copying a GameState copies
// pile headers only; piles are never modified in place.
type GameState struct {
	Stock       Pile                 `json:"stock"`
	Waste       Pile                 `json:"waste"`
	Foundations [NumFoundations]Pile `json:"foundations"`
	Tableau     [NumTableau]Pile     `json:"tableau"`
}

// Pile returns the pile named by id
func (s GameState) Pile(id PileID) (Pile, bool) {
	if !id.Valid() {
		return Pile{}, false
	}
	switch id.Kind {
	case Stock:
		return s.Stock, true
	case Waste:
		return s.Waste, true
	case Foundation:
		return s.Foundations[id.Index], true
	default:
		return s.Tableau[id.Index], true
	}
}

// withPile returns a copy of the state with the named pile replaced
func (s GameState) withPile(id PileID, p Pile) GameState {
	switch id.Kind {
	case Stock:
		s.Stock = p
	case Waste:
		s.Waste = p
	case Foundation:
		s.Foundations[id.Index] = p
	case Tableau:
		s.Tableau[id.Index] = p
	}
	return s
}

// CardCount returns the total number of cards across all piles
func (s GameState) CardCount() int {
	n := s.Stock.Len() + s.Waste.Len()
	for _, f := range s.Foundations {
		n += f.Len()
	}
	for _, t := range s.Tableau {
		n += t.Len()
	}
	return n
}

// FoundationCount returns how many cards have reached the foundations
func (s GameState) FoundationCount() int {
	n := 0
	for _, f := range s.Foundations {
		n += f.Len()
	}
	return n
}

// IsWon reports whether every foundation holds a complete suit
func IsWon(s GameState) bool {
	for _, f := range s.Foundations {
		if f.Len() != 13 {
			return false
		}
	}
	return true
}

// CheckIntegrity verifies that the state holds each of the 52 cards exactly once
func CheckIntegrity(s GameState) error {
	if n := s.CardCount(); n != DeckSize {
		return fmt.Errorf("%w: %d cards in play, want %d", ErrIntegrity, n, DeckSize)
	}

	var seen [DeckSize]bool

	check := func(where string, p Pile) error {
		for _, c := range p.cards {
			if !c.Valid() {
				return fmt.Errorf("%w: invalid card %v in %s", ErrIntegrity, c, where)
			}
			if seen[c.index()] {
				return fmt.Errorf("%w: duplicate %s in %s", ErrIntegrity, c, where)
			}
			seen[c.index()] = true
		}
		return nil
	}

	if err := check("stock", s.Stock); err != nil {
		return err
	}
	if err := check("waste", s.Waste); err != nil {
		return err
	}
	for i, f := range s.Foundations {
		if err := check(FoundationPile(i).String(), f); err != nil {
			return err
		}
	}
	for i, t := range s.Tableau {
		if err := check(TableauPile(i).String(), t); err != nil {
			return err
		}
	}
	return nil
}
