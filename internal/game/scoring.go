package game

import "github.com/diegolorenzo12/foxpoker/solitaire"

// Scoring holds the score deltas a session applies
type Scoring struct {
	Foundation          int // card reaches a foundation
	FoundationToTableau int // card taken back off a foundation
	Reveal              int // explicit reveal that turned a card
	Undo                int // each undo, floored at zero
}

// DefaultScoring returns the standard deltas
func DefaultScoring() Scoring {
	return Scoring{
		Foundation:          10,
		FoundationToTableau: -5,
		Reveal:              5,
		Undo:                -2,
	}
}

// Delta returns the score change for a move that was applied
func (s Scoring) Delta(kind solitaire.MoveKind) int {
	switch kind {
	case solitaire.WasteToFoundation, solitaire.TableauToFoundation:
		return s.Foundation
	case solitaire.FoundationToTableau:
		return s.FoundationToTableau
	case solitaire.Reveal:
		return s.Reveal
	default:
		return 0
	}
}

// afterUndo applies the undo penalty
func (s Scoring) afterUndo(score int) int {
	return max(0, score+s.Undo)
}
