package solitaire

// LegalMoves returns every move the validator accepts in state. Foundation
// moves come first, then tableau moves, then DrawStock when the stock or waste
// has cards. Explicit reveals are never needed because transfers reveal the
// new top card themselves, so none are listed.
func LegalMoves(state GameState) []Move {
	var toFoundation, toTableau []Move

	add := func(from PileID, fromIndex int) {
		for i := range NumFoundations {
			if t, ok := NewTransfer(state, from, fromIndex, FoundationPile(i)); ok && IsValidMove(state, t) {
				toFoundation = append(toFoundation, t)
			}
		}
		for i := range NumTableau {
			if t, ok := NewTransfer(state, from, fromIndex, TableauPile(i)); ok && IsValidMove(state, t) {
				toTableau = append(toTableau, t)
			}
		}
	}

	if !state.Waste.Empty() {
		add(WastePile(), state.Waste.Len()-1)
	}
	for col, pile := range state.Tableau {
		for idx, card := range pile.cards {
			if card.FaceUp {
				add(TableauPile(col), idx)
			}
		}
	}
	for i, pile := range state.Foundations {
		if !pile.Empty() {
			add(FoundationPile(i), pile.Len()-1)
		}
	}

	moves := make([]Move, 0, len(toFoundation)+len(toTableau)+1)
	moves = append(moves, toFoundation...)
	moves = append(moves, toTableau...)
	if !state.Stock.Empty() || !state.Waste.Empty() {
		moves = append(moves, DrawStock{})
	}
	return moves
}

// HiddenCards returns how many tableau cards are still face-down
func HiddenCards(state GameState) int {
	n := 0
	for _, pile := range state.Tableau {
		for _, c := range pile.cards {
			if !c.FaceUp {
				n++
			}
		}
	}
	return n
}
