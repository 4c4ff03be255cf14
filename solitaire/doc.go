// Package solitaire implements the rules engine for Klondike solitaire.
//
// The engine is a set of pure functions over GameState values. A GameState is
// never modified after it is created: every transition returns a new snapshot
// that shares the piles it did not touch with its predecessor, so callers can
// keep old snapshots around for undo without copying.
//
// # Basic Usage
//
// Deal a game and play a move:
//
//	rng := rand.New(rand.NewPCG(42, 0)) // math/rand/v2
//	state := solitaire.NewGame(rng)
//	move, ok := solitaire.NewTransfer(state, solitaire.TableauPile(0), 0, solitaire.TableauPile(3))
//	if ok && solitaire.IsValidMove(state, move) {
//	    state = solitaire.Execute(state, move)
//	}
//	if solitaire.IsWon(state) {
//	    // ...
//	}
//
// Use Validate instead of IsValidMove to learn why a move was refused.
//
// # Moves
//
// A Move is one of three types:
//   - DrawStock: turn a stock card onto the waste, or recycle the waste
//   - Transfer: move one or more cards between waste, tableau and foundations
//   - RevealCard: turn a face-down tableau card face-up
//
// Transfers reveal the new top card of a tableau column automatically.
package solitaire
