// Package game runs a Klondike game for a player.
//
// The rules live in package solitaire; a Session layers on top of them what a
// front end needs: the snapshot history behind undo, the score, the game
// timer and hints.
//
// # Basic Usage
//
//	s := game.NewSession(seed, game.WithLogger(logger))
//	if err := s.Apply(solitaire.DrawStock{}); err != nil {
//	    // errors.Is(err, game.ErrIllegalMove) for refused moves
//	}
//	_ = s.Undo()
//	fmt.Println(s.Score(), s.Elapsed())
//
// # Scoring
//
// A card reaching a foundation scores +10, taking one back costs 5, an
// explicit reveal scores +5 and each undo costs 2 without taking the score
// below zero. The deltas are configurable with WithScoring.
//
// # Deterministic Testing
//
// Deals are reproducible from their seed, and the timer reads an injected
// quartz.Clock:
//
//	clock := quartz.NewMock(t)
//	s := game.NewSession(42, game.WithClock(clock))
package game
