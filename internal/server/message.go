package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diegolorenzo12/foxpoker/internal/game"
	"github.com/diegolorenzo12/foxpoker/solitaire"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message stamped with at
func NewMessage(messageType MessageType, data any, at time.Time) (*Message, error) {
	var dataBytes json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		dataBytes = b
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: at,
	}, nil
}

// Client → Server Messages

type NewGameData struct {
	Seed *int64 `json:"seed,omitempty"` // random when omitted
}

type MoveData struct {
	Move MoveSpec `json:"move"`
}

// Server → Client Messages

type GameStateData struct {
	GameID    string              `json:"gameId"`
	Seed      int64               `json:"seed"`
	State     solitaire.GameState `json:"state"`
	Score     int                 `json:"score"`
	Moves     int                 `json:"moves"`
	ElapsedMs int64               `json:"elapsedMs"`
	Won       bool                `json:"won"`
	CanUndo   bool                `json:"canUndo"`
}

type HintData struct {
	Move      *MoveSpec `json:"move"` // null when there is nothing worth playing
	Reasoning string    `json:"reasoning,omitempty"`
}

type GameWonData struct {
	GameID    string `json:"gameId"`
	Score     int    `json:"score"`
	Moves     int    `json:"moves"`
	ElapsedMs int64  `json:"elapsedMs"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Move spec kinds
const (
	MoveSpecTransfer = "transfer"
	MoveSpecDraw     = "draw"
	MoveSpecReveal   = "reveal"
)

// ErrBadMoveSpec is returned for a move spec that does not describe a move
var ErrBadMoveSpec = errors.New("malformed move")

// MoveSpec is the wire form of a move. Transfers name their piles only; the
// cards are read from the game when the spec is resolved.
type MoveSpec struct {
	Kind      string            `json:"kind"`
	From      *solitaire.PileID `json:"from,omitempty"`
	FromIndex *int              `json:"fromIndex,omitempty"`
	To        *solitaire.PileID `json:"to,omitempty"`
	Tableau   *int              `json:"tableau,omitempty"`
	Index     *int              `json:"index,omitempty"`
}

// Resolve turns the spec into a move against state. A tableau transfer
// without fromIndex moves the top card.
func (m MoveSpec) Resolve(state solitaire.GameState) (solitaire.Move, error) {
	switch m.Kind {
	case MoveSpecDraw:
		return solitaire.DrawStock{}, nil

	case MoveSpecReveal:
		if m.Tableau == nil || m.Index == nil {
			return nil, fmt.Errorf("%w: reveal needs tableau and index", ErrBadMoveSpec)
		}
		return solitaire.RevealCard{Tableau: *m.Tableau, Index: *m.Index}, nil

	case MoveSpecTransfer:
		if m.From == nil || m.To == nil {
			return nil, fmt.Errorf("%w: transfer needs from and to", ErrBadMoveSpec)
		}
		index := -1
		if m.FromIndex != nil {
			index = *m.FromIndex
		} else if src, ok := state.Pile(*m.From); ok {
			index = src.Len() - 1
		}
		move, ok := solitaire.NewTransfer(state, *m.From, index, *m.To)
		if !ok {
			return nil, fmt.Errorf("nothing to move from %s[%d] to %s: %w", *m.From, index, *m.To, solitaire.ErrNoCards)
		}
		return move, nil

	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrBadMoveSpec, m.Kind)
	}
}

// MoveSpecFromMove returns the wire form of move
func MoveSpecFromMove(move solitaire.Move) MoveSpec {
	switch m := move.(type) {
	case solitaire.Transfer:
		from, to, index := m.From, m.To, m.FromIndex
		return MoveSpec{Kind: MoveSpecTransfer, From: &from, FromIndex: &index, To: &to}
	case solitaire.RevealCard:
		tableau, index := m.Tableau, m.Index
		return MoveSpec{Kind: MoveSpecReveal, Tableau: &tableau, Index: &index}
	default:
		return MoveSpec{Kind: MoveSpecDraw}
	}
}

// GameStateFromSnapshot converts a session snapshot to its message form
func GameStateFromSnapshot(snap game.Snapshot) GameStateData {
	return GameStateData{
		GameID:    snap.ID,
		Seed:      snap.Seed,
		State:     snap.State,
		Score:     snap.Score,
		Moves:     snap.Moves,
		ElapsedMs: snap.Elapsed.Milliseconds(),
		Won:       snap.Won,
		CanUndo:   snap.CanUndo,
	}
}
