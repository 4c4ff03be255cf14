package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/diegolorenzo12/foxpoker/internal/bot"
	"github.com/diegolorenzo12/foxpoker/internal/randutil"
	"github.com/diegolorenzo12/foxpoker/solitaire"
)

var (
	// ErrIllegalMove wraps the validator's reason for refusing a move
	ErrIllegalMove = errors.New("illegal move")
	// ErrNoEffect is returned for a structural move that would change nothing
	ErrNoEffect = errors.New("move has no effect")
	// ErrNothingToUndo is returned by Undo with an empty history
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrGameOver is returned by Apply once the game is won
	ErrGameOver = errors.New("game is already won")
	// ErrStaleMove is returned for a transfer whose cards are not where it says
	ErrStaleMove = errors.New("move does not match the table")
	// ErrBuriedCard is returned for a reveal below the top of a column
	ErrBuriedCard = errors.New("only the top card of a column can be revealed")
)

// Session is one game in progress: the current snapshot, the snapshots
// before it, the score and the clock. A Session is not safe for concurrent use.
type Session struct {
	id      string
	seed    int64
	state   solitaire.GameState
	history []solitaire.GameState

	score   int
	moves   int
	scoring Scoring

	clock    quartz.Clock
	started  time.Time
	finished time.Time

	logger         *log.Logger
	checkIntegrity bool
	hintAgent      bot.Agent
}

// Option configures a Session
type Option func(*Session)

// WithClock sets the clock used for the game timer
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithScoring sets the score deltas
func WithScoring(scoring Scoring) Option {
	return func(s *Session) { s.scoring = scoring }
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithIntegrityChecks verifies the card set after every move
func WithIntegrityChecks(enabled bool) Option {
	return func(s *Session) { s.checkIntegrity = enabled }
}

// NewSession deals a new game from seed
func NewSession(seed int64, opts ...Option) *Session {
	return NewSessionFromState(seed, solitaire.NewGame(randutil.New(seed)), opts...)
}

// NewSessionFromState starts a session at an existing layout
func NewSessionFromState(seed int64, state solitaire.GameState, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		seed:    seed,
		state:   state,
		scoring: DefaultScoring(),
		clock:   quartz.NewReal(),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With("game", s.id[:8])
	s.hintAgent = bot.NewGreedyBot(s.logger)
	s.started = s.clock.Now()
	s.logger.Info("Game started", "seed", seed)
	return s
}

// ID returns the session's unique id
func (s *Session) ID() string { return s.id }

// Seed returns the seed the game was dealt from
func (s *Session) Seed() int64 { return s.seed }

// State returns the current snapshot
func (s *Session) State() solitaire.GameState { return s.state }

// Score returns the current score
func (s *Session) Score() int { return s.score }

// Moves returns the number of moves applied, undone moves included
func (s *Session) Moves() int { return s.moves }

// CanUndo reports whether there is a snapshot to go back to
func (s *Session) CanUndo() bool { return len(s.history) > 0 }

// Won reports whether the current snapshot is a won game
func (s *Session) Won() bool { return solitaire.IsWon(s.state) }

// Elapsed returns the time played; the timer stops when the game is won
func (s *Session) Elapsed() time.Duration {
	if !s.finished.IsZero() {
		return s.finished.Sub(s.started)
	}
	return s.clock.Since(s.started)
}

// Apply validates and plays move. On success the previous snapshot is kept
// for Undo and the score is updated.
func (s *Session) Apply(move solitaire.Move) error {
	if s.Won() {
		return ErrGameOver
	}
	if err := solitaire.Validate(s.state, move); err != nil {
		s.logger.Debug("Move refused", "move", move, "reason", err)
		return fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}

	if t, ok := asTransfer(move); ok && !matchesSource(s.state, t) {
		return fmt.Errorf("%w: %w", ErrIllegalMove, ErrStaleMove)
	}
	if r, ok := move.(solitaire.RevealCard); ok && !revealsTop(s.state, r) {
		return fmt.Errorf("%w: %w", ErrIllegalMove, ErrBuriedCard)
	}

	next := solitaire.Execute(s.state, move)
	if !changed(move, s.state, next) {
		return fmt.Errorf("%w: %s", ErrNoEffect, move)
	}
	if s.checkIntegrity {
		if err := solitaire.CheckIntegrity(next); err != nil {
			s.logger.Error("Card set violation detected!", "move", move, "error", err)
			return fmt.Errorf("apply %s: %w", move, err)
		}
	}

	s.history = append(s.history, s.state)
	s.state = next
	s.moves++
	s.score += s.scoring.Delta(move.Kind())

	s.logger.Debug("Move applied", "move", move, "kind", move.Kind(), "score", s.score)

	if s.Won() {
		s.finished = s.clock.Now()
		s.logger.Info("Game won", "score", s.score, "moves", s.moves, "elapsed", s.Elapsed())
	}
	return nil
}

// Undo restores the previous snapshot and applies the undo penalty
func (s *Session) Undo() error {
	if len(s.history) == 0 {
		return ErrNothingToUndo
	}

	s.state = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.score = s.scoring.afterUndo(s.score)
	s.finished = time.Time{}

	s.logger.Debug("Move undone", "score", s.score, "history", len(s.history))
	return nil
}

// Hint suggests a move for the current snapshot
func (s *Session) Hint() (bot.Decision, bool) {
	if s.Won() {
		return bot.Decision{}, false
	}
	return s.hintAgent.MakeDecision(s.state, solitaire.LegalMoves(s.state))
}

// Snapshot is a read-only view of a session for rendering
type Snapshot struct {
	ID      string              `json:"gameId"`
	Seed    int64               `json:"seed"`
	State   solitaire.GameState `json:"state"`
	Score   int                 `json:"score"`
	Moves   int                 `json:"moves"`
	Elapsed time.Duration       `json:"-"`
	Won     bool                `json:"won"`
	CanUndo bool                `json:"canUndo"`
}

// Snapshot returns the current view of the session
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:      s.id,
		Seed:    s.seed,
		State:   s.state,
		Score:   s.score,
		Moves:   s.moves,
		Elapsed: s.Elapsed(),
		Won:     s.Won(),
		CanUndo: s.CanUndo(),
	}
}

func asTransfer(move solitaire.Move) (solitaire.Transfer, bool) {
	switch m := move.(type) {
	case solitaire.Transfer:
		return m, true
	case *solitaire.Transfer:
		if m != nil {
			return *m, true
		}
	}
	return solitaire.Transfer{}, false
}

// revealsTop reports whether r targets the top card of an existing column
func revealsTop(state solitaire.GameState, r solitaire.RevealCard) bool {
	if !solitaire.TableauPile(r.Tableau).Valid() {
		return false
	}
	return r.Index == state.Tableau[r.Tableau].Len()-1
}

// matchesSource reports whether the transfer's cards are exactly the cards it
// would take from its source pile
func matchesSource(state solitaire.GameState, t solitaire.Transfer) bool {
	want, ok := solitaire.NewTransfer(state, t.From, t.FromIndex, t.To)
	if !ok || len(want.Cards) != len(t.Cards) {
		return false
	}
	if t.From.Kind == solitaire.Tableau && want.FromIndex != t.FromIndex {
		return false
	}
	for i := range want.Cards {
		if want.Cards[i] != t.Cards[i] {
			return false
		}
	}
	return true
}

// changed reports whether a structural move did anything. Transfers that pass
// validation and match their source always change the state.
func changed(move solitaire.Move, before, after solitaire.GameState) bool {
	switch move.(type) {
	case solitaire.DrawStock:
		return before.Stock.Len() != after.Stock.Len() || before.Waste.Len() != after.Waste.Len()
	case solitaire.RevealCard:
		return solitaire.HiddenCards(before) != solitaire.HiddenCards(after)
	default:
		return true
	}
}
