package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/diegolorenzo12/foxpoker/internal/game"
	"github.com/diegolorenzo12/foxpoker/internal/randutil"
)

// Connection represents a WebSocket connection to a client. Each connection
// plays at most one game at a time.
type Connection struct {
	conn      *websocket.Conn
	send      chan *Message
	logger    *log.Logger
	clock     quartz.Clock
	settings  Settings
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	mu      sync.Mutex
	session *game.Session
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, logger *log.Logger, settings Settings) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:     conn,
		send:     make(chan *Message, 256),
		logger:   logger.WithPrefix("conn"),
		clock:    settings.Clock,
		settings: settings,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// Done is closed once the connection is closed
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// GameID returns the id of the game in progress, if any
func (c *Connection) GameID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return ""
	}
	return c.session.ID()
}

// SendMessage queues a message for the client
func (c *Connection) SendMessage(msg *Message) error {
	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close() // Ignore close errors
		return ErrConnectionClosed
	}
}

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

var (
	ErrConnectionClosed = websocket.ErrCloseSent
)

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }() // Ignore close errors during cleanup

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			c.sendError("", ErrCodeInvalidMessage, "Message is not valid JSON")
			continue
		}
		c.handleMessage(&msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := c.clock.NewTicker(pingPeriod, "conn", "ping")
	defer func() {
		ticker.Stop()
		_ = c.conn.Close() // Ignore close errors during cleanup
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(writeWait))
			return
		}
	}
}

// handleMessage processes incoming messages from the client
func (c *Connection) handleMessage(msg *Message) {
	c.logger.Debug("Received message", "type", msg.Type, "game", c.GameID())

	c.mu.Lock()
	defer c.mu.Unlock()

	switch msg.Type {
	case MessageTypeNewGame:
		var data NewGameData
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &data); err != nil {
				c.sendError(msg.RequestID, ErrCodeInvalidMessage, "Failed to parse new game data")
				return
			}
		}
		c.handleNewGame(msg.RequestID, data)

	case MessageTypeMove:
		var data MoveData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg.RequestID, ErrCodeInvalidMessage, "Failed to parse move data")
			return
		}
		c.handleMove(msg.RequestID, data.Move)

	case MessageTypeDraw:
		c.handleMove(msg.RequestID, MoveSpec{Kind: MoveSpecDraw})

	case MessageTypeUndo:
		c.handleUndo(msg.RequestID)

	case MessageTypeHint:
		c.handleHint(msg.RequestID)

	case MessageTypeState:
		if c.session == nil {
			c.sendError(msg.RequestID, ErrCodeNoGame, "No game in progress")
			return
		}
		c.sendState(msg.RequestID)

	default:
		c.sendError(msg.RequestID, ErrCodeInvalidMessage, "Unknown message type: "+msg.Type.String())
	}
}

// reply sends a message answering requestID
func (c *Connection) reply(requestID string, messageType MessageType, data any) {
	msg, err := NewMessage(messageType, data, c.clock.Now())
	if err != nil {
		c.logger.Error("Failed to create message", "type", messageType, "error", err)
		return
	}
	msg.RequestID = requestID
	_ = c.SendMessage(msg) // Ignore send errors
}

// sendError sends an error message to the client
func (c *Connection) sendError(requestID, code, message string) {
	c.reply(requestID, MessageTypeError, ErrorData{Code: code, Message: message})
}

func (c *Connection) sendState(requestID string) {
	c.reply(requestID, MessageTypeGameState, GameStateFromSnapshot(c.session.Snapshot()))
}

func (c *Connection) handleNewGame(requestID string, data NewGameData) {
	seed := randutil.NewSeed()
	if data.Seed != nil {
		seed = *data.Seed
	}

	c.session = game.NewSession(seed,
		game.WithClock(c.clock),
		game.WithScoring(c.settings.Scoring),
		game.WithLogger(c.logger),
		game.WithIntegrityChecks(c.settings.IntegrityChecks),
	)
	c.sendState(requestID)
}

func (c *Connection) handleMove(requestID string, spec MoveSpec) {
	if c.session == nil {
		c.sendError(requestID, ErrCodeNoGame, "No game in progress")
		return
	}

	move, err := spec.Resolve(c.session.State())
	if err != nil {
		code := ErrCodeInvalidMove
		if errors.Is(err, ErrBadMoveSpec) {
			code = ErrCodeInvalidMessage
		}
		c.sendError(requestID, code, err.Error())
		return
	}

	if err := c.session.Apply(move); err != nil {
		c.logger.Debug("Move rejected", "move", move, "error", err)
		c.sendError(requestID, ErrCodeInvalidMove, err.Error())
		return
	}

	c.sendState(requestID)
	if c.session.Won() {
		snap := c.session.Snapshot()
		c.reply(requestID, MessageTypeGameWon, GameWonData{
			GameID:    snap.ID,
			Score:     snap.Score,
			Moves:     snap.Moves,
			ElapsedMs: snap.Elapsed.Milliseconds(),
		})
	}
}

func (c *Connection) handleUndo(requestID string) {
	if c.session == nil {
		c.sendError(requestID, ErrCodeNoGame, "No game in progress")
		return
	}
	if err := c.session.Undo(); err != nil {
		if errors.Is(err, game.ErrNothingToUndo) {
			c.sendError(requestID, ErrCodeNothingToUndo, "Nothing to undo")
			return
		}
		c.sendError(requestID, ErrCodeInvalidMove, err.Error())
		return
	}
	c.sendState(requestID)
}

func (c *Connection) handleHint(requestID string) {
	if c.session == nil {
		c.sendError(requestID, ErrCodeNoGame, "No game in progress")
		return
	}

	decision, ok := c.session.Hint()
	if !ok {
		c.reply(requestID, MessageTypeHint, HintData{})
		return
	}
	spec := MoveSpecFromMove(decision.Move)
	c.reply(requestID, MessageTypeHint, HintData{Move: &spec, Reasoning: decision.Reasoning})
}
