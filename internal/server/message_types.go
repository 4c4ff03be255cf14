package server

// MessageType represents a WebSocket message type with type safety
type MessageType string

// WebSocket message type constants
const (
	// Client to server messages
	MessageTypeNewGame MessageType = "new_game"
	MessageTypeMove    MessageType = "move"
	MessageTypeDraw    MessageType = "draw"
	MessageTypeUndo    MessageType = "undo"
	MessageTypeState   MessageType = "state"

	// MessageTypeHint is sent by the client to ask for a hint and by the
	// server with the suggested move
	MessageTypeHint MessageType = "hint"

	// Server to client messages
	MessageTypeGameState MessageType = "game_state"
	MessageTypeGameWon   MessageType = "game_won"
	MessageTypeError     MessageType = "error"
)

// Error codes carried by error messages
const (
	ErrCodeInvalidMessage = "invalid_message"
	ErrCodeInvalidMove    = "invalid_move"
	ErrCodeNoGame         = "no_game"
	ErrCodeNothingToUndo  = "nothing_to_undo"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}
