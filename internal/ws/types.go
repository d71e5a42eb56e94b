package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages the feed carries
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypePing      MessageType = "ping"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewError builds an error message. The payload is always valid JSON.
func NewError(text string) Message {
	payload, _ := json.Marshal(ErrorPayload{Error: text})
	return Message{Type: MessageTypeError, Payload: payload}
}
