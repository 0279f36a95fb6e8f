package protocol

import (
	"encoding/json"
)

// Message represents a WebSocket message between client and server
type Message struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// MessageType represents the type of a WebSocket message
type MessageType string

// Server to client message types
const (
	MessageTypeGameState MessageType = "game_state"
	MessageTypeError     MessageType = "error"
)

// Client to server message types
const (
	MessageTypeSitDown   MessageType = "sit_down"
	MessageTypeLeaveSeat MessageType = "leave_seat"
	MessageTypeReady     MessageType = "ready"
	MessageTypeUnready   MessageType = "unready"
	MessageTypeFold      MessageType = "fold"
	MessageTypeCheck     MessageType = "check"
	MessageTypeCall      MessageType = "call"
	MessageTypeRaise     MessageType = "raise"
	MessageTypeStartGame MessageType = "start_game"
	MessageTypeEndGame   MessageType = "end_game"
)

// Client to server message data structures

// SeatData is sent when sitting at or leaving a seat
type SeatData struct {
	SeatID int `json:"seatId"`
}

// RaiseData is sent when raising
type RaiseData struct {
	Amount int `json:"amount"`
}

// Server to client message data structures

// GameStateData wraps the full table snapshot
type GameStateData struct {
	Game *GameState `json:"game"`
}

// ErrorData carries a human-readable server-reported fault
type ErrorData struct {
	Message string `json:"message"`
}

// NewMessage creates a new message with the given type and data
func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type: msgType,
		Data: jsonData,
	}, nil
}

// DecodeGameState decodes a game_state payload into a snapshot
func DecodeGameState(data json.RawMessage) (*GameState, error) {
	var payload GameStateData
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	if payload.Game == nil {
		payload.Game = &GameState{}
	}
	payload.Game.normalize()
	return payload.Game, nil
}

// DecodeError decodes an error payload into its message text
func DecodeError(data json.RawMessage) (string, error) {
	var payload ErrorData
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}
