package client

import (
	"github.com/lllllan02/holdem/internal/protocol"
)

// Typed outbound intents. Each is fire-and-forget: when the connection is
// down the intent is dropped with a diagnostic and the next snapshot shows
// the unchanged server state.

// SitDown asks to take the given 0-based seat
func (c *Client) SitDown(seat int) {
	c.Send(protocol.MessageTypeSitDown, protocol.SeatData{SeatID: seat})
}

// LeaveSeat asks to vacate the given 0-based seat
func (c *Client) LeaveSeat(seat int) {
	c.Send(protocol.MessageTypeLeaveSeat, protocol.SeatData{SeatID: seat})
}

// Ready marks the viewer ready for the next round
func (c *Client) Ready() {
	c.Send(protocol.MessageTypeReady, struct{}{})
}

// Unready withdraws the viewer's ready mark
func (c *Client) Unready() {
	c.Send(protocol.MessageTypeUnready, struct{}{})
}

// Fold folds the viewer's hand
func (c *Client) Fold() {
	c.Send(protocol.MessageTypeFold, struct{}{})
}

// Check passes the action without betting
func (c *Client) Check() {
	c.Send(protocol.MessageTypeCheck, struct{}{})
}

// Call matches the current bet
func (c *Client) Call() {
	c.Send(protocol.MessageTypeCall, struct{}{})
}

// Raise raises to the given amount. Callers validate the amount first; the
// server still has the final say.
func (c *Client) Raise(amount int) {
	c.Send(protocol.MessageTypeRaise, protocol.RaiseData{Amount: amount})
}

// StartGame asks the server to start a round
func (c *Client) StartGame() {
	c.Send(protocol.MessageTypeStartGame, struct{}{})
}

// EndGame asks the server to end the current round
func (c *Client) EndGame() {
	c.Send(protocol.MessageTypeEndGame, struct{}{})
}
