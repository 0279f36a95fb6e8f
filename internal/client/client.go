// Package client owns the single websocket connection to the table server:
// lifecycle, reconnection, and typed dispatch of inbound messages to
// subscribers. One instance is constructed by the root scope and injected
// wherever the connection is needed.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lllllan02/holdem/internal/protocol"
)

// ConnState describes the connection lifecycle
type ConnState int

const (
	// StateDisconnected means no connection and no retry pending
	StateDisconnected ConnState = iota
	// StateConnected means the connection is open and reading
	StateConnected
	// StateRetrying means a reconnect attempt is scheduled
	StateRetrying
)

// StateHandler receives every decoded table snapshot
type StateHandler func(*protocol.GameState)

// ErrorHandler receives every server-reported error message
type ErrorHandler func(string)

type subscriber[T any] struct {
	id int
	fn T
}

// Client is the websocket channel client. All inbound messages are decoded
// and dispatched sequentially in arrival order; subscribers run on the read
// goroutine in registration order.
type Client struct {
	serverURL string
	logger    *log.Logger
	clock     quartz.Clock

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.RWMutex
	conn      *websocket.Conn
	state     ConnState
	attempt   int
	nextSubID int
	stateSubs []subscriber[StateHandler]
	errorSubs []subscriber[ErrorHandler]
}

// ReconnectDelay is the fixed pause before each reconnect attempt. There is
// no cap on attempts and no exponential growth: the client keeps trying for
// as long as the process lives.
const ReconnectDelay = 3 * time.Second

// New creates a channel client targeting the given server URL. The URL may
// use an http, https, ws or wss scheme; the websocket endpoint is resolved
// from it on every dial.
func New(serverURL string, logger *log.Logger, clock quartz.Clock) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		serverURL: serverURL,
		logger:    logger.WithPrefix("client"),
		clock:     clock,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// dialURL recomputes the websocket endpoint from the configured server URL.
// Recomputed per attempt so a changed config value is picked up by the next
// reconnect.
func (c *Client) dialURL() (string, error) {
	u, err := url.Parse(c.serverURL)
	if err != nil {
		return "", fmt.Errorf("invalid server URL: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		u.Scheme = "ws"
	}
	u.Path = "/ws"

	return u.String(), nil
}

// Connect establishes the websocket connection and starts the read loop.
// It is idempotent: a no-op while a connection is already open. A failed
// dial schedules a retry after the fixed delay.
func (c *Client) Connect() error {
	c.mu.Lock()
	if c.state == StateConnected {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	target, err := c.dialURL()
	if err != nil {
		return err
	}

	c.logger.Info("connecting", "url", target)

	conn, _, err := websocket.DefaultDialer.Dial(target, nil)
	if err != nil {
		c.logger.Warn("connect failed", "error", err)
		c.scheduleReconnect()
		return fmt.Errorf("failed to connect: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.state = StateConnected
	c.attempt = 0
	c.mu.Unlock()

	c.logger.Info("connected")

	go c.readLoop(conn)
	return nil
}

// Close shuts the client down and suppresses any pending reconnect
func (c *Client) Close() error {
	c.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateDisconnected
	if c.conn != nil {
		_ = c.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}

// State returns the current connection state
func (c *Client) State() ConnState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// IsConnected reports whether the connection is open
func (c *Client) IsConnected() bool {
	return c.State() == StateConnected
}

// readLoop reads frames until the connection drops. Malformed frames are
// dropped one at a time; only a transport error ends the loop.
func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if c.ctx.Err() == nil &&
				websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Error("connection lost", "error", err)
			}
			break
		}

		var msg protocol.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Warn("dropping malformed message", "error", err)
			continue
		}

		c.dispatch(&msg)
	}

	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
		c.state = StateDisconnected
	}
	c.mu.Unlock()

	if c.ctx.Err() == nil {
		c.scheduleReconnect()
	}
}

// scheduleReconnect arms exactly one reconnect attempt after the fixed
// delay. A fresh successful connection resets the attempt counter.
func (c *Client) scheduleReconnect() {
	c.mu.Lock()
	if c.state != StateDisconnected {
		c.mu.Unlock()
		return
	}
	c.state = StateRetrying
	c.attempt++
	attempt := c.attempt
	c.mu.Unlock()

	c.logger.Info("reconnecting", "attempt", attempt, "delay", ReconnectDelay)

	go func() {
		timer := c.clock.NewTimer(ReconnectDelay)
		defer timer.Stop()

		select {
		case <-c.ctx.Done():
			return
		case <-timer.C:
		}

		c.mu.Lock()
		if c.state != StateRetrying {
			c.mu.Unlock()
			return
		}
		c.state = StateDisconnected
		c.mu.Unlock()

		// Connect schedules the next attempt itself on failure.
		_ = c.Connect()
	}()
}

// dispatch routes one inbound message to the matching subscribers, in
// registration order, on the read goroutine. Unknown kinds are logged and
// ignored; malformed payloads drop the single message.
func (c *Client) dispatch(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MessageTypeGameState:
		game, err := protocol.DecodeGameState(msg.Data)
		if err != nil {
			c.logger.Warn("dropping malformed game_state payload", "error", err)
			return
		}
		for _, sub := range c.snapshotSubs() {
			sub.fn(game)
		}
	case protocol.MessageTypeError:
		text, err := protocol.DecodeError(msg.Data)
		if err != nil {
			c.logger.Warn("dropping malformed error payload", "error", err)
			return
		}
		c.logger.Debug("server error", "message", text)
		for _, sub := range c.faultSubs() {
			sub.fn(text)
		}
	default:
		c.logger.Debug("ignoring unknown message type", "type", msg.Type)
	}
}

func (c *Client) snapshotSubs() []subscriber[StateHandler] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	subs := make([]subscriber[StateHandler], len(c.stateSubs))
	copy(subs, c.stateSubs)
	return subs
}

func (c *Client) faultSubs() []subscriber[ErrorHandler] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	subs := make([]subscriber[ErrorHandler], len(c.errorSubs))
	copy(subs, c.errorSubs)
	return subs
}

// OnState subscribes to table snapshots. The returned function removes the
// subscription.
func (c *Client) OnState(fn StateHandler) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextSubID++
	id := c.nextSubID
	c.stateSubs = append(c.stateSubs, subscriber[StateHandler]{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, sub := range c.stateSubs {
			if sub.id == id {
				c.stateSubs = append(c.stateSubs[:i], c.stateSubs[i+1:]...)
				return
			}
		}
	}
}

// OnError subscribes to server-reported errors. The returned function
// removes the subscription.
func (c *Client) OnError(fn ErrorHandler) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextSubID++
	id := c.nextSubID
	c.errorSubs = append(c.errorSubs, subscriber[ErrorHandler]{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, sub := range c.errorSubs {
			if sub.id == id {
				c.errorSubs = append(c.errorSubs[:i], c.errorSubs[i+1:]...)
				return
			}
		}
	}
}

// Send marshals and writes one outbound message. When no connection is
// open the message is dropped with a logged diagnostic: the user's intent
// is simply lost and the next snapshot will show the unchanged server
// state. Send never surfaces an error to the intent path.
func (c *Client) Send(msgType protocol.MessageType, data interface{}) {
	msg, err := protocol.NewMessage(msgType, data)
	if err != nil {
		c.logger.Error("failed to encode message", "type", msgType, "error", err)
		return
	}

	c.mu.RLock()
	conn := c.conn
	connected := c.state == StateConnected
	c.mu.RUnlock()

	if !connected || conn == nil {
		c.logger.Warn("not connected, dropping message", "type", msgType)
		return
	}

	if err := conn.WriteJSON(msg); err != nil {
		c.logger.Error("failed to write message", "type", msgType, "error", err)
	}
}
