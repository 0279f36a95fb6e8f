package state

import (
	"sync"

	"github.com/lllllan02/holdem/internal/protocol"
)

// Store holds the latest authoritative table snapshot together with the
// local viewer's identity. Snapshots are replaced wholesale; readers never
// observe a partial update.
type Store struct {
	mu       sync.RWMutex
	userID   string
	snapshot *protocol.GameState
}

// NewStore creates a store for the given local identity
func NewStore(userID string) *Store {
	return &Store{userID: userID}
}

// UserID returns the local viewer's identity
func (s *Store) UserID() string {
	return s.userID
}

// Replace swaps in a new snapshot, discarding the previous one entirely
func (s *Store) Replace(g *protocol.GameState) {
	s.mu.Lock()
	s.snapshot = g
	s.mu.Unlock()
}

// Latest returns the current snapshot, or nil before the first state message
func (s *Store) Latest() *protocol.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// View returns the current snapshot paired with the local identity, ready
// for the derivation functions
func (s *Store) View() View {
	return View{Game: s.Latest(), UserID: s.userID}
}
