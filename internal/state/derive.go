package state

import (
	"fmt"

	"github.com/lllllan02/holdem/internal/protocol"
)

// View pairs a snapshot with the local viewer's identity. All derivations
// are pure functions of a View: same inputs, same outputs, no side effects.
type View struct {
	Game   *protocol.GameState
	UserID string
}

// SeatInfo is the display projection of an occupied seat
type SeatInfo struct {
	Index      int
	UserID     string
	Name       string
	Chips      int
	CurrentBet int
	Status     string
	IsReady    bool
	WinAmount  int
}

// MySeat returns the index of the first occupied seat whose identity matches
// the viewer, or protocol.NoSeat. Identity is matched by userId, never by
// trusting a seat index.
func (v View) MySeat() int {
	if v.Game == nil {
		return protocol.NoSeat
	}
	for i := range v.Game.Players {
		seat := &v.Game.Players[i]
		if !seat.IsEmpty() && seat.UserID == v.UserID {
			return i
		}
	}
	return protocol.NoSeat
}

// SeatedPlayers projects occupied seats to display info keyed by seat index.
// Empty and contradictory seats are excluded.
func (v View) SeatedPlayers() map[int]SeatInfo {
	seated := make(map[int]SeatInfo)
	if v.Game == nil {
		return seated
	}
	for i := range v.Game.Players {
		seat := &v.Game.Players[i]
		if seat.IsEmpty() {
			continue
		}
		seated[i] = SeatInfo{
			Index:      i,
			UserID:     seat.UserID,
			Name:       seat.Name,
			Chips:      seat.Chips,
			CurrentBet: seat.CurrentBet,
			Status:     seat.Status,
			IsReady:    seat.IsReady,
			WinAmount:  seat.WinAmount,
		}
	}
	return seated
}

// IsMyTurn reports whether the acting seat belongs to the viewer
func (v View) IsMyTurn() bool {
	if v.Game == nil || v.Game.CurrentPlayer == protocol.NoSeat {
		return false
	}
	seat := v.Game.Seat(v.Game.CurrentPlayer)
	return seat != nil && !seat.IsEmpty() && seat.UserID == v.UserID
}

// CallAmount returns the chips required to call the current bet. Zero when
// the viewer is not seated or already matches the bet.
func (v View) CallAmount() int {
	seat := v.mySeatRef()
	if seat == nil {
		return 0
	}
	if amount := v.Game.CurrentBet - seat.CurrentBet; amount > 0 {
		return amount
	}
	return 0
}

// CanCheck reports whether checking is legal: nothing owed to the pot
func (v View) CanCheck() bool {
	return v.CallAmount() == 0
}

// MinRaise returns the minimum legal raise-to amount
func (v View) MinRaise() int {
	if v.Game == nil {
		return 0
	}
	return v.Game.CurrentBet + v.Game.BigBlind
}

// MaxRaise returns the all-in raise-to amount for the viewer's seat
func (v View) MaxRaise() int {
	seat := v.mySeatRef()
	if seat == nil {
		return 0
	}
	return seat.Chips + seat.CurrentBet
}

// MyChips returns the viewer's stack, or 0 when not seated
func (v View) MyChips() int {
	seat := v.mySeatRef()
	if seat == nil {
		return 0
	}
	return seat.Chips
}

// MyReady returns the viewer's ready flag, or false when not seated
func (v View) MyReady() bool {
	seat := v.mySeatRef()
	if seat == nil {
		return false
	}
	return seat.IsReady
}

func (v View) mySeatRef() *protocol.Seat {
	idx := v.MySeat()
	if idx == protocol.NoSeat {
		return nil
	}
	return v.Game.Seat(idx)
}

// TableRoles holds the display-only positional facts derived from a snapshot
type TableRoles struct {
	Dealer     int
	SmallBlind int
	BigBlind   int
}

// Roles derives the dealer and blind seats for display. Blinds exist only
// while the table is playing: occupied seats sorted ascending by index, the
// first is small blind and the second big blind. When the server has not
// assigned a dealer the first occupied seat stands in; the fallback is
// display only and never sent back to the server.
//
// This fixed two-blind rule does not rotate relative to the dealer for
// bigger tables; it mirrors the server's observed behavior and is not
// betting-order authority.
func (v View) Roles() TableRoles {
	roles := TableRoles{
		Dealer:     protocol.NoSeat,
		SmallBlind: protocol.NoSeat,
		BigBlind:   protocol.NoSeat,
	}
	if v.Game == nil {
		return roles
	}

	roles.Dealer = v.Game.DealerPos

	if v.Game.GameStatus != protocol.StatusPlaying {
		return roles
	}

	occupied := v.Game.OccupiedSeats()
	if roles.Dealer == protocol.NoSeat && len(occupied) > 0 {
		roles.Dealer = occupied[0]
	}
	if len(occupied) > 0 {
		roles.SmallBlind = occupied[0]
	}
	if len(occupied) > 1 {
		roles.BigBlind = occupied[1]
	}
	return roles
}

// ReadyStatus returns the ready and occupied seat counts
func (v View) ReadyStatus() (ready, total int) {
	if v.Game == nil {
		return 0, 0
	}
	for i := range v.Game.Players {
		seat := &v.Game.Players[i]
		if seat.IsEmpty() {
			continue
		}
		total++
		if seat.IsReady {
			ready++
		}
	}
	return ready, total
}

// ReadyStatusText formats the ready aggregate for display, empty when no
// seats are occupied
func (v View) ReadyStatusText() string {
	ready, total := v.ReadyStatus()
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d ready", ready, total)
}
