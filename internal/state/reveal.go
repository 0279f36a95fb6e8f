package state

import (
	"github.com/lllllan02/holdem/internal/protocol"
)

// RevealState describes how far the staged showdown disclosure has
// progressed. It is driven entirely by the phase field of each snapshot;
// the server owns the pacing and the client holds no timers of its own.
type RevealState int

const (
	// RevealHidden means no reveal is in progress
	RevealHidden RevealState = iota
	// RevealStaged means hands are disclosed one by one following the
	// server's reveal order and cursor
	RevealStaged
	// RevealFinal means the showdown is complete and all dealt hands show
	RevealFinal
)

// Reveal returns the reveal state for the snapshot's phase
func (v View) Reveal() RevealState {
	if v.Game == nil {
		return RevealHidden
	}
	switch v.Game.GamePhase {
	case protocol.PhaseShowdownReveal:
		return RevealStaged
	case protocol.PhaseShowdown:
		return RevealFinal
	default:
		return RevealHidden
	}
}

// CardsVisible reports whether seat's hole cards are visible to the viewer.
//
// The viewer always sees their own seat. In the final state any seat that
// actually holds dealt cards shows. During the staged state a seat shows
// only once its position in the reveal order is at or before the cursor;
// seats absent from the order never reveal. Because the cursor is
// non-decreasing within one staged phase, visibility is monotonic: a seat
// once revealed stays revealed.
func (v View) CardsVisible(seat int) bool {
	if v.Game == nil {
		return false
	}
	s := v.Game.Seat(seat)
	if s == nil || s.IsEmpty() || len(s.HoleCards) == 0 {
		return false
	}

	if seat == v.MySeat() {
		return true
	}

	switch v.Reveal() {
	case RevealFinal:
		return true
	case RevealStaged:
		cursor := v.Game.CurrentShowdown
		if cursor == protocol.NoSeat {
			return false
		}
		for pos, idx := range v.Game.ShowdownOrder {
			if idx == seat {
				return pos <= cursor
			}
		}
		return false
	default:
		return false
	}
}

// RevealedSeats returns the indices of all seats whose hole cards are
// currently visible to the viewer, ascending
func (v View) RevealedSeats() []int {
	if v.Game == nil {
		return nil
	}
	var seats []int
	for i := range v.Game.Players {
		if v.CardsVisible(i) {
			seats = append(seats, i)
		}
	}
	return seats
}
