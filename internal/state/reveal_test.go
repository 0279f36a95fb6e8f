package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lllllan02/holdem/internal/deck"
	"github.com/lllllan02/holdem/internal/protocol"
)

func dealt(userID, name string) protocol.Seat {
	return protocol.Seat{
		UserID: userID,
		Name:   name,
		Status: protocol.SeatSitting,
		HoleCards: []deck.Card{
			deck.NewCard(deck.Spades, deck.Ace),
			deck.NewCard(deck.Hearts, deck.King),
		},
	}
}

func TestReveal(t *testing.T) {
	game := &protocol.GameState{GamePhase: protocol.PhaseShowdownReveal}
	assert.Equal(t, RevealStaged, View{Game: game}.Reveal())

	game.GamePhase = protocol.PhaseShowdown
	assert.Equal(t, RevealFinal, View{Game: game}.Reveal())

	for _, phase := range []string{"", protocol.PhasePreflop, protocol.PhaseFlop, protocol.PhaseTurn, protocol.PhaseRiver} {
		game.GamePhase = phase
		assert.Equal(t, RevealHidden, View{Game: game}.Reveal(), "phase %q", phase)
	}

	assert.Equal(t, RevealHidden, View{}.Reveal())
}

func TestCardsVisibleStaged(t *testing.T) {
	// Reveal order 2, 0, 1 with the cursor on the second position: seats 2
	// and 0 show, seat 1 stays hidden.
	game := &protocol.GameState{
		Players: []protocol.Seat{
			dealt("u0", "alice"),
			dealt("u1", "bob"),
			dealt("u2", "carol"),
		},
		GamePhase:       protocol.PhaseShowdownReveal,
		ShowdownOrder:   []int{2, 0, 1},
		CurrentShowdown: 1,
	}
	v := View{Game: game, UserID: "spectator"}

	assert.True(t, v.CardsVisible(2))
	assert.True(t, v.CardsVisible(0))
	assert.False(t, v.CardsVisible(1))
	assert.Equal(t, []int{0, 2}, v.RevealedSeats())

	t.Run("advancing the cursor only adds reveals", func(t *testing.T) {
		game.CurrentShowdown = 2
		assert.True(t, v.CardsVisible(2))
		assert.True(t, v.CardsVisible(0))
		assert.True(t, v.CardsVisible(1))
	})

	t.Run("unset cursor reveals nothing", func(t *testing.T) {
		game.CurrentShowdown = protocol.NoSeat
		assert.False(t, v.CardsVisible(0))
		assert.False(t, v.CardsVisible(2))
	})

	t.Run("seat absent from the order never reveals", func(t *testing.T) {
		game.ShowdownOrder = []int{2, 0}
		game.CurrentShowdown = 1
		assert.False(t, v.CardsVisible(1))
	})
}

func TestCardsVisibleOwnSeat(t *testing.T) {
	game := &protocol.GameState{
		Players: []protocol.Seat{
			dealt("u0", "alice"),
			dealt("u1", "bob"),
		},
		GamePhase: protocol.PhaseFlop,
	}

	v := View{Game: game, UserID: "u0"}
	assert.True(t, v.CardsVisible(0), "own cards always show")
	assert.False(t, v.CardsVisible(1))
}

func TestCardsVisibleFinal(t *testing.T) {
	folded := protocol.Seat{UserID: "u2", Name: "carol", Status: protocol.SeatFolded}

	game := &protocol.GameState{
		Players: []protocol.Seat{
			dealt("u0", "alice"),
			dealt("u1", "bob"),
			folded,
			{Status: protocol.SeatEmpty},
		},
		GamePhase: protocol.PhaseShowdown,
	}
	v := View{Game: game, UserID: "spectator"}

	assert.True(t, v.CardsVisible(0))
	assert.True(t, v.CardsVisible(1))
	assert.False(t, v.CardsVisible(2), "no dealt cards, nothing to show")
	assert.False(t, v.CardsVisible(3))
	assert.False(t, v.CardsVisible(9))
}
