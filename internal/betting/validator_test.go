package betting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lllllan02/holdem/internal/protocol"
	"github.com/lllllan02/holdem/internal/state"
)

func viewWith(chips, myBet, currentBet, bigBlind, pot int) state.View {
	return state.View{
		Game: &protocol.GameState{
			Players: []protocol.Seat{{
				UserID:     "u1",
				Name:       "alice",
				Status:     protocol.SeatSitting,
				Chips:      chips,
				CurrentBet: myBet,
			}},
			CurrentBet: currentBet,
			BigBlind:   bigBlind,
			Pot:        pot,
		},
		UserID: "u1",
	}
}

func TestValidateRaise(t *testing.T) {
	// Stack 50 with 20 already in, facing a 40 bet with a 20 big blind:
	// legal raises run from 60 up to the all-in 70.
	v := viewWith(50, 20, 40, 20, 100)

	t.Run("legal amount accepted", func(t *testing.T) {
		res := ValidateRaise(v, 65)
		assert.True(t, res.OK)
		assert.Equal(t, 65, res.Amount)
		assert.Equal(t, 65, res.Draft)
		assert.Empty(t, res.Advice)
	})

	t.Run("below minimum rejected with draft at minimum", func(t *testing.T) {
		res := ValidateRaise(v, 45)
		assert.False(t, res.OK)
		assert.Equal(t, 60, res.Draft)
		assert.Equal(t, "minimum raise is 60", res.Advice)
	})

	t.Run("beyond stack rejected with draft at all-in", func(t *testing.T) {
		res := ValidateRaise(v, 200)
		assert.False(t, res.OK)
		assert.Equal(t, 70, res.Draft)
		assert.Equal(t, "not enough chips, maximum raise is 70", res.Advice)
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		assert.True(t, ValidateRaise(v, 60).OK)
		assert.True(t, ValidateRaise(v, 70).OK)
	})
}

func TestValidateRaiseInput(t *testing.T) {
	v := viewWith(500, 0, 40, 20, 100)

	t.Run("numeric input validated", func(t *testing.T) {
		res := ValidateRaiseInput(v, " 80 ")
		assert.True(t, res.OK)
		assert.Equal(t, 80, res.Amount)
	})

	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "lots"},
		{"empty", ""},
		{"negative", "-20"},
		{"fraction", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateRaiseInput(v, tt.raw)
			assert.False(t, res.OK)
			assert.Equal(t, 60, res.Draft)
			assert.Equal(t, "enter a valid amount", res.Advice)
		})
	}
}

func TestShortcuts(t *testing.T) {
	t.Run("pot sized presets", func(t *testing.T) {
		v := viewWith(1000, 0, 40, 20, 200)

		shortcuts := Shortcuts(v)
		labels := make([]string, len(shortcuts))
		amounts := make([]int, len(shortcuts))
		for i, s := range shortcuts {
			labels[i] = s.Label
			amounts[i] = s.Amount
		}

		assert.Equal(t, []string{"min", "1/2 pot", "pot", "1.5x pot", "2x pot", "all-in"}, labels)
		assert.Equal(t, []int{60, 100, 200, 300, 400, 1000}, amounts)
	})

	t.Run("small pot presets floored at minimum raise", func(t *testing.T) {
		v := viewWith(1000, 0, 40, 20, 30)

		for _, s := range Shortcuts(v) {
			assert.GreaterOrEqual(t, s.Amount, 60, "%s preset below minimum raise", s.Label)
		}
	})

	t.Run("short stack all-in floored at minimum raise", func(t *testing.T) {
		v := viewWith(30, 0, 40, 20, 100)

		shortcuts := Shortcuts(v)
		allIn := shortcuts[len(shortcuts)-1]
		assert.Equal(t, "all-in", allIn.Label)
		assert.Equal(t, 60, allIn.Amount)
	})
}
