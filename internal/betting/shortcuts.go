package betting

import (
	"github.com/lllllan02/holdem/internal/state"
)

// Shortcut is a quick raise preset computed from the live snapshot
type Shortcut struct {
	Label  string
	Amount int
}

// Shortcuts returns the quick raise presets in display order. Every preset
// is floored at the minimum raise.
func Shortcuts(v state.View) []Shortcut {
	minRaise := v.MinRaise()
	pot := 0
	if v.Game != nil {
		pot = v.Game.Pot
	}

	floor := func(amount int) int {
		if amount < minRaise {
			return minRaise
		}
		return amount
	}

	return []Shortcut{
		{Label: "min", Amount: minRaise},
		{Label: "1/2 pot", Amount: floor(pot / 2)},
		{Label: "pot", Amount: floor(pot)},
		{Label: "1.5x pot", Amount: floor(pot * 3 / 2)},
		{Label: "2x pot", Amount: floor(pot * 2)},
		{Label: "all-in", Amount: floor(v.MaxRaise())},
	}
}
