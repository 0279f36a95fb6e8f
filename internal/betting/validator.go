// Package betting mirrors the server's raise rules locally so clearly
// illegal input is rejected before a message is sent. The validation is
// advisory only; the server remains the sole authority.
package betting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lllllan02/holdem/internal/state"
)

// Result is the outcome of a pre-flight raise check. When a raise is
// rejected, Draft holds the nearest legal amount for the caller's working
// draft and Advice the transient message to surface.
type Result struct {
	OK     bool
	Amount int
	Draft  int
	Advice string
}

// ValidateRaiseInput validates a raw textual raise amount as typed by the
// user. Anything that is not a well-formed non-negative integer resets the
// draft to the minimum raise.
func ValidateRaiseInput(v state.View, raw string) Result {
	amount, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || amount < 0 {
		return Result{
			Draft:  v.MinRaise(),
			Advice: "enter a valid amount",
		}
	}
	return ValidateRaise(v, amount)
}

// ValidateRaise validates a raise-to amount against the bounds derived from
// the latest snapshot. A rejected amount never reaches the wire.
func ValidateRaise(v state.View, amount int) Result {
	minRaise := v.MinRaise()
	if amount < minRaise {
		return Result{
			Draft:  minRaise,
			Advice: fmt.Sprintf("minimum raise is %d", minRaise),
		}
	}

	maxRaise := v.MaxRaise()
	if amount > maxRaise {
		return Result{
			Draft:  maxRaise,
			Advice: fmt.Sprintf("not enough chips, maximum raise is %d", maxRaise),
		}
	}

	return Result{OK: true, Amount: amount, Draft: amount}
}
