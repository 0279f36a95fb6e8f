package protocol

import (
	"github.com/lllllan02/holdem/internal/deck"
)

// Table status values
const (
	StatusWaiting = "waiting"
	StatusPlaying = "playing"
)

// Game phases within a playing table. The empty phase means no hand is in
// progress.
const (
	PhasePreflop        = "preflop"
	PhaseFlop           = "flop"
	PhaseTurn           = "turn"
	PhaseRiver          = "river"
	PhaseShowdownReveal = "showdown_reveal"
	PhaseShowdown       = "showdown"
)

// Seat status values
const (
	SeatEmpty   = "empty"
	SeatSitting = "sitting"
	SeatFolded  = "folded"
	SeatAllIn   = "allin"
)

// MaxSeats is the fixed table size; seat indices are 0-based and stable.
const MaxSeats = 7

// NoSeat marks an unassigned seat index (dealer, current player, cursor).
// Kept out-of-band so it can never be confused with seat 0.
const NoSeat = -1

// GameState is one complete, self-contained snapshot of the table. Every
// game_state message replaces the previous snapshot wholesale; the server
// never sends deltas.
type GameState struct {
	Players         []Seat      `json:"players"`
	GameStatus      string      `json:"gameStatus"`
	GamePhase       string      `json:"gamePhase"`
	CommunityCards  []deck.Card `json:"communityCards"`
	Pot             int         `json:"pot"`
	CurrentBet      int         `json:"currentBet"`
	DealerPos       int         `json:"dealerPos"`
	CurrentPlayer   int         `json:"currentPlayer"`
	SmallBlind      int         `json:"smallBlind"`
	BigBlind        int         `json:"bigBlind"`
	CountdownTimer  int         `json:"countdownTimer"`
	ShowdownOrder   []int       `json:"showdownOrder"`
	CurrentShowdown int         `json:"currentShowdown"`
	Spectators      int         `json:"spectators"`
}

// Seat is an addressable slot at the table, empty or occupied.
type Seat struct {
	UserID     string      `json:"userId"`
	Name       string      `json:"name"`
	Status     string      `json:"status"`
	Chips      int         `json:"chips"`
	HoleCards  []deck.Card `json:"holeCards"`
	CurrentBet int         `json:"currentBet"`
	TotalBet   int         `json:"totalBet"`
	HasActed   bool        `json:"hasActed"`
	HandRank   *HandRank   `json:"handRank"`
	WinAmount  int         `json:"winAmount"`
	IsReady    bool        `json:"isReady"`
}

// HandRank describes the strength of a revealed hand, display only; the
// server has already decided the winner.
type HandRank struct {
	Rank   int   `json:"rank"`
	Values []int `json:"values"`
}

// Hand rank tiers
const (
	HighCard      = 1
	OnePair       = 2
	TwoPair       = 3
	ThreeOfAKind  = 4
	Straight      = 5
	Flush         = 6
	FullHouse     = 7
	FourOfAKind   = 8
	StraightFlush = 9
	RoyalFlush    = 10
)

var handRankNames = map[int]string{
	HighCard:      "High Card",
	OnePair:       "One Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

// Name returns the display name for the hand's tier
func (h *HandRank) Name() string {
	if name, ok := handRankNames[h.Rank]; ok {
		return name
	}
	return "Unknown"
}

// IsEmpty reports whether the seat is unoccupied. A seat that reads as
// occupied but carries the empty status or no identity is contradictory and
// treated as empty.
func (s *Seat) IsEmpty() bool {
	return s.Status == SeatEmpty || s.UserID == "" || s.Name == ""
}

// InHand reports whether the seat is still contesting the current hand
func (s *Seat) InHand() bool {
	return s.Status == SeatSitting || s.Status == SeatAllIn
}

// normalize patches up a freshly decoded snapshot: contradictory seats reset
// to empty, and out-of-range sentinel indices pinned to NoSeat.
func (g *GameState) normalize() {
	for i := range g.Players {
		if g.Players[i].IsEmpty() {
			g.Players[i] = Seat{Status: SeatEmpty}
		}
	}
	if g.DealerPos < 0 || g.DealerPos >= len(g.Players) {
		g.DealerPos = NoSeat
	}
	if g.CurrentPlayer < 0 || g.CurrentPlayer >= len(g.Players) {
		g.CurrentPlayer = NoSeat
	}
	if g.CurrentShowdown < 0 {
		g.CurrentShowdown = NoSeat
	} else if g.CurrentShowdown >= len(g.ShowdownOrder) {
		// A cursor past the end means every position has been passed;
		// clamping down keeps reveals monotonic.
		g.CurrentShowdown = len(g.ShowdownOrder) - 1
	}
}

// Seat returns the seat at index i, or nil when out of range
func (g *GameState) Seat(i int) *Seat {
	if i < 0 || i >= len(g.Players) {
		return nil
	}
	return &g.Players[i]
}

// OccupiedSeats returns the indices of occupied seats in ascending order
func (g *GameState) OccupiedSeats() []int {
	var seats []int
	for i := range g.Players {
		if !g.Players[i].IsEmpty() {
			seats = append(seats, i)
		}
	}
	return seats
}
