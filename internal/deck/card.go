package deck

import (
	"encoding/json"
	"fmt"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// suitNames maps suits to the wire representation used by the server.
var suitNames = map[Suit]string{
	Spades:   "spades",
	Hearts:   "hearts",
	Diamonds: "diamonds",
	Clubs:    "clubs",
}

// String returns the display symbol of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Name returns the wire name of a suit (e.g. "hearts")
func (s Suit) Name() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// SuitFromName converts a wire suit name to a Suit
func SuitFromName(name string) (Suit, error) {
	for suit, n := range suitNames {
		if n == name {
			return suit, nil
		}
	}
	return 0, fmt.Errorf("unknown suit %q", name)
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the wire representation of a rank ("2"-"10", "J", "Q", "K", "A")
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Value returns the numeric value of the rank for comparison. Aces are high (14).
func (r Rank) Value() int {
	return int(r)
}

// RankFromString converts a wire rank string to a Rank
func RankFromString(s string) (Rank, error) {
	switch s {
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	default:
		var n int
		if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 2 || n > 10 {
			return 0, fmt.Errorf("unknown rank %q", s)
		}
		return Rank(n), nil
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Value returns the numeric value of the card for comparison
func (c Card) Value() int {
	return c.Rank.Value()
}

// wireCard is the JSON shape the server sends. The value field is redundant
// with rank; rank wins whenever the two disagree.
type wireCard struct {
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"`
}

// MarshalJSON implements json.Marshaler using the server's wire shape
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireCard{
		Suit:  c.Suit.Name(),
		Rank:  c.Rank.String(),
		Value: c.Rank.Value(),
	})
}

// UnmarshalJSON implements json.Unmarshaler. The numeric value is always
// rederived from the rank so the two cannot disagree locally.
func (c *Card) UnmarshalJSON(data []byte) error {
	var w wireCard
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	suit, err := SuitFromName(w.Suit)
	if err != nil {
		return err
	}
	rank, err := RankFromString(w.Rank)
	if err != nil {
		return err
	}

	c.Suit = suit
	c.Rank = rank
	return nil
}
