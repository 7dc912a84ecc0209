package game

import "fmt"

// Card represents a Skull card value
type Card int

const (
	Flower Card = iota
	Skull
	// Hidden is the redaction placeholder used in projected state.
	// It is never a real holding.
	Hidden
)

// String returns the single-character token for the card
func (c Card) String() string {
	switch c {
	case Flower:
		return "F"
	case Skull:
		return "S"
	default:
		return "?"
	}
}

// IsReal returns true for card values a seat can actually hold
func (c Card) IsReal() bool {
	return c == Flower || c == Skull
}

// ParseCard decodes a card token as it appears in action notation
func ParseCard(token string) (Card, error) {
	switch token {
	case "F":
		return Flower, nil
	case "S":
		return Skull, nil
	default:
		return 0, fmt.Errorf("%w: unknown card token %q", ErrInvalidNotation, token)
	}
}
