package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is one of the five move kinds a seat can submit. The set is
// closed: every implementation lives in this file, and equality is
// structural (variant plus payload), so actions can be compared with ==
// and checked for membership in a legal-move set.
type Action interface {
	// Notation returns the single-token wire form of the action.
	// ParseAction(a.Notation()) always reconstructs an equal action.
	Notation() string

	isAction()
}

// PlayCard commits the named card from the seat's hand to its stack
type PlayCard struct {
	Card Card
}

func (a PlayCard) Notation() string { return a.Card.String() }
func (PlayCard) isAction()          {}

// Bet declares how many cards the seat commits to revealing without
// hitting a skull
type Bet struct {
	Amount int
}

func (a Bet) Notation() string { return "B" + strconv.Itoa(a.Amount) }
func (Bet) isAction()          {}

// RevealOpponentStack flips the top card of the named opponent's stack
type RevealOpponentStack struct {
	Seat string
}

func (a RevealOpponentStack) Notation() string { return "R" + a.Seat }
func (RevealOpponentStack) isAction()          {}

// LoseCard permanently discards one instance of the named card after an
// auto-skull forfeit
type LoseCard struct {
	Card Card
}

func (a LoseCard) Notation() string { return "L" + a.Card.String() }
func (LoseCard) isAction()          {}

// Pass stops the seat from playing for the rest of the round. It is also
// the forced no-op for dead or inactive seats.
type Pass struct{}

func (Pass) Notation() string { return "P" }
func (Pass) isAction()        {}

// ParseAction decodes a single-token action notation.
func ParseAction(notation string) (Action, error) {
	switch {
	case strings.HasPrefix(notation, "P"):
		return Pass{}, nil
	case strings.HasPrefix(notation, "B"):
		amount, err := strconv.Atoi(notation[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: bad bet amount in %q", ErrInvalidNotation, notation)
		}
		return Bet{Amount: amount}, nil
	case strings.HasPrefix(notation, "R"):
		return RevealOpponentStack{Seat: notation[1:]}, nil
	case strings.HasPrefix(notation, "L"):
		card, err := ParseCard(notation[1:])
		if err != nil {
			return nil, err
		}
		return LoseCard{Card: card}, nil
	case notation == "F":
		return PlayCard{Card: Flower}, nil
	case notation == "S":
		return PlayCard{Card: Skull}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
	}
}

// containsAction reports structural membership of a in the move set.
func containsAction(moves []Action, a Action) bool {
	for _, m := range moves {
		if m == a {
			return true
		}
	}
	return false
}

// Notations converts a move set to its wire tokens.
func Notations(moves []Action) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}

// parseActions decodes a list of tokens, failing on the first bad one.
func parseActions(tokens []string) ([]Action, error) {
	out := make([]Action, len(tokens))
	for i, tok := range tokens {
		a, err := ParseAction(tok)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}
