package game

import (
	"github.com/Anko59/Skull/internal/randutil"
)

// Seat holds one participant's card state for the whole game: a private
// hand, the face-down stack committed this round, the publicly revealed
// pile, points, and liveness flags.
type Seat struct {
	Name     string
	Hand     []Card
	Stack    []Card
	Revealed []Card
	Points   int
	Alive    bool
	Playing  bool
}

// NewSeat creates a seat with the starting hand of three flowers and one
// skull.
func NewSeat(name string) *Seat {
	return &Seat{
		Name:    name,
		Hand:    []Card{Flower, Flower, Flower, Skull},
		Alive:   true,
		Playing: true,
	}
}

// CanPlayFlower returns true if the hand holds a flower
func (s *Seat) CanPlayFlower() bool {
	return s.holds(Flower)
}

// CanPlaySkull returns true if the hand holds the skull
func (s *Seat) CanPlaySkull() bool {
	return s.holds(Skull)
}

func (s *Seat) holds(c Card) bool {
	for _, h := range s.Hand {
		if h == c {
			return true
		}
	}
	return false
}

// PlayFlower moves one flower from hand to the top of the stack.
// The board only calls this after checking legality, but the
// precondition is enforced again here.
func (s *Seat) PlayFlower() error {
	if !s.removeFromHand(Flower) {
		return ErrNoFlower
	}
	s.Stack = append(s.Stack, Flower)
	return nil
}

// PlaySkull moves the skull from hand to the top of the stack
func (s *Seat) PlaySkull() error {
	if !s.removeFromHand(Skull) {
		return ErrNoSkull
	}
	s.Stack = append(s.Stack, Skull)
	return nil
}

// removeFromHand removes one instance of c, reporting whether it was held
func (s *Seat) removeFromHand(c Card) bool {
	for i, h := range s.Hand {
		if h == c {
			s.Hand = append(s.Hand[:i], s.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// RevealNext pops the most recently committed card off the stack and
// appends it to the revealed pile. ok is false when the stack is empty.
// Each call is a single reveal step; stopping early leaves the rest of
// the stack untouched.
func (s *Seat) RevealNext() (card Card, ok bool) {
	if len(s.Stack) == 0 {
		return 0, false
	}
	card = s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	s.Revealed = append(s.Revealed, card)
	return card, true
}

// ForceDiscardRandom collects the seat's cards and permanently removes
// one uniformly random card from the hand. If the hand is empty the seat
// dies and ErrNoCardsToDiscard is returned.
func (s *Seat) ForceDiscardRandom(src randutil.Source) error {
	s.CollectCards()
	if len(s.Hand) == 0 {
		s.Alive = false
		return ErrNoCardsToDiscard
	}
	i := src.Intn(len(s.Hand))
	s.Hand = append(s.Hand[:i], s.Hand[i+1:]...)
	return nil
}

// CollectCards moves the stack and the revealed pile back into the hand.
// A seat whose hand ends up empty is dead.
func (s *Seat) CollectCards() {
	s.Hand = append(s.Hand, s.Stack...)
	s.Hand = append(s.Hand, s.Revealed...)
	s.Stack = nil
	s.Revealed = nil
	if len(s.Hand) == 0 {
		s.Alive = false
	}
}

// CardCount returns the total number of cards the seat still owns
func (s *Seat) CardCount() int {
	return len(s.Hand) + len(s.Stack) + len(s.Revealed)
}

// State projects the seat into an immutable snapshot. When redact is
// true, hand and stack are replaced element-wise by Hidden; the revealed
// pile is public and never redacted.
func (s *Seat) State(redact bool) SeatState {
	return SeatState{
		Name:     s.Name,
		Hand:     copyCards(s.Hand, redact),
		Stack:    copyCards(s.Stack, redact),
		Revealed: copyCards(s.Revealed, false),
		Points:   s.Points,
		Alive:    s.Alive,
		Playing:  s.Playing,
	}
}

// NewSeatFromState reconstructs a seat from a fully visible snapshot.
func NewSeatFromState(state SeatState) (*Seat, error) {
	if state.IsHidden() {
		return nil, ErrCannotRestoreRedactedState
	}
	return &Seat{
		Name:     state.Name,
		Hand:     copyCards(state.Hand, false),
		Stack:    copyCards(state.Stack, false),
		Revealed: copyCards(state.Revealed, false),
		Points:   state.Points,
		Alive:    state.Alive,
		Playing:  state.Playing,
	}, nil
}

func copyCards(cards []Card, redact bool) []Card {
	if len(cards) == 0 {
		return nil
	}
	out := make([]Card, len(cards))
	for i, c := range cards {
		if redact {
			out[i] = Hidden
		} else {
			out[i] = c
		}
	}
	return out
}
