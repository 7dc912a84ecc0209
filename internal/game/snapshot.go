package game

// SeatState is an immutable projection of a seat. Redacted projections
// carry Hidden in place of the real hand and stack values; the revealed
// pile, points and flags are always public.
type SeatState struct {
	Name     string `json:"name"`
	Hand     []Card `json:"hand"`
	Stack    []Card `json:"stack"`
	Revealed []Card `json:"revealed"`
	Points   int    `json:"points"`
	Alive    bool   `json:"alive"`
	Playing  bool   `json:"playing"`
}

// IsHidden reports whether the projection was privacy-filtered. A hidden
// state is valid for display but not for reconstruction.
func (s SeatState) IsHidden() bool {
	for _, c := range s.Hand {
		if c == Hidden {
			return true
		}
	}
	for _, c := range s.Stack {
		if c == Hidden {
			return true
		}
	}
	return false
}

// clone returns a structurally independent copy
func (s SeatState) clone() SeatState {
	s.Hand = copyCards(s.Hand, false)
	s.Stack = copyCards(s.Stack, false)
	s.Revealed = copyCards(s.Revealed, false)
	return s
}

// BoardState is an immutable snapshot of the whole board. Seats appear
// in current rotation order. It doubles as the undo-log entry and the
// projection handed to rendering, AI and persistence collaborators; the
// redaction rule on SeatState is the only privacy boundary.
type BoardState struct {
	Seats      []SeatState `json:"seats"`
	NextPlayer string      `json:"next_player"`
	BetHolder  string      `json:"bet_holder,omitempty"`
	HighestBet int         `json:"highest_bet"`
	CardsShown int         `json:"cards_shown"`
	Winner     string      `json:"winner,omitempty"`
	LegalMoves []string    `json:"legal_moves"`
}

// IsHidden reports whether any seat in the snapshot is redacted
func (b BoardState) IsHidden() bool {
	for _, s := range b.Seats {
		if s.IsHidden() {
			return true
		}
	}
	return false
}

// clone returns a structurally independent copy
func (b BoardState) clone() BoardState {
	seats := make([]SeatState, len(b.Seats))
	for i, s := range b.Seats {
		seats[i] = s.clone()
	}
	b.Seats = seats
	b.LegalMoves = append([]string(nil), b.LegalMoves...)
	return b
}
