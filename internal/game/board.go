package game

import (
	"fmt"

	"github.com/Anko59/Skull/internal/randutil"
)

// Board orchestrates one game of Skull. It owns the seats in rotation
// order, the betting state, the cached legal-move set for the seat to
// act, and the undo/replay logs. A board is exclusively owned by one
// caller; there is no internal locking.
type Board struct {
	seats       []*Seat
	turn        int
	betHolder   int // seat index, -1 while no bet stands
	highestBet  int
	cardsShown  int
	winner      int // seat index, -1 while the game is live
	legalMoves  []Action
	actionLog   []string
	snapshotLog []BoardState
	rand        randutil.Source
}

// NewBoard creates a board with a fresh seat per name, in the given
// order. src supplies the single random draw used for forced discards.
func NewBoard(src randutil.Source, names ...string) (*Board, error) {
	if len(names) < 2 {
		return nil, fmt.Errorf("need at least 2 seats, got %d", len(names))
	}
	seen := make(map[string]bool, len(names))
	seats := make([]*Seat, len(names))
	for i, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("duplicate seat name %q", name)
		}
		seen[name] = true
		seats[i] = NewSeat(name)
	}
	b := &Board{
		seats:     seats,
		betHolder: -1,
		winner:    -1,
		rand:      src,
	}
	b.legalMoves = b.computeLegalMoves()
	return b, nil
}

// NewBoardFromState reconstructs a board from a fully visible snapshot,
// for mid-game resume. A redacted snapshot is refused. The logs of the
// new board start empty.
func NewBoardFromState(src randutil.Source, state BoardState) (*Board, error) {
	b := &Board{winner: -1, rand: src}
	if err := b.restore(state); err != nil {
		return nil, err
	}
	return b, nil
}

// LegalMoves returns a copy of the legal-move set for the seat to act.
// It is never empty while the board is in a reachable state.
func (b *Board) LegalMoves() []Action {
	return append([]Action(nil), b.legalMoves...)
}

// NextPlayer returns the name of the seat to act
func (b *Board) NextPlayer() string {
	return b.seats[b.turn].Name
}

// Winner returns the winning seat's name once the game is decided
func (b *Board) Winner() (string, bool) {
	if b.winner < 0 {
		return "", false
	}
	return b.seats[b.winner].Name, true
}

// ActionLog returns a copy of the applied action notations, in order
func (b *Board) ActionLog() []string {
	return append([]string(nil), b.actionLog...)
}

// HistoryLen returns the number of undoable actions
func (b *Board) HistoryLen() int {
	return len(b.snapshotLog)
}

// Push validates and applies one action for the seat to act, then
// advances turn, round and win state and recomputes the legal moves.
// An action outside the legal set fails with ErrIllegalMove and leaves
// the board unchanged.
func (b *Board) Push(action Action) error {
	if b.winner >= 0 {
		return ErrGameOver
	}
	if !containsAction(b.legalMoves, action) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, action.Notation())
	}

	b.snapshotLog = append(b.snapshotLog, b.fullState())
	b.actionLog = append(b.actionLog, action.Notation())

	if err := b.apply(b.seats[b.turn], action); err != nil {
		return err
	}

	if b.isRoundOver() {
		b.startRound()
	} else {
		b.turn = (b.turn + 1) % len(b.seats)
	}
	b.legalMoves = b.computeLegalMoves()
	b.detectWinner()
	return nil
}

// PushNotation decodes an action token and applies it
func (b *Board) PushNotation(notation string) error {
	action, err := ParseAction(notation)
	if err != nil {
		return err
	}
	return b.Push(action)
}

// AdvanceForced applies the action, then keeps applying the single legal
// move for as long as the seat to act has no real choice. This collapses
// chains of forced turns, such as a dead seat's Pass.
func (b *Board) AdvanceForced(action Action) error {
	if err := b.Push(action); err != nil {
		return err
	}
	for b.winner < 0 && len(b.legalMoves) == 1 {
		if err := b.Push(b.legalMoves[0]); err != nil {
			return err
		}
	}
	return nil
}

// Pop undoes the most recent action by restoring the snapshot taken just
// before it, and drops the last entry of both logs.
func (b *Board) Pop() error {
	if len(b.snapshotLog) == 0 {
		return ErrNoHistory
	}
	last := b.snapshotLog[len(b.snapshotLog)-1]
	if err := b.restore(last); err != nil {
		return err
	}
	b.snapshotLog = b.snapshotLog[:len(b.snapshotLog)-1]
	b.actionLog = b.actionLog[:len(b.actionLog)-1]
	return nil
}

// State projects the board for the given viewers. Seats not listed in
// visibleTo have their hand and stack redacted to Hidden; the revealed
// piles, points and flags are always shown. With no viewers given, only
// the seat to act is visible.
func (b *Board) State(visibleTo ...string) BoardState {
	visible := make(map[string]bool, len(visibleTo))
	if len(visibleTo) == 0 {
		visible[b.seats[b.turn].Name] = true
	}
	for _, name := range visibleTo {
		visible[name] = true
	}
	return b.project(visible)
}

// fullState captures an unredacted deep copy for the undo log
func (b *Board) fullState() BoardState {
	visible := make(map[string]bool, len(b.seats))
	for _, s := range b.seats {
		visible[s.Name] = true
	}
	return b.project(visible)
}

func (b *Board) project(visible map[string]bool) BoardState {
	seats := make([]SeatState, len(b.seats))
	for i, s := range b.seats {
		seats[i] = s.State(!visible[s.Name])
	}
	state := BoardState{
		Seats:      seats,
		NextPlayer: b.seats[b.turn].Name,
		HighestBet: b.highestBet,
		CardsShown: b.cardsShown,
		LegalMoves: Notations(b.legalMoves),
	}
	if b.betHolder >= 0 {
		state.BetHolder = b.seats[b.betHolder].Name
	}
	if b.winner >= 0 {
		state.Winner = b.seats[b.winner].Name
	}
	return state
}

// restore replaces the board's live state with the snapshot's. The
// snapshot must be fully visible.
func (b *Board) restore(state BoardState) error {
	if len(state.Seats) < 2 {
		return fmt.Errorf("snapshot needs at least 2 seats, got %d", len(state.Seats))
	}
	seats := make([]*Seat, len(state.Seats))
	index := make(map[string]int, len(state.Seats))
	for i, ss := range state.Seats {
		seat, err := NewSeatFromState(ss)
		if err != nil {
			return err
		}
		seats[i] = seat
		index[seat.Name] = i
	}
	turn, ok := index[state.NextPlayer]
	if !ok {
		return fmt.Errorf("snapshot next player %q is not seated", state.NextPlayer)
	}
	betHolder := -1
	if state.BetHolder != "" {
		if betHolder, ok = index[state.BetHolder]; !ok {
			return fmt.Errorf("snapshot bet holder %q is not seated", state.BetHolder)
		}
	}
	winner := -1
	if state.Winner != "" {
		if winner, ok = index[state.Winner]; !ok {
			return fmt.Errorf("snapshot winner %q is not seated", state.Winner)
		}
	}
	moves, err := parseActions(state.LegalMoves)
	if err != nil {
		return err
	}

	b.seats = seats
	b.turn = turn
	b.betHolder = betHolder
	b.highestBet = state.HighestBet
	b.cardsShown = state.CardsShown
	b.winner = winner
	b.legalMoves = moves
	return nil
}

// apply mutates the addressed seats for one validated action
func (b *Board) apply(actor *Seat, action Action) error {
	switch a := action.(type) {
	case PlayCard:
		if a.Card == Flower {
			return actor.PlayFlower()
		}
		return actor.PlaySkull()

	case Bet:
		b.betHolder = b.turn
		b.highestBet = a.Amount

	case RevealOpponentStack:
		shown := max(b.cardsShown, len(actor.Revealed))
		for _, target := range b.seats {
			if target.Name != a.Seat {
				continue
			}
			card, ok := target.RevealNext()
			if !ok {
				return fmt.Errorf("%w: %q has no stack to reveal", ErrIllegalMove, a.Seat)
			}
			if card == Skull {
				actor.Playing = false
				return actor.ForceDiscardRandom(b.rand)
			}
			shown++
			b.cardsShown = shown
			if shown == b.highestBet {
				actor.Playing = false
				actor.Points++
			}
		}

	case LoseCard:
		actor.CollectCards()
		if !actor.removeFromHand(a.Card) {
			if a.Card == Flower {
				return ErrNoFlower
			}
			return ErrNoSkull
		}
		if len(actor.Hand) == 0 {
			actor.Alive = false
		}
		actor.Playing = false

	case Pass:
		actor.Playing = false
	}
	return nil
}

func (b *Board) isRoundOver() bool {
	for _, s := range b.seats {
		if s.Playing {
			return false
		}
	}
	return true
}

// startRound collects every seat's cards, re-bases the rotation so the
// last bet holder leads, and resets the betting state.
func (b *Board) startRound() {
	for _, s := range b.seats {
		s.CollectCards()
		if s.Alive {
			s.Playing = true
		}
	}
	if b.betHolder > 0 {
		rotated := make([]*Seat, 0, len(b.seats))
		rotated = append(rotated, b.seats[b.betHolder:]...)
		rotated = append(rotated, b.seats[:b.betHolder]...)
		b.seats = rotated
	}
	b.turn = 0
	b.betHolder = -1
	b.highestBet = 0
	b.cardsShown = 0
}

// committedCards counts the face-down cards across all stacks
func (b *Board) committedCards() int {
	total := 0
	for _, s := range b.seats {
		total += len(s.Stack)
	}
	return total
}

// biddingOpen reports whether every seat still in the round has
// committed at least one card
func (b *Board) biddingOpen() bool {
	for _, s := range b.seats {
		if s.Playing && len(s.Stack) == 0 {
			return false
		}
	}
	return true
}

// computeLegalMoves derives the move set for the seat to act. For the
// bet holder this walks their own stack and mutates seat state on the
// way (reveals, the auto-skull collect, the own-stack scoring), exactly
// one walk per turn: Push calls this once after every state change.
func (b *Board) computeLegalMoves() []Action {
	seat := b.seats[b.turn]
	if !seat.Alive || !seat.Playing {
		return []Action{Pass{}}
	}

	if b.betHolder != b.turn {
		var moves []Action
		if b.betHolder < 0 {
			// No bet yet: committing cards is the only card play
			if seat.CanPlayFlower() {
				moves = append(moves, PlayCard{Card: Flower})
			}
			if seat.CanPlaySkull() {
				moves = append(moves, PlayCard{Card: Skull})
			}
		} else {
			// A bet stands: the seat may abandon the bidding
			moves = append(moves, Pass{})
		}
		if b.biddingOpen() {
			for amount := b.highestBet + 1; amount <= b.committedCards(); amount++ {
				moves = append(moves, Bet{Amount: amount})
			}
		}
		return moves
	}

	// Bidding has closed and play has come back to the bettor: reveal
	// their own stack first, most recent commitment on top.
	for {
		card, ok := seat.RevealNext()
		if !ok {
			break
		}
		if card == Skull {
			// Auto-skulled by their own stack
			seat.CollectCards()
			if seat.CanPlayFlower() {
				return []Action{LoseCard{Card: Flower}, LoseCard{Card: Skull}}
			}
			return []Action{LoseCard{Card: Skull}}
		}
		if len(seat.Revealed) == b.highestBet {
			// Bet delivered from their own stack alone
			seat.Points++
			return []Action{Pass{}}
		}
	}

	// Own stack exhausted below the bet: an opponent stack must be next
	var moves []Action
	for _, opponent := range b.seats {
		if opponent != seat && len(opponent.Stack) > 0 {
			moves = append(moves, RevealOpponentStack{Seat: opponent.Name})
		}
	}
	if len(moves) == 0 {
		panic(fmt.Sprintf("bettor %q has no opponent stack to reveal", seat.Name))
	}
	return moves
}

// detectWinner ends the game when at most one seat is alive, or when a
// seat reaches two points; the liveness condition is checked first and
// point ties break by current seat order.
func (b *Board) detectWinner() {
	alive := 0
	lastAlive := -1
	for i, s := range b.seats {
		if s.Alive {
			alive++
			lastAlive = i
		}
	}
	if alive <= 1 {
		b.winner = lastAlive
		return
	}
	for i, s := range b.seats {
		if s.Points > 1 {
			b.winner = i
			return
		}
	}
}
