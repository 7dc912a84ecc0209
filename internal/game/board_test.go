package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anko59/Skull/internal/randutil"
)

func newTestBoard(t *testing.T, names ...string) *Board {
	t.Helper()
	b, err := NewBoard(randutil.FromRand(randutil.New(1)), names...)
	require.NoError(t, err)
	return b
}

func push(t *testing.T, b *Board, notations ...string) {
	t.Helper()
	for _, n := range notations {
		require.NoError(t, b.PushNotation(n), "push %q", n)
	}
}

// seatState finds a seat in a board state by name
func seatState(t *testing.T, state BoardState, name string) SeatState {
	t.Helper()
	for _, s := range state.Seats {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("seat %q not in state", name)
	return SeatState{}
}

func TestNewBoardValidation(t *testing.T) {
	t.Parallel()

	src := randutil.NewQueueSource()
	_, err := NewBoard(src, "Alice")
	assert.Error(t, err)
	_, err = NewBoard(src, "Alice", "Alice")
	assert.Error(t, err)
	_, err = NewBoard(src, "Alice", "Bob")
	assert.NoError(t, err)
}

// Fresh game, no bets: the seat to move can only commit a card.
func TestLegalMovesFreshGame(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob", "Carol", "Dave")
	assert.Equal(t, []Action{PlayCard{Card: Flower}, PlayCard{Card: Skull}}, b.LegalMoves())
	assert.Equal(t, "Alice", b.NextPlayer())
}

// Once every active seat has committed a card, bidding opens up to the
// total number of committed cards.
func TestLegalMovesBiddingOpens(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob", "Carol", "Dave")
	push(t, b, "F", "F", "F", "F")

	want := []Action{
		PlayCard{Card: Flower}, PlayCard{Card: Skull},
		Bet{Amount: 1}, Bet{Amount: 2}, Bet{Amount: 3}, Bet{Amount: 4},
	}
	assert.Equal(t, want, b.LegalMoves())
}

// After a bet, other seats can only pass or raise.
func TestLegalMovesAfterBet(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob", "Carol", "Dave")
	push(t, b, "F", "F", "F", "F", "B2")

	assert.Equal(t, "Bob", b.NextPlayer())
	assert.Equal(t, []Action{Pass{}, Bet{Amount: 3}, Bet{Amount: 4}}, b.LegalMoves())
}

// The bet holder reveals their own skull: auto-forfeit, and they choose
// which card to lose.
func TestAutoSkullOffersLoseCard(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob", "Carol", "Dave")
	push(t, b, "S", "F", "F", "F", "B2", "P", "P", "P")

	assert.Equal(t, "Alice", b.NextPlayer())
	assert.Equal(t, []Action{LoseCard{Card: Flower}, LoseCard{Card: Skull}}, b.LegalMoves())

	// The skull was pulled back into her hand by the auto-skull collect
	alice := seatState(t, b.State("Alice"), "Alice")
	assert.Len(t, alice.Hand, 4)
	assert.Empty(t, alice.Stack)
	assert.Empty(t, alice.Revealed)
}

// Delivering the bet from the bettor's own stack scores a point and
// leaves Pass as the acknowledgement.
func TestOwnStackDeliversBet(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob", "Carol", "Dave")
	push(t, b, "F", "F", "F", "F", "B1", "P", "P", "P")

	assert.Equal(t, []Action{Pass{}}, b.LegalMoves())
	alice := seatState(t, b.State("Alice"), "Alice")
	assert.Equal(t, 1, alice.Points)
	assert.Equal(t, []Card{Flower}, alice.Revealed)

	// The acknowledgement pass ends the round; everyone collects
	push(t, b, "P")
	state := b.State("Alice")
	for _, s := range state.Seats {
		assert.Len(t, s.Revealed, 0)
		assert.True(t, s.Playing)
	}
	_, over := b.Winner()
	assert.False(t, over)
}

// Two delivered bets win the game. The winner is detected as soon as the
// second point is awarded.
func TestSecondPointWinsGame(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob", "Carol", "Dave")
	round := []string{"F", "F", "F", "F", "B1", "P", "P", "P"}
	push(t, b, round...)
	push(t, b, "P") // acknowledgement, starts round two
	push(t, b, round...)

	winner, ok := b.Winner()
	require.True(t, ok)
	assert.Equal(t, "Alice", winner)

	err := b.Push(Pass{})
	assert.ErrorIs(t, err, ErrGameOver)
}

// Revealing an opponent's flower up to the bet scores for the bettor.
func TestOpponentRevealDeliversBet(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob", "Carol", "Dave")
	push(t, b, "F", "F", "F", "F", "B2", "P", "P", "P")

	// Alice's own flower was auto-revealed below the bet of two; she must
	// now pick an opponent stack.
	want := []Action{
		RevealOpponentStack{Seat: "Bob"},
		RevealOpponentStack{Seat: "Carol"},
		RevealOpponentStack{Seat: "Dave"},
	}
	assert.Equal(t, want, b.LegalMoves())

	// Bob's flower is the second revealed card, delivering the bet of
	// two; the point ends the round immediately.
	push(t, b, "RBob")
	state := b.State("Alice", "Bob", "Carol", "Dave")
	alice := seatState(t, state, "Alice")
	assert.Equal(t, 1, alice.Points)
	for _, s := range state.Seats {
		assert.Empty(t, s.Stack)
		assert.Empty(t, s.Revealed)
		assert.True(t, s.Playing)
	}
}

// Revealing an opponent's skull costs the bettor a random card.
func TestOpponentSkullForcesDiscard(t *testing.T) {
	t.Parallel()

	b, err := NewBoard(randutil.NewQueueSource(0), "Alice", "Bob", "Carol", "Dave")
	require.NoError(t, err)
	push(t, b, "F", "S", "F", "F", "B2", "P", "P", "P", "RBob")

	// The forfeit ends the round, so Alice is back in play one card down
	alice := seatState(t, b.State("Alice"), "Alice")
	assert.Equal(t, 3, len(alice.Hand)+len(alice.Stack)+len(alice.Revealed))
	assert.Equal(t, 0, alice.Points)
	assert.True(t, alice.Alive)
	assert.True(t, alice.Playing)
}

// Losing the last card kills the seat, and the survivor wins.
func TestEliminationLeavesLastSeatAlive(t *testing.T) {
	t.Parallel()

	state := BoardState{
		Seats: []SeatState{
			{Name: "Alice", Hand: []Card{Skull}, Alive: true, Playing: true},
			{Name: "Bob", Hand: []Card{Flower, Flower, Flower, Skull}, Alive: true, Playing: false},
		},
		NextPlayer: "Alice",
		BetHolder:  "Alice",
		HighestBet: 1,
		LegalMoves: []string{"LS"},
	}
	b, err := NewBoardFromState(randutil.NewQueueSource(), state)
	require.NoError(t, err)

	push(t, b, "LS")
	alice := seatState(t, b.State("Alice", "Bob"), "Alice")
	assert.False(t, alice.Alive)
	assert.Empty(t, alice.Hand)

	winner, ok := b.Winner()
	require.True(t, ok)
	assert.Equal(t, "Bob", winner)
}

// A seat that abandoned the bidding stays in rotation but can only pass.
func TestInactiveSeatMustPass(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob", "Carol", "Dave")
	push(t, b, "F", "F", "F", "F", "B1", "P", "P", "B2", "P")

	// Bob passed earlier in the bidding; his turn comes around again
	// while Dave's raised bet is still open.
	assert.Equal(t, "Bob", b.NextPlayer())
	assert.Equal(t, []Action{Pass{}}, b.LegalMoves())

	push(t, b, "P", "P")
	// Dave's own flower is below the bet of two: opponent stacks next
	assert.Equal(t, "Dave", b.NextPlayer())
	want := []Action{
		RevealOpponentStack{Seat: "Alice"},
		RevealOpponentStack{Seat: "Bob"},
		RevealOpponentStack{Seat: "Carol"},
	}
	assert.Equal(t, want, b.LegalMoves())
}

func TestPushIllegalMoveLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob", "Carol", "Dave")
	before := b.State("Alice", "Bob", "Carol", "Dave")

	err := b.Push(Bet{Amount: 1})
	assert.ErrorIs(t, err, ErrIllegalMove)
	assert.Equal(t, before, b.State("Alice", "Bob", "Carol", "Dave"))
	assert.Empty(t, b.ActionLog())
	assert.Equal(t, 0, b.HistoryLen())
}

func TestPushNotationInvalid(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob")
	assert.ErrorIs(t, b.PushNotation("X"), ErrInvalidNotation)
	assert.ErrorIs(t, b.PushNotation("Bnope"), ErrInvalidNotation)
}

func TestActionLogRecordsNotation(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob", "Carol", "Dave")
	moves := []string{"F", "S", "F", "F", "B3", "P"}
	push(t, b, moves...)
	assert.Equal(t, moves, b.ActionLog())
	assert.Equal(t, len(moves), b.HistoryLen())
}

func TestPopRestoresPreviousState(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob", "Carol", "Dave")
	all := []string{"Alice", "Bob", "Carol", "Dave"}

	before := b.State(all...)
	push(t, b, "F")
	require.NotEqual(t, before, b.State(all...))

	require.NoError(t, b.Pop())
	assert.Equal(t, before, b.State(all...))
	assert.Empty(t, b.ActionLog())
	assert.Equal(t, 0, b.HistoryLen())

	assert.ErrorIs(t, b.Pop(), ErrNoHistory)
}

func TestPopAcrossRoundBoundary(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob", "Carol")
	all := []string{"Alice", "Bob", "Carol"}
	push(t, b, "F", "F", "F", "B1", "P")

	before := b.State(all...)
	push(t, b, "P") // ends the bidding; Alice scores during recompute
	require.NoError(t, b.Pop())
	assert.Equal(t, before, b.State(all...))

	// Replaying the popped move yields the same result as the first time
	push(t, b, "P")
	alice := seatState(t, b.State(all...), "Alice")
	assert.Equal(t, 1, alice.Points)
}

func TestAdvanceForcedCollapsesForcedTurns(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob", "Carol", "Dave")
	push(t, b, "F", "F", "F", "F", "B1", "P", "P")

	// Dave's pass closes the bidding; Alice's scoring acknowledgement is
	// forced and should be applied automatically.
	require.NoError(t, b.AdvanceForced(Pass{}))

	log := b.ActionLog()
	assert.Equal(t, []string{"F", "F", "F", "F", "B1", "P", "P", "P", "P"}, log)

	// A fresh round is underway with a real choice on the table
	assert.Greater(t, len(b.LegalMoves()), 1)
	alice := seatState(t, b.State("Alice"), "Alice")
	assert.Equal(t, 1, alice.Points)
	assert.Len(t, alice.Hand, 4)
}

func TestStateRedactsByViewer(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob")
	push(t, b, "F")

	// Default visibility is the seat to move (Bob)
	state := b.State()
	assert.Equal(t, "Bob", state.NextPlayer)
	assert.False(t, seatState(t, state, "Bob").IsHidden())
	assert.True(t, seatState(t, state, "Alice").IsHidden())

	// Alice's committed card is hidden but her public info is not
	alice := seatState(t, state, "Alice")
	assert.Equal(t, []Card{Hidden}, alice.Stack)
	assert.True(t, alice.Alive)
	assert.True(t, alice.Playing)

	full := b.State("Alice", "Bob")
	assert.False(t, full.IsHidden())
	assert.Equal(t, []Card{Flower}, seatState(t, full, "Alice").Stack)
}

func TestRestoreFromRedactedStateFails(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob")
	redacted := b.State()
	_, err := NewBoardFromState(randutil.NewQueueSource(), redacted)
	assert.ErrorIs(t, err, ErrCannotRestoreRedactedState)
}

func TestResumeFromFullState(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob", "Carol")
	all := []string{"Alice", "Bob", "Carol"}
	push(t, b, "F", "S", "F", "B2")

	resumed, err := NewBoardFromState(randutil.NewQueueSource(), b.State(all...))
	require.NoError(t, err)
	assert.Equal(t, b.State(all...), resumed.State(all...))
	assert.Equal(t, b.LegalMoves(), resumed.LegalMoves())
	assert.Equal(t, 0, resumed.HistoryLen())

	// Both boards accept the same continuation
	require.NoError(t, b.PushNotation("P"))
	require.NoError(t, resumed.PushNotation("P"))
	assert.Equal(t, b.State(all...), resumed.State(all...))
}

// Round rotation re-bases the order on the last bet holder.
func TestRoundRotationLeadsWithBetHolder(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, "Alice", "Bob", "Carol")
	push(t, b, "F", "F", "F") // everyone commits, back at Alice
	push(t, b, "F")           // Alice commits a second card
	push(t, b, "B1")          // Bob takes the bet
	push(t, b, "P", "P")      // Carol and Alice abandon
	// Bob reveals his own flower and scores; forced acknowledgement
	assert.Equal(t, []Action{Pass{}}, b.LegalMoves())
	push(t, b, "P")

	state := b.State("Bob")
	assert.Equal(t, "Bob", state.NextPlayer)
	assert.Equal(t, []string{"Bob", "Carol", "Alice"},
		[]string{state.Seats[0].Name, state.Seats[1].Name, state.Seats[2].Name})
}
