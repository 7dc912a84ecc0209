// Package game implements the rules core for Skull, a sequential
// hidden-information bluffing card game.
//
// The main type is Board, which tracks per-seat card state, computes the
// exact legal-move set for the seat to act, applies actions and advances
// turn, round and win state. All mutation goes through Board.Push; the
// board keeps a full pre-action snapshot per move so games can be undone
// with Board.Pop and replayed from the action log.
//
// # Basic usage
//
//	b, err := game.NewBoard(randutil.FromRand(randutil.New(42)), "Alice", "Bob", "Carol")
//	// Inspect b.LegalMoves(), then apply one:
//	err = b.Push(game.PlayCard{Card: game.Flower})
//	// or drive it from notation:
//	err = b.PushNotation("B2")
//
// # Information hiding
//
// Board.State returns a projection where hands and face-down stacks of
// unlisted seats are redacted to Hidden. Redacted projections are safe
// to hand to other players or AI callers, and are refused as a
// reconstruction source by NewBoardFromState.
//
// # Determinism
//
// The only randomness is the forced discard after revealing a skull,
// routed through an injected randutil.Source, so whole games are
// reproducible from a seed and an action log.
package game
