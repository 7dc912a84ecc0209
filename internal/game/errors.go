package game

import "errors"

// Board-level errors. These are expected, recoverable conditions the
// caller should handle and retry.
var (
	ErrIllegalMove     = errors.New("move is not legal")
	ErrGameOver        = errors.New("game is already over")
	ErrNoHistory       = errors.New("no history to undo")
	ErrInvalidNotation = errors.New("notation does not exist")
)

// Seat-level errors. Reaching one of these means a caller bypassed the
// legal-move contract; the board never retries them.
var (
	ErrNoFlower         = errors.New("no flower in hand")
	ErrNoSkull          = errors.New("no skull in hand")
	ErrNoCardsToDiscard = errors.New("no cards left to discard")
)

// ErrCannotRestoreRedactedState is returned when a privacy-filtered
// snapshot is used as a reconstruction source.
var ErrCannotRestoreRedactedState = errors.New("cannot restore redacted state")
