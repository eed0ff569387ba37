package deck

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientCards = errors.New("insufficient cards")
	ErrNegativeAmount    = errors.New("draw amount must not be negative")
	ErrUnknownShape      = errors.New("unknown deck shape")
	ErrKindMismatch      = errors.New("deck file kind mismatch")
)

// InsufficientCardsError reports a draw that asked for more cards than the
// deck holds. It matches ErrInsufficientCards with errors.Is.
type InsufficientCardsError struct {
	Requested int
	Available int
}

func (e *InsufficientCardsError) Error() string {
	return fmt.Sprintf("%d cards requested, deck only has %d cards", e.Requested, e.Available)
}

func (e *InsufficientCardsError) Is(target error) bool {
	return target == ErrInsufficientCards
}
