// Package deck implements ordered card populations and random sampling
// without replacement over them.
package deck

import (
	"iter"
	"slices"

	"github.com/arcanaland/diced/internal/random"
)

// Deck is an ordered, mutable collection of cards of type T.
//
// A Deck is also a single-pass draining sequence: Next and Drain remove cards
// from the front in order.
type Deck[T any] struct {
	cards []T
}

// New returns a deck holding a copy of cards, in order.
func New[T any](cards ...T) *Deck[T] {
	return &Deck[T]{cards: slices.Clone(cards)}
}

// Add appends c to the bottom of the deck.
func (d *Deck[T]) Add(c T) {
	d.cards = append(d.cards, c)
}

// Size returns the number of cards remaining.
func (d *Deck[T]) Size() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in order.
func (d *Deck[T]) Cards() []T {
	return slices.Clone(d.cards)
}

// Draw returns n cards chosen uniformly at random without replacement. The
// deck itself is left unchanged.
func (d *Deck[T]) Draw(rng random.RNG, n int) (*Deck[T], error) {
	if err := d.checkDraw(n); err != nil {
		return nil, err
	}
	scratch := New(d.cards...)
	return scratch.extract(rng, n), nil
}

// DrawDestructive removes n uniformly chosen cards from the deck and returns
// them in the order they were picked. The deck keeps the remaining cards in
// their original relative order.
func (d *Deck[T]) DrawDestructive(rng random.RNG, n int) (*Deck[T], error) {
	if err := d.checkDraw(n); err != nil {
		return nil, err
	}
	return d.extract(rng, n), nil
}

// checkDraw is the precondition shared by both draw variants. It runs before
// any card is moved.
func (d *Deck[T]) checkDraw(n int) error {
	if n < 0 {
		return ErrNegativeAmount
	}
	if n > len(d.cards) {
		return &InsufficientCardsError{Requested: n, Available: len(d.cards)}
	}
	return nil
}

// extract is a partial Fisher-Yates extraction: every step picks uniformly
// among the cards still remaining.
func (d *Deck[T]) extract(rng random.RNG, n int) *Deck[T] {
	drawn := &Deck[T]{cards: make([]T, 0, n)}
	for range n {
		i := rng.IntN(len(d.cards))
		drawn.cards = append(drawn.cards, d.cards[i])
		d.cards = slices.Delete(d.cards, i, i+1)
	}
	return drawn
}

// Filter returns a new deck with the cards that satisfy keep, in order.
func (d *Deck[T]) Filter(keep func(T) bool) *Deck[T] {
	out := &Deck[T]{}
	for _, c := range d.cards {
		if keep(c) {
			out.cards = append(out.cards, c)
		}
	}
	return out
}

// Next removes and returns the top card. It reports false once the deck is
// empty.
func (d *Deck[T]) Next() (T, bool) {
	var zero T
	if len(d.cards) == 0 {
		return zero, false
	}
	top := d.cards[0]
	d.cards[0] = zero
	d.cards = d.cards[1:]
	return top, true
}

// Drain yields every card from the top down, removing each one as it goes.
// Stopping early leaves the rest of the deck in place.
func (d *Deck[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			c, ok := d.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}
