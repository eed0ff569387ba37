package deck

import (
	"fmt"
	"strings"

	"github.com/arcanaland/diced/internal/card"
	"github.com/arcanaland/diced/internal/random"
	"github.com/arcanaland/diced/internal/tarot"
)

// namedFaces are added after the number cards of each suit.
var namedFaces = []card.Face{card.King, card.Queen, card.Jack, card.Ace}

// Traditional returns a canonical playing deck: for each suit the numbers 2
// through 10 then King, Queen, Jack and Ace, with the Big and Little Jokers
// last when jokers is set.
func Traditional(jokers bool) *Deck[card.Card] {
	d := &Deck[card.Card]{}
	for _, suit := range card.Suits {
		for n := 2; n <= 10; n++ {
			d.Add(card.New(card.Number(n), suit))
		}
		for _, face := range namedFaces {
			d.Add(card.New(face, suit))
		}
	}
	if jokers {
		d.Add(card.New(card.BigJoker, card.NoSuit))
		d.Add(card.New(card.LittleJoker, card.NoSuit))
	}
	return d
}

// TarotMajor returns the 22 major arcana in numeral order.
func TarotMajor() *Deck[tarot.Card] {
	d := &Deck[tarot.Card]{}
	for _, a := range tarot.MajorArcana {
		d.Add(tarot.Major(a))
	}
	return d
}

// TarotFull returns the major arcana followed by the 56 minor arcana.
func TarotFull() *Deck[tarot.Card] {
	d := TarotMajor()
	for _, suit := range tarot.Suits {
		for n := 1; n <= 10; n++ {
			d.Add(tarot.Minor(suit, tarot.Number(n)))
		}
		for _, rank := range tarot.Courts {
			d.Add(tarot.Minor(suit, rank))
		}
	}
	return d
}

// Tarot returns the full deck when includeMinor is set, the major arcana
// otherwise.
func Tarot(includeMinor bool) *Deck[tarot.Card] {
	if includeMinor {
		return TarotFull()
	}
	return TarotMajor()
}

// Kind names the card family a deck holds.
type Kind string

const (
	KindTraditional Kind = "traditional"
	KindTarot       Kind = "tarot"
)

// Shape selects one of the canonical decks.
type Shape struct {
	Kind         Kind
	Jokers       bool // traditional only
	IncludeMinor bool // tarot only
}

// shapeNames maps the CLI spelling of each canonical deck to its shape.
var shapeNames = []struct {
	name  string
	shape Shape
}{
	{"traditional", Shape{Kind: KindTraditional, Jokers: true}},
	{"traditional-no-jokers", Shape{Kind: KindTraditional}},
	{"tarot", Shape{Kind: KindTarot, IncludeMinor: true}},
	{"tarot-major", Shape{Kind: KindTarot}},
}

// ShapeNames lists the names ParseShape accepts.
func ShapeNames() []string {
	names := make([]string, len(shapeNames))
	for i, s := range shapeNames {
		names[i] = s.name
	}
	return names
}

// ParseShape reads a canonical deck name such as "traditional-no-jokers".
func ParseShape(s string) (Shape, error) {
	for _, n := range shapeNames {
		if strings.EqualFold(strings.TrimSpace(s), n.name) {
			return n.shape, nil
		}
	}
	return Shape{}, fmt.Errorf("%w: %s (want one of %s)", ErrUnknownShape, s, strings.Join(ShapeNames(), ", "))
}

func (s Shape) String() string {
	for _, n := range shapeNames {
		if n.shape == s {
			return n.name
		}
	}
	return string(s.Kind)
}

// Request describes one draw.
type Request struct {
	Amount      int
	Destructive bool
}

// Deal builds the deck selected by shape and draws from it.
func Deal(shape Shape, req Request, rng random.RNG) ([]fmt.Stringer, error) {
	switch shape.Kind {
	case KindTraditional:
		return DealDeck(Traditional(shape.Jokers), req, rng)
	case KindTarot:
		return DealDeck(Tarot(shape.IncludeMinor), req, rng)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, shape.Kind)
}

// DealDeck draws from d and drains the drawn hand into a slice in draw order.
func DealDeck[T fmt.Stringer](d *Deck[T], req Request, rng random.RNG) ([]fmt.Stringer, error) {
	var (
		hand *Deck[T]
		err  error
	)
	if req.Destructive {
		hand, err = d.DrawDestructive(rng, req.Amount)
	} else {
		hand, err = d.Draw(rng, req.Amount)
	}
	if err != nil {
		return nil, err
	}

	out := make([]fmt.Stringer, 0, hand.Size())
	for c := range hand.Drain() {
		out = append(out, c)
	}
	return out, nil
}
