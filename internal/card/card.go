// Package card models the cards of a traditional playing deck.
package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownCard is returned when a string does not name a playing card.
var ErrUnknownCard = errors.New("unknown playing card")

// Face is the face value of a card. Values 2 through 10 are number cards.
type Face int

const (
	Jack Face = iota + 11
	Queen
	King
	Ace
	BigJoker
	LittleJoker
)

// Number returns the face of a number card. n must be within 2..10.
func Number(n int) Face {
	if n < 2 || n > 10 {
		panic(fmt.Sprintf("card: number face %d out of range", n))
	}
	return Face(n)
}

// IsNumber reports whether f is a number face.
func (f Face) IsNumber() bool {
	return f >= 2 && f <= 10
}

// IsJoker reports whether f is one of the two jokers.
func (f Face) IsJoker() bool {
	return f == BigJoker || f == LittleJoker
}

func (f Face) String() string {
	switch f {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	case BigJoker:
		return "Big Joker"
	case LittleJoker:
		return "Little Joker"
	}
	return strconv.Itoa(int(f))
}

// Suit is the suit of a card. NoSuit is reserved for jokers.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
	NoSuit
)

// Suits lists the four real suits in canonical deck order.
var Suits = []Suit{Hearts, Diamonds, Spades, Clubs}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Spades:
		return "Spades"
	case Clubs:
		return "Clubs"
	}
	return "None"
}

// Color is derived from a card's suit.
type Color int

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// Card is an immutable playing card. The zero value is not a valid card; use New.
type Card struct {
	face  Face
	suit  Suit
	color Color
}

// New returns the card with the given face and suit.
func New(face Face, suit Suit) Card {
	return Card{face: face, suit: suit, color: colorOf(face, suit)}
}

func colorOf(face Face, suit Suit) Color {
	switch suit {
	case Hearts, Diamonds:
		return Red
	case Spades, Clubs:
		return Black
	}
	if face == BigJoker {
		return Black
	}
	return Red
}

func (c Card) Face() Face   { return c.face }
func (c Card) Suit() Suit   { return c.suit }
func (c Card) Color() Color { return c.color }

// NumValue returns the pip value of a number card.
func (c Card) NumValue() (int, bool) {
	if !c.face.IsNumber() {
		return 0, false
	}
	return int(c.face), true
}

// String renders the card as "7 of Hearts", "King of Spades" or "Big Joker".
func (c Card) String() string {
	if c.suit == NoSuit {
		return c.face.String()
	}
	return c.face.String() + " of " + c.suit.String()
}

// Parse reads a card written the way String renders it. Matching ignores case
// and surrounding whitespace.
func Parse(s string) (Card, error) {
	text := strings.ToLower(strings.Join(strings.Fields(s), " "))
	switch text {
	case "big joker":
		return New(BigJoker, NoSuit), nil
	case "little joker":
		return New(LittleJoker, NoSuit), nil
	}

	faceText, suitText, ok := strings.Cut(text, " of ")
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, s)
	}
	face, ok := parseFace(faceText)
	if !ok {
		return Card{}, fmt.Errorf("%w: bad face in %q", ErrUnknownCard, s)
	}
	suit, ok := parseSuit(suitText)
	if !ok {
		return Card{}, fmt.Errorf("%w: bad suit in %q", ErrUnknownCard, s)
	}
	return New(face, suit), nil
}

func parseFace(s string) (Face, bool) {
	switch s {
	case "jack":
		return Jack, true
	case "queen":
		return Queen, true
	case "king":
		return King, true
	case "ace":
		return Ace, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 2 || n > 10 {
		return 0, false
	}
	return Face(n), true
}

func parseSuit(s string) (Suit, bool) {
	for _, suit := range Suits {
		if strings.EqualFold(s, suit.String()) {
			return suit, true
		}
	}
	return NoSuit, false
}

// ParseSuit reads a suit name, ignoring case.
func ParseSuit(s string) (Suit, error) {
	suit, ok := parseSuit(strings.TrimSpace(s))
	if !ok {
		return NoSuit, fmt.Errorf("unknown suit: %s", s)
	}
	return suit, nil
}

// ParseColor reads "red" or "black", ignoring case.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return Red, nil
	case "black":
		return Black, nil
	}
	return Red, fmt.Errorf("unknown color: %s", s)
}
