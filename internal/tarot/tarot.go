// Package tarot models the cards of a tarot deck.
package tarot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrUnknownCard is returned when a string does not name a tarot card.
var ErrUnknownCard = errors.New("unknown tarot card")

// Arcana is one of the 22 major arcana.
type Arcana int

const (
	TheFool Arcana = iota
	TheMagician
	TheHighPriestess
	TheEmpress
	TheEmperor
	TheHierophant
	TheLovers
	TheChariot
	Strength
	TheHermit
	WheelOfFortune
	Justice
	TheHangedMan
	Death
	Temperance
	TheDevil
	TheTower
	TheStar
	TheMoon
	TheSun
	Judgement
	TheWorld
)

// majorArcana declares each arcanum's identifier and numeral. Rendering reads
// the numeral from here, not from the constant's value.
var majorArcana = map[Arcana]struct {
	ident   string
	numeral int
}{
	TheFool:          {"TheFool", 0},
	TheMagician:      {"TheMagician", 1},
	TheHighPriestess: {"TheHighPriestess", 2},
	TheEmpress:       {"TheEmpress", 3},
	TheEmperor:       {"TheEmperor", 4},
	TheHierophant:    {"TheHierophant", 5},
	TheLovers:        {"TheLovers", 6},
	TheChariot:       {"TheChariot", 7},
	Strength:         {"Strength", 8},
	TheHermit:        {"TheHermit", 9},
	WheelOfFortune:   {"WheelOfFortune", 10},
	Justice:          {"Justice", 11},
	TheHangedMan:     {"TheHangedMan", 12},
	Death:            {"Death", 13},
	Temperance:       {"Temperance", 14},
	TheDevil:         {"TheDevil", 15},
	TheTower:         {"TheTower", 16},
	TheStar:          {"TheStar", 17},
	TheMoon:          {"TheMoon", 18},
	TheSun:           {"TheSun", 19},
	Judgement:        {"Judgement", 20},
	TheWorld:         {"TheWorld", 21},
}

// MajorArcana lists every arcanum in numeral order.
var MajorArcana = []Arcana{
	TheFool, TheMagician, TheHighPriestess, TheEmpress, TheEmperor, TheHierophant,
	TheLovers, TheChariot, Strength, TheHermit, WheelOfFortune, Justice,
	TheHangedMan, Death, Temperance, TheDevil, TheTower, TheStar, TheMoon,
	TheSun, Judgement, TheWorld,
}

// Numeral returns the arcanum's position in the major arcana (TheFool is 0).
func (a Arcana) Numeral() int {
	return majorArcana[a].numeral
}

// Name returns the readable name, e.g. "The High Priestess".
func (a Arcana) Name() string {
	return splitCamel(majorArcana[a].ident)
}

func (a Arcana) String() string {
	return a.Name()
}

// Suit is a minor arcana suit.
type Suit int

const (
	Swords Suit = iota
	Wands
	Coins
	Cups
)

// Suits lists the minor arcana suits in canonical deck order.
var Suits = []Suit{Swords, Wands, Coins, Cups}

func (s Suit) String() string {
	switch s {
	case Swords:
		return "Swords"
	case Wands:
		return "Wands"
	case Coins:
		return "Coins"
	}
	return "Cups"
}

// Rank is a minor arcana rank. Values 1 through 10 are number cards.
type Rank int

const (
	Page Rank = iota + 11
	Knight
	Queen
	King
)

// Courts lists the court ranks in canonical deck order.
var Courts = []Rank{King, Queen, Knight, Page}

// Number returns the rank of a number card. n must be within 1..10.
func Number(n int) Rank {
	if n < 1 || n > 10 {
		panic(fmt.Sprintf("tarot: number rank %d out of range", n))
	}
	return Rank(n)
}

// IsNumber reports whether r is a number rank.
func (r Rank) IsNumber() bool {
	return r >= 1 && r <= 10
}

func (r Rank) String() string {
	switch r {
	case Page:
		return "Page"
	case Knight:
		return "Knight"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return strconv.Itoa(int(r))
}

// Card is either a major arcanum (a greater secret) or a suited minor card
// (a lesser secret).
type Card struct {
	major  bool
	arcana Arcana
	suit   Suit
	rank   Rank
}

// Major returns the greater secret for a.
func Major(a Arcana) Card {
	return Card{major: true, arcana: a}
}

// Minor returns the lesser secret of the given suit and rank.
func Minor(suit Suit, rank Rank) Card {
	return Card{suit: suit, rank: rank}
}

// IsMajor reports whether c belongs to the major arcana.
func (c Card) IsMajor() bool { return c.major }

// Arcana returns the arcanum of a major card.
func (c Card) Arcana() (Arcana, bool) { return c.arcana, c.major }

// Suit returns the suit of a minor card.
func (c Card) Suit() (Suit, bool) { return c.suit, !c.major }

// Rank returns the rank of a minor card.
func (c Card) Rank() (Rank, bool) { return c.rank, !c.major }

// String renders "The Magician [I]" for major cards and "Knight of Cups" for
// minor ones.
func (c Card) String() string {
	if c.major {
		return fmt.Sprintf("%s [%s]", c.arcana.Name(), Roman(c.arcana.Numeral()))
	}
	return c.rank.String() + " of " + c.suit.String()
}

// ID returns the canonical card ID, e.g. major_arcana.00 or minor_arcana.cups.knight.
func (c Card) ID() string {
	if c.major {
		return fmt.Sprintf("major_arcana.%02d", c.arcana.Numeral())
	}
	return fmt.Sprintf("minor_arcana.%s.%s", strings.ToLower(c.suit.String()), strings.ToLower(rankWord(c.rank)))
}

// rankWord spells out number ranks for canonical IDs.
func rankWord(r Rank) string {
	words := []string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten"}
	if r.IsNumber() {
		return words[r]
	}
	return r.String()
}

// splitCamel inserts a space before every internal capital letter.
func splitCamel(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman renders n as a roman numeral. Zero renders as "0"; negative numbers
// and numbers above 3999 fall back to decimal.
func Roman(n int) string {
	if n <= 0 || n > 3999 {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String()
}
