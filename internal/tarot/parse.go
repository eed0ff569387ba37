package tarot

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a tarot card from its rendered form ("The Fool [0]",
// "Knight of Cups") or its canonical ID ("major_arcana.00",
// "minor_arcana.cups.knight"). The roman suffix of major cards is optional and
// matching ignores case.
func Parse(s string) (Card, error) {
	text := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if text == "" {
		return Card{}, fmt.Errorf("%w: empty name", ErrUnknownCard)
	}

	if strings.HasPrefix(text, "major_arcana.") || strings.HasPrefix(text, "minor_arcana.") {
		return parseID(s, strings.Split(text, "."))
	}

	if i := strings.LastIndex(text, " ["); i >= 0 && strings.HasSuffix(text, "]") {
		text = text[:i]
	}
	for _, a := range MajorArcana {
		if text == strings.ToLower(a.Name()) {
			return Major(a), nil
		}
	}

	rankText, suitText, ok := strings.Cut(text, " of ")
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, s)
	}
	rank, ok := parseRank(rankText)
	if !ok {
		return Card{}, fmt.Errorf("%w: bad rank in %q", ErrUnknownCard, s)
	}
	suit, ok := parseSuit(suitText)
	if !ok {
		return Card{}, fmt.Errorf("%w: bad suit in %q", ErrUnknownCard, s)
	}
	return Minor(suit, rank), nil
}

func parseID(s string, parts []string) (Card, error) {
	if parts[0] == "major_arcana" && len(parts) == 2 {
		n, err := strconv.Atoi(parts[1])
		if err == nil {
			for _, a := range MajorArcana {
				if a.Numeral() == n {
					return Major(a), nil
				}
			}
		}
	} else if parts[0] == "minor_arcana" && len(parts) == 3 {
		suit, okSuit := parseSuit(parts[1])
		rank, okRank := parseRank(parts[2])
		if okSuit && okRank {
			return Minor(suit, rank), nil
		}
	}
	return Card{}, fmt.Errorf("%w: invalid card ID %q", ErrUnknownCard, s)
}

func parseRank(s string) (Rank, bool) {
	for _, r := range Courts {
		if strings.EqualFold(s, r.String()) {
			return r, true
		}
	}
	for n := 1; n <= 10; n++ {
		if s == strconv.Itoa(n) || strings.EqualFold(s, rankWord(Rank(n))) {
			return Rank(n), true
		}
	}
	return 0, false
}

func parseSuit(s string) (Suit, bool) {
	for _, suit := range Suits {
		if strings.EqualFold(s, suit.String()) {
			return suit, true
		}
	}
	return 0, false
}

// ParseSuit reads a minor arcana suit name, ignoring case.
func ParseSuit(s string) (Suit, error) {
	suit, ok := parseSuit(strings.TrimSpace(s))
	if !ok {
		return 0, fmt.Errorf("unknown tarot suit: %s", s)
	}
	return suit, nil
}
