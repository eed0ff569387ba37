package deck

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/diced/internal/card"
	"github.com/arcanaland/diced/internal/random"
	"github.com/arcanaland/diced/internal/tarot"
)

// File is a hand-assembled deck stored as TOML:
//
//	name = "Poker night"
//	kind = "traditional"
//	cards = ["Ace of Spades", "Big Joker"]
//
// Cards are written the way they render and may repeat.
type File struct {
	Name  string   `toml:"name"`
	Kind  Kind     `toml:"kind"`
	Cards []string `toml:"cards"`

	Path string `toml:"-"`
}

// LoadFile reads a deck file. Card entries are not parsed until the deck is
// built.
func LoadFile(path string) (*File, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("deck file not found: %s", path)
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("error parsing deck file: %w", err)
	}
	f.Path = path

	switch f.Kind {
	case KindTraditional, KindTarot:
	case "":
		return nil, fmt.Errorf("deck file %s: kind is required", path)
	default:
		return nil, fmt.Errorf("deck file %s: %w: %q", path, ErrUnknownShape, f.Kind)
	}
	return &f, nil
}

// Traditional builds a playing deck from the file's entries in order.
func (f *File) Traditional() (*Deck[card.Card], error) {
	if f.Kind != KindTraditional {
		return nil, fmt.Errorf("%w: %s holds %s cards", ErrKindMismatch, f.Path, f.Kind)
	}
	return buildDeck(f.Cards, card.Parse)
}

// Tarot builds a tarot deck from the file's entries in order.
func (f *File) Tarot() (*Deck[tarot.Card], error) {
	if f.Kind != KindTarot {
		return nil, fmt.Errorf("%w: %s holds %s cards", ErrKindMismatch, f.Path, f.Kind)
	}
	return buildDeck(f.Cards, tarot.Parse)
}

func buildDeck[T any](entries []string, parse func(string) (T, error)) (*Deck[T], error) {
	d := &Deck[T]{}
	for i, entry := range entries {
		c, err := parse(entry)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		d.Add(c)
	}
	return d, nil
}

// Deal builds the file's deck and draws from it.
func (f *File) Deal(req Request, rng random.RNG) ([]fmt.Stringer, error) {
	switch f.Kind {
	case KindTraditional:
		d, err := f.Traditional()
		if err != nil {
			return nil, err
		}
		return DealDeck(d, req, rng)
	case KindTarot:
		d, err := f.Tarot()
		if err != nil {
			return nil, err
		}
		return DealDeck(d, req, rng)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, f.Kind)
}

// Export writes the canonical deck for shape as a deck file.
func Export(w io.Writer, name string, shape Shape) error {
	f := File{Name: name, Kind: shape.Kind}
	switch shape.Kind {
	case KindTraditional:
		f.Cards = stringsOf(Traditional(shape.Jokers).Cards())
	case KindTarot:
		f.Cards = stringsOf(Tarot(shape.IncludeMinor).Cards())
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShape, shape.Kind)
	}

	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("error encoding deck file: %w", err)
	}
	return nil
}

func stringsOf[T fmt.Stringer](cards []T) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
