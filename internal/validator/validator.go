package validator

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/diced/internal/card"
	"github.com/arcanaland/diced/internal/deck"
	"github.com/arcanaland/diced/internal/tarot"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks a deck file. Problems with the file's contents are
// collected in the results; the returned error is reserved for files that
// cannot be read or decoded at all.
func (v *Validator) Validate() (ValidationResults, error) {
	f, err := v.decodeDeckFile()
	if err != nil {
		return v.Results, err
	}

	v.validateHeader(f)
	switch f.Kind {
	case deck.KindTraditional:
		v.validateCards(f.Cards, func(s string) (string, error) {
			c, err := card.Parse(s)
			return c.String(), err
		})
	case deck.KindTarot:
		v.validateCards(f.Cards, func(s string) (string, error) {
			c, err := tarot.Parse(s)
			return c.String(), err
		})
	}

	return v.Results, nil
}

func (v *Validator) decodeDeckFile() (*deck.File, error) {
	if _, err := os.Stat(v.DeckPath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("deck file not found: %s", v.DeckPath)
	}

	var f deck.File
	md, err := toml.DecodeFile(v.DeckPath, &f)
	if err != nil {
		return nil, fmt.Errorf("error parsing deck file: %w", err)
	}

	for _, key := range md.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("unknown key: %s", key))
	}
	return &f, nil
}

// validateHeader checks the name and kind fields
func (v *Validator) validateHeader(f *deck.File) {
	if f.Name == "" {
		v.Results.Warnings = append(v.Results.Warnings, "name is not set")
	}

	switch f.Kind {
	case deck.KindTraditional, deck.KindTarot:
	case "":
		v.Results.Errors = append(v.Results.Errors, "kind is required (traditional or tarot)")
	default:
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("unsupported kind: %s (supported: traditional, tarot)", f.Kind))
	}

	if len(f.Cards) == 0 {
		v.Results.Errors = append(v.Results.Errors, "cards is empty")
	}
}

// validateCards parses every entry and warns about repeated cards
func (v *Validator) validateCards(entries []string, parse func(string) (string, error)) {
	counts := make(map[string]int)
	var order []string
	for i, entry := range entries {
		name, err := parse(entry)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("card %d: %v", i+1, err))
			continue
		}
		if name != strings.TrimSpace(entry) {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("card %d: %q is usually written %q", i+1, entry, name))
		}
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}

	for _, name := range order {
		if counts[name] > 1 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s appears %d times", name, counts[name]))
		}
	}
}
