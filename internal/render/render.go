// Package render turns cards and dice rolls into terminal text.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/diced/internal/card"
	"github.com/arcanaland/diced/internal/dice"
	"github.com/arcanaland/diced/internal/tarot"
)

var (
	redCard     = color.New(color.FgRed)
	blackCard   = color.New(color.FgHiWhite)
	majorCard   = color.New(color.FgYellow, color.Bold)
	minorCard   = color.New(color.FgCyan)
	critFail    = color.New(color.FgRed, color.Bold)
	critSuccess = color.New(color.FgBlue, color.Bold)
)

// SetColorMode applies an "auto", "always" or "never" color mode. Auto keeps
// fatih/color's own terminal detection.
func SetColorMode(mode string) error {
	switch mode {
	case "auto":
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid color mode %q", mode)
	}
	return nil
}

// Card renders a drawn card, colored by its family or color.
func Card(c fmt.Stringer) string {
	switch c := c.(type) {
	case card.Card:
		if c.Color() == card.Red {
			return redCard.Sprint(c)
		}
		return blackCard.Sprint(c)
	case tarot.Card:
		if c.IsMajor() {
			return majorCard.Sprint(c)
		}
		return minorCard.Sprint(c)
	}
	return c.String()
}

// Hand writes one card per line.
func Hand(w io.Writer, cards []fmt.Stringer) {
	for _, c := range cards {
		fmt.Fprintln(w, Card(c))
	}
}

// RollOptions selects the extra output of a dice roll.
type RollOptions struct {
	Crit  bool
	Count bool
	Sum   bool
}

// Roll writes a roll as a header line followed by its results:
//
//	3d6 +1:
//	=> (4, 7, 2): [13]
func Roll(w io.Writer, r dice.Roll, opts RollOptions) {
	fmt.Fprintf(w, "%s:\n", r.Die)

	values := make([]string, len(r.Values))
	for i, v := range r.Values {
		values[i] = rollValue(v, r.Die.Size, opts.Crit)
	}
	joined := strings.Join(values, ", ")

	switch {
	case opts.Sum:
		fmt.Fprintf(w, "=> (%s): [%d]\n", joined, r.Sum)
	case opts.Count:
		fmt.Fprintf(w, "=> (%s): [crit successes: %d, crit failures: %d]\n", joined, r.Successes, r.Failures)
	default:
		fmt.Fprintf(w, "=> (%s)\n", joined)
	}
}

func rollValue(v, size int, crit bool) string {
	text := fmt.Sprint(v)
	if !crit {
		return text
	}
	switch dice.CritOf(v, size) {
	case dice.CritFailure:
		return critFail.Sprint(text)
	case dice.CritSuccess:
		return critSuccess.Sprint(text)
	}
	return text
}

// TerminalWidth returns the width of the terminal on stdout, or 80 when it
// cannot be determined.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// Columns writes items in as many left-aligned columns as fit in width.
// Items are laid out top to bottom, then left to right.
func Columns(w io.Writer, items []string, width int) {
	if len(items) == 0 {
		return
	}

	const gap = 2
	cell := 0
	for _, item := range items {
		cell = max(cell, len([]rune(stripAnsi(item))))
	}
	cols := max(1, (width+gap)/(cell+gap))
	rows := (len(items) + cols - 1) / cols

	for r := 0; r < rows; r++ {
		var line strings.Builder
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(items) {
				break
			}
			line.WriteString(items[i])
			if next := (c+1)*rows + r; next < len(items) {
				pad := cell - len([]rune(stripAnsi(items[i]))) + gap
				line.WriteString(strings.Repeat(" ", pad))
			}
		}
		fmt.Fprintln(w, line.String())
	}
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
