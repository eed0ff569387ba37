// Package dice parses dice notation such as "3d6+2" and rolls it.
package dice

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/arcanaland/diced/internal/random"
)

var (
	// ErrNoDice indicates a roll request had no dice specified.
	ErrNoDice = errors.New("no dice passed in")

	// ErrBadNotation indicates an argument is not dice notation.
	ErrBadNotation = errors.New("die entered improperly")

	// ErrDieSize indicates a die with fewer than one side.
	ErrDieSize = errors.New("improper die size")

	// ErrTooLarge indicates a quantity, size or modifier outside its limit.
	ErrTooLarge = errors.New("value too large")
)

// notation matches QUANTITYdSIZE with an optional +/- modifier. "/" and "\"
// are accepted in place of "d".
var notation = regexp.MustCompile(`^(?P<quantity>\d+)[dD\\/](?P<size>\d+)(?P<modifier>[+-]\d+)?$`)

// Limits mirror the widths the notation has always been parsed into.
const (
	MaxQuantity = math.MaxUint16
	MaxSize     = math.MaxUint16
	MaxModifier = math.MaxInt16
)

// Die is a group of identical dice and a modifier added to each result.
type Die struct {
	Quantity int
	Size     int
	Modifier int
}

// String renders the die as "3d6" or "3d6 +2".
func (d Die) String() string {
	switch {
	case d.Modifier > 0:
		return fmt.Sprintf("%dd%d +%d", d.Quantity, d.Size, d.Modifier)
	case d.Modifier < 0:
		return fmt.Sprintf("%dd%d -%d", d.Quantity, d.Size, -d.Modifier)
	}
	return fmt.Sprintf("%dd%d", d.Quantity, d.Size)
}

// Parse reads one die per argument.
func Parse(args []string) ([]Die, error) {
	if len(args) == 0 {
		return nil, ErrNoDice
	}
	dice := make([]Die, 0, len(args))
	for _, arg := range args {
		d, err := ParseDie(arg)
		if err != nil {
			return nil, err
		}
		dice = append(dice, d)
	}
	return dice, nil
}

// ParseDie reads a single die such as "2d20" or "1d8-1".
func ParseDie(s string) (Die, error) {
	m := notation.FindStringSubmatch(s)
	if m == nil {
		return Die{}, fmt.Errorf("%w: %s", ErrBadNotation, s)
	}

	quantity, err := strconv.Atoi(m[notation.SubexpIndex("quantity")])
	if err != nil || quantity > MaxQuantity {
		return Die{}, fmt.Errorf("%w: die quantity in %s (limit is %d)", ErrTooLarge, s, MaxQuantity)
	}
	size, err := strconv.Atoi(m[notation.SubexpIndex("size")])
	if err != nil || size > MaxSize {
		return Die{}, fmt.Errorf("%w: die size in %s (limit is %d)", ErrTooLarge, s, MaxSize)
	}
	if size < 1 {
		return Die{}, fmt.Errorf("%w: %d", ErrDieSize, size)
	}

	var modifier int
	if text := m[notation.SubexpIndex("modifier")]; text != "" {
		modifier, err = strconv.Atoi(text)
		if err != nil || modifier > MaxModifier || modifier < -MaxModifier {
			return Die{}, fmt.Errorf("%w: modifier in %s (limit is %d)", ErrTooLarge, s, MaxModifier)
		}
	}

	return Die{Quantity: quantity, Size: size, Modifier: modifier}, nil
}

// Roll is the outcome of rolling one Die.
type Roll struct {
	Die Die
	// Faces holds the raw face of each die.
	Faces []int
	// Values holds each face plus the modifier.
	Values []int
	// Sum is the total of Values.
	Sum int
	// Successes counts dice that landed on their highest face.
	Successes int
	// Failures counts dice that landed on 1.
	Failures int
}

// Roll rolls every die in d.
func (d Die) Roll(rng random.RNG) Roll {
	r := Roll{
		Die:    d,
		Faces:  make([]int, d.Quantity),
		Values: make([]int, d.Quantity),
	}
	for i := range d.Quantity {
		face := rng.IntN(d.Size) + 1
		r.Faces[i] = face
		r.Values[i] = face + d.Modifier
		r.Sum += r.Values[i]
		if face >= d.Size {
			r.Successes++
		}
		if face == 1 {
			r.Failures++
		}
	}
	return r
}

// Crit classifies a displayed value for coloring.
type Crit int

const (
	CritNone Crit = iota
	CritFailure
	CritSuccess
)

// CritOf reports whether value reads as a critical failure (at most 1) or a
// critical success (at least the die size).
func CritOf(value, size int) Crit {
	switch {
	case value <= 1:
		return CritFailure
	case value >= size:
		return CritSuccess
	}
	return CritNone
}
