package dice

import (
	"errors"
	"slices"
	"testing"

	"github.com/arcanaland/diced/internal/random"
)

// fixedRNG returns values from a pre-set sequence.
type fixedRNG struct {
	values []int
	idx    int
}

func (r *fixedRNG) IntN(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

func TestParseDie(t *testing.T) {
	tests := []struct {
		in   string
		want Die
	}{
		{"1d20", Die{Quantity: 1, Size: 20}},
		{"3d6+2", Die{Quantity: 3, Size: 6, Modifier: 2}},
		{"2D8-1", Die{Quantity: 2, Size: 8, Modifier: -1}},
		{"4/10", Die{Quantity: 4, Size: 10}},
		{`2\4`, Die{Quantity: 2, Size: 4}},
	}
	for _, tt := range tests {
		got, err := ParseDie(tt.in)
		if err != nil {
			t.Fatalf("ParseDie(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDie(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseDieErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"d6", ErrBadNotation},
		{"3x6", ErrBadNotation},
		{"3d6+", ErrBadNotation},
		{"roll 3d6", ErrBadNotation},
		{"1d0", ErrDieSize},
		{"1d65536", ErrTooLarge},
		{"65536d6", ErrTooLarge},
		{"1d6+40000", ErrTooLarge},
	}
	for _, tt := range tests {
		if _, err := ParseDie(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("ParseDie(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	if _, err := Parse(nil); !errors.Is(err, ErrNoDice) {
		t.Fatalf("Parse(nil) error = %v, want ErrNoDice", err)
	}
	dice, err := Parse([]string{"1d4", "2d6+1"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(dice) != 2 || dice[1].Modifier != 1 {
		t.Fatalf("Parse = %+v", dice)
	}
	if _, err := Parse([]string{"1d4", "nope"}); !errors.Is(err, ErrBadNotation) {
		t.Fatalf("Parse error = %v", err)
	}
}

func TestDieString(t *testing.T) {
	tests := map[Die]string{
		{Quantity: 3, Size: 6}:              "3d6",
		{Quantity: 1, Size: 20, Modifier: 5}: "1d20 +5",
		{Quantity: 2, Size: 8, Modifier: -3}: "2d8 -3",
	}
	for d, want := range tests {
		if got := d.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestRoll(t *testing.T) {
	d := Die{Quantity: 4, Size: 6, Modifier: 1}
	// IntN(6) values 0, 5, 2, 5 become faces 1, 6, 3, 6.
	r := d.Roll(&fixedRNG{values: []int{0, 5, 2, 5}})

	if !slices.Equal(r.Faces, []int{1, 6, 3, 6}) {
		t.Fatalf("Faces = %v", r.Faces)
	}
	if !slices.Equal(r.Values, []int{2, 7, 4, 7}) {
		t.Fatalf("Values = %v", r.Values)
	}
	if r.Sum != 20 {
		t.Fatalf("Sum = %d, want 20", r.Sum)
	}
	if r.Successes != 2 || r.Failures != 1 {
		t.Fatalf("Successes = %d, Failures = %d; want 2 and 1", r.Successes, r.Failures)
	}
}

func TestRollStaysInRange(t *testing.T) {
	d := Die{Quantity: 500, Size: 12}
	r := d.Roll(random.New(8))
	for _, f := range r.Faces {
		if f < 1 || f > 12 {
			t.Fatalf("face %d out of range", f)
		}
	}
}

func TestCritOf(t *testing.T) {
	tests := []struct {
		value, size int
		want        Crit
	}{
		{1, 20, CritFailure},
		{0, 20, CritFailure},
		{20, 20, CritSuccess},
		{22, 20, CritSuccess},
		{10, 20, CritNone},
	}
	for _, tt := range tests {
		if got := CritOf(tt.value, tt.size); got != tt.want {
			t.Errorf("CritOf(%d, %d) = %d, want %d", tt.value, tt.size, got, tt.want)
		}
	}
}
