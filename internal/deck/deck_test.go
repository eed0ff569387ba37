package deck

import (
	"errors"
	"slices"
	"testing"

	"github.com/arcanaland/diced/internal/random"
)

// scriptedRNG returns values from a pre-set sequence.
type scriptedRNG struct {
	values []int
	idx    int
}

func (r *scriptedRNG) IntN(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

func numbers(n int) *Deck[int] {
	d := &Deck[int]{}
	for i := range n {
		d.Add(i)
	}
	return d
}

func counts(cards []int) map[int]int {
	m := make(map[int]int)
	for _, c := range cards {
		m[c]++
	}
	return m
}

func TestDrawDestructivePicksByIndex(t *testing.T) {
	d := New("a", "b", "c", "d", "e")
	// Index 1 of [a b c d e] is b; index 3 of [a c d e] is e; index 0 of [a c d] is a.
	hand, err := d.DrawDestructive(&scriptedRNG{values: []int{1, 3, 0}}, 3)
	if err != nil {
		t.Fatalf("DrawDestructive: %v", err)
	}
	if got := hand.Cards(); !slices.Equal(got, []string{"b", "e", "a"}) {
		t.Fatalf("hand = %v, want [b e a]", got)
	}
	if got := d.Cards(); !slices.Equal(got, []string{"c", "d"}) {
		t.Fatalf("remaining = %v, want [c d]", got)
	}
}

func TestDrawDestructiveConservesCards(t *testing.T) {
	for k := 0; k <= 20; k++ {
		d := numbers(20)
		hand, err := d.DrawDestructive(random.New(uint64(k)), k)
		if err != nil {
			t.Fatalf("k=%d: %v", k, err)
		}
		if hand.Size() != k {
			t.Fatalf("k=%d: drew %d cards", k, hand.Size())
		}
		if d.Size() != 20-k {
			t.Fatalf("k=%d: %d cards remain, want %d", k, d.Size(), 20-k)
		}

		all := append(hand.Cards(), d.Cards()...)
		got := counts(all)
		if len(got) != 20 {
			t.Fatalf("k=%d: union has %d distinct cards, want 20", k, len(got))
		}
		for c, n := range got {
			if n != 1 {
				t.Fatalf("k=%d: card %d appears %d times", k, c, n)
			}
		}
	}
}

func TestDrawDestructiveKeepsRemainderOrder(t *testing.T) {
	d := numbers(10)
	if _, err := d.DrawDestructive(random.New(7), 4); err != nil {
		t.Fatalf("DrawDestructive: %v", err)
	}
	if rest := d.Cards(); !slices.IsSorted(rest) {
		t.Fatalf("remaining cards out of order: %v", rest)
	}
}

func TestDrawLeavesSourceUnchanged(t *testing.T) {
	d := numbers(10)
	before := d.Cards()
	hand, err := d.Draw(random.New(3), 6)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if hand.Size() != 6 {
		t.Fatalf("drew %d cards, want 6", hand.Size())
	}
	if got := d.Cards(); !slices.Equal(got, before) {
		t.Fatalf("source changed: %v, want %v", got, before)
	}
	for c, n := range counts(hand.Cards()) {
		if n != 1 {
			t.Fatalf("card %d drawn %d times", c, n)
		}
	}
}

func TestDrawFailuresMatchAcrossVariants(t *testing.T) {
	draws := map[string]func(*Deck[int], int) (*Deck[int], error){
		"Draw": func(d *Deck[int], n int) (*Deck[int], error) {
			return d.Draw(random.New(1), n)
		},
		"DrawDestructive": func(d *Deck[int], n int) (*Deck[int], error) {
			return d.DrawDestructive(random.New(1), n)
		},
	}

	for name, draw := range draws {
		d := numbers(5)
		before := d.Cards()

		hand, err := draw(d, 6)
		if hand != nil {
			t.Errorf("%s: expected nil hand on failure", name)
		}
		if !errors.Is(err, ErrInsufficientCards) {
			t.Fatalf("%s: error = %v, want ErrInsufficientCards", name, err)
		}
		var insufficient *InsufficientCardsError
		if !errors.As(err, &insufficient) {
			t.Fatalf("%s: error %T is not *InsufficientCardsError", name, err)
		}
		if insufficient.Requested != 6 || insufficient.Available != 5 {
			t.Errorf("%s: error = %+v, want requested 6 available 5", name, insufficient)
		}
		if got := err.Error(); got != "6 cards requested, deck only has 5 cards" {
			t.Errorf("%s: message = %q", name, got)
		}
		if got := d.Cards(); !slices.Equal(got, before) {
			t.Errorf("%s: source changed on failure: %v", name, got)
		}

		if _, err := draw(d, -1); !errors.Is(err, ErrNegativeAmount) {
			t.Errorf("%s: negative amount error = %v, want ErrNegativeAmount", name, err)
		}
	}
}

func TestDrawZero(t *testing.T) {
	d := numbers(4)
	for _, destructive := range []bool{false, true} {
		var (
			hand *Deck[int]
			err  error
		)
		if destructive {
			hand, err = d.DrawDestructive(random.New(1), 0)
		} else {
			hand, err = d.Draw(random.New(1), 0)
		}
		if err != nil {
			t.Fatalf("destructive=%v: %v", destructive, err)
		}
		if hand.Size() != 0 {
			t.Fatalf("destructive=%v: drew %d cards", destructive, hand.Size())
		}
		if d.Size() != 4 {
			t.Fatalf("destructive=%v: source has %d cards, want 4", destructive, d.Size())
		}
	}
}

func TestDrawZeroFromEmptyDeck(t *testing.T) {
	d := &Deck[int]{}
	if _, err := d.DrawDestructive(random.New(1), 0); err != nil {
		t.Fatalf("DrawDestructive(0) on empty deck: %v", err)
	}
	if _, err := d.Draw(random.New(1), 1); !errors.Is(err, ErrInsufficientCards) {
		t.Fatalf("Draw(1) on empty deck error = %v", err)
	}
}

func TestDrawDestructiveWholeDeck(t *testing.T) {
	d := numbers(8)
	hand, err := d.DrawDestructive(random.New(9), 8)
	if err != nil {
		t.Fatalf("DrawDestructive: %v", err)
	}
	if d.Size() != 0 {
		t.Fatalf("source has %d cards, want 0", d.Size())
	}
	got := hand.Cards()
	slices.Sort(got)
	if !slices.Equal(got, numbers(8).Cards()) {
		t.Fatalf("hand = %v is not a permutation of the deck", got)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	d := numbers(10)
	even := d.Filter(func(n int) bool { return n%2 == 0 })
	if got := even.Cards(); !slices.Equal(got, []int{0, 2, 4, 6, 8}) {
		t.Fatalf("Filter = %v", got)
	}
	if d.Size() != 10 {
		t.Fatalf("Filter changed the source")
	}
}

func TestDrainConsumesInOrder(t *testing.T) {
	d := New("x", "y", "z")
	var got []string
	for c := range d.Drain() {
		got = append(got, c)
	}
	if !slices.Equal(got, []string{"x", "y", "z"}) {
		t.Fatalf("Drain = %v", got)
	}
	if d.Size() != 0 {
		t.Fatalf("deck has %d cards after draining", d.Size())
	}
	if _, ok := d.Next(); ok {
		t.Fatal("Next on drained deck reported a card")
	}
}

func TestDrainStopsEarly(t *testing.T) {
	d := New(1, 2, 3, 4)
	for c := range d.Drain() {
		if c == 2 {
			break
		}
	}
	if got := d.Cards(); !slices.Equal(got, []int{3, 4}) {
		t.Fatalf("remaining = %v, want [3 4]", got)
	}
}

func TestNewCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	d := New(src...)
	src[0] = 99
	if got := d.Cards(); got[0] != 1 {
		t.Fatalf("deck shares storage with its input: %v", got)
	}
}

// TestDrawIsUniform checks that every 2-card subset of a 5-card deck comes up
// about equally often. The chi-square bound is the 0.9999 quantile for 9
// degrees of freedom.
func TestDrawIsUniform(t *testing.T) {
	const (
		trials   = 20000
		subsets  = 10
		critical = 33.72
	)
	d := numbers(5)
	rng := random.New(2024)
	seen := make(map[[2]int]int)
	for range trials {
		hand, err := d.Draw(rng, 2)
		if err != nil {
			t.Fatalf("Draw: %v", err)
		}
		c := hand.Cards()
		lo, hi := min(c[0], c[1]), max(c[0], c[1])
		seen[[2]int{lo, hi}]++
	}
	if len(seen) != subsets {
		t.Fatalf("saw %d distinct subsets, want %d", len(seen), subsets)
	}

	expected := float64(trials) / subsets
	var chi2 float64
	for _, observed := range seen {
		diff := float64(observed) - expected
		chi2 += diff * diff / expected
	}
	if chi2 > critical {
		t.Fatalf("chi-square = %.2f exceeds %.2f; counts %v", chi2, critical, seen)
	}
}
