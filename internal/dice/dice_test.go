package dice

import (
	"errors"
	"math/rand"
	"testing"
)

// TestRandIsDeterministicPerSeed ensures the same seed replays the same rolls.
func TestRandIsDeterministicPerSeed(t *testing.T) {
	first := NewRand(7)
	second := NewRand(7)
	for i := 0; i < 20; i++ {
		a, b := first.Roll(3, 6), second.Roll(3, 6)
		if a != b {
			t.Fatalf("roll %d: %d != %d for equal seeds", i, a, b)
		}
	}
}

// TestRandMatchesUnderlyingSource ensures each die is an Intn(sides)+1 draw.
func TestRandMatchesUnderlyingSource(t *testing.T) {
	seed := int64(1)
	rng := rand.New(rand.NewSource(seed))
	want := (rng.Intn(6) + 1) + (rng.Intn(6) + 1)

	if got := NewRand(seed).Roll(2, 6); got != want {
		t.Fatalf("Roll(2, 6) = %d, want %d", got, want)
	}
}

// TestRandStaysInRange ensures totals lie within [count, count*sides].
func TestRandStaysInRange(t *testing.T) {
	r := NewRand(99)
	for _, tc := range []struct{ count, sides int }{{1, 2}, {9, 2}, {6, 3}, {3, 6}, {1, 20}} {
		for i := 0; i < 200; i++ {
			got := r.Roll(tc.count, tc.sides)
			if got < tc.count || got > tc.count*tc.sides {
				t.Fatalf("Roll(%d, %d) = %d out of range", tc.count, tc.sides, got)
			}
		}
	}
}

// TestRandRollsNothingForInvalidInput ensures non-positive input yields 0.
func TestRandRollsNothingForInvalidInput(t *testing.T) {
	r := NewRand(1)
	for _, tc := range []struct{ count, sides int }{{0, 6}, {-1, 6}, {2, 0}, {2, -4}} {
		if got := r.Roll(tc.count, tc.sides); got != 0 {
			t.Fatalf("Roll(%d, %d) = %d, want 0", tc.count, tc.sides, got)
		}
	}
}

// TestNewEntropyRand checks the entropy roller rolls in range.
func TestNewEntropyRand(t *testing.T) {
	r, err := NewEntropyRand()
	if err != nil {
		t.Fatalf("new entropy rand: %v", err)
	}
	if got := r.Roll(1, 6); got < 1 || got > 6 {
		t.Fatalf("Roll(1, 6) = %d out of range", got)
	}
}

// TestDiceSpecBounds verifies Min and Max include the modifier.
func TestDiceSpecBounds(t *testing.T) {
	spec := DiceSpec{Count: 1, Sides: 6, Modifier: 12}
	if spec.Min() != 13 || spec.Max() != 18 {
		t.Fatalf("bounds = [%d, %d], want [13, 18]", spec.Min(), spec.Max())
	}
}

// TestDiceSpecString covers dice notation for each modifier sign.
func TestDiceSpecString(t *testing.T) {
	tcs := []struct {
		spec DiceSpec
		want string
	}{
		{spec: DiceSpec{Count: 3, Sides: 6}, want: "3d6"},
		{spec: DiceSpec{Count: 1, Sides: 6, Modifier: 12}, want: "1d6+12"},
		{spec: DiceSpec{Count: 2, Sides: 4, Modifier: -1}, want: "2d4-1"},
	}
	for _, tc := range tcs {
		if got := tc.spec.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}
}

// TestDiceSpecValidate ensures invalid dice specs are rejected.
func TestDiceSpecValidate(t *testing.T) {
	if err := (DiceSpec{Count: 1, Sides: 6}).Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	for _, spec := range []DiceSpec{{Count: 0, Sides: 6}, {Count: 2, Sides: 0}, {Count: -1, Sides: -1}} {
		if err := spec.Validate(); !errors.Is(err, ErrInvalidDiceSpec) {
			t.Fatalf("Validate(%v) = %v, want %v", spec, err, ErrInvalidDiceSpec)
		}
	}
}

type fixedRoller int

func (f fixedRoller) Roll(count, sides int) int { return int(f) }

// TestApplyAddsModifier verifies Apply adds the modifier to the roll.
func TestApplyAddsModifier(t *testing.T) {
	if got := Apply(fixedRoller(4), DiceSpec{Count: 1, Sides: 6, Modifier: 12}); got != 16 {
		t.Fatalf("Apply = %d, want 16", got)
	}
}

// TestNewSeededRand verifies seed zero draws entropy and others repeat.
func TestNewSeededRand(t *testing.T) {
	seeded, err := NewSeededRand(9)
	if err != nil {
		t.Fatalf("new seeded rand: %v", err)
	}
	want := NewRand(9)
	for i := 0; i < 10; i++ {
		if got, w := seeded.Roll(3, 6), want.Roll(3, 6); got != w {
			t.Fatalf("roll %d = %d, want %d", i, got, w)
		}
	}

	entropy, err := NewSeededRand(0)
	if err != nil {
		t.Fatalf("new entropy rand: %v", err)
	}
	if got := entropy.Roll(2, 4); got < 2 || got > 8 {
		t.Fatalf("roll = %d, want within [2, 8]", got)
	}
}
