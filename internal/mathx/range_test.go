package mathx

import "testing"

func TestRangeFuzzyContains(t *testing.T) {
	t.Parallel()

	r := NewRange(0, 10)
	cases := []struct {
		name string
		x    float64
		tol  float64
		want bool
	}{
		{"inside", 5, 0.01, true},
		{"just outside but within tol", 10.005, 0.01, true},
		{"far outside", 11, 0.01, false},
		{"at lower bound", 0, 0.01, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := r.FuzzyContains(tc.x, tc.tol); got != tc.want {
				t.Fatalf("FuzzyContains(%v, %v) = %v, want %v", tc.x, tc.tol, got, tc.want)
			}
		})
	}
}

func TestRangeFuzzyEncloses(t *testing.T) {
	t.Parallel()

	outer := NewRange(0, 10)
	inner := NewRange(1, 9)
	if !outer.FuzzyEncloses(inner, 1e-9) {
		t.Fatalf("expected outer to enclose inner")
	}

	tooWide := NewRange(-1, 11)
	if outer.FuzzyEncloses(tooWide, 1e-9) {
		t.Fatalf("expected outer to not enclose a wider range")
	}
	if outer.FuzzyEncloses(tooWide, 0.5) {
		t.Fatalf("expected outer to not enclose a range wider than tol allows")
	}
}

func TestRangeClamp(t *testing.T) {
	t.Parallel()

	r := NewRange(0, 10)
	if got := r.Clamp(-5); got != 0 {
		t.Fatalf("Clamp(-5) = %v, want 0", got)
	}
	if got := r.Clamp(15); got != 10 {
		t.Fatalf("Clamp(15) = %v, want 10", got)
	}
	if got := r.Clamp(5); got != 5 {
		t.Fatalf("Clamp(5) = %v, want 5", got)
	}
}
