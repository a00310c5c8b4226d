package seq

import "testing"

type sized struct{ n int }

func (s sized) Len() int { return s.n }

type label string

func TestWeigherForStrings(t *testing.T) {
	w := WeigherFor[string]()
	if w("hello") != 5 || w("") != 0 {
		t.Fatalf("string weigher: got %d/%d, want 5/0", w("hello"), w(""))
	}
	wl := WeigherFor[label]()
	if wl(label("abc")) != 3 {
		t.Fatalf("named string weigher: got %d, want 3", wl(label("abc")))
	}
}

func TestWeigherForSlicesAndLengthy(t *testing.T) {
	if w := WeigherFor[[]int](); w([]int{1, 2, 3}) != 3 {
		t.Fatalf("slice weigher: got %d, want 3", w([]int{1, 2, 3}))
	}
	if w := WeigherFor[[]byte](); w([]byte("xy")) != 2 {
		t.Fatalf("byte slice weigher: got %d, want 2", w([]byte("xy")))
	}
	if w := WeigherFor[sized](); w(sized{n: 7}) != 7 {
		t.Fatalf("Lengthy weigher: got %d, want 7", w(sized{n: 7}))
	}
}

func TestWeigherForFallsBackToUnit(t *testing.T) {
	if w := WeigherFor[int](); w(42) != 1 {
		t.Fatalf("int weigher: got %d, want 1", w(42))
	}
	if w := WeigherFor[struct{ a, b int }](); w(struct{ a, b int }{1, 2}) != 1 {
		t.Fatalf("struct weigher: expected unit weight")
	}
}

func TestWeigherForInterfaceInspectsValues(t *testing.T) {
	w := WeigherFor[any]()
	cases := []struct {
		v    any
		want int
	}{
		{"abcd", 4},
		{[]string{"a", "b"}, 2},
		{sized{n: 9}, 9},
		{3.14, 1},
		{nil, 1},
	}
	for _, c := range cases {
		if got := w(c.v); got != c.want {
			t.Errorf("weight(%v) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestLandingBias(t *testing.T) {
	if Landing(0, true) != 0 || Landing(0, false) != 0 {
		t.Fatalf("landing at start must stay at 0")
	}
	if Landing(3, true) != 2 || Landing(3, false) != 3 {
		t.Fatalf("landing(3): got %d/%d, want 2/3", Landing(3, true), Landing(3, false))
	}
	if Compare(-5) != Before || Compare(0) != Equal || Compare(2) != After {
		t.Fatalf("Compare does not map signs to orderings")
	}
}
