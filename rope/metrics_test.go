package rope

import (
	"slices"
	"testing"
)

func TestLineCount(t *testing.T) {
	cases := []struct {
		frags []string
		lines int
	}{
		{nil, 0},
		{[]string{"one line"}, 1},
		{[]string{"one\ntw", "o\n", "\nfour"}, 4},
		{[]string{"trailing\n"}, 2},
	}
	for _, c := range cases {
		if n := FromFragments(c.frags).LineCount(); n != c.lines {
			t.Errorf("%q: expected %d lines, have %d", c.frags, c.lines, n)
		}
	}
}

func TestWordSpans(t *testing.T) {
	r := FromFragments([]string{"  Hel", "lo wörld\t", "again "})
	spans, err := r.WordSpans(0, r.Len())
	if err != nil {
		t.Fatal(err)
	}
	expected := []Span{{2, 5}, {8, 6}, {15, 5}}
	if !slices.Equal(spans, expected) {
		t.Errorf("expected %v, have %v", expected, spans)
	}
	spans, _ = r.WordSpans(4, 10)
	if !slices.Equal(spans, []Span{{4, 3}, {8, 2}}) {
		t.Errorf("unexpected spans in sub-range: %v", spans)
	}
	if _, err := r.WordSpans(5, 2); err == nil {
		t.Errorf("expected error for inverted range")
	}
}
