package rope

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is a byte range inside a rope.
type Span struct {
	Pos int // start offset
	Len int // length in bytes
}

// LineCount returns the number of lines of r, delimited by newline
// characters. Consecutive newlines count as empty lines, and a text ending
// with a newline has an empty last line. The empty rope has no lines.
func (r Rope) LineCount() int {
	if r.IsEmpty() {
		return 0
	}
	n := 1
	for frag := range r.Chunks() {
		n += strings.Count(frag, "\n")
	}
	return n
}

// WordSpans returns the spans of the whitespace separated words within the
// byte range [i, j) of r.
func (r Rope) WordSpans(i, j int) ([]Span, error) {
	if j < i {
		return nil, ErrNegativeLength
	}
	text, err := r.Report(i, j-i)
	if err != nil {
		return nil, err
	}
	return findWordSpans(text, i), nil
}

func findWordSpans(s string, base int) []Span {
	spans := make([]Span, 0, 8)
	for pos := 0; pos < len(s); {
		r, width := utf8.DecodeRuneInString(s[pos:])
		if unicode.IsSpace(r) {
			pos += width
			continue
		}
		start := pos
		for pos < len(s) {
			r, width = utf8.DecodeRuneInString(s[pos:])
			if unicode.IsSpace(r) {
				break
			}
			pos += width
		}
		spans = append(spans, Span{Pos: base + start, Len: pos - start})
	}
	return spans
}
