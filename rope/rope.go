package rope

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/plist"
	"github.com/npillmayer/plist/seq"
)

// DefaultFragmentSize is the preferred number of bytes per fragment when a
// rope is built from a plain string.
const DefaultFragmentSize = 64

// Rope is an immutable byte string. The zero value is the empty rope.
type Rope struct {
	frags plist.List[string] // fragments, never holding an empty string
}

// Empty returns the empty rope.
func Empty() Rope {
	return Rope{}
}

// FromString creates a rope holding s. s is split into fragments of about
// DefaultFragmentSize bytes, each starting at a rune boundary.
func FromString(s string) Rope {
	return FromFragments(split(s, DefaultFragmentSize))
}

// FromFragments creates a rope from a sequence of text fragments. Empty
// fragments are dropped.
func FromFragments(frags []string) Rope {
	r, err := New(plist.Config[string]{}, frags)
	assert(err == nil, "default list configuration rejected")
	return r
}

// New creates a rope from fragments, backed by a list configured by cfg.
// cfg.Weight is ignored, as fragments always weigh their byte length.
func New(cfg plist.Config[string], frags []string) (Rope, error) {
	cfg.Weight = fragmentLength
	nonEmpty := make([]string, 0, len(frags))
	for _, f := range frags {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	l, err := plist.From(cfg, nonEmpty)
	if err != nil {
		tracer().Errorf("cannot create rope: %v", err)
		return Rope{}, err
	}
	return Rope{frags: l}, nil
}

func fragmentLength(s string) int {
	return len(s)
}

// split cuts s into pieces of at least size bytes, extending each piece up to
// the next rune start.
func split(s string, size int) []string {
	var frags []string
	for len(s) > size {
		at := size
		for at < len(s) && !utf8.RuneStart(s[at]) {
			at++
		}
		frags = append(frags, s[:at])
		s = s[at:]
	}
	if s != "" {
		frags = append(frags, s)
	}
	return frags
}

func (r Rope) list() plist.List[string] {
	if r.frags == nil {
		return plist.Must(plist.Empty(plist.Config[string]{Weight: fragmentLength}))
	}
	return r.frags
}

// Len returns the length of r in bytes.
func (r Rope) Len() int {
	if r.frags == nil {
		return 0
	}
	return r.frags.Summary()
}

// IsEmpty reports whether r holds no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// String returns the text of r.
func (r Rope) String() string {
	if r.frags == nil {
		return ""
	}
	return plist.Reduce(r.frags, func(b *strings.Builder, s string) *strings.Builder {
		b.WriteString(s)
		return b
	}, &strings.Builder{}).String()
}

// Chunks iterates over the fragments of r, in order.
func (r Rope) Chunks() iter.Seq[string] {
	return r.list().All()
}

// FragmentCount returns the number of fragments r consists of.
func (r Rope) FragmentCount() int {
	if r.frags == nil {
		return 0
	}
	return r.frags.Len()
}

// locate returns a cursor at the fragment containing the byte at offset. For
// offset == Len the cursor is exhausted.
func (r Rope) locate(offset int) plist.Cursor[string] {
	return r.list().AtEqual(func(frag string, prefix int) plist.Ordering {
		switch {
		case offset < prefix:
			return plist.Before
		case offset >= prefix+len(frag):
			return plist.After
		}
		return plist.Equal
	}, false)
}

// Inserted returns a rope with s inserted at byte offset. r is left
// unchanged.
func (r Rope) Inserted(offset int, s string) (Rope, error) {
	if offset < 0 || offset > r.Len() {
		tracer().Errorf("rope insertion at %d out of [0, %d]", offset, r.Len())
		return r, ErrIndexOutOfBounds
	}
	if s == "" {
		return r, nil
	}
	c := r.locate(offset)
	var ops []plist.Op[string]
	switch {
	case c.Done():
		ops = []plist.Op[string]{seq.Insert(c.Index(), s)}
	case offset == c.Summary():
		ops = []plist.Op[string]{seq.Insert(c.Index(), s)}
	default:
		frag, k, i := c.Value(), offset-c.Summary(), c.Index()
		ops = []plist.Op[string]{
			seq.Substitute(i, frag[k:]),
			seq.Insert(i, s),
			seq.Insert(i, frag[:k]),
		}
	}
	return Rope{frags: r.list().Applied(ops)}, nil
}

// Deleted returns a rope with n bytes removed, starting at offset. r is left
// unchanged.
func (r Rope) Deleted(offset, n int) (Rope, error) {
	if err := r.checkRange(offset, n); err != nil {
		return r, err
	}
	if n == 0 {
		return r, nil
	}
	c := r.locate(offset)
	i, k := c.Index(), offset-c.Summary()
	var ops []plist.Op[string]
	if k > 0 { // deletion starts inside a fragment
		frag := c.Value()
		end := min(len(frag), k+n)
		ops = append(ops, seq.Substitute(i, frag[:k]+frag[end:]))
		n -= end - k
		i++
		c.Forth()
	}
	for ; n > 0 && !c.Done(); c.Forth() {
		frag := c.Value()
		if n >= len(frag) {
			ops = append(ops, seq.Delete[string](i))
			n -= len(frag)
			continue
		}
		ops = append(ops, seq.Substitute(i, frag[n:]))
		n = 0
	}
	assert(n == 0, "rope deletion ran past end of text")
	return Rope{frags: r.list().Applied(ops)}, nil
}

// Report returns the n bytes starting at offset as a string.
func (r Rope) Report(offset, n int) (string, error) {
	if err := r.checkRange(offset, n); err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	var b strings.Builder
	b.Grow(n)
	c := r.locate(offset)
	k := offset - c.Summary()
	for ; n > 0 && !c.Done(); c.Forth() {
		frag := c.Value()[k:]
		if len(frag) > n {
			frag = frag[:n]
		}
		b.WriteString(frag)
		n -= len(frag)
		k = 0
	}
	return b.String(), nil
}

// ByteAt returns the byte at offset.
func (r Rope) ByteAt(offset int) (byte, error) {
	if offset < 0 || offset >= r.Len() {
		return 0, ErrIndexOutOfBounds
	}
	c := r.locate(offset)
	return c.Value()[offset-c.Summary()], nil
}

// Split returns the text before offset and the text from offset on as two
// ropes. Both share fragments with r.
func (r Rope) Split(offset int) (Rope, Rope, error) {
	if offset < 0 || offset > r.Len() {
		return r, Rope{}, ErrIndexOutOfBounds
	}
	left, err := r.Deleted(offset, r.Len()-offset)
	if err != nil {
		return r, Rope{}, err
	}
	right, err := r.Deleted(0, offset)
	return left, right, err
}

// Concat returns a rope holding the text of r followed by the text of other.
func (r Rope) Concat(other Rope) Rope {
	if other.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return other
	}
	l := r.list().Fork()
	for frag := range other.Chunks() {
		l.Insert(l.Len(), frag)
	}
	return Rope{frags: l}
}

func (r Rope) checkRange(offset, n int) error {
	if n < 0 {
		return ErrNegativeLength
	}
	if offset < 0 || offset+n > r.Len() {
		tracer().Errorf("rope range [%d, %d) out of [0, %d)", offset, offset+n, r.Len())
		return ErrIndexOutOfBounds
	}
	return nil
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
