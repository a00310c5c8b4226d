package rope

import "io"

// Reader returns a reader for the bytes of r.
func (r Rope) Reader() io.Reader {
	return &ropeReader{rope: r}
}

type ropeReader struct {
	rope   Rope
	cursor int
}

func (rr *ropeReader) Read(p []byte) (n int, err error) {
	l := min(len(p), rr.rope.Len()-rr.cursor)
	if l == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	s, err := rr.rope.Report(rr.cursor, l)
	if err != nil {
		return 0, err
	}
	n = copy(p, s)
	rr.cursor += n
	return n, nil
}
