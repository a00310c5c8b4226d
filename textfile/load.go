package textfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/plist/rope"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Fragment is the progress message a Loader publishes for every fragment
// of text it has read.
type Fragment struct {
	Index  int   // position of the fragment in the sequence of fragments
	Pos    int64 // byte offset of the fragment within the file
	Length int   // number of bytes loaded
}

// Loader loads an OS file as a rope.
type Loader struct {
	path     string         // file name
	info     os.FileInfo    // result from Stat(path)
	file     *os.File       // file handle, closed after loading
	cast     *caster.Caster // broadcaster for fragment progress
	fragSize int64          // length of fragments in bytes
	frags    []string       // fragments of content, in file order
	once     sync.Once      // loading happens at most once
	text     rope.Rope      // result of loading
	err      error          // remember first I/O error
}

// Open opens a file, which must be a regular file, for loading. Clients may
// recommend a fragment length. If fragSize is 0 (or unreasonably large),
// a fragment length is derived from the size of the file.
//
// Opening the file happens synchronously, loading does not start before
// Load is called. Clients who decide not to load the file have to call Close.
func Open(name string, fragSize int64) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		tracer().Errorf("cannot load %s: not a regular file", name)
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	l := &Loader{
		path:     name,
		info:     fi,
		file:     file,
		cast:     caster.New(nil), // we will broadcast messages when fragments are loaded
		fragSize: fragmentSize(fi.Size(), fragSize),
	}
	l.frags = make([]string, l.FragmentCount())
	tracer().Debugf("opened %s (%d bytes) for loading in %d fragments of %d bytes",
		name, fi.Size(), len(l.frags), l.fragSize)
	return l, nil
}

// Load reads a file, which must be a text file, and returns its content as
// a rope. fragSize is interpreted as with Open.
func Load(name string, fragSize int64) (rope.Rope, error) {
	l, err := Open(name, fragSize)
	if err != nil {
		return rope.Rope{}, err
	}
	return l.Load()
}

// fragmentSize returns a recommended fragment length for a file of the given
// size. Reasonable requested sizes are kept.
func fragmentSize(size int64, requested int64) int64 {
	if requested > 0 && requested <= tenKb {
		return requested
	}
	switch {
	case size < 64:
		return max(size, 1)
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// Size returns the size of the file in bytes.
func (l *Loader) Size() int64 {
	return l.info.Size()
}

// FragmentSize returns the length of fragments in bytes. Only the last
// fragment may be shorter.
func (l *Loader) FragmentSize() int64 {
	return l.fragSize
}

// FragmentCount returns the number of fragments the file will be loaded in.
func (l *Loader) FragmentCount() int {
	return int((l.info.Size() + l.fragSize - 1) / l.fragSize)
}

// Subscribe returns a channel which receives a Fragment message for every
// fragment loaded. The channel is closed after the last fragment or when
// ctx is cancelled. Subscriptions after loading has started may miss
// messages. ok is false if the loader is already finished.
func (l *Loader) Subscribe(ctx context.Context) (progress <-chan Fragment, ok bool) {
	capacity := l.FragmentCount() + 1
	sub, ok := l.cast.Sub(ctx, uint(capacity))
	if !ok {
		return nil, false
	}
	ch := make(chan Fragment, capacity)
	go func() {
		defer close(ch)
		for m := range sub {
			if frag, isFrag := m.(Fragment); isFrag {
				ch <- frag
			}
		}
	}()
	return ch, true
}

// Load starts loading the file and waits until all fragments are read.
// Calling Load repeatedly returns the same rope.
func (l *Loader) Load() (rope.Rope, error) {
	l.once.Do(l.loadAll)
	return l.text, l.err
}

// Close releases the file of a loader which has not been loaded. Subscribers
// are unsubscribed and subsequent calls to Load return ErrClosed. After
// Load, the file is already released and Close does nothing.
func (l *Loader) Close() error {
	var err error
	l.once.Do(func() {
		tracer().Debugf("closing %s without loading", l.path)
		l.err = ErrClosed
		l.cast.Close()
		err = l.file.Close()
	})
	return err
}

// --- File loading goroutines -----------------------------------------------

func (l *Loader) loadAll() {
	fragChan := make(chan Fragment)
	done := make(chan struct{})
	go func(ch <-chan Fragment) {
		// broadcast the progress of loaded fragments to all subscribers
		defer close(done)
		defer l.cast.Close()
		for m := range ch {
			l.cast.Pub(m)
		}
	}(fragChan)
	go func(ch chan<- Fragment) {
		// iterate over fragments and load the text for each of them
		defer close(ch)
		size := l.info.Size()
		for i := range l.frags {
			pos := int64(i) * l.fragSize
			buf := make([]byte, min(l.fragSize, size-pos))
			cnt, err := l.file.ReadAt(buf, pos)
			if err != nil && err != io.EOF {
				l.err = fmt.Errorf("error loading text fragment: %w", err)
				return
			} else if cnt < len(buf) {
				l.err = fmt.Errorf("%w at offset %d", ErrShortRead, pos)
				return
			}
			l.frags[i] = string(buf)
			ch <- Fragment{Index: i, Pos: pos, Length: cnt}
		}
	}(fragChan)
	<-done
	if err := l.file.Close(); err != nil && l.err == nil {
		l.err = err
	}
	if l.err != nil {
		tracer().Errorf("loading %s: %v", l.path, l.err)
		return
	}
	l.text = rope.FromFragments(l.frags)
	l.frags = nil // fragments now belong to the rope
	tracer().Debugf("loaded %s as rope of %d bytes", l.path, l.text.Len())
}
