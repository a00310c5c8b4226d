package plist

import (
	"encoding/json"
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/plist/seq"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var engines = []Config[string]{
	{Engine: AVL},
	{Engine: BTree},
	{Engine: BTree, MaxVals: 2, MinVals: 1},
}

func joined(l List[string]) string {
	return strings.Join(l.ToSlice(), "")
}

func TestEnginesBehaveAlike(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, cfg := range engines {
		t.Run(cfg.Engine.String(), func(t *testing.T) {
			l := Must(Empty(cfg))
			l.Insert(0, "c")
			l.Insert(0, "a")
			l.Insert(2, "e")
			l.Insert(1, "b")
			l.Insert(3, "d")
			if joined(l) != "abcde" {
				t.Fatalf("expected abcde, have %q", joined(l))
			}
			f := l.Fork()
			f.Delete(0)
			f.Replace(0, "B")
			if joined(l) != "abcde" || joined(f) != "Bcde" {
				t.Errorf("fork not isolated: %q / %q", joined(l), joined(f))
			}
			g := l.Applied([]Op[string]{
				seq.Delete[string](4),
				seq.Insert(0, "z"),
				seq.Substitute(2, "bb"),
			})
			if joined(g) != "zabbcd" || g.Summary() != 6 {
				t.Errorf("expected zabbcd with summary 6, have %q/%d", joined(g), g.Summary())
			}
			if v, ok := g.At(2); !ok || v != "bb" {
				t.Errorf("expected bb at 2, have %q", v)
			}
			for _, x := range []List[string]{l, f, g} {
				if err := x.Check(); err != nil {
					t.Error(err)
				}
			}
		})
	}
}

func TestForkScenarioClampsToLastValue(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, cfg := range engines {
		l := Must(Empty(cfg))
		for _, ins := range []struct {
			at int
			v  string
		}{{0, "c"}, {0, "x"}, {0, "a"}, {3, "e"}, {1, "b"}, {4, "d"}, {6, "y"}} {
			l.Insert(ins.at, ins.v)
		}
		l1 := l.Fork()
		l1.Delete(2)
		l1.Delete(6)
		l2 := l.Fork()
		l2.Replace(2, "X")
		l2.Replace(7, "Y")
		if joined(l) != "abxcdey" || joined(l1) != "abcde" || joined(l2) != "abXcdeY" {
			t.Errorf("%v: have %q / %q / %q, want abxcdey / abcde / abXcdeY",
				cfg.Engine, joined(l), joined(l1), joined(l2))
		}
		if d := l.Deleted(99); joined(d) != "abxcde" {
			t.Errorf("%v: expected Deleted(99) to drop the last value, have %q", cfg.Engine, joined(d))
		}
		e := Must(Empty(cfg))
		e.Delete(0)
		e.Replace(3, "z")
		l.Delete(-1)
		if e.Len() != 0 || joined(l) != "abxcdey" {
			t.Errorf("%v: edits on empty lists or at negative indices must be ignored", cfg.Engine)
		}
	}
}

func TestReduceAndJSON(t *testing.T) {
	for _, cfg := range engines {
		l := Must(From(cfg, []string{"ab", "c", "def"}))
		n := Reduce(l, func(acc int, s string) int { return acc + len(s) }, 0)
		if n != l.Summary() || n != 6 {
			t.Errorf("%v: expected reduced length 6, have %d", cfg.Engine, n)
		}
		data, err := json.Marshal(l)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != `["ab","c","def"]` {
			t.Errorf("%v: unexpected JSON %s", cfg.Engine, data)
		}
	}
}

func TestFromSeqAndCursors(t *testing.T) {
	for _, cfg := range []Config[int]{{Engine: AVL}, {Engine: BTree, MaxVals: 3}} {
		l := Must(FromSeq(cfg, slices.Values([]int{5, 10, 15, 20}), 4))
		c := l.AtEqual(func(v int, _ int) Ordering {
			return seq.Compare(12 - v)
		}, true)
		if c.Value() != 10 || c.Index() != 1 {
			t.Errorf("%v: expected biased search to land on 10, have %d", cfg.Engine, c.Value())
		}
		c = l.AtIndex(2)
		var tail []int
		for v := range seq.Values(c) {
			tail = append(tail, v)
		}
		if !slices.Equal(tail, []int{15, 20}) {
			t.Errorf("%v: unexpected tail %v", cfg.Engine, tail)
		}
		if c := l.AtFirst(); c.Summary() != 0 || c.Value() != 5 {
			t.Errorf("%v: unexpected first value %d", cfg.Engine, c.Value())
		}
	}
}

func TestConstructorErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if _, err := Empty(Config[int]{Engine: Engine(7)}); !errors.Is(err, ErrUnknownEngine) {
		t.Errorf("expected unknown engine error, have %v", err)
	}
	if _, err := From(Config[int]{Engine: BTree, MaxVals: 4, MinVals: 3}, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected invalid config error, have %v", err)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Must to panic")
		}
	}()
	Must(Empty(Config[int]{Engine: -1}))
}

func TestParseEngine(t *testing.T) {
	for _, e := range []Engine{AVL, BTree} {
		if p, err := ParseEngine(e.String()); err != nil || p != e {
			t.Errorf("round trip of %v failed: %v", e, err)
		}
	}
	if _, err := ParseEngine("skiplist"); !errors.Is(err, ErrUnknownEngine) {
		t.Errorf("expected unknown engine, have %v", err)
	}
}

// Both engines have to agree on every step of a random edit sequence.
func TestEnginesAgreeOnRandomEdits(t *testing.T) {
	r := rand.New(rand.NewSource(4711))
	lists := make([]List[string], len(engines))
	for i, cfg := range engines {
		lists[i] = Must(Empty(cfg))
	}
	for step := range 500 {
		n := lists[0].Len()
		var op Op[string]
		switch r.Intn(3) {
		case 0:
			op = seq.Insert(r.Intn(n+1), string(rune('a'+r.Intn(26))))
		case 1:
			op = seq.Delete[string](r.Intn(n + 1))
		default:
			op = seq.Substitute(r.Intn(n+1), strings.Repeat("x", r.Intn(3)))
		}
		for i := range lists {
			lists[i] = lists[i].Applied([]Op[string]{op})
		}
		for i := 1; i < len(lists); i++ {
			if joined(lists[i]) != joined(lists[0]) || lists[i].Summary() != lists[0].Summary() {
				t.Fatalf("step %d (%v): engines disagree: %q vs %q", step, op,
					joined(lists[0]), joined(lists[i]))
			}
		}
	}
}
