package sorted

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/plist"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var configs = []plist.Config[int]{
	{Engine: plist.AVL},
	{Engine: plist.BTree, MaxVals: 4},
}

func TestEmpty(t *testing.T) {
	var l List[int]
	if l.Len() != 0 || len(l.ToSlice()) != 0 {
		t.Errorf("zero list should be empty")
	}
	if l.Contains(3) {
		t.Errorf("empty list should not contain anything")
	}
	e, err := Empty(plist.Config[string]{Engine: plist.BTree})
	if err != nil || e.Len() != 0 {
		t.Errorf("expected empty list, have %d values (%v)", e.Len(), err)
	}
}

func TestInsertions(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, cfg := range configs {
		l1, err := Empty(cfg)
		if err != nil {
			t.Fatal(err)
		}
		l2 := l1.Inserted(5).Inserted(2).Inserted(8).Inserted(4).Inserted(7).Inserted(5)
		if l2.Len() != 6 {
			t.Errorf("%v: expected 6 values, have %d", cfg.Engine, l2.Len())
		}
		if !slices.Equal(l2.ToSlice(), []int{2, 4, 5, 5, 7, 8}) {
			t.Errorf("%v: unexpected order %v", cfg.Engine, l2.ToSlice())
		}
		if l1.Len() != 0 {
			t.Errorf("%v: original list changed", cfg.Engine)
		}
	}
}

func TestLookupAndDelete(t *testing.T) {
	for _, cfg := range configs {
		l, err := From(cfg, []int{9, 3, 7, 3, 1})
		if err != nil {
			t.Fatal(err)
		}
		if i, ok := l.IndexOf(3); !ok || i != 1 {
			t.Errorf("%v: expected first 3 at 1, have %d/%v", cfg.Engine, i, ok)
		}
		if i, ok := l.IndexOf(8); ok || i != 4 {
			t.Errorf("%v: expected 8 to be missing before index 4, have %d/%v", cfg.Engine, i, ok)
		}
		if l.Contains(10) || !l.Contains(9) {
			t.Errorf("%v: containment broken", cfg.Engine)
		}
		d := l.Deleted(3).Deleted(10).Deleted(9)
		if !slices.Equal(d.ToSlice(), []int{1, 3, 7}) {
			t.Errorf("%v: unexpected values after deletion %v", cfg.Engine, d.ToSlice())
		}
		if v, ok := d.At(1); !ok || v != 3 {
			t.Errorf("%v: expected 3 at index 1, have %d", cfg.Engine, v)
		}
		if l.Len() != 5 {
			t.Errorf("%v: original list changed", cfg.Engine)
		}
	}
}

func TestRandomInsertionsStaySorted(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for _, cfg := range configs {
		l, _ := Empty(cfg)
		var model []int
		for range 300 {
			v := r.Intn(50)
			if r.Intn(4) == 0 {
				l = l.Deleted(v)
				if i := slices.Index(model, v); i >= 0 {
					model = slices.Delete(model, i, i+1)
				}
				continue
			}
			l = l.Inserted(v)
			model = append(model, v)
			slices.Sort(model)
		}
		var have []int
		for v := range l.All() {
			have = append(have, v)
		}
		if !slices.Equal(have, model) {
			t.Errorf("%v: have %v, want %v", cfg.Engine, have, model)
		}
	}
}
