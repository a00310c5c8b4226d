package btree

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/plist/seq"
)

// The node tests use tiny nodes: at most 2 and at least 1 value per node.

func smallMutation(version seq.Version) *mutation[string] {
	return &mutation[string]{
		version: version,
		weight:  seq.WeigherFor[string](),
		maxVals: 2,
		minVals: 1,
	}
}

func smallTree(root *node[string], version seq.Version) *Tree[string] {
	cfg := Config[string]{MaxVals: 2, MinVals: 1}.normalized()
	return &Tree[string]{cfg: cfg, root: root, version: version}
}

// lf builds a leaf.
func lf(mc *mutation[string], vs ...string) *node[string] {
	return mc.leaf(slices.Clone(vs)...)
}

// in builds an inner node from alternating children and separators.
func in(mc *mutation[string], xs ...any) *node[string] {
	n := &node[string]{version: mc.version, children: []*node[string]{}}
	for _, x := range xs {
		switch x := x.(type) {
		case *node[string]:
			n.children = append(n.children, x)
		case string:
			n.values = append(n.values, x)
		default:
			panic(fmt.Sprintf("unexpected node literal %v", x))
		}
	}
	n.refresh(mc)
	return n
}

// render prints leaves as [a b] and inner nodes as ([a] b [c]).
func render(n *node[string]) string {
	if n == nil {
		return "nil"
	}
	if n.isLeaf() {
		return "[" + strings.Join(n.values, " ") + "]"
	}
	var b strings.Builder
	b.WriteString("(")
	for i, c := range n.children {
		if i > 0 {
			b.WriteString(" " + n.values[i-1] + " ")
		}
		b.WriteString(render(c))
	}
	b.WriteString(")")
	return b.String()
}

// versions prints the version stamps of a subtree in pre-order.
func versions(n *node[string]) string {
	if n.isLeaf() {
		return fmt.Sprint(n.version)
	}
	parts := make([]string, len(n.children))
	for i, c := range n.children {
		parts[i] = versions(c)
	}
	return fmt.Sprintf("%d(%s)", n.version, strings.Join(parts, " "))
}

func expectShape(t *testing.T, n *node[string], want string) {
	t.Helper()
	if got := render(n); got != want {
		t.Errorf("expected %s, have %s", want, got)
	}
}

func TestInsertInEmptyLeaf(t *testing.T) {
	mc0 := smallMutation(0)
	root := lf(mc0)
	if r := root.insert(mc0, 0, "a"); r != root {
		t.Errorf("in-place insert should not clone the root")
	}
	expectShape(t, root, "[a]")
	//
	root = lf(mc0)
	r := root.insert(smallMutation(1), 0, "a")
	expectShape(t, root, "[]")
	expectShape(t, r, "[a]")
	if r.version != 1 {
		t.Errorf("expected clone with version 1, have %d", r.version)
	}
}

func TestInsertInLeafKeepsOrder(t *testing.T) {
	mc0 := smallMutation(0)
	root := lf(mc0)
	root = root.insert(mc0, 0, "b")
	root = root.insert(mc0, 0, "a")
	expectShape(t, root, "[a b]")
	if root.count != 2 || root.summary != 2 {
		t.Errorf("expected count/summary 2/2, have %d/%d", root.count, root.summary)
	}
}

func TestInsertMidInTree(t *testing.T) {
	mc0 := smallMutation(0)
	root := in(mc0, lf(mc0, "a"), "c", lf(mc0, "e"))
	r := root.insert(mc0, 2, "d")
	r = r.insert(mc0, 1, "b")
	if r != root {
		t.Errorf("in-place insert should not clone the root")
	}
	expectShape(t, r, "([a b] c [d e])")
	//
	root = in(mc0, lf(mc0, "a"), "c", lf(mc0, "e"))
	mc1 := smallMutation(1)
	r = root.insert(mc1, 2, "d")
	r = r.insert(mc1, 1, "b")
	expectShape(t, root, "([a] c [e])")
	expectShape(t, r, "([a b] c [d e])")
	if v := versions(r); v != "1(1 1)" {
		t.Errorf("expected versions 1(1 1), have %s", v)
	}
}

func TestInsertSplitsRoot(t *testing.T) {
	tree := smallTree(lf(smallMutation(0), "a", "c"), 0)
	tree.Insert(1, "b")
	expectShape(t, tree.root, "([a] b [c])")
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	//
	orig := smallTree(lf(smallMutation(0), "a", "c"), 0)
	fork := orig.Inserted(1, "b")
	expectShape(t, orig.root, "[a c]")
	expectShape(t, fork.root, "([a] b [c])")
}

func TestInsertMigratesLeft(t *testing.T) {
	mc0 := smallMutation(0)
	root := in(mc0, lf(mc0, "a", "c"), "e", lf(mc0, "g", "i"))
	r := root.insert(mc0, 1, "b")
	if r != root {
		t.Errorf("in-place insert should not clone the root")
	}
	expectShape(t, r, "([a] b [c] e [g i])")
}

func TestInsertMigratesRight(t *testing.T) {
	mc0 := smallMutation(0)
	root := in(mc0, lf(mc0, "a", "c"), "e", lf(mc0, "g", "i"))
	r := root.insert(mc0, 4, "h")
	expectShape(t, r, "([a c] e [g] h [i])")
}

func TestInsertSplitPropagatesToRoot(t *testing.T) {
	mc0 := smallMutation(0)
	literal := func() *node[string] {
		return in(mc0, lf(mc0, "a", "c"), "e", lf(mc0, "g", "i"), "k", lf(mc0, "m", "o"))
	}
	want := "(([a] b [c]) e ([g i] k [m o]))"
	tree := smallTree(literal(), 0)
	tree.Insert(1, "b")
	expectShape(t, tree.root, want)
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	//
	tree = smallTree(literal(), 0)
	fork := tree.Inserted(1, "b")
	expectShape(t, tree.root, "([a c] e [g i] k [m o])")
	expectShape(t, fork.root, want)
	if v := versions(fork.root); v != "1(1(1 1) 1(0 0))" {
		t.Errorf("expected untouched leaves to be shared, versions are %s", v)
	}
}

func TestReplaceInTree(t *testing.T) {
	mc0 := smallMutation(0)
	root := lf(mc0, "a", "c")
	if r := root.replace(mc0, 1, "bb"); r != root {
		t.Errorf("in-place replace should not clone")
	}
	expectShape(t, root, "[a bb]")
	if root.summary != 3 {
		t.Errorf("expected summary 3, have %d", root.summary)
	}
	//
	root = in(mc0, lf(mc0, "a", "c"), "e", lf(mc0, "g", "i"))
	r := root.replace(smallMutation(1), 3, "h")
	expectShape(t, root, "([a c] e [g i])")
	expectShape(t, r, "([a c] e [h i])")
	if v := versions(r); v != "1(0 1)" {
		t.Errorf("expected versions 1(0 1), have %s", v)
	}
	r = r.replace(smallMutation(1), 2, "E")
	expectShape(t, r, "([a c] E [h i])")
}

func TestDeleteInLeaf(t *testing.T) {
	mc0 := smallMutation(0)
	root := lf(mc0, "a", "c")
	if r := root.delete(mc0, 0); r != root {
		t.Errorf("in-place delete should not clone")
	}
	expectShape(t, root, "[c]")
	//
	root = lf(mc0, "a", "c")
	r := root.delete(smallMutation(1), 0)
	expectShape(t, root, "[a c]")
	expectShape(t, r, "[c]")
	r = r.delete(smallMutation(1), 0)
	expectShape(t, r, "[]")
	if r.count != 0 || r.summary != 0 {
		t.Errorf("expected empty leaf, have count/summary %d/%d", r.count, r.summary)
	}
}

func TestDeleteRebalancing(t *testing.T) {
	mc0 := smallMutation(0)
	cases := []struct {
		name  string
		root  func() *node[string]
		index int
		want  string
	}{
		{"merge", func() *node[string] {
			return in(mc0, lf(mc0, "a"), "b", lf(mc0, "c"))
		}, 1, "([a c])"},
		{"separator, borrow from right", func() *node[string] {
			return in(mc0, lf(mc0, "a"), "c", lf(mc0, "d", "e"))
		}, 1, "([a] d [e])"},
		{"separator, predecessor", func() *node[string] {
			return in(mc0, lf(mc0, "a", "b"), "c", lf(mc0, "d"))
		}, 2, "([a] b [d])"},
		{"rotate left", func() *node[string] {
			return in(mc0, lf(mc0, "a"), "c", lf(mc0, "d", "e"))
		}, 0, "([c] d [e])"},
		{"rotate right", func() *node[string] {
			return in(mc0, lf(mc0, "a", "b"), "c", lf(mc0, "d"))
		}, 3, "([a] b [c])"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			root := c.root()
			if r := root.delete(mc0, c.index); r != root {
				t.Errorf("in-place delete should not clone the root")
			}
			expectShape(t, root, c.want)
			//
			root = c.root()
			before := render(root)
			r := root.delete(smallMutation(1), c.index)
			expectShape(t, root, before)
			expectShape(t, r, c.want)
		})
	}
}

func TestDeleteShrinksRoot(t *testing.T) {
	mc0 := smallMutation(0)
	tree := smallTree(in(mc0, lf(mc0, "a"), "b", lf(mc0, "c")), 0)
	tree.Delete(1)
	expectShape(t, tree.root, "[a c]")
	tree.Delete(0)
	tree.Delete(0)
	if tree.root != nil || tree.Len() != 0 || tree.Height() != 0 {
		t.Errorf("expected empty tree, have %s", render(tree.root))
	}
}

func TestDeleteInnerRotation(t *testing.T) {
	// rotations between inner nodes move a subtree along with the value
	mc0 := smallMutation(0)
	left := in(mc0, lf(mc0, "a"), "b", lf(mc0, "c"), "d", lf(mc0, "e"))
	right := in(mc0, lf(mc0, "g"), "h", lf(mc0, "i"))
	tree := smallTree(in(mc0, left, "f", right), 0)
	tree.Delete(6) // g
	expectShape(t, tree.root, "(([a] b [c]) d ([e] f [h i]))")
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	if s := strings.Join(tree.ToSlice(), ""); s != "abcdefhi" {
		t.Errorf("expected abcdefhi, have %s", s)
	}
}
