package avl

import (
	"fmt"

	"github.com/npillmayer/plist/seq"
)

// IsBalanced reports whether every node of t satisfies the AVL condition.
func (t *Tree[V]) IsBalanced() bool {
	return t.root.isBalanced()
}

// Check validates the structural invariants of t: balance, rank, count and
// summary of every node.
//
// Check is meant for tests and diagnostics.
func (t *Tree[V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", seq.ErrInvalidConfig)
	}
	if t.root != nil && t.root.version > t.version {
		return fmt.Errorf("%w: root version %d is ahead of tree version %d",
			seq.ErrInvalidConfig, t.root.version, t.version)
	}
	_, err := t.checkNode(t.root, 0)
	return err
}

func (t *Tree[V]) checkNode(n *node[V], depth int) (rank int, err error) {
	if n == nil {
		return 0, nil
	}
	lrank, err := t.checkNode(n.left, depth+1)
	if err != nil {
		return 0, err
	}
	rrank, err := t.checkNode(n.right, depth+1)
	if err != nil {
		return 0, err
	}
	if n.rank != 1+max(lrank, rrank) {
		return 0, fmt.Errorf("%w: rank %d at depth %d, expected %d",
			seq.ErrInvalidConfig, n.rank, depth, 1+max(lrank, rrank))
	}
	if lrank-rrank > 1 || rrank-lrank > 1 {
		return 0, fmt.Errorf("%w: unbalanced node at depth %d (ranks %d/%d)",
			seq.ErrInvalidConfig, depth, lrank, rrank)
	}
	if n.count != countOf(n.left)+1+countOf(n.right) {
		return 0, fmt.Errorf("%w: count %d at depth %d is inconsistent",
			seq.ErrInvalidConfig, n.count, depth)
	}
	w := t.weigher()
	if n.summary != summaryOf(n.left)+w(n.value)+summaryOf(n.right) {
		return 0, fmt.Errorf("%w: summary %d at depth %d is inconsistent",
			seq.ErrInvalidConfig, n.summary, depth)
	}
	return n.rank, nil
}
