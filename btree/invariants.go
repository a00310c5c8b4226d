package btree

import "fmt"

// Check validates structural tree invariants: occupancy bounds, fan-out,
// uniform leaf depth, version stamps, count and summary of every node.
//
// Check is meant for tests and diagnostics.
func (t *Tree[V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		return nil
	}
	_, err := t.checkNode(t.root, true)
	return err
}

func (t *Tree[V]) checkNode(n *node[V], isRoot bool) (height int, err error) {
	cfg := t.config()
	if n.version > t.version {
		return 0, fmt.Errorf("%w: node version %d is ahead of tree version %d",
			ErrInvalidConfig, n.version, t.version)
	}
	if len(n.values) > cfg.MaxVals {
		return 0, fmt.Errorf("%w: node holds %d values, max is %d",
			ErrInvalidConfig, len(n.values), cfg.MaxVals)
	}
	if isRoot && len(n.values) == 0 {
		return 0, fmt.Errorf("%w: root holds no values", ErrInvalidConfig)
	}
	if !isRoot && len(n.values) < cfg.MinVals {
		return 0, fmt.Errorf("%w: node holds %d values, min is %d",
			ErrInvalidConfig, len(n.values), cfg.MinVals)
	}
	count, summary := len(n.values), 0
	for _, v := range n.values {
		summary += cfg.Weight(v)
	}
	if !n.isLeaf() {
		if len(n.children) != len(n.values)+1 {
			return 0, fmt.Errorf("%w: inner node with %d values has %d children",
				ErrInvalidConfig, len(n.values), len(n.children))
		}
		for i, child := range n.children {
			if child == nil {
				return 0, fmt.Errorf("%w: nil child at index %d", ErrInvalidConfig, i)
			}
			h, err := t.checkNode(child, false)
			if err != nil {
				return 0, err
			}
			if i == 0 {
				height = h
			} else if h != height {
				return 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvalidConfig)
			}
			count += child.count
			summary += child.summary
		}
	}
	if n.count != count {
		return 0, fmt.Errorf("%w: count %d, expected %d", ErrInvalidConfig, n.count, count)
	}
	if n.summary != summary {
		return 0, fmt.Errorf("%w: summary %d, expected %d", ErrInvalidConfig, n.summary, summary)
	}
	return height + 1, nil
}
