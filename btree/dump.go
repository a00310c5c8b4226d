package btree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	ownColor    = color.New(color.FgGreen)
	sharedColor = color.New(color.FgBlue)
	statsColor  = color.New(color.Faint)
)

// Dump writes an indented picture of the tree to w, one node per line,
// children indented below their parent.
// Nodes owned by t's current version are printed green, nodes shared with
// other handles blue. Coloring follows color.NoColor.
func (t *Tree[V]) Dump(w io.Writer) error {
	if t.root == nil {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	return t.dumpNode(w, t.root, 0)
}

func (t *Tree[V]) dumpNode(w io.Writer, n *node[V], depth int) error {
	c := sharedColor
	if n.version == t.version {
		c = ownColor
	}
	if _, err := io.WriteString(w, strings.Repeat("    ", depth)); err != nil {
		return err
	}
	if _, err := c.Fprintf(w, "%v", n.values); err != nil {
		return err
	}
	if _, err := statsColor.Fprintf(w, " (#%d ∑%d v%d)\n", n.count, n.summary, n.version); err != nil {
		return err
	}
	for _, child := range n.children {
		if err := t.dumpNode(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
