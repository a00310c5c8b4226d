package avl

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

// Dump writes an indented picture of the tree to w, one value per line, with
// the root at the left margin and the right subtree above it.
// Nodes owned by t's current version are printed green, nodes shared with
// other handles blue. Coloring follows color.NoColor.
func (t *Tree[V]) Dump(w io.Writer) error {
	if t.root == nil {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	var err error
	var dump func(n *node[V], depth int)
	dump = func(n *node[V], depth int) {
		if n == nil || err != nil {
			return
		}
		dump(n.right, depth+1)
		if err != nil {
			return
		}
		c := sharedColor
		if n.version == t.version {
			c = ownColor
		}
		if _, err = io.WriteString(w, strings.Repeat("    ", depth)); err != nil {
			return
		}
		if _, err = c.Fprintf(w, "%v", n.value); err != nil {
			return
		}
		if _, err = statsColor.Fprintf(w, " (#%d ∑%d r%d v%d)\n", n.count, n.summary, n.rank, n.version); err != nil {
			return
		}
		dump(n.left, depth+1)
	}
	dump(t.root, 0)
	return err
}
