package avl

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[V any] struct {
	idTable map[*node[V]]int
	max     int
}

func newtable[V any]() *nodeids[V] {
	return &nodeids[V]{
		idTable: make(map[*node[V]]int),
		max:     1,
	}
}

func (ids *nodeids[V]) alloc(n *node[V]) int {
	if id, ok := ids.idTable[n]; ok {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Trees may be passed together with some of their forks; nodes shared between
// them are drawn once. Nodes are shaded by age: nodes owned by the version of
// the first tree are drawn in the darkest shade.
func ToDot[V any](w io.Writer, trees ...*Tree[V]) error {
	if len(trees) == 0 {
		return nil
	}
	ids := newtable[V]()
	var nodelist, edgelist strings.Builder
	nilid := 10000
	var walk func(n *node[V], newest uint64) int
	walk = func(n *node[V], newest uint64) int {
		if id, ok := ids.idTable[n]; ok {
			return id
		}
		ID := ids.alloc(n)
		label := fmt.Sprintf("%v\\n#%d ∑%d v%d", n.value, n.count, n.summary, n.version)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n, newest))
		for _, child := range []*node[V]{n.left, n.right} {
			if child == nil {
				nilid++
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, walk(child, newest))
		}
		return ID
	}
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	for i, t := range trees {
		if t == nil || t.root == nil {
			continue
		}
		handle := fmt.Sprintf("\"tree%d\"", i)
		fmt.Fprintf(&nodelist, "%s [label=\"tree %d @v%d\",shape=plaintext];\n", handle, i, t.version)
		fmt.Fprintf(&edgelist, "%s -> \"%d\";\n", handle, walk(t.root, uint64(trees[0].version)))
	}
	if _, err := io.WriteString(w, nodelist.String()); err != nil {
		tracer().Errorf("avl DOT: %s", err.Error())
		return err
	}
	if _, err := io.WriteString(w, edgelist.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[V any](n *node[V], newest uint64) string {
	s := ",style=filled,shape=box"
	age := int(newest - min(uint64(n.version), newest))
	shade := len(hexcolors) - 1 - min(age, len(hexcolors)-1)
	return s + fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[shade])
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
