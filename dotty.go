package art

import (
	"fmt"
	"io"
)

// Dot writes the internal structure of a tree in Graphviz DOT format, for
// debugging and for the artcli dot subcommand. Each node is labeled with
// its variant, occupied-slot count, and compressed prefix (rendered as a
// quoted string); terminal nodes additionally show the length of their
// row-id chain.
func Dot(t *Tree, w io.Writer) {
	t.mustBeLive()
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	nextID := 1
	var walk func(n artNode) int
	walk = func(n artNode) int {
		id := nextID
		nextID++
		h := n.header()
		label := fmt.Sprintf("%s\\n%d/%s children", n.kind(), h.childrenCount, capacityLabel(n))
		if h.prefixLen > 0 {
			label += fmt.Sprintf("\\n\u201c%s\u201d", t.suffix.Slice(h.prefixPos, h.prefixLen))
		}
		if h.terminal {
			label += fmt.Sprintf("\\nchain@%d", chainLength(t, h.headRowID))
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyle(n.kind(), h.terminal))
		forEachChild(n, func(b byte, child artNode) {
			childID := walk(child)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=\"0x%02x\"];\n", id, childID, b)
		})
		return id
	}
	walk(t.root)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func chainLength(t *Tree, head uint32) int {
	n := 0
	it := &ChainIterator{arena: t.rowArena, cur: head}
	for !it.Done() {
		n++
		it.Next()
	}
	return n
}

func capacityLabel(n artNode) string {
	switch n.(type) {
	case *node4:
		return "4"
	case *node16:
		return "16"
	case *node48:
		return "48"
	case *node256:
		return "256"
	default:
		return "?"
	}
}

func nodeDotStyle(kind NodeKind, terminal bool) string {
	s := ",style=filled,shape=box"
	switch kind {
	case KindNode4:
		s += ",fillcolor=\"#CCDDFF\""
	case KindNode16:
		s += ",fillcolor=\"#AACCFF\""
	case KindNode48:
		s += ",fillcolor=\"#88BBFF\""
	case KindNode256:
		s += ",fillcolor=\"#66AAFF\""
	}
	if terminal {
		s += ",color=black,penwidth=2"
	}
	return s
}
