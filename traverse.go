package art

// NodeVisitor is called once per node visited by Traverse, in pre-order.
// prefix holds the accumulated key bytes from the root down to and
// including this node's own prefix; it is only valid for the duration of
// the call, since Traverse mutates the backing array in place as it
// descends and backtracks.
type NodeVisitor func(kind NodeKind, prefix []byte, depth int)

// TupleVisitor is called once per terminal node encountered by Traverse,
// with the complete key and an iterator over its row-id chain. Like
// prefix in NodeVisitor, key is only valid for the duration of the call.
type TupleVisitor func(key []byte, chain *ChainIterator)

// IndexVisitor is called once per terminal node encountered by
// TraverseIndexes, with an iterator over its row-id chain. Unlike
// TupleVisitor it is not handed the reconstructed key, which lets
// TraverseIndexes skip rebuilding key bytes entirely.
type IndexVisitor func(chain *ChainIterator)

// Traverse walks the tree in pre-order, key byte ascending at each node,
// invoking onNode for every node and onTuple for every terminal node.
// Either callback may be nil.
func (t *Tree) Traverse(onNode NodeVisitor, onTuple TupleVisitor) {
	t.mustBeLive()
	var key []byte
	t.traverseNode(t.root, &key, 0, onNode, onTuple)
}

func (t *Tree) traverseNode(n artNode, key *[]byte, depth int, onNode NodeVisitor, onTuple TupleVisitor) {
	h := n.header()
	base := len(*key)
	if h.prefixLen > 0 {
		*key = append(*key, t.suffix.Slice(h.prefixPos, h.prefixLen)...)
	}
	if onNode != nil {
		onNode(n.kind(), *key, depth)
	}
	if h.terminal && onTuple != nil {
		onTuple(*key, &ChainIterator{arena: t.rowArena, cur: h.headRowID})
	}
	forEachChild(n, func(b byte, child artNode) {
		*key = append(*key, b)
		t.traverseNode(child, key, depth+1, onNode, onTuple)
		*key = (*key)[:len(*key)-1]
	})
	*key = (*key)[:base]
}

// TraverseIndexes walks every terminal node's row-id chain without
// reconstructing keys, for callers that only need the index contents (for
// example, counting total row-ids or validating arena reachability).
func (t *Tree) TraverseIndexes(onTuple IndexVisitor) {
	t.mustBeLive()
	if onTuple == nil {
		return
	}
	t.traverseIndexNode(t.root, onTuple)
}

func (t *Tree) traverseIndexNode(n artNode, onTuple IndexVisitor) {
	h := n.header()
	if h.terminal {
		onTuple(&ChainIterator{arena: t.rowArena, cur: h.headRowID})
	}
	forEachChild(n, func(_ byte, child artNode) {
		t.traverseIndexNode(child, onTuple)
	})
}
