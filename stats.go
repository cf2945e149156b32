package art

// Stats is a point-in-time snapshot of a tree's shape, supplementing the
// running counters already exposed on Tree with a full-walk census of node
// variant populations. It is not maintained incrementally; computing it
// costs a full traversal.
type Stats struct {
	NullCount      uint64
	UniqueKeyCount uint64
	MaxKeyLength   uint64
	TotalKeyBytes  uint64
	ArenaLength    int

	Node4Count   uint64
	Node16Count  uint64
	Node48Count  uint64
	Node256Count uint64
}

// TotalNodeCount returns the sum of all per-variant node counts.
func (s Stats) TotalNodeCount() uint64 {
	return s.Node4Count + s.Node16Count + s.Node48Count + s.Node256Count
}

// Stats walks the tree and returns a snapshot of its current shape.
func (t *Tree) Stats() Stats {
	t.mustBeLive()
	s := Stats{
		NullCount:      t.nullCount,
		UniqueKeyCount: t.UniqueKeyCount(),
		MaxKeyLength:   t.maxKeyLength,
		TotalKeyBytes:  t.totalKeyBytes,
		ArenaLength:    t.rowArena.Len(),
	}
	t.Traverse(func(kind NodeKind, _ []byte, _ int) {
		switch kind {
		case KindNode4:
			s.Node4Count++
		case KindNode16:
			s.Node16Count++
		case KindNode48:
			s.Node48Count++
		case KindNode256:
			s.Node256Count++
		}
	}, nil)
	return s
}
