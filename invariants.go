package art

import "fmt"

// Check validates structural invariants over the tree. It is
// intentionally strict and meant for use in tests and in diagnostic
// tooling, not on the hot insertion path.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.dropped {
		return fmt.Errorf("%w: dropped tree", ErrInvariant)
	}
	if t.root == nil {
		return fmt.Errorf("%w: nil root", ErrInvariant)
	}
	if _, ok := t.root.(*node256); !ok {
		return fmt.Errorf("%w: root is %T, want *node256", ErrInvariant, t.root)
	}
	if err := t.checkNullChain(); err != nil {
		return err
	}
	terminals, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if terminals != t.uniqueKeyCount {
		return fmt.Errorf("%w: found %d terminal nodes, unique key count is %d",
			ErrInvariant, terminals, t.uniqueKeyCount)
	}
	return nil
}

func (t *Tree) checkNullChain() error {
	arenaLen := uint32(t.rowArena.Len())
	seen := make(map[uint32]bool)
	cur := t.nullHead
	for cur != LAST {
		if cur >= arenaLen {
			return fmt.Errorf("%w: null chain references row id %d >= arena length %d", ErrInvariant, cur, arenaLen)
		}
		if seen[cur] {
			return fmt.Errorf("%w: null chain cycles at row id %d", ErrInvariant, cur)
		}
		seen[cur] = true
		cur = t.rowArena.at(cur)
	}
	return nil
}

// checkNode validates n and its subtree, returning the number of terminal
// keys found so the caller can cross-check against uniqueKeyCount.
func (t *Tree) checkNode(n artNode) (terminals uint64, err error) {
	h := n.header()
	suffixLen := uint32(t.suffix.Len())
	if h.prefixPos+h.prefixLen > suffixLen {
		return 0, fmt.Errorf("%w: prefix [%d,%d) exceeds suffix arena length %d",
			ErrInvariant, h.prefixPos, h.prefixPos+h.prefixLen, suffixLen)
	}

	if h.terminal {
		if err := t.checkChain(h.headRowID); err != nil {
			return 0, err
		}
		terminals++
	} else if h.headRowID != LAST {
		return 0, fmt.Errorf("%w: non-terminal node carries a row-id chain", ErrInvariant)
	}

	var cap int
	switch n.(type) {
	case *node4:
		cap = 4
	case *node16:
		cap = 16
	case *node48:
		cap = 48
	case *node256:
		cap = 256
	default:
		return 0, fmt.Errorf("%w: %T", ErrInvalidVariant, n)
	}
	if int(h.childrenCount) > cap {
		return 0, fmt.Errorf("%w: %s reports %d children, capacity %d",
			ErrInvariant, n.kind(), h.childrenCount, cap)
	}

	var counted uint16
	var prev int = -1
	var walkErr error
	forEachChild(n, func(b byte, child artNode) {
		if walkErr != nil {
			return
		}
		if int(b) <= prev {
			walkErr = fmt.Errorf("%w: children of %s not strictly ascending at byte %d", ErrInvariant, n.kind(), b)
			return
		}
		prev = int(b)
		counted++
		sub, err := t.checkNode(child)
		if err != nil {
			walkErr = err
			return
		}
		terminals += sub
	})
	if walkErr != nil {
		return 0, walkErr
	}
	if counted != h.childrenCount {
		return 0, fmt.Errorf("%w: %s header says %d children, walk found %d",
			ErrInvariant, n.kind(), h.childrenCount, counted)
	}
	return terminals, nil
}

func (t *Tree) checkChain(head uint32) error {
	arenaLen := uint32(t.rowArena.Len())
	seen := make(map[uint32]bool)
	cur := head
	for cur != LAST {
		if cur >= arenaLen {
			return fmt.Errorf("%w: row-id chain references row id %d >= arena length %d", ErrInvariant, cur, arenaLen)
		}
		if seen[cur] {
			return fmt.Errorf("%w: row-id chain cycles at row id %d", ErrInvariant, cur)
		}
		seen[cur] = true
		cur = t.rowArena.at(cur)
	}
	return nil
}
