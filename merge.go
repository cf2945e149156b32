package art

// movePrefix recursively rewrites every node in a donor subtree to
// reference t's suffix arena instead of donor's: each node's current
// prefix bytes are appended to t's arena and prefixPos updated. Terminal
// nodes contribute to t's unique key count. Row-id chains are not touched,
// since the row-id arena is already shared between the two trees.
func (t *Tree) movePrefix(n artNode, donor *SuffixArena) {
	h := n.header()
	if h.prefixLen > 0 {
		h.prefixPos = t.suffix.Append(donor.Slice(h.prefixPos, h.prefixLen))
	}
	if h.terminal {
		t.uniqueKeyCount++
	}
	forEachChild(n, func(_ byte, child artNode) {
		t.movePrefix(child, donor)
	})
}

// mergeChainInto prepends a donor's row-id chain, rooted at headRowID, onto
// left's chain, marking left terminal if it was not already. The walk
// caches each link's next pointer before overwriting the arena cell that
// held it, since prepend reuses the same cell the chain traversal is
// reading from.
func (t *Tree) mergeChainInto(left artNode, headRowID uint32) {
	h := left.header()
	if !h.terminal {
		h.terminal = true
		t.uniqueKeyCount++
	}
	cur := headRowID
	for cur != LAST {
		next := t.rowArena.at(cur)
		prev := h.headRowID
		t.rowArena.set(cur, prev)
		h.headRowID = cur
		cur = next
	}
}

// mergeChildNodes folds right's row-id chain (if right is terminal) and
// every one of right's children into the node living at leftSlot: children
// under a byte left already has are merged recursively, the rest are
// rebased via movePrefix and attached directly.
func (t *Tree) mergeChildNodes(leftSlot *artNode, right artNode, donor *SuffixArena) {
	if right.header().terminal {
		t.mergeChainInto(*leftSlot, right.header().headRowID)
	}
	forEachChild(right, func(b byte, rc artNode) {
		if lc := findChild(*leftSlot, b); lc != nil {
			t.merge(lc, rc, donor)
		} else {
			t.movePrefix(rc, donor)
			insertChild(leftSlot, b, rc)
		}
	})
}

// merge structurally unions the donor node right (backed by donor's suffix
// arena) into the recipient slot leftSlot. It compares
// prefixes byte-by-byte up to the shorter length and falls into one of
// three cases: equal prefixes (fold right's children into left and discard
// right), left's prefix diverging partway through (symmetrically split left
// and either attach or recurse into right), or left's prefix being a strict
// prefix of right's (descend into left's existing child under right's next
// byte, or attach right there).
func (t *Tree) merge(leftSlot *artNode, right artNode, donor *SuffixArena) {
	left := *leftSlot
	lh, rh := left.header(), right.header()

	m := uint32(0)
	for m < lh.prefixLen && m < rh.prefixLen {
		if t.suffix.At(lh.prefixPos+m) != donor.At(rh.prefixPos+m) {
			break
		}
		m++
	}

	switch {
	case m == lh.prefixLen && m == rh.prefixLen:
		t.mergeChildNodes(leftSlot, right, donor)

	case m < lh.prefixLen:
		t.splitPrefix(leftSlot, left, m)
		rh.prefixLen -= m
		rh.prefixPos += m
		if rh.prefixLen > 0 {
			edge := donor.At(rh.prefixPos)
			rh.prefixPos++
			rh.prefixLen--
			t.movePrefix(right, donor)
			insertChild(leftSlot, edge, right)
		} else {
			t.mergeChildNodes(leftSlot, right, donor)
		}

	case m == lh.prefixLen && m < rh.prefixLen:
		rh.prefixLen -= m
		rh.prefixPos += m
		edge := donor.At(rh.prefixPos)
		if lc := findChild(left, edge); lc != nil {
			rh.prefixPos++
			rh.prefixLen--
			t.merge(lc, right, donor)
		} else {
			rh.prefixPos++
			rh.prefixLen--
			t.movePrefix(right, donor)
			insertChild(leftSlot, edge, right)
		}

	default:
		fatalf(ErrMergeMismatch, "m=%d left.prefixLen=%d right.prefixLen=%d", m, lh.prefixLen, rh.prefixLen)
	}
}
