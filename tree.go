package art

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// Tree is an Adaptive Radix Tree indexing string keys to row-id chains. The
// zero value is not usable; construct one with New or NewSharing.
type Tree struct {
	root     artNode
	suffix   *SuffixArena
	rowArena *RowArena

	nullHead  uint32
	nullCount uint64

	uniqueKeyCount uint64
	maxKeyLength   uint64
	totalKeyBytes  uint64

	dropped bool
}

// New creates a tree whose row-id arena holds capacity slots.
func New(capacity int) *Tree {
	t, err := NewWithConfig(Config{InitialCapacity: capacity})
	if err != nil {
		// Config{InitialCapacity: capacity} can only fail validation for a
		// negative capacity, which is already a caller contract violation.
		fatalf(ErrInvalidConfig, "%v", err)
	}
	return t
}

// NewWithConfig creates a tree using cfg to size its row-id arena and, with
// cfg.Debug, to raise the tracing level.
func NewWithConfig(cfg Config) (*Tree, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	if cfg.Debug {
		T().SetTraceLevel(tracing.LevelDebug)
	}
	t := &Tree{
		root:     newNode256(),
		suffix:   &SuffixArena{},
		rowArena: NewRowArena(cfg.InitialCapacity),
		nullHead: LAST,
	}
	T().Debugf("art: new tree, capacity=%d", cfg.InitialCapacity)
	return t, nil
}

// NewSharing creates an empty tree sharing an existing row-id arena handle,
// for use alongside Split when building multiple trees over one arena.
func NewSharing(arena *RowArena) *Tree {
	return &Tree{
		root:     newNode256(),
		suffix:   &SuffixArena{},
		rowArena: arena,
		nullHead: LAST,
	}
}

func (t *Tree) mustBeLive() {
	if t.dropped {
		fatalf(ErrTreeDropped, "tree has already been dropped or joined away")
	}
}

// AddEntry indexes key under row-id rowID, chaining rowID onto any existing
// duplicate chain for that key. key must be non-empty; use AddNull for the
// zero-length key. rowID must be within the row-id arena's current length.
func (t *Tree) AddEntry(key []byte, rowID uint32) {
	t.mustBeLive()
	if len(key) == 0 {
		fatalf(ErrEmptyKeyViaAddEntry, "AddEntry requires a non-empty key")
	}
	if rowID >= uint32(t.rowArena.Len()) {
		fatalf(ErrRowIDRange, "row id %d >= arena length %d", rowID, t.rowArena.Len())
	}

	t.totalKeyBytes += uint64(len(key))
	if uint64(len(key)) > t.maxKeyLength {
		t.maxKeyLength = uint64(len(key))
	}

	slot := &t.root
	depth := 0
	for {
		n := *slot
		h := n.header()
		m := uint32(0)
		for depth+int(m) < len(key) && m < h.prefixLen {
			if key[depth+int(m)] != t.suffix.At(h.prefixPos+m) {
				break
			}
			m++
		}

		switch {
		case depth+int(m) == len(key) && m == h.prefixLen:
			T().Debugf("art: AddEntry terminates at depth=%d row=%d", depth, rowID)
			t.chainRowID(n, rowID)
			return

		case m < h.prefixLen:
			T().Debugf("art: AddEntry splits prefix at depth=%d match=%d", depth, m)
			parent := t.splitPrefix(slot, n, m)
			if depth+int(m) < len(key) {
				keyOffset := depth + int(m) + 1
				leaf := newNode4()
				if remaining := key[keyOffset:]; len(remaining) > 0 {
					leaf.hdr.prefixPos = t.suffix.Append(remaining)
					leaf.hdr.prefixLen = uint32(len(remaining))
				}
				insertChild(slot, key[depth+int(m)], leaf)
				t.chainRowID(leaf, rowID)
			} else {
				t.chainRowID(parent, rowID)
			}
			return

		default: // depth+m < len(key) && m == prefixLen: descend
			c := key[depth+int(m)]
			if next := findChild(n, c); next != nil {
				slot = next
				depth += int(m) + 1
				continue
			}
			keyOffset := depth + int(m) + 1
			leaf := newNode4()
			if remaining := key[keyOffset:]; len(remaining) > 0 {
				leaf.hdr.prefixPos = t.suffix.Append(remaining)
				leaf.hdr.prefixLen = uint32(len(remaining))
			}
			insertChild(slot, c, leaf)
			t.chainRowID(leaf, rowID)
			return
		}
	}
}

// chainRowID marks n terminal if it is not already, then prepends rowID
// onto n's duplicate chain: the previous head is stashed at
// rowArena[rowID] and rowID becomes the new head, so iteration yields
// row-ids in reverse insertion order.
func (t *Tree) chainRowID(n artNode, rowID uint32) {
	h := n.header()
	if !h.terminal {
		h.terminal = true
		t.uniqueKeyCount++
	}
	prev := h.headRowID
	t.rowArena.set(rowID, prev)
	h.headRowID = rowID
}

// AddNull indexes the zero-length key under row-id rowID. The null-key
// chain lives on the tree itself rather than on any node.
func (t *Tree) AddNull(rowID uint32) {
	t.mustBeLive()
	if rowID >= uint32(t.rowArena.Len()) {
		fatalf(ErrRowIDRange, "row id %d >= arena length %d", rowID, t.rowArena.Len())
	}
	prev := t.nullHead
	t.rowArena.set(rowID, prev)
	t.nullHead = rowID
	t.nullCount++
}

// Reset destroys all nodes, installs a fresh Node256 root, clears the
// suffix arena, and resets every counter including the null chain. It does
// not shrink the row-id arena.
func (t *Tree) Reset() {
	t.mustBeLive()
	T().Infof("art: reset")
	t.root = newNode256()
	t.suffix = &SuffixArena{}
	t.nullHead = LAST
	t.nullCount = 0
	t.uniqueKeyCount = 0
	t.maxKeyLength = 0
	t.totalKeyBytes = 0
}

// Split returns a fresh, empty tree sharing this tree's row-id arena.
func (t *Tree) Split() *Tree {
	t.mustBeLive()
	T().Infof("art: split")
	return NewSharing(t.rowArena)
}

// Join consumes other into t: other's null chain is drained into t's, then
// other's tree structure is recursively merged into t's, rebasing other's
// suffix arena one node at a time. other must share t's row-id arena; after
// Join, other is marked dropped, as by Drop.
func (t *Tree) Join(other *Tree) error {
	t.mustBeLive()
	other.mustBeLive()
	if other.rowArena != t.rowArena {
		return fmt.Errorf("%w", ErrIncompatibleArena)
	}
	T().Infof("art: join, donor unique=%d", other.UniqueKeyCount())

	cur := other.nullHead
	for cur != LAST {
		v := cur
		cur = t.rowArena.at(v)
		t.AddNull(v)
	}

	t.merge(&t.root, other.root, other.suffix)

	t.totalKeyBytes += other.totalKeyBytes
	if other.maxKeyLength > t.maxKeyLength {
		t.maxKeyLength = other.maxKeyLength
	}
	other.dropped = true
	return nil
}

// Swap exchanges the complete contents — root, suffix arena, row-id arena
// handle, and all counters — of t and other in O(1).
func (t *Tree) Swap(other *Tree) {
	*t, *other = *other, *t
}

// Drop releases t's root and suffix arena, leaving t unusable. On a dropped
// tree, AddEntry, AddNull, Traverse, TraverseIndexes, Stats, Reset, Split,
// Join and Dot panic and Check returns an error; the counter accessors,
// Reserve, Resize, Swap and Drop do not panic. Drop is idempotent.
func (t *Tree) Drop() {
	if t.dropped {
		return
	}
	t.root = nil
	t.suffix = nil
	t.dropped = true
}

// Reserve forwards to the row-id arena.
func (t *Tree) Reserve(n int) { t.rowArena.Reserve(n) }

// Resize forwards to the row-id arena.
func (t *Tree) Resize(n int) { t.rowArena.Resize(n) }

// NullCount returns the number of row-ids inserted via AddNull.
func (t *Tree) NullCount() uint64 { return t.nullCount }

// UniqueKeyCount returns the number of distinct keys indexed, counting the
// empty key at most once and only if at least one null was inserted.
func (t *Tree) UniqueKeyCount() uint64 {
	if t.nullHead != LAST {
		return t.uniqueKeyCount + 1
	}
	return t.uniqueKeyCount
}

// MaxKeyLength returns the length in bytes of the longest key indexed.
func (t *Tree) MaxKeyLength() uint64 { return t.maxKeyLength }

// TotalKeyBytes returns the sum of byte-lengths of all indexed keys.
func (t *Tree) TotalKeyBytes() uint64 { return t.totalKeyBytes }

// ArenaLength returns the current length of the shared row-id arena.
func (t *Tree) ArenaLength() int { return t.rowArena.Len() }
