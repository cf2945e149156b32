package art

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func collectKeys(t *testing.T, tr *Tree) map[string][]uint32 {
	t.Helper()
	got := map[string][]uint32{}
	tr.Traverse(nil, func(key []byte, chain *ChainIterator) {
		cp := append([]byte(nil), key...)
		var ids []uint32
		for !chain.Done() {
			ids = append(ids, chain.Value())
			chain.Next()
		}
		got[string(cp)] = ids
	})
	return got
}

func TestEmptyTreeHasNoUniqueKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "art")
	defer teardown()

	tr := New(4)
	if tr.UniqueKeyCount() != 0 {
		t.Fatalf("expected 0 unique keys, got %d", tr.UniqueKeyCount())
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("empty tree should be valid: %v", err)
	}
}

func TestAddEntrySingleKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "art")
	defer teardown()

	tr := New(4)
	tr.AddEntry([]byte("hello"), 0)

	if tr.UniqueKeyCount() != 1 {
		t.Fatalf("expected 1 unique key, got %d", tr.UniqueKeyCount())
	}
	got := collectKeys(t, tr)
	if ids, ok := got["hello"]; !ok || len(ids) != 1 || ids[0] != 0 {
		t.Fatalf("unexpected index for %q: %v", "hello", got)
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func TestAddEntryDuplicateKeyChains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "art")
	defer teardown()

	tr := New(8)
	tr.AddEntry([]byte("dup"), 0)
	tr.AddEntry([]byte("dup"), 1)
	tr.AddEntry([]byte("dup"), 2)

	if tr.UniqueKeyCount() != 1 {
		t.Fatalf("expected 1 unique key for repeated insert, got %d", tr.UniqueKeyCount())
	}
	got := collectKeys(t, tr)
	ids := got["dup"]
	// chainRowID prepends, so iteration order is reverse of insertion.
	want := []uint32{2, 1, 0}
	if len(ids) != len(want) {
		t.Fatalf("chain length mismatch: got=%v want=%v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("chain order mismatch at %d: got=%v want=%v", i, ids, want)
		}
	}
}

func TestAddEntrySharesAndSplitsPrefixes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "art")
	defer teardown()

	tr := New(8)
	tr.AddEntry([]byte("test"), 0)
	tr.AddEntry([]byte("team"), 1)
	tr.AddEntry([]byte("toast"), 2)

	if tr.UniqueKeyCount() != 3 {
		t.Fatalf("expected 3 unique keys, got %d", tr.UniqueKeyCount())
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("invariants violated after prefix split: %v", err)
	}
	got := collectKeys(t, tr)
	for _, k := range []string{"test", "team", "toast"} {
		if _, ok := got[k]; !ok {
			t.Fatalf("missing key %q after insert, got keys=%v", k, got)
		}
	}
}

func TestAddEntryKeyIsPrefixOfAnother(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "art")
	defer teardown()

	tr := New(4)
	tr.AddEntry([]byte("tea"), 0)
	tr.AddEntry([]byte("teapot"), 1)

	got := collectKeys(t, tr)
	if _, ok := got["tea"]; !ok {
		t.Fatalf("expected 'tea' to remain terminal, got %v", got)
	}
	if _, ok := got["teapot"]; !ok {
		t.Fatalf("expected 'teapot' present, got %v", got)
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func TestNodeGrowsThroughAllFourVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "art")
	defer teardown()

	// The root is a Node256 from construction, so the keys share the leading
	// byte 'x' and fan out one level below it: that inner node starts as a
	// Node4 and has to grow through Node16 and Node48 into a Node256.
	tr := New(260)
	for i := 0; i < 256; i++ {
		tr.AddEntry([]byte{'x', byte(i)}, uint32(i))
	}
	if tr.UniqueKeyCount() != 256 {
		t.Fatalf("expected 256 unique two-byte keys, got %d", tr.UniqueKeyCount())
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("invariants violated at full fanout: %v", err)
	}
	stats := tr.Stats()
	if stats.Node256Count != 2 {
		t.Fatalf("expected the root plus the node under 'x' grown into a Node256, stats=%+v", stats)
	}
}

func TestAddNullAndUniqueKeyCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "art")
	defer teardown()

	tr := New(4)
	tr.AddNull(0)
	tr.AddNull(1)
	if tr.NullCount() != 2 {
		t.Fatalf("expected null count 2, got %d", tr.NullCount())
	}
	if tr.UniqueKeyCount() != 1 {
		t.Fatalf("expected empty key counted once, got %d", tr.UniqueKeyCount())
	}

	tr.AddEntry([]byte("x"), 2)
	if tr.UniqueKeyCount() != 2 {
		t.Fatalf("expected 2 unique keys once a real key is added, got %d", tr.UniqueKeyCount())
	}
}

func TestResetClearsTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "art")
	defer teardown()

	tr := New(4)
	tr.AddEntry([]byte("x"), 0)
	tr.AddNull(1)
	tr.Reset()

	if tr.UniqueKeyCount() != 0 || tr.NullCount() != 0 {
		t.Fatalf("expected tree cleared after Reset, unique=%d null=%d", tr.UniqueKeyCount(), tr.NullCount())
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("invariants violated after reset: %v", err)
	}
}

func TestSplitAndJoinRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "art")
	defer teardown()

	left := New(6)
	left.AddEntry([]byte("alpha"), 0)
	left.AddEntry([]byte("alloy"), 1)

	right := left.Split()
	right.AddEntry([]byte("alpine"), 2)
	right.AddEntry([]byte("beta"), 3)
	right.AddNull(4)

	if err := left.Join(right); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if err := left.Check(); err != nil {
		t.Fatalf("invariants violated after join: %v", err)
	}
	if left.UniqueKeyCount() != 5 {
		t.Fatalf("expected 5 unique keys after join, got %d", left.UniqueKeyCount())
	}
	if left.NullCount() != 1 {
		t.Fatalf("expected null chain to carry over, got %d", left.NullCount())
	}
	got := collectKeys(t, left)
	for _, k := range []string{"alpha", "alloy", "alpine", "beta"} {
		if _, ok := got[k]; !ok {
			t.Fatalf("missing key %q after join, got=%v", k, got)
		}
	}
}

func TestJoinRejectsIncompatibleArena(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "art")
	defer teardown()

	a := New(4)
	b := New(4)
	a.AddEntry([]byte("x"), 0)
	b.AddEntry([]byte("y"), 0)

	if err := a.Join(b); err == nil {
		t.Fatalf("expected error joining trees with independent arenas")
	}
}

func TestDropMakesTreeUnusable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "art")
	defer teardown()

	tr := New(4)
	tr.Drop()

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on use of dropped tree")
		}
	}()
	tr.AddEntry([]byte("x"), 0)
}

func TestAddEntryRejectsEmptyKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "art")
	defer teardown()

	tr := New(4)
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on empty key via AddEntry")
		}
	}()
	tr.AddEntry(nil, 0)
}
