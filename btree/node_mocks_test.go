package btree

import (
	"context"
	"testing"

	"github.com/sharedcode/btreemap"
)

// fakeNR is an in-package, map backed NodeRepository for tests.
type fakeNR[TK Ordered, TV any] struct {
	n map[btreemap.UUID]*Node[TK, TV]
}

func (f *fakeNR[TK, TV]) Add(node *Node[TK, TV]) {
	f.n[node.ID] = node
}

func (f *fakeNR[TK, TV]) Update(node *Node[TK, TV]) {
	f.n[node.ID] = node
}

func (f *fakeNR[TK, TV]) Get(ctx context.Context, nodeID btreemap.UUID) (*Node[TK, TV], error) {
	return f.n[nodeID], nil
}

// helper to construct a test btree with a fake repo.
func newTestBtree[T any](minDegree int, isUnique bool) (*Btree[int, T], *fakeNR[int, T]) {
	fnr := &fakeNR[int, T]{n: map[btreemap.UUID]*Node[int, T]{}}
	b, err := New[int, T](btreemap.TreeOptions{MinDegree: minDegree, IsUnique: isUnique}, fnr, nil)
	if err != nil {
		panic(err)
	}
	return b, fnr
}

// inorderKeys collects the subtree's keys in comparator order.
func inorderKeys[TV any](t *testing.T, b *Btree[int, TV], fnr *fakeNR[int, TV], nodeID btreemap.UUID, keys *[]int) {
	t.Helper()
	n := fnr.n[nodeID]
	if n == nil {
		t.Fatalf("node %v missing from repository", nodeID)
	}
	for i := 0; i < n.Count; i++ {
		if n.hasChildren() {
			inorderKeys(t, b, fnr, n.ChildrenIDs[i], keys)
		}
		*keys = append(*keys, n.Slots[i].Key)
	}
	if n.hasChildren() {
		inorderKeys(t, b, fnr, n.ChildrenIDs[n.Count], keys)
	}
}

// checkNode verifies the degree, fan-out and per-node ordering invariants of
// the subtree and returns its height (leaf = 1) so callers can assert that
// every branch has uniform depth.
func checkNode[TV any](t *testing.T, b *Btree[int, TV], fnr *fakeNR[int, TV], nodeID btreemap.UUID, isRoot bool) int {
	t.Helper()
	n := fnr.n[nodeID]
	if n == nil {
		t.Fatalf("node %v missing from repository", nodeID)
	}
	minKeys := b.MinDegree() - 1
	maxKeys := 2*b.MinDegree() - 1
	if isRoot {
		minKeys = 1
	}
	if n.Count < minKeys || n.Count > maxKeys {
		t.Errorf("node %v has %d keys, want between %d and %d", n.ID, n.Count, minKeys, maxKeys)
	}
	for i := 1; i < n.Count; i++ {
		c := b.compare(n.Slots[i-1].Key, n.Slots[i].Key)
		if c > 0 || (c == 0 && b.IsUnique()) {
			t.Errorf("node %v keys out of order at slot %d", n.ID, i)
		}
	}
	for i := n.Count; i < len(n.Slots); i++ {
		if n.Slots[i] != nil {
			t.Errorf("node %v has an occupied slot %d beyond Count %d", n.ID, i, n.Count)
		}
	}
	if !n.hasChildren() {
		return 1
	}
	// Inner node: exactly Count+1 children, occupying the ChildrenIDs prefix.
	for i := 0; i <= n.Count; i++ {
		if n.ChildrenIDs[i].IsNil() {
			t.Fatalf("node %v missing child %d", n.ID, i)
		}
	}
	for i := n.Count + 1; i < len(n.ChildrenIDs); i++ {
		if !n.ChildrenIDs[i].IsNil() {
			t.Errorf("node %v has a child %d beyond Count+1", n.ID, i)
		}
	}
	height := 0
	for i := 0; i <= n.Count; i++ {
		h := checkNode(t, b, fnr, n.ChildrenIDs[i], false)
		if height == 0 {
			height = h
		} else if h != height {
			t.Errorf("node %v child %d has height %d, sibling height %d", n.ID, i, h, height)
		}
	}
	return height + 1
}

// checkTree runs the full invariant suite over the tree and returns its height.
func checkTree[TV any](t *testing.T, b *Btree[int, TV], fnr *fakeNR[int, TV]) int {
	t.Helper()
	if b.IsEmpty() {
		return 0
	}
	info := b.GetTreeInfo()
	height := checkNode(t, b, fnr, info.RootNodeID, true)
	var keys []int
	inorderKeys(t, b, fnr, info.RootNodeID, &keys)
	if int64(len(keys)) != b.Count() {
		t.Errorf("traversal visited %d keys, Count() says %d", len(keys), b.Count())
	}
	for i := 1; i < len(keys); i++ {
		if !b.IsUnique() && keys[i-1] == keys[i] {
			continue
		}
		if keys[i-1] >= keys[i] {
			t.Errorf("in-order traversal not ascending at %d: %d then %d", i, keys[i-1], keys[i])
		}
	}
	return height
}
