package btree

import (
	"context"
	"testing"
)

// On a unique tree, Add of an existing key is a no-op returning false.
func TestAddDuplicate_UniqueTree(t *testing.T) {
	ctx := context.Background()
	b, _ := newTestBtree[string](2, true)

	if ok, _ := b.Add(ctx, 1, "first"); !ok {
		t.Fatal("first Add failed")
	}
	ok, err := b.Add(ctx, 1, "second")
	if ok || err != nil {
		t.Fatalf("duplicate Add = (%v, %v), want (false, nil)", ok, err)
	}
	if b.Count() != 1 {
		t.Errorf("Count() = %d, want 1", b.Count())
	}
	// The stored value is untouched; updating takes Update/Upsert.
	if v, _ := b.Find(ctx, 1); v == nil || *v != "first" {
		t.Errorf("Find(1) = %v, want first", v)
	}
}

// With IsUnique off, duplicated keys are kept as distinct items, each with
// its own ID.
func TestAddDuplicate_NonUniqueTree(t *testing.T) {
	ctx := context.Background()
	b, fnr := newTestBtree[string](2, false)

	if ok, _ := b.Add(ctx, 1, "first"); !ok {
		t.Fatal("first Add failed")
	}
	if ok, err := b.Add(ctx, 1, "second"); !ok || err != nil {
		t.Fatalf("duplicate Add on non-unique tree = (%v, %v), want (true, nil)", ok, err)
	}
	if b.Count() != 2 {
		t.Errorf("Count() = %d, want 2", b.Count())
	}

	var keys []int
	inorderKeys(t, b, fnr, b.GetTreeInfo().RootNodeID, &keys)
	hits := 0
	for _, k := range keys {
		if k == 1 {
			hits++
		}
	}
	if hits != 2 {
		t.Errorf("traversal sees key 1 %d times, want 2", hits)
	}

	// AddIfNotExist still refuses regardless of IsUnique.
	if ok, _ := b.AddIfNotExist(ctx, 1, "third"); ok {
		t.Error("AddIfNotExist added a duplicate")
	}
	if ok, _ := b.AddIfNotExist(ctx, 2, "two"); !ok {
		t.Error("AddIfNotExist refused a new key")
	}
	checkTree(t, b, fnr)
}

func TestDuplicateItemsHaveDistinctIDs(t *testing.T) {
	ctx := context.Background()
	b, fnr := newTestBtree[string](2, false)

	b.Add(ctx, 5, "a")
	b.Add(ctx, 5, "b")

	root := fnr.n[b.GetTreeInfo().RootNodeID]
	if root.Count != 2 {
		t.Fatalf("root Count = %d, want 2", root.Count)
	}
	if root.Slots[0].ID.Compare(root.Slots[1].ID) == 0 {
		t.Error("duplicate items share an ID")
	}
}
