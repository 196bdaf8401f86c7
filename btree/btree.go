package btree

import (
	"context"
	"log/slog"

	"github.com/sharedcode/btreemap"
)

// Btree manages a B-Tree: the root node lifecycle, insert dispatch with
// proactive node splitting, and comparator guided search. It is not safe
// for concurrent use; callers needing shared access serialize around it.
type Btree[TK Ordered, TV any] struct {
	treeInfo       *btreemap.TreeInfo
	nodeRepository NodeRepository[TK, TV]
	comparer       ComparerFunc[TK]
}

// New instantiates a Btree with the given options, node repository and
// comparer. A nil comparer falls back to the natural ordering provided by
// CoerceComparer. Options are validated before anything is allocated; a
// minimum degree below 2 fails fast with btreemap.InvalidMinDegree.
func New[TK Ordered, TV any](options btreemap.TreeOptions, nodeRepository NodeRepository[TK, TV], comparer ComparerFunc[TK]) (*Btree[TK, TV], error) {
	ti, err := btreemap.NewTreeInfo(options)
	if err != nil {
		return nil, err
	}
	if comparer == nil {
		var zero TK
		cc := CoerceComparer(any(zero))
		comparer = func(a TK, b TK) int {
			return cc(a, b)
		}
	}
	return &Btree[TK, TV]{
		treeInfo:       &ti,
		nodeRepository: nodeRepository,
		comparer:       comparer,
	}, nil
}

// Add adds an item to the B-tree. On a tree that enforces unique keys, adding
// a key that already exists does nothing and returns false; otherwise items
// with duplicated keys get stored as distinct entries told apart by Item ID.
func (btree *Btree[TK, TV]) Add(ctx context.Context, key TK, value TV) (bool, error) {
	if btree.IsUnique() {
		return btree.AddIfNotExist(ctx, key, value)
	}
	return btree.add(ctx, newItem[TK, TV](key, value))
}

// AddIfNotExist adds an item if there is no item matching the key yet.
// Otherwise it does nothing and returns false.
func (btree *Btree[TK, TV]) AddIfNotExist(ctx context.Context, key TK, value TV) (bool, error) {
	n, _, err := btree.findNode(ctx, key)
	if err != nil {
		return false, err
	}
	if n != nil {
		return false, nil
	}
	return btree.add(ctx, newItem[TK, TV](key, value))
}

// Update finds the item with key and replaces its value in place.
// Returns false when there is no item to update.
func (btree *Btree[TK, TV]) Update(ctx context.Context, key TK, value TV) (bool, error) {
	n, index, err := btree.findNode(ctx, key)
	if n == nil || err != nil {
		return false, err
	}
	n.Slots[index].Value = &value
	btree.saveNode(n)
	return true, nil
}

// Upsert adds the item if it does not exist or updates it if it does.
func (btree *Btree[TK, TV]) Upsert(ctx context.Context, key TK, value TV) (bool, error) {
	ok, err := btree.Update(ctx, key, value)
	if ok || err != nil {
		return ok, err
	}
	return btree.add(ctx, newItem[TK, TV](key, value))
}

// Find searches the B-tree for an item with a given key and returns a
// pointer to its value, or nil when there is no match. A lookup miss is not
// an error. The returned pointer is only valid until the next mutation.
func (btree *Btree[TK, TV]) Find(ctx context.Context, key TK) (*TV, error) {
	n, index, err := btree.findNode(ctx, key)
	if n == nil || err != nil {
		return nil, err
	}
	return n.Slots[index].Value, nil
}

// FindItem is like Find but returns the whole item, including its ID,
// or nil when there is no match.
func (btree *Btree[TK, TV]) FindItem(ctx context.Context, key TK) (*Item[TK, TV], error) {
	n, index, err := btree.findNode(ctx, key)
	if n == nil || err != nil {
		return nil, err
	}
	return n.Slots[index], nil
}

// IsEmpty returns true if the B-tree has no items (no root node yet).
func (btree *Btree[TK, TV]) IsEmpty() bool {
	return btree.treeInfo.RootNodeID.IsNil()
}

// MinDegree returns the minimum degree 't' fixed at construction.
func (btree *Btree[TK, TV]) MinDegree() int {
	return btree.treeInfo.MinDegree
}

// IsUnique returns true if the B-tree is configured to store items with unique keys.
func (btree *Btree[TK, TV]) IsUnique() bool {
	return btree.treeInfo.IsUnique
}

// Count returns the number of items in this B-tree.
func (btree *Btree[TK, TV]) Count() int64 {
	return btree.treeInfo.Count
}

// GetTreeInfo returns TreeInfo which contains the details about this B-tree.
func (btree *Btree[TK, TV]) GetTreeInfo() btreemap.TreeInfo {
	return *btree.treeInfo
}

// add inserts the item, growing the tree a level when the root is full.
func (btree *Btree[TK, TV]) add(ctx context.Context, item *Item[TK, TV]) (bool, error) {
	root, err := btree.getRootNode(ctx)
	if err != nil {
		return false, err
	}
	if root == nil {
		// First insert: a single-item leaf becomes the root.
		root = newNode[TK, TV](btree.getSlotCount())
		root.Slots[0] = item
		root.Count = 1
		btree.saveNode(root)
		btree.treeInfo.RootNodeID = root.ID
		btree.treeInfo.Count++
		return true, nil
	}
	if root.isFull(btree.getSlotCount()) {
		// Root is full: allocate a new root that adopts the old root as its
		// sole child, then split that child before descending. The tree
		// grows a level; this is the only way height ever increases.
		newRoot := newNode[TK, TV](btree.getSlotCount())
		newRoot.ChildrenIDs = make([]btreemap.UUID, btree.getSlotCount()+1)
		newRoot.ChildrenIDs[0] = root.ID
		btree.saveNode(newRoot)
		if err = newRoot.splitChild(ctx, btree, 0); err != nil {
			return false, err
		}
		btree.treeInfo.RootNodeID = newRoot.ID
		slog.Debug("root split", "tree", btree.treeInfo.Name, "count", btree.treeInfo.Count)
		root = newRoot
	}
	if err = root.insertNonFull(ctx, btree, item); err != nil {
		return false, err
	}
	btree.treeInfo.Count++
	return true, nil
}

// findNode locates the node & slot index holding the given key, or a nil
// node when the tree is empty or no item matches.
func (btree *Btree[TK, TV]) findNode(ctx context.Context, key TK) (*Node[TK, TV], int, error) {
	root, err := btree.getRootNode(ctx)
	if root == nil || err != nil {
		return nil, 0, err
	}
	return root.find(ctx, btree, key)
}

func (btree *Btree[TK, TV]) compare(x TK, y TK) int {
	return btree.comparer(x, y)
}

// getSlotCount returns the maximum item count per node (2t-1).
func (btree *Btree[TK, TV]) getSlotCount() int {
	return 2*btree.treeInfo.MinDegree - 1
}

func (btree *Btree[TK, TV]) getMinDegree() int {
	return btree.treeInfo.MinDegree
}

func (btree *Btree[TK, TV]) getRootNode(ctx context.Context) (*Node[TK, TV], error) {
	if btree.treeInfo.RootNodeID.IsNil() {
		return nil, nil
	}
	return btree.getNode(ctx, btree.treeInfo.RootNodeID)
}

func (btree *Btree[TK, TV]) getNode(ctx context.Context, nodeID btreemap.UUID) (*Node[TK, TV], error) {
	return btree.nodeRepository.Get(ctx, nodeID)
}

// saveNode registers the node to the repository, assigning an ID on first save.
func (btree *Btree[TK, TV]) saveNode(node *Node[TK, TV]) {
	if node.ID.IsNil() {
		node.ID = btreemap.NewUUID()
		btree.nodeRepository.Add(node)
		return
	}
	btree.nodeRepository.Update(node)
}
