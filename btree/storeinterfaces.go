package btree

import (
	"context"

	"github.com/sharedcode/btreemap"
)

// BtreeInterface defines the public API of the Btree.
type BtreeInterface[TK Ordered, TV any] interface {
	// Add adds an item to the B-tree. On a tree that enforces unique keys,
	// adding a key that already exists does nothing and returns false;
	// otherwise items with duplicated keys get stored as distinct entries.
	Add(ctx context.Context, key TK, value TV) (bool, error)

	// AddIfNotExist adds an item if there is no item matching the key yet.
	// Otherwise it does nothing and returns false.
	// This is useful when adding an item without creating a duplicate entry.
	AddIfNotExist(ctx context.Context, key TK, value TV) (bool, error)

	// Update finds the item with key and replaces its value in place.
	Update(ctx context.Context, key TK, value TV) (bool, error)

	// Upsert adds the item if it does not exist or updates it if it does.
	Upsert(ctx context.Context, key TK, value TV) (bool, error)

	// Find searches the B-tree for an item with a given key and returns a
	// pointer to its value, or nil when there is no match. A lookup miss is
	// not an error. The returned pointer is only valid until the next
	// mutation of the tree.
	Find(ctx context.Context, key TK) (*TV, error)

	// FindItem is like Find but returns the whole item, including its ID,
	// or nil when there is no match.
	FindItem(ctx context.Context, key TK) (*Item[TK, TV], error)

	// IsEmpty returns true if the B-tree has no items (no root node yet).
	IsEmpty() bool

	// MinDegree returns the minimum degree 't' fixed at construction.
	MinDegree() int

	// IsUnique returns true if the B-tree is configured to store items with unique keys.
	// If you only need a uniqueness check when adding an item, use AddIfNotExist instead.
	IsUnique() bool

	// Count returns the number of items in this B-tree.
	Count() int64

	// GetTreeInfo returns TreeInfo which contains the details about this B-tree.
	GetTreeInfo() btreemap.TreeInfo
}

// NodeRepository specifies the node repository used by the B-tree. Nodes are
// keyed off their UUID; the B-tree itself only holds on to the root node's ID.
type NodeRepository[TK Ordered, TV any] interface {
	// Add registers a newly created node.
	Add(node *Node[TK, TV])
	// Get returns the Node with the given nodeID, or nil if unknown.
	Get(ctx context.Context, nodeID btreemap.UUID) (*Node[TK, TV], error)
	// Update submits a mutated node.
	Update(node *Node[TK, TV])
}
