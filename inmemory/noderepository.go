package inmemory

import (
	"context"

	"github.com/sharedcode/btreemap"
	"github.com/sharedcode/btreemap/btree"
)

// in-memory implementation of NodeRepository. Uses a map to manage nodes in memory.
type nodeRepository[TK btree.Ordered, TV any] struct {
	lookup map[btreemap.UUID]*btree.Node[TK, TV]
}

// newNodeRepository instantiates a NodeRepository that uses a map to manage nodes.
func newNodeRepository[TK btree.Ordered, TV any]() btree.NodeRepository[TK, TV] {
	return &nodeRepository[TK, TV]{
		lookup: make(map[btreemap.UUID]*btree.Node[TK, TV]),
	}
}

// Add will upsert node to the map.
func (nr *nodeRepository[TK, TV]) Add(n *btree.Node[TK, TV]) {
	nr.lookup[n.ID] = n
}

// Update will upsert node to the map.
func (nr *nodeRepository[TK, TV]) Update(n *btree.Node[TK, TV]) {
	nr.lookup[n.ID] = n
}

// Get will retrieve the node with nodeID from the map.
func (nr *nodeRepository[TK, TV]) Get(ctx context.Context, nodeID btreemap.UUID) (*btree.Node[TK, TV], error) {
	v := nr.lookup[nodeID]
	return v, nil
}
