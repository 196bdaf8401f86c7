package btree

import (
	"context"
	"sort"

	"github.com/sharedcode/btreemap"
)

// Item contains a key/value pair and the item's unique ID.
type Item[TK Ordered, TV any] struct {
	// ID is the Item's btreemap.UUID. It differentiates items with
	// duplicated keys on trees that allow them (IsUnique = false).
	ID btreemap.UUID
	// Key is the key part in the key/value pair.
	Key TK
	// Value points to the actual data paired with Key.
	Value *TV
}

func newItem[TK Ordered, TV any](key TK, value TV) *Item[TK, TV] {
	return &Item[TK, TV]{
		Key:   key,
		Value: &value,
		ID:    btreemap.NewUUID(),
	}
}

// Node contains a B-Tree node's data. Slots is sized to the tree's maximum
// item count (2t-1) up front; Count tracks the occupied prefix. ChildrenIDs
// is nil on leaf nodes and sized to 2t on inner nodes. Nodes refer to their
// children by ID only, there are no parent back references; the repository
// owns the ID to node mapping.
type Node[TK Ordered, TV any] struct {
	ID btreemap.UUID
	// Slots is an array where the Items get stored.
	Slots []*Item[TK, TV]
	// Count of items in this node.
	Count int
	// ChildrenIDs holds the IDs of this node's children, nil if this node is a leaf.
	ChildrenIDs []btreemap.UUID
}

// newNode creates a new node. The node gets its ID assigned on first save.
func newNode[TK Ordered, TV any](slotCount int) *Node[TK, TV] {
	return &Node[TK, TV]{
		Slots: make([]*Item[TK, TV], slotCount),
	}
}

// hasChildren returns true if this node has children or not.
func (node *Node[TK, TV]) hasChildren() bool {
	return node.ChildrenIDs != nil
}

// isFull returns true if the node is at its maximum item capacity (2t-1).
// A full node must be split before it receives another item or is descended into.
func (node *Node[TK, TV]) isFull(slotCount int) bool {
	return node.Count >= slotCount
}

// findKeyIndex returns the index of the first slot whose key sorts greater
// than or equal to key, or Count if every key sorts before it. Binary search
// keeps the per-node probe at O(log t). Both search and insert use this as
// their single probe point.
func (node *Node[TK, TV]) findKeyIndex(btree *Btree[TK, TV], key TK) int {
	return sort.Search(node.Count, func(index int) bool {
		return btree.compare(node.Slots[index].Key, key) >= 0
	})
}

// getChild fetches the child node at the given index from the node repository.
func (node *Node[TK, TV]) getChild(ctx context.Context, btree *Btree[TK, TV], childIndex int) (*Node[TK, TV], error) {
	return btree.getNode(ctx, node.ChildrenIDs[childIndex])
}

// find walks the tree from this node down to locate the item with the given
// key. Each step either lands on a match or descends a level, so the walk is
// bounded by tree height. Returns the node and slot index of the match, or a
// nil node when no item matches.
func (node *Node[TK, TV]) find(ctx context.Context, btree *Btree[TK, TV], key TK) (*Node[TK, TV], int, error) {
	n := node
	for n != nil {
		index := n.findKeyIndex(btree, key)
		if index < n.Count && btree.compare(n.Slots[index].Key, key) == 0 {
			return n, index, nil
		}
		if !n.hasChildren() {
			break
		}
		var err error
		n, err = n.getChild(ctx, btree, index)
		if err != nil {
			return nil, 0, err
		}
	}
	return nil, 0, nil
}

// insertSlotItem inserts the item at the given slot position, shifting
// occupied slots to the right. The node must not be full.
func (node *Node[TK, TV]) insertSlotItem(item *Item[TK, TV], position int) {
	copy(node.Slots[position+1:], node.Slots[position:node.Count])
	node.Slots[position] = item
	node.Count++
}

// insertNonFull inserts the item into the subtree rooted at this node,
// which must not be full. Any full child on the descent path is split
// before being descended into, keeping the invariant that the node
// receiving the item always has room; no upward propagation is ever needed.
func (node *Node[TK, TV]) insertNonFull(ctx context.Context, btree *Btree[TK, TV], item *Item[TK, TV]) error {
	n := node
	for {
		index := n.findKeyIndex(btree, item.Key)
		if !n.hasChildren() {
			// Outermost (leaf) node reached; splice the item in sort order.
			n.insertSlotItem(item, index)
			btree.saveNode(n)
			return nil
		}
		child, err := n.getChild(ctx, btree, index)
		if err != nil {
			return err
		}
		if child.isFull(btree.getSlotCount()) {
			if err = n.splitChild(ctx, btree, index); err != nil {
				return err
			}
			// The split promoted the child's median into slot 'index'. When
			// the new item sorts after the median, the target is the new
			// right sibling.
			if btree.compare(item.Key, n.Slots[index].Key) > 0 {
				index++
			}
			child, err = n.getChild(ctx, btree, index)
			if err != nil {
				return err
			}
		}
		n = child
	}
}

// splitChild splits this node's full child at childIndex into two nodes of
// t-1 items each, promotes the child's median item into this node at slot
// childIndex, and links the new right sibling at child position childIndex+1.
// This node must not be full. The operation is O(t) and never recurses.
func (node *Node[TK, TV]) splitChild(ctx context.Context, btree *Btree[TK, TV], childIndex int) error {
	t := btree.getMinDegree()
	child, err := node.getChild(ctx, btree, childIndex)
	if err != nil {
		return err
	}

	// The sibling takes the child's upper t-1 items.
	sibling := newNode[TK, TV](btree.getSlotCount())
	copy(sibling.Slots, child.Slots[t:child.Count])
	sibling.Count = t - 1
	if child.hasChildren() {
		// Inner node being split: the sibling also takes the upper t children.
		sibling.ChildrenIDs = make([]btreemap.UUID, btree.getSlotCount()+1)
		copy(sibling.ChildrenIDs, child.ChildrenIDs[t:])
		for i := t; i < len(child.ChildrenIDs); i++ {
			child.ChildrenIDs[i] = btreemap.NilUUID
		}
	}
	btree.saveNode(sibling)

	// Truncate the child to its lower t-1 items; its median moves up.
	median := child.Slots[t-1]
	for i := t - 1; i < child.Count; i++ {
		child.Slots[i] = nil
	}
	child.Count = t - 1
	btree.saveNode(child)

	// Link the sibling right of the child, then promote the median.
	copy(node.ChildrenIDs[childIndex+2:], node.ChildrenIDs[childIndex+1:node.Count+1])
	node.ChildrenIDs[childIndex+1] = sibling.ID
	node.insertSlotItem(median, childIndex)
	btree.saveNode(node)
	return nil
}
