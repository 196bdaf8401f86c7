package inmemory

import (
	"github.com/sharedcode/btreemap"
	"github.com/sharedcode/btreemap/btree"
)

// NewBtree will create an in-memory B-Tree & its backing node repository.
// You can use it to store and access key/value pairs similar to a map but
// which keeps items sorted on key. minDegree is the B-Tree 't' constant
// (>= 2); each node holds at most 2t-1 items. isUnique enforces key
// uniqueness on Add.
func NewBtree[TK btree.Ordered, TV any](minDegree int, isUnique bool) (btree.BtreeInterface[TK, TV], error) {
	return NewBtreeWithComparer[TK, TV](minDegree, isUnique, nil)
}

// NewBtreeWithComparer is NewBtree with a caller supplied comparer, for key
// types without a usable natural ordering. A nil comparer means natural order.
func NewBtreeWithComparer[TK btree.Ordered, TV any](minDegree int, isUnique bool, comparer btree.ComparerFunc[TK]) (btree.BtreeInterface[TK, TV], error) {
	options := btreemap.TreeOptions{
		MinDegree: minDegree,
		IsUnique:  isUnique,
	}
	b3, err := btree.New[TK, TV](options, newNodeRepository[TK, TV](), comparer)
	if err != nil {
		return nil, err
	}
	return b3, nil
}
