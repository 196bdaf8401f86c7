package btreemap

import "fmt"

// MinimumDegreeFloor is the smallest allowed minimum degree 't'. A B-Tree
// with t < 2 degenerates (nodes could hold zero keys), so construction
// rejects it outright.
const MinimumDegreeFloor = 2

// TreeOptions contains configuration fields used when creating a B-Tree.
type TreeOptions struct {
	// Name is the short name of the tree, used in logs and TreeInfo.
	Name string
	// MinDegree is the B-Tree minimum degree, the 't' constant governing
	// node capacity: every node holds at most 2t-1 items and every
	// non-root node at least t-1. Must be >= MinimumDegreeFloor.
	MinDegree int
	// IsUnique enforces uniqueness on the key of key/value items. When
	// false, items with duplicated keys are allowed and get stored as
	// distinct entries differentiated by their Item ID.
	IsUnique bool
	// Description is an optional text describing the tree.
	Description string
}

// Validate fails fast on misconfiguration, before any node is allocated.
func (to TreeOptions) Validate() error {
	if to.MinDegree < MinimumDegreeFloor {
		return Error[int]{
			Code:     InvalidMinDegree,
			Err:      fmt.Errorf("minimum degree %d is below the required floor of %d", to.MinDegree, MinimumDegreeFloor),
			UserData: to.MinDegree,
		}
	}
	return nil
}
