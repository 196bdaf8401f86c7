package btreemap

// TreeInfo describes a B-Tree configuration and runtime state.
type TreeInfo struct {
	// Name is the short tree name.
	Name string `json:"name" maxLength:"128"`
	// MinDegree is the minimum degree 't' fixed at construction.
	MinDegree int `json:"min_degree" min:"2"`
	// IsUnique enforces uniqueness on the key of key/value items.
	IsUnique bool `json:"is_unique"`
	// Description optionally describes the tree.
	Description string `json:"description" maxLength:"500"`
	// RootNodeID is the root B-Tree node identifier; nil while the tree is empty.
	RootNodeID UUID `json:"root_node_id"`
	// Count is the total number of items stored.
	Count int64 `json:"count"`
}

// NewTreeInfo validates the options and returns the initial TreeInfo for a
// freshly created (empty) tree.
func NewTreeInfo(options TreeOptions) (TreeInfo, error) {
	if err := options.Validate(); err != nil {
		return TreeInfo{}, err
	}
	return TreeInfo{
		Name:        options.Name,
		MinDegree:   options.MinDegree,
		IsUnique:    options.IsUnique,
		Description: options.Description,
	}, nil
}
