// Package jsonmap provides an in-memory B-Tree for schema-less usage. I.e. -
// JSONy type of data marshaled by Go as map[string]any for key & value pairs,
// using a caller provided CEL expression as comparer.
package jsonmap

import (
	"fmt"

	"github.com/sharedcode/btreemap/btree"
	"github.com/sharedcode/btreemap/cel"
	"github.com/sharedcode/btreemap/inmemory"
)

// JsonMap is an ordered map on map[string]any key & value pairs, ordered by
// the CEL comparer expression supplied on construction.
type JsonMap struct {
	btree.BtreeInterface[map[string]any, map[string]any]
	evaluator *cel.Evaluator
}

// Comparer for map[string]any key type.
func (j *JsonMap) Comparer(mapX map[string]any, mapY map[string]any) int {
	r, _ := j.evaluator.Evaluate(mapX, mapY)
	return r
}

// NewJsonMap instantiates an in-memory B-Tree keyed on map[string]any, using
// the given CEL expression to compare mapX vs mapY keys.
func NewJsonMap(minDegree int, isUnique bool, comparerCELexpression string) (*JsonMap, error) {
	if comparerCELexpression == "" {
		return nil, fmt.Errorf("comparerCELexpression needs to be valid CEL expression that compares map[string]any x & y")
	}
	e, err := cel.NewEvaluator("comparer", comparerCELexpression)
	if err != nil {
		return nil, err
	}

	j := JsonMap{
		evaluator: e,
	}

	b3, err := inmemory.NewBtreeWithComparer[map[string]any, map[string]any](minDegree, isUnique, j.Comparer)
	if err != nil {
		return nil, err
	}

	j.BtreeInterface = b3
	return &j, nil
}
