package btreemap

import "fmt"

type ErrorCode int

const (
	Unknown ErrorCode = iota
	// InvalidMinDegree signals a B-Tree constructed with a minimum degree below 2.
	InvalidMinDegree
	// InvalidComparer signals a comparer that can't be used for the tree's key type.
	InvalidComparer
)

// Error is the btreemap custom error. UserData carries the offending value,
// e.g. the rejected minimum degree on InvalidMinDegree.
type Error[T any] struct {
	Code     ErrorCode
	Err      error
	UserData T
}

func (e Error[T]) Error() string {
	return fmt.Sprintf("Error %d: %v, user data: %v", e.Code, e.Err, e.UserData)
}

// Unwrap returns the wrapped error so errors.Is/As can see through Error.
func (e Error[T]) Unwrap() error {
	return e.Err
}
