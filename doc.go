// Package btreemap defines the core types and helpers shared across the
// btreemap codebase: UUIDs, tree options and metadata, logging setup, and
// shared error codes. The generic B-Tree itself lives in the btree
// subpackage; inmemory provides a ready-to-use, map-backed instantiation,
// and jsonmap layers a CEL-expression comparer on top for schema-less
// (map[string]any) keys.
// It is a foundational package that the other components build upon.
package btreemap
