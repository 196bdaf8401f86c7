package btreemap

import (
	"errors"
	"testing"
)

func TestTreeOptionsValidate(t *testing.T) {
	for _, minDegree := range []int{-1, 0, 1} {
		err := TreeOptions{MinDegree: minDegree}.Validate()
		if err == nil {
			t.Fatalf("Validate accepted minimum degree %d", minDegree)
		}
		var e Error[int]
		if !errors.As(err, &e) || e.Code != InvalidMinDegree || e.UserData != minDegree {
			t.Errorf("Validate(%d) returned %v, want InvalidMinDegree carrying it", minDegree, err)
		}
	}
	if err := (TreeOptions{MinDegree: 2}).Validate(); err != nil {
		t.Errorf("Validate rejected minimum degree 2: %v", err)
	}
}

func TestNewTreeInfo(t *testing.T) {
	ti, err := NewTreeInfo(TreeOptions{Name: "people", MinDegree: 4, IsUnique: true})
	if err != nil {
		t.Fatal(err)
	}
	if ti.Name != "people" || ti.MinDegree != 4 || !ti.IsUnique {
		t.Errorf("TreeInfo did not carry options over: %+v", ti)
	}
	if !ti.RootNodeID.IsNil() || ti.Count != 0 {
		t.Errorf("fresh TreeInfo should describe an empty tree: %+v", ti)
	}
	if _, err = NewTreeInfo(TreeOptions{MinDegree: 1}); err == nil {
		t.Error("NewTreeInfo accepted minimum degree 1")
	}
}

func TestUUIDBasics(t *testing.T) {
	id := NewUUID()
	if id.IsNil() {
		t.Fatal("NewUUID returned the nil UUID")
	}
	parsed, err := ParseUUID(id.String())
	if err != nil || parsed.Compare(id) != 0 {
		t.Errorf("ParseUUID(String()) round trip failed: %v %v", parsed, err)
	}
	if !NilUUID.IsNil() {
		t.Error("NilUUID.IsNil() = false")
	}
}
