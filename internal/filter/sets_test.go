package filter

import (
	"testing"

	"github.com/jacoelho/tq/internal/tree"
)

func TestIntersect(t *testing.T) {
	t.Parallel()

	self := New(mustValue(t, `[1,2,3]`), false)
	other := New(mustValue(t, `[2,3,4]`), false)

	got := self.Intersect(other)

	if want := mustValue(t, `[2,3]`); !tree.Equal(got.Value(), want) {
		t.Fatalf("Intersect result = %v, want [2,3]", got.Value().Kind())
	}
	if got.IsLeaf() {
		t.Fatal("Intersect result marked leaf, want leaf=false")
	}
	if !self.Value().IsNull() || !other.Value().IsNull() {
		t.Fatal("Intersect left content in a consumed container")
	}
}

func TestExcept(t *testing.T) {
	t.Parallel()

	self := New(mustValue(t, `[1,2,3]`), false)
	other := New(mustValue(t, `[2,3,4]`), false)

	got := self.Except(other)

	if want := mustValue(t, `[4]`); !tree.Equal(got.Value(), want) {
		t.Fatalf("Except result != [4]")
	}
	if !self.Value().IsNull() || !other.Value().IsNull() {
		t.Fatal("Except left content in a consumed container")
	}
}

func TestExceptEmptyResultStaysArray(t *testing.T) {
	t.Parallel()

	self := New(mustValue(t, `[1,2]`), false)
	other := New(mustValue(t, `[1,2]`), false)

	got := self.Except(other)

	// Except and Intersect return the raw array; only Union normalizes.
	if !got.IsArray() || len(got.Value().Elems()) != 0 {
		t.Fatalf("Except of identical sets = %v, want empty array", got.Value().Kind())
	}
}

func TestScalarOperandsActAsSingleElementSequences(t *testing.T) {
	t.Parallel()

	self := New(tree.Number(2), false)
	other := New(mustValue(t, `[1,2,3]`), false)

	got := self.Intersect(other)

	if want := mustValue(t, `[2]`); !tree.Equal(got.Value(), want) {
		t.Fatalf("Intersect(scalar, array) != [2]")
	}

	scalarOther := New(tree.Number(5), false)
	gotExcept := New(mustValue(t, `[1,2]`), false).Except(scalarOther)
	if want := mustValue(t, `[5]`); !tree.Equal(gotExcept.Value(), want) {
		t.Fatalf("Except(array, scalar) != [5]")
	}
}

func TestIntersectCollapsesDuplicates(t *testing.T) {
	t.Parallel()

	self := New(mustValue(t, `[2,3]`), false)
	other := New(mustValue(t, `[2,2,3]`), false)

	got := self.Intersect(other)

	if want := mustValue(t, `[2,3]`); !tree.Equal(got.Value(), want) {
		t.Fatalf("Intersect with duplicate elements != [2,3]")
	}
}

func TestUnion(t *testing.T) {
	t.Parallel()

	self := New(mustValue(t, `[1,2,3]`), false)
	other := New(mustValue(t, `[2,3,4]`), false)

	got := self.Union(other)

	// Self's order first, then other's unseen elements in scan order.
	if want := mustValue(t, `[1,2,3,4]`); !tree.Equal(got.Value(), want) {
		t.Fatalf("Union result != [1,2,3,4]")
	}
	if !self.Value().IsNull() || !other.Value().IsNull() {
		t.Fatal("Union left content in a consumed container")
	}
}

func TestUnionEmptyCollapsesToNull(t *testing.T) {
	t.Parallel()

	self := New(mustValue(t, `[]`), false)
	other := New(mustValue(t, `[]`), false)

	got := self.Union(other)

	if !got.Value().IsNull() {
		t.Fatalf("Union of empty sets = %v, want null", got.Value().Kind())
	}
}

func TestUnionSizeBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		self  string
		other string
	}{
		{name: "overlapping", self: `[1,2,3]`, other: `[2,3,4]`},
		{name: "disjoint", self: `["a","b"]`, other: `["c"]`},
		{name: "identical", self: `[1,2]`, other: `[1,2]`},
		{name: "nested", self: `[{"a":1},{"b":2}]`, other: `[{"b":2},{"c":3}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selfElems := mustValue(t, tt.self).Elems()
			otherElems := mustValue(t, tt.other).Elems()

			got := New(mustValue(t, tt.self), false).Union(New(mustValue(t, tt.other), false))

			size := len(got.Value().Elems())
			lower := max(len(selfElems), len(otherElems))
			upper := len(selfElems) + len(otherElems)
			if size < lower || size > upper {
				t.Fatalf("|union| = %d, want between %d and %d", size, lower, upper)
			}

			for _, elem := range append(selfElems, otherElems...) {
				if !containsEqual(got.Value().Elems(), elem) {
					t.Fatalf("union misses an input element from %s / %s", tt.self, tt.other)
				}
			}
		})
	}
}

func TestPartitionLaw(t *testing.T) {
	t.Parallel()

	selfPayload := `[1,2,3]`
	otherPayload := `[2,3,4,"x"]`
	otherElems := mustValue(t, otherPayload).Elems()

	intersected := New(mustValue(t, selfPayload), false).Intersect(New(mustValue(t, otherPayload), false))
	excepted := New(mustValue(t, selfPayload), false).Except(New(mustValue(t, otherPayload), false))

	for _, elem := range otherElems {
		inIntersect := containsEqual(intersected.Value().Elems(), elem)
		inExcept := containsEqual(excepted.Value().Elems(), elem)
		if inIntersect == inExcept {
			t.Fatalf("element appears in intersect=%v except=%v, want exactly one", inIntersect, inExcept)
		}
	}
}

func containsEqual(elems []*tree.Value, target *tree.Value) bool {
	for _, elem := range elems {
		if tree.Equal(elem, target) {
			return true
		}
	}
	return false
}
