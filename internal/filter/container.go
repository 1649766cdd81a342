// Package filter implements the value-filtering core of the path-query
// evaluator: typed comparison of document values against literals, predicate
// filtering of arrays, and content-keyed set combination of filter results.
//
// Shape mismatches never fail; they degrade to a documented no-match outcome
// (false, an empty array, or a null value). Only malformed filter syntax can
// fail a query, and that is handled upstream.
package filter

import "github.com/jacoelho/tq/internal/tree"

// Container owns one document value while it moves through filtering and
// combination. Every consuming operation leaves its operands holding null; a
// consumed container is only fit to be dropped.
type Container struct {
	value *tree.Value
	leaf  bool
}

// New wraps value in a container, taking ownership. leaf marks a container
// built at a leaf of the path traversal; the flag is only ever set here and
// is consumed by the surrounding evaluator.
func New(value *tree.Value, leaf bool) *Container {
	if value == nil {
		value = tree.Null()
	}
	return &Container{value: value, leaf: leaf}
}

func (c *Container) IsLeaf() bool {
	return c.leaf
}

// Value returns a mutable view of the held value.
func (c *Container) Value() *tree.Value {
	return c.value
}

// CloneValue deep-copies the held value.
func (c *Container) CloneValue() *tree.Value {
	return c.value.Clone()
}

func (c *Container) IsArray() bool {
	return c.value.Kind() == tree.KindArray
}

// Replace installs value, collapsing an empty array, an empty object and
// explicit null into the single null representation.
func (c *Container) Replace(value *tree.Value) {
	if value == nil || isEmpty(value) {
		c.value = tree.Null()
		return
	}
	c.value = value
}

func isEmpty(v *tree.Value) bool {
	switch v.Kind() {
	case tree.KindNull:
		return true
	case tree.KindArray:
		return len(v.Elems()) == 0
	case tree.KindObject:
		return v.Fields().Len() == 0
	default:
		return false
	}
}

// TakeWith applies one comparison predicate, consuming the container. With a
// member key, array elements are kept when they are objects whose named
// member passes cmp; without one, array elements (or the value itself) are
// compared directly. Unmatched values are discarded, never copied.
func (c *Container) TakeWith(key *MemberKey, lit Literal, cmp Comparer) *Container {
	if key != nil {
		return c.takeMemberMatches(key.Name, lit, cmp)
	}

	taken := c.value.Take()
	if taken.Kind() == tree.KindArray {
		kept := make([]*tree.Value, 0, len(taken.Elems()))
		for _, elem := range taken.Elems() {
			if compareLiteral(elem, lit, cmp) {
				kept = append(kept, elem)
			}
		}
		return New(tree.Array(kept...), false)
	}

	if compareLiteral(taken, lit, cmp) {
		return New(taken, false)
	}
	return New(tree.Null(), false)
}

// takeMemberMatches keeps array elements that are objects whose named member
// passes the comparison. Elements missing the member, or that are not
// objects, are dropped. A non-array value is consumed and yields null.
func (c *Container) takeMemberMatches(name string, lit Literal, cmp Comparer) *Container {
	taken := c.value.Take()
	if taken.Kind() != tree.KindArray {
		return New(tree.Null(), false)
	}

	kept := make([]*tree.Value, 0, len(taken.Elems()))
	for _, elem := range taken.Elems() {
		fields := elem.Fields()
		if fields == nil {
			continue
		}
		member, ok := fields.Get(name)
		if !ok || !compareLiteral(member, lit, cmp) {
			continue
		}
		kept = append(kept, elem)
	}
	return New(tree.Array(kept...), false)
}

// Compare combines two already-filtered containers, consuming both. Equality
// maps to set intersection and inequality to set difference, which is how the
// expression evaluator realizes AND and NOT across filter clauses. Ordering
// is not defined over whole containers and always yields a constant false.
func (c *Container) Compare(other *Container, op Operator) Result {
	switch op {
	case Eq:
		return Filtered{Value: c.Intersect(other)}
	case Ne:
		return Filtered{Value: c.Except(other)}
	default:
		return Scalar{Literal: BoolLiteral(false)}
	}
}
