package filter

import "github.com/jacoelho/tq/internal/tree"

// keyedValues is an insertion-ordered map from canonical key to value, the
// scratch structure behind the set combinators. Inserting an existing key
// replaces the value but keeps the original position.
type keyedValues struct {
	keys   []string
	values map[string]*tree.Value
}

func newKeyedValues() *keyedValues {
	return &keyedValues{values: make(map[string]*tree.Value)}
}

func (kv *keyedValues) insert(key string, v *tree.Value) {
	if _, ok := kv.values[key]; !ok {
		kv.keys = append(kv.keys, key)
	}
	kv.values[key] = v
}

func (kv *keyedValues) contains(key string) bool {
	_, ok := kv.values[key]
	return ok
}

func (kv *keyedValues) take() []*tree.Value {
	out := make([]*tree.Value, 0, len(kv.keys))
	for _, key := range kv.keys {
		out = append(out, kv.values[key])
	}
	return out
}

// drainElements moves the container's content out, leaving it null. A
// non-array value is treated as a one-element sequence.
func (c *Container) drainElements() []*tree.Value {
	taken := c.value.Take()
	if taken.Kind() == tree.KindArray {
		return taken.Elems()
	}
	return []*tree.Value{taken}
}

// keyedElements drains the container into a keyed map.
func (c *Container) keyedElements() *keyedValues {
	kv := newKeyedValues()
	for _, elem := range c.drainElements() {
		kv.insert(canonicalKey(elem), elem)
	}
	return kv
}

// Except keeps the elements of other whose key is absent from the receiver,
// in other's scan order. Both containers are consumed.
func (c *Container) Except(other *Container) *Container {
	seen := c.keyedElements()
	kept := newKeyedValues()
	for _, elem := range other.drainElements() {
		key := canonicalKey(elem)
		if !seen.contains(key) {
			kept.insert(key, elem)
		}
	}
	return New(tree.Array(kept.take()...), false)
}

// Intersect keeps the elements of other whose key is present in the receiver,
// in other's scan order. Both containers are consumed.
func (c *Container) Intersect(other *Container) *Container {
	seen := c.keyedElements()
	kept := newKeyedValues()
	for _, elem := range other.drainElements() {
		key := canonicalKey(elem)
		if seen.contains(key) {
			kept.insert(key, elem)
		}
	}
	return New(tree.Array(kept.take()...), false)
}

// Union merges both containers' elements, the receiver's first, appending the
// elements of other whose key was not already present. An empty result
// collapses to null. Both containers are consumed.
func (c *Container) Union(other *Container) *Container {
	merged := c.keyedElements()
	for _, elem := range other.drainElements() {
		key := canonicalKey(elem)
		if !merged.contains(key) {
			merged.insert(key, elem)
		}
	}

	out := New(tree.Null(), false)
	out.Replace(tree.Array(merged.take()...))
	return out
}
