// Package tree holds the document value model filters operate over: a tagged
// variant covering null, booleans, numbers, strings, ordered arrays and
// insertion-ordered objects. Values are exclusively owned; Take implements the
// move idiom every filtering operation relies on.
package tree

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/jacoelho/tq/internal/number"
)

// ErrUnsupportedType indicates decoded data contains a Go type with no tree
// representation.
var ErrUnsupportedType = errors.New("tree: unsupported value type")

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is one node of a decoded document. The zero value is null.
type Value struct {
	kind    Kind
	boolean bool
	num     float64
	text    string
	elems   []*Value
	fields  *Object
}

// Null returns a fresh null value.
func Null() *Value {
	return &Value{}
}

// Bool wraps a boolean scalar.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolean: v}
}

// Number wraps a numeric scalar. All document numbers are float64.
func Number(v float64) *Value {
	return &Value{kind: KindNumber, num: v}
}

// String wraps a string scalar.
func String(v string) *Value {
	return &Value{kind: KindString, text: v}
}

// Array wraps the given elements in order. The elements are owned by the
// returned value.
func Array(elems ...*Value) *Value {
	return &Value{kind: KindArray, elems: elems}
}

// ObjectValue wraps an ordered field set. A nil fields argument yields an
// empty object.
func ObjectValue(fields *Object) *Value {
	if fields == nil {
		fields = NewObject()
	}
	return &Value{kind: KindObject, fields: fields}
}

func (v *Value) Kind() Kind {
	return v.kind
}

func (v *Value) IsNull() bool {
	return v.kind == KindNull
}

func (v *Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.boolean, true
}

func (v *Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

func (v *Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// Elems returns the element slice of an array value, nil otherwise.
func (v *Value) Elems() []*Value {
	if v.kind != KindArray {
		return nil
	}
	return v.elems
}

// Fields returns the ordered field set of an object value, nil otherwise.
func (v *Value) Fields() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.fields
}

// Take moves the held content out, leaving the receiver null. The returned
// value owns everything the receiver held.
func (v *Value) Take() *Value {
	out := &Value{}
	*out, *v = *v, Value{}
	return out
}

// Clone deep-copies the value.
func (v *Value) Clone() *Value {
	out := &Value{kind: v.kind, boolean: v.boolean, num: v.num, text: v.text}
	switch v.kind {
	case KindArray:
		out.elems = make([]*Value, len(v.elems))
		for i, elem := range v.elems {
			out.elems[i] = elem.Clone()
		}
	case KindObject:
		out.fields = v.fields.clone()
	}
	return out
}

// Equal reports positional structural equality: array elements must match by
// index and object entries by insertion order.
func Equal(a, b *Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolean == b.boolean
	case KindNumber:
		return a.num == b.num
	case KindString:
		return a.text == b.text
	case KindArray:
		if len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !Equal(a.elems[i], b.elems[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if !slices.Equal(a.fields.keys, b.fields.keys) {
			return false
		}
		for _, key := range a.fields.keys {
			if !Equal(a.fields.values[key], b.fields.values[key]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Object is an insertion-ordered mapping with unique string keys. Set on an
// existing key updates the value without moving the entry.
type Object struct {
	keys   []string
	values map[string]*Value
}

func NewObject() *Object {
	return &Object{values: make(map[string]*Value)}
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) Get(key string) (*Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *Object) Set(key string, v *Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Keys returns the entry keys in insertion order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// Entries iterates entries in insertion order.
func (o *Object) Entries() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for _, key := range o.keys {
			if !yield(key, o.values[key]) {
				return
			}
		}
	}
}

func (o *Object) clone() *Object {
	out := NewObject()
	for _, key := range o.keys {
		out.Set(key, o.values[key].Clone())
	}
	return out
}

// FromInterface converts data decoded by encoding/json into a tree value.
// Plain Go maps carry no entry order, so object keys are inserted in
// lexicographic order to keep the conversion deterministic.
func FromInterface(data any) (*Value, error) {
	switch v := data.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case []any:
		elems := make([]*Value, 0, len(v))
		for _, item := range v {
			converted, err := FromInterface(item)
			if err != nil {
				return nil, err
			}
			elems = append(elems, converted)
		}
		return Array(elems...), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		fields := NewObject()
		for _, key := range keys {
			converted, err := FromInterface(v[key])
			if err != nil {
				return nil, err
			}
			fields.Set(key, converted)
		}
		return ObjectValue(fields), nil
	default:
		if f, ok := number.ToFloat64(v); ok {
			return Number(f), nil
		}
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, data)
	}
}
