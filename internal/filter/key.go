package filter

import (
	"strconv"
	"strings"

	"github.com/jacoelho/tq/internal/tree"
)

// canonicalKey encodes a value's structure as the string identity used for
// set membership. The encoding is positional: array indexes and object
// insertion order are part of the key, so reordered structures encode to
// different keys on purpose.
func canonicalKey(v *tree.Value) string {
	switch v.Kind() {
	case tree.KindNull:
		return "null"
	case tree.KindBool:
		b, _ := v.AsBool()
		return strconv.FormatBool(b)
	case tree.KindNumber:
		n, _ := v.AsNumber()
		return strconv.FormatFloat(n, 'f', -1, 64)
	case tree.KindString:
		s, _ := v.AsString()
		return s
	case tree.KindArray:
		var b strings.Builder
		for i, elem := range v.Elems() {
			b.WriteString(strconv.Itoa(i))
			b.WriteString(canonicalKey(elem))
		}
		return b.String()
	case tree.KindObject:
		var b strings.Builder
		for key, value := range v.Fields().Entries() {
			b.WriteString(key)
			b.WriteString(canonicalKey(value))
		}
		return b.String()
	default:
		return ""
	}
}
