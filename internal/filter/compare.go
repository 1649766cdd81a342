package filter

import "github.com/jacoelho/tq/internal/tree"

// compareLiteral reports whether a document value passes cmp against lit.
// Operands must be scalars of the same kind; any other pairing never matches.
func compareLiteral(v *tree.Value, lit Literal, cmp Comparer) bool {
	switch v.Kind() {
	case tree.KindBool:
		if expected, ok := lit.AsBool(); ok {
			actual, _ := v.AsBool()
			return cmp.Bool(actual, expected)
		}
	case tree.KindNumber:
		if expected, ok := lit.AsNumber(); ok {
			actual, _ := v.AsNumber()
			return cmp.Number(actual, expected)
		}
	case tree.KindString:
		if expected, ok := lit.AsString(); ok {
			actual, _ := v.AsString()
			return cmp.String(actual, expected)
		}
	}
	return false
}
