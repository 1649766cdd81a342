package filter

import (
	"errors"
	"fmt"
)

// ErrUnsupported indicates an unknown comparison operator token.
var ErrUnsupported = errors.New("filter: unsupported operator")

// Operator is a filter comparison operator.
type Operator uint8

const (
	Eq Operator = iota
	Ne
	Gt
	Ge
	Lt
	Le
)

var operatorTokens = map[string]Operator{
	"==": Eq,
	"!=": Ne,
	">":  Gt,
	">=": Ge,
	"<":  Lt,
	"<=": Le,
}

// ParseOperator maps a filter-grammar comparison token to its operator.
func ParseOperator(token string) (Operator, error) {
	op, ok := operatorTokens[token]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupported, token)
	}
	return op, nil
}

func (op Operator) String() string {
	switch op {
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case Lt:
		return "<"
	case Le:
		return "<="
	default:
		return "unknown"
	}
}

// Comparer is the typed comparison capability a filter runs with: one method
// per scalar kind. Implementations must use the same total order everywhere;
// booleans order false < true and strings order lexicographically.
type Comparer interface {
	Bool(a, b bool) bool
	Number(a, b float64) bool
	String(a, b string) bool
}

// ComparerFor returns the comparer implementing op.
func ComparerFor(op Operator) Comparer {
	switch op {
	case Eq:
		return eqComparer{}
	case Ne:
		return neComparer{}
	case Gt:
		return gtComparer{}
	case Ge:
		return geComparer{}
	case Lt:
		return ltComparer{}
	default:
		return leComparer{}
	}
}

func boolRank(v bool) int {
	if v {
		return 1
	}
	return 0
}

type eqComparer struct{}

func (eqComparer) Bool(a, b bool) bool { return a == b }
func (eqComparer) Number(a, b float64) bool { return a == b }
func (eqComparer) String(a, b string) bool { return a == b }

type neComparer struct{}

func (neComparer) Bool(a, b bool) bool { return a != b }
func (neComparer) Number(a, b float64) bool { return a != b }
func (neComparer) String(a, b string) bool { return a != b }

type gtComparer struct{}

func (gtComparer) Bool(a, b bool) bool { return boolRank(a) > boolRank(b) }
func (gtComparer) Number(a, b float64) bool { return a > b }
func (gtComparer) String(a, b string) bool { return a > b }

type geComparer struct{}

func (geComparer) Bool(a, b bool) bool { return boolRank(a) >= boolRank(b) }
func (geComparer) Number(a, b float64) bool { return a >= b }
func (geComparer) String(a, b string) bool { return a >= b }

type ltComparer struct{}

func (ltComparer) Bool(a, b bool) bool { return boolRank(a) < boolRank(b) }
func (ltComparer) Number(a, b float64) bool { return a < b }
func (ltComparer) String(a, b string) bool { return a < b }

type leComparer struct{}

func (leComparer) Bool(a, b bool) bool { return boolRank(a) <= boolRank(b) }
func (leComparer) Number(a, b float64) bool { return a <= b }
func (leComparer) String(a, b string) bool { return a <= b }
