package filter

// LiteralKind identifies the variant held by a Literal.
type LiteralKind uint8

const (
	LiteralBool LiteralKind = iota
	LiteralNumber
	LiteralString
)

// Literal is the right-hand operand of a filter comparison, produced upstream
// from parsed filter syntax. Immutable.
type Literal struct {
	kind    LiteralKind
	boolean bool
	num     float64
	text    string
}

func BoolLiteral(v bool) Literal {
	return Literal{kind: LiteralBool, boolean: v}
}

func NumberLiteral(v float64) Literal {
	return Literal{kind: LiteralNumber, num: v}
}

func StringLiteral(v string) Literal {
	return Literal{kind: LiteralString, text: v}
}

func (l Literal) Kind() LiteralKind {
	return l.kind
}

func (l Literal) AsBool() (bool, bool) {
	if l.kind != LiteralBool {
		return false, false
	}
	return l.boolean, true
}

func (l Literal) AsNumber() (float64, bool) {
	if l.kind != LiteralNumber {
		return 0, false
	}
	return l.num, true
}

func (l Literal) AsString() (string, bool) {
	if l.kind != LiteralString {
		return "", false
	}
	return l.text, true
}

// MemberKey selects an object member to compare in place of the element
// itself. Only string member names are supported.
type MemberKey struct {
	Name string
}

// Result is the outcome of combining two containers: either a filtered value
// or a constant literal standing in for "no match".
type Result interface {
	result()
}

// Filtered carries the elements that satisfied the combination.
type Filtered struct {
	Key   *MemberKey
	Value *Container
}

// Scalar stands in for combinations with no defined set result.
type Scalar struct {
	Literal Literal
}

func (Filtered) result() {}
func (Scalar) result()   {}
