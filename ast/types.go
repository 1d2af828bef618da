package ast

import "strconv"

// Type is either a type variable or a fully applied type constructor.
// There is no "arrow" node: function types are just TypeOperator("->",
// [from, to]), mirroring how the opaque type-checker interface represents
// them.
type Type interface {
	Node
	typeNode()
}

// TypeVariable is an as-yet-unresolved type, identified within one
// declaration by a fresh id rather than by name — the parser's
// name-to-variable map, threaded through its type productions, is what
// recovers the name mapping.
type TypeVariable struct {
	ID int
}

func (*TypeVariable) typeNode() {}
func (t *TypeVariable) String() string {
	return "t" + strconv.Itoa(t.ID)
}

// NewTypeVar builds a TypeVariable identified by id.
func NewTypeVar(id int) Type {
	return &TypeVariable{ID: id}
}

// TypeOperator is a named type constructor applied to zero or more
// argument types: "Int", "Maybe a", "(->) a b".
type TypeOperator struct {
	Name  string
	Types []Type
}

func (*TypeOperator) typeNode() {}
func (t *TypeOperator) String() string {
	if len(t.Types) == 0 {
		return t.Name
	}
	out := t.Name
	for _, arg := range t.Types {
		out += " " + arg.String()
	}
	return out
}

// NewTypeOp builds a TypeOperator.
func NewTypeOp(name string, types []Type) Type {
	return &TypeOperator{Name: name, Types: types}
}

// FunctionType builds the TypeOperator("->", [from, to]) shape that
// represents a function arrow.
func FunctionType(from, to Type) Type {
	return &TypeOperator{Name: "->", Types: []Type{from, to}}
}
