package ast

import "strings"

// Module is the root of a parsed source file.
type Module struct {
	Name             string
	Bindings         []*Binding
	TypeDeclarations []*TypeDeclaration
	Classes          []*Class
	Instances        []*Instance
	DataDefinitions  []*DataDefinition
}

func (m *Module) String() string {
	var b strings.Builder
	if m.Name != "" {
		b.WriteString("module " + m.Name + " where ")
	}
	b.WriteString("{")
	first := true
	writeSep := func() {
		if !first {
			b.WriteString("; ")
		}
		first = false
	}
	for _, d := range m.DataDefinitions {
		writeSep()
		b.WriteString(d.String())
	}
	for _, c := range m.Classes {
		writeSep()
		b.WriteString(c.String())
	}
	for _, i := range m.Instances {
		writeSep()
		b.WriteString(i.String())
	}
	for _, td := range m.TypeDeclarations {
		writeSep()
		b.WriteString(td.String())
	}
	for _, bd := range m.Bindings {
		writeSep()
		b.WriteString(bd.String())
	}
	b.WriteString("}")
	return b.String()
}

// Binding is a single top-level or instance-level "name args = expr"
// declaration, plus the type declaration it was matched against, if any.
type Binding struct {
	Name       string
	Params     []string
	Expression Typed[Expr]
	TypeDecl   *TypeDeclaration
}

func (b *Binding) String() string {
	out := b.Name
	for _, p := range b.Params {
		out += " " + p
	}
	return out + " = " + b.Expression.String()
}

// TypeDeclaration is a "name :: context => type" signature.
type TypeDeclaration struct {
	Name    string
	Context []*TypeOperator
	Typ     Type
}

func (td *TypeDeclaration) String() string {
	out := td.Name + " :: "
	if len(td.Context) > 0 {
		parts := make([]string, len(td.Context))
		for i, c := range td.Context {
			parts[i] = c.String()
		}
		out += "(" + strings.Join(parts, ", ") + ") => "
	}
	return out + td.Typ.String()
}

// Class is a "class Name var where { decl; ... }" declaration.
type Class struct {
	Name         string
	Var          string
	Declarations []*TypeDeclaration
}

func (c *Class) String() string {
	var parts []string
	for _, d := range c.Declarations {
		parts = append(parts, d.String())
	}
	return "class " + c.Name + " " + c.Var + " where {" + strings.Join(parts, "; ") + "}"
}

// Instance is an "instance Class Type where { binding; ... }" declaration.
type Instance struct {
	ClassName string
	Typ       *TypeOperator
	Bindings  []*Binding
}

func (i *Instance) String() string {
	var parts []string
	for _, b := range i.Bindings {
		parts = append(parts, b.String())
	}
	return "instance " + i.ClassName + " " + i.Typ.String() + " where {" + strings.Join(parts, "; ") + "}"
}

// DataDefinition is a "data Name params = Ctor1 | Ctor2 | ..." declaration.
type DataDefinition struct {
	Typ          *TypeOperator
	Parameters   map[string]Type
	Constructors []*Constructor
}

func (d *DataDefinition) String() string {
	var parts []string
	for _, c := range d.Constructors {
		parts = append(parts, c.String())
	}
	return "data " + d.Typ.String() + " = " + strings.Join(parts, " | ")
}

// Constructor is one alternative of a data definition.
type Constructor struct {
	Name  string
	Typ   Type
	Tag   int
	Arity int
}

func (c *Constructor) String() string {
	return c.Name
}
