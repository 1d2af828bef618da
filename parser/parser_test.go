package parser

import (
	"reflect"
	"testing"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/debug"
	"github.com/wisplang/wisp/source"
)

func parseModule(t *testing.T, src string) *ast.Module {
	t.Helper()
	mod, err := ParseModule(source.NewString(src))
	if err != nil {
		t.Fatalf("ParseModule(%q): %v", src, err)
	}
	return mod
}

func singleBinding(t *testing.T, src string) ast.Expr {
	t.Helper()
	mod := parseModule(t, "{ x = "+src+" }")
	if len(mod.Bindings) != 1 {
		t.Fatalf("expected 1 binding, got %d", len(mod.Bindings))
	}
	return mod.Bindings[0].Expression.Value
}

func TestApplicationNesting(t *testing.T) {
	got := singleBinding(t, "2+3")
	want := ast.Apply(ast.Apply(ast.Ident("+"), ast.Num(2)), ast.Num(3))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got:\n%s\nwant:\n%s", debug.Sdump(mustExpr(got)), debug.Sdump(mustExpr(want)))
	}
}

func TestListDesugarsToConsChain(t *testing.T) {
	got := singleBinding(t, "[1,2,3]")
	want := ast.Apply(ast.Apply(ast.Ident(":"), ast.Num(1)),
		ast.Apply(ast.Apply(ast.Ident(":"), ast.Num(2)),
			ast.Apply(ast.Apply(ast.Ident(":"), ast.Num(3)), ast.Ident("[]"))))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got:\n%s\nwant:\n%s", debug.Sdump(mustExpr(got)), debug.Sdump(mustExpr(want)))
	}
}

func TestEmptyListClosesBracket(t *testing.T) {
	mod := parseModule(t, "{ x = []; y = 1 }")
	if len(mod.Bindings) != 2 {
		t.Fatalf("expected both bindings to parse, got %d", len(mod.Bindings))
	}
	if !reflect.DeepEqual(mod.Bindings[0].Expression.Value, ast.Ident("[]")) {
		t.Errorf("x = %s, want []", mod.Bindings[0].Expression.Value)
	}
}

func TestDataDefinitionTagsConstructorsInOrder(t *testing.T) {
	mod := parseModule(t, "{ data Maybe a = Nothing | Just a }")
	if len(mod.DataDefinitions) != 1 {
		t.Fatalf("expected 1 data definition, got %d", len(mod.DataDefinitions))
	}
	def := mod.DataDefinitions[0]
	if def.Typ.Name != "Maybe" {
		t.Errorf("type name = %q, want Maybe", def.Typ.Name)
	}
	if len(def.Constructors) != 2 {
		t.Fatalf("expected 2 constructors, got %d", len(def.Constructors))
	}
	nothing, just := def.Constructors[0], def.Constructors[1]
	if nothing.Name != "Nothing" || nothing.Tag != 0 || nothing.Arity != 0 {
		t.Errorf("Nothing = %+v", nothing)
	}
	if just.Name != "Just" || just.Tag != 1 || just.Arity != 1 {
		t.Errorf("Just = %+v", just)
	}
}

func TestLeftSectionBuildsLambda(t *testing.T) {
	got := singleBinding(t, "(+ 1)")
	want := ast.Lambda("#", ast.Apply(ast.Apply(ast.Ident("+"), ast.Ident("#")), ast.Num(1)))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got:\n%s\nwant:\n%s", debug.Sdump(mustExpr(got)), debug.Sdump(mustExpr(want)))
	}
}

func TestRightSectionBuildsLambda(t *testing.T) {
	got := singleBinding(t, "(1 +)")
	want := ast.Lambda("#", ast.Apply(ast.Apply(ast.Ident("+"), ast.Num(1)), ast.Ident("#")))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got:\n%s\nwant:\n%s", debug.Sdump(mustExpr(got)), debug.Sdump(mustExpr(want)))
	}
}

// TestOperatorPrecedence checks that '*' binds tighter than '+', so
// "2+3*4" parses as "2+(3*4)" rather than left-to-right application order.
func TestOperatorPrecedence(t *testing.T) {
	got := singleBinding(t, "2+3*4")
	mul := ast.Apply(ast.Apply(ast.Ident("*"), ast.Num(3)), ast.Num(4))
	want := ast.Apply(ast.Apply(ast.Ident("+"), ast.Num(2)), mul)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got:\n%s\nwant:\n%s", debug.Sdump(mustExpr(got)), debug.Sdump(mustExpr(want)))
	}
}

func TestOperatorPrecedenceWithExplicitGrouping(t *testing.T) {
	got := singleBinding(t, "(2+3)*4")
	add := ast.Apply(ast.Apply(ast.Ident("+"), ast.Num(2)), ast.Num(3))
	want := ast.Apply(ast.Apply(ast.Ident("*"), add), ast.Num(4))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got:\n%s\nwant:\n%s", debug.Sdump(mustExpr(got)), debug.Sdump(mustExpr(want)))
	}
}

func TestUnaryMinusRewritesToNegate(t *testing.T) {
	got := singleBinding(t, "-5")
	want := ast.Apply(ast.Ident("negate"), ast.Num(5))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got:\n%s\nwant:\n%s", debug.Sdump(mustExpr(got)), debug.Sdump(mustExpr(want)))
	}
}

func TestTupleDesugarsToConstructorApplication(t *testing.T) {
	got := singleBinding(t, "(1, 2)")
	want := ast.Apply(ast.Apply(ast.Ident("(,)"), ast.Num(1)), ast.Num(2))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got:\n%s\nwant:\n%s", debug.Sdump(mustExpr(got)), debug.Sdump(mustExpr(want)))
	}
}

func TestLetExpression(t *testing.T) {
	got := singleBinding(t, "let { y = 1 } in y")
	want := ast.Let([]ast.LetBinding{{Name: "y", Value: ast.Num(1)}}, ast.Ident("y"))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got:\n%s\nwant:\n%s", debug.Sdump(mustExpr(got)), debug.Sdump(mustExpr(want)))
	}
}

func TestCaseExpression(t *testing.T) {
	got := singleBinding(t, "case xs of { [] -> 0; : y ys -> y }")
	want := ast.Case(ast.Ident("xs"), []ast.Alternative{
		{Pattern: ast.ConstructorPat("[]", nil), Body: ast.Num(0)},
		{Pattern: ast.ConstructorPat(":", []ast.Pattern{ast.IdentPattern("y"), ast.IdentPattern("ys")}), Body: ast.Ident("y")},
	})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got:\n%s\nwant:\n%s", debug.Sdump(mustExpr(got)), debug.Sdump(mustExpr(want)))
	}
}

func TestBindingParamsKeptSeparate(t *testing.T) {
	mod := parseModule(t, "{ add x y = x + y }")
	b := mod.Bindings[0]
	if b.Name != "add" {
		t.Fatalf("name = %q, want add", b.Name)
	}
	if !reflect.DeepEqual(b.Params, []string{"x", "y"}) {
		t.Errorf("params = %v, want [x y]", b.Params)
	}
	want := ast.Apply(ast.Apply(ast.Ident("+"), ast.Ident("x")), ast.Ident("y"))
	if !reflect.DeepEqual(b.Expression.Value, want) {
		t.Errorf("body = %s, want %s", debug.ToString(mustExpr(b.Expression.Value)), debug.ToString(mustExpr(want)))
	}
}

func TestTypeDeclarationMatchedToBinding(t *testing.T) {
	mod := parseModule(t, "{ id :: a -> a; id x = x }")
	if len(mod.Bindings) != 1 {
		t.Fatalf("expected 1 binding, got %d", len(mod.Bindings))
	}
	b := mod.Bindings[0]
	if b.TypeDecl == nil {
		t.Fatal("expected binding to have its type declaration attached")
	}
	if b.TypeDecl.Name != "id" {
		t.Errorf("type decl name = %q, want id", b.TypeDecl.Name)
	}
}

func TestInstanceBindingNameIsEncoded(t *testing.T) {
	mod := parseModule(t, `{
		class Eq a where { eq :: a -> a -> a };
		instance Eq Int where { eq x y = x }
	}`)
	if len(mod.Instances) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(mod.Instances))
	}
	inst := mod.Instances[0]
	if len(inst.Bindings) != 1 {
		t.Fatalf("expected 1 instance binding, got %d", len(inst.Bindings))
	}
	want := DefaultInstanceEncoder("Int", "eq")
	if inst.Bindings[0].Name != want {
		t.Errorf("instance binding name = %q, want %q", inst.Bindings[0].Name, want)
	}
}

func TestParseErrorOnMissingExpression(t *testing.T) {
	_, err := ParseModule(source.NewString("{ x = }"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
}

// mustExpr narrows an ast.Expr back to ast.Node for debug.Sdump, which
// takes the wider interface so it can also render modules and patterns.
func mustExpr(e ast.Expr) ast.Node { return e }
