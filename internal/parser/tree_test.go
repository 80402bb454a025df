package parser

import (
	"testing"

	"github.com/cwbudde/go-xpr/internal/lexer"
	"github.com/cwbudde/go-xpr/internal/operator"
)

func build(t *testing.T, src string) *operator.Node {
	t.Helper()
	ops, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("lex %q: %v", src, err)
	}
	root, err := Build(ops)
	if err != nil {
		t.Fatalf("build %q: %v", src, err)
	}
	return root
}

func TestPrecedenceClimbing(t *testing.T) {
	// "1 + 2 * 3" must become Add(1, Mul(2, 3)), not Mul(Add(1, 2), 3).
	root := build(t, "1 + 2 * 3")
	if root.Operator.Kind != operator.KindAdd {
		t.Fatalf("root should be Add, got %s", root.Operator.Kind)
	}
	if len(root.Children) != 2 {
		t.Fatalf("Add should have 2 children, got %d", len(root.Children))
	}
	rhs := root.Children[1]
	if rhs.Operator.Kind != operator.KindMul {
		t.Fatalf("right child of Add should be Mul, got %s", rhs.Operator.Kind)
	}
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	// "(1 + 2) * 3" must become Mul(Add(1, 2), 3).
	root := build(t, "(1 + 2) * 3")
	if root.Operator.Kind != operator.KindMul {
		t.Fatalf("root should be Mul, got %s", root.Operator.Kind)
	}
	lhs := root.Children[0]
	if lhs.Operator.Kind != operator.KindAdd {
		t.Fatalf("left child of Mul should be Add, got %s", lhs.Operator.Kind)
	}
}

func TestFunctionCallArguments(t *testing.T) {
	root := build(t, "min(1, 2, 3)")
	if root.Operator.Kind != operator.KindFunction || root.Operator.Name != "min" {
		t.Fatalf("root should be Function(min), got %#v", root.Operator)
	}
	if len(root.Children) != 3 {
		t.Fatalf("expected 3 arguments, got %d", len(root.Children))
	}
}

func TestNestedDotChain(t *testing.T) {
	// "a.b.c" builds as Dot(Dot(a, b), c): chained dots nest rather than
	// flatten, since each new "." either robs or wraps the prior (closed)
	// Dot node exactly like any other climbable operator.
	root := build(t, "a.b.c")
	if root.Operator.Kind != operator.KindDot {
		t.Fatalf("root should be Dot, got %s", root.Operator.Kind)
	}
	if len(root.Children) != 2 {
		t.Fatalf("outer Dot should have 2 children, got %d", len(root.Children))
	}
	inner := root.Children[0]
	if inner.Operator.Kind != operator.KindDot {
		t.Fatalf("first child should be the inner Dot, got %s", inner.Operator.Kind)
	}
	last := root.Children[1]
	if !last.Operator.IsIdentifier() || last.Operator.Name != "c" {
		t.Fatalf("second child should be Identifier(c), got %#v", last.Operator)
	}
}

func TestIndexExpression(t *testing.T) {
	root := build(t, "a[1 + 1]")
	if !root.IsLeftSquareBracket() {
		t.Fatalf("root should be LeftSquareBracket, got %s", root.Operator.Kind)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected subject + index child, got %d", len(root.Children))
	}
	if root.Children[1].Operator.Kind != operator.KindAdd {
		t.Fatalf("index expression should itself be a tree, got %s", root.Children[1].Operator.Kind)
	}
}

func TestUnpairedParenthesisFailsAtLex(t *testing.T) {
	if _, err := lexer.Lex("(1 + 2"); err == nil {
		t.Error("expected a lex-level UnpairedBrackets error")
	}
}

func TestLeadingOperatorIsRejected(t *testing.T) {
	ops, err := lexer.Lex("* 3")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if _, err := Build(ops); err == nil {
		t.Error("expected StartWithNonValueOperator")
	}
}

func TestUnaryMinus(t *testing.T) {
	root := build(t, "-3")
	if root.Operator.Kind != operator.KindSub {
		t.Fatalf("unary minus should build a Sub node, got %s", root.Operator.Kind)
	}
	if len(root.Children) != 1 {
		t.Fatalf("unary Sub should have exactly 1 child, got %d", len(root.Children))
	}
}
