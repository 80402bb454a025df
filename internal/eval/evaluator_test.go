package eval

import (
	"testing"

	"github.com/cwbudde/go-xpr/internal/lexer"
	"github.com/cwbudde/go-xpr/internal/parser"
	"github.com/cwbudde/go-xpr/internal/value"
)

func evalExpr(t *testing.T, src string, ctx Contexts) (*value.Value, error) {
	t.Helper()
	ops, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("lex %q: %v", src, err)
	}
	root, err := parser.Build(ops)
	if err != nil {
		t.Fatalf("build %q: %v", src, err)
	}
	ev := New(ctx, nil, nil)
	return ev.Eval(root)
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		src      string
		wantKind value.Kind
		wantStr  string
	}{
		{"1 + 2 * 3", value.KindUint64, "7"},
		{"(1 + 2) * 3", value.KindUint64, "9"},
		{"10 % 3", value.KindUint64, "1"},
		{"(-3) + 5", value.KindInt64, "2"},
	}
	for _, c := range cases {
		v, err := evalExpr(t, c.src, nil)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.src, err)
		}
		if v.Kind() != c.wantKind {
			t.Errorf("%q: got kind %s, want %s", c.src, v.Kind(), c.wantKind)
		}
	}
}

// TestUnaryFollowedByBinaryWithoutParens documents a real quirk of the
// stack-based climber: a bare unary Sub/Add left incomplete on the stack
// satisfies can_at_beginning, so a following binary operator of any
// priority is pushed as a sibling rather than robbing or wrapping the
// unary node. The unary node only picks up its "second operand" at final
// collapse, nesting the following operator's (incomplete) subtree as its
// right child. "-3 + 5" therefore builds as Sub(3, UnaryPlus(5)), i.e.
// 3 - 5 = -2, not the 2 a left-to-right reading would suggest. Both
// literals are uint64, and a uint64 subtraction that goes below zero
// promotes to float64, so the value is the float -2. Writing
// "(-3) + 5" (see TestArithmetic) sidesteps this by closing the unary
// Sub inside parentheses before "+" arrives.
func TestUnaryFollowedByBinaryWithoutParens(t *testing.T) {
	v, err := evalExpr(t, "-3 + 5", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsNumeric() || v.Float64Value() != -2 {
		t.Errorf("got %#v, want -2 (see comment on this test for why)", v)
	}
}

func TestUnaryNot(t *testing.T) {
	v, err := evalExpr(t, "!(1 == 1)", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != value.KindBool || v.Bool() != false {
		t.Errorf("got %#v, want false", v)
	}
}

func TestNotOnNullIsTrue(t *testing.T) {
	v, err := evalExpr(t, "!nope", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != value.KindBool || v.Bool() != true {
		t.Errorf("got %#v, want true (Not treats an unresolved/null identifier as true)", v)
	}
}

func TestIdentifierLookup(t *testing.T) {
	ctx := Contexts{{"x": value.Int64(41)}}
	v, err := evalExpr(t, "x + 1", ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != value.KindInt64 {
		t.Fatalf("got kind %s", v.Kind())
	}
}

func TestIdentifierShadowingInnermostWins(t *testing.T) {
	ctx := Contexts{
		{"x": value.Int64(1)},
		{"x": value.Int64(2)},
	}
	v, err := evalExpr(t, "x", ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := v.AsIndex()
	if got != 2 {
		t.Errorf("innermost context should win, got %v", got)
	}
}

func TestUnresolvedIdentifierIsNull(t *testing.T) {
	v, err := evalExpr(t, "nope", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsNull() {
		t.Errorf("got %#v, want null", v)
	}
}

func TestRangeLiteral(t *testing.T) {
	v, err := evalExpr(t, "1..4", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != value.KindArray || v.ArrayLen() != 3 {
		t.Fatalf("got %#v, want [1,2,3]", v)
	}
	first, _ := v.ArrayGet(0).AsIndex()
	last, _ := v.ArrayGet(2).AsIndex()
	if first != 1 || last != 3 {
		t.Errorf("got bounds %d..%d, want 1..3", first, last)
	}
}

func TestDotMemberAccess(t *testing.T) {
	obj := value.NewObject()
	inner := value.NewObject()
	inner.ObjectSet("name", value.String("ok"))
	obj.ObjectSet("user", inner)
	ctx := Contexts{{"root": obj}}
	v, err := evalExpr(t, "root.user.name", ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != value.KindString || v.Str() != "ok" {
		t.Errorf("got %#v, want \"ok\"", v)
	}
}

func TestDotMissingIntermediateYieldsNull(t *testing.T) {
	obj := value.NewObject()
	ctx := Contexts{{"root": obj}}
	v, err := evalExpr(t, "root.missing.deeper", ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsNull() {
		t.Errorf("got %#v, want null", v)
	}
}

func TestIndexArray(t *testing.T) {
	arr := value.NewArray([]*value.Value{value.Int64(10), value.Int64(20), value.Int64(30)})
	ctx := Contexts{{"xs": arr}}
	v, err := evalExpr(t, "xs[1]", ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := v.AsIndex()
	if got != 20 {
		t.Errorf("got %v, want 20", got)
	}
}

func TestIndexOutOfBoundsIsNull(t *testing.T) {
	arr := value.NewArray([]*value.Value{value.Int64(10)})
	ctx := Contexts{{"xs": arr}}
	v, err := evalExpr(t, "xs[5]", ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsNull() {
		t.Errorf("got %#v, want null", v)
	}
}

func TestFunctionCallBuiltinMin(t *testing.T) {
	v, err := evalExpr(t, "min(3, 1, 2)", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := v.AsIndex()
	if got != 1 {
		t.Errorf("got %v, want 1", got)
	}
}

func TestFunctionNotExists(t *testing.T) {
	if _, err := evalExpr(t, "nope(1)", nil); err == nil {
		t.Error("expected FunctionNotExists")
	}
}

func TestUserFunctionPriorityOverBuiltin(t *testing.T) {
	ops, err := lexer.Lex("min(1,2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root, err := parser.Build(ops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	called := false
	ev := New(nil, map[string]Function{
		"min": {Call: func(args []*value.Value) (*value.Value, error) {
			called = true
			return value.String("overridden"), nil
		}},
	}, nil)
	v, err := ev.Eval(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called || v.Str() != "overridden" {
		t.Error("user function should take priority over the builtin of the same name")
	}
}

func TestArgumentArityErrors(t *testing.T) {
	if _, err := evalExpr(t, "len(1, 2)", nil); err == nil {
		t.Error("expected ArgumentsGreater for len() with 2 args")
	}
	if _, err := evalExpr(t, "array()", nil); err != nil {
		t.Errorf("array() with 0 args should be fine, got %v", err)
	}
}
