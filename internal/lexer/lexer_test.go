package lexer

import (
	"testing"

	"github.com/cwbudde/go-xpr/internal/operator"
)

func kinds(ops []operator.Operator) []operator.Kind {
	out := make([]operator.Kind, len(ops))
	for i, op := range ops {
		out[i] = op.Kind
	}
	return out
}

func kindsEqual(t *testing.T, got []operator.Kind, want []operator.Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("at %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexArithmetic(t *testing.T) {
	ops, err := Lex("1 + 2 * 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kindsEqual(t, kinds(ops), []operator.Kind{
		operator.KindIdentifier, operator.KindAdd, operator.KindIdentifier,
		operator.KindMul, operator.KindIdentifier,
	})
}

func TestLexTwoCharOperators(t *testing.T) {
	cases := map[string]operator.Kind{
		"a == b": operator.KindEq,
		"a != b": operator.KindNe,
		"a >= b": operator.KindGe,
		"a <= b": operator.KindLe,
		"a && b": operator.KindAnd,
		"a || b": operator.KindOr,
	}
	for src, want := range cases {
		ops, err := Lex(src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", src, err)
		}
		if len(ops) != 3 || ops[1].Kind != want {
			t.Errorf("%q: got %v, want middle operator %s", src, kinds(ops), want)
		}
	}
}

func TestLexStandaloneEqualsRejected(t *testing.T) {
	if _, err := Lex("a = b"); err == nil {
		t.Error("a lone '=' should be rejected as UnsupportedOperator")
	}
}

func TestLexMismatchedAmpersandRejected(t *testing.T) {
	if _, err := Lex("a & b"); err == nil {
		t.Error("a lone '&' should be rejected")
	}
}

func TestLexUnpairedBrackets(t *testing.T) {
	if _, err := Lex("(1 + 2"); err == nil {
		t.Error("expected UnpairedBrackets")
	}
}

func TestLexDoubleQuotedStringPreservesOperatorChars(t *testing.T) {
	ops, err := Lex(`"a + b"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ops) != 1 || ops[0].Kind != operator.KindValue || ops[0].Literal.Str() != "a + b" {
		t.Errorf("got %#v", ops)
	}
}

func TestLexIdentifierFollowedByParenBecomesFunction(t *testing.T) {
	ops, err := Lex("min(1,2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ops[0].Kind != operator.KindFunction || ops[0].Name != "min" {
		t.Errorf("got %#v, want Function(\"min\")", ops[0])
	}
}

func TestLexDotIsNotSwallowedByNumberAccumulation(t *testing.T) {
	ops, err := Lex("a.b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kindsEqual(t, kinds(ops), []operator.Kind{
		operator.KindIdentifier, operator.KindDot, operator.KindIdentifier,
	})
}

func TestLexNumberAccumulation(t *testing.T) {
	ops, err := Lex("3.14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ops) != 1 || ops[0].Kind != operator.KindIdentifier || ops[0].Name != "3.14" {
		t.Errorf("got %#v, want a single accumulated \"3.14\" identifier", ops)
	}
}
