package operator

import "testing"

func TestPriorityOrdering(t *testing.T) {
	// spec §3: Or < And < comparisons < Add/Sub < Mul/Div/Rem < Not < Dot/[
	if !(Simple(KindOr).Priority() < Simple(KindAnd).Priority()) {
		t.Error("Or must bind looser than And")
	}
	if !(Simple(KindAnd).Priority() < Simple(KindEq).Priority()) {
		t.Error("And must bind looser than Eq")
	}
	if !(Simple(KindEq).Priority() < Simple(KindAdd).Priority()) {
		t.Error("Eq must bind looser than Add")
	}
	if !(Simple(KindAdd).Priority() < Simple(KindMul).Priority()) {
		t.Error("Add must bind looser than Mul")
	}
	if !(Simple(KindMul).Priority() < Simple(KindDot).Priority()) {
		t.Error("Mul must bind looser than Dot")
	}
}

func TestMaxArgsBounded(t *testing.T) {
	n, ok := Simple(KindAdd).MaxArgs()
	if !ok || n != 2 {
		t.Errorf("Add should be bounded at 2, got %d/%v", n, ok)
	}
	if _, ok := Simple(KindDot).MaxArgs(); ok {
		t.Error("Dot should be unbounded")
	}
	if _, ok := Function("f").MaxArgs(); ok {
		t.Error("Function should be unbounded")
	}
}

func TestCanAtBeginning(t *testing.T) {
	for _, k := range []Kind{KindSub, KindNot, KindAdd, KindLeftParenthesis} {
		if !Simple(k).CanAtBeginning() {
			t.Errorf("%s should be able to start an expression", k)
		}
	}
	if Simple(KindMul).CanAtBeginning() {
		t.Error("Mul should not be able to start an expression")
	}
}

func TestEqualComparesPayload(t *testing.T) {
	if !Identifier("x").Equal(Identifier("x")) {
		t.Error("identical identifiers should be equal")
	}
	if Identifier("x").Equal(Identifier("y")) {
		t.Error("different identifiers should not be equal")
	}
	if !Simple(KindLeftParenthesis).Equal(Simple(KindLeftParenthesis)) {
		t.Error("identical simple operators should be equal")
	}
}
