package value

import (
	"math"
	"strconv"

	"github.com/cwbudde/go-xpr/internal/xerr"
	"golang.org/x/text/unicode/norm"
)

// Add implements "+": numeric addition when both sides are numeric,
// string concatenation (of the stringified forms) when either side is a
// string. Arrays and objects never participate: either one as an operand
// fails with a Custom "invalid operation" error.
func (v *Value) Add(rhs *Value) (*Value, error) {
	for _, k := range []Kind{v.Kind(), rhs.Kind()} {
		if k == KindArray || k == KindObject {
			return nil, xerr.NewCustom("invalid operation: add does not accept arrays or objects")
		}
	}
	if v.Kind() == KindString || rhs.Kind() == KindString {
		return String(v.stringify() + rhs.stringify()), nil
	}
	return numericOp(v, rhs, "add", func(a, b int64) (int64, bool) { return a + b, true },
		func(a, b uint64) (uint64, bool) { return a + b, true },
		func(a, b float64) float64 { return a + b })
}

// Sub implements "-": numeric subtraction only.
func (v *Value) Sub(rhs *Value) (*Value, error) {
	return numericOp(v, rhs, "sub", func(a, b int64) (int64, bool) { return a - b, true },
		func(a, b uint64) (uint64, bool) { return a - b, a >= b },
		func(a, b float64) float64 { return a - b })
}

// Mul implements "*": numeric multiplication only.
func (v *Value) Mul(rhs *Value) (*Value, error) {
	return numericOp(v, rhs, "mul", func(a, b int64) (int64, bool) { return a * b, true },
		func(a, b uint64) (uint64, bool) { return a * b, true },
		func(a, b float64) float64 { return a * b })
}

// Div implements "/": numeric division only. Division by zero fails with
// a Custom error regardless of operand kind.
func (v *Value) Div(rhs *Value) (*Value, error) {
	if isZero(rhs) {
		return nil, xerr.NewCustom("divide by zero")
	}
	return numericOp(v, rhs, "div", func(a, b int64) (int64, bool) { return a / b, true },
		func(a, b uint64) (uint64, bool) { return a / b, true },
		func(a, b float64) float64 { return a / b })
}

// Rem implements "%": numeric remainder only. Remainder by zero fails with
// a Custom error.
func (v *Value) Rem(rhs *Value) (*Value, error) {
	if isZero(rhs) {
		return nil, xerr.NewCustom("divide by zero")
	}
	return numericOp(v, rhs, "rem", func(a, b int64) (int64, bool) { return a % b, true },
		func(a, b uint64) (uint64, bool) { return a % b, true },
		math.Mod)
}

// Neg implements unary "-": numeric negation only. A Uint64 operand that
// doesn't fit in an int64 after negation promotes to float64, the same
// overflow fallback numericOp uses for binary arithmetic.
func (v *Value) Neg() (*Value, error) {
	switch v.Kind() {
	case KindInt64:
		return Int64(-v.i64), nil
	case KindUint64:
		if v.u64 <= 1<<63 {
			return Int64(-int64(v.u64)), nil
		}
		return Float64(-float64(v.u64)), nil
	case KindFloat64:
		return Float64(-v.f64), nil
	default:
		return nil, xerr.NewCustom("invalid operation: unary - requires a numeric operand")
	}
}

// UnaryPlus implements unary "+", a no-op on a numeric operand (spec
// §3: "unary plus treated as no-op").
func (v *Value) UnaryPlus() (*Value, error) {
	if !v.IsNumeric() {
		return nil, xerr.NewCustom("invalid operation: unary + requires a numeric operand")
	}
	return v.Clone(), nil
}

func isZero(v *Value) bool {
	switch v.Kind() {
	case KindInt64:
		return v.i64 == 0
	case KindUint64:
		return v.u64 == 0
	case KindFloat64:
		return v.f64 == 0
	default:
		return false
	}
}

// numericOp dispatches a binary arithmetic operator across the three
// numeric subtypes: both-float (or mixed-with-float) promotes to float64;
// both-uint64 stays uint64; otherwise the operands are treated as int64.
// This mirrors the spec's "integer-vs-integer stays integer; any float
// participation promotes to float" rule, with uint64-vs-uint64 kept
// unsigned so large unsigned literals don't silently become negative.
func numericOp(v, rhs *Value, name string,
	intOp func(a, b int64) (int64, bool),
	uintOp func(a, b uint64) (uint64, bool),
	floatOp func(a, b float64) float64,
) (*Value, error) {
	if !v.IsNumeric() || !rhs.IsNumeric() {
		return nil, xerr.NewCustom("invalid operation: " + name + " requires numeric operands")
	}
	if v.Kind() == KindFloat64 || rhs.Kind() == KindFloat64 {
		return Float64(floatOp(v.Float64Value(), rhs.Float64Value())), nil
	}
	if v.Kind() == KindUint64 && rhs.Kind() == KindUint64 {
		r, ok := uintOp(v.u64, rhs.u64)
		if !ok {
			return Float64(floatOp(v.Float64Value(), rhs.Float64Value())), nil
		}
		return Uint64(r), nil
	}
	a, aok := asInt64(v)
	b, bok := asInt64(rhs)
	if !aok || !bok {
		return Float64(floatOp(v.Float64Value(), rhs.Float64Value())), nil
	}
	r, ok := intOp(a, b)
	if !ok {
		return Float64(floatOp(v.Float64Value(), rhs.Float64Value())), nil
	}
	return Int64(r), nil
}

func asInt64(v *Value) (int64, bool) {
	switch v.Kind() {
	case KindInt64:
		return v.i64, true
	case KindUint64:
		if v.u64 > 1<<63-1 {
			return 0, false
		}
		return int64(v.u64), true
	default:
		return 0, false
	}
}

func (v *Value) stringify() string {
	switch v.Kind() {
	case KindString:
		return v.str
	case KindInt64:
		return strconv.FormatInt(v.i64, 10)
	case KindUint64:
		return strconv.FormatUint(v.u64, 10)
	case KindFloat64:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNull:
		return "null"
	default:
		return ""
	}
}

// Eq implements "==": total equality. Numbers compare by numeric value
// regardless of signed/unsigned/float subtype, arrays/objects compare
// deeply, and values of incompatible kinds are simply unequal (never an
// error).
func (v *Value) Eq(rhs *Value) (*Value, error) {
	return Bool(valuesEqual(v, rhs)), nil
}

// Ne implements "!=", the negation of Eq.
func (v *Value) Ne(rhs *Value) (*Value, error) {
	return Bool(!valuesEqual(v, rhs)), nil
}

func valuesEqual(a, b *Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		return numericEqual(a, b)
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !valuesEqual(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.objEntries) != len(b.objEntries) {
			return false
		}
		for k, av := range a.objEntries {
			bv, ok := b.objEntries[k]
			if !ok || !valuesEqual(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func numericEqual(a, b *Value) bool {
	if a.Kind() == KindFloat64 || b.Kind() == KindFloat64 {
		return a.Float64Value() == b.Float64Value()
	}
	if a.Kind() == KindUint64 && b.Kind() == KindUint64 {
		return a.u64 == b.u64
	}
	ai, aok := asInt64(a)
	bi, bok := asInt64(b)
	if aok && bok {
		return ai == bi
	}
	return a.Float64Value() == b.Float64Value()
}

// Gt implements ">", defined for numbers and strings (lexicographic).
func (v *Value) Gt(rhs *Value) (*Value, error) {
	c, err := compare(v, rhs)
	if err != nil {
		return nil, err
	}
	return Bool(c > 0), nil
}

// Lt implements "<".
func (v *Value) Lt(rhs *Value) (*Value, error) {
	c, err := compare(v, rhs)
	if err != nil {
		return nil, err
	}
	return Bool(c < 0), nil
}

// Ge implements ">=".
func (v *Value) Ge(rhs *Value) (*Value, error) {
	c, err := compare(v, rhs)
	if err != nil {
		return nil, err
	}
	return Bool(c >= 0), nil
}

// Le implements "<=".
func (v *Value) Le(rhs *Value) (*Value, error) {
	c, err := compare(v, rhs)
	if err != nil {
		return nil, err
	}
	return Bool(c <= 0), nil
}

// compare returns -1/0/1 for numbers and strings; any other kind pairing
// (including cross-kind) fails with ExpectedNumber.
func compare(a, b *Value) (int, error) {
	if a.IsNumeric() && b.IsNumeric() {
		af, bf := a.Float64Value(), b.Float64Value()
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if a.Kind() == KindString && b.Kind() == KindString {
		return compareStrings(a.str, b.str), nil
	}
	return 0, xerr.NewExpectedNumber()
}

// compareStrings performs NFC-normalized lexicographic comparison so that
// visually identical strings built from different Unicode decompositions
// still order consistently, the way an internationalized rule engine
// embedding this evaluator would expect.
func compareStrings(a, b string) int {
	na := norm.NFC.String(a)
	nb := norm.NFC.String(b)
	switch {
	case na < nb:
		return -1
	case na > nb:
		return 1
	default:
		return 0
	}
}

// And implements "&&". Both operands must be booleans; this is strict,
// not short-circuit — both sides are expected to already be evaluated by
// the caller (the evaluator may choose to short-circuit before calling
// And, as long as that doesn't change results on total expressions).
func (v *Value) And(rhs *Value) (*Value, error) {
	a, err := asBoolStrict(v)
	if err != nil {
		return nil, err
	}
	b, err := asBoolStrict(rhs)
	if err != nil {
		return nil, err
	}
	return Bool(a && b), nil
}

// Or implements "||", the strict dual of And.
func (v *Value) Or(rhs *Value) (*Value, error) {
	a, err := asBoolStrict(v)
	if err != nil {
		return nil, err
	}
	b, err := asBoolStrict(rhs)
	if err != nil {
		return nil, err
	}
	return Bool(a || b), nil
}

// asBoolStrict requires an actual boolean: unlike Not, And/Or do not treat
// Null as false. This asymmetry is by design (see spec §4.1).
func asBoolStrict(v *Value) (bool, error) {
	if v.Kind() != KindBool {
		return false, xerr.NewExpectedBoolean(v.Kind().String())
	}
	return v.b, nil
}

// Not implements logical negation: inverts a bool, treats Null as true,
// and fails with ExpectedBoolean for anything else.
func (v *Value) Not() (*Value, error) {
	switch v.Kind() {
	case KindBool:
		return Bool(!v.b), nil
	case KindNull:
		return Bool(true), nil
	default:
		return nil, xerr.NewExpectedBoolean(v.Kind().String())
	}
}
