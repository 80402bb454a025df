// Package operator defines the tagged-union Operator type the lexer
// produces and the tree builder consumes, along with the Node type that
// assembles operators into an operator tree. It mirrors go-dws's
// token_type.go in spirit (a closed enum with classification helpers) but
// adds the priority/arity metadata the expression grammar's
// precedence-climbing builder needs.
package operator

import "github.com/cwbudde/go-xpr/internal/value"

// Kind enumerates every operator the lexer can emit.
type Kind uint8

const (
	KindValue Kind = iota
	KindIdentifier
	KindFunction

	KindAdd
	KindSub
	KindMul
	KindDiv
	KindRem
	KindNot

	KindEq
	KindNe
	KindGt
	KindLt
	KindGe
	KindLe

	KindAnd
	KindOr

	KindDot
	KindLeftSquareBracket
	KindRightSquareBracket

	KindLeftParenthesis
	KindRightParenthesis

	KindComma
	KindWhiteSpace
	KindDoubleQuotes
	KindSingleQuote
)

// String names a Kind for diagnostics and error messages.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "Value"
	case KindIdentifier:
		return "Identifier"
	case KindFunction:
		return "Function"
	case KindAdd:
		return "+"
	case KindSub:
		return "-"
	case KindMul:
		return "*"
	case KindDiv:
		return "/"
	case KindRem:
		return "%"
	case KindNot:
		return "!"
	case KindEq:
		return "=="
	case KindNe:
		return "!="
	case KindGt:
		return ">"
	case KindLt:
		return "<"
	case KindGe:
		return ">="
	case KindLe:
		return "<="
	case KindAnd:
		return "&&"
	case KindOr:
		return "||"
	case KindDot:
		return "."
	case KindLeftSquareBracket:
		return "["
	case KindRightSquareBracket:
		return "]"
	case KindLeftParenthesis:
		return "("
	case KindRightParenthesis:
		return ")"
	case KindComma:
		return ","
	case KindWhiteSpace:
		return " "
	case KindDoubleQuotes:
		return "\""
	case KindSingleQuote:
		return "'"
	default:
		return "?"
	}
}

// Operator is the tagged union of everything the lexer can produce. Only
// the fields relevant to Kind are populated: Name for Identifier/Function,
// Literal for Value.
type Operator struct {
	Kind    Kind
	Name    string
	Literal *value.Value
}

// Value constructs a Value(v) operator.
func Value(v *value.Value) Operator { return Operator{Kind: KindValue, Literal: v} }

// Identifier constructs an Identifier(name) operator.
func Identifier(name string) Operator { return Operator{Kind: KindIdentifier, Name: name} }

// Function constructs a Function(name) operator.
func Function(name string) Operator { return Operator{Kind: KindFunction, Name: name} }

// Simple constructs a fixed operator of the given kind (anything without a
// Name/Literal payload: Add, Sub, Dot, LeftParenthesis, Comma, ...).
func Simple(k Kind) Operator { return Operator{Kind: k} }

// priority is the precedence-climbing table from spec §3: higher binds
// tighter. Operators not listed here (Value, Identifier, Function,
// brackets, Comma, whitespace, quotes) have no meaningful priority and
// return 0.
var priority = map[Kind]int{
	KindOr:                1,
	KindAnd:               2,
	KindEq:                3,
	KindNe:                3,
	KindGt:                3,
	KindLt:                3,
	KindGe:                3,
	KindLe:                3,
	KindAdd:               4,
	KindSub:               4,
	KindMul:               5,
	KindDiv:               5,
	KindRem:               5,
	KindNot:               6,
	KindDot:               7,
	KindLeftSquareBracket: 7,
}

// Priority returns the operator's climb priority, or 0 for operators that
// the builder never compares by priority.
func (o Operator) Priority() int { return priority[o.Kind] }

// maxArgs holds the bounded arities from spec §3. Unbounded operators
// (Dot, LeftSquareBracket, Function) are handled separately by MaxArgs.
var maxArgs = map[Kind]int{
	KindOr:  2,
	KindAnd: 2,
	KindEq:  2,
	KindNe:  2,
	KindGt:  2,
	KindLt:  2,
	KindGe:  2,
	KindLe:  2,
	KindAdd: 2,
	KindSub: 2,
	KindMul: 2,
	KindDiv: 2,
	KindRem: 2,
	KindNot: 1,

	// "(" is a marker on the builder stack: the grouped expression or the
	// call arguments sit above it as siblings, never as its children.
	KindLeftParenthesis: 0,
}

// MaxArgs reports the operator's maximum arity and whether it is bounded
// at all. Dot, LeftSquareBracket, and Function are unbounded (member
// chains and call argument lists grow without a fixed limit).
func (o Operator) MaxArgs() (n int, bounded bool) {
	switch o.Kind {
	case KindDot, KindLeftSquareBracket, KindFunction:
		return 0, false
	}
	n, ok := maxArgs[o.Kind]
	return n, ok
}

// CanAtBeginning reports whether the operator may legally start an
// expression or sub-expression: unary Sub/Not/Add, or a grouping "(".
func (o Operator) CanAtBeginning() bool {
	switch o.Kind {
	case KindSub, KindNot, KindLeftParenthesis, KindAdd:
		return true
	default:
		return false
	}
}

// CanHaveChild reports whether the operator can ever accept a child node:
// every bounded-arity operator with a non-zero max, plus Dot,
// LeftSquareBracket, and Function (whose arity is unbounded).
func (o Operator) CanHaveChild() bool {
	switch o.Kind {
	case KindDot, KindLeftSquareBracket, KindFunction:
		return true
	}
	n, ok := maxArgs[o.Kind]
	return ok && n > 0
}

// IsValueOrIdent reports whether the operator is a leaf value or identifier.
func (o Operator) IsValueOrIdent() bool {
	return o.Kind == KindValue || o.Kind == KindIdentifier
}

// IsLeft reports whether the operator opens a bracketed/argument region:
// "(", "[", or a function call head.
func (o Operator) IsLeft() bool {
	switch o.Kind {
	case KindLeftParenthesis, KindLeftSquareBracket, KindFunction:
		return true
	default:
		return false
	}
}

// IsDot reports whether the operator is Dot.
func (o Operator) IsDot() bool { return o.Kind == KindDot }

// IsLeftSquareBracket reports whether the operator is LeftSquareBracket.
func (o Operator) IsLeftSquareBracket() bool { return o.Kind == KindLeftSquareBracket }

// IsIdentifier reports whether the operator is an Identifier.
func (o Operator) IsIdentifier() bool { return o.Kind == KindIdentifier }

// LeftFor maps a closing bracket kind to the opening kind it must pair
// with: RightParenthesis -> LeftParenthesis, RightSquareBracket ->
// LeftSquareBracket.
func (o Operator) LeftFor() Operator {
	switch o.Kind {
	case KindRightParenthesis:
		return Simple(KindLeftParenthesis)
	case KindRightSquareBracket:
		return Simple(KindLeftSquareBracket)
	default:
		return Operator{}
	}
}

// Equal reports whether two operators are the same kind with the same
// payload (used when comparing a popped node's operator against an
// expected bracket kind).
func (o Operator) Equal(other Operator) bool {
	if o.Kind != other.Kind {
		return false
	}
	switch o.Kind {
	case KindIdentifier, KindFunction:
		return o.Name == other.Name
	default:
		return true
	}
}
