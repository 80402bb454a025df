// Package eval implements the tree-walking evaluator (spec §4.6): given
// an operator tree from internal/parser and a stack of variable
// contexts, it produces a single Value or a structured error.
//
// Grounded on original_source/src/tree/mod.rs's exec_node closure
// (compile()'s returned Fn), ported kind-by-kind (Dot, LeftSquareBracket,
// Identifier, Not, Function and the arithmetic/comparison/logical family
// all mirror exec_node's match arms), in the same recursive-walk shape
// go-dws's internal/interp tree-walker uses (a single exec/eval entry
// point switching on node kind, delegating arithmetic to the value model
// and calls to a function registry). One deliberate deviation: exec_node
// reads a binary operator's operands via get_first_child/get_last_child,
// which both alias to the single element of a one-child node — so a
// literal port of "-3" would compute 3-3 (Sub) or 5+5 (Add), not a true
// unary negate/no-op. Spec §3 explicitly documents unary minus/no-op
// unary plus as the intended semantics for these single-child nodes, so
// binary() below special-cases them (Value.Neg/Value.UnaryPlus) instead
// of reproducing that aliasing quirk.
package eval

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-xpr/internal/numtext"
	"github.com/cwbudde/go-xpr/internal/operator"
	"github.com/cwbudde/go-xpr/internal/value"
	"github.com/cwbudde/go-xpr/internal/xerr"
)

// Function is a callable the evaluator can invoke for Function(name)
// nodes: a caller-supplied function, a built-in (C7), or a const
// function. MinArgs/MaxArgs are nil for unbounded.
type Function struct {
	MinArgs *int
	MaxArgs *int
	Call    func(args []*value.Value) (*value.Value, error)
}

// Evaluator walks one operator tree against a fixed set of contexts and
// function registries. It holds no mutable state of its own, so the same
// Evaluator may be reused (or, per spec §5, shared across goroutines)
// across independent Eval calls as long as the supplied maps aren't
// concurrently mutated.
type Evaluator struct {
	Contexts       Contexts
	UserFunctions  map[string]Function
	ConstFunctions map[string]Function
	Builtins       map[string]Function
}

// New returns an Evaluator with the builtin registry (C7) preloaded.
func New(contexts Contexts, userFunctions, constFunctions map[string]Function) *Evaluator {
	return &Evaluator{
		Contexts:       contexts,
		UserFunctions:  userFunctions,
		ConstFunctions: constFunctions,
		Builtins:       Builtins(),
	}
}

// Eval walks node and returns the resulting Value.
func (e *Evaluator) Eval(node *operator.Node) (*value.Value, error) {
	switch node.Operator.Kind {
	case operator.KindValue:
		return node.Operator.Literal.Clone(), nil

	case operator.KindIdentifier:
		return e.identifier(node.Operator.Name)

	case operator.KindNot:
		v, err := e.Eval(node.Children[0])
		if err != nil {
			return nil, err
		}
		return v.Not()

	case operator.KindAdd, operator.KindSub, operator.KindMul, operator.KindDiv, operator.KindRem,
		operator.KindEq, operator.KindNe, operator.KindGt, operator.KindLt, operator.KindGe, operator.KindLe,
		operator.KindAnd, operator.KindOr:
		return e.binary(node)

	case operator.KindDot:
		return e.dot(node)

	case operator.KindLeftSquareBracket:
		return e.index(node)

	case operator.KindFunction:
		return e.call(node)

	default:
		return nil, xerr.NewCanNotExec(node.Operator.Kind.String())
	}
}

// binary evaluates both children left-to-right (spec §4.6: "evaluate
// both children left-to-right, apply the Value operation") and dispatches
// to the matching Value method. Add and Sub additionally cover their
// unary forms ("-3", "+3"), which the tree builder represents as the
// same operator node with a single child (spec §3's can_at_beginning
// note on unary minus/plus).
func (e *Evaluator) binary(node *operator.Node) (*value.Value, error) {
	if len(node.Children) == 1 {
		if node.Operator.Kind != operator.KindSub && node.Operator.Kind != operator.KindAdd {
			// Only Sub/Add legitimately appear with a single child (the
			// unary forms); anything else with one child is a builder
			// invariant violation, not a valid tree to evaluate.
			return nil, xerr.NewCanNotExec(node.Operator.Kind.String())
		}
		v, err := e.Eval(node.Children[0])
		if err != nil {
			return nil, err
		}
		if node.Operator.Kind == operator.KindSub {
			return v.Neg()
		}
		return v.UnaryPlus()
	}
	if len(node.Children) != 2 {
		return nil, xerr.NewCanNotExec(node.Operator.Kind.String())
	}

	lhs, err := e.Eval(node.Children[0])
	if err != nil {
		return nil, err
	}
	rhs, err := e.Eval(node.Children[1])
	if err != nil {
		return nil, err
	}
	switch node.Operator.Kind {
	case operator.KindAdd:
		return lhs.Add(rhs)
	case operator.KindSub:
		return lhs.Sub(rhs)
	case operator.KindMul:
		return lhs.Mul(rhs)
	case operator.KindDiv:
		return lhs.Div(rhs)
	case operator.KindRem:
		return lhs.Rem(rhs)
	case operator.KindEq:
		return lhs.Eq(rhs)
	case operator.KindNe:
		return lhs.Ne(rhs)
	case operator.KindGt:
		return lhs.Gt(rhs)
	case operator.KindLt:
		return lhs.Lt(rhs)
	case operator.KindGe:
		return lhs.Ge(rhs)
	case operator.KindLe:
		return lhs.Le(rhs)
	case operator.KindAnd:
		return lhs.And(rhs)
	default: // operator.KindOr
		return lhs.Or(rhs)
	}
}

// identifier resolves an Identifier leaf per spec §4.6: number, then
// range literal, then context lookup, defaulting to Null.
func (e *Evaluator) identifier(name string) (*value.Value, error) {
	if v, ok := numtext.Parse(name); ok {
		return v, nil
	}
	if strings.Contains(name, "..") {
		return parseRange(name)
	}
	if v, ok := find(e.Contexts, name); ok {
		return v.Clone(), nil
	}
	return value.Null(), nil
}

// parseRange parses an "a..b" range literal into a half-open array of
// integers [a, a+1, ..., b-1]. Both endpoints must parse as i64.
func parseRange(text string) (*value.Value, error) {
	i := strings.Index(text, "..")
	a, aerr := strconv.ParseInt(text[:i], 10, 64)
	b, berr := strconv.ParseInt(text[i+2:], 10, 64)
	if aerr != nil || berr != nil {
		return nil, xerr.NewInvalidRange(text)
	}
	elems := make([]*value.Value, 0, maxInt64(b-a, 0))
	for n := a; n < b; n++ {
		elems = append(elems, value.Int64(n))
	}
	return value.NewArray(elems), nil
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// dot evaluates a member-access chain (spec §4.6 Dot rule).
func (e *Evaluator) dot(node *operator.Node) (*value.Value, error) {
	var current *value.Value

	for i, child := range node.Children {
		if i == 0 {
			v, err := e.Eval(child)
			if err != nil {
				return nil, err
			}
			switch v.Kind() {
			case value.KindString:
				if found, ok := find(e.Contexts, v.Str()); ok {
					current = found
				} else {
					current = value.Null()
				}
			case value.KindObject:
				current = v
			case value.KindNull:
				return value.Null(), nil
			default:
				return nil, xerr.NewExpectedObject()
			}
			continue
		}

		if !child.Operator.IsIdentifier() {
			return nil, xerr.NewExpectedIdentifier()
		}
		if current.IsNull() {
			return value.Null(), nil
		}
		if current.Kind() != value.KindObject {
			return nil, xerr.NewExpectedObject()
		}
		next := current.ObjectGet(child.Operator.Name)
		if next == nil {
			current = value.Null()
		} else {
			current = next
		}
	}

	if current == nil {
		current = value.Null()
	}
	return current, nil
}

// index evaluates a "[...]" chain (spec §4.6 LeftSquareBracket rule).
func (e *Evaluator) index(node *operator.Node) (*value.Value, error) {
	var subject *value.Value

	for i, child := range node.Children {
		if i == 0 {
			v, err := e.Eval(child)
			if err != nil {
				return nil, err
			}
			switch v.Kind() {
			case value.KindString:
				if found, ok := find(e.Contexts, v.Str()); ok {
					subject = found
				} else {
					subject = value.Null()
				}
			case value.KindArray, value.KindObject:
				subject = v
			case value.KindNull:
				return value.Null(), nil
			default:
				return nil, xerr.NewExpectedArray()
			}
			continue
		}

		if subject.IsNull() {
			return value.Null(), nil
		}

		idx, err := e.Eval(child)
		if err != nil {
			return nil, err
		}

		switch subject.Kind() {
		case value.KindObject:
			if idx.Kind() != value.KindString {
				return nil, xerr.NewExpectedIdentifier()
			}
			next := subject.ObjectGet(idx.Str())
			if next == nil {
				subject = value.Null()
			} else {
				subject = next
			}
		case value.KindArray:
			n, ok := idx.AsIndex()
			if !ok {
				return nil, xerr.NewExpectedNumber()
			}
			if n < 0 || n >= subject.ArrayLen() {
				subject = value.Null()
			} else {
				subject = subject.ArrayGet(n)
			}
		default:
			return nil, xerr.NewExpectedArray()
		}
	}

	if subject == nil {
		subject = value.Null()
	}
	return subject, nil
}

// call evaluates a Function(name) node: arguments left-to-right, then
// resolves name against user functions, builtins, and const functions in
// that order (spec §4.6).
func (e *Evaluator) call(node *operator.Node) (*value.Value, error) {
	args := make([]*value.Value, len(node.Children))
	for i, child := range node.Children {
		v, err := e.Eval(child)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	name := node.Operator.Name
	fn, ok := e.UserFunctions[name]
	if !ok {
		fn, ok = e.Builtins[name]
	}
	if !ok {
		fn, ok = e.ConstFunctions[name]
	}
	if !ok {
		return nil, xerr.NewFunctionNotExists(name)
	}

	if err := operator.CheckArity(len(args), fn.MinArgs, fn.MaxArgs); err != nil {
		return nil, err
	}
	return fn.Call(args)
}
