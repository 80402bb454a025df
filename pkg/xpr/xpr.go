// Package xpr is the embeddable host façade over the expression core:
// lex, build, and evaluate an expression against caller-supplied
// variable contexts and function registries (spec §6's "External
// Interfaces").
//
// The functional-options constructor mirrors go-dws's
// internal/lexer.LexerOption pattern (New(input, opts...)), generalized
// from lexer configuration to engine-wide const-function registration.
package xpr

import (
	"github.com/cwbudde/go-xpr/internal/eval"
	"github.com/cwbudde/go-xpr/internal/lexer"
	"github.com/cwbudde/go-xpr/internal/operator"
	"github.com/cwbudde/go-xpr/internal/parser"
	"github.com/cwbudde/go-xpr/internal/value"
	"github.com/cwbudde/go-xpr/internal/xerr"
)

// SyntaxError re-exports internal/xerr's source-position wrapper so hosts
// can errors.As against it without importing the internal package.
type SyntaxError = xerr.SyntaxError

// Value is the dynamically typed JSON-shaped data model expressions
// evaluate to and variable contexts are built from.
type Value = value.Value

// Function is a callable a host registers either as a const function
// (engine-wide, via WithConstFunction) or a user function (per Eval
// call): min_args/max_args bound the accepted arity, Call receives the
// evaluated argument list.
type Function = eval.Function

// Context is one level of name->Value bindings.
type Context = eval.Context

var (
	// Null, Bool, Int64, Uint64, Float64, String, NewArray, and NewObject
	// construct Values for use in contexts and function results.
	Null      = value.Null
	Bool      = value.Bool
	Int64     = value.Int64
	Uint64    = value.Uint64
	Float64   = value.Float64
	String    = value.String
	NewArray  = value.NewArray
	NewObject = value.NewObject
	FromAny   = value.FromAny
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithConstFunction registers a function in the engine-wide const
// registry (spec §5: "a separate registry whose values are computed
// once and shared"), consulted after user functions and builtins.
func WithConstFunction(name string, fn Function) Option {
	return func(e *Engine) {
		e.constFunctions[name] = fn
	}
}

// Engine holds configuration shared across every expression it
// compiles: currently just the const-function registry. An Engine is
// safe to compile from concurrently once construction (New) has
// finished.
type Engine struct {
	constFunctions map[string]Function
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	e := &Engine{constFunctions: map[string]Function{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compiled is an immutable compiled expression: lexing and tree-building
// have already run, so Eval only walks the tree. It holds the tree and
// the Engine it was compiled by (for the const-function registry); the
// builtin registry is set up afresh on each Eval.
type Compiled struct {
	root   *operator.Node
	engine *Engine
}

// Compile lexes and parses source into a Compiled expression. Lex and
// parse failures are wrapped in a SyntaxError so a caller (or the CLI)
// can render a caret under the source. Neither stage currently tracks a
// precise per-token byte offset, so the offset points at the end of
// source; it's still useful for "which expression string failed" when a
// host embeds many expressions, even without a character-exact caret.
func (e *Engine) Compile(source string) (*Compiled, error) {
	ops, err := lexer.Lex(source)
	if err != nil {
		return nil, xerr.NewSyntaxError(len(source), source, err)
	}
	root, err := parser.Build(ops)
	if err != nil {
		return nil, xerr.NewSyntaxError(len(source), source, err)
	}
	return &Compiled{root: root, engine: e}, nil
}

// Compile is a convenience for New().Compile(source), for callers who
// need no const functions.
func Compile(source string) (*Compiled, error) {
	return New().Compile(source)
}

// Eval evaluates the compiled expression against contexts (innermost
// last) and an optional set of per-call user functions, which take
// priority over builtins and const functions (spec §4.6).
func (c *Compiled) Eval(contexts []Context, userFunctions map[string]Function) (*Value, error) {
	if userFunctions == nil {
		userFunctions = map[string]Function{}
	}
	ev := eval.New(eval.Contexts(contexts), userFunctions, c.engine.constFunctions)
	return ev.Eval(c.root)
}
