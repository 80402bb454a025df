// Package xerr defines the structured error taxonomy shared by the lexer,
// parser, and evaluator. Each error kind is its own struct implementing the
// error interface, following the same per-kind-struct pattern go-dws uses
// in internal/interp/runtime/errors.go, rather than a single stringly-typed
// error. Propagation is strictly bottom-up: nothing in this module's core
// packages recovers from one of these errors, they are returned to the
// caller of Compile/Eval.
package xerr

import "fmt"

// ---------------------------------------------------------------------
// Lex errors
// ---------------------------------------------------------------------

// UnpairedBracketsError reports that parentheses were not balanced by the
// end of the source text.
type UnpairedBracketsError struct{}

func (e *UnpairedBracketsError) Error() string { return "unpaired brackets" }

// NewUnpairedBrackets returns an UnpairedBracketsError.
func NewUnpairedBrackets() error { return &UnpairedBracketsError{} }

// UnsupportedOperatorError reports a token the lexer could not classify,
// such as a bare "=" or a mismatched "&"/"|" pair.
type UnsupportedOperatorError struct {
	Token string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator: %q", e.Token)
}

// NewUnsupportedOperator returns an UnsupportedOperatorError for token.
func NewUnsupportedOperator(token string) error {
	return &UnsupportedOperatorError{Token: token}
}

// ---------------------------------------------------------------------
// Parse errors
// ---------------------------------------------------------------------

// DuplicateOperatorNodeError reports an operator appearing where a left
// operand was expected but the stack top wasn't one and couldn't start an
// expression either.
type DuplicateOperatorNodeError struct{}

func (e *DuplicateOperatorNodeError) Error() string { return "duplicate operator node" }

// NewDuplicateOperatorNode returns a DuplicateOperatorNodeError.
func NewDuplicateOperatorNode() error { return &DuplicateOperatorNodeError{} }

// DuplicateValueNodeError reports a value or identifier appearing directly
// after another complete value/identifier with nothing to combine them.
type DuplicateValueNodeError struct{}

func (e *DuplicateValueNodeError) Error() string { return "duplicate value node" }

// NewDuplicateValueNode returns a DuplicateValueNodeError.
func NewDuplicateValueNode() error { return &DuplicateValueNodeError{} }

// StartWithNonValueOperatorError reports an expression starting with an
// operator that cannot legally begin one (e.g. "*3").
type StartWithNonValueOperatorError struct{}

func (e *StartWithNonValueOperatorError) Error() string { return "expression starts with non-value operator" }

// NewStartWithNonValueOperator returns a StartWithNonValueOperatorError.
func NewStartWithNonValueOperator() error { return &StartWithNonValueOperatorError{} }

// BracketNotWithFunctionError reports a closing bracket that doesn't
// resolve to a matching function call or group, e.g. a bare "()".
type BracketNotWithFunctionError struct{}

func (e *BracketNotWithFunctionError) Error() string { return "bracket not paired with a function or group" }

// NewBracketNotWithFunction returns a BracketNotWithFunctionError.
func NewBracketNotWithFunction() error { return &BracketNotWithFunctionError{} }

// CommaNotWithFunctionError reports a comma that doesn't appear inside a
// function call's argument list.
type CommaNotWithFunctionError struct{}

func (e *CommaNotWithFunctionError) Error() string { return "comma not inside a function call" }

// NewCommaNotWithFunction returns a CommaNotWithFunctionError.
func NewCommaNotWithFunction() error { return &CommaNotWithFunctionError{} }

// CanNotAddChildError reports an attempt to graft a child onto a node that
// cannot accept one (already full, or a leaf).
type CanNotAddChildError struct{}

func (e *CanNotAddChildError) Error() string { return "node cannot accept another child" }

// NewCanNotAddChild returns a CanNotAddChildError.
func NewCanNotAddChild() error { return &CanNotAddChildError{} }

// NoFinalNodeError reports that the builder's stack was empty at the end of
// parsing, so there is no root node to return.
type NoFinalNodeError struct{}

func (e *NoFinalNodeError) Error() string { return "no final node produced" }

// NewNoFinalNode returns a NoFinalNodeError.
func NewNoFinalNode() error { return &NoFinalNodeError{} }

// ---------------------------------------------------------------------
// Evaluation errors
// ---------------------------------------------------------------------

// ExpectedBooleanError reports a value used where a boolean was required
// (the operand of Not, or either side of And/Or).
type ExpectedBooleanError struct {
	// Got describes the value actually found, e.g. its kind or a short
	// rendering, for inclusion in the error message.
	Got string
}

func (e *ExpectedBooleanError) Error() string {
	return fmt.Sprintf("expected boolean, got %s", e.Got)
}

// NewExpectedBoolean returns an ExpectedBooleanError describing got.
func NewExpectedBoolean(got string) error { return &ExpectedBooleanError{Got: got} }

// ExpectedObjectError reports a non-object, non-null intermediate value in
// a "." member-access chain.
type ExpectedObjectError struct{}

func (e *ExpectedObjectError) Error() string { return "expected object" }

// NewExpectedObject returns an ExpectedObjectError.
func NewExpectedObject() error { return &ExpectedObjectError{} }

// ExpectedArrayError reports a non-array, non-object, non-null value used
// as the subject of a "[...]" index expression.
type ExpectedArrayError struct{}

func (e *ExpectedArrayError) Error() string { return "expected array" }

// NewExpectedArray returns an ExpectedArrayError.
func NewExpectedArray() error { return &ExpectedArrayError{} }

// ExpectedIdentifierError reports a non-identifier node used as a "."
// member name, or a non-string index used against an object.
type ExpectedIdentifierError struct{}

func (e *ExpectedIdentifierError) Error() string { return "expected identifier" }

// NewExpectedIdentifier returns an ExpectedIdentifierError.
func NewExpectedIdentifier() error { return &ExpectedIdentifierError{} }

// ExpectedNumberError reports a non-numeric index used against an array,
// or a non-numeric operand to an ordering comparison.
type ExpectedNumberError struct{}

func (e *ExpectedNumberError) Error() string { return "expected number" }

// NewExpectedNumber returns an ExpectedNumberError.
func NewExpectedNumber() error { return &ExpectedNumberError{} }

// InvalidRangeError reports an identifier containing ".." whose endpoints
// don't both parse as i64.
type InvalidRangeError struct {
	Text string
}

func (e *InvalidRangeError) Error() string { return fmt.Sprintf("invalid range literal: %q", e.Text) }

// NewInvalidRange returns an InvalidRangeError for text.
func NewInvalidRange(text string) error { return &InvalidRangeError{Text: text} }

// FunctionNotExistsError reports a call to a name not found in the user,
// built-in, or const function registries.
type FunctionNotExistsError struct {
	Name string
}

func (e *FunctionNotExistsError) Error() string { return fmt.Sprintf("function does not exist: %s", e.Name) }

// NewFunctionNotExists returns a FunctionNotExistsError for name.
func NewFunctionNotExists(name string) error { return &FunctionNotExistsError{Name: name} }

// ArgumentsGreaterError reports a call with more arguments than a
// function's declared max_args.
type ArgumentsGreaterError struct {
	Max int
}

func (e *ArgumentsGreaterError) Error() string {
	return fmt.Sprintf("too many arguments, expected at most %d", e.Max)
}

// NewArgumentsGreater returns an ArgumentsGreaterError for max.
func NewArgumentsGreater(max int) error { return &ArgumentsGreaterError{Max: max} }

// ArgumentsLessError reports a call with fewer arguments than a function's
// declared min_args.
type ArgumentsLessError struct {
	Min int
}

func (e *ArgumentsLessError) Error() string {
	return fmt.Sprintf("too few arguments, expected at least %d", e.Min)
}

// NewArgumentsLess returns an ArgumentsLessError for min.
func NewArgumentsLess(min int) error { return &ArgumentsLessError{Min: min} }

// CanNotExecError reports a node whose operator the evaluator has no case
// for — a builder invariant violation rather than a user-facing mistake.
type CanNotExecError struct {
	Op string
}

func (e *CanNotExecError) Error() string { return fmt.Sprintf("cannot execute operator: %s", e.Op) }

// NewCanNotExec returns a CanNotExecError for op.
func NewCanNotExec(op string) error { return &CanNotExecError{Op: op} }

// CustomError carries a free-form message, used by arithmetic violations
// (divide by zero) and built-in functions (len() on an unsupported kind).
type CustomError struct {
	Message string
}

func (e *CustomError) Error() string { return e.Message }

// NewCustom returns a CustomError wrapping message.
func NewCustom(message string) error { return &CustomError{Message: message} }
