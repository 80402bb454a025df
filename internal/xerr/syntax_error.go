package xerr

import (
	"fmt"
	"strings"
)

// SyntaxError wraps one of the lex/parse error kinds above with the byte
// offset into the source where it was detected, so a host or the CLI can
// print a caret under the offending character the way go-dws's
// CompilerError does for full compiler diagnostics.
type SyntaxError struct {
	Offset int
	Source string
	Err    error
}

// NewSyntaxError wraps err with the source and the byte offset it occurred at.
func NewSyntaxError(offset int, source string, err error) *SyntaxError {
	return &SyntaxError{Offset: offset, Source: source, Err: err}
}

// Error implements the error interface, rendering the wrapped error inline.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Err)
}

// Unwrap allows errors.Is/errors.As to see through to the underlying kind.
func (e *SyntaxError) Unwrap() error { return e.Err }

// Format renders the error with a caret pointing at Offset within Source,
// the single-line analog of go-dws's CompilerError.Format.
func (e *SyntaxError) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", e.Source)
	if e.Offset >= 0 && e.Offset <= len(e.Source) {
		sb.WriteString(strings.Repeat(" ", e.Offset))
		sb.WriteString("^\n")
	}
	sb.WriteString(e.Err.Error())
	return sb.String()
}
