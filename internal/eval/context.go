package eval

import "github.com/cwbudde/go-xpr/internal/value"

// Context is one level of name->Value bindings.
type Context map[string]*value.Value

// Contexts is the stack of bindings evaluation reads against: innermost
// last. Lookup proceeds from the end backward and returns the first
// match, so an inner scope shadows an outer one of the same name (spec
// §5).
type Contexts []Context

// find returns the value bound to key in the innermost context that
// defines it, and whether any context did.
func find(contexts Contexts, key string) (*value.Value, bool) {
	for i := len(contexts) - 1; i >= 0; i-- {
		if v, ok := contexts[i][key]; ok {
			return v, true
		}
	}
	return nil, false
}
