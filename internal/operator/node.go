package operator

import "github.com/cwbudde/go-xpr/internal/xerr"

// Node is one vertex of the operator tree: an operator, its ordered
// children, and a closed flag meaning "no more children may be grafted
// onto me". closed is set explicitly when a balancing bracket is seen,
// when the node represents a literal/identifier, or when arity is
// satisfied for a fixed-arity operator.
type Node struct {
	Operator Operator
	Children []*Node
	Closed   bool
}

// New returns a fresh, open, childless node for the given operator.
func New(op Operator) *Node {
	return &Node{Operator: op}
}

// AddChild appends a child.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// PopLastChild removes and returns the last child ("rob" uses this to
// detach a node's rightmost child during precedence climbing).
func (n *Node) PopLastChild() *Node {
	last := n.Children[len(n.Children)-1]
	n.Children = n.Children[:len(n.Children)-1]
	return last
}

// FirstChild returns the first child.
func (n *Node) FirstChild() *Node { return n.Children[0] }

// LastChild returns the last child.
func (n *Node) LastChild() *Node { return n.Children[len(n.Children)-1] }

// IsEnough reports whether the node has exactly as many children as its
// operator's bounded max arity allows. Unbounded operators are never
// "enough" by this measure.
func (n *Node) IsEnough() bool {
	max, bounded := n.Operator.MaxArgs()
	return bounded && len(n.Children) == max
}

// IsValueOrFullChildren reports whether n can serve as a complete left
// operand: true for values/identifiers, and for operator nodes that are
// either closed or already full.
func (n *Node) IsValueOrFullChildren() bool {
	if n.Operator.IsValueOrIdent() {
		return true
	}
	if !n.Operator.CanHaveChild() {
		return false
	}
	if n.Closed {
		return true
	}
	return n.IsEnough()
}

// IsUnclosedArithmetic reports whether n is an open operator node capable
// of taking a child (used by the bracket-closing state machine to decide
// whether to graft a freshly closed group onto an enclosing operator).
func (n *Node) IsUnclosedArithmetic() bool {
	return !n.Closed && n.Operator.CanHaveChild()
}

// IsUnclosedFunction reports whether n is an open Function(...) node.
func (n *Node) IsUnclosedFunction() bool {
	return n.Operator.Kind == KindFunction && !n.Closed
}

// IsLeftSquareBracket reports whether n's operator is LeftSquareBracket.
func (n *Node) IsLeftSquareBracket() bool { return n.Operator.IsLeftSquareBracket() }

// IsDot reports whether n's operator is Dot.
func (n *Node) IsDot() bool { return n.Operator.IsDot() }

// CheckArity enforces a function's declared min/max argument count
// against the node's actual children, returning ArgumentsGreater/Less on
// violation.
func CheckArity(childCount int, minArgs, maxArgs *int) error {
	if maxArgs != nil && childCount > *maxArgs {
		return xerr.NewArgumentsGreater(*maxArgs)
	}
	if minArgs != nil && childCount < *minArgs {
		return xerr.NewArgumentsLess(*minArgs)
	}
	return nil
}
