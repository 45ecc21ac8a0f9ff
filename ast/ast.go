// Package ast defines the abstract syntax tree used as both the input to and
// the output of the normalizer. It follows the conventional ESTree-shaped
// grammar for a dynamically-typed, C-style scripting language.
package ast

// Node is the interface implemented by every AST node. Node deliberately
// carries no source position: the normalizer neither preserves nor requires
// one, and none of its synthesized nodes have one.
type Node interface {
	// Attr returns an attribute previously set with SetAttr.
	Attr(key string) (any, bool)

	// SetAttr attaches an attribute to the node. Two attributes are used
	// by the normalizer: "isComputed" on generated member expressions and
	// "exposed" on binding nodes captured by a nested function.
	SetAttr(key string, value any)

	// String returns a human readable, re-parseable rendering of the node.
	String() string
}

// Stmt is implemented by statement nodes, which cause side effects and do
// not themselves evaluate to a value.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by expression nodes, which evaluate to a value and may
// be nested inside other expressions.
type Expr interface {
	Node
	exprNode()
}

// GetAttr is the free-function form of Node.Attr, matching the external
// AST-factory contract this package satisfies.
func GetAttr(n Node, key string) (any, bool) {
	return n.Attr(key)
}

// SetAttr is the free-function form of Node.SetAttr.
func SetAttr(n Node, key string, value any) {
	n.SetAttr(key, value)
}

// attrs is embedded by every concrete node type to provide the attribute bag.
type attrs struct {
	m map[string]any
}

func (a *attrs) Attr(key string) (any, bool) {
	if a.m == nil {
		return nil, false
	}
	v, ok := a.m[key]
	return v, ok
}

func (a *attrs) SetAttr(key string, value any) {
	if a.m == nil {
		a.m = make(map[string]any)
	}
	a.m[key] = value
}

// IsComputed reports whether a MemberExpression's property was written using
// bracket notation in the source, or was marked as such by the normalizer
// when it synthesized a computed member access.
func IsComputed(n Node) bool {
	v, ok := n.Attr("isComputed")
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// IsExposed reports whether a binding node was marked "exposed" because a
// nested function closes over it.
func IsExposed(n Node) bool {
	v, ok := n.Attr("exposed")
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}
