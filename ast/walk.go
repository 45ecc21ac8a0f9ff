package ast

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor is
// used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Body {
			Walk(v, stmt)
		}

	// Expressions
	case *Literal, *Identifier, *ThisExpression, *DebuggerStatement,
		*EmptyStatement, *BreakStatement, *ContinueStatement:
		// leaf nodes, no children

	case *MemberExpression:
		Walk(v, n.Object)
		Walk(v, n.Property)

	case *ArrayExpression:
		for _, e := range n.Elements {
			if e != nil {
				Walk(v, e)
			}
		}

	case *Property:
		if n.Computed {
			Walk(v, n.Key)
		}
		Walk(v, n.Value)

	case *ObjectExpression:
		for _, p := range n.Properties {
			Walk(v, p)
		}

	case *FunctionExpression:
		if n.Id != nil {
			Walk(v, n.Id)
		}
		for _, p := range n.Params {
			Walk(v, p)
		}
		Walk(v, n.Body)

	case *AssignmentExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *CallExpression:
		Walk(v, n.Callee)
		for _, a := range n.Arguments {
			Walk(v, a)
		}

	case *NewExpression:
		Walk(v, n.Callee)
		for _, a := range n.Arguments {
			Walk(v, a)
		}

	case *SequenceExpression:
		for _, e := range n.Expressions {
			Walk(v, e)
		}

	case *LogicalExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *BinaryExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *ConditionalExpression:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		Walk(v, n.Alternate)

	case *UpdateExpression:
		Walk(v, n.Argument)

	case *UnaryExpression:
		Walk(v, n.Argument)

	// Statements
	case *ExpressionStatement:
		Walk(v, n.Expression)

	case *VariableDeclarator:
		Walk(v, n.Id)
		if n.Init != nil {
			Walk(v, n.Init)
		}

	case *VariableDeclaration:
		for _, d := range n.Declarations {
			Walk(v, d)
		}

	case *BlockStatement:
		for _, stmt := range n.Body {
			Walk(v, stmt)
		}

	case *ReturnStatement:
		if n.Argument != nil {
			Walk(v, n.Argument)
		}

	case *IfStatement:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		if n.Alternate != nil {
			Walk(v, n.Alternate)
		}

	case *ThrowStatement:
		Walk(v, n.Argument)

	case *CatchClause:
		if n.Param != nil {
			Walk(v, n.Param)
		}
		Walk(v, n.Body)

	case *TryStatement:
		Walk(v, n.Block)
		if n.Handler != nil {
			Walk(v, n.Handler)
		}
		if n.Finalizer != nil {
			Walk(v, n.Finalizer)
		}

	case *LabeledStatement:
		Walk(v, n.Body)

	case *WhileStatement:
		Walk(v, n.Test)
		Walk(v, n.Body)

	case *DoWhileStatement:
		Walk(v, n.Body)
		Walk(v, n.Test)

	case *ForStatement:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		if n.Test != nil {
			Walk(v, n.Test)
		}
		if n.Update != nil {
			Walk(v, n.Update)
		}
		Walk(v, n.Body)

	case *ForInStatement:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)

	case *SwitchCase:
		if n.Test != nil {
			Walk(v, n.Test)
		}
		for _, stmt := range n.Consequent {
			Walk(v, stmt)
		}

	case *SwitchStatement:
		Walk(v, n.Discriminant)
		for _, c := range n.Cases {
			Walk(v, c)
		}

	case *WithStatement:
		Walk(v, n.Object)
		Walk(v, n.Body)

	case *FunctionDeclaration:
		Walk(v, n.Id)
		for _, p := range n.Params {
			Walk(v, p)
		}
		Walk(v, n.Body)

	default:
		panic("ast.Walk: unexpected node type")
	}
}

// inspector adapts a plain function into a Visitor.
type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order, calling f for each node. If
// f returns false, Inspect does not descend into that node's children.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
