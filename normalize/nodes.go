package normalize

import "github.com/threeaddr/jsnorm/ast"

// ident builds an Identifier reference node.
func ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

// assign builds "name = value;" as an ExpressionStatement.
func assign(name string, value ast.Expr) ast.Node {
	return ast.NewExpressionStatement(&ast.AssignmentExpression{
		Operator: "=",
		Left:     ident(name),
		Right:    value,
	})
}

// assignTo builds "left = value;" as an ExpressionStatement for an
// arbitrary assignable left-hand side (identifier or member expression).
func assignTo(left ast.Expr, value ast.Expr) ast.Node {
	return ast.NewExpressionStatement(&ast.AssignmentExpression{
		Operator: "=",
		Left:     left,
		Right:    value,
	})
}

// member builds "object[property]" (computed) or "object.property".
func member(object, property ast.Expr, computed bool) *ast.MemberExpression {
	return &ast.MemberExpression{Object: object, Property: property, Computed: computed}
}

// strLit builds a string literal node for name.
func strLit(s string) *ast.Literal {
	return &ast.Literal{Value: s}
}

// numLit builds a numeric literal node.
func numLit(n float64) *ast.Literal {
	return &ast.Literal{Value: n}
}

// boolLit builds a boolean literal node.
func boolLit(b bool) *ast.Literal {
	return &ast.Literal{Value: b}
}

// inTest builds "left in right".
func inTest(left, right ast.Expr) *ast.BinaryExpression {
	return &ast.BinaryExpression{Operator: "in", Left: left, Right: right}
}
