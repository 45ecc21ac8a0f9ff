package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/threeaddr/jsnorm/ast"
)

// declaredNames collects every name bound by the single hoisted var
// declaration at the front of body, or nil if there is none.
func declaredNames(body []ast.Node) map[string]bool {
	vd, _ := stripVarDecl(body)
	names := map[string]bool{}
	if vd == nil {
		return names
	}
	for _, d := range vd.Declarations {
		names[d.Id.Name] = true
	}
	return names
}

// assignedTargets collects every name ever written by an AssignmentExpression
// or bound as a for-in loop variable anywhere under n.
func assignedTargets(n ast.Node) map[string]bool {
	names := map[string]bool{}
	ast.Inspect(n, func(m ast.Node) bool {
		switch v := m.(type) {
		case *ast.AssignmentExpression:
			if id, ok := v.Left.(*ast.Identifier); ok {
				names[id.Name] = true
			}
		case *ast.ForInStatement:
			if id, ok := v.Left.(*ast.Identifier); ok {
				names[id.Name] = true
			}
		}
		return true
	})
	return names
}

func TestHoistedVarDeclarationCoversEveryAssignedTemporary(t *testing.T) {
	a, b := param("a"), param("b")
	stmt := ast.NewExpressionStatement(&ast.BinaryExpression{
		Operator: "+",
		Left:     &ast.Identifier{Name: "a"},
		Right:    &ast.Identifier{Name: "b"},
	})
	body := functionBody(t, []*ast.Identifier{a, b}, []ast.Node{stmt}, Options{})

	declared := declaredNames(body)
	assigned := assignedTargets(ast.NewBlockStatement(body...))

	for name := range assigned {
		if name == "a" || name == "b" {
			// parameters are never re-declared by the hoisted var list
			continue
		}
		if !IsTmp(name) {
			continue
		}
		require.True(t, declared[name], "temporary %q is assigned but never declared", name)
	}
}

func TestHoistedVarDeclarationCoversLocalVarDeclarations(t *testing.T) {
	varDecl := ast.NewVariableDeclaration(ast.NewVariableDeclarator(&ast.Identifier{Name: "v"}, &ast.Literal{Value: float64(1)}))
	body := functionBody(t, nil, []ast.Node{varDecl}, Options{})

	declared := declaredNames(body)
	require.True(t, declared["v"])
}

func TestNoBreakOrContinueIsEverLeftUnlabeled(t *testing.T) {
	c1 := param("c1")
	loop := ast.NewWhileStatement(
		&ast.Identifier{Name: "c1"},
		ast.NewBlockStatement(ast.NewBreakStatement(""), ast.NewContinueStatement("")),
	)
	body := functionBody(t, []*ast.Identifier{c1}, []ast.Node{loop}, Options{})

	ast.Inspect(ast.NewBlockStatement(body...), func(n ast.Node) bool {
		switch s := n.(type) {
		case *ast.BreakStatement:
			require.NotEmpty(t, s.Label, "break statement left unlabeled after normalization")
		case *ast.ContinueStatement:
			t.Fatalf("continue statement survived normalization unconverted: %v", s)
		}
		return true
	})
}

func TestAssignmentToUndeclaredGlobalFromWithinAFunctionIsMarkedExposed(t *testing.T) {
	lhs := &ast.Identifier{Name: "g"}
	stmt := ast.NewExpressionStatement(&ast.AssignmentExpression{
		Operator: "=",
		Left:     lhs,
		Right:    &ast.Literal{Value: float64(1)},
	})

	_ = functionBody(t, nil, []ast.Node{stmt}, Options{})

	require.True(t, ast.IsExposed(lhs), "a write to an undeclared global from within a function must be marked exposed on the input node")
}

func TestEveryOperationInNormalizedOutputIsAtMostOneDeep(t *testing.T) {
	a, b, c := param("a"), param("b"), param("c")
	stmt := ast.NewExpressionStatement(&ast.BinaryExpression{
		Operator: "+",
		Left: &ast.BinaryExpression{
			Operator: "*",
			Left:     &ast.Identifier{Name: "a"},
			Right:    &ast.Identifier{Name: "b"},
		},
		Right: &ast.Identifier{Name: "c"},
	})
	body := functionBody(t, []*ast.Identifier{a, b, c}, []ast.Node{stmt}, Options{})

	ast.Inspect(ast.NewBlockStatement(body...), func(n ast.Node) bool {
		bin, ok := n.(*ast.BinaryExpression)
		if !ok {
			return true
		}
		_, leftIsBinary := bin.Left.(*ast.BinaryExpression)
		_, rightIsBinary := bin.Right.(*ast.BinaryExpression)
		require.False(t, leftIsBinary, "binary expression operand was not flattened to a temporary")
		require.False(t, rightIsBinary, "binary expression operand was not flattened to a temporary")
		return true
	})
}
