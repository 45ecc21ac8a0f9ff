package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/threeaddr/jsnorm/ast"
)

// param builds a parameter/identifier reference node for name.
func param(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

// programStatements normalizes a program body and unwraps the resulting
// "(function(__global){ ... })(this);" boilerplate, returning the
// rewritten statements underneath it.
func programStatements(t *testing.T, body []ast.Node, opts Options) []ast.Node {
	t.Helper()
	result, err := Normalize(ast.NewProgram(body...), opts)
	require.NoError(t, err)
	prog, ok := result.(*ast.Program)
	require.True(t, ok)
	require.Len(t, prog.Body, 1)
	exprStmt, ok := prog.Body[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	call, ok := exprStmt.Expression.(*ast.CallExpression)
	require.True(t, ok)
	fn, ok := call.Callee.(*ast.FunctionExpression)
	require.True(t, ok)
	require.Len(t, fn.Params, 1)
	require.Equal(t, "__global", fn.Params[0].Name)
	require.Len(t, call.Arguments, 1)
	_, isThis := call.Arguments[0].(*ast.ThisExpression)
	require.True(t, isThis)
	return fn.Body.Body
}

// functionBody normalizes a top-level function declaration built from
// params and body, returning the rewritten body's statements.
func functionBody(t *testing.T, params []*ast.Identifier, body []ast.Node, opts Options) []ast.Node {
	t.Helper()
	decl := ast.NewFunctionDeclaration(&ast.Identifier{Name: "f"}, params, ast.NewBlockStatement(body...))
	result, err := Normalize(decl, opts)
	require.NoError(t, err)
	fn, ok := result.(*ast.FunctionDeclaration)
	require.True(t, ok)
	return fn.Body.Body
}

// stripVarDecl returns the leading hoisted var declaration (or nil) and the
// remaining statements.
func stripVarDecl(body []ast.Node) (*ast.VariableDeclaration, []ast.Node) {
	if len(body) == 0 {
		return nil, body
	}
	if vd, ok := body[0].(*ast.VariableDeclaration); ok {
		return vd, body[1:]
	}
	return nil, body
}

// dropTrailingReturn removes a synthesized "return null;" fall-off-the-end
// return from the end of body, if present, failing the test if it is
// missing or malformed.
func dropTrailingReturn(t *testing.T, body []ast.Node) []ast.Node {
	t.Helper()
	require.NotEmpty(t, body)
	ret, ok := body[len(body)-1].(*ast.ReturnStatement)
	require.True(t, ok, "expected trailing return, got %T", body[len(body)-1])
	lit, ok := ret.Argument.(*ast.Literal)
	require.True(t, ok, "expected trailing return of a literal, got %T", ret.Argument)
	require.Nil(t, lit.Value)
	return body[:len(body)-1]
}

func asAssign(t *testing.T, n ast.Node) *ast.AssignmentExpression {
	t.Helper()
	es, ok := n.(*ast.ExpressionStatement)
	require.True(t, ok, "expected ExpressionStatement, got %T", n)
	ae, ok := es.Expression.(*ast.AssignmentExpression)
	require.True(t, ok, "expected AssignmentExpression, got %T", es.Expression)
	return ae
}

func identName(t *testing.T, e ast.Expr) string {
	t.Helper()
	id, ok := e.(*ast.Identifier)
	require.True(t, ok, "expected *ast.Identifier, got %T", e)
	return id.Name
}

// findIfInBody returns the first IfStatement found among body's direct
// children.
func findIfInBody(body []ast.Node) (*ast.IfStatement, bool) {
	for _, n := range body {
		if ifs, ok := n.(*ast.IfStatement); ok {
			return ifs, true
		}
	}
	return nil, false
}

// countCalls reports how many CallExpressions with callee identifier name
// appear anywhere under n.
func countCalls(n ast.Node, name string) int {
	count := 0
	ast.Inspect(n, func(m ast.Node) bool {
		if call, ok := m.(*ast.CallExpression); ok {
			if id, ok := call.Callee.(*ast.Identifier); ok && id.Name == name {
				count++
			}
		}
		return true
	})
	return count
}

// countReadsOf reports how many "tmp := name" read assignments appear
// anywhere under n, the shape every local-parameter read normalizes to.
func countReadsOf(n ast.Node, name string) int {
	count := 0
	ast.Inspect(n, func(m ast.Node) bool {
		if ae, ok := m.(*ast.AssignmentExpression); ok {
			if id, ok := ae.Right.(*ast.Identifier); ok && id.Name == name {
				count++
			}
		}
		return true
	})
	return count
}

// maybeDropTrailingReturn strips a trailing synthesized "return null;" if
// present, leaving body unchanged otherwise. Unlike dropTrailingReturn it
// does not require the return to be present.
func maybeDropTrailingReturn(body []ast.Node) []ast.Node {
	if len(body) == 0 {
		return body
	}
	ret, ok := body[len(body)-1].(*ast.ReturnStatement)
	if !ok {
		return body
	}
	lit, ok := ret.Argument.(*ast.Literal)
	if !ok || lit.Value != nil {
		return body
	}
	return body[:len(body)-1]
}
