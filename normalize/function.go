package normalize

import (
	"github.com/threeaddr/jsnorm/ast"
	"github.com/threeaddr/jsnorm/cflow"
	"github.com/threeaddr/jsnorm/decls"
	"github.com/threeaddr/jsnorm/normalizeerr"
	"github.com/threeaddr/jsnorm/scope"
)

// normalizeFunctionLiteral builds the normalized function expression for x,
// running its body through a fresh child entity.
func (e *entity) normalizeFunctionLiteral(x *ast.FunctionExpression) *ast.FunctionExpression {
	if ast.IsExposed(x) {
		e.fail(normalizeerr.ReasonExposedFunctionExpression, "cannot normalize a downward-exposed function expression")
	}
	childScope := scope.Function(e.scope)
	for _, p := range x.Params {
		childScope.Declare(p.Name)
	}
	child := e.child(childScope)
	body := child.finalizeFunctionBody(x.Body)
	return &ast.FunctionExpression{Id: x.Id, Params: x.Params, Body: body}
}

// finalizeFunctionBody runs the full per-entity finalization procedure: it
// declares every hoisted local name into the function's own scope so
// references anywhere in the body resolve as local rather than falling
// through to an enclosing scope, allocates the unified-return bookkeeping
// (if enabled), normalizes the body, appends a trailing return where
// control may fall off the end, prepends the hoisted function-declaration
// prelude, and prepends the single hoisted var declaration. e must be the
// entity owning the function's own scope (params already declared in it).
func (e *entity) finalizeFunctionBody(body *ast.BlockStatement) *ast.BlockStatement {
	if e.opts.UnifyRet {
		e.retLabel = e.genTmp(true)
		e.retVar = e.genTmp(false)
	}

	found := decls.Collect(body.Body)
	for _, name := range localDeclNames(found) {
		e.scope.Declare(name)
	}
	normalized := e.normalizeStatementList(body.Body, "", "")

	if e.opts.UnifyRet {
		normalized = []ast.Node{
			ast.NewLabeledStatement(e.retLabel, e.block(normalized)),
			ast.NewReturnStatement(ident(e.retVar)),
		}
	} else if cflow.MayCompleteNormally(body) {
		normalized = append(normalized, ast.NewReturnStatement(&ast.Literal{Value: nil}))
	}

	normalized = append(e.functionDeclPrelude(found), normalized...)

	if varDecl := e.hoistedVarDecl(localDeclNames(found)); varDecl != nil {
		normalized = append([]ast.Node{varDecl}, normalized...)
	}

	return e.block(normalized)
}

// functionDeclPrelude builds the "name = function(...){...};" assignments
// hoisted function declarations become. In backwards-compatible mode every
// declaration (including shadowed duplicates) is emitted in source order
// with its inner name preserved; otherwise duplicates resolve to the last
// occurrence and the inner function expression is anonymized.
func (e *entity) functionDeclPrelude(found *decls.Declarations) []ast.Node {
	var fns []*ast.FunctionDeclaration
	if e.opts.BackwardsCompatible {
		fns = found.Functions
	} else {
		fns = found.ResolvedFunctions()
	}

	var out []ast.Node
	for _, fn := range fns {
		id := fn.Id
		if !e.opts.BackwardsCompatible {
			id = nil
		}
		childScope := scope.Function(e.scope)
		for _, p := range fn.Params {
			childScope.Declare(p.Name)
		}
		child := e.child(childScope)
		body := child.finalizeFunctionBody(fn.Body)
		fnExpr := &ast.FunctionExpression{Id: id, Params: fn.Params, Body: body}
		out = append(out, assign(fn.Id.Name, fnExpr))
	}
	return out
}

// finalizeProgram runs the same procedure as finalizeFunctionBody for a
// Program root, then wraps the result as an immediately invoked function
// receiving the host global object.
func (e *entity) finalizeProgram(body []ast.Node) *ast.Program {
	found := decls.Collect(body)
	normalized := e.normalizeStatementList(body, "", "")
	normalized = append(e.functionDeclPrelude(found), normalized...)
	if varDecl := e.hoistedVarDecl(localDeclNames(found)); varDecl != nil {
		normalized = append([]ast.Node{varDecl}, normalized...)
	}

	fn := &ast.FunctionExpression{
		Id:     nil,
		Params: []*ast.Identifier{{Name: globalObject}},
		Body:   e.block(normalized),
	}
	call := &ast.CallExpression{Callee: fn, Arguments: []ast.Expr{&ast.ThisExpression{}}}
	return ast.NewProgram(ast.NewExpressionStatement(call))
}
