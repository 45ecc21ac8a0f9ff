// Package normalize rewrites a full source AST into three-address normal
// form: every expression node is at most one operation deep, and every
// side effect is named through a fresh temporary before it is used.
package normalize

import (
	"github.com/threeaddr/jsnorm/ast"
	"github.com/threeaddr/jsnorm/decls"
	"github.com/threeaddr/jsnorm/normalizeerr"
	"github.com/threeaddr/jsnorm/scope"
)

// Normalize rewrites root into its normal form under opts. root must be
// either a *ast.Program or a top-level *ast.FunctionDeclaration /
// *ast.FunctionExpression. A fatal normalization error aborts the call and
// returns a non-nil error; the input tree is left only with the "exposed"
// attribute possibly set on captured bindings, per the documented mutation
// contract.
func Normalize(root ast.Node, opts Options) (result ast.Node, err error) {
	opts = opts.canonicalize()

	defer func() {
		if r := recover(); r != nil {
			nerr, ok := r.(*normalizeerr.Error)
			if !ok {
				panic(r)
			}
			err = nerr
			result = nil
		}
	}()

	counter := new(int)
	global := scope.Global()

	switch r := root.(type) {
	case *ast.Program:
		declareTopLevel(global, r.Body)
		e := newEntity(opts, counter, global, false)
		return e.finalizeProgram(r.Body), nil

	case *ast.FunctionDeclaration:
		fnScope := scope.Function(global)
		for _, p := range r.Params {
			fnScope.Declare(p.Name)
		}
		e := newEntity(opts, counter, fnScope, true)
		body := e.finalizeFunctionBody(r.Body)
		return &ast.FunctionDeclaration{Id: r.Id, Params: r.Params, Body: body}, nil

	case *ast.FunctionExpression:
		if ast.IsExposed(r) {
			return nil, normalizeerr.New(normalizeerr.ReasonExposedFunctionExpression, "cannot normalize a downward-exposed function expression")
		}
		fnScope := scope.Function(global)
		for _, p := range r.Params {
			fnScope.Declare(p.Name)
		}
		e := newEntity(opts, counter, fnScope, true)
		body := e.finalizeFunctionBody(r.Body)
		return &ast.FunctionExpression{Id: r.Id, Params: r.Params, Body: body}, nil

	default:
		return nil, normalizeerr.Newf(normalizeerr.ReasonUnsupportedNode, "normalize root must be a Program or top-level function, got %T", root)
	}
}

// declareTopLevel pre-declares every hoisted var and function name directly
// in the global scope before normalization begins, so that a forward
// reference to a later declaration still resolves as declared-global rather
// than an implicit global.
func declareTopLevel(g *scope.Scope, body []ast.Node) {
	for _, name := range localDeclNames(decls.Collect(body)) {
		g.Declare(name)
	}
}
