package normalize

import (
	"fmt"

	"github.com/threeaddr/jsnorm/ast"
	"github.com/threeaddr/jsnorm/decls"
	"github.com/threeaddr/jsnorm/normalizeerr"
	"github.com/threeaddr/jsnorm/scope"
)

// globalObject is the reserved identifier bound to the host global object
// at program entry.
const globalObject = "__global"

// entity is the per-function/per-program normalization state described in
// the data model: the temporary list, the fresh-name counter, the unified
// return bookkeeping, and the current scope chain.
type entity struct {
	opts    Options
	counter *int
	tmps    []*ast.VariableDeclarator
	scope   *scope.Scope
	bb      blockBuilder

	// isFunction is false only for the entity normalizing a Program root.
	// It gates the "exposed" marking: a binding is exposed only when the
	// assignment writing to it happens inside a nested function.
	isFunction bool

	// contTargets maps a user-written label to the synthesized continue
	// target of the loop it labels, populated while normalizing labeled
	// loops and consulted by labeled continue statements.
	contTargets map[string]string

	retLabel string // set only under UnifyRet, at function roots
	retVar   string
}

func newEntity(opts Options, counter *int, sc *scope.Scope, isFunction bool) *entity {
	return &entity{
		opts:       opts,
		counter:    counter,
		scope:      sc,
		bb:         blockBuilder{compat: opts.BackwardsCompatible},
		isFunction: isFunction,
	}
}

// child creates a nested entity for a function body, sharing the counter
// and options but starting a fresh temporary list and scope.
func (e *entity) child(sc *scope.Scope) *entity {
	return newEntity(e.opts, e.counter, sc, true)
}

// fail aborts the current Normalize call by panicking with a
// *normalizeerr.Error, caught at the top-level entry point.
func (e *entity) fail(reason normalizeerr.Reason, format string, args ...any) {
	panic(normalizeerr.Newf(reason, format, args...))
}

// genTmp returns a fresh "tmp<k>" name. Unless isLabel, it also appends a
// declarator for the temporary to this entity's hoisted var list.
func (e *entity) genTmp(isLabel bool) string {
	name := fmt.Sprintf("tmp%d", *e.counter)
	*e.counter++
	if !isLabel {
		e.tmps = append(e.tmps, ast.NewVariableDeclarator(&ast.Identifier{Name: name}, nil))
	}
	return name
}

// genTmps returns n fresh temporary names.
func (e *entity) genTmps(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = e.genTmp(false)
	}
	return names
}

// getTarget returns target unchanged if non-empty, otherwise allocates a
// fresh temporary.
func (e *entity) getTarget(target string) string {
	if target == "" {
		return e.genTmp(false)
	}
	return target
}

// IsTmp reports whether name matches the generated-temporary naming
// scheme "tmp<k>".
func IsTmp(name string) bool {
	if len(name) < 4 || name[:3] != "tmp" {
		return false
	}
	for _, c := range name[3:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// blockBuilder localizes the compatibility-mode empty-statement and
// trailing-if rewrites as per-call state rather than a global mutation of
// the AST factory.
type blockBuilder struct {
	compat bool
}

// empty returns the node used to represent an arm with no statements: a
// bare EmptyStatement normally, or an empty BlockStatement in
// backwards-compatible mode.
func (b blockBuilder) empty() ast.Node {
	if b.compat {
		return ast.NewBlockStatement()
	}
	return ast.NewEmptyStatement()
}

// finish appends a trailing empty statement after a block that ends with
// an IfStatement, in backwards-compatible mode only.
func (b blockBuilder) finish(body []ast.Node) []ast.Node {
	if !b.compat || len(body) == 0 {
		return body
	}
	if _, ok := body[len(body)-1].(*ast.IfStatement); ok {
		return append(body, ast.NewEmptyStatement())
	}
	return body
}

// block wraps body as a single BlockStatement node, applying finish.
func (e *entity) block(body []ast.Node) *ast.BlockStatement {
	return ast.NewBlockStatement(e.bb.finish(body)...)
}

// armNode returns the node to use for one arm of an if: the empty-arm
// placeholder if body has no statements, otherwise a block.
func (e *entity) armNode(body []ast.Node) ast.Node {
	if len(body) == 0 {
		return e.bb.empty()
	}
	return e.block(body)
}

// mkIf builds the statement(s) realizing an if with the given normalized
// arms, applying unfold_ifs when both arms are non-empty.
func (e *entity) mkIf(condName string, thenStmts []ast.Node, hasElse bool, elseStmts []ast.Node) []ast.Node {
	if !hasElse {
		ifStmt := ast.NewIfStatement(&ast.Identifier{Name: condName}, e.armNode(thenStmts), nil)
		return e.bb.finish([]ast.Node{ifStmt})
	}
	if e.opts.UnfoldIfs && len(thenStmts) > 0 && len(elseStmts) > 0 {
		capture := e.genTmp(false)
		out := []ast.Node{assign(capture, ident(condName))}
		first := ast.NewIfStatement(&ast.Identifier{Name: condName}, e.block(thenStmts), ast.NewBlockStatement())
		second := ast.NewIfStatement(&ast.Identifier{Name: capture}, ast.NewBlockStatement(), e.block(elseStmts))
		out = append(out, first, second)
		return e.bb.finish(out)
	}
	ifStmt := ast.NewIfStatement(&ast.Identifier{Name: condName}, e.armNode(thenStmts), e.armNode(elseStmts))
	return e.bb.finish([]ast.Node{ifStmt})
}

// hoistedVarDecl builds the single var declaration listing every local
// name declared in this entity's body plus every generated temporary, in
// deterministic order: decls first (in collector order), then tmps (in
// allocation order).
func (e *entity) hoistedVarDecl(localNames []string) *ast.VariableDeclaration {
	seen := map[string]bool{}
	var decls []*ast.VariableDeclarator
	for _, name := range localNames {
		if seen[name] {
			continue
		}
		seen[name] = true
		decls = append(decls, ast.NewVariableDeclarator(&ast.Identifier{Name: name}, nil))
	}
	for _, d := range e.tmps {
		if seen[d.Id.Name] {
			continue
		}
		seen[d.Id.Name] = true
		decls = append(decls, d)
	}
	if len(decls) == 0 {
		return nil
	}
	return ast.NewVariableDeclaration(decls...)
}

// localDeclNames returns the deduplicated, insertion-ordered names of
// every var declarator collected for this entity's body, followed by the
// resolved function declaration names (those get their own prelude
// assignment but still need a var slot).
func localDeclNames(d *decls.Declarations) []string {
	seen := map[string]bool{}
	var names []string
	for _, v := range d.Vars {
		name := decls.DeclName(v)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, fn := range d.ResolvedFunctions() {
		name := decls.DeclName(fn)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
