// Package decls collects the var and function declarations that hoist to
// the top of an enclosing function or program body.
package decls

import "github.com/threeaddr/jsnorm/ast"

// Declarations holds the hoisted bindings found within a single function or
// program body, not descending into nested functions.
type Declarations struct {
	// Vars lists every VariableDeclarator found, in source order,
	// including ones with an initializer (the initializer itself is not
	// hoisted, only the binding).
	Vars []*ast.VariableDeclarator
	// Functions lists every FunctionDeclaration found, in source order.
	// When two declarations share a name, JavaScript-style hoisting
	// keeps the last one; callers that need that resolved view should
	// use ResolvedFunctions.
	Functions []*ast.FunctionDeclaration
}

// ResolvedFunctions returns Functions with duplicate names resolved to the
// last occurrence, preserving the position of that last occurrence.
func (d *Declarations) ResolvedFunctions() []*ast.FunctionDeclaration {
	lastIndex := map[string]int{}
	for i, fn := range d.Functions {
		lastIndex[fn.Id.Name] = i
	}
	var out []*ast.FunctionDeclaration
	seen := map[string]bool{}
	for i, fn := range d.Functions {
		if lastIndex[fn.Id.Name] != i {
			continue
		}
		if seen[fn.Id.Name] {
			continue
		}
		seen[fn.Id.Name] = true
		out = append(out, fn)
	}
	return out
}

// Collect walks the statements of a function or program body, gathering
// every var declarator and function declaration reachable without crossing
// into a nested function body.
func Collect(body []ast.Node) *Declarations {
	d := &Declarations{}
	collectStatements(body, d)
	return d
}

func collectStatements(stmts []ast.Node, d *Declarations) {
	for _, stmt := range stmts {
		collectStatement(stmt, d)
	}
}

func collectStatement(stmt ast.Node, d *Declarations) {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		d.Vars = append(d.Vars, s.Declarations...)

	case *ast.FunctionDeclaration:
		d.Functions = append(d.Functions, s)

	case *ast.BlockStatement:
		collectStatements(s.Body, d)

	case *ast.IfStatement:
		collectStatement(s.Consequent, d)
		if s.Alternate != nil {
			collectStatement(s.Alternate, d)
		}

	case *ast.WhileStatement:
		collectStatement(s.Body, d)

	case *ast.DoWhileStatement:
		collectStatement(s.Body, d)

	case *ast.ForStatement:
		if init, ok := s.Init.(*ast.VariableDeclaration); ok {
			d.Vars = append(d.Vars, init.Declarations...)
		}
		collectStatement(s.Body, d)

	case *ast.ForInStatement:
		if left, ok := s.Left.(*ast.VariableDeclaration); ok {
			d.Vars = append(d.Vars, left.Declarations...)
		}
		collectStatement(s.Body, d)

	case *ast.TryStatement:
		collectStatements(s.Block.Body, d)
		if s.Handler != nil {
			collectStatements(s.Handler.Body.Body, d)
		}
		if s.Finalizer != nil {
			collectStatements(s.Finalizer.Body, d)
		}

	case *ast.LabeledStatement:
		collectStatement(s.Body, d)

	case *ast.SwitchStatement:
		for _, c := range s.Cases {
			collectStatements(c.Consequent, d)
		}

	case *ast.WithStatement:
		collectStatement(s.Body, d)

	// ExpressionStatement, ReturnStatement, ThrowStatement,
	// BreakStatement, ContinueStatement, EmptyStatement,
	// DebuggerStatement declare nothing and are leaves for this walk.
	default:
	}
}

// DeclName returns the bound name of a declaration node produced by
// Collect.
func DeclName(n ast.Node) string {
	switch d := n.(type) {
	case *ast.VariableDeclarator:
		return d.Id.Name
	case *ast.FunctionDeclaration:
		return d.Id.Name
	default:
		panic("decls.DeclName: not a declaration node")
	}
}
