// Package cflow answers reachability questions about statement trees that
// the normalizer needs when deciding whether to synthesize a trailing
// return and whether a switch case falls through to the next one.
package cflow

import "github.com/threeaddr/jsnorm/ast"

// MayCompleteNormally reports whether control can fall off the end of stmt
// without having taken a return, throw, break, or continue. When return
// points are not unified, a function body for which this is true gets a
// synthesized trailing "return null;".
func MayCompleteNormally(stmt ast.Node) bool {
	if stmt == nil {
		return true
	}
	switch s := stmt.(type) {
	case *ast.ReturnStatement, *ast.ThrowStatement, *ast.BreakStatement, *ast.ContinueStatement:
		return false

	case *ast.BlockStatement:
		return blockMayCompleteNormally(s.Body)

	case *ast.IfStatement:
		if s.Alternate == nil {
			return true
		}
		return MayCompleteNormally(s.Consequent) || MayCompleteNormally(s.Alternate)

	case *ast.TryStatement:
		return tryMayCompleteNormally(s)

	case *ast.LabeledStatement:
		// A break targeting this label re-enters normal completion here,
		// so a labeled statement whose body never falls through can
		// still complete normally via an internal break.
		return MayCompleteNormally(s.Body) || labelIsBreakTarget(s.Body, s.Label)

	case *ast.WhileStatement:
		// A while whose test is a compile-time truthy literal with no
		// reachable break only completes via break; treated conservatively
		// as completing normally unless it is provably infinite, which
		// this analysis does not attempt to prove.
		return true

	case *ast.DoWhileStatement, *ast.ForStatement, *ast.ForInStatement:
		return true

	case *ast.SwitchStatement:
		return switchMayCompleteNormally(s)

	case *ast.WithStatement:
		return MayCompleteNormally(s.Body)

	case *ast.VariableDeclaration, *ast.ExpressionStatement, *ast.EmptyStatement,
		*ast.DebuggerStatement, *ast.FunctionDeclaration:
		return true

	default:
		return true
	}
}

func blockMayCompleteNormally(body []ast.Node) bool {
	if len(body) == 0 {
		return true
	}
	// Only the reachability of the final statement matters for whether
	// control falls off the end; a statement's ability to jump out
	// (return/throw/break/continue) always halts sequencing, so an
	// early-halting non-final statement makes later statements dead but
	// does not itself affect this result beyond that.
	return MayCompleteNormally(body[len(body)-1])
}

func tryMayCompleteNormally(s *ast.TryStatement) bool {
	if s.Finalizer != nil && !blockMayCompleteNormally(s.Finalizer.Body) {
		return false
	}
	blockCompletes := blockMayCompleteNormally(s.Block.Body)
	if s.Handler == nil {
		return blockCompletes
	}
	return blockCompletes || blockMayCompleteNormally(s.Handler.Body.Body)
}

func switchMayCompleteNormally(s *ast.SwitchStatement) bool {
	if len(s.Cases) == 0 {
		return true
	}
	hasDefault := false
	for _, c := range s.Cases {
		if c.Test == nil {
			hasDefault = true
		}
	}
	if !hasDefault {
		return true // discriminant may match nothing, falling off the end
	}
	last := s.Cases[len(s.Cases)-1]
	if blockMayCompleteNormally(last.Consequent) {
		return true
	}
	// A reachable unlabeled break anywhere in the switch body is absorbed
	// here, not by some further-out construct, so it re-enters normal
	// completion of the switch exactly as labelIsBreakTarget does for
	// labels, regardless of which case it sits in.
	for _, c := range s.Cases {
		if unlabeledBreakTargetsThis(c.Consequent) {
			return true
		}
	}
	return false
}

// unlabeledBreakTargetsThis reports whether an unlabeled break reachable
// from body would be caught by the switch under analysis, i.e. it isn't
// absorbed first by a nested loop, nested switch, or function boundary.
func unlabeledBreakTargetsThis(body []ast.Node) bool {
	found := false
	ast.Inspect(ast.NewBlockStatement(body...), func(n ast.Node) bool {
		if found {
			return false
		}
		if b, ok := n.(*ast.BreakStatement); ok {
			if b.Label == "" {
				found = true
			}
			return false
		}
		switch n.(type) {
		case *ast.WhileStatement, *ast.DoWhileStatement, *ast.ForStatement,
			*ast.ForInStatement, *ast.SwitchStatement:
			// An unlabeled break inside one of these is caught there
			// first, never reaching this switch.
			return false
		case *ast.FunctionExpression, *ast.FunctionDeclaration:
			return false
		}
		return true
	})
	return found
}

func labelIsBreakTarget(stmt ast.Node, label string) bool {
	found := false
	ast.Inspect(stmt, func(n ast.Node) bool {
		if found {
			return false
		}
		if b, ok := n.(*ast.BreakStatement); ok && b.Label == label {
			found = true
			return false
		}
		// Do not descend into nested functions; their break statements
		// cannot target an outer label.
		if _, isFn := n.(*ast.FunctionExpression); isFn {
			return false
		}
		if _, isFn := n.(*ast.FunctionDeclaration); isFn {
			return false
		}
		return true
	})
	return found
}
