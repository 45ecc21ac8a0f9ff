package normalize

import (
	"github.com/threeaddr/jsnorm/ast"
	"github.com/threeaddr/jsnorm/cflow"
	"github.com/threeaddr/jsnorm/normalizeerr"
	"github.com/threeaddr/jsnorm/scope"
)

// normalizeStatement rewrites stmt into its three-address form. brkLabel and
// contLabel, when non-empty, are the synthesized labels an unlabeled break
// or continue inside stmt should target; empty means no enclosing loop or
// switch, so an unlabeled jump there is fatal.
func (e *entity) normalizeStatement(stmt ast.Node, brkLabel, contLabel string) []ast.Node {
	switch s := stmt.(type) {
	case nil:
		return nil

	case *ast.EmptyStatement:
		return nil

	case *ast.ExpressionStatement:
		return e.normalizeExprStatement(s.Expression)

	case *ast.VariableDeclaration:
		var out []ast.Node
		for _, d := range s.Declarations {
			if d.Init == nil {
				continue
			}
			stmts, _ := e.normalizeAssignment(&ast.AssignmentExpression{Operator: "=", Left: d.Id, Right: d.Init}, "")
			out = append(out, stmts...)
		}
		return out

	case *ast.FunctionDeclaration:
		return nil

	case *ast.BlockStatement:
		return e.normalizeStatementList(s.Body, brkLabel, contLabel)

	case *ast.ReturnStatement:
		return e.normalizeReturn(s)

	case *ast.DebuggerStatement:
		return []ast.Node{s}

	case *ast.IfStatement:
		testStmts, testName := e.normalizeExpr(s.Test, "")
		thenStmts := e.normalizeStatement(s.Consequent, brkLabel, contLabel)
		hasElse := s.Alternate != nil
		var elseStmts []ast.Node
		if hasElse {
			elseStmts = e.normalizeStatement(s.Alternate, brkLabel, contLabel)
		}
		ifStmts := e.mkIf(testName, thenStmts, hasElse, elseStmts)
		return append(testStmts, ifStmts...)

	case *ast.ThrowStatement:
		stmts, name := e.normalizeExpr(s.Argument, "")
		return append(stmts, ast.NewThrowStatement(ident(name)))

	case *ast.TryStatement:
		return e.normalizeTry(s, brkLabel, contLabel)

	case *ast.LabeledStatement:
		return e.normalizeLabeled(s, contLabel)

	case *ast.BreakStatement:
		if s.Label != "" {
			return []ast.Node{s}
		}
		if brkLabel == "" {
			e.fail(normalizeerr.ReasonUnresolvedLabel, "break outside a loop or switch")
		}
		return []ast.Node{ast.NewBreakStatement(brkLabel)}

	case *ast.ContinueStatement:
		if s.Label != "" {
			target, ok := e.contTargets[s.Label]
			if !ok {
				e.fail(normalizeerr.ReasonUnresolvedLabel, "continue targets unknown label %q", s.Label)
			}
			return []ast.Node{ast.NewBreakStatement(target)}
		}
		if contLabel == "" {
			e.fail(normalizeerr.ReasonUnresolvedLabel, "continue outside a loop")
		}
		return []ast.Node{ast.NewBreakStatement(contLabel)}

	case *ast.WhileStatement:
		stmts, _, _ := e.normalizeWhile(s, nil)
		return stmts

	case *ast.DoWhileStatement:
		stmts, _, _ := e.normalizeDoWhile(s, nil)
		return stmts

	case *ast.ForStatement:
		stmts, _, _ := e.normalizeFor(s, nil)
		return stmts

	case *ast.ForInStatement:
		stmts, _, _ := e.normalizeForIn(s, nil)
		return stmts

	case *ast.SwitchStatement:
		return e.normalizeSwitch(s, contLabel)

	case *ast.WithStatement:
		return e.normalizeWith(s, brkLabel, contLabel)

	default:
		e.fail(normalizeerr.ReasonUnsupportedNode, "unsupported statement node %T", stmt)
		panic("unreachable")
	}
}

func (e *entity) normalizeStatementList(body []ast.Node, brkLabel, contLabel string) []ast.Node {
	var out []ast.Node
	for _, s := range body {
		out = append(out, e.normalizeStatement(s, brkLabel, contLabel)...)
	}
	return out
}

func (e *entity) normalizeReturn(s *ast.ReturnStatement) []ast.Node {
	if e.opts.UnifyRet {
		if s.Argument == nil {
			return []ast.Node{assign(e.retVar, &ast.Literal{Value: nil}), ast.NewBreakStatement(e.retLabel)}
		}
		stmts, _ := e.normalizeExpr(s.Argument, e.retVar)
		return append(stmts, ast.NewBreakStatement(e.retLabel))
	}
	if s.Argument == nil {
		return []ast.Node{ast.NewReturnStatement(nil)}
	}
	stmts, name := e.normalizeExpr(s.Argument, "")
	return append(stmts, ast.NewReturnStatement(ident(name)))
}

func (e *entity) normalizeTry(s *ast.TryStatement, brkLabel, contLabel string) []ast.Node {
	if s.Handler != nil && s.Finalizer != nil {
		inner := ast.NewTryStatement(s.Block, s.Handler, nil)
		rewritten := ast.NewTryStatement(ast.NewBlockStatement(inner), nil, s.Finalizer)
		return e.normalizeTry(rewritten, brkLabel, contLabel)
	}
	if s.Handler != nil {
		blockStmts := e.normalizeStatementList(s.Block.Body, brkLabel, contLabel)

		savedScope := e.scope
		var param *ast.Identifier
		if s.Handler.Param != nil {
			param = s.Handler.Param
			e.scope = scope.Catch(savedScope, param.Name)
		}
		handlerStmts := e.normalizeStatementList(s.Handler.Body.Body, brkLabel, contLabel)
		e.scope = savedScope

		newHandler := ast.NewCatchClause(param, e.block(handlerStmts))
		return []ast.Node{ast.NewTryStatement(e.block(blockStmts), newHandler, nil)}
	}
	if s.Finalizer != nil {
		blockStmts := e.normalizeStatementList(s.Block.Body, brkLabel, contLabel)
		if len(s.Finalizer.Body) == 0 {
			return blockStmts
		}
		finalStmts := e.normalizeStatementList(s.Finalizer.Body, brkLabel, contLabel)
		return []ast.Node{ast.NewTryStatement(e.block(blockStmts), nil, e.block(finalStmts))}
	}
	return e.normalizeStatementList(s.Block.Body, brkLabel, contLabel)
}

// normalizeLabeled implements the single-label case: a label wrapping a
// non-loop statement. A label wrapping a loop (through any number of
// nested labels) is handled by normalizeLoopReturningLabels instead, which
// also registers the continue-target mapping every wrapped label needs.
func (e *entity) normalizeLabeled(s *ast.LabeledStatement, contLabel string) []ast.Node {
	if isLoopThroughLabels(s.Body) {
		stmts, _, _ := e.normalizeLoopReturningLabels(s)
		return stmts
	}
	bodyStmts := e.normalizeStatement(s.Body, s.Label, contLabel)
	return []ast.Node{ast.NewLabeledStatement(s.Label, e.block(bodyStmts))}
}

func isLoopThroughLabels(n ast.Node) bool {
	switch b := n.(type) {
	case *ast.WhileStatement, *ast.DoWhileStatement, *ast.ForStatement, *ast.ForInStatement:
		return true
	case *ast.LabeledStatement:
		return isLoopThroughLabels(b.Body)
	default:
		return false
	}
}

// normalizeLoopReturningLabels normalizes n (a loop, possibly wrapped in one
// or more LabeledStatements). Every wrapping label is registered against
// the loop's own synthesized continue label before the loop's body is
// normalized, so that a "continue L" statement reached while normalizing
// that very body already resolves, including the direct case where L
// labels the loop it appears in.
func (e *entity) normalizeLoopReturningLabels(n ast.Node) (stmts []ast.Node, brkLbl, contLbl string) {
	labels, loop := collectLoopLabels(n)
	switch b := loop.(type) {
	case *ast.WhileStatement:
		stmts, brkLbl, contLbl = e.normalizeWhile(b, labels)
	case *ast.DoWhileStatement:
		stmts, brkLbl, contLbl = e.normalizeDoWhile(b, labels)
	case *ast.ForStatement:
		stmts, brkLbl, contLbl = e.normalizeFor(b, labels)
	case *ast.ForInStatement:
		stmts, brkLbl, contLbl = e.normalizeForIn(b, labels)
	default:
		panic("normalizeLoopReturningLabels: not a loop")
	}
	for i := len(labels) - 1; i >= 0; i-- {
		stmts = []ast.Node{ast.NewLabeledStatement(labels[i], e.block(stmts))}
	}
	return stmts, brkLbl, contLbl
}

// collectLoopLabels peels every LabeledStatement wrapping a loop, outermost
// first, returning the accumulated labels alongside the loop node itself.
func collectLoopLabels(n ast.Node) (labels []string, loop ast.Node) {
	for {
		ls, ok := n.(*ast.LabeledStatement)
		if !ok {
			return labels, n
		}
		labels = append(labels, ls.Label)
		n = ls.Body
	}
}

// registerContTargets maps every label in labels to contLbl, so a labeled
// continue reached anywhere in the loop's body (including its own direct
// label) resolves to this loop's per-iteration recheck step.
func (e *entity) registerContTargets(labels []string, contLbl string) {
	if len(labels) == 0 {
		return
	}
	if e.contTargets == nil {
		e.contTargets = map[string]string{}
	}
	for _, label := range labels {
		e.contTargets[label] = contLbl
	}
}

func (e *entity) normalizeWhile(s *ast.WhileStatement, labels []string) (stmts []ast.Node, brkLbl, contLbl string) {
	condTmp := e.genTmp(false)
	brkLbl = e.genTmp(true)
	contLbl = e.genTmp(true)
	e.registerContTargets(labels, contLbl)

	condStmts, _ := e.normalizeExpr(s.Test, condTmp)
	bodyStmts := e.normalizeStatement(s.Body, brkLbl, contLbl)
	recompute, _ := e.normalizeExpr(s.Test, condTmp)

	innerBlock := ast.NewLabeledStatement(contLbl, e.block(bodyStmts))
	loopBody := append([]ast.Node{innerBlock}, recompute...)
	whileStmt := ast.NewWhileStatement(ident(condTmp), e.block(loopBody))
	labeledWhile := ast.NewLabeledStatement(brkLbl, whileStmt)

	stmts = append(condStmts, labeledWhile)
	return stmts, brkLbl, contLbl
}

func (e *entity) normalizeDoWhile(s *ast.DoWhileStatement, labels []string) (stmts []ast.Node, brkLbl, contLbl string) {
	condTmp := e.genTmp(false)
	brkLbl = e.genTmp(true)
	contLbl = e.genTmp(true)
	e.registerContTargets(labels, contLbl)

	prime := assign(condTmp, boolLit(true))
	bodyStmts := e.normalizeStatement(s.Body, brkLbl, contLbl)
	recompute, _ := e.normalizeExpr(s.Test, condTmp)

	innerBlock := ast.NewLabeledStatement(contLbl, e.block(bodyStmts))
	loopBody := append([]ast.Node{innerBlock}, recompute...)
	whileStmt := ast.NewWhileStatement(ident(condTmp), e.block(loopBody))
	labeledWhile := ast.NewLabeledStatement(brkLbl, whileStmt)

	stmts = []ast.Node{prime, labeledWhile}
	return stmts, brkLbl, contLbl
}

func (e *entity) normalizeFor(s *ast.ForStatement, labels []string) (stmts []ast.Node, brkLbl, contLbl string) {
	var initStmts []ast.Node
	switch init := s.Init.(type) {
	case nil:
	case *ast.VariableDeclaration:
		initStmts = e.normalizeStatement(init, "", "")
	case ast.Expr:
		st, _ := e.normalizeExpr(init, "")
		initStmts = st
	}

	condVar := e.genTmp(false)
	brkLbl = e.genTmp(true)
	contLbl = e.genTmp(true)
	e.registerContTargets(labels, contLbl)

	var cond1 []ast.Node
	if s.Test != nil {
		cond1, _ = e.normalizeExpr(s.Test, condVar)
	} else {
		cond1 = []ast.Node{assign(condVar, boolLit(true))}
	}

	bodyStmts := e.normalizeStatement(s.Body, brkLbl, contLbl)

	var updateStmts []ast.Node
	if s.Update != nil {
		updateStmts = e.normalizeExprStatement(s.Update)
	}

	var cond2 []ast.Node
	if s.Test != nil {
		cond2, _ = e.normalizeExpr(s.Test, condVar)
	}

	innerBlock := ast.NewLabeledStatement(contLbl, e.block(bodyStmts))
	loopBody := []ast.Node{innerBlock}
	loopBody = append(loopBody, updateStmts...)
	loopBody = append(loopBody, cond2...)
	whileStmt := ast.NewWhileStatement(ident(condVar), e.block(loopBody))
	labeledWhile := ast.NewLabeledStatement(brkLbl, whileStmt)

	stmts = append(initStmts, cond1...)
	stmts = append(stmts, labeledWhile)
	return stmts, brkLbl, contLbl
}

func (e *entity) normalizeForIn(s *ast.ForInStatement, labels []string) (stmts []ast.Node, brkLbl, contLbl string) {
	rightStmts, rightName := e.normalizeExpr(s.Right, "")

	var lhsIdent *ast.Identifier
	switch left := s.Left.(type) {
	case *ast.VariableDeclaration:
		lhsIdent = left.Declarations[0].Id
	case *ast.Identifier:
		lhsIdent = left
	case *ast.MemberExpression:
		e.fail(normalizeerr.ReasonForInMemberLHS, "for-in left-hand side may not be a member expression")
	default:
		e.fail(normalizeerr.ReasonInvalidAssignmentTarget, "unsupported for-in left-hand side %T", s.Left)
	}

	var loopVar string
	var needsWriteBack bool
	if e.scope.IsLocal(lhsIdent.Name) {
		loopVar = lhsIdent.Name
	} else {
		loopVar = e.genTmp(false)
		needsWriteBack = true
	}

	brkLbl = e.genTmp(true)
	contLbl = e.genTmp(true)
	e.registerContTargets(labels, contLbl)

	var bodyPrefix []ast.Node
	if needsWriteBack {
		writeStmts, _ := e.normalizeAssignment(&ast.AssignmentExpression{Operator: "=", Left: lhsIdent, Right: ident(loopVar)}, "")
		bodyPrefix = writeStmts
	}
	bodyStmts := e.normalizeStatement(s.Body, brkLbl, contLbl)
	fullBody := append(bodyPrefix, bodyStmts...)

	innerBlock := ast.NewLabeledStatement(contLbl, e.block(fullBody))
	forIn := ast.NewForInStatement(ident(loopVar), ident(rightName), e.block([]ast.Node{innerBlock}))
	labeled := ast.NewLabeledStatement(brkLbl, forIn)

	stmts = append(rightStmts, labeled)
	return stmts, brkLbl, contLbl
}

// normalizeSwitch rewrites a switch into a chain of ifs, resolving
// fall-through by reverse-scanning the cases: a case whose own consequent
// may complete normally has the fall-through-resolved body of the case
// after it appended to its own.
func (e *entity) normalizeSwitch(s *ast.SwitchStatement, contLabel string) []ast.Node {
	discStmts, discName := e.normalizeExpr(s.Discriminant, "")
	brkLbl := e.genTmp(true)

	n := len(s.Cases)
	own := make([][]ast.Node, n)
	completesNormally := make([]bool, n)
	for i, c := range s.Cases {
		own[i] = e.normalizeStatementList(c.Consequent, brkLbl, contLabel)
		completesNormally[i] = cflow.MayCompleteNormally(ast.NewBlockStatement(c.Consequent...))
	}

	accumulated := make([][]ast.Node, n)
	defaultIndex := -1
	var nextBody []ast.Node
	for i := n - 1; i >= 0; i-- {
		if completesNormally[i] {
			accumulated[i] = append(append([]ast.Node{}, own[i]...), nextBody...)
		} else {
			accumulated[i] = own[i]
		}
		nextBody = accumulated[i]
		if s.Cases[i].Test == nil {
			defaultIndex = i
		}
	}

	var tail []ast.Node
	if defaultIndex >= 0 {
		tail = accumulated[defaultIndex]
	}

	result := tail
	for i := n - 1; i >= 0; i-- {
		if s.Cases[i].Test == nil {
			continue
		}
		testStmts, testName := e.normalizeExpr(s.Cases[i].Test, "")
		eqTmp := e.genTmp(false)
		eqAssign := assign(eqTmp, &ast.BinaryExpression{Operator: "===", Left: ident(discName), Right: ident(testName)})
		ifStmts := e.mkIf(eqTmp, accumulated[i], true, result)
		combined := append(testStmts, eqAssign)
		combined = append(combined, ifStmts...)
		result = combined
	}

	labeled := ast.NewLabeledStatement(brkLbl, e.block(result))
	return append(discStmts, labeled)
}

func (e *entity) normalizeWith(s *ast.WithStatement, brkLabel, contLabel string) []ast.Node {
	objStmts, objName := e.normalizeExpr(s.Object, "")
	savedScope := e.scope
	e.scope = scope.With(savedScope, objName)
	bodyStmts := e.normalizeStatement(s.Body, brkLabel, contLabel)
	e.scope = savedScope
	return append(objStmts, bodyStmts...)
}
