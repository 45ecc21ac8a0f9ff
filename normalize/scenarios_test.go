package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/threeaddr/jsnorm/ast"
)

// TestArithmeticIsFlattenedInSourceOrder covers "a + b * c;": every operand
// is read into its own temporary before use, and the two operands of the
// outer addition are evaluated in source order (a, then the b*c product),
// matching the left-to-right evaluation-order invariant.
func TestArithmeticIsFlattenedInSourceOrder(t *testing.T) {
	a, b, c := param("a"), param("b"), param("c")
	stmt := ast.NewExpressionStatement(&ast.BinaryExpression{
		Operator: "+",
		Left:     &ast.Identifier{Name: "a"},
		Right: &ast.BinaryExpression{
			Operator: "*",
			Left:     &ast.Identifier{Name: "b"},
			Right:    &ast.Identifier{Name: "c"},
		},
	})

	body := functionBody(t, []*ast.Identifier{a, b, c}, []ast.Node{stmt}, Options{})
	_, body = stripVarDecl(body)
	body = dropTrailingReturn(t, body)
	require.Len(t, body, 5)

	a1 := asAssign(t, body[0])
	require.Equal(t, "a", identName(t, a1.Right))
	aName := identName(t, a1.Left)

	a2 := asAssign(t, body[1])
	require.Equal(t, "b", identName(t, a2.Right))
	bName := identName(t, a2.Left)

	a3 := asAssign(t, body[2])
	require.Equal(t, "c", identName(t, a3.Right))
	cName := identName(t, a3.Left)

	a4 := asAssign(t, body[3])
	mulBin, ok := a4.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "*", mulBin.Operator)
	require.Equal(t, bName, identName(t, mulBin.Left))
	require.Equal(t, cName, identName(t, mulBin.Right))
	mulName := identName(t, a4.Left)

	a5 := asAssign(t, body[4])
	addBin, ok := a5.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "+", addBin.Operator)
	require.Equal(t, aName, identName(t, addBin.Left))
	require.Equal(t, mulName, identName(t, addBin.Right))
}

// TestMemberAssignmentEvaluatesBaseIndexThenValue covers "x.y = f(1);": the
// base object, then the dotted property name, then the call's own callee
// and argument, then finally the member write, each named through its own
// temporary.
func TestMemberAssignmentEvaluatesBaseIndexThenValue(t *testing.T) {
	x, f := param("x"), param("f")
	stmt := ast.NewExpressionStatement(&ast.AssignmentExpression{
		Operator: "=",
		Left: &ast.MemberExpression{
			Object:   &ast.Identifier{Name: "x"},
			Property: &ast.Identifier{Name: "y"},
			Computed: false,
		},
		Right: &ast.CallExpression{
			Callee:    &ast.Identifier{Name: "f"},
			Arguments: []ast.Expr{&ast.Literal{Value: float64(1)}},
		},
	})

	body := functionBody(t, []*ast.Identifier{x, f}, []ast.Node{stmt}, Options{})
	_, body = stripVarDecl(body)
	body = dropTrailingReturn(t, body)
	require.Len(t, body, 6)

	s1 := asAssign(t, body[0])
	require.Equal(t, "x", identName(t, s1.Right))
	baseName := identName(t, s1.Left)

	s2 := asAssign(t, body[1])
	lit, ok := s2.Right.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, "y", lit.Value)
	idxName := identName(t, s2.Left)

	s3 := asAssign(t, body[2])
	require.Equal(t, "f", identName(t, s3.Right))
	calleeName := identName(t, s3.Left)

	s4 := asAssign(t, body[3])
	argLit, ok := s4.Right.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, float64(1), argLit.Value)
	argName := identName(t, s4.Left)

	s5 := asAssign(t, body[4])
	call, ok := s5.Right.(*ast.CallExpression)
	require.True(t, ok)
	require.Equal(t, calleeName, identName(t, call.Callee))
	require.Len(t, call.Arguments, 1)
	require.Equal(t, argName, identName(t, call.Arguments[0]))
	callResult := identName(t, s5.Left)

	s6 := asAssign(t, body[5])
	mem, ok := s6.Left.(*ast.MemberExpression)
	require.True(t, ok)
	require.Equal(t, baseName, identName(t, mem.Object))
	require.Equal(t, idxName, identName(t, mem.Property))
	require.Equal(t, callResult, identName(t, s6.Right))
}

// TestReferenceErrorGuardsUndeclaredGlobalRead covers reading a bare
// identifier that resolves to an implicit, never-declared global under
// ReferenceErrors: the name is materialized once, then a runtime "in" check
// against the global object picks between the ordinary read and throwing a
// constructed ReferenceError.
func TestReferenceErrorGuardsUndeclaredGlobalRead(t *testing.T) {
	stmt := ast.NewExpressionStatement(&ast.Identifier{Name: "g"})
	body := programStatements(t, []ast.Node{stmt}, Options{ReferenceErrors: true})
	_, body = stripVarDecl(body)
	require.Len(t, body, 2)

	nameAssign := asAssign(t, body[0])
	lit, ok := nameAssign.Right.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, "g", lit.Value)
	nameTmp := identName(t, nameAssign.Left)

	ifStmt, ok := body[1].(*ast.IfStatement)
	require.True(t, ok)
	testBin, ok := ifStmt.Test.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "in", testBin.Operator)
	require.Equal(t, nameTmp, identName(t, testBin.Left))
	require.Equal(t, "__global", identName(t, testBin.Right))

	consequent, ok := ifStmt.Consequent.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, consequent.Body, 1)
	readAssign := asAssign(t, consequent.Body[0])
	mem, ok := readAssign.Right.(*ast.MemberExpression)
	require.True(t, ok)
	require.Equal(t, "__global", identName(t, mem.Object))
	require.Equal(t, nameTmp, identName(t, mem.Property))

	alternate, ok := ifStmt.Alternate.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, alternate.Body, 3)

	refAssign := asAssign(t, alternate.Body[0])
	refLit, ok := refAssign.Right.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, "ReferenceError", refLit.Value)
	refNameTmp := identName(t, refAssign.Left)

	errAssign := asAssign(t, alternate.Body[1])
	newExpr, ok := errAssign.Right.(*ast.NewExpression)
	require.True(t, ok)
	calleeMem, ok := newExpr.Callee.(*ast.MemberExpression)
	require.True(t, ok)
	require.Equal(t, "__global", identName(t, calleeMem.Object))
	require.Equal(t, refNameTmp, identName(t, calleeMem.Property))
	errTmp := identName(t, errAssign.Left)

	throwStmt, ok := alternate.Body[2].(*ast.ThrowStatement)
	require.True(t, ok)
	require.Equal(t, errTmp, identName(t, throwStmt.Argument))
}

// TestUnfoldIfsSplitsTwoArmedIf covers "if (a) { x(); } else { y(); }" under
// UnfoldIfs: the test is captured once, then split into two single-armed
// ifs sharing the captured value, each guarding one original arm.
func TestUnfoldIfsSplitsTwoArmedIf(t *testing.T) {
	a, x, y := param("a"), param("x"), param("y")
	ifStmt := ast.NewIfStatement(
		&ast.Identifier{Name: "a"},
		ast.NewBlockStatement(ast.NewExpressionStatement(&ast.CallExpression{Callee: &ast.Identifier{Name: "x"}})),
		ast.NewBlockStatement(ast.NewExpressionStatement(&ast.CallExpression{Callee: &ast.Identifier{Name: "y"}})),
	)

	body := functionBody(t, []*ast.Identifier{a, x, y}, []ast.Node{ifStmt}, Options{UnfoldIfs: true})
	_, body = stripVarDecl(body)
	body = dropTrailingReturn(t, body)
	require.Len(t, body, 4)

	a1 := asAssign(t, body[0])
	require.Equal(t, "a", identName(t, a1.Right))
	testName := identName(t, a1.Left)

	a2 := asAssign(t, body[1])
	require.Equal(t, testName, identName(t, a2.Right))
	captureName := identName(t, a2.Left)

	firstIf, ok := body[2].(*ast.IfStatement)
	require.True(t, ok)
	require.Equal(t, testName, identName(t, firstIf.Test))

	thenBlk, ok := firstIf.Consequent.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, thenBlk.Body, 2)
	xAssign := asAssign(t, thenBlk.Body[0])
	require.Equal(t, "x", identName(t, xAssign.Right))
	xCallee := identName(t, xAssign.Left)
	xCall := asAssign(t, thenBlk.Body[1])
	call, ok := xCall.Right.(*ast.CallExpression)
	require.True(t, ok)
	require.Equal(t, xCallee, identName(t, call.Callee))
	require.Empty(t, call.Arguments)

	elseBlk, ok := firstIf.Alternate.(*ast.BlockStatement)
	require.True(t, ok)
	require.Empty(t, elseBlk.Body)

	secondIf, ok := body[3].(*ast.IfStatement)
	require.True(t, ok)
	require.Equal(t, captureName, identName(t, secondIf.Test))

	thenBlk2, ok := secondIf.Consequent.(*ast.BlockStatement)
	require.True(t, ok)
	require.Empty(t, thenBlk2.Body)

	elseBlk2, ok := secondIf.Alternate.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, elseBlk2.Body, 2)
	yAssign := asAssign(t, elseBlk2.Body[0])
	require.Equal(t, "y", identName(t, yAssign.Right))
	yCallee := identName(t, yAssign.Left)
	yCall := asAssign(t, elseBlk2.Body[1])
	call2, ok := yCall.Right.(*ast.CallExpression)
	require.True(t, ok)
	require.Equal(t, yCallee, identName(t, call2.Callee))
}

// TestWhileLoopDesugarsToLabeledLoop covers "while (c) { if (p) break;
// body(); }": the condition is precomputed once, the loop becomes a
// labeled while wrapping a distinctly labeled body, and the unlabeled
// break inside targets the outer label rather than the inner one.
func TestWhileLoopDesugarsToLabeledLoop(t *testing.T) {
	c, p, b := param("c"), param("p"), param("body")
	whileStmt := ast.NewWhileStatement(
		&ast.Identifier{Name: "c"},
		ast.NewBlockStatement(
			ast.NewIfStatement(&ast.Identifier{Name: "p"}, ast.NewBreakStatement(""), nil),
			ast.NewExpressionStatement(&ast.CallExpression{Callee: &ast.Identifier{Name: "body"}}),
		),
	)

	body := functionBody(t, []*ast.Identifier{c, p, b}, []ast.Node{whileStmt}, Options{})
	_, body = stripVarDecl(body)
	body = dropTrailingReturn(t, body)
	require.Len(t, body, 2)

	a1 := asAssign(t, body[0])
	require.Equal(t, "c", identName(t, a1.Right))
	condTmp := identName(t, a1.Left)

	outer, ok := body[1].(*ast.LabeledStatement)
	require.True(t, ok)
	brkLabel := outer.Label

	while, ok := outer.Body.(*ast.WhileStatement)
	require.True(t, ok)
	require.Equal(t, condTmp, identName(t, while.Test))

	loopBlock, ok := while.Body.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, loopBlock.Body, 2)

	inner, ok := loopBlock.Body[0].(*ast.LabeledStatement)
	require.True(t, ok)
	contLabel := inner.Label
	require.NotEqual(t, brkLabel, contLabel)

	recompute := asAssign(t, loopBlock.Body[1])
	require.Equal(t, condTmp, identName(t, recompute.Left))
	require.Equal(t, "c", identName(t, recompute.Right))

	innerBlock, ok := inner.Body.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, innerBlock.Body, 4)

	pAssign := asAssign(t, innerBlock.Body[0])
	require.Equal(t, "p", identName(t, pAssign.Right))
	pTmp := identName(t, pAssign.Left)

	guardIf, ok := innerBlock.Body[1].(*ast.IfStatement)
	require.True(t, ok)
	require.Equal(t, pTmp, identName(t, guardIf.Test))
	require.Nil(t, guardIf.Alternate)
	thenBlk, ok := guardIf.Consequent.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, thenBlk.Body, 1)
	brk, ok := thenBlk.Body[0].(*ast.BreakStatement)
	require.True(t, ok)
	require.Equal(t, brkLabel, brk.Label)

	calleeAssign := asAssign(t, innerBlock.Body[2])
	require.Equal(t, "body", identName(t, calleeAssign.Right))
	calleeTmp := identName(t, calleeAssign.Left)
	callAssign := asAssign(t, innerBlock.Body[3])
	call, ok := callAssign.Right.(*ast.CallExpression)
	require.True(t, ok)
	require.Equal(t, calleeTmp, identName(t, call.Callee))
	require.Empty(t, call.Arguments)
}

// TestSwitchFallthroughAccumulatesConsequents covers a switch with a
// fall-through case, a breaking case, and a trailing default: it lowers to
// a chain of ifs where each branch's consequent block contains exactly the
// original statements reachable by falling through from that case.
func TestSwitchFallthroughAccumulatesConsequents(t *testing.T) {
	xp, ap, bp, dp := param("x"), param("a"), param("b"), param("d")
	switchStmt := ast.NewSwitchStatement(
		&ast.Identifier{Name: "x"},
		ast.NewSwitchCase(&ast.Literal{Value: float64(1)},
			ast.NewExpressionStatement(&ast.CallExpression{Callee: &ast.Identifier{Name: "a"}})),
		ast.NewSwitchCase(&ast.Literal{Value: float64(2)},
			ast.NewExpressionStatement(&ast.CallExpression{Callee: &ast.Identifier{Name: "b"}}),
			ast.NewBreakStatement("")),
		ast.NewSwitchCase(nil,
			ast.NewExpressionStatement(&ast.CallExpression{Callee: &ast.Identifier{Name: "d"}})),
	)

	body := functionBody(t, []*ast.Identifier{xp, ap, bp, dp}, []ast.Node{switchStmt}, Options{})
	_, body = stripVarDecl(body)
	body = maybeDropTrailingReturn(body)
	require.Len(t, body, 2)

	discAssign := asAssign(t, body[0])
	require.Equal(t, "x", identName(t, discAssign.Right))

	labeled, ok := body[1].(*ast.LabeledStatement)
	require.True(t, ok)

	inner, ok := labeled.Body.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, inner.Body, 3)

	outerIf, ok := inner.Body[2].(*ast.IfStatement)
	require.True(t, ok)

	outerConsequent, ok := outerIf.Consequent.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, outerConsequent.Body, 5)
	require.Equal(t, 1, countReadsOf(outerConsequent, "a"))
	require.Equal(t, 1, countReadsOf(outerConsequent, "b"))
	require.Equal(t, 0, countReadsOf(outerConsequent, "d"))
	lastOuter, ok := outerConsequent.Body[len(outerConsequent.Body)-1].(*ast.BreakStatement)
	require.True(t, ok)
	require.Equal(t, labeled.Label, lastOuter.Label)

	outerAlt, ok := outerIf.Alternate.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, outerAlt.Body, 3)

	innerIf, ok := outerAlt.Body[2].(*ast.IfStatement)
	require.True(t, ok)

	innerConsequent, ok := innerIf.Consequent.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, innerConsequent.Body, 3)
	require.Equal(t, 0, countReadsOf(innerConsequent, "a"))
	require.Equal(t, 1, countReadsOf(innerConsequent, "b"))
	require.Equal(t, 0, countReadsOf(innerConsequent, "d"))
	lastInner, ok := innerConsequent.Body[len(innerConsequent.Body)-1].(*ast.BreakStatement)
	require.True(t, ok)
	require.Equal(t, labeled.Label, lastInner.Label)

	innerAlt, ok := innerIf.Alternate.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, innerAlt.Body, 2)
	require.Equal(t, 0, countReadsOf(innerAlt, "a"))
	require.Equal(t, 0, countReadsOf(innerAlt, "b"))
	require.Equal(t, 1, countReadsOf(innerAlt, "d"))
}

// TestWithStatementCascadesThroughObjectBeforeGlobalFallback covers
// "with (obj) { x = 1; }" where x is never declared anywhere: the write
// checks the with-object first via an "in" test, falling back to a global
// write only when the name is absent from it.
func TestWithStatementCascadesThroughObjectBeforeGlobalFallback(t *testing.T) {
	obj := param("obj")
	withStmt := ast.NewWithStatement(
		&ast.Identifier{Name: "obj"},
		ast.NewBlockStatement(ast.NewExpressionStatement(&ast.AssignmentExpression{
			Operator: "=",
			Left:     &ast.Identifier{Name: "x"},
			Right:    &ast.Literal{Value: float64(1)},
		})),
	)

	body := functionBody(t, []*ast.Identifier{obj}, []ast.Node{withStmt}, Options{})
	_, body = stripVarDecl(body)
	body = dropTrailingReturn(t, body)
	require.Len(t, body, 4)

	a1 := asAssign(t, body[0])
	require.Equal(t, "obj", identName(t, a1.Right))
	objTmp := identName(t, a1.Left)

	a2 := asAssign(t, body[1])
	lit, ok := a2.Right.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, "x", lit.Value)
	nameTmp := identName(t, a2.Left)

	a3 := asAssign(t, body[2])
	valLit, ok := a3.Right.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, float64(1), valLit.Value)
	valTmp := identName(t, a3.Left)

	ifStmt, ok := body[3].(*ast.IfStatement)
	require.True(t, ok)
	testBin, ok := ifStmt.Test.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "in", testBin.Operator)
	require.Equal(t, nameTmp, identName(t, testBin.Left))
	require.Equal(t, objTmp, identName(t, testBin.Right))

	thenBlk, ok := ifStmt.Consequent.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, thenBlk.Body, 1)
	thenAssign := asAssign(t, thenBlk.Body[0])
	mem, ok := thenAssign.Left.(*ast.MemberExpression)
	require.True(t, ok)
	require.Equal(t, objTmp, identName(t, mem.Object))
	require.Equal(t, nameTmp, identName(t, mem.Property))
	require.Equal(t, valTmp, identName(t, thenAssign.Right))

	elseBlk, ok := ifStmt.Alternate.(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, elseBlk.Body, 1)
	elseAssign := asAssign(t, elseBlk.Body[0])
	mem2, ok := elseAssign.Left.(*ast.MemberExpression)
	require.True(t, ok)
	require.Equal(t, "__global", identName(t, mem2.Object))
	require.Equal(t, nameTmp, identName(t, mem2.Property))
	require.Equal(t, valTmp, identName(t, elseAssign.Right))
}
