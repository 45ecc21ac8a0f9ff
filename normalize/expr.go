package normalize

import (
	"strings"

	"github.com/threeaddr/jsnorm/ast"
	"github.com/threeaddr/jsnorm/normalizeerr"
	"github.com/threeaddr/jsnorm/scope"
)

// normalizeExpr rewrites node into a sequence of three-address statements
// that, executed in order, leave the expression's value in the returned
// name. If target is empty, a fresh temporary is allocated on first use.
func (e *entity) normalizeExpr(node ast.Expr, target string) ([]ast.Node, string) {
	switch x := node.(type) {
	case *ast.Literal:
		target = e.getTarget(target)
		return []ast.Node{assign(target, x)}, target

	case *ast.ThisExpression:
		return e.normalizeThis(target)

	case *ast.Identifier:
		return e.normalizeIdentifierRead(x, target)

	case *ast.MemberExpression:
		return e.normalizeMember(x, target)

	case *ast.ArrayExpression:
		return e.normalizeArray(x, target)

	case *ast.ObjectExpression:
		return e.normalizeObject(x, target)

	case *ast.FunctionExpression:
		fnExpr := e.normalizeFunctionLiteral(x)
		target = e.getTarget(target)
		return []ast.Node{assign(target, fnExpr)}, target

	case *ast.AssignmentExpression:
		return e.normalizeAssignment(x, target)

	case *ast.CallExpression:
		return e.normalizeCall(x, target)

	case *ast.NewExpression:
		return e.normalizeNew(x, target)

	case *ast.SequenceExpression:
		return e.normalizeSequence(x, target)

	case *ast.LogicalExpression:
		return e.normalizeLogical(x, target)

	case *ast.BinaryExpression:
		return e.normalizeBinary(x, target)

	case *ast.ConditionalExpression:
		return e.normalizeConditional(x, target)

	case *ast.UpdateExpression:
		return e.normalizeUpdate(x, target)

	case *ast.UnaryExpression:
		return e.normalizeUnary(x, target)

	default:
		e.fail(normalizeerr.ReasonUnsupportedNode, "unsupported expression node %T", node)
		panic("unreachable")
	}
}

// normalizeExprStatement rewrites an expression evaluated purely for its
// side effects; its final value is not preserved anywhere.
func (e *entity) normalizeExprStatement(node ast.Expr) []ast.Node {
	if upd, ok := node.(*ast.UpdateExpression); ok && !upd.Prefix {
		stmts, _ := e.updateViaCompoundAssign(upd.Argument, updateOp(upd.Operator), "")
		return stmts
	}
	stmts, _ := e.normalizeExpr(node, "")
	return stmts
}

func updateOp(operator string) string {
	return operator[:1]
}

func (e *entity) normalizeThis(target string) ([]ast.Node, string) {
	target = e.getTarget(target)
	if e.scope.IsGlobal() {
		return []ast.Node{assign(target, ident(globalObject))}, target
	}
	return []ast.Node{assign(target, &ast.ThisExpression{})}, target
}

func (e *entity) normalizeIdentifierRead(x *ast.Identifier, callerTarget string) ([]ast.Node, string) {
	name := x.Name
	if IsTmp(name) {
		target := e.getTarget(callerTarget)
		return []ast.Node{assign(target, ident(name))}, target
	}
	res := e.scope.Lookup(name)
	if !res.Global && len(res.WithChain) == 0 {
		target := e.getTarget(callerTarget)
		return []ast.Node{assign(target, ident(name))}, target
	}

	target := e.getTarget(callerTarget)
	nameTmp := e.genTmp(false)
	prelude := []ast.Node{assign(nameTmp, strLit(name))}

	var fallback []ast.Node
	if res.Global {
		fallback = e.globalRead(nameTmp, target, name)
	} else {
		fallback = []ast.Node{assign(target, ident(name))}
	}
	if len(res.WithChain) == 0 {
		return append(prelude, fallback...), target
	}
	cascade := e.wrapCascade(res.WithChain, nameTmp, fallback, func(withVar string) []ast.Node {
		return []ast.Node{assign(target, member(ident(withVar), ident(nameTmp), true))}
	})
	return append(prelude, cascade...), target
}

// globalRead builds the statements reading __global[nameTmp] into target,
// optionally guarded by a ReferenceError check.
func (e *entity) globalRead(nameTmp, target, name string) []ast.Node {
	base := []ast.Node{assign(target, member(ident(globalObject), ident(nameTmp), true))}
	if !e.opts.ReferenceErrors || e.scope.IsDeclaredGlobal(name) {
		return base
	}
	refRes := e.scope.Lookup("ReferenceError")
	if !refRes.Global {
		e.fail(normalizeerr.ReasonReferenceErrorShadowed, "ReferenceError is shadowed by a local binding")
	}
	refNameTmp := e.genTmp(false)
	errTmp := e.genTmp(false)
	throwBranch := []ast.Node{
		assign(refNameTmp, strLit("ReferenceError")),
		assign(errTmp, &ast.NewExpression{Callee: member(ident(globalObject), ident(refNameTmp), true)}),
		ast.NewThrowStatement(ident(errTmp)),
	}
	guard := ast.NewIfStatement(inTest(ident(nameTmp), ident(globalObject)), ast.NewBlockStatement(base...), ast.NewBlockStatement(throwBranch...))
	return []ast.Node{guard}
}

// wrapCascade builds the nested if/else structure checking each with-object
// in chain (outermost first, innermost last) before falling back, so that
// at run time the innermost with-object is tested first.
func (e *entity) wrapCascade(chain []string, nameTmp string, fallback []ast.Node, buildConsequent func(withVar string) []ast.Node) []ast.Node {
	previous := fallback
	for _, withVar := range chain {
		ifStmt := ast.NewIfStatement(
			inTest(ident(nameTmp), ident(withVar)),
			ast.NewBlockStatement(buildConsequent(withVar)...),
			ast.NewBlockStatement(previous...),
		)
		previous = []ast.Node{ifStmt}
	}
	return previous
}

// propertyIndex returns the statements and temp name representing a member
// expression's property, materializing dotted-access names as a literal.
func (e *entity) propertyIndex(mem *ast.MemberExpression) ([]ast.Node, string) {
	if mem.Computed {
		return e.normalizeExpr(mem.Property, "")
	}
	propId := mem.Property.(*ast.Identifier)
	idxName := e.genTmp(false)
	return []ast.Node{assign(idxName, strLit(propId.Name))}, idxName
}

func (e *entity) normalizeMember(x *ast.MemberExpression, callerTarget string) ([]ast.Node, string) {
	baseStmts, baseName := e.normalizeExpr(x.Object, "")
	idxStmts, idxName := e.propertyIndex(x)
	target := e.getTarget(callerTarget)
	mem := member(ident(baseName), ident(idxName), true)
	if x.Computed {
		ast.SetAttr(mem, "isComputed", true)
	}
	stmts := append(baseStmts, idxStmts...)
	stmts = append(stmts, assign(target, mem))
	return stmts, target
}

func (e *entity) normalizeArray(x *ast.ArrayExpression, callerTarget string) ([]ast.Node, string) {
	var stmts []ast.Node
	elems := make([]ast.Expr, len(x.Elements))
	for i, el := range x.Elements {
		if el == nil {
			continue
		}
		s, name := e.normalizeExpr(el, "")
		stmts = append(stmts, s...)
		elems[i] = ident(name)
	}
	target := e.getTarget(callerTarget)
	stmts = append(stmts, assign(target, &ast.ArrayExpression{Elements: elems}))
	return stmts, target
}

func (e *entity) normalizeObject(x *ast.ObjectExpression, callerTarget string) ([]ast.Node, string) {
	var stmts []ast.Node
	props := make([]*ast.Property, len(x.Properties))
	for i, p := range x.Properties {
		if p.Kind == "get" || p.Kind == "set" {
			fnExpr := e.normalizeFunctionLiteral(p.Value.(*ast.FunctionExpression))
			props[i] = &ast.Property{Key: p.Key, Value: fnExpr, Kind: p.Kind, Computed: p.Computed}
			continue
		}
		s, name := e.normalizeExpr(p.Value, "")
		stmts = append(stmts, s...)
		props[i] = &ast.Property{Key: p.Key, Value: ident(name), Kind: "init", Computed: p.Computed}
	}
	target := e.getTarget(callerTarget)
	stmts = append(stmts, assign(target, &ast.ObjectExpression{Properties: props}))
	return stmts, target
}

func (e *entity) normalizeAssignment(x *ast.AssignmentExpression, target string) ([]ast.Node, string) {
	if x.Operator != "=" {
		return e.normalizeCompoundAssign(x, target)
	}
	switch left := x.Left.(type) {
	case *ast.Identifier:
		return e.normalizeIdentifierAssign(left, x.Right, target)
	case *ast.MemberExpression:
		return e.normalizeMemberAssign(left, x.Right, target)
	default:
		e.fail(normalizeerr.ReasonInvalidAssignmentTarget, "assignment target must be an identifier or member expression, got %T", x.Left)
		panic("unreachable")
	}
}

func (e *entity) normalizeIdentifierAssign(lhs *ast.Identifier, rhs ast.Expr, callerTarget string) ([]ast.Node, string) {
	name := lhs.Name
	if e.isFunction && !IsTmp(name) && !e.scope.IsLocal(name) {
		ast.SetAttr(lhs, "exposed", true)
	}
	if IsTmp(name) {
		stmts, resultName := e.normalizeExpr(rhs, name)
		return stmts, resultName
	}

	res := e.scope.Lookup(name)
	if !res.Global && len(res.WithChain) == 0 {
		if callerTarget != "" {
			stmts, _ := e.normalizeExpr(rhs, callerTarget)
			stmts = append(stmts, assign(name, ident(callerTarget)))
			return stmts, callerTarget
		}
		stmts, _ := e.normalizeExpr(rhs, name)
		return stmts, name
	}

	nameTmp := e.genTmp(false)
	prelude := []ast.Node{assign(nameTmp, strLit(name))}
	valTarget := e.getTarget(callerTarget)
	rhsStmts, _ := e.normalizeExpr(rhs, valTarget)

	var fallback []ast.Node
	if res.Global {
		fallback = []ast.Node{assignTo(member(ident(globalObject), ident(nameTmp), true), ident(valTarget))}
	} else {
		fallback = []ast.Node{assign(name, ident(valTarget))}
	}

	var writeStmts []ast.Node
	if len(res.WithChain) == 0 {
		writeStmts = fallback
	} else {
		writeStmts = e.wrapCascade(res.WithChain, nameTmp, fallback, func(withVar string) []ast.Node {
			return []ast.Node{assignTo(member(ident(withVar), ident(nameTmp), true), ident(valTarget))}
		})
	}

	out := append(prelude, rhsStmts...)
	out = append(out, writeStmts...)
	return out, valTarget
}

func (e *entity) normalizeMemberAssign(lhs *ast.MemberExpression, rhs ast.Expr, callerTarget string) ([]ast.Node, string) {
	baseStmts, baseName := e.normalizeExpr(lhs.Object, "")
	idxStmts, idxName := e.propertyIndex(lhs)
	target := e.getTarget(callerTarget)
	rhsStmts, _ := e.normalizeExpr(rhs, target)
	mem := member(ident(baseName), ident(idxName), true)
	if lhs.Computed {
		ast.SetAttr(mem, "isComputed", true)
	}
	out := append(baseStmts, idxStmts...)
	out = append(out, rhsStmts...)
	out = append(out, assignTo(mem, ident(target)))
	return out, target
}

func (e *entity) normalizeCompoundAssign(x *ast.AssignmentExpression, callerTarget string) ([]ast.Node, string) {
	op := strings.TrimSuffix(x.Operator, "=")
	switch lhs := x.Left.(type) {
	case *ast.Identifier:
		t := e.genTmp(false)
		rhsStmts, _ := e.normalizeExpr(x.Right, t)
		combined := &ast.AssignmentExpression{
			Operator: "=",
			Left:     lhs,
			Right:    &ast.BinaryExpression{Operator: op, Left: lhs, Right: ident(t)},
		}
		writeStmts, name := e.normalizeAssignment(combined, callerTarget)
		return append(rhsStmts, writeStmts...), name

	case *ast.MemberExpression:
		baseStmts, baseName := e.normalizeExpr(lhs.Object, "")
		idxStmts, idxName := e.propertyIndex(lhs)
		oldTmp := e.genTmp(false)
		readStmt := assign(oldTmp, member(ident(baseName), ident(idxName), true))
		rTmp := e.genTmp(false)
		rhsStmts, _ := e.normalizeExpr(x.Right, rTmp)
		target := e.getTarget(callerTarget)
		combine := assign(target, &ast.BinaryExpression{Operator: op, Left: ident(oldTmp), Right: ident(rTmp)})
		writeback := assignTo(member(ident(baseName), ident(idxName), true), ident(target))
		out := append(baseStmts, idxStmts...)
		out = append(out, readStmt)
		out = append(out, rhsStmts...)
		out = append(out, combine, writeback)
		return out, target

	default:
		e.fail(normalizeerr.ReasonInvalidAssignmentTarget, "compound assignment target must be an identifier or member expression, got %T", x.Left)
		panic("unreachable")
	}
}

func (e *entity) normalizeCall(x *ast.CallExpression, callerTarget string) ([]ast.Node, string) {
	if calleeId, ok := x.Callee.(*ast.Identifier); ok && calleeId.Name == "eval" {
		return e.normalizeEvalCall(x, callerTarget)
	}
	if memCallee, ok := x.Callee.(*ast.MemberExpression); ok {
		return e.normalizeMethodCall(x, memCallee, callerTarget)
	}
	if calleeId, ok := x.Callee.(*ast.Identifier); ok && !IsTmp(calleeId.Name) {
		res := e.scope.Lookup(calleeId.Name)
		if res.Global || len(res.WithChain) > 0 {
			return e.normalizeCallThroughNameLookup(x, calleeId.Name, res, callerTarget)
		}
	}
	fnStmts, fnName := e.normalizeExpr(x.Callee, "")
	argStmts, argNames := e.normalizeArgs(x.Arguments)
	target := e.getTarget(callerTarget)
	stmts := append(fnStmts, argStmts...)
	stmts = append(stmts, assign(target, &ast.CallExpression{Callee: ident(fnName), Arguments: argNames}))
	return stmts, target
}

func (e *entity) normalizeArgs(args []ast.Expr) ([]ast.Node, []ast.Expr) {
	var stmts []ast.Node
	names := make([]ast.Expr, len(args))
	for i, a := range args {
		s, n := e.normalizeExpr(a, "")
		stmts = append(stmts, s...)
		names[i] = ident(n)
	}
	return stmts, names
}

func (e *entity) normalizeEvalCall(x *ast.CallExpression, callerTarget string) ([]ast.Node, string) {
	argStmts, argNames := e.normalizeArgs(x.Arguments)
	target := e.getTarget(callerTarget)
	stmts := append(argStmts, assign(target, &ast.CallExpression{Callee: ident("eval"), Arguments: argNames}))
	return stmts, target
}

func (e *entity) normalizeMethodCall(x *ast.CallExpression, mem *ast.MemberExpression, callerTarget string) ([]ast.Node, string) {
	baseStmts, baseName := e.normalizeExpr(mem.Object, "")
	idxStmts, idxName := e.propertyIndex(mem)
	argStmts, argNames := e.normalizeArgs(x.Arguments)
	target := e.getTarget(callerTarget)
	calleeMem := member(ident(baseName), ident(idxName), true)
	if mem.Computed {
		ast.SetAttr(calleeMem, "isComputed", true)
	}
	stmts := append(baseStmts, idxStmts...)
	stmts = append(stmts, argStmts...)
	stmts = append(stmts, assign(target, &ast.CallExpression{Callee: calleeMem, Arguments: argNames}))
	return stmts, target
}

func (e *entity) normalizeCallThroughNameLookup(x *ast.CallExpression, name string, res scope.Resolution, callerTarget string) ([]ast.Node, string) {
	nameTmp := e.genTmp(false)
	prelude := []ast.Node{assign(nameTmp, strLit(name))}
	argStmts, argNames := e.normalizeArgs(x.Arguments)
	target := e.getTarget(callerTarget)

	var fallback []ast.Node
	if res.Global {
		fallback = []ast.Node{assign(target, &ast.CallExpression{Callee: member(ident(globalObject), ident(nameTmp), true), Arguments: argNames})}
	} else {
		fallback = []ast.Node{assign(target, &ast.CallExpression{Callee: ident(name), Arguments: argNames})}
	}
	var callStmts []ast.Node
	if len(res.WithChain) == 0 {
		callStmts = fallback
	} else {
		callStmts = e.wrapCascade(res.WithChain, nameTmp, fallback, func(withVar string) []ast.Node {
			return []ast.Node{assign(target, &ast.CallExpression{Callee: member(ident(withVar), ident(nameTmp), true), Arguments: argNames})}
		})
	}
	out := append(prelude, argStmts...)
	out = append(out, callStmts...)
	return out, target
}

func (e *entity) normalizeNew(x *ast.NewExpression, callerTarget string) ([]ast.Node, string) {
	if calleeId, ok := x.Callee.(*ast.Identifier); ok && !IsTmp(calleeId.Name) {
		res := e.scope.Lookup(calleeId.Name)
		if res.Global || len(res.WithChain) > 0 {
			return e.normalizeNewThroughNameLookup(x, calleeId.Name, res, callerTarget)
		}
	}
	fnStmts, fnName := e.normalizeExpr(x.Callee, "")
	argStmts, argNames := e.normalizeArgs(x.Arguments)
	target := e.getTarget(callerTarget)
	stmts := append(fnStmts, argStmts...)
	stmts = append(stmts, assign(target, &ast.NewExpression{Callee: ident(fnName), Arguments: argNames}))
	return stmts, target
}

func (e *entity) normalizeNewThroughNameLookup(x *ast.NewExpression, name string, res scope.Resolution, callerTarget string) ([]ast.Node, string) {
	nameTmp := e.genTmp(false)
	prelude := []ast.Node{assign(nameTmp, strLit(name))}
	argStmts, argNames := e.normalizeArgs(x.Arguments)
	target := e.getTarget(callerTarget)

	var fallback []ast.Node
	if res.Global {
		fallback = []ast.Node{assign(target, &ast.NewExpression{Callee: member(ident(globalObject), ident(nameTmp), true), Arguments: argNames})}
	} else {
		fallback = []ast.Node{assign(target, &ast.NewExpression{Callee: ident(name), Arguments: argNames})}
	}
	var callStmts []ast.Node
	if len(res.WithChain) == 0 {
		callStmts = fallback
	} else {
		callStmts = e.wrapCascade(res.WithChain, nameTmp, fallback, func(withVar string) []ast.Node {
			return []ast.Node{assign(target, &ast.NewExpression{Callee: member(ident(withVar), ident(nameTmp), true), Arguments: argNames})}
		})
	}
	out := append(prelude, argStmts...)
	out = append(out, callStmts...)
	return out, target
}

func (e *entity) normalizeSequence(x *ast.SequenceExpression, callerTarget string) ([]ast.Node, string) {
	var stmts []ast.Node
	var last string
	for i, ex := range x.Expressions {
		if i == len(x.Expressions)-1 {
			s, n := e.normalizeExpr(ex, callerTarget)
			stmts = append(stmts, s...)
			last = n
			continue
		}
		s, _ := e.normalizeExpr(ex, "")
		stmts = append(stmts, s...)
	}
	return stmts, last
}

func (e *entity) normalizeLogical(x *ast.LogicalExpression, callerTarget string) ([]ast.Node, string) {
	lStmts, lName := e.normalizeExpr(x.Left, "")
	target := e.getTarget(callerTarget)
	rStmts, _ := e.normalizeExpr(x.Right, target)

	var thenStmts, elseStmts []ast.Node
	if x.Operator == "&&" {
		thenStmts = rStmts
		elseStmts = []ast.Node{assign(target, ident(lName))}
	} else {
		thenStmts = []ast.Node{assign(target, ident(lName))}
		elseStmts = rStmts
	}
	ifStmts := e.mkIf(lName, thenStmts, true, elseStmts)
	return append(lStmts, ifStmts...), target
}

func (e *entity) normalizeBinary(x *ast.BinaryExpression, callerTarget string) ([]ast.Node, string) {
	lStmts, lName := e.normalizeExpr(x.Left, "")
	rStmts, rName := e.normalizeExpr(x.Right, "")
	target := e.getTarget(callerTarget)
	stmts := append(lStmts, rStmts...)
	stmts = append(stmts, assign(target, &ast.BinaryExpression{Operator: x.Operator, Left: ident(lName), Right: ident(rName)}))
	return stmts, target
}

func (e *entity) normalizeConditional(x *ast.ConditionalExpression, callerTarget string) ([]ast.Node, string) {
	tStmts, tName := e.normalizeExpr(x.Test, "")
	target := e.getTarget(callerTarget)
	thenStmts, _ := e.normalizeExpr(x.Consequent, target)
	elseStmts, _ := e.normalizeExpr(x.Alternate, target)
	ifStmts := e.mkIf(tName, thenStmts, true, elseStmts)
	return append(tStmts, ifStmts...), target
}

func (e *entity) normalizeUpdate(x *ast.UpdateExpression, callerTarget string) ([]ast.Node, string) {
	op := updateOp(x.Operator)
	if x.Prefix {
		return e.updateViaCompoundAssign(x.Argument, op, callerTarget)
	}
	switch arg := x.Argument.(type) {
	case *ast.Identifier:
		target := e.getTarget(callerTarget)
		readStmts, _ := e.normalizeExpr(arg, target)
		newTmp := e.genTmp(false)
		combine := assign(newTmp, &ast.BinaryExpression{Operator: op, Left: ident(target), Right: numLit(1)})
		writeStmts, _ := e.normalizeAssignment(&ast.AssignmentExpression{Operator: "=", Left: arg, Right: ident(newTmp)}, "")
		out := append(readStmts, combine)
		out = append(out, writeStmts...)
		return out, target

	case *ast.MemberExpression:
		baseStmts, baseName := e.normalizeExpr(arg.Object, "")
		idxStmts, idxName := e.propertyIndex(arg)
		target := e.getTarget(callerTarget)
		mem := member(ident(baseName), ident(idxName), true)
		if arg.Computed {
			ast.SetAttr(mem, "isComputed", true)
		}
		readStmt := assign(target, mem)
		newTmp := e.genTmp(false)
		combine := assign(newTmp, &ast.BinaryExpression{Operator: op, Left: ident(target), Right: numLit(1)})
		writeback := assignTo(member(ident(baseName), ident(idxName), true), ident(newTmp))
		out := append(baseStmts, idxStmts...)
		out = append(out, readStmt, combine, writeback)
		return out, target

	default:
		e.fail(normalizeerr.ReasonInvalidAssignmentTarget, "update target must be an identifier or member expression, got %T", x.Argument)
		panic("unreachable")
	}
}

func (e *entity) updateViaCompoundAssign(arg ast.Expr, op string, callerTarget string) ([]ast.Node, string) {
	combined := &ast.AssignmentExpression{Operator: op + "=", Left: arg, Right: numLit(1)}
	return e.normalizeCompoundAssign(combined, callerTarget)
}

func (e *entity) normalizeUnary(x *ast.UnaryExpression, callerTarget string) ([]ast.Node, string) {
	if x.Operator == "delete" {
		return e.normalizeDelete(x, callerTarget)
	}
	argStmts, argName := e.normalizeExpr(x.Argument, "")
	target := e.getTarget(callerTarget)
	stmts := append(argStmts, assign(target, &ast.UnaryExpression{Operator: x.Operator, Argument: ident(argName), Prefix: true}))
	return stmts, target
}

func (e *entity) normalizeDelete(x *ast.UnaryExpression, callerTarget string) ([]ast.Node, string) {
	switch arg := x.Argument.(type) {
	case *ast.Identifier:
		if IsTmp(arg.Name) || !e.scope.Lookup(arg.Name).Global {
			target := e.getTarget(callerTarget)
			return []ast.Node{assign(target, &ast.UnaryExpression{Operator: "delete", Argument: ident(arg.Name), Prefix: true})}, target
		}
		nameTmp := e.genTmp(false)
		target := e.getTarget(callerTarget)
		del := assign(target, &ast.UnaryExpression{Operator: "delete", Argument: member(ident(globalObject), ident(nameTmp), true), Prefix: true})
		return []ast.Node{assign(nameTmp, strLit(arg.Name)), del}, target

	case *ast.MemberExpression:
		baseStmts, baseName := e.normalizeExpr(arg.Object, "")
		idxStmts, idxName := e.propertyIndex(arg)
		target := e.getTarget(callerTarget)
		mem := member(ident(baseName), ident(idxName), true)
		if arg.Computed {
			ast.SetAttr(mem, "isComputed", true)
		}
		out := append(baseStmts, idxStmts...)
		out = append(out, assign(target, &ast.UnaryExpression{Operator: "delete", Argument: mem, Prefix: true}))
		return out, target

	default:
		e.fail(normalizeerr.ReasonBadDeleteTarget, "delete requires an identifier or member expression, got %T", x.Argument)
		panic("unreachable")
	}
}
