package ast

import (
	"fmt"
	"strings"
)

// EmptyStatement is a statement node with no effect, e.g. a bare ";".
type EmptyStatement struct {
	attrs
}

// NewEmptyStatement creates a new EmptyStatement node.
func NewEmptyStatement() *EmptyStatement { return &EmptyStatement{} }

func (s *EmptyStatement) stmtNode() {}

func (s *EmptyStatement) String() string { return ";" }

// ExpressionStatement is a statement node that evaluates an expression
// purely for its side effects.
type ExpressionStatement struct {
	attrs
	Expression Expr
}

// NewExpressionStatement creates a new ExpressionStatement node.
func NewExpressionStatement(expr Expr) *ExpressionStatement {
	return &ExpressionStatement{Expression: expr}
}

func (s *ExpressionStatement) stmtNode() {}

func (s *ExpressionStatement) String() string { return s.Expression.String() + ";" }

// VariableDeclarator is a single "name" or "name = init" binding within a
// VariableDeclaration.
type VariableDeclarator struct {
	attrs
	Id   *Identifier
	Init Expr // nil if the declarator has no initializer
}

// NewVariableDeclarator creates a new VariableDeclarator node.
func NewVariableDeclarator(id *Identifier, init Expr) *VariableDeclarator {
	return &VariableDeclarator{Id: id, Init: init}
}

func (s *VariableDeclarator) String() string {
	if s.Init == nil {
		return s.Id.Name
	}
	return fmt.Sprintf("%s = %s", s.Id.Name, s.Init.String())
}

// VariableDeclaration is a statement node declaring one or more variables,
// e.g. "var a, b = 1;".
type VariableDeclaration struct {
	attrs
	Kind         string // always "var" in this grammar
	Declarations []*VariableDeclarator
}

// NewVariableDeclaration creates a new VariableDeclaration node.
func NewVariableDeclaration(decls ...*VariableDeclarator) *VariableDeclaration {
	return &VariableDeclaration{Kind: "var", Declarations: decls}
}

func (s *VariableDeclaration) stmtNode() {}

func (s *VariableDeclaration) String() string {
	parts := make([]string, len(s.Declarations))
	for i, d := range s.Declarations {
		parts[i] = d.String()
	}
	return s.Kind + " " + strings.Join(parts, ", ") + ";"
}

// BlockStatement is a statement node holding a sequence of statements. Body
// may hold FunctionDeclaration nodes interleaved with ordinary statements.
type BlockStatement struct {
	attrs
	Body []Node
}

// NewBlockStatement creates a new BlockStatement node.
func NewBlockStatement(body ...Node) *BlockStatement {
	return &BlockStatement{Body: body}
}

func (s *BlockStatement) stmtNode() {}

func (s *BlockStatement) String() string {
	parts := make([]string, len(s.Body))
	for i, n := range s.Body {
		parts[i] = n.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// ReturnStatement is a statement node that returns from the enclosing
// function. Argument is nil for a bare "return;".
type ReturnStatement struct {
	attrs
	Argument Expr
}

// NewReturnStatement creates a new ReturnStatement node.
func NewReturnStatement(argument Expr) *ReturnStatement {
	return &ReturnStatement{Argument: argument}
}

func (s *ReturnStatement) stmtNode() {}

func (s *ReturnStatement) String() string {
	if s.Argument == nil {
		return "return;"
	}
	return "return " + s.Argument.String() + ";"
}

// DebuggerStatement is a statement node for the "debugger;" statement. It is
// passed through unchanged by the normalizer.
type DebuggerStatement struct {
	attrs
}

// NewDebuggerStatement creates a new DebuggerStatement node.
func NewDebuggerStatement() *DebuggerStatement { return &DebuggerStatement{} }

func (s *DebuggerStatement) stmtNode() {}

func (s *DebuggerStatement) String() string { return "debugger;" }

// IfStatement is a statement node for "if (test) consequent [else alternate]".
// Alternate is nil when there is no else branch.
type IfStatement struct {
	attrs
	Test       Expr
	Consequent Node
	Alternate  Node
}

// NewIfStatement creates a new IfStatement node.
func NewIfStatement(test Expr, consequent, alternate Node) *IfStatement {
	return &IfStatement{Test: test, Consequent: consequent, Alternate: alternate}
}

func (s *IfStatement) stmtNode() {}

func (s *IfStatement) String() string {
	if s.Alternate == nil {
		return fmt.Sprintf("if (%s) %s", s.Test.String(), s.Consequent.String())
	}
	return fmt.Sprintf("if (%s) %s else %s", s.Test.String(), s.Consequent.String(), s.Alternate.String())
}

// ThrowStatement is a statement node for "throw argument;".
type ThrowStatement struct {
	attrs
	Argument Expr
}

// NewThrowStatement creates a new ThrowStatement node.
func NewThrowStatement(argument Expr) *ThrowStatement {
	return &ThrowStatement{Argument: argument}
}

func (s *ThrowStatement) stmtNode() {}

func (s *ThrowStatement) String() string { return "throw " + s.Argument.String() + ";" }

// CatchClause is the "catch (param) body" portion of a TryStatement. Param
// is nil for a parameterless "catch { }".
type CatchClause struct {
	attrs
	Param *Identifier
	Body  *BlockStatement
}

// NewCatchClause creates a new CatchClause node.
func NewCatchClause(param *Identifier, body *BlockStatement) *CatchClause {
	return &CatchClause{Param: param, Body: body}
}

func (s *CatchClause) String() string {
	if s.Param == nil {
		return "catch " + s.Body.String()
	}
	return fmt.Sprintf("catch (%s) %s", s.Param.Name, s.Body.String())
}

// TryStatement is a statement node for "try block [catch handler] [finally
// finalizer]". Handler and Finalizer are nil when absent, though at least
// one of them is always present in a well-formed program.
type TryStatement struct {
	attrs
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

// NewTryStatement creates a new TryStatement node.
func NewTryStatement(block *BlockStatement, handler *CatchClause, finalizer *BlockStatement) *TryStatement {
	return &TryStatement{Block: block, Handler: handler, Finalizer: finalizer}
}

func (s *TryStatement) stmtNode() {}

func (s *TryStatement) String() string {
	var out strings.Builder
	out.WriteString("try ")
	out.WriteString(s.Block.String())
	if s.Handler != nil {
		out.WriteString(" ")
		out.WriteString(s.Handler.String())
	}
	if s.Finalizer != nil {
		out.WriteString(" finally ")
		out.WriteString(s.Finalizer.String())
	}
	return out.String()
}

// LabeledStatement is a statement node attaching a label to a statement, so
// that break/continue elsewhere can target it by name.
type LabeledStatement struct {
	attrs
	Label string
	Body  Node
}

// NewLabeledStatement creates a new LabeledStatement node.
func NewLabeledStatement(label string, body Node) *LabeledStatement {
	return &LabeledStatement{Label: label, Body: body}
}

func (s *LabeledStatement) stmtNode() {}

func (s *LabeledStatement) String() string { return s.Label + ": " + s.Body.String() }

// BreakStatement is a statement node for "break;" or "break label;". Label
// is empty for the unlabeled form.
type BreakStatement struct {
	attrs
	Label string
}

// NewBreakStatement creates a new BreakStatement node.
func NewBreakStatement(label string) *BreakStatement { return &BreakStatement{Label: label} }

func (s *BreakStatement) stmtNode() {}

func (s *BreakStatement) String() string {
	if s.Label == "" {
		return "break;"
	}
	return "break " + s.Label + ";"
}

// ContinueStatement is a statement node for "continue;" or "continue
// label;". Label is empty for the unlabeled form.
type ContinueStatement struct {
	attrs
	Label string
}

// NewContinueStatement creates a new ContinueStatement node.
func NewContinueStatement(label string) *ContinueStatement { return &ContinueStatement{Label: label} }

func (s *ContinueStatement) stmtNode() {}

func (s *ContinueStatement) String() string {
	if s.Label == "" {
		return "continue;"
	}
	return "continue " + s.Label + ";"
}

// WhileStatement is a statement node for "while (test) body".
type WhileStatement struct {
	attrs
	Test Expr
	Body Node
}

// NewWhileStatement creates a new WhileStatement node.
func NewWhileStatement(test Expr, body Node) *WhileStatement {
	return &WhileStatement{Test: test, Body: body}
}

func (s *WhileStatement) stmtNode() {}

func (s *WhileStatement) String() string {
	return fmt.Sprintf("while (%s) %s", s.Test.String(), s.Body.String())
}

// DoWhileStatement is a statement node for "do body while (test);".
type DoWhileStatement struct {
	attrs
	Test Expr
	Body Node
}

// NewDoWhileStatement creates a new DoWhileStatement node.
func NewDoWhileStatement(body Node, test Expr) *DoWhileStatement {
	return &DoWhileStatement{Test: test, Body: body}
}

func (s *DoWhileStatement) stmtNode() {}

func (s *DoWhileStatement) String() string {
	return fmt.Sprintf("do %s while (%s);", s.Body.String(), s.Test.String())
}

// ForStatement is a statement node for a classic three-clause "for" loop.
// Init is a *VariableDeclaration or an Expr, or nil. Test and Update may
// also be nil.
type ForStatement struct {
	attrs
	Init   Node
	Test   Expr
	Update Expr
	Body   Node
}

// NewForStatement creates a new ForStatement node.
func NewForStatement(init Node, test, update Expr, body Node) *ForStatement {
	return &ForStatement{Init: init, Test: test, Update: update, Body: body}
}

func (s *ForStatement) stmtNode() {}

func (s *ForStatement) String() string {
	init, test, update := "", "", ""
	if s.Init != nil {
		init = s.Init.String()
	}
	if s.Test != nil {
		test = s.Test.String()
	}
	if s.Update != nil {
		update = s.Update.String()
	}
	return fmt.Sprintf("for (%s; %s; %s) %s", init, test, update, s.Body.String())
}

// ForInStatement is a statement node for "for (left in right) body". Left is
// either a *VariableDeclaration with a single declarator, or an Expr
// (Identifier or MemberExpression).
type ForInStatement struct {
	attrs
	Left  Node
	Right Expr
	Body  Node
}

// NewForInStatement creates a new ForInStatement node.
func NewForInStatement(left Node, right Expr, body Node) *ForInStatement {
	return &ForInStatement{Left: left, Right: right, Body: body}
}

func (s *ForInStatement) stmtNode() {}

func (s *ForInStatement) String() string {
	return fmt.Sprintf("for (%s in %s) %s", s.Left.String(), s.Right.String(), s.Body.String())
}

// SwitchCase is a single "case test:" or "default:" arm of a
// SwitchStatement. Test is nil for the default case.
type SwitchCase struct {
	attrs
	Test       Expr
	Consequent []Node
}

// NewSwitchCase creates a new SwitchCase node.
func NewSwitchCase(test Expr, consequent ...Node) *SwitchCase {
	return &SwitchCase{Test: test, Consequent: consequent}
}

func (s *SwitchCase) String() string {
	var out strings.Builder
	if s.Test == nil {
		out.WriteString("default:")
	} else {
		out.WriteString("case " + s.Test.String() + ":")
	}
	for _, n := range s.Consequent {
		out.WriteString(" ")
		out.WriteString(n.String())
	}
	return out.String()
}

// SwitchStatement is a statement node for "switch (discriminant) { cases }".
type SwitchStatement struct {
	attrs
	Discriminant Expr
	Cases        []*SwitchCase
}

// NewSwitchStatement creates a new SwitchStatement node.
func NewSwitchStatement(discriminant Expr, cases ...*SwitchCase) *SwitchStatement {
	return &SwitchStatement{Discriminant: discriminant, Cases: cases}
}

func (s *SwitchStatement) stmtNode() {}

func (s *SwitchStatement) String() string {
	var out strings.Builder
	out.WriteString(fmt.Sprintf("switch (%s) { ", s.Discriminant.String()))
	for _, c := range s.Cases {
		out.WriteString(c.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// WithStatement is a statement node for "with (object) body". Inside body,
// unqualified name lookups may resolve against object instead of the
// lexical scope.
type WithStatement struct {
	attrs
	Object Expr
	Body   Node
}

// NewWithStatement creates a new WithStatement node.
func NewWithStatement(object Expr, body Node) *WithStatement {
	return &WithStatement{Object: object, Body: body}
}

func (s *WithStatement) stmtNode() {}

func (s *WithStatement) String() string {
	return fmt.Sprintf("with (%s) %s", s.Object.String(), s.Body.String())
}

// FunctionDeclaration is a statement node for a named function declaration,
// hoisted to the top of its enclosing function or program.
type FunctionDeclaration struct {
	attrs
	Id     *Identifier
	Params []*Identifier
	Body   *BlockStatement
}

// NewFunctionDeclaration creates a new FunctionDeclaration node.
func NewFunctionDeclaration(id *Identifier, params []*Identifier, body *BlockStatement) *FunctionDeclaration {
	return &FunctionDeclaration{Id: id, Params: params, Body: body}
}

func (s *FunctionDeclaration) stmtNode() {}

func (s *FunctionDeclaration) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Name
	}
	return fmt.Sprintf("function %s(%s) %s", s.Id.Name, strings.Join(params, ", "), s.Body.String())
}
