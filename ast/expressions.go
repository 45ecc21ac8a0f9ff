package ast

import (
	"fmt"
	"strings"
)

// Literal is an expression node that holds a constant value: a number, a
// string, a boolean, or null. Value holds the parsed Go value (float64,
// string, bool, or nil).
type Literal struct {
	attrs
	Value any
	Raw   string // original source text, used for String()
}

func (x *Literal) exprNode() {}

func (x *Literal) String() string {
	if x.Raw != "" {
		return x.Raw
	}
	if s, ok := x.Value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	if x.Value == nil {
		return "null"
	}
	return fmt.Sprintf("%v", x.Value)
}

// Identifier is an expression node that refers to a variable, parameter, or
// function by name.
type Identifier struct {
	attrs
	Name string
}

func (x *Identifier) exprNode() {}

func (x *Identifier) String() string { return x.Name }

// ThisExpression is an expression node for the "this" keyword.
type ThisExpression struct {
	attrs
}

func (x *ThisExpression) exprNode() {}

func (x *ThisExpression) String() string { return "this" }

// MemberExpression is an expression node describing property access, either
// dotted (Computed=false, Property is an *Identifier) or bracketed
// (Computed=true, Property is an arbitrary expression).
type MemberExpression struct {
	attrs
	Object   Expr
	Property Expr
	Computed bool
}

func (x *MemberExpression) exprNode() {}

func (x *MemberExpression) String() string {
	if x.Computed {
		return fmt.Sprintf("%s[%s]", x.Object.String(), x.Property.String())
	}
	return fmt.Sprintf("%s.%s", x.Object.String(), x.Property.String())
}

// ArrayExpression is an expression node describing an array literal. A nil
// entry in Elements represents an elision, e.g. the middle slot in "[1,,3]".
type ArrayExpression struct {
	attrs
	Elements []Expr
}

func (x *ArrayExpression) exprNode() {}

func (x *ArrayExpression) String() string {
	parts := make([]string, len(x.Elements))
	for i, e := range x.Elements {
		if e != nil {
			parts[i] = e.String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Property is a single key/value entry of an ObjectExpression.
type Property struct {
	attrs
	Key      Expr
	Value    Expr
	Kind     string // "init", "get", or "set"
	Computed bool
}

func (x *Property) String() string {
	if x.Kind == "get" || x.Kind == "set" {
		return fmt.Sprintf("%s %s", x.Kind, x.Value.String())
	}
	if x.Computed {
		return fmt.Sprintf("[%s]: %s", x.Key.String(), x.Value.String())
	}
	return fmt.Sprintf("%s: %s", x.Key.String(), x.Value.String())
}

// ObjectExpression is an expression node describing an object literal.
type ObjectExpression struct {
	attrs
	Properties []*Property
}

func (x *ObjectExpression) exprNode() {}

func (x *ObjectExpression) String() string {
	parts := make([]string, len(x.Properties))
	for i, p := range x.Properties {
		parts[i] = p.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FunctionExpression is an expression node describing a function literal.
// Id is nil for anonymous function expressions.
type FunctionExpression struct {
	attrs
	Id     *Identifier
	Params []*Identifier
	Body   *BlockStatement
}

func (x *FunctionExpression) exprNode() {}

func (x *FunctionExpression) String() string {
	name := ""
	if x.Id != nil {
		name = " " + x.Id.Name
	}
	params := make([]string, len(x.Params))
	for i, p := range x.Params {
		params[i] = p.Name
	}
	return fmt.Sprintf("function%s(%s) %s", name, strings.Join(params, ", "), x.Body.String())
}

// AssignmentExpression is an expression node describing a (possibly
// compound) assignment. Left is either an *Identifier or a
// *MemberExpression.
type AssignmentExpression struct {
	attrs
	Operator string // "=", "+=", "-=", ...
	Left     Expr
	Right    Expr
}

func (x *AssignmentExpression) exprNode() {}

func (x *AssignmentExpression) String() string {
	return fmt.Sprintf("%s %s %s", x.Left.String(), x.Operator, x.Right.String())
}

// CallExpression is an expression node describing a function invocation.
type CallExpression struct {
	attrs
	Callee    Expr
	Arguments []Expr
}

func (x *CallExpression) exprNode() {}

func (x *CallExpression) String() string {
	args := make([]string, len(x.Arguments))
	for i, a := range x.Arguments {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", x.Callee.String(), strings.Join(args, ", "))
}

// NewExpression is an expression node describing a constructor invocation.
type NewExpression struct {
	attrs
	Callee    Expr
	Arguments []Expr
}

func (x *NewExpression) exprNode() {}

func (x *NewExpression) String() string {
	args := make([]string, len(x.Arguments))
	for i, a := range x.Arguments {
		args[i] = a.String()
	}
	return fmt.Sprintf("new %s(%s)", x.Callee.String(), strings.Join(args, ", "))
}

// SequenceExpression is an expression node describing a comma-separated
// sequence of expressions; its value is that of the last one.
type SequenceExpression struct {
	attrs
	Expressions []Expr
}

func (x *SequenceExpression) exprNode() {}

func (x *SequenceExpression) String() string {
	parts := make([]string, len(x.Expressions))
	for i, e := range x.Expressions {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// LogicalExpression is an expression node for short-circuiting "&&" or "||".
type LogicalExpression struct {
	attrs
	Operator string // "&&" or "||"
	Left     Expr
	Right    Expr
}

func (x *LogicalExpression) exprNode() {}

func (x *LogicalExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", x.Left.String(), x.Operator, x.Right.String())
}

// BinaryExpression is an expression node for a binary operator applied to
// two operands, e.g. "+", "-", "==", "<".
type BinaryExpression struct {
	attrs
	Operator string
	Left     Expr
	Right    Expr
}

func (x *BinaryExpression) exprNode() {}

func (x *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", x.Left.String(), x.Operator, x.Right.String())
}

// ConditionalExpression is the ternary "test ? consequent : alternate".
type ConditionalExpression struct {
	attrs
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

func (x *ConditionalExpression) exprNode() {}

func (x *ConditionalExpression) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", x.Test.String(), x.Consequent.String(), x.Alternate.String())
}

// UpdateExpression is an expression node for "++" or "--", prefix or
// postfix.
type UpdateExpression struct {
	attrs
	Operator string // "++" or "--"
	Argument Expr
	Prefix   bool
}

func (x *UpdateExpression) exprNode() {}

func (x *UpdateExpression) String() string {
	if x.Prefix {
		return x.Operator + x.Argument.String()
	}
	return x.Argument.String() + x.Operator
}

// UnaryExpression is an expression node for a prefix unary operator, e.g.
// "!", "-", "typeof", "delete", "void".
type UnaryExpression struct {
	attrs
	Operator string
	Argument Expr
	Prefix   bool
}

func (x *UnaryExpression) exprNode() {}

func (x *UnaryExpression) String() string {
	return fmt.Sprintf("(%s%s)", x.Operator, x.Argument.String())
}
