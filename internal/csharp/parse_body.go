// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/cs2ts/internal/syntax"
)

// ---- Statements ----

func (c *converter) block(n *sitter.Node) *syntax.Block {
	b := &syntax.Block{NodeInfo: c.info(n)}
	for _, ch := range named(n) {
		if s := c.stmt(ch); s != nil {
			b.Statements = append(b.Statements, s)
		}
	}
	return b
}

func (c *converter) stmt(n *sitter.Node) syntax.Node {
	if n == nil {
		return nil
	}
	info := c.info(n)
	switch n.Type() {
	case "block":
		return c.block(n)
	case "expression_statement":
		return &syntax.ExpressionStatement{NodeInfo: info, Expr: c.expr(first(n))}
	case "local_declaration_statement":
		vd := ofKind(n, "variable_declaration")
		if vd == nil {
			return &syntax.Unsupported{NodeInfo: info, What: n.Type()}
		}
		isConst := hasToken(n, "const")
		for _, m := range c.modifiers(n) {
			isConst = isConst || m == "const"
		}
		return &syntax.LocalDeclaration{
			NodeInfo:  info,
			IsConst:   isConst,
			Type:      c.typeRef(field(vd, "type")),
			Variables: c.declarators(vd),
		}
	case "return_statement":
		return &syntax.ReturnStatement{NodeInfo: info, Expr: c.expr(first(n))}
	case "if_statement":
		return &syntax.IfStatement{
			NodeInfo:  info,
			Condition: c.expr(field(n, "condition")),
			Then:      c.stmt(field(n, "consequence")),
			Else:      c.stmt(field(n, "alternative")),
		}
	case "while_statement":
		return &syntax.WhileStatement{NodeInfo: info, Condition: c.expr(field(n, "condition")), Body: c.stmt(field(n, "body"))}
	case "throw_statement":
		return &syntax.ThrowStatement{NodeInfo: info, Expr: c.expr(first(n))}
	case "break_statement":
		return &syntax.BreakStatement{NodeInfo: info}
	case "continue_statement":
		return &syntax.ContinueStatement{NodeInfo: info}
	case "empty_statement":
		return nil
	default:
		return &syntax.Unsupported{NodeInfo: info, What: n.Type()}
	}
}

// ---- Expressions ----

func (c *converter) expr(n *sitter.Node) syntax.Node {
	if n == nil {
		return nil
	}
	info := c.info(n)
	switch n.Type() {
	case "identifier":
		return &syntax.Identifier{NodeInfo: info, Name: c.text(n)}
	case "generic_name":
		return &syntax.Identifier{NodeInfo: info, Name: c.typeRef(n).Name}
	case "predefined_type":
		return &syntax.PredefinedType{NodeInfo: info, Keyword: c.text(n)}
	case "this_expression", "this":
		return &syntax.This{NodeInfo: info}
	case "base_expression", "base":
		return &syntax.Identifier{NodeInfo: info, Name: "super"}
	case "parenthesized_expression":
		return &syntax.Parenthesized{NodeInfo: info, Expr: c.expr(first(n))}
	case "member_access_expression":
		return &syntax.MemberAccess{
			NodeInfo: info,
			Expr:     c.expr(field(n, "expression")),
			Name:     c.simpleName(field(n, "name")),
		}
	case "invocation_expression":
		return &syntax.Invocation{
			NodeInfo: info,
			Expr:     c.expr(field(n, "function")),
			Args:     c.arguments(field(n, "arguments")),
		}
	case "element_access_expression":
		sub := field(n, "subscript")
		if sub == nil {
			sub = ofKind(n, "bracketed_argument_list")
		}
		return &syntax.ElementAccess{NodeInfo: info, Expr: c.expr(field(n, "expression")), Index: c.arguments(sub)}
	case "object_creation_expression":
		oc := &syntax.ObjectCreation{NodeInfo: info, Type: c.typeRef(field(n, "type"))}
		if args := field(n, "arguments"); args != nil {
			oc.Args = c.arguments(args)
			if oc.Args == nil {
				oc.Args = []*syntax.Argument{}
			}
		}
		if init := field(n, "initializer"); init != nil {
			oc.Initializer = c.initializer(init)
		}
		return oc
	case "array_creation_expression":
		return c.arrayCreation(n)
	case "implicit_array_creation_expression":
		init := field(n, "initializer")
		if init == nil {
			init = ofKind(n, "initializer_expression")
		}
		return &syntax.ImplicitArrayCreation{NodeInfo: info, Initializer: c.initializer(init)}
	case "initializer_expression":
		return c.initializer(n)
	case "assignment_expression":
		return &syntax.Assignment{
			NodeInfo: info,
			Left:     c.expr(field(n, "left")),
			Operator: c.operator(n),
			Right:    c.expr(field(n, "right")),
		}
	case "binary_expression":
		return &syntax.Binary{
			NodeInfo: info,
			Left:     c.expr(field(n, "left")),
			Operator: c.operator(n),
			Right:    c.expr(field(n, "right")),
		}
	case "prefix_unary_expression":
		return &syntax.PrefixUnary{NodeInfo: info, Operator: c.text(n.Child(0)), Operand: c.expr(last(n))}
	case "postfix_unary_expression":
		return &syntax.PostfixUnary{NodeInfo: info, Operand: c.expr(first(n)), Operator: c.text(n.Child(int(n.ChildCount()) - 1))}
	case "cast_expression":
		return &syntax.Cast{NodeInfo: info, Type: c.typeRef(field(n, "type")), Expr: c.expr(field(n, "value"))}
	case "typeof_expression":
		t := field(n, "type")
		if t == nil {
			t = first(n)
		}
		return &syntax.TypeOf{NodeInfo: info, Type: c.typeRef(t)}
	case "default_expression":
		t := field(n, "type")
		if t == nil {
			t = first(n)
		}
		if t == nil {
			return &syntax.Unsupported{NodeInfo: info, What: "default_literal"}
		}
		return &syntax.Default{NodeInfo: info, Type: c.typeRef(t)}
	case "conditional_expression":
		return &syntax.Conditional{
			NodeInfo:  info,
			Condition: c.expr(field(n, "condition")),
			WhenTrue:  c.expr(field(n, "consequence")),
			WhenFalse: c.expr(field(n, "alternative")),
		}
	default:
		if lit := c.literal(n); lit != nil {
			return lit
		}
		return &syntax.Unsupported{NodeInfo: info, What: n.Type()}
	}
}

// simpleName returns the name of a member access, without type arguments.
func (c *converter) simpleName(n *sitter.Node) string {
	if t := c.typeRef(n); t != nil {
		return t.Name
	}
	return ""
}

// operator returns the operator token of a binary or assignment expression.
func (c *converter) operator(n *sitter.Node) string {
	if op := field(n, "operator"); op != nil {
		return strings.TrimSpace(c.text(op))
	}
	for _, ch := range allChildren(n) {
		if !ch.IsNamed() {
			return ch.Type()
		}
		if ch.Type() == "assignment_operator" {
			return strings.TrimSpace(c.text(ch))
		}
	}
	return ""
}

func (c *converter) arguments(list *sitter.Node) []*syntax.Argument {
	var out []*syntax.Argument
	for _, a := range named(list) {
		if a.Type() != "argument" {
			continue
		}
		arg := &syntax.Argument{NodeInfo: c.info(a)}
		if nc := ofKind(a, "name_colon"); nc != nil {
			arg.Name = c.text(first(nc))
		}
		e := field(a, "expression")
		if e == nil {
			e = last(a)
		}
		arg.Expr = c.expr(e)
		out = append(out, arg)
	}
	return out
}

func (c *converter) arrayCreation(n *sitter.Node) syntax.Node {
	ac := &syntax.ArrayCreation{NodeInfo: c.info(n)}
	t := field(n, "type")
	if t == nil {
		t = ofKind(n, "array_type")
	}
	var ranks []*sitter.Node
	for t != nil && t.Type() == "array_type" {
		elem, rank := c.arrayParts(t)
		ranks = append([]*sitter.Node{rank}, ranks...)
		t = elem
	}
	ac.ElementType = c.typeRef(t)
	for _, r := range ranks {
		sizes := make([]syntax.Node, 0, rankDimensions(r))
		for _, e := range named(r) {
			sizes = append(sizes, c.expr(e))
		}
		for len(sizes) < rankDimensions(r) {
			sizes = append(sizes, nil)
		}
		ac.Sizes = append(ac.Sizes, sizes)
	}
	init := field(n, "initializer")
	if init == nil {
		init = ofKind(n, "initializer_expression")
	}
	if init != nil {
		ac.Initializer = c.initializer(init)
	}
	return ac
}

func (c *converter) initializer(n *sitter.Node) *syntax.Initializer {
	if n == nil {
		return nil
	}
	init := &syntax.Initializer{NodeInfo: c.info(n)}
	for _, e := range named(n) {
		init.Expressions = append(init.Expressions, c.expr(e))
	}
	return init
}

// literal converts a literal token, or returns nil when n is not one.
func (c *converter) literal(n *sitter.Node) syntax.Node {
	if n == nil {
		return nil
	}
	text := c.text(n)
	lit := &syntax.Literal{NodeInfo: c.info(n), Text: text}
	switch n.Type() {
	case "string_literal":
		lit.Kind = syntax.StringLiteral
		lit.ValueText = unescape(strings.TrimSuffix(strings.TrimPrefix(text, `"`), `"`))
	case "verbatim_string_literal":
		lit.Kind = syntax.StringLiteral
		inner := strings.TrimSuffix(strings.TrimPrefix(text, `@"`), `"`)
		lit.ValueText = strings.ReplaceAll(inner, `""`, `"`)
	case "character_literal":
		lit.Kind = syntax.CharLiteral
		lit.ValueText = unescape(strings.TrimSuffix(strings.TrimPrefix(text, "'"), "'"))
	case "integer_literal", "real_literal":
		lit.Kind = syntax.NumericLiteral
	case "boolean_literal":
		lit.Kind = syntax.FalseLiteral
		if text == "true" {
			lit.Kind = syntax.TrueLiteral
		}
	case "null_literal":
		lit.Kind = syntax.NullLiteral
	default:
		return nil
	}
	return lit
}
