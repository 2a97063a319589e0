// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package csharp

import (
	"strings"

	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// bodyBinder binds the statements and expressions of one member.
type bodyBinder struct {
	*fileBinder
	sc     declScope
	locals []map[string]*Symbol
}

// bound describes a bound expression: the static type of its value, or the
// type or namespace it names.
type bound struct {
	typ    *Symbol
	isType bool
	ns     string
}

func (b *fileBinder) bindBodies() {
	for _, td := range b.decls {
		bb := &bodyBinder{fileBinder: b, sc: b.scopeFor(td)}
		bb.bindTypeBodies(td)
	}
}

func (bb *bodyBinder) bindTypeBodies(td typeDeclaration) {
	m := bb.model
	for _, n := range td.decl.Members {
		switch x := n.(type) {
		case *syntax.FieldDecl:
			for _, v := range x.Variables {
				bb.expr(v.Initializer)
			}
		case *syntax.EnumMemberDecl:
			bb.expr(x.Value)
		case *syntax.MethodDecl:
			sym, _ := m.declared[x].(*Symbol)
			bb.withParams(sym, x.Parameters, func() {
				bb.block(x.Body)
				bb.expr(x.ExpressionBody)
			})
		case *syntax.ConstructorDecl:
			sym, _ := m.declared[x].(*Symbol)
			bb.withParams(sym, x.Parameters, func() {
				bb.block(x.Body)
			})
		case *syntax.PropertyDecl:
			prop, _ := m.declared[x].(*Symbol)
			bb.expr(x.Initializer)
			bb.expr(x.ExpressionBody)
			if x.Getter != nil {
				bb.block(x.Getter.Body)
				bb.expr(x.Getter.ExpressionBody)
			}
			if x.Setter != nil {
				var typ *Symbol
				if prop != nil {
					typ = prop.typ
				}
				bb.push()
				bb.local(newParameter("value", typ))
				bb.block(x.Setter.Body)
				bb.expr(x.Setter.ExpressionBody)
				bb.pop()
			}
		}
	}
}

func (bb *bodyBinder) withParams(method *Symbol, params []*syntax.Parameter, f func()) {
	saved := bb.sc
	if method != nil {
		bb.sc = bb.sc.withMethod(method)
	}
	bb.push()
	for _, p := range params {
		if ps, ok := bb.model.declared[p].(*Symbol); ok {
			bb.local(ps)
		}
		bb.expr(p.Default)
	}
	f()
	bb.pop()
	bb.sc = saved
}

func (bb *bodyBinder) push() { bb.locals = append(bb.locals, map[string]*Symbol{}) }
func (bb *bodyBinder) pop()  { bb.locals = bb.locals[:len(bb.locals)-1] }

func (bb *bodyBinder) local(sym *Symbol) {
	bb.locals[len(bb.locals)-1][sym.name] = sym
}

func (bb *bodyBinder) lookupLocal(name string) *Symbol {
	for i := len(bb.locals) - 1; i >= 0; i-- {
		if s, ok := bb.locals[i][name]; ok {
			return s
		}
	}
	return nil
}

// ---- Statements ----

func (bb *bodyBinder) block(b *syntax.Block) {
	if b == nil {
		return
	}
	bb.push()
	for _, s := range b.Statements {
		bb.stmt(s)
	}
	bb.pop()
}

func (bb *bodyBinder) stmt(n syntax.Node) {
	switch x := n.(type) {
	case *syntax.Block:
		bb.block(x)
	case *syntax.ExpressionStatement:
		bb.expr(x.Expr)
	case *syntax.LocalDeclaration:
		typ := bb.resolveType(x.Type, bb.sc)
		for _, v := range x.Variables {
			init := bb.expr(v.Initializer)
			t := typ
			if t == nil {
				t = init.typ
			}
			l := newLocal(v.Name, t)
			bb.model.declare(v, l)
			bb.local(l)
		}
	case *syntax.ReturnStatement:
		bb.expr(x.Expr)
	case *syntax.IfStatement:
		bb.expr(x.Condition)
		bb.scoped(x.Then)
		bb.scoped(x.Else)
	case *syntax.WhileStatement:
		bb.expr(x.Condition)
		bb.scoped(x.Body)
	case *syntax.ThrowStatement:
		bb.expr(x.Expr)
	}
}

// scoped binds an embedded statement in its own local scope.
func (bb *bodyBinder) scoped(n syntax.Node) {
	if n == nil {
		return
	}
	bb.push()
	bb.stmt(n)
	bb.pop()
}

// ---- Expressions ----

func (bb *bodyBinder) expr(n syntax.Node) bound {
	m := bb.model
	switch x := n.(type) {
	case nil:
		return bound{}
	case *syntax.Identifier:
		return bb.identifier(x)
	case *syntax.PredefinedType:
		t := bb.c.keywordType(x.Keyword)
		m.bind(x, t)
		return bound{typ: t, isType: t != nil}
	case *syntax.MemberAccess:
		return bb.memberAccess(x)
	case *syntax.Invocation:
		return bb.invocation(x)
	case *syntax.ElementAccess:
		l := bb.expr(x.Expr)
		bb.args(x.Index)
		if l.typ != nil && l.typ.typeKind == types.Array {
			return bound{typ: l.typ.typ}
		}
		return bound{}
	case *syntax.ObjectCreation:
		return bb.objectCreation(x)
	case *syntax.ArrayCreation:
		t := bb.resolveType(x.ElementType, bb.sc)
		for _, sizes := range x.Sizes {
			for _, s := range sizes {
				bb.expr(s)
			}
		}
		bb.initializer(x.Initializer)
		if t == nil {
			return bound{}
		}
		for range x.Sizes {
			t = bb.c.arrayOf(t)
		}
		return bound{typ: t}
	case *syntax.ImplicitArrayCreation:
		elem := bb.initializer(x.Initializer)
		if elem == nil {
			return bound{}
		}
		return bound{typ: bb.c.arrayOf(elem)}
	case *syntax.Initializer:
		return bound{typ: bb.initializer(x)}
	case *syntax.Literal:
		return bound{typ: bb.literalType(x)}
	case *syntax.This:
		return bound{typ: bb.sc.typ}
	case *syntax.Parenthesized:
		return bb.expr(x.Expr)
	case *syntax.Cast:
		t := bb.resolveType(x.Type, bb.sc)
		bb.expr(x.Expr)
		return bound{typ: t}
	case *syntax.TypeOf:
		bb.resolveType(x.Type, bb.sc)
		return bound{typ: bb.c.typeByName("System.Type")}
	case *syntax.Default:
		return bound{typ: bb.resolveType(x.Type, bb.sc)}
	case *syntax.Conditional:
		bb.expr(x.Condition)
		t, f := bb.expr(x.WhenTrue), bb.expr(x.WhenFalse)
		if t.typ == nil {
			return bound{typ: f.typ}
		}
		return bound{typ: t.typ}
	case *syntax.Assignment:
		l := bb.expr(x.Left)
		bb.expr(x.Right)
		return bound{typ: l.typ}
	case *syntax.Binary:
		return bb.binary(x)
	case *syntax.PrefixUnary:
		return bb.unary(x, x.Operator, x.Operand)
	case *syntax.PostfixUnary:
		return bb.unary(x, x.Operator, x.Operand)
	}
	return bound{}
}

func (bb *bodyBinder) identifier(x *syntax.Identifier) bound {
	m := bb.model
	if x.Name == "super" {
		if bb.sc.typ != nil {
			return bound{typ: bb.sc.typ.base}
		}
		return bound{}
	}
	if l := bb.lookupLocal(x.Name); l != nil {
		m.bind(x, l)
		return bound{typ: l.typ}
	}
	for t := bb.sc.typ; t != nil && t.kind == types.NamedType; t = t.containing {
		if mem := t.member(x.Name, isValueMember); mem != nil {
			m.bind(x, mem)
			return bound{typ: mem.typ}
		}
	}
	if t := bb.lookupType(x.Name, bb.sc); t != nil {
		m.bind(x, t)
		return bound{typ: t, isType: true}
	}
	if bb.c.prefixes[x.Name] || bb.prefixInNamespaces(x.Name) {
		return bound{ns: x.Name}
	}
	return bound{}
}

func (bb *bodyBinder) prefixInNamespaces(name string) bool {
	for ns := bb.sc.ns; ns != ""; ns, _ = splitLast(ns) {
		if bb.c.prefixes[joinName(ns, name)] {
			return true
		}
	}
	return false
}

func isValueMember(s *Symbol) bool {
	switch s.kind {
	case types.Field, types.Property, types.Event:
		return true
	case types.Method:
		return s.methodKind == types.Ordinary || s.methodKind == types.UserDefinedOperator
	}
	return false
}

func (bb *bodyBinder) memberAccess(x *syntax.MemberAccess) bound {
	m := bb.model
	l := bb.expr(x.Expr)
	switch {
	case l.ns != "":
		full := joinName(l.ns, x.Name)
		if t := bb.lookupType(full, bb.sc); t != nil {
			m.bind(x, t)
			return bound{typ: t, isType: true}
		}
		return bound{ns: full}
	case l.typ == nil:
		return bound{}
	case l.isType:
		if mem := l.typ.member(x.Name, isValueMember); mem != nil {
			m.bind(x, mem)
			return bound{typ: mem.typ}
		}
		if n := l.typ.nestedType(x.Name); n != nil {
			m.bind(x, n)
			return bound{typ: n, isType: true}
		}
		return bound{}
	}
	if mem := bb.instanceMember(l.typ, x.Name, isValueMember); mem != nil {
		m.bind(x, mem)
		return bound{typ: mem.typ}
	}
	return bound{}
}

// instanceMember looks a member up on the type of a value. Arrays expose the
// members of System.Array, and every type inherits System.Object.
func (bb *bodyBinder) instanceMember(t *Symbol, name string, match func(*Symbol) bool) *Symbol {
	if t.typeKind == types.Array {
		if arr := bb.c.typeByName("System.Array"); arr != nil {
			t = arr
		}
	}
	if mem := t.member(name, match); mem != nil {
		return mem
	}
	if obj := bb.c.typeByName("System.Object"); obj != nil && obj != t {
		return obj.member(name, match)
	}
	return nil
}

func (bb *bodyBinder) args(args []*syntax.Argument) []bound {
	out := make([]bound, len(args))
	for i, a := range args {
		out[i] = bb.expr(a.Expr)
	}
	return out
}

func (bb *bodyBinder) invocation(x *syntax.Invocation) bound {
	m := bb.model
	var candidates []*Symbol
	isMethod := func(s *Symbol) bool {
		return s.kind == types.Method && (s.methodKind == types.Ordinary || s.methodKind == types.UserDefinedOperator)
	}

	switch callee := x.Expr.(type) {
	case *syntax.Identifier:
		if bb.lookupLocal(callee.Name) == nil {
			for t := bb.sc.typ; t != nil && t.kind == types.NamedType && len(candidates) == 0; t = t.containing {
				candidates = t.methods(callee.Name, isMethod)
			}
		}
		if len(candidates) == 0 {
			bb.expr(callee)
		}
	case *syntax.MemberAccess:
		l := bb.expr(callee.Expr)
		if l.typ != nil {
			if l.isType {
				candidates = l.typ.methods(callee.Name, isMethod)
			} else {
				t := l.typ
				if t.typeKind == types.Array {
					if arr := bb.c.typeByName("System.Array"); arr != nil {
						t = arr
					}
				}
				candidates = t.methods(callee.Name, isMethod)
				if obj := bb.c.typeByName("System.Object"); len(candidates) == 0 && obj != nil {
					candidates = obj.methods(callee.Name, isMethod)
				}
			}
		}
	default:
		bb.expr(x.Expr)
	}

	args := bb.args(x.Args)
	method := pickOverload(candidates, x.Args, args)
	if method == nil {
		return bound{}
	}
	m.bind(x, method)
	m.bind(x.Expr, method)
	return bound{typ: method.typ}
}

// methods lists the methods named name on s and its base types.
func (s *Symbol) methods(name string, match func(*Symbol) bool) []*Symbol {
	var out []*Symbol
	for t := s; t != nil; t = t.base {
		for _, m := range t.members {
			if m.name == name && match(m) {
				out = append(out, m)
			}
		}
		for _, i := range t.interfaces {
			out = append(out, i.methods(name, match)...)
		}
	}
	return out
}

// pickOverload chooses among candidates by arity, then by how many argument
// types match the parameter types exactly. Named arguments must name a
// parameter.
func pickOverload(candidates []*Symbol, args []*syntax.Argument, bounds []bound) *Symbol {
	var best *Symbol
	bestScore := -1
	for _, c := range candidates {
		score := 0
		switch {
		case len(c.params) == len(args):
			score += 100
		case len(c.params) > len(args):
			score += 50 - (len(c.params) - len(args))
		default:
			score -= 100
		}
		for i, a := range args {
			if a.Name != "" {
				if !c.hasParam(a.Name) {
					score -= 100
				}
				continue
			}
			if i < len(c.params) && bounds[i].typ != nil && c.params[i].typ == bounds[i].typ {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

func (s *Symbol) hasParam(name string) bool {
	for _, p := range s.params {
		if p.name == name {
			return true
		}
	}
	return false
}

func (bb *bodyBinder) objectCreation(x *syntax.ObjectCreation) bound {
	m := bb.model
	t := bb.resolveType(x.Type, bb.sc)
	args := bb.args(x.Args)
	if x.Initializer != nil {
		for _, e := range x.Initializer.Expressions {
			if a, ok := e.(*syntax.Assignment); ok && t != nil {
				if id, ok := a.Left.(*syntax.Identifier); ok {
					if mem := t.member(id.Name, isValueMember); mem != nil {
						m.bind(id, mem)
					}
					bb.expr(a.Right)
					continue
				}
			}
			bb.expr(e)
		}
	}
	if t == nil {
		return bound{}
	}
	ctors := t.methods(t.name, func(s *Symbol) bool {
		return s.kind == types.Method && s.methodKind == types.Constructor
	})
	if ctor := pickOverload(ctors, x.Args, args); ctor != nil {
		m.bind(x, ctor)
	}
	return bound{typ: t}
}

// initializer binds the elements and returns the type of the first element
// whose type is known.
func (bb *bodyBinder) initializer(x *syntax.Initializer) *Symbol {
	if x == nil {
		return nil
	}
	var elem *Symbol
	for _, e := range x.Expressions {
		if b := bb.expr(e); elem == nil {
			elem = b.typ
		}
	}
	return elem
}

func (bb *bodyBinder) literalType(x *syntax.Literal) *Symbol {
	switch x.Kind {
	case syntax.StringLiteral:
		return bb.c.keywordType("string")
	case syntax.CharLiteral:
		return bb.c.keywordType("char")
	case syntax.TrueLiteral, syntax.FalseLiteral:
		return bb.c.keywordType("bool")
	case syntax.NumericLiteral:
		text := strings.ToLower(strings.ReplaceAll(x.Text, "_", ""))
		switch {
		case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0b"):
			return bb.c.keywordType("int")
		case strings.HasSuffix(text, "m"):
			return bb.c.keywordType("decimal")
		case strings.HasSuffix(text, "f"):
			return bb.c.keywordType("float")
		case strings.HasSuffix(text, "l"):
			return bb.c.keywordType("long")
		case strings.ContainsAny(text, ".ed"):
			return bb.c.keywordType("double")
		}
		return bb.c.keywordType("int")
	}
	return nil
}

var comparisonOperators = map[string]bool{
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true, "&&": true, "||": true, "is": true,
}

func (bb *bodyBinder) binary(x *syntax.Binary) bound {
	l, r := bb.expr(x.Left), bb.expr(x.Right)
	str := bb.c.keywordType("string")
	switch {
	case comparisonOperators[x.Operator]:
		return bound{typ: bb.c.keywordType("bool")}
	case x.Operator == "+" && str != nil && (l.typ == str || r.typ == str):
		return bound{typ: str}
	case x.Operator == "??" && l.typ == nil:
		return bound{typ: r.typ}
	}
	return bound{typ: l.typ}
}

// unaryOperatorMethods maps unary operator tokens to the methods that
// overload them.
var unaryOperatorMethods = map[string]types.UserDefinedOperatorKind{
	"++": types.OpIncrement,
	"--": types.OpDecrement,
	"!":  types.OpLogicalNot,
	"~":  types.OpOnesComplement,
	"+":  types.OpUnaryPlus,
	"-":  types.OpUnaryNegation,
}

func (bb *bodyBinder) unary(x syntax.Node, op string, operand syntax.Node) bound {
	o := bb.expr(operand)
	if o.typ == nil || o.isType {
		return bound{typ: o.typ}
	}
	kind, ok := unaryOperatorMethods[op]
	if !ok {
		return bound{typ: o.typ}
	}
	method := o.typ.member(kind.MethodName(), func(s *Symbol) bool {
		return s.kind == types.Method && s.methodKind == types.UserDefinedOperator && len(s.params) == 1
	})
	if method == nil {
		return bound{typ: o.typ}
	}
	bb.model.bind(x, method)
	if method.typ != nil {
		return bound{typ: method.typ}
	}
	return bound{typ: o.typ}
}
