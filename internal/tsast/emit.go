// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tsast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EmitOptions controls formatting.
type EmitOptions struct {
	Indent string // Defaults to four spaces
}

// Emit renders a node to TypeScript source.
func Emit(n Node) string {
	return EmitWith(n, EmitOptions{})
}

// EmitWith renders a node using the given options.
func EmitWith(n Node, opts EmitOptions) string {
	if opts.Indent == "" {
		opts.Indent = "    "
	}
	e := &emitter{opts: opts}
	e.node(n)
	return e.b.String()
}

type emitter struct {
	b     strings.Builder
	opts  EmitOptions
	level int
}

func (e *emitter) write(s string) { e.b.WriteString(s) }

func (e *emitter) newline() {
	e.b.WriteByte('\n')
	e.b.WriteString(strings.Repeat(e.opts.Indent, e.level))
}

func (e *emitter) node(n Node) {
	switch x := n.(type) {
	case *Module:
		e.module(x)
	case *Import:
		e.importDecl(x)
	case *TypeRef:
		e.typeRef(x)
	case *ClassDecl:
		e.classDecl(x)
	case *InterfaceDecl:
		e.interfaceDecl(x)
	case *EnumDecl:
		e.enumDecl(x)
	case ClassMember:
		e.member(x, false)
	case *Param:
		e.param(x)
	case Stmt:
		e.stmt(x)
	case Expr:
		e.expr(x)
	default:
		panic(fmt.Sprintf("tsast: cannot emit %T", n))
	}
}

func (e *emitter) module(m *Module) {
	for _, imp := range m.Imports {
		e.importDecl(imp)
		e.write("\n")
	}
	if len(m.Imports) > 0 && len(m.Items) > 0 {
		e.write("\n")
	}
	for i, item := range m.Items {
		if i > 0 {
			e.write("\n")
			if isDecl(item) || isDecl(m.Items[i-1]) {
				e.write("\n")
			}
		}
		e.node(item)
	}
	if len(m.Items) > 0 {
		e.write("\n")
	}
}

func isDecl(n Node) bool {
	switch n.(type) {
	case *ClassDecl, *InterfaceDecl, *EnumDecl:
		return true
	}
	return false
}

func (e *emitter) importDecl(imp *Import) {
	e.write("import { " + strings.Join(imp.Names, ", ") + " } from ")
	e.write(quote(imp.From, SingleQuote))
	e.write(";")
}

func (e *emitter) jsdoc(d *JSDoc) {
	if d.IsEmpty() {
		return
	}
	e.write("/**")
	for _, l := range d.lines() {
		e.newline()
		if l == "" {
			e.write(" *")
		} else {
			e.write(" * " + l)
		}
	}
	e.newline()
	e.write(" */")
	e.newline()
}

func (e *emitter) typeParams(ps []string) {
	if len(ps) > 0 {
		e.write("<" + strings.Join(ps, ", ") + ">")
	}
}

func (e *emitter) typeRef(t *TypeRef) {
	e.write(t.Name)
	if len(t.Args) > 0 {
		e.write("<")
		for i, a := range t.Args {
			if i > 0 {
				e.write(", ")
			}
			e.typeRef(a)
		}
		e.write(">")
	}
	e.write(strings.Repeat("[]", t.ArrayDepth))
}

func (e *emitter) typeList(ts []*TypeRef) {
	for i, t := range ts {
		if i > 0 {
			e.write(", ")
		}
		e.typeRef(t)
	}
}

func (e *emitter) annotation(t *TypeRef) {
	if t != nil {
		e.write(": ")
		e.typeRef(t)
	}
}

func (e *emitter) classDecl(c *ClassDecl) {
	e.jsdoc(c.Doc)
	if c.Exported {
		e.write("export ")
	}
	if c.Abstract {
		e.write("abstract ")
	}
	e.write("class " + c.Name)
	e.typeParams(c.TypeParams)
	if c.Extends != nil {
		e.write(" extends ")
		e.typeRef(c.Extends)
	}
	if len(c.Implements) > 0 {
		e.write(" implements ")
		e.typeList(c.Implements)
	}
	e.members(c.Members, false)
}

func (e *emitter) interfaceDecl(d *InterfaceDecl) {
	e.jsdoc(d.Doc)
	if d.Exported {
		e.write("export ")
	}
	e.write("interface " + d.Name)
	e.typeParams(d.TypeParams)
	if len(d.Extends) > 0 {
		e.write(" extends ")
		e.typeList(d.Extends)
	}
	e.members(d.Members, true)
}

func (e *emitter) members(ms []ClassMember, signaturesOnly bool) {
	if len(ms) == 0 {
		e.write(" {\n")
		e.write(strings.Repeat(e.opts.Indent, e.level))
		e.write("}")
		return
	}
	e.write(" {")
	e.level++
	for i, m := range ms {
		if i > 0 {
			_, prevVar := ms[i-1].(*MemberVariable)
			_, curVar := m.(*MemberVariable)
			if !prevVar || !curVar {
				e.write("\n")
			}
		}
		e.newline()
		e.member(m, signaturesOnly)
	}
	e.level--
	e.newline()
	e.write("}")
}

func (e *emitter) enumDecl(d *EnumDecl) {
	e.jsdoc(d.Doc)
	if d.Exported {
		e.write("export ")
	}
	e.write("enum " + d.Name + " {")
	e.level++
	for i, m := range d.Members {
		e.newline()
		e.jsdoc(m.Doc)
		e.write(m.Name)
		if m.Value != nil {
			e.write(" = ")
			e.expr(m.Value)
		}
		if i < len(d.Members)-1 {
			e.write(",")
		}
	}
	e.level--
	e.newline()
	e.write("}")
}

func (e *emitter) modifiers(m Modifiers) {
	if m.Access != "" {
		e.write(m.Access + " ")
	}
	if m.Static {
		e.write("static ")
	}
	if m.Abstract {
		e.write("abstract ")
	}
	if m.Readonly {
		e.write("readonly ")
	}
}

func (e *emitter) member(m ClassMember, signatureOnly bool) {
	switch x := m.(type) {
	case *MemberVariable:
		e.jsdoc(x.Doc)
		e.modifiers(x.Mods)
		e.write(x.Name)
		e.annotation(x.Type)
		if x.Init != nil && !signatureOnly {
			e.write(" = ")
			e.expr(x.Init)
		}
		e.write(";")
	case *MethodDecl:
		e.jsdoc(x.Doc)
		e.modifiers(x.Mods)
		e.write(x.Name)
		e.typeParams(x.TypeParams)
		e.params(x.Params)
		e.annotation(x.ReturnType)
		if x.Body == nil || signatureOnly {
			e.write(";")
			return
		}
		e.write(" ")
		e.block(x.Body)
	case *ConstructorDecl:
		e.jsdoc(x.Doc)
		e.modifiers(x.Mods)
		e.write("constructor")
		e.params(x.Params)
		e.write(" ")
		e.block(orEmpty(x.Body))
	case *GetAccessor:
		e.jsdoc(x.Doc)
		e.modifiers(x.Mods)
		e.write("get " + x.Name + "()")
		e.annotation(x.Type)
		e.write(" ")
		e.block(orEmpty(x.Body))
	case *SetAccessor:
		e.jsdoc(x.Doc)
		e.modifiers(x.Mods)
		e.write("set " + x.Name + "(")
		if x.Param != nil {
			e.param(x.Param)
		}
		e.write(") ")
		e.block(orEmpty(x.Body))
	}
}

func orEmpty(b *Block) *Block {
	if b == nil {
		return &Block{}
	}
	return b
}

func (e *emitter) params(ps []*Param) {
	e.write("(")
	for i, p := range ps {
		if i > 0 {
			e.write(", ")
		}
		e.param(p)
	}
	e.write(")")
}

func (e *emitter) param(p *Param) {
	if p.Rest {
		e.write("... ")
	}
	e.write(p.Name)
	if p.Optional && p.Default == nil {
		e.write("?")
	}
	e.annotation(p.Type)
	if p.Default != nil {
		e.write(" = ")
		e.expr(p.Default)
	}
}

// ---- Statements ----

func (e *emitter) block(b *Block) {
	if len(b.Stmts) == 0 {
		e.write("{ }")
		return
	}
	e.write("{")
	e.level++
	for _, s := range b.Stmts {
		e.newline()
		e.stmt(s)
	}
	e.level--
	e.newline()
	e.write("}")
}

// body emits the statement controlled by if/while.
func (e *emitter) body(s Stmt) {
	if b, ok := s.(*Block); ok {
		e.write(" ")
		e.block(b)
		return
	}
	e.level++
	e.newline()
	e.stmt(s)
	e.level--
}

func (e *emitter) stmt(s Stmt) {
	switch x := s.(type) {
	case *Block:
		e.block(x)
	case *ExprStmt:
		e.expr(x.Expr)
		e.write(";")
	case *VarDecl:
		if x.Const {
			e.write("const ")
		} else {
			e.write("let ")
		}
		for i, d := range x.Decls {
			if i > 0 {
				e.write(", ")
			}
			e.write(d.Name)
			e.annotation(d.Type)
			if d.Init != nil {
				e.write(" = ")
				e.expr(d.Init)
			}
		}
		e.write(";")
	case *Return:
		e.write("return")
		if x.Expr != nil {
			e.write(" ")
			e.expr(x.Expr)
		}
		e.write(";")
	case *If:
		e.write("if (")
		e.expr(x.Cond)
		e.write(")")
		e.body(x.Then)
		if x.Else != nil {
			if _, ok := x.Then.(*Block); ok {
				e.write(" else")
			} else {
				e.newline()
				e.write("else")
			}
			if elseIf, ok := x.Else.(*If); ok {
				e.write(" ")
				e.stmt(elseIf)
			} else {
				e.body(x.Else)
			}
		}
	case *While:
		e.write("while (")
		e.expr(x.Cond)
		e.write(")")
		e.body(x.Body)
	case *Throw:
		e.write("throw ")
		e.expr(x.Expr)
		e.write(";")
	case *Break:
		e.write("break;")
	case *Continue:
		e.write("continue;")
	}
}

// ---- Expressions ----

func (e *emitter) exprList(xs []Expr) {
	for i, x := range xs {
		if i > 0 {
			e.write(", ")
		}
		e.expr(x)
	}
}

func (e *emitter) expr(x Expr) {
	switch x := x.(type) {
	case *Identifier:
		e.write(x.Name)
	case *This:
		e.write("this")
	case *MemberDot:
		e.expr(x.Left)
		e.write("." + x.Name)
	case *MemberBracket:
		e.expr(x.Left)
		e.write("[")
		e.expr(x.Index)
		e.write("]")
	case *Call:
		e.expr(x.Callee)
		e.write("(")
		e.exprList(x.Args)
		e.write(")")
	case *New:
		e.write("new ")
		e.expr(x.Callee)
		e.write("(")
		e.exprList(x.Args)
		e.write(")")
	case *ArrayLiteral:
		e.write("[")
		e.exprList(x.Elements)
		e.write("]")
	case *ObjectLiteral:
		if len(x.Props) == 0 {
			e.write("{}")
			return
		}
		e.write("{ ")
		for i, p := range x.Props {
			if i > 0 {
				e.write(", ")
			}
			e.write(p.Key + ": ")
			e.expr(p.Value)
		}
		e.write(" }")
	case *StringLiteral:
		e.write(quote(x.Value, x.Quote))
	case *NumberLiteral:
		e.write(FormatNumber(x))
	case *BoolLiteral:
		e.write(strconv.FormatBool(x.Value))
	case *Null:
		e.write("null")
	case *Paren:
		e.write("(")
		e.expr(x.Expr)
		e.write(")")
	case *Cast:
		e.write("<")
		e.typeRef(x.Type)
		e.write(">")
		e.expr(x.Expr)
	case *Conditional:
		e.expr(x.Cond)
		e.write(" ? ")
		e.expr(x.Then)
		e.write(" : ")
		e.expr(x.Else)
	case *Assignment:
		e.expr(x.Left)
		e.write(" " + x.Op.String() + " ")
		e.expr(x.Right)
	case *Binary:
		e.expr(x.Left)
		e.write(" " + x.Op.String() + " ")
		e.expr(x.Right)
	case *Unary:
		if x.Op.IsPostfix() {
			e.expr(x.Operand)
			e.write(x.Op.String())
			return
		}
		e.write(x.Op.String())
		e.expr(x.Operand)
	case *Raw:
		e.write(x.Text)
	default:
		panic(fmt.Sprintf("tsast: cannot emit expression %T", x))
	}
}

func quote(body string, q QuoteKind) string {
	if q == DoubleQuote {
		return `"` + body + `"`
	}
	return "'" + body + "'"
}

// FormatNumber renders a numeric literal.
func FormatNumber(n *NumberLiteral) string {
	if n.Kind == HexInteger {
		return "0x" + strconv.FormatUint(n.Bits, 16)
	}
	if n.Value == math.Trunc(n.Value) && math.Abs(n.Value) < 1e21 {
		return strconv.FormatFloat(n.Value, 'f', -1, 64)
	}
	return strconv.FormatFloat(n.Value, 'G', -1, 64)
}
