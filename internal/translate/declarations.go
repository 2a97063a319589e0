// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package translate

import (
	"github.com/petar-djukic/cs2ts/internal/naming"
	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/internal/tsast"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// typeDecl translates a type and returns it followed by its nested types,
// which TypeScript cannot nest and are therefore lifted to module level.
func (v *Visitor) typeDecl(x *syntax.TypeDecl) []tsast.Node {
	name := v.declaredName(x, x.Name)
	doc := v.docComment(x.Doc)

	var nested []tsast.Node
	var decl tsast.Node
	switch x.TypeKind {
	case types.Class, types.Struct:
		c := &tsast.ClassDecl{
			Doc:        doc,
			Exported:   true,
			Abstract:   x.Modifiers.Has("abstract"),
			Name:       name,
			TypeParams: x.TypeParams,
		}
		c.Extends, c.Implements = v.baseTypes(x.BaseTypes)
		c.Members, nested = v.classMembers(x.Members, false)
		decl = c
	case types.Interface:
		d := &tsast.InterfaceDecl{Doc: doc, Exported: true, Name: name, TypeParams: x.TypeParams}
		for _, b := range x.BaseTypes {
			if t := v.typeRef(b); t != nil {
				d.Extends = append(d.Extends, t)
			}
		}
		d.Members, nested = v.classMembers(x.Members, true)
		decl = d
	case types.Enum:
		decl = v.enumDecl(x, name, doc)
	default:
		v.unsupported(x)
		return nil
	}
	return append([]tsast.Node{decl}, nested...)
}

// baseTypes splits a class base list into the extended class and the
// implemented interfaces. An unresolved base is taken as the class when it
// comes first.
func (v *Visitor) baseTypes(bases []*syntax.TypeRef) (*tsast.TypeRef, []*tsast.TypeRef) {
	var extends *tsast.TypeRef
	var implements []*tsast.TypeRef
	for i, b := range bases {
		t := v.typeRef(b)
		if t == nil {
			continue
		}
		sym := v.model.SymbolInfo(b)
		isInterface := sym != nil && sym.TypeKind() == types.Interface
		if extends == nil && !isInterface && (sym != nil || i == 0) {
			extends = t
			continue
		}
		implements = append(implements, t)
	}
	return extends, implements
}

func (v *Visitor) classMembers(nodes []syntax.Node, inInterface bool) ([]tsast.ClassMember, []tsast.Node) {
	var members []tsast.ClassMember
	var nested []tsast.Node
	for _, n := range nodes {
		v.guard(n, func() {
			switch x := n.(type) {
			case *syntax.FieldDecl:
				for _, f := range v.fieldDecl(x) {
					members = append(members, f)
				}
			case *syntax.MethodDecl:
				if m := v.methodDecl(x, inInterface); m != nil {
					members = append(members, m)
				}
			case *syntax.ConstructorDecl:
				if inInterface || x.Modifiers.Has("static") {
					v.unsupported(x)
					return
				}
				members = append(members, v.constructorDecl(x))
			case *syntax.PropertyDecl:
				members = append(members, v.propertyDecl(x, inInterface)...)
			case *syntax.TypeDecl:
				nested = append(nested, v.typeDecl(x)...)
			default:
				v.unsupported(n)
			}
		})
	}
	return members, nested
}

func (v *Visitor) fieldDecl(x *syntax.FieldDecl) []*tsast.MemberVariable {
	var declNode syntax.Node = x
	if len(x.Variables) > 0 {
		declNode = x.Variables[0]
	}
	mods := v.modifiers(declNode, x.Modifiers)
	if x.Modifiers.Has("const") {
		mods.Static = true
		mods.Readonly = true
	}
	typ := v.typeRef(x.Type)

	out := make([]*tsast.MemberVariable, 0, len(x.Variables))
	for i, d := range x.Variables {
		mv := &tsast.MemberVariable{
			Mods: mods,
			Name: v.declaredName(d, naming.ToCamelCase(d.Name)),
			Type: typ,
		}
		if i == 0 {
			mv.Doc = v.docComment(x.Doc)
		}
		if d.Initializer != nil {
			mv.Init = v.expr(d.Initializer)
		}
		out = append(out, mv)
	}
	return out
}

// methodDecl returns nil for declaration-only overloads marked
// [AlternateSignature].
func (v *Visitor) methodDecl(x *syntax.MethodDecl, inInterface bool) tsast.ClassMember {
	sym := v.model.DeclaredSymbol(x)
	if sym != nil && v.tables.AlternateSignatures.GetOrDefault(sym, false) {
		return nil
	}

	name := naming.ToCamelCase(x.Name)
	if sym != nil {
		name = v.scriptName(sym)
		if sym.MethodKind() == types.UserDefinedOperator {
			if kind, ok := types.OperatorKindFromMethodName(sym.Name()); ok {
				if fn, ok := v.tables.Resolver.Rules().OperatorFunctionName(kind); ok {
					name = fn
				}
			}
		}
	}

	m := &tsast.MethodDecl{
		Doc:        v.docComment(x.Doc),
		Mods:       v.modifiers(x, x.Modifiers),
		Name:       name,
		TypeParams: x.TypeParams,
		Params:     v.params(x.Parameters),
		ReturnType: v.typeRef(x.ReturnType),
	}
	if inInterface {
		m.Mods = tsast.Modifiers{}
		return m
	}
	m.Mods.Abstract = x.Modifiers.Has("abstract")
	switch {
	case x.Body != nil:
		m.Body = v.block(x.Body)
	case x.ExpressionBody != nil:
		m.Body = v.expressionBody(x.ExpressionBody, returnsVoid(x.ReturnType))
	}
	return m
}

func (v *Visitor) constructorDecl(x *syntax.ConstructorDecl) *tsast.ConstructorDecl {
	c := &tsast.ConstructorDecl{
		Doc:    v.docComment(x.Doc),
		Mods:   v.modifiers(x, x.Modifiers),
		Params: v.params(x.Parameters),
		Body:   v.block(x.Body),
	}
	c.Mods.Static = false
	if c.Body == nil {
		c.Body = &tsast.Block{}
	}
	return c
}

// propertyDecl translates an auto-property to a member variable and any
// other property to a get/set accessor pair.
func (v *Visitor) propertyDecl(x *syntax.PropertyDecl, inInterface bool) []tsast.ClassMember {
	name := v.declaredName(x, naming.ToCamelCase(x.Name))
	mods := v.modifiers(x, x.Modifiers)
	typ := v.typeRef(x.Type)
	doc := v.docComment(x.Doc)

	if inInterface {
		return []tsast.ClassMember{&tsast.MemberVariable{Doc: doc, Name: name, Type: typ}}
	}
	if x.IsAuto() {
		mv := &tsast.MemberVariable{Doc: doc, Mods: mods, Name: name, Type: typ}
		if x.Initializer != nil {
			mv.Init = v.expr(x.Initializer)
		}
		return []tsast.ClassMember{mv}
	}

	var out []tsast.ClassMember
	if x.ExpressionBody != nil {
		return append(out, &tsast.GetAccessor{Doc: doc, Mods: mods, Name: name, Type: typ,
			Body: v.expressionBody(x.ExpressionBody, false)})
	}
	if g := x.Getter; g != nil {
		out = append(out, &tsast.GetAccessor{Doc: doc, Mods: mods, Name: name, Type: typ, Body: v.accessorBody(g, false)})
		doc = nil
	}
	if s := x.Setter; s != nil {
		out = append(out, &tsast.SetAccessor{
			Doc:   doc,
			Mods:  mods,
			Name:  name,
			Param: &tsast.Param{Name: "value", Type: typ},
			Body:  v.accessorBody(s, true),
		})
	}
	return out
}

func (v *Visitor) accessorBody(a *syntax.Accessor, isVoid bool) *tsast.Block {
	if a.Body != nil {
		return v.block(a.Body)
	}
	if a.ExpressionBody != nil {
		return v.expressionBody(a.ExpressionBody, isVoid)
	}
	return &tsast.Block{}
}

// expressionBody wraps an "=> expr" body in a block.
func (v *Visitor) expressionBody(n syntax.Node, isVoid bool) *tsast.Block {
	e := v.expr(n)
	if e == nil {
		return &tsast.Block{}
	}
	if isVoid {
		return &tsast.Block{Stmts: []tsast.Stmt{&tsast.ExprStmt{Expr: e}}}
	}
	return &tsast.Block{Stmts: []tsast.Stmt{&tsast.Return{Expr: e}}}
}

func returnsVoid(t *syntax.TypeRef) bool {
	return t == nil || (t.Name == "void" && len(t.ArrayRanks) == 0)
}

func (v *Visitor) enumDecl(x *syntax.TypeDecl, name string, doc *tsast.JSDoc) *tsast.EnumDecl {
	d := &tsast.EnumDecl{Doc: doc, Exported: true, Name: name}
	for _, n := range x.Members {
		m, ok := n.(*syntax.EnumMemberDecl)
		if !ok {
			v.unsupported(n)
			continue
		}
		em := &tsast.EnumMember{
			Doc:  v.docComment(m.Doc),
			Name: v.declaredName(m, naming.ToCamelCase(m.Name)),
		}
		if m.Value != nil {
			em.Value = v.expr(m.Value)
		}
		d.Members = append(d.Members, em)
	}
	return d
}

// params translates a parameter list. A parameter with a default value
// becomes optional with that initializer; "params" arrays become rest
// parameters.
func (v *Visitor) params(ps []*syntax.Parameter) []*tsast.Param {
	out := make([]*tsast.Param, 0, len(ps))
	for _, p := range ps {
		tp := &tsast.Param{Name: p.Name, Type: v.typeRef(p.Type)}
		if p.Modifiers.Has("params") {
			tp.Rest = true
		}
		for _, m := range []string{"ref", "out"} {
			if p.Modifiers.Has(m) {
				v.report(TranslationNotSupported(v.loc(p), m+" parameter"))
			}
		}
		if p.Default != nil {
			if def := v.expr(p.Default); def != nil {
				tp.Optional = true
				tp.Default = def
			}
		}
		out = append(out, tp)
	}
	return out
}

// modifiers derives TypeScript member modifiers from the declared symbol,
// or from the written modifiers when the model has no symbol.
func (v *Visitor) modifiers(n syntax.Node, written syntax.Modifiers) tsast.Modifiers {
	mods := tsast.Modifiers{
		Static:   written.Has("static"),
		Readonly: written.Has("readonly"),
	}
	access := types.Private
	if sym := v.model.DeclaredSymbol(n); sym != nil {
		access = sym.Accessibility()
		mods.Static = mods.Static || sym.IsStatic()
	} else {
		switch {
		case written.Has("public"), written.Has("internal"):
			access = types.Public
		case written.Has("protected"):
			access = types.Protected
		}
	}
	switch access {
	case types.Private:
		mods.Access = "private"
	case types.Protected:
		mods.Access = "protected"
	}
	return mods
}
