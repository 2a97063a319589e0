// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package translate

import (
	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/internal/tsast"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// expr translates an expression, returning nil when it was elided.
func (v *Visitor) expr(n syntax.Node) tsast.Expr {
	switch x := n.(type) {
	case *syntax.Identifier:
		return v.identifier(x)
	case *syntax.PredefinedType:
		return v.predefinedType(x)
	case *syntax.MemberAccess:
		return v.memberAccess(x)
	case *syntax.ElementAccess:
		return v.elementAccess(x)
	case *syntax.Invocation:
		return v.invocation(x)
	case *syntax.ObjectCreation:
		return v.objectCreation(x)
	case *syntax.ArrayCreation:
		return v.arrayCreation(x)
	case *syntax.ImplicitArrayCreation:
		return v.arrayLiteral(x.Initializer)
	case *syntax.Literal:
		return v.literal(x)
	case *syntax.This:
		return &tsast.This{}
	case *syntax.Parenthesized:
		if e := v.expr(x.Expr); e != nil {
			return &tsast.Paren{Expr: e}
		}
		return nil
	case *syntax.Cast:
		e := v.expr(x.Expr)
		if e == nil {
			return nil
		}
		return &tsast.Cast{Type: v.typeRef(x.Type), Expr: e}
	case *syntax.TypeOf:
		return v.typeExpr(x.Type)
	case *syntax.Default:
		return &tsast.Call{
			Callee: tsast.Dot(tsast.Id("ss"), "getDefaultValue"),
			Args:   []tsast.Expr{v.typeExpr(x.Type)},
		}
	case *syntax.Conditional:
		cond, whenTrue, whenFalse := v.expr(x.Condition), v.expr(x.WhenTrue), v.expr(x.WhenFalse)
		if cond == nil || whenTrue == nil || whenFalse == nil {
			return nil
		}
		return &tsast.Conditional{Cond: cond, Then: whenTrue, Else: whenFalse}
	case *syntax.Assignment:
		return v.assignment(x)
	case *syntax.Binary:
		return v.binary(x)
	case *syntax.PrefixUnary:
		return v.prefixUnary(x)
	case *syntax.PostfixUnary:
		return v.postfixUnary(x)
	default:
		v.unsupported(n)
		return nil
	}
}

// exprs translates a list, returning ok=false if any element was elided.
func (v *Visitor) exprs(nodes []syntax.Node) ([]tsast.Expr, bool) {
	out := make([]tsast.Expr, 0, len(nodes))
	ok := true
	for _, n := range nodes {
		e := v.expr(n)
		if e == nil {
			ok = false
			continue
		}
		out = append(out, e)
	}
	return out, ok
}

func (v *Visitor) identifier(x *syntax.Identifier) tsast.Expr {
	sym := v.model.SymbolInfo(x)
	if sym == nil {
		return tsast.Id(x.Name)
	}
	return v.identifierFor(sym, x, "")
}

// identifierFor translates a reference to sym found at n. Static members are
// qualified with their type, instance members of the type enclosing the
// reference site get "this.", and everything else is a bare name. A
// non-empty forcedName replaces the script name of sym.
func (v *Visitor) identifierFor(sym types.Symbol, n syntax.Node, forcedName string) tsast.Expr {
	name := forcedName
	if name == "" {
		name = v.scriptName(sym)
	}
	v.addImport(sym)

	if sym.Kind() == types.NamedType {
		return tsast.Id(name)
	}

	containing := sym.ContainingType()
	if sym.IsStatic() && containing != nil {
		return tsast.Dot(tsast.Id(v.scriptName(containing)), name)
	}

	switch sym.Kind() {
	case types.Parameter, types.Local, types.Label:
		return tsast.Id(name)
	}
	if containing != nil && containing == v.enclosingType(n) {
		return tsast.Dot(&tsast.This{}, name)
	}
	return tsast.Id(name)
}

func (v *Visitor) predefinedType(x *syntax.PredefinedType) tsast.Expr {
	if sym := v.model.SymbolInfo(x); sym != nil {
		if name, ok := v.tables.ScriptNames.TryGet(sym); ok {
			return tsast.Id(string(name))
		}
	}
	return tsast.Id(x.Keyword)
}

// memberAccess translates "Expr.Name". A namespace-qualified type name
// collapses to the type's own name, since types are imported by name.
func (v *Visitor) memberAccess(x *syntax.MemberAccess) tsast.Expr {
	sym := v.model.SymbolInfo(x)
	if sym != nil && sym.Kind() == types.NamedType {
		return v.identifierFor(sym, x, "")
	}
	left := v.expr(x.Expr)
	if left == nil {
		return nil
	}
	name := x.Name
	if sym != nil {
		name = v.scriptName(sym)
	}
	return tsast.Dot(left, name)
}

func (v *Visitor) elementAccess(x *syntax.ElementAccess) tsast.Expr {
	if len(x.Index) != 1 {
		v.report(TranslationNotSupported(v.loc(x), "multi-index element access"))
		return nil
	}
	left, index := v.expr(x.Expr), v.expr(x.Index[0].Expr)
	if left == nil || index == nil {
		return nil
	}
	return &tsast.MemberBracket{Left: left, Index: index}
}

func (v *Visitor) invocation(x *syntax.Invocation) tsast.Expr {
	method := v.model.SymbolInfo(x)
	if method == nil {
		method = v.model.SymbolInfo(x.Expr)
	}

	args, ok := v.arguments(x.Args, method)
	if !ok {
		return nil
	}

	if method != nil {
		if code, found := v.tables.InlineCode.TryGet(method); found {
			receiver, ok := v.receiver(x.Expr, method)
			if !ok {
				return nil
			}
			if e, ok := v.expandInlineCode(x, method, code, receiver, args); ok {
				return e
			}
		}
	}

	callee := v.expr(x.Expr)
	if callee == nil {
		return nil
	}
	return &tsast.Call{Callee: callee, Args: args}
}

// receiver returns the translated "this" of an invocation: the left side of
// a member access, "this" for unqualified instance calls, and nil for
// static calls.
func (v *Visitor) receiver(callee syntax.Node, method types.Symbol) (tsast.Expr, bool) {
	if ma, ok := callee.(*syntax.MemberAccess); ok {
		e := v.expr(ma.Expr)
		return e, e != nil
	}
	if method.IsStatic() {
		return nil, true
	}
	return &tsast.This{}, true
}

// arguments translates call arguments. Named arguments are placed at their
// parameter's position when the target is known; skipped positions are
// filled with undefined.
func (v *Visitor) arguments(args []*syntax.Argument, method types.Symbol) ([]tsast.Expr, bool) {
	var params []types.Symbol
	if method != nil {
		params = method.Parameters()
	}

	positional := make([]tsast.Expr, 0, len(args))
	named := make(map[int]tsast.Expr)
	ok := true
	for _, a := range args {
		e := v.expr(a.Expr)
		if e == nil {
			ok = false
			continue
		}
		if a.Name == "" {
			positional = append(positional, e)
			continue
		}
		idx := paramIndex(params, a.Name)
		if idx < 0 {
			v.report(TranslationNotSupported(v.loc(a), "named argument '"+a.Name+"'"))
			ok = false
			continue
		}
		named[idx] = e
	}
	if !ok || len(named) == 0 {
		return positional, ok
	}

	last := len(positional) - 1
	for idx := range named {
		if idx > last {
			last = idx
		}
	}
	out := make([]tsast.Expr, last+1)
	copy(out, positional)
	for idx, e := range named {
		out[idx] = e
	}
	for i := range out {
		if out[i] == nil {
			out[i] = tsast.Id("undefined")
		}
	}
	return out, true
}

func paramIndex(params []types.Symbol, name string) int {
	for i, p := range params {
		if p.Name() == name {
			return i
		}
	}
	return -1
}

// objectCreation tries inline code for the constructor first, then the
// JsDictionary idiom, then falls back to a plain "new".
func (v *Visitor) objectCreation(x *syntax.ObjectCreation) tsast.Expr {
	ctor := v.model.SymbolInfo(x)

	args, ok := v.arguments(x.Args, ctor)
	if !ok {
		return nil
	}

	if ctor != nil {
		if code, found := v.tables.InlineCode.TryGet(ctor); found {
			if e, ok := v.expandInlineCode(x, ctor, code, nil, args); ok {
				return e
			}
		}
	}

	if lit, handled := v.dictionaryLiteral(x, args); handled {
		return lit
	}

	if x.Initializer != nil {
		v.report(TranslationNotSupported(v.loc(x.Initializer), "object initializer"))
	}
	return &tsast.New{Callee: v.typeExpr(x.Type), Args: args}
}

// arrayCreation translates "new T[n]" and "new T[] { ... }".
func (v *Visitor) arrayCreation(x *syntax.ArrayCreation) tsast.Expr {
	if len(x.Sizes) > 1 || (len(x.Sizes) == 1 && len(x.Sizes[0]) > 1) {
		v.report(MultidimensionalArraysNotSupported(v.loc(x)))
		return nil
	}
	if x.Initializer != nil {
		return v.arrayLiteral(x.Initializer)
	}
	if len(x.Sizes) == 0 || len(x.Sizes[0]) == 0 || x.Sizes[0][0] == nil {
		v.report(TranslationNotSupported(v.loc(x), "array creation without size"))
		return nil
	}

	size := v.expr(x.Sizes[0][0])
	if size == nil {
		return nil
	}
	if n, ok := size.(*tsast.NumberLiteral); ok && n.Value == 0 {
		return &tsast.ArrayLiteral{}
	}
	return &tsast.New{Callee: tsast.Id("Array"), Args: []tsast.Expr{size}}
}

func (v *Visitor) arrayLiteral(init *syntax.Initializer) tsast.Expr {
	if init == nil {
		return &tsast.ArrayLiteral{}
	}
	elems, ok := v.exprs(init.Expressions)
	if !ok {
		return nil
	}
	return &tsast.ArrayLiteral{Elements: elems}
}
