// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package translate

import (
	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/internal/tsast"
)

// block returns nil for a nil block.
func (v *Visitor) block(b *syntax.Block) *tsast.Block {
	if b == nil {
		return nil
	}
	out := &tsast.Block{}
	for _, s := range b.Statements {
		if ts := v.stmt(s); ts != nil {
			out.Stmts = append(out.Stmts, ts)
		}
	}
	return out
}

// stmt translates one statement. It returns nil when the statement is
// elided.
func (v *Visitor) stmt(n syntax.Node) tsast.Stmt {
	switch x := n.(type) {
	case *syntax.Block:
		return v.block(x)
	case *syntax.ExpressionStatement:
		if e := v.expr(x.Expr); e != nil {
			return &tsast.ExprStmt{Expr: e}
		}
		return nil
	case *syntax.LocalDeclaration:
		return v.localDeclaration(x)
	case *syntax.ReturnStatement:
		if x.Expr == nil {
			return &tsast.Return{}
		}
		if e := v.expr(x.Expr); e != nil {
			return &tsast.Return{Expr: e}
		}
		return nil
	case *syntax.IfStatement:
		cond := v.expr(x.Condition)
		if cond == nil {
			return nil
		}
		s := &tsast.If{Cond: cond, Then: v.body(x.Then)}
		if x.Else != nil {
			s.Else = v.body(x.Else)
		}
		return s
	case *syntax.WhileStatement:
		cond := v.expr(x.Condition)
		if cond == nil {
			return nil
		}
		return &tsast.While{Cond: cond, Body: v.body(x.Body)}
	case *syntax.ThrowStatement:
		if x.Expr == nil {
			v.report(TranslationNotSupported(v.loc(x), "rethrow"))
			return nil
		}
		if e := v.expr(x.Expr); e != nil {
			return &tsast.Throw{Expr: e}
		}
		return nil
	case *syntax.BreakStatement:
		return &tsast.Break{}
	case *syntax.ContinueStatement:
		return &tsast.Continue{}
	default:
		v.unsupported(n)
		return nil
	}
}

// body translates the statement of an if or while, substituting an empty
// block when it is elided.
func (v *Visitor) body(n syntax.Node) tsast.Stmt {
	if s := v.stmt(n); s != nil {
		return s
	}
	return &tsast.Block{}
}

func (v *Visitor) localDeclaration(x *syntax.LocalDeclaration) tsast.Stmt {
	var typ *tsast.TypeRef
	if x.Type != nil && x.Type.Name != "var" {
		typ = v.typeRef(x.Type)
	}
	d := &tsast.VarDecl{Const: x.IsConst}
	for _, vd := range x.Variables {
		b := &tsast.VarBinding{Name: vd.Name, Type: typ}
		if vd.Initializer != nil {
			if b.Init = v.expr(vd.Initializer); b.Init == nil {
				return nil
			}
		}
		d.Decls = append(d.Decls, b)
	}
	if len(d.Decls) == 0 {
		return nil
	}
	return d
}
