// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package translate

import (
	"github.com/petar-djukic/cs2ts/internal/naming"
	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/internal/tsast"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// typeRef translates a written type. Resolved types use their script name
// and are recorded for import; unresolved keyword types map to their
// TypeScript primitive and other unresolved names are kept as written.
func (v *Visitor) typeRef(t *syntax.TypeRef) *tsast.TypeRef {
	if t == nil {
		return nil
	}
	out := &tsast.TypeRef{Name: v.typeName(t), ArrayDepth: len(t.ArrayRanks)}
	for _, rank := range t.ArrayRanks {
		if rank > 1 {
			v.report(MultidimensionalArraysNotSupported(v.loc(t)))
			break
		}
	}
	for _, a := range t.TypeArgs {
		if ta := v.typeRef(a); ta != nil {
			out.Args = append(out.Args, ta)
		}
	}
	return out
}

func (v *Visitor) typeName(t *syntax.TypeRef) string {
	sym := elementType(v.model.SymbolInfo(t))
	if sym != nil {
		if sym.TypeKind() == types.TypeParameter {
			return sym.Name()
		}
		v.addImport(sym)
		return v.scriptName(sym)
	}
	if t.Predefined || t.Name == "void" {
		if name, ok := naming.KeywordNativeName(t.Name); ok {
			return name
		}
	}
	return t.Name
}

// elementType unwraps array types.
func elementType(sym types.Symbol) types.Symbol {
	for sym != nil && sym.Kind() == types.NamedType && sym.TypeKind() == types.Array {
		sym = sym.Type()
	}
	return sym
}

// typeExpr translates a type used in expression position, as the callee of
// "new" or the operand of typeof.
func (v *Visitor) typeExpr(t *syntax.TypeRef) tsast.Expr {
	return tsast.Id(tsast.Emit(v.typeRef(t)))
}
