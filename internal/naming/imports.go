// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package naming

import (
	"sort"

	"github.com/petar-djukic/cs2ts/internal/symtab"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// ExternalImport returns the import descriptor for a symbol declared in a
// referenced assembly. The module name comes from the assembly's
// [ScriptAssembly] attribute, else the assembly name.
func ExternalImport(sym types.Symbol) types.ImportSymbolInfo {
	asm := sym.ContainingAssembly()
	if asm == nil {
		return types.NewExternalImport("")
	}
	if a, ok := types.FindAttribute(asm, AttrScriptAssembly); ok {
		if mod, ok := a.Arg(0); ok && mod != "" {
			return types.NewExternalImport(mod)
		}
	}
	return types.NewExternalImport(asm.Name())
}

// ImportTarget returns the type an import is needed for when code refers to
// sym: the symbol itself for types, else its containing type. Array types
// resolve to their element type. Nested types are emitted at module level, so
// they are imported by their own name. Native types, type parameters, and
// symbols without a containing type need no import.
func ImportTarget(sym types.Symbol) types.Symbol {
	if sym == nil {
		return nil
	}
	t := sym
	if t.Kind() != types.NamedType {
		t = sym.ContainingType()
	}
	for t != nil && t.Kind() == types.NamedType && t.TypeKind() == types.Array {
		t = t.Type()
	}
	if t == nil || t.Kind() != types.NamedType || t.TypeKind() == types.TypeParameter || IsNativeType(t) {
		return nil
	}
	return t
}

// DiscoverIndirect lists the types of the assemblies behind the direct
// symbols that are not themselves direct, nested types included, sorted by
// signature.
func DiscoverIndirect(direct []types.Symbol) []types.Symbol {
	isDirect := make(map[types.Symbol]bool, len(direct))
	assemblies := make(map[types.Symbol]bool)
	for _, d := range direct {
		isDirect[d] = true
		if asm := d.ContainingAssembly(); asm != nil {
			assemblies[asm] = true
		}
	}

	seen := make(map[types.Symbol]bool)
	var out []types.Symbol
	var walk func(t types.Symbol)
	walk = func(t types.Symbol) {
		if t.Kind() != types.NamedType || seen[t] {
			return
		}
		seen[t] = true
		if !isDirect[t] {
			out = append(out, t)
		}
		for _, m := range t.Members() {
			if m.Kind() == types.NamedType {
				walk(m)
			}
		}
	}
	for asm := range assemblies {
		for _, t := range asm.Members() {
			walk(t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return symtab.KeyFromSymbol(out[i]) < symtab.KeyFromSymbol(out[j]) })
	return out
}

// SortSymbols orders symbols by signature and drops duplicates.
func SortSymbols(syms []types.Symbol) []types.Symbol {
	seen := make(map[types.Symbol]bool, len(syms))
	out := make([]types.Symbol, 0, len(syms))
	for _, s := range syms {
		if s == nil || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return symtab.KeyFromSymbol(out[i]) < symtab.KeyFromSymbol(out[j]) })
	return out
}
