// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package transpiler

import (
	"sort"

	"github.com/petar-djukic/cs2ts/internal/compiler"
	"github.com/petar-djukic/cs2ts/internal/symtab"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// symbolEntries lists every symbol of the script-name table. Indirect
// entries are forced here, so listing costs as much as looking them all up.
func symbolEntries(run *compiler.RunResult) []SymbolEntry {
	tables := run.Tables
	seen := make(map[string]bool)
	var syms []types.Symbol
	add := func(s types.Symbol) {
		key := symtab.KeyFromSymbol(s)
		if !seen[key] {
			seen[key] = true
			syms = append(syms, s)
		}
	}
	for _, e := range tables.ScriptNames.DocumentEntries() {
		add(e.Symbol)
	}
	for _, e := range tables.ScriptNames.DirectEntries() {
		add(e.Symbol)
	}
	for _, s := range tables.ScriptNames.IndirectSymbols() {
		add(s)
	}

	entries := make([]SymbolEntry, 0, len(syms))
	for _, s := range syms {
		name, tier := tables.ScriptNames.Lookup(s)
		e := SymbolEntry{
			Signature:  symtab.KeyFromSymbol(s),
			ScriptName: string(name),
			Tier:       tier.String(),
		}
		if s.Kind() == types.NamedType {
			if info, ok := tables.Imports.TryGet(s); ok {
				e.Import = info.PathOrModule()
			}
		}
		if code, ok := tables.InlineCode.TryGet(s); ok {
			e.InlineCode = code
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Signature < entries[j].Signature })
	return entries
}
