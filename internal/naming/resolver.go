// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package naming computes TypeScript identifiers and import descriptors for
// host symbols, and builds the symbol tables the translator consults.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/petar-djukic/cs2ts/internal/symtab"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// Attribute names recognized on host declarations.
const (
	AttrScriptName         = "ScriptName"
	AttrScriptAlias        = "ScriptAlias"
	AttrPreserveCase       = "PreserveCase"
	AttrPreserveMemberCase = "PreserveMemberCase"
	AttrScriptAssembly     = "ScriptAssembly"
	AttrInlineCode         = "InlineCode"
	AttrAlternateSignature = "AlternateSignature"
)

// Resolver computes script names. It is read-only after construction and safe
// for concurrent use.
type Resolver struct {
	rules     types.RenameRules
	overrides map[string]string
}

// NewResolver creates a resolver. Override keys are symbol signatures.
func NewResolver(rules types.RenameRules, overrides map[string]string) *Resolver {
	ov := make(map[string]string, len(overrides))
	for k, v := range overrides {
		ov[k] = v
	}
	return &Resolver{rules: rules, overrides: ov}
}

// Rules returns the rename rules in effect.
func (r *Resolver) Rules() types.RenameRules {
	return r.rules
}

// ScriptName returns the TypeScript identifier for sym.
func (r *Resolver) ScriptName(sym types.Symbol) types.ScriptName {
	return types.ScriptName(r.resolve(sym, true))
}

// resolve walks the naming rules in order. withFieldRule is false when
// resolving the siblings of a field during duplicate detection, which keeps
// that detection from recursing.
func (r *Resolver) resolve(sym types.Symbol, withFieldRule bool) string {
	if v, ok := r.overrides[symtab.KeyFromSymbol(sym)]; ok {
		return v
	}

	if sym.Kind() == types.NamedType {
		if native, ok := NativeTypeName(sym); ok {
			return native
		}
	}

	if name, ok := annotatedName(sym); ok {
		return name
	}

	if withFieldRule && sym.Kind() == types.Field {
		return r.fieldName(sym)
	}

	if sym.Kind() == types.NamedType {
		return sym.Name()
	}
	return ToCamelCase(sym.Name())
}

// annotatedName applies [ScriptName], [ScriptAlias], and the case-preserving
// attributes on the symbol, its containing type, and its assembly.
func annotatedName(sym types.Symbol) (string, bool) {
	if a, ok := types.FindAttribute(sym, AttrScriptName); ok {
		if v, ok := a.Arg(0); ok {
			return v, true
		}
	}
	if a, ok := types.FindAttribute(sym, AttrScriptAlias); ok {
		if v, ok := a.Arg(0); ok {
			return v, true
		}
	}
	if _, ok := types.FindAttribute(sym, AttrPreserveCase); ok {
		return sym.Name(), true
	}
	if ct := sym.ContainingType(); ct != nil {
		if _, ok := types.FindAttribute(ct, AttrPreserveMemberCase); ok {
			return sym.Name(), true
		}
	}
	if asm := sym.ContainingAssembly(); asm != nil {
		if _, ok := types.FindAttribute(asm, AttrPreserveMemberCase); ok {
			return sym.Name(), true
		}
	}
	return "", false
}

func (r *Resolver) fieldName(field types.Symbol) string {
	base := ToCamelCase(field.Name())
	switch r.rules.FieldRule() {
	case types.PrivateDollarPrefix:
		if field.Accessibility() == types.Private {
			return "$" + base
		}
	case types.DollarPrefixOnlyForDuplicateName:
		return strings.Repeat("$", r.duplicateRank(field, base)) + base
	}
	return base
}

// duplicateRank counts the '$' prefixes a field needs so that it never
// collides with a sibling: one per earlier-declared field with the same base
// name, plus one if any non-field member has that name. Non-field members
// keep their names; the field is the one that moves.
func (r *Resolver) duplicateRank(field types.Symbol, base string) int {
	ct := field.ContainingType()
	if ct == nil {
		return 0
	}
	rank := 0
	memberClash := false
	seenSelf := false
	for _, m := range RenameableMembers(ct) {
		if m == field {
			seenSelf = true
			continue
		}
		if r.resolve(m, false) != base {
			continue
		}
		if m.Kind() == types.Field {
			if !seenSelf {
				rank++
			}
			continue
		}
		memberClash = true
	}
	if memberClash {
		rank++
	}
	return rank
}

// RenameableMembers lists the members of t that receive their own script
// name, in declaration order. Compiler-synthesized members, constructors, and
// property and event accessors are skipped.
func RenameableMembers(t types.Symbol) []types.Symbol {
	var out []types.Symbol
	for _, m := range t.Members() {
		if IsRenameable(m) {
			out = append(out, m)
		}
	}
	return out
}

// IsRenameable reports whether a member gets an independent script name.
func IsRenameable(m types.Symbol) bool {
	if m.IsImplicitlyDeclared() {
		return false
	}
	if m.Kind() != types.Method {
		return true
	}
	switch m.MethodKind() {
	case types.Constructor, types.StaticConstructor,
		types.PropertyGet, types.PropertySet,
		types.EventAdd, types.EventRemove:
		return false
	}
	return true
}

// ToCamelCase lowercases the first character of name.
func ToCamelCase(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}
