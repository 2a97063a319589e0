// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package translate

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/cs2ts/internal/naming"
	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/internal/tsast"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// Result is the translation of one unit.
type Result struct {
	Module      *tsast.Module
	Diagnostics []types.Diagnostic

	// Imports lists the types referenced by the module but declared in other
	// units or assemblies, sorted by signature.
	Imports []types.Symbol
}

// Visitor walks one unit's syntax tree and builds the TypeScript module. A
// Visitor is single-use and not safe for concurrent use; separate units get
// separate visitors and may run in parallel.
//
// Every expression helper returns nil when its construct could not be
// translated. A diagnostic has already been recorded in that case, and the
// caller drops the enclosing expression up to the nearest statement.
type Visitor struct {
	ctx      *ContextWithTables
	model    syntax.SemanticModel
	tables   *naming.Tables
	diags    *DiagnosticList
	imports  map[types.Symbol]struct{}
	declared map[types.Symbol]bool
}

// NewVisitor creates a visitor for ctx.
func NewVisitor(ctx *ContextWithTables) *Visitor {
	v := &Visitor{
		ctx:      ctx,
		model:    ctx.Model(),
		tables:   ctx.Tables,
		diags:    NewDiagnosticList(ctx.Options()),
		imports:  make(map[types.Symbol]struct{}),
		declared: make(map[types.Symbol]bool),
	}
	for _, t := range ctx.DeclaredTypes() {
		v.declared[t] = true
	}
	return v
}

// Translate converts the compilation unit.
func (v *Visitor) Translate() Result {
	m := &tsast.Module{Items: v.declarations(v.ctx.Root().Members)}

	imports := make([]types.Symbol, 0, len(v.imports))
	for s := range v.imports {
		imports = append(imports, s)
	}
	return Result{
		Module:      m,
		Diagnostics: v.diags.Items(),
		Imports:     naming.SortSymbols(imports),
	}
}

// declarations flattens namespaces: TypeScript modules have no namespace
// level, so every type becomes a module item.
func (v *Visitor) declarations(nodes []syntax.Node) []tsast.Node {
	var out []tsast.Node
	for _, n := range nodes {
		switch x := n.(type) {
		case *syntax.NamespaceDecl:
			out = append(out, v.declarations(x.Members)...)
		case *syntax.TypeDecl:
			v.guard(x, func() {
				out = append(out, v.typeDecl(x)...)
			})
		default:
			v.unsupported(n)
		}
	}
	return out
}

// guard turns a panic inside f into an internal-error diagnostic at n, so one
// broken declaration does not take the unit down with it.
func (v *Visitor) guard(n syntax.Node, f func()) {
	defer func() {
		if r := recover(); r != nil {
			v.diags.Add(InternalError(v.loc(n), fmt.Errorf("%v", r)))
		}
	}()
	f()
}

func (v *Visitor) loc(n syntax.Node) types.Location {
	return LocationOf(v.ctx.Path(), n)
}

func (v *Visitor) report(d types.Diagnostic) {
	v.diags.Add(d)
}

func (v *Visitor) unsupported(n syntax.Node) {
	v.report(TranslationNotSupported(v.loc(n), kindName(n)))
}

func kindName(n syntax.Node) string {
	if u, ok := n.(*syntax.Unsupported); ok && u.What != "" {
		return u.What
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*syntax.")
}

// scriptName returns the TypeScript name of sym. Parameters, locals, and
// labels keep their declared names; everything else goes through the
// script-name table, falling back to the resolver for symbols no tier holds.
func (v *Visitor) scriptName(sym types.Symbol) string {
	switch sym.Kind() {
	case types.Parameter, types.Local, types.Label:
		return sym.Name()
	}
	if name, ok := v.tables.ScriptNames.TryGet(sym); ok {
		return string(name)
	}
	return string(v.tables.Resolver.ScriptName(sym))
}

// declaredName returns the script name of the symbol declared by n, or
// fallback when the model has none.
func (v *Visitor) declaredName(n syntax.Node, fallback string) string {
	if sym := v.model.DeclaredSymbol(n); sym != nil {
		return v.scriptName(sym)
	}
	return fallback
}

// addImport records the type behind sym when it is declared outside this
// unit.
func (v *Visitor) addImport(sym types.Symbol) {
	t := naming.ImportTarget(sym)
	if t == nil || v.declared[t] {
		return
	}
	v.imports[t] = struct{}{}
}

// enclosingType returns the type whose declaration contains n.
func (v *Visitor) enclosingType(n syntax.Node) types.Symbol {
	s := v.model.EnclosingSymbol(n.Span().Start)
	if s == nil {
		return nil
	}
	if s.Kind() == types.NamedType {
		return s
	}
	return s.ContainingType()
}
