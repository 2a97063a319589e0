// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package csharp

import (
	"context"

	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// Model is the semantic model of one file. It is filled while the
// Compilation binds and is read-only afterwards.
type Model struct {
	path     string
	refs     map[syntax.Node]types.Symbol
	declared map[syntax.Node]types.Symbol
	scopes   []scope
	types    []types.Symbol
	diags    []types.Diagnostic
}

type scope struct {
	span syntax.Span
	sym  types.Symbol
}

var _ syntax.SemanticModel = (*Model)(nil)

func newModel(path string) *Model {
	return &Model{
		path:     path,
		refs:     make(map[syntax.Node]types.Symbol),
		declared: make(map[syntax.Node]types.Symbol),
	}
}

func (m *Model) SymbolInfo(n syntax.Node) types.Symbol     { return m.refs[n] }
func (m *Model) DeclaredSymbol(n syntax.Node) types.Symbol { return m.declared[n] }
func (m *Model) DeclaredTypes() []types.Symbol             { return m.types }
func (m *Model) Diagnostics() []types.Diagnostic           { return m.diags }

// EnclosingSymbol returns the symbol of the innermost declaration around pos.
func (m *Model) EnclosingSymbol(pos syntax.Position) types.Symbol {
	var best *scope
	for i := range m.scopes {
		sc := &m.scopes[i]
		if !sc.span.Contains(pos) {
			continue
		}
		if best == nil || best.span.Start.Before(sc.span.Start) {
			best = sc
		}
	}
	if best == nil {
		return nil
	}
	return best.sym
}

func (m *Model) bind(n syntax.Node, sym *Symbol) {
	if sym != nil {
		m.refs[n] = sym
	}
}

func (m *Model) declare(n syntax.Node, sym *Symbol) {
	m.declared[n] = sym
}

func (m *Model) enclose(n syntax.Node, sym *Symbol) {
	m.scopes = append(m.scopes, scope{span: n.Span(), sym: sym})
}

func (m *Model) report(d types.Diagnostic) {
	m.diags = append(m.diags, d)
}

// Unit is a bound source file offered for translation.
type Unit struct {
	file  *File
	model *Model
}

var _ syntax.Unit = (*Unit)(nil)

func (u *Unit) Path() string { return u.file.Path }

func (u *Unit) SyntaxTree(ctx context.Context) (*syntax.CompilationUnit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if u.file.Tree == nil {
		return nil, syntax.ErrNoSyntaxTree
	}
	return u.file.Tree, nil
}

func (u *Unit) SemanticModel(ctx context.Context) (syntax.SemanticModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if u.model == nil {
		return nil, syntax.ErrNoSemanticModel
	}
	return u.model, nil
}
