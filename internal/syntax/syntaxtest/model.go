// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package syntaxtest

import (
	"context"

	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// Model is a map-backed syntax.SemanticModel. Populate it before sharing it
// between goroutines.
type Model struct {
	Refs      map[syntax.Node]types.Symbol
	Declared  map[syntax.Node]types.Symbol
	Enclosing []Scope
	Types     []types.Symbol
	Diags     []types.Diagnostic
}

// Scope associates a source range with its declared symbol.
type Scope struct {
	Span   syntax.Span
	Symbol types.Symbol
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{
		Refs:     make(map[syntax.Node]types.Symbol),
		Declared: make(map[syntax.Node]types.Symbol),
	}
}

// Bind records that n refers to sym.
func (m *Model) Bind(n syntax.Node, sym types.Symbol) *Model {
	m.Refs[n] = sym
	return m
}

// Declare records that n declares sym, and adds a scope for its span.
func (m *Model) Declare(n syntax.Node, sym types.Symbol) *Model {
	m.Declared[n] = sym
	m.Enclosing = append(m.Enclosing, Scope{Span: n.Span(), Symbol: sym})
	if sym.Kind() == types.NamedType {
		m.Types = append(m.Types, sym)
	}
	return m
}

// Within adds a scope covering lines [fromLine, toLine] owned by sym.
func (m *Model) Within(fromLine, toLine int, sym types.Symbol) *Model {
	m.Enclosing = append(m.Enclosing, Scope{
		Span: syntax.Span{
			Start: syntax.Position{Line: fromLine, Column: 1},
			End:   syntax.Position{Line: toLine + 1, Column: 1},
		},
		Symbol: sym,
	})
	return m
}

func (m *Model) SymbolInfo(n syntax.Node) types.Symbol     { return m.Refs[n] }
func (m *Model) DeclaredSymbol(n syntax.Node) types.Symbol { return m.Declared[n] }
func (m *Model) DeclaredTypes() []types.Symbol             { return m.Types }
func (m *Model) Diagnostics() []types.Diagnostic           { return m.Diags }

// EnclosingSymbol returns the symbol of the smallest scope containing pos.
func (m *Model) EnclosingSymbol(pos syntax.Position) types.Symbol {
	var best *Scope
	for i := range m.Enclosing {
		sc := &m.Enclosing[i]
		if !sc.Span.Contains(pos) {
			continue
		}
		if best == nil || best.Span.Start.Before(sc.Span.Start) {
			best = sc
		}
	}
	if best == nil {
		return nil
	}
	return best.Symbol
}

// Unit is an in-memory syntax.Unit.
type Unit struct {
	FilePath string
	Tree     *syntax.CompilationUnit
	Model    *Model
}

func (u *Unit) Path() string { return u.FilePath }

func (u *Unit) SyntaxTree(ctx context.Context) (*syntax.CompilationUnit, error) {
	if u.Tree == nil {
		return nil, syntax.ErrNoSyntaxTree
	}
	return u.Tree, nil
}

func (u *Unit) SemanticModel(ctx context.Context) (syntax.SemanticModel, error) {
	if u.Model == nil {
		return nil, syntax.ErrNoSemanticModel
	}
	return u.Model, nil
}
