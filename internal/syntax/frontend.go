// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package syntax

import (
	"context"
	"errors"

	"github.com/petar-djukic/cs2ts/pkg/types"
)

// ErrNoSyntaxTree and ErrNoSemanticModel are returned by a Unit that cannot
// supply the corresponding artifact.
var (
	ErrNoSyntaxTree    = errors.New("no syntax tree")
	ErrNoSemanticModel = errors.New("no semantic model")
)

// SemanticModel answers symbol questions about one unit's syntax tree.
// Implementations must be safe for concurrent readers.
type SemanticModel interface {
	// SymbolInfo returns the symbol referenced by an expression node (an
	// identifier, member access, invocation, object creation, operator, or
	// type reference), or nil when it cannot be resolved.
	SymbolInfo(n Node) types.Symbol

	// DeclaredSymbol returns the symbol declared by a declaration node.
	DeclaredSymbol(n Node) types.Symbol

	// EnclosingSymbol returns the innermost declared symbol (member or type)
	// whose declaration contains pos.
	EnclosingSymbol(pos Position) types.Symbol

	// DeclaredTypes lists every named type declared in the unit, nested
	// types included, in source order.
	DeclaredTypes() []types.Symbol

	// Diagnostics reports problems found while binding the unit.
	Diagnostics() []types.Diagnostic
}

// Unit is one source file offered for translation.
type Unit interface {
	Path() string
	SyntaxTree(ctx context.Context) (*CompilationUnit, error)
	SemanticModel(ctx context.Context) (SemanticModel, error)
}
