// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package translate turns one host compilation unit into a TypeScript module.
// A Context bundles the unit, its semantic model, and the compilation options;
// once every unit has a Context the shared symbol tables can be built, and
// each unit is then walked by its own Visitor.
package translate

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/cs2ts/internal/naming"
	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// Context is the per-unit state available before symbol tables exist.
type Context struct {
	path       string
	root       *syntax.CompilationUnit
	model      syntax.SemanticModel
	options    types.Options
	outputPath string
}

// TryCreate loads the syntax tree and semantic model of unit. A unit missing
// either yields a nil Context and an error diagnostic. Binding diagnostics of
// a loaded unit are returned alongside the Context.
func TryCreate(ctx context.Context, unit syntax.Unit, options types.Options) (*Context, []types.Diagnostic) {
	path := unit.Path()

	root, err := unit.SyntaxTree(ctx)
	if err != nil || root == nil {
		return nil, []types.Diagnostic{NoSyntaxTree(path)}
	}

	model, err := unit.SemanticModel(ctx)
	if err != nil || model == nil {
		return nil, []types.Diagnostic{NoSemanticModel(path)}
	}

	c := &Context{
		path:       path,
		root:       root,
		model:      model,
		options:    options,
		outputPath: OutputPathFor(path, options),
	}
	return c, append([]types.Diagnostic(nil), model.Diagnostics()...)
}

// OutputPathFor maps a source file to its .ts output file. The path relative
// to SourceRoot is kept under OutputRoot; without a source root, or for files
// outside it, only the base name is kept.
func OutputPathFor(sourcePath string, options types.Options) string {
	rel := filepath.Base(sourcePath)
	if options.SourceRoot != "" {
		if r, err := filepath.Rel(options.SourceRoot, sourcePath); err == nil && !escapesRoot(r) {
			rel = r
		}
	}
	if ext := filepath.Ext(rel); strings.EqualFold(ext, ".cs") {
		rel = strings.TrimSuffix(rel, ext)
	}
	return filepath.Join(options.OutputRoot, rel+".ts")
}

func escapesRoot(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel)
}

// Path returns the source file path.
func (c *Context) Path() string { return c.path }

// Root returns the parsed compilation unit.
func (c *Context) Root() *syntax.CompilationUnit { return c.root }

// Model returns the unit's semantic model.
func (c *Context) Model() syntax.SemanticModel { return c.model }

// Options returns the compilation options.
func (c *Context) Options() types.Options { return c.options }

// OutputPath returns the .ts file this unit is written to.
func (c *Context) OutputPath() string { return c.outputPath }

// DeclaredTypes lists the types declared in the unit.
func (c *Context) DeclaredTypes() []types.Symbol { return c.model.DeclaredTypes() }

// WithTables attaches the populated symbol tables.
func (c *Context) WithTables(tables *naming.Tables) *ContextWithTables {
	return &ContextWithTables{Context: c, Tables: tables}
}

// ContextWithTables is what a Visitor consumes. The tables are shared with
// every other unit of the compilation and must not be modified.
type ContextWithTables struct {
	*Context
	Tables *naming.Tables
}

var _ naming.Document = (*Context)(nil)
