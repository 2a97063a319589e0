// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package compiler runs the two-stage translation pipeline over a set of
// bound compilation units.
//
// Stage 1 creates a translation context per unit, discovers the external
// types the units reference, and builds the shared symbol tables. Stage 2
// starts only after every table is frozen; it translates each unit with its
// own visitor, in parallel, and turns the types each module references into
// import declarations.
package compiler

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/petar-djukic/cs2ts/internal/naming"
	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/internal/translate"
	"github.com/petar-djukic/cs2ts/internal/tsast"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// ErrNoUnits is returned when there is nothing to translate.
var ErrNoUnits = errors.New("no compilation units")

// UnitResult is the outcome for one unit. Module is nil when the unit could
// not be loaded.
type UnitResult struct {
	SourcePath  string
	OutputPath  string
	Module      *tsast.Module
	Diagnostics []types.Diagnostic
	Imports     []Import
}

// HasErrors reports whether the unit produced an error diagnostic.
func (u UnitResult) HasErrors() bool { return types.HasErrors(u.Diagnostics) }

// Import is a type referenced by a module together with where it comes from.
type Import struct {
	Symbol types.Symbol
	Name   string // Script name the module refers to it by
	Info   types.ImportSymbolInfo
}

// RunResult holds the outcome of Runner.Run.
type RunResult struct {
	Units    []UnitResult   // In input order
	Tables   *naming.Tables // Nil when stage 1 did not complete
	Direct   []types.Symbol // External types referenced by the units
	Indirect []types.Symbol // Remaining types of the referenced assemblies
	Success  bool           // True if no unit reported an error
}

// Diagnostics returns the diagnostics of every unit in unit order.
func (r *RunResult) Diagnostics() []types.Diagnostic {
	var out []types.Diagnostic
	for _, u := range r.Units {
		out = append(out, u.Diagnostics...)
	}
	return out
}

// Deps holds the inputs of a Runner.
type Deps struct {
	Units   []syntax.Unit
	Options types.Options
}

// Runner drives the pipeline.
type Runner struct {
	deps Deps
}

// NewRunner creates a Runner with the given inputs.
func NewRunner(deps Deps) *Runner {
	return &Runner{deps: deps}
}

// Run executes both stages. A canceled context aborts the run with the
// context's error and no results.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	if len(r.deps.Units) == 0 {
		return nil, ErrNoUnits
	}
	opts := r.deps.Options
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.NumCPU()
	}

	// Stage 1: contexts, discovery, symbol tables.
	contexts, loadDiags, err := createContexts(ctx, r.deps.Units, opts)
	if err != nil {
		return nil, err
	}
	docs := make([]naming.Document, 0, len(contexts))
	for _, c := range contexts {
		if c != nil {
			docs = append(docs, c)
		}
	}
	direct := DiscoverDirect(contexts)
	indirect := naming.DiscoverIndirect(direct)
	tables, err := naming.BuildTables(ctx, docs, naming.Inputs{
		Direct:      direct,
		Indirect:    indirect,
		Rules:       opts.RenameRules,
		Overrides:   opts.Overrides,
		Concurrency: opts.Concurrency,
	})
	if err != nil {
		return nil, err
	}

	// Stage 2: per-unit translation against the frozen tables.
	results := make([]UnitResult, len(contexts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i, c := range contexts {
		if c == nil {
			diags := translate.NewDiagnosticList(opts)
			diags.AddAll(loadDiags[i])
			results[i] = UnitResult{
				SourcePath:  r.deps.Units[i].Path(),
				OutputPath:  translate.OutputPathFor(r.deps.Units[i].Path(), opts),
				Diagnostics: diags.Items(),
			}
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = translateUnit(c.WithTables(tables), loadDiags[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &RunResult{Units: results, Tables: tables, Direct: direct, Indirect: indirect, Success: true}
	for _, u := range results {
		if u.HasErrors() {
			out.Success = false
		}
	}
	return out, nil
}

// createContexts loads every unit in parallel. A unit that cannot be loaded
// has a nil context and its diagnostics at the same index.
func createContexts(ctx context.Context, units []syntax.Unit, opts types.Options) ([]*translate.Context, [][]types.Diagnostic, error) {
	contexts := make([]*translate.Context, len(units))
	diags := make([][]types.Diagnostic, len(units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i, u := range units {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			contexts[i], diags[i] = translate.TryCreate(gctx, u, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("creating translation contexts: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return contexts, diags, nil
}

// translateUnit runs the visitor over one unit and resolves its imports.
func translateUnit(c *translate.ContextWithTables, loadDiags []types.Diagnostic) UnitResult {
	diags := translate.NewDiagnosticList(c.Options())
	diags.AddAll(loadDiags)

	res := translate.NewVisitor(c).Translate()
	diags.AddAll(res.Diagnostics)

	imports, decls, importDiags := resolveImports(c.Path(), c.OutputPath(), c.Tables, res.Imports)
	diags.AddAll(importDiags)
	res.Module.Imports = decls

	return UnitResult{
		SourcePath:  c.Path(),
		OutputPath:  c.OutputPath(),
		Module:      res.Module,
		Diagnostics: diags.Items(),
		Imports:     imports,
	}
}

// DiscoverDirect lists the types bound anywhere in the units' syntax trees
// that none of the units declares, sorted by signature. Nil contexts are
// skipped.
func DiscoverDirect(contexts []*translate.Context) []types.Symbol {
	declared := make(map[types.Symbol]bool)
	for _, c := range contexts {
		if c == nil {
			continue
		}
		for _, t := range c.DeclaredTypes() {
			declared[t] = true
		}
	}

	var found []types.Symbol
	for _, c := range contexts {
		if c == nil {
			continue
		}
		model := c.Model()
		syntax.Inspect(c.Root(), func(n syntax.Node) bool {
			if t := naming.ImportTarget(model.SymbolInfo(n)); t != nil && !declared[t] {
				found = append(found, t)
			}
			return true
		})
	}
	return naming.SortSymbols(found)
}
