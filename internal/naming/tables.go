// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package naming

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/petar-djukic/cs2ts/internal/symtab"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// Document is a translated unit as seen by table construction.
type Document interface {
	DeclaredTypes() []types.Symbol
	OutputPath() string
}

// Tables bundles the symbol tables consulted during translation. All tables
// are frozen.
type Tables struct {
	Resolver            *Resolver
	ScriptNames         *symtab.Table[types.ScriptName]
	Imports             *symtab.Table[types.ImportSymbolInfo]
	InlineCode          *symtab.Table[string]
	AlternateSignatures *symtab.Table[bool]

	types map[string]types.Symbol
}

// TypeBySignature finds a document, direct, or indirect type by its fully
// qualified name, as used by inline code templates.
func (t *Tables) TypeBySignature(sig string) (types.Symbol, bool) {
	s, ok := t.types[sig]
	return s, ok
}

// Inputs groups what BuildTables needs beyond the documents.
type Inputs struct {
	Direct      []types.Symbol // External types referenced by the documents
	Indirect    []types.Symbol // Other types in the referenced assemblies
	Rules       types.RenameRules
	Overrides   types.Overrides
	Concurrency int
}

// BuildTables builds the four tables in parallel.
func BuildTables(ctx context.Context, docs []Document, in Inputs) (*Tables, error) {
	r := NewResolver(in.Rules, in.Overrides.ScriptNames)
	t := &Tables{Resolver: r, types: indexTypes(docs, in)}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		t.ScriptNames, err = NewScriptNameTable(gctx, docs, in, r)
		return err
	})
	g.Go(func() error {
		var err error
		t.Imports, err = NewImportTable(gctx, docs, in)
		return err
	})
	g.Go(func() error {
		var err error
		t.InlineCode, err = NewInlineCodeTable(gctx, docs, in)
		return err
	})
	g.Go(func() error {
		var err error
		t.AlternateSignatures, err = NewAlternateSignatureTable(gctx, docs, in)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("building symbol tables: %w", err)
	}
	return t, nil
}

// NewScriptNameTable maps every type (delegates excepted) and renameable
// member to its script name.
func NewScriptNameTable(ctx context.Context, docs []Document, in Inputs, r *Resolver) (*symtab.Table[types.ScriptName], error) {
	overrides := make(map[string]types.ScriptName, len(in.Overrides.ScriptNames))
	for k, v := range in.Overrides.ScriptNames {
		overrides[k] = types.ScriptName(v)
	}
	return symtab.Create(ctx, docs, in.Direct, in.Indirect, overrides, symtab.Builder[Document, types.ScriptName]{
		Document: func(ctx context.Context, doc Document) ([]symtab.Entry[types.ScriptName], error) {
			var out []symtab.Entry[types.ScriptName]
			for _, typ := range doc.DeclaredTypes() {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				if typ.TypeKind() == types.Delegate {
					continue
				}
				for _, s := range typeAndMembers(typ) {
					out = append(out, symtab.Entry[types.ScriptName]{Symbol: s, Value: r.ScriptName(s)})
				}
			}
			return out, nil
		},
		External: func(sym types.Symbol) (types.ScriptName, bool) {
			return r.ScriptName(sym), true
		},
		Discover:    typeAndMembers,
		Concurrency: in.Concurrency,
	})
}

// NewImportTable maps every type to the file or module that declares it.
func NewImportTable(ctx context.Context, docs []Document, in Inputs) (*symtab.Table[types.ImportSymbolInfo], error) {
	return symtab.Create(ctx, docs, in.Direct, in.Indirect, nil, symtab.Builder[Document, types.ImportSymbolInfo]{
		Document: func(ctx context.Context, doc Document) ([]symtab.Entry[types.ImportSymbolInfo], error) {
			info := types.NewInternalImport(doc.OutputPath())
			declared := doc.DeclaredTypes()
			out := make([]symtab.Entry[types.ImportSymbolInfo], 0, len(declared))
			for _, typ := range declared {
				out = append(out, symtab.Entry[types.ImportSymbolInfo]{Symbol: typ, Value: info})
			}
			return out, nil
		},
		External: func(sym types.Symbol) (types.ImportSymbolInfo, bool) {
			return ExternalImport(sym), true
		},
		Concurrency: in.Concurrency,
	})
}

// NewInlineCodeTable maps members carrying [InlineCode], constructors and
// property accessors included, to their template.
func NewInlineCodeTable(ctx context.Context, docs []Document, in Inputs) (*symtab.Table[string], error) {
	return symtab.Create(ctx, docs, in.Direct, in.Indirect, in.Overrides.InlineCode, symtab.Builder[Document, string]{
		Document: func(ctx context.Context, doc Document) ([]symtab.Entry[string], error) {
			var out []symtab.Entry[string]
			for _, typ := range doc.DeclaredTypes() {
				for _, m := range membersWithAttribute(typ, AttrInlineCode) {
					code, _ := inlineCode(m)
					out = append(out, symtab.Entry[string]{Symbol: m, Value: code})
				}
			}
			return out, nil
		},
		External: inlineCode,
		Discover: func(typ types.Symbol) []types.Symbol {
			return membersWithAttribute(typ, AttrInlineCode)
		},
		Concurrency: in.Concurrency,
	})
}

// NewAlternateSignatureTable records methods marked [AlternateSignature].
// Those are declaration-only overloads and produce no output.
func NewAlternateSignatureTable(ctx context.Context, docs []Document, in Inputs) (*symtab.Table[bool], error) {
	return symtab.Create(ctx, docs, in.Direct, in.Indirect, nil, symtab.Builder[Document, bool]{
		Document: func(ctx context.Context, doc Document) ([]symtab.Entry[bool], error) {
			var out []symtab.Entry[bool]
			for _, typ := range doc.DeclaredTypes() {
				for _, m := range membersWithAttribute(typ, AttrAlternateSignature) {
					out = append(out, symtab.Entry[bool]{Symbol: m, Value: true})
				}
			}
			return out, nil
		},
		External: func(sym types.Symbol) (bool, bool) {
			_, ok := types.FindAttribute(sym, AttrAlternateSignature)
			return ok, ok
		},
		Discover: func(typ types.Symbol) []types.Symbol {
			return membersWithAttribute(typ, AttrAlternateSignature)
		},
		Concurrency: in.Concurrency,
	})
}

func indexTypes(docs []Document, in Inputs) map[string]types.Symbol {
	idx := make(map[string]types.Symbol)
	add := func(s types.Symbol) {
		if s == nil || s.Kind() != types.NamedType {
			return
		}
		if _, ok := idx[symtab.KeyFromSymbol(s)]; !ok {
			idx[symtab.KeyFromSymbol(s)] = s
		}
	}
	for _, d := range docs {
		for _, s := range d.DeclaredTypes() {
			add(s)
		}
	}
	for _, s := range in.Direct {
		add(s)
	}
	for _, s := range in.Indirect {
		add(s)
	}
	return idx
}

func typeAndMembers(typ types.Symbol) []types.Symbol {
	if typ.Kind() != types.NamedType {
		return []types.Symbol{typ}
	}
	return append([]types.Symbol{typ}, RenameableMembers(typ)...)
}

func membersWithAttribute(typ types.Symbol, attr string) []types.Symbol {
	var out []types.Symbol
	for _, m := range typ.Members() {
		if _, ok := types.FindAttribute(m, attr); ok {
			out = append(out, m)
		}
	}
	return out
}

func inlineCode(sym types.Symbol) (string, bool) {
	a, ok := types.FindAttribute(sym, AttrInlineCode)
	if !ok {
		return "", false
	}
	return a.Arg(0)
}
