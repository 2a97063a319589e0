// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symtab

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/petar-djukic/cs2ts/pkg/types"
)

// Builder supplies the table-specific resolution logic used by Create.
type Builder[U any, V any] struct {
	// Document resolves every symbol declared in a unit. Required.
	Document func(ctx context.Context, unit U) ([]Entry[V], error)

	// External resolves a symbol outside the translated units. It reports
	// false when the table holds no value for the symbol. Required when
	// direct or indirect symbols are supplied.
	External func(sym types.Symbol) (V, bool)

	// Discover expands a direct or indirect external symbol into the symbols
	// that get entries, usually a type plus some of its members. Nil keeps
	// only the symbol itself.
	Discover func(container types.Symbol) []types.Symbol

	// Concurrency bounds the population tasks; <= 0 means GOMAXPROCS.
	Concurrency int
}

// Create builds and freezes a table. Document symbols are populated by one
// task per unit and direct external symbols by one task per symbol. Indirect
// containers are only registered; their values are computed on first lookup.
// A direct symbol wins over an indirect one discovered from another container.
// A canceled context aborts construction and no table is returned.
func Create[U any, V any](
	ctx context.Context,
	units []U,
	direct []types.Symbol,
	indirectContainers []types.Symbol,
	overrides map[string]V,
	b Builder[U, V],
) (*Table[V], error) {
	if b.Document == nil {
		return nil, fmt.Errorf("creating symbol table: no document resolver")
	}
	t := New(overrides)

	limit := b.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, unit := range units {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries, err := b.Document(gctx, unit)
			if err != nil {
				return err
			}
			for _, e := range entries {
				if err := t.document.setOnce(e.Symbol, e.Value); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if b.External != nil {
		for _, sym := range direct {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				for _, m := range b.discover(sym) {
					if v, ok := b.External(m); ok {
						t.direct.set(m, v)
					}
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("populating symbol table: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("populating symbol table: %w", err)
	}

	if b.External != nil {
		for _, container := range indirectContainers {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("registering indirect symbols: %w", err)
			}
			for _, m := range b.discover(container) {
				if m == nil || t.Has(m) {
					continue
				}
				t.AddLazy(m, func() V {
					v, _ := b.External(m)
					return v
				})
			}
		}
	}

	t.Freeze()
	return t, nil
}

func (b Builder[U, V]) discover(sym types.Symbol) []types.Symbol {
	if b.Discover == nil {
		return []types.Symbol{sym}
	}
	return b.Discover(sym)
}
