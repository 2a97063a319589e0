// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package symtab implements the generic multi-tier symbol table used by every
// naming and import decision. A table maps host symbols to values through four
// tiers queried in precedence order: overrides (keyed by signature string),
// document symbols, directly referenced external symbols, and lazily computed
// indirectly referenced external symbols.
//
// Tables are populated concurrently during construction and are read-only
// afterward. Readers never race writers: every document symbol is written by
// exactly one population task, and the indirect tier only mutates through its
// compute-once cells.
package symtab

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/petar-djukic/cs2ts/pkg/types"
)

// ErrSymbolNotFound is returned when no tier holds the symbol.
var ErrSymbolNotFound = errors.New("symbol not found")

// ErrFrozen is the panic value of a write to a frozen table.
var ErrFrozen = errors.New("symbol table is frozen")

// ErrDuplicateSymbol is returned when two population tasks disagree about a
// document symbol.
var ErrDuplicateSymbol = errors.New("duplicate symbol")

// Tier identifies where a lookup was satisfied.
type Tier int

const (
	TierNone Tier = iota
	TierOverride
	TierDocument
	TierDirect
	TierIndirect
)

func (t Tier) String() string {
	switch t {
	case TierOverride:
		return "override"
	case TierDocument:
		return "document"
	case TierDirect:
		return "direct"
	case TierIndirect:
		return "indirect"
	default:
		return "none"
	}
}

// KeyFromSymbol returns the stable string key used by the override tier.
func KeyFromSymbol(sym types.Symbol) string {
	return sym.Signature()
}

// Entry is a symbol and its value.
type Entry[V any] struct {
	Symbol types.Symbol
	Value  V
}

// concurrentMap is a mutex-guarded map tolerant of concurrent inserts.
type concurrentMap[V any] struct {
	mu sync.RWMutex
	m  map[types.Symbol]V
}

func newConcurrentMap[V any]() *concurrentMap[V] {
	return &concurrentMap[V]{m: make(map[types.Symbol]V)}
}

func (c *concurrentMap[V]) get(sym types.Symbol) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[sym]
	return v, ok
}

func (c *concurrentMap[V]) set(sym types.Symbol, v V) {
	c.mu.Lock()
	c.m[sym] = v
	c.mu.Unlock()
}

// setOnce stores v unless sym already holds a different value.
func (c *concurrentMap[V]) setOnce(sym types.Symbol, v V) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.m[sym]; ok && !reflect.DeepEqual(old, v) {
		return fmt.Errorf("%w: %s", ErrDuplicateSymbol, KeyFromSymbol(sym))
	}
	c.m[sym] = v
	return nil
}

func (c *concurrentMap[V]) entries() []Entry[V] {
	c.mu.RLock()
	out := make([]Entry[V], 0, len(c.m))
	for s, v := range c.m {
		out = append(out, Entry[V]{Symbol: s, Value: v})
	}
	c.mu.RUnlock()
	sortEntries(out)
	return out
}

// Table is a four-tier symbol table.
type Table[V any] struct {
	overrides map[string]V
	document  *concurrentMap[V]
	direct    *concurrentMap[V]
	indirect  map[types.Symbol]*Lazy[V]
	frozen    atomic.Bool
}

// New creates an empty, unfrozen table with the given overrides. Most callers
// use Create instead.
func New[V any](overrides map[string]V) *Table[V] {
	ov := make(map[string]V, len(overrides))
	for k, v := range overrides {
		ov[k] = v
	}
	return &Table[V]{
		overrides: ov,
		document:  newConcurrentMap[V](),
		direct:    newConcurrentMap[V](),
		indirect:  make(map[types.Symbol]*Lazy[V]),
	}
}

// AddOrUpdate stores a document-tier value. It is only legal while the table
// is being built; calling it after Freeze panics.
func (t *Table[V]) AddOrUpdate(sym types.Symbol, v V) {
	t.mustBeBuilding()
	t.document.set(sym, v)
}

// AddDirect stores a direct-external-tier value during construction.
func (t *Table[V]) AddDirect(sym types.Symbol, v V) {
	t.mustBeBuilding()
	t.direct.set(sym, v)
}

// AddLazy registers a deferred indirect-tier value during construction. The
// computation runs at most once, on first lookup. AddLazy is not safe for
// concurrent use.
func (t *Table[V]) AddLazy(sym types.Symbol, compute func() V) {
	t.mustBeBuilding()
	if _, ok := t.indirect[sym]; ok {
		return
	}
	t.indirect[sym] = NewLazy(compute)
}

// Freeze ends the construction phase.
func (t *Table[V]) Freeze() {
	t.frozen.Store(true)
}

// Frozen reports whether Freeze has been called.
func (t *Table[V]) Frozen() bool {
	return t.frozen.Load()
}

func (t *Table[V]) mustBeBuilding() {
	if t.frozen.Load() {
		panic(ErrFrozen)
	}
}

// TryGet looks the symbol up in precedence order. It only blocks to force a
// single lazy indirect-tier computation.
func (t *Table[V]) TryGet(sym types.Symbol) (V, bool) {
	v, tier := t.Lookup(sym)
	return v, tier != TierNone
}

// Lookup is TryGet that also reports which tier answered.
func (t *Table[V]) Lookup(sym types.Symbol) (V, Tier) {
	var zero V
	if sym == nil {
		return zero, TierNone
	}
	if len(t.overrides) > 0 {
		if v, ok := t.overrides[KeyFromSymbol(sym)]; ok {
			return v, TierOverride
		}
	}
	if v, ok := t.document.get(sym); ok {
		return v, TierDocument
	}
	if v, ok := t.direct.get(sym); ok {
		return v, TierDirect
	}
	if l, ok := t.indirect[sym]; ok {
		return l.Get(), TierIndirect
	}
	return zero, TierNone
}

// Get returns the value or an error wrapping ErrSymbolNotFound.
func (t *Table[V]) Get(sym types.Symbol) (V, error) {
	v, ok := t.TryGet(sym)
	if !ok {
		name := "<nil>"
		if sym != nil {
			name = KeyFromSymbol(sym)
		}
		return v, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	return v, nil
}

// GetOrDefault returns the value, or def when the symbol is absent.
func (t *Table[V]) GetOrDefault(sym types.Symbol, def V) V {
	if v, ok := t.TryGet(sym); ok {
		return v
	}
	return def
}

// Has reports whether any tier holds the symbol, without forcing lazy values.
func (t *Table[V]) Has(sym types.Symbol) bool {
	if sym == nil {
		return false
	}
	if _, ok := t.overrides[KeyFromSymbol(sym)]; ok {
		return true
	}
	if _, ok := t.document.get(sym); ok {
		return true
	}
	if _, ok := t.direct.get(sym); ok {
		return true
	}
	_, ok := t.indirect[sym]
	return ok
}

// DocumentEntries returns the document tier sorted by key.
func (t *Table[V]) DocumentEntries() []Entry[V] {
	return t.document.entries()
}

// DirectEntries returns the direct-external tier sorted by key.
func (t *Table[V]) DirectEntries() []Entry[V] {
	return t.direct.entries()
}

// IndirectSymbols returns the symbols registered in the indirect tier sorted
// by key. Their values are not forced.
func (t *Table[V]) IndirectSymbols() []types.Symbol {
	out := make([]types.Symbol, 0, len(t.indirect))
	for s := range t.indirect {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return KeyFromSymbol(out[i]) < KeyFromSymbol(out[j]) })
	return out
}

// Overrides returns a copy of the override tier.
func (t *Table[V]) Overrides() map[string]V {
	out := make(map[string]V, len(t.overrides))
	for k, v := range t.overrides {
		out[k] = v
	}
	return out
}

func sortEntries[V any](entries []Entry[V]) {
	sort.Slice(entries, func(i, j int) bool {
		return KeyFromSymbol(entries[i].Symbol) < KeyFromSymbol(entries[j].Symbol)
	})
}
