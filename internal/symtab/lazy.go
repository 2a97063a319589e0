// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symtab

import (
	"fmt"
	"sync/atomic"
)

const (
	lazyUnstarted int32 = iota
	lazyRunning
	lazyDone
)

// Lazy is a compute-once cell. The first caller of Get runs the computation;
// concurrent callers block until it finishes and then share its result.
type Lazy[V any] struct {
	state   atomic.Int32
	done    chan struct{}
	compute func() V
	value   V
	panicV  any
}

// NewLazy wraps compute in a compute-once cell.
func NewLazy[V any](compute func() V) *Lazy[V] {
	return &Lazy[V]{done: make(chan struct{}), compute: compute}
}

// Evaluated reports whether the computation has completed.
func (l *Lazy[V]) Evaluated() bool {
	return l.state.Load() == lazyDone
}

// Get returns the computed value, running the computation if no caller has
// started it yet. If the computation panicked, every caller panics with the
// same value.
func (l *Lazy[V]) Get() V {
	if l.state.Load() != lazyDone && l.state.CompareAndSwap(lazyUnstarted, lazyRunning) {
		l.run()
	}
	<-l.done
	if l.panicV != nil {
		panic(fmt.Sprintf("symtab: lazy computation failed: %v", l.panicV))
	}
	return l.value
}

func (l *Lazy[V]) run() {
	defer func() {
		if r := recover(); r != nil {
			l.panicV = r
		}
		l.compute = nil
		l.state.Store(lazyDone)
		close(l.done)
	}()
	l.value = l.compute()
}
