// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symtab

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLazy_ComputesOnce(t *testing.T) {
	var calls atomic.Int32
	l := NewLazy(func() int {
		calls.Add(1)
		time.Sleep(5 * time.Millisecond)
		return 42
	})
	assert.False(t, l.Evaluated())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 42, l.Get())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, l.Evaluated())
	assert.Equal(t, 42, l.Get())
}

func TestLazy_PanicReachesEveryCaller(t *testing.T) {
	var calls atomic.Int32
	l := NewLazy(func() string {
		calls.Add(1)
		panic("bad assembly")
	})

	assert.Panics(t, func() { l.Get() })
	assert.Panics(t, func() { l.Get() })
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, l.Evaluated())
}
