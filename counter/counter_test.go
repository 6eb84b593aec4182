// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/loanledger/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "not zero at start")

	for i := 0; i < 5; i += 1 {
		c.Increment()
	}
	assert.Equal(t, uint64(5), c.Uint64(), "wrong value after increment")

	for i := 0; i < 5; i += 1 {
		c.Decrement()
	}
	assert.True(t, c.IsZero(), "not zero after decrement")
}

func TestAcquire(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.Acquire(2), "first acquire")
	assert.True(t, c.Acquire(2), "second acquire")
	assert.False(t, c.Acquire(2), "acquire past limit")
	assert.Equal(t, uint64(2), c.Uint64(), "counter changed by failed acquire")

	c.Decrement()
	assert.True(t, c.Acquire(2), "acquire after release")
}

func TestConcurrentAcquire(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup
	var mutex sync.Mutex
	granted := 0

	for i := 0; i < 100; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Acquire(10) {
				mutex.Lock()
				granted += 1
				mutex.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, granted, "wrong number granted")
	assert.Equal(t, uint64(10), c.Uint64(), "wrong final value")
}
