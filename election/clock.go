// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// monotonicClock never hands out a time earlier than one it already returned.
type monotonicClock struct {
	mu   sync.Mutex
	src  Clock
	last time.Time
}

func newMonotonicClock(src Clock) *monotonicClock {
	if src == nil {
		src = SystemClock{}
	}
	return &monotonicClock{src: src}
}

func (c *monotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.src.Now()
	if now.Before(c.last) {
		return c.last
	}
	c.last = now
	return now
}

// observe raises the floor to t, used when replaying recorded operations.
func (c *monotonicClock) observe(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t.After(c.last) {
		c.last = t
	}
}
