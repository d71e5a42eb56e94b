package model

import (
	"sync"
	"time"
)

// Clock accumulates the time a side spends thinking. There is no time control,
// so it never runs out.
type Clock struct {
	mu          sync.Mutex
	used        time.Duration
	lastStarted time.Time // When the clock was last started
	isRunning   bool
	now         func() time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRunning {
		c.lastStarted = c.now()
		c.isRunning = true
	}
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		c.used += c.now().Sub(c.lastStarted)
		c.isRunning = false
	}
}

func (c *Clock) Used() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		return c.used + c.now().Sub(c.lastStarted)
	}
	return c.used
}
