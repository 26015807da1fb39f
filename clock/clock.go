// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clock provides a fixed-timestep pacer that decouples
// the simulation update rate from the presentation rate.
package clock

import (
	"fmt"
	"time"
)

// DefaultUpdatesPerSecond is the simulation rate used when none is given.
const DefaultUpdatesPerSecond = 60.0

// Source is a monotonic time source.
type Source interface {
	Now() time.Time
}

// SystemSource is the [Source] backed by [time.Now].
type SystemSource struct{}

func (SystemSource) Now() time.Time { return time.Now() }

// Stats are cumulative counters of a [Clock].
type Stats struct {
	// Ticks is the number of calls to [Clock.Tick].
	Ticks uint64

	// Updates is the total number of fixed updates issued.
	Updates uint64

	// MaxUpdates is the largest update count returned by a single tick.
	MaxUpdates uint32
}

// Clock is a fixed-timestep accumulator. Each [Clock.Tick] adds the
// wall time since the previous tick to a leftover bucket, and drains
// it in whole periods, returning how many fixed updates are due.
// After every tick the leftover is in [0, period).
//
// Bursts are not clamped: a long stall produces a proportionally
// large update count on the next tick.
type Clock struct {
	src      Source
	period   time.Duration
	last     time.Time
	leftover time.Duration
	stats    Stats
}

// New returns a new [Clock] using the system time, running the given
// number of updates per second. It panics if the rate is not positive.
func New(updatesPerSecond float64) *Clock {
	return NewWithSource(updatesPerSecond, SystemSource{})
}

// NewWithSource returns a new [Clock] reading time from the given source.
// The first [Clock.Tick] measures from this call.
func NewWithSource(updatesPerSecond float64, src Source) *Clock {
	if !(updatesPerSecond > 0) {
		panic(fmt.Sprintf("clock: updates per second must be positive, got %g", updatesPerSecond))
	}
	return &Clock{
		src:    src,
		period: time.Duration(float64(time.Second) / updatesPerSecond),
		last:   src.Now(),
	}
}

// Tick measures the time since the previous tick (or construction),
// returning it in seconds along with the number of fixed updates
// that are now due.
func (c *Clock) Tick() (elapsed float64, updates uint32) {
	now := c.src.Now()
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		dt = 0
	}
	c.leftover += dt
	for c.leftover >= c.period {
		c.leftover -= c.period
		updates++
	}
	c.stats.Ticks++
	c.stats.Updates += uint64(updates)
	c.stats.MaxUpdates = max(c.stats.MaxUpdates, updates)
	return dt.Seconds(), updates
}

// Period returns the fixed update period.
func (c *Clock) Period() time.Duration { return c.period }

// Leftover returns the time carried over to the next tick.
func (c *Clock) Leftover() time.Duration { return c.leftover }

// Alpha returns the leftover as a fraction of the period, in [0, 1),
// for interpolating between the last two simulation states.
func (c *Clock) Alpha() float64 {
	return float64(c.leftover) / float64(c.period)
}

// Stats returns the cumulative counters.
func (c *Clock) Stats() Stats { return c.stats }
