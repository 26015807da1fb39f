// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// manualSource is a [Source] that only moves when advanced.
type manualSource struct {
	now time.Time
}

func (ms *manualSource) Now() time.Time { return ms.now }

func (ms *manualSource) advance(d time.Duration) { ms.now = ms.now.Add(d) }

func newManual(ups float64) (*Clock, *manualSource) {
	ms := &manualSource{now: time.Unix(1000, 0)}
	return NewWithSource(ups, ms), ms
}

func TestTickAccumulates(t *testing.T) {
	c, ms := newManual(60)

	ms.advance(16 * time.Millisecond)
	el, n := c.Tick()
	assert.InDelta(t, 0.016, el, 1e-9)
	assert.Equal(t, uint32(0), n)
	assert.Equal(t, 16*time.Millisecond, c.Leftover())

	ms.advance(16 * time.Millisecond)
	el, n = c.Tick()
	assert.InDelta(t, 0.016, el, 1e-9)
	assert.Equal(t, uint32(1), n)
	assert.InDelta(t, 15.333, float64(c.Leftover())/float64(time.Millisecond), 0.001)
}

func TestTickStall(t *testing.T) {
	c, ms := newManual(60)
	ms.advance(500 * time.Millisecond)
	_, n := c.Tick()
	assert.Equal(t, uint32(30), n)
	assert.Less(t, c.Leftover(), c.Period())
}

func TestLeftoverBounds(t *testing.T) {
	c, ms := newManual(60)
	steps := []time.Duration{0, time.Millisecond, 7 * time.Millisecond, 16 * time.Millisecond,
		17 * time.Millisecond, 33 * time.Millisecond, 100 * time.Millisecond, 3 * time.Millisecond}
	for _, d := range steps {
		ms.advance(d)
		before := c.Leftover()
		_, n := c.Tick()
		lo := c.Leftover()
		assert.GreaterOrEqual(t, lo, time.Duration(0))
		assert.Less(t, lo, c.Period())
		assert.LessOrEqual(t, int64(n), int64((before+d)/c.Period()))
	}
	st := c.Stats()
	assert.Equal(t, uint64(len(steps)), st.Ticks)
}

func TestNoElapsedTime(t *testing.T) {
	c, _ := newManual(60)
	el, n := c.Tick()
	assert.Zero(t, el)
	assert.Zero(t, n)
}

func TestAlpha(t *testing.T) {
	c, ms := newManual(10)
	ms.advance(150 * time.Millisecond)
	_, n := c.Tick()
	assert.Equal(t, uint32(1), n)
	assert.InDelta(t, 0.5, c.Alpha(), 1e-9)
}

func TestStats(t *testing.T) {
	c, ms := newManual(100)
	ms.advance(35 * time.Millisecond)
	c.Tick()
	ms.advance(5 * time.Millisecond)
	c.Tick()
	st := c.Stats()
	assert.Equal(t, uint64(2), st.Ticks)
	assert.Equal(t, uint64(4), st.Updates)
	assert.Equal(t, uint32(3), st.MaxUpdates)
}

func TestInvalidRate(t *testing.T) {
	assert.Panics(t, func() { New(0) })
	assert.Panics(t, func() { New(-1) })
	assert.Equal(t, time.Second/60, New(DefaultUpdatesPerSecond).Period())
}
