// This file is part of Gostone.
//
// Gostone is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gostone is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gostone.  If not, see <https://www.gnu.org/licenses/>.

// Package clock provides the tick counter and frame pacing used by the wait
// primitives of the input package.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	clk, _ := clock.NewLimiter(clock.TicksPerSecond)
//
// Operations can then be paced with the WaitFrame() function. For example:
//
//	for clk.Ticks()-start < timeout {
//		clk.WaitFrame()
//		if done() {
//			break
//		}
//	}
package clock

import (
	"fmt"
	"time"
)

// TicksPerSecond is the rate of the tick counter used by the application.
const TicksPerSecond = 70

// Clock is the interface to a monotonic tick counter.
type Clock interface {
	// Ticks returns the number of ticks since the clock was created. The
	// value wraps around after reaching the maximum uint32 value.
	Ticks() uint32

	// WaitFrame blocks until the tick counter has advanced.
	WaitFrame()
}

// Limiter is an implementation of the Clock interface that measures time
// with the time package.
type Limiter struct {
	ticksPerSecond int
	secondsPerTick time.Duration

	start time.Time

	// replaced in tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(ticksPerSecond int) (*Limiter, error) {
	if ticksPerSecond <= 0 {
		return nil, fmt.Errorf("clock: ticks per second must be positive (%d)", ticksPerSecond)
	}

	lim := &Limiter{
		ticksPerSecond: ticksPerSecond,
		secondsPerTick: time.Second / time.Duration(ticksPerSecond),
		now:            time.Now,
		sleep:          time.Sleep,
	}
	lim.start = lim.now()

	return lim, nil
}

// Ticks implements the Clock interface.
func (lim *Limiter) Ticks() uint32 {
	return uint32(lim.now().Sub(lim.start) / lim.secondsPerTick)
}

// WaitFrame implements the Clock interface. It sleeps until the start of the
// next tick. Time lost to sleeping too long is not made up.
func (lim *Limiter) WaitFrame() {
	elapsed := lim.now().Sub(lim.start)
	next := (elapsed/lim.secondsPerTick + 1) * lim.secondsPerTick
	lim.sleep(next - elapsed)
}

// TicksPerSecond returns the rate of the tick counter.
func (lim *Limiter) TicksPerSecond() int {
	return lim.ticksPerSecond
}
