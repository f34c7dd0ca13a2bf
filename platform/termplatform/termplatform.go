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

// Package termplatform implements the platform collaborators of the input
// package for a text terminal using tcell.
//
// Terminals report less than a windowing system. Key releases are not
// reported and are synthesised when a key has not been seen for a short
// while. The pointer is captured by turning on mouse motion reporting. There
// is no joystick support.
package termplatform

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/gostone/gostone/clock"
	"github.com/gostone/gostone/logger"
	"github.com/gostone/gostone/userinput"
)

// number of tcell events that can be waiting before the reading goroutine
// blocks.
const eventChannelSize = 100

// Platform is the terminal implementation of the platform collaborators.
type Platform struct {
	screen tcell.Screen
	clk    *clock.Limiter

	// tcell events are read by a separate goroutine because PollEvent() in
	// tcell blocks
	events chan tcell.Event

	queue *userinput.Queue
	trans *translator
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. The screen will be initialised by the function and should not be
// used for anything other than drawing after that.
func NewPlatform(screen tcell.Screen) (*Platform, error) {
	err := screen.Init()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	clk, err := clock.NewLimiter(clock.TicksPerSecond)
	if err != nil {
		screen.Fini()
		return nil, fmt.Errorf("terminal: %w", err)
	}

	plt := &Platform{
		screen: screen,
		clk:    clk,
		events: make(chan tcell.Event, eventChannelSize),
		queue:  userinput.NewQueue(eventChannelSize * 2),
		trans:  newTranslator(),
	}

	screen.HideCursor()
	screen.EnableFocus()
	screen.EnableMouse(tcell.MouseButtonEvents)

	go func() {
		for {
			ev := plt.screen.PollEvent()
			if ev == nil {
				// screen has been finalised
				close(plt.events)
				return
			}
			plt.events <- ev
		}
	}()

	logger.Log(logger.Allow, "terminal", "input started")

	return plt, nil
}

// Destroy restores the terminal.
func (plt *Platform) Destroy() {
	plt.screen.Fini()
}

// Screen returns the tcell screen for drawing.
func (plt *Platform) Screen() tcell.Screen {
	return plt.screen
}

// PumpEvents implements the userinput.EventSource interface.
func (plt *Platform) PumpEvents() {
	now := plt.clk.Ticks()

drain:
	for {
		select {
		case ev, ok := <-plt.events:
			if !ok {
				plt.queue.Push(userinput.EventQuit{})
				plt.events = nil
				return
			}
			plt.trans.translate(plt.queue, ev, now)
		default:
			break drain
		}
	}

	plt.trans.expire(plt.queue, now)
}

// PollEvent implements the userinput.EventSource interface.
func (plt *Platform) PollEvent() userinput.Event {
	return plt.queue.Pop()
}

// SetCapture implements the capture.Grabber interface. Mouse motion is only
// reported by the terminal while captured.
func (plt *Platform) SetCapture(captured bool) error {
	if captured {
		plt.screen.EnableMouse(tcell.MouseMotionEvents)
	} else {
		plt.screen.EnableMouse(tcell.MouseButtonEvents)
	}
	plt.trans.setCaptured(captured)
	return nil
}

// Ticks implements the clock.Clock interface.
func (plt *Platform) Ticks() uint32 {
	return plt.clk.Ticks()
}

// WaitFrame implements the clock.Clock interface.
func (plt *Platform) WaitFrame() {
	plt.clk.WaitFrame()
}
