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

package main

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gostone/gostone/bindings"
	"github.com/gostone/gostone/clock"
	"github.com/gostone/gostone/input"
	"github.com/gostone/gostone/logger"
	"github.com/gostone/gostone/scancode"
)

// how long to wait for the user to press something before starting anyway
const startWait = 5 * clock.TicksPerSecond

// the sound interface required by the main loop.
type clicker interface {
	Click() error
}

// mainLoop reads the input every frame and shows the state of the bound
// actions.
type mainLoop struct {
	mgr  *input.Manager
	clk  clock.Clock
	snd  clicker
	disp display
	quit *atomic.Bool

	// number of frames completed by run()
	frames int
}

func (l *mainLoop) run(duration time.Duration) error {
	l.disp.show([]string{"press any key to begin"})
	if !l.mgr.WaitForUserInput(startWait) {
		logger.Log(logger.Allow, "gostone", "no input. starting anyway")
	}
	l.click()

	var end uint32
	if duration > 0 {
		end = uint32(duration.Seconds() * clock.TicksPerSecond)
	}
	start := l.clk.Ticks()

	var previous string

	for !l.quit.Load() {
		ci := l.mgr.ReadControl()

		if l.mgr.MenuRequested() || l.mgr.IsPressed(scancode.Escape) {
			break // for loop
		}

		status := l.status(ci)
		if s := strings.Join(status, "\n"); s != previous {
			previous = s
			l.disp.show(status)
		}

		if c := l.mgr.LastChar(); c != 0 {
			logger.Logf(logger.Allow, "gostone", "typed %q", c)
		}

		l.clk.WaitFrame()
		l.frames++

		if end > 0 && l.clk.Ticks()-start >= end {
			break // for loop
		}
	}

	l.click()

	return nil
}

func (l *mainLoop) click() {
	if err := l.snd.Click(); err != nil {
		logger.Log(logger.Allow, "gostone", err)
	}
}

// status returns the lines describing the current input state.
func (l *mainLoop) status(ci input.ControlInfo) []string {
	var active []string
	for a := bindings.Action(0); a < bindings.NumActions; a++ {
		if l.mgr.IsActionActive(a) {
			active = append(active, a.String())
		}
	}

	var pressed []string
	for _, c := range l.mgr.Pressed() {
		pressed = append(pressed, l.mgr.ScanName(c))
	}

	lines := []string{
		fmt.Sprintf("direction: %s (%d, %d)", ci.Dir, ci.X, ci.Y),
		fmt.Sprintf("actions: %s", strings.Join(active, ", ")),
		fmt.Sprintf("pressed: %s", strings.Join(pressed, ", ")),
		fmt.Sprintf("pointer captured: %v", l.mgr.IsCaptured()),
	}

	if l.mgr.JoystickPresent() {
		x, y := l.mgr.JoystickDelta()
		lines = append(lines, fmt.Sprintf("joystick: %s (%d, %d)", l.mgr.JoystickName(), x, y))
	}

	return lines
}
