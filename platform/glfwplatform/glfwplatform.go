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

// Package glfwplatform implements the platform collaborators of the input
// package with GLFW.
//
// GLFW delivers events through callbacks. These are collected in a
// userinput.Queue during PumpEvents() and handed out by PollEvent(). GLFW has
// no joystick activity events so an EventJoystick is sent on every call to
// PumpEvents() while a joystick is connected.
//
// The Platform must be created and used on the main thread.
package glfwplatform

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gostone/gostone/clock"
	"github.com/gostone/gostone/logger"
	"github.com/gostone/gostone/userinput"
)

// Platform is the GLFW implementation of the platform collaborators.
type Platform struct {
	window *glfw.Window
	events *receiver
}

// NewPlatform is the preferred method of initialisation for the Platform type.
func NewPlatform(title string, width int, height int) (*Platform, error) {
	runtime.LockOSThread()

	err := glfw.Init()
	if err != nil {
		return nil, fmt.Errorf("glfw: %w", err)
	}

	logger.Logf(logger.Allow, "glfw", "version %s", glfw.GetVersionString())

	// there is no rendering through the window
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	plt := &Platform{
		events: newReceiver(),
	}

	plt.window, err = glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw: %w", err)
	}

	plt.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		plt.events.key(key, action, mods)
	})
	plt.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		plt.events.mouseButton(button, action)
	})
	plt.window.SetCursorPosCallback(func(_ *glfw.Window, x float64, y float64) {
		plt.events.cursor(x, y)
	})
	plt.window.SetScrollCallback(func(_ *glfw.Window, _ float64, y float64) {
		plt.events.scroll(y)
	})
	plt.window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		plt.events.focus(focused)
	})
	plt.window.SetCloseCallback(func(w *glfw.Window) {
		// the application decides whether to close
		w.SetShouldClose(false)
		plt.events.close()
	})
	glfw.SetJoystickCallback(func(joy glfw.Joystick, event glfw.PeripheralEvent) {
		plt.events.joystick(joy, event)
	})

	return plt, nil
}

// Destroy cleans up the resources.
func (plt *Platform) Destroy() {
	glfw.SetJoystickCallback(nil)
	if plt.window != nil {
		plt.window.Destroy()
		plt.window = nil
	}
	glfw.Terminate()
}

// SetTitle changes the window title.
func (plt *Platform) SetTitle(title string) {
	plt.window.SetTitle(title)
}

// PumpEvents implements the userinput.EventSource interface.
func (plt *Platform) PumpEvents() {
	glfw.PollEvents()
	if joystickPresent() {
		plt.events.push(userinput.EventJoystick{})
	}
}

// PollEvent implements the userinput.EventSource interface.
func (plt *Platform) PollEvent() userinput.Event {
	return plt.events.queue.Pop()
}

// SetCapture implements the capture.Grabber interface. The cursor is hidden
// and locked to the window. Raw motion is used if the system supports it.
func (plt *Platform) SetCapture(captured bool) error {
	mode := glfw.CursorNormal
	if captured {
		mode = glfw.CursorDisabled
	}

	plt.window.SetInputMode(glfw.CursorMode, mode)
	if plt.window.GetInputMode(glfw.CursorMode) != mode {
		return fmt.Errorf("glfw: %w", errors.New("cursor mode not changed"))
	}

	if glfw.RawMouseMotionSupported() {
		raw := glfw.False
		if captured {
			raw = glfw.True
		}
		plt.window.SetInputMode(glfw.RawMouseMotion, raw)
	}

	plt.events.forgetCursor()

	return nil
}

// Ticks implements the clock.Clock interface.
func (plt *Platform) Ticks() uint32 {
	return uint32(glfw.GetTime() * clock.TicksPerSecond)
}

// WaitFrame implements the clock.Clock interface. Events that arrive while
// waiting are queued for the next call to PumpEvents().
func (plt *Platform) WaitFrame() {
	start := plt.Ticks()
	for {
		now := glfw.GetTime()
		if uint32(now*clock.TicksPerSecond) != start {
			return
		}
		next := float64(start+1) / clock.TicksPerSecond
		glfw.WaitEventsTimeout(next - now)
	}
}
