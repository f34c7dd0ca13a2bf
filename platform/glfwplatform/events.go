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

package glfwplatform

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gostone/gostone/logger"
	"github.com/gostone/gostone/userinput"
)

// queueCapacity is large enough for the events of several frames.
const queueCapacity = 256

// receiver turns GLFW callbacks into userinput events.
type receiver struct {
	queue *userinput.Queue

	// modifier keys currently held
	held userinput.KeyMod

	// the previous cursor position. motion is not reported until the cursor
	// position is known
	cursorX     float64
	cursorY     float64
	cursorKnown bool

	// fractional wheel movement not yet reported
	wheel float64
}

func newReceiver() *receiver {
	return &receiver{
		queue: userinput.NewQueue(queueCapacity),
	}
}

func (r *receiver) push(ev userinput.Event) {
	if !r.queue.Push(ev) {
		logger.Logf(logger.Allow, "glfw", "event queue full: dropping %T", ev)
	}
}

func (r *receiver) key(key glfw.Key, action glfw.Action, mod glfw.ModifierKey) {
	k := translateKey(key)
	if k == userinput.KeyUnknown {
		return
	}

	down := action != glfw.Release
	if m, ok := modKeys[k]; ok {
		if down {
			r.held |= m
		} else {
			r.held &^= m
		}
	}

	r.push(userinput.EventKeyboard{
		Key:    k,
		Down:   down,
		Repeat: action == glfw.Repeat,
		Mod:    translateMod(mod, r.held),
	})
}

func (r *receiver) mouseButton(button glfw.MouseButton, action glfw.Action) {
	var b userinput.MouseButton
	switch button {
	case glfw.MouseButtonLeft:
		b = userinput.MouseButtonLeft
	case glfw.MouseButtonMiddle:
		b = userinput.MouseButtonMiddle
	case glfw.MouseButtonRight:
		b = userinput.MouseButtonRight
	case glfw.MouseButton4:
		b = userinput.MouseButtonX1
	case glfw.MouseButton5:
		b = userinput.MouseButtonX2
	default:
		return
	}
	r.push(userinput.EventMouseButton{Button: b, Down: action == glfw.Press})
}

func (r *receiver) cursor(x float64, y float64) {
	if !r.cursorKnown {
		r.cursorX = x
		r.cursorY = y
		r.cursorKnown = true
		return
	}

	dx := int(math.Round(x - r.cursorX))
	dy := int(math.Round(y - r.cursorY))
	if dx == 0 && dy == 0 {
		return
	}

	// only the whole pixels are consumed
	r.cursorX += float64(dx)
	r.cursorY += float64(dy)
	r.push(userinput.EventMouseMotion{DX: dx, DY: dy})
}

// forgetCursor is called when the cursor mode changes. the cursor position
// jumps when the mode changes and this should not be reported as motion.
func (r *receiver) forgetCursor() {
	r.cursorKnown = false
}

func (r *receiver) scroll(y float64) {
	r.wheel += y
	d := int(r.wheel)
	if d == 0 {
		return
	}
	r.wheel -= float64(d)
	r.push(userinput.EventMouseWheel{Delta: d})
}

func (r *receiver) focus(focused bool) {
	if !focused {
		// key releases will not be seen while unfocused
		r.held = userinput.KeyModNone
	}
	r.push(userinput.EventWindowFocus{Gained: focused})
}

func (r *receiver) close() {
	r.push(userinput.EventQuit{})
}

func (r *receiver) joystick(joy glfw.Joystick, event glfw.PeripheralEvent) {
	switch event {
	case glfw.Connected:
		r.push(userinput.EventDeviceAdded{Index: int(joy)})
	case glfw.Disconnected:
		r.push(userinput.EventDeviceRemoved{Index: int(joy)})
	}
}
