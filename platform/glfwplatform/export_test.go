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
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gostone/gostone/userinput"
)

var (
	TranslateKey = translateKey
	TranslateMod = translateMod
	ScaleAxis    = scaleAxis
	ScaleTrigger = scaleTrigger
)

// Receiver exposes the callback handlers for testing.
type Receiver struct {
	r *receiver
}

func NewReceiver() Receiver {
	return Receiver{r: newReceiver()}
}

func (r Receiver) Key(key glfw.Key, action glfw.Action, mod glfw.ModifierKey) {
	r.r.key(key, action, mod)
}

func (r Receiver) MouseButton(button glfw.MouseButton, action glfw.Action) {
	r.r.mouseButton(button, action)
}

func (r Receiver) Cursor(x float64, y float64) {
	r.r.cursor(x, y)
}

func (r Receiver) ForgetCursor() {
	r.r.forgetCursor()
}

func (r Receiver) Scroll(y float64) {
	r.r.scroll(y)
}

func (r Receiver) Focus(focused bool) {
	r.r.focus(focused)
}

func (r Receiver) Close() {
	r.r.close()
}

func (r Receiver) Joystick(joy glfw.Joystick, event glfw.PeripheralEvent) {
	r.r.joystick(joy, event)
}

func (r Receiver) Pop() userinput.Event {
	return r.r.queue.Pop()
}
