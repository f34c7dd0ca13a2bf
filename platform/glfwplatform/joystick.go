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
	"github.com/gostone/gostone/joystick"
	"github.com/gostone/gostone/logger"
)

// gamepad buttons in the order of the joystick.Controller constants. buttons
// that GLFW does not have are -1.
var gamepadButtons = [joystick.NumControllerButtons]glfw.GamepadButton{
	joystick.ControllerA:             glfw.ButtonA,
	joystick.ControllerB:             glfw.ButtonB,
	joystick.ControllerX:             glfw.ButtonX,
	joystick.ControllerY:             glfw.ButtonY,
	joystick.ControllerBack:          glfw.ButtonBack,
	joystick.ControllerGuide:         glfw.ButtonGuide,
	joystick.ControllerStart:         glfw.ButtonStart,
	joystick.ControllerLeftStick:     glfw.ButtonLeftThumb,
	joystick.ControllerRightStick:    glfw.ButtonRightThumb,
	joystick.ControllerLeftShoulder:  glfw.ButtonLeftBumper,
	joystick.ControllerRightShoulder: glfw.ButtonRightBumper,
	joystick.ControllerDpadUp:        glfw.ButtonDpadUp,
	joystick.ControllerDpadDown:      glfw.ButtonDpadDown,
	joystick.ControllerDpadLeft:      glfw.ButtonDpadLeft,
	joystick.ControllerDpadRight:     glfw.ButtonDpadRight,
	joystick.ControllerMisc1:         -1,
	joystick.ControllerPaddle1:       -1,
	joystick.ControllerPaddle2:       -1,
	joystick.ControllerPaddle3:       -1,
	joystick.ControllerPaddle4:       -1,
	joystick.ControllerTouchpad:      -1,
}

// scaleAxis converts a GLFW axis value to the range used by joystick.Device.
func scaleAxis(v float32) int {
	if v < 0 {
		return int(v * 0x8000)
	}
	return int(v * joystick.AxisMax)
}

// triggers are reported by GLFW in the range -1 to 1 with -1 being released.
func scaleTrigger(v float32) int {
	return int((v + 1) / 2 * joystick.AxisMax)
}

// gamepad implements the joystick.Device interface for joysticks that GLFW
// has a gamepad mapping for.
type gamepad struct {
	joy   glfw.Joystick
	state glfw.GamepadState
}

func (g *gamepad) Name() string {
	return g.joy.GetGamepadName()
}

func (g *gamepad) Class() joystick.Class {
	return joystick.ClassController
}

func (g *gamepad) NumAxes() int {
	return joystick.NumControllerAxes
}

func (g *gamepad) NumButtons() int {
	return joystick.NumControllerButtons
}

// GLFW axis order is the same as the joystick.Controller axis constants.
func (g *gamepad) Axis(i int) int {
	if i < 0 || i >= len(g.state.Axes) {
		return 0
	}
	if i == joystick.ControllerTriggerLeft || i == joystick.ControllerTriggerRight {
		return scaleTrigger(g.state.Axes[i])
	}
	return scaleAxis(g.state.Axes[i])
}

func (g *gamepad) Button(i int) bool {
	if i < 0 || i >= len(gamepadButtons) {
		return false
	}
	b := gamepadButtons[i]
	if b < 0 {
		return false
	}
	return g.state.Buttons[b] == glfw.Press
}

func (g *gamepad) Hat() joystick.Hat {
	return joystick.HatCentered
}

func (g *gamepad) Update() {
	if st := g.joy.GetGamepadState(); st != nil {
		g.state = *st
	} else {
		g.state = glfw.GamepadState{}
	}
}

func (g *gamepad) Close() {
}

// stick implements the joystick.Device interface for joysticks with no
// gamepad mapping. GLFW joysticks are never opened or closed. the state is
// read fresh on every Update().
type stick struct {
	joy     glfw.Joystick
	name    string
	axes    []float32
	buttons []glfw.Action
	hats    []glfw.JoystickHatState

	numAxes    int
	numButtons int
}

func newStick(joy glfw.Joystick) *stick {
	s := &stick{
		joy:  joy,
		name: joy.GetName(),
	}
	s.Update()
	s.numAxes = len(s.axes)
	s.numButtons = len(s.buttons)
	return s
}

func (s *stick) Name() string {
	return s.name
}

func (s *stick) Class() joystick.Class {
	return joystick.ClassJoystick
}

func (s *stick) NumAxes() int {
	return s.numAxes
}

func (s *stick) NumButtons() int {
	return s.numButtons
}

func (s *stick) Axis(i int) int {
	if i < 0 || i >= len(s.axes) {
		return 0
	}
	return scaleAxis(s.axes[i])
}

func (s *stick) Button(i int) bool {
	if i < 0 || i >= len(s.buttons) {
		return false
	}
	return s.buttons[i] == glfw.Press
}

// GLFW hat bits are the same as the joystick.Hat bits.
func (s *stick) Hat() joystick.Hat {
	if len(s.hats) == 0 {
		return joystick.HatCentered
	}
	return joystick.Hat(s.hats[0])
}

func (s *stick) Update() {
	s.axes = s.joy.GetAxes()
	s.buttons = s.joy.GetButtons()
	s.hats = s.joy.GetHats()
}

func (s *stick) Close() {
}

// OpenDevice implements the joystick.Prober interface. Gamepads are
// preferred over joysticks.
func (plt *Platform) OpenDevice() joystick.Device {
	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if joy.Present() && joy.IsGamepad() {
			logger.Logf(logger.Allow, "glfw", "gamepad: %s", joy.GetGamepadName())
			g := &gamepad{joy: joy}
			g.Update()
			return g
		}
	}

	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if joy.Present() {
			logger.Logf(logger.Allow, "glfw", "joystick: %s", joy.GetName())
			return newStick(joy)
		}
	}

	return nil
}

// joystickPresent returns true if any joystick is connected.
func joystickPresent() bool {
	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if joy.Present() {
			return true
		}
	}
	return false
}
