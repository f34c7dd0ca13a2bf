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

package sdlplatform

import (
	"github.com/gostone/gostone/joystick"
	"github.com/gostone/gostone/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// controller implements the joystick.Device interface for SDL game
// controllers.
type controller struct {
	pad *sdl.GameController
}

func (c *controller) Name() string {
	return c.pad.Name()
}

func (c *controller) Class() joystick.Class {
	return joystick.ClassController
}

func (c *controller) NumAxes() int {
	return joystick.NumControllerAxes
}

func (c *controller) NumButtons() int {
	return joystick.NumControllerButtons
}

func (c *controller) Axis(i int) int {
	return int(c.pad.Axis(sdl.GameControllerAxis(i)))
}

func (c *controller) Button(i int) bool {
	return c.pad.Button(sdl.GameControllerButton(i)) == 1
}

func (c *controller) Hat() joystick.Hat {
	return joystick.HatCentered
}

func (c *controller) Update() {
	sdl.GameControllerUpdate()
}

func (c *controller) Close() {
	c.pad.Close()
}

// stick implements the joystick.Device interface for SDL joysticks that are
// not recognised as game controllers.
type stick struct {
	joy *sdl.Joystick
}

func (s *stick) Name() string {
	return s.joy.Name()
}

func (s *stick) Class() joystick.Class {
	return joystick.ClassJoystick
}

func (s *stick) NumAxes() int {
	return s.joy.NumAxes()
}

func (s *stick) NumButtons() int {
	return s.joy.NumButtons()
}

func (s *stick) Axis(i int) int {
	return int(s.joy.Axis(i))
}

func (s *stick) Button(i int) bool {
	return s.joy.Button(i) == 1
}

// SDL hat bits are the same as the joystick.Hat bits.
func (s *stick) Hat() joystick.Hat {
	if s.joy.NumHats() == 0 {
		return joystick.HatCentered
	}
	return joystick.Hat(s.joy.Hat(0))
}

func (s *stick) Update() {
	sdl.JoystickUpdate()
}

func (s *stick) Close() {
	s.joy.Close()
}

// OpenDevice implements the joystick.Prober interface. Game controllers are
// preferred over joysticks.
func (plt *Platform) OpenDevice() joystick.Device {
	n := sdl.NumJoysticks()

	for i := 0; i < n; i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		pad := sdl.GameControllerOpen(i)
		if pad != nil && pad.Attached() {
			logger.Logf(logger.Allow, "sdl", "gamepad: %s", pad.Name())
			return &controller{pad: pad}
		}
	}

	for i := 0; i < n; i++ {
		joy := sdl.JoystickOpen(i)
		if joy != nil && joy.Attached() {
			logger.Logf(logger.Allow, "sdl", "joystick: %s", joy.Name())
			return &stick{joy: joy}
		}
	}

	return nil
}
