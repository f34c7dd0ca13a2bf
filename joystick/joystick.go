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

package joystick

import (
	"github.com/gostone/gostone/logger"
	"github.com/gostone/gostone/scancode"
)

// MaxAxes is the number of axes that are read from a device.
const MaxAxes = 6

// AxisMax is the largest magnitude of an axis sample after clamping.
const AxisMax = 0x7fff

// legacy joysticks with fewer than this many buttons report the hat as the
// first four buttons.
const hatThreshold = 28

// the number of button slots taken by the hat.
const hatSlots = 4

// controller class devices present the right stick axes in the opposite
// order to the raw device.
var controllerAxes = [MaxAxes]int{
	ControllerLeftX,
	ControllerLeftY,
	ControllerRightY,
	ControllerRightX,
	ControllerTriggerLeft,
	ControllerTriggerRight,
}

// Joystick digitises the state of a Device into the canonical code space.
//
// The zero value has no device attached and every query returns a neutral
// value.
type Joystick struct {
	prefs *Prefs
	dev   Device

	// the codes that are currently held by the joystick. used for edge
	// detection independently of the canonical state, which may be cleared
	// at any time by the application
	held scancode.State

	// the state of the controller Start button at the most recent Poll()
	start bool
}

// NewJoystick is the preferred method of initialisation for the Joystick type.
func NewJoystick(prefs *Prefs) *Joystick {
	return &Joystick{prefs: prefs}
}

// Attach a device. Any previously attached device is closed.
func (j *Joystick) Attach(dev Device) {
	j.Detach(nil)
	if dev == nil {
		return
	}
	j.dev = dev
	logger.Logf(logger.Allow, "joystick", "attached %s (%s): %d axes, %d buttons",
		dev.Name(), dev.Class(), dev.NumAxes(), dev.NumButtons())
}

// Detach closes the attached device. If st is not nil then any codes held by
// the joystick are released.
func (j *Joystick) Detach(st *scancode.State) {
	if st != nil {
		for _, c := range j.held.Pressed() {
			st.Set(c, false)
		}
	}
	j.held.Reset()
	j.start = false

	if j.dev == nil {
		return
	}
	logger.Logf(logger.Allow, "joystick", "detached %s", j.dev.Name())
	j.dev.Close()
	j.dev = nil
}

// IsAttached returns true if a device is attached.
func (j *Joystick) IsAttached() bool {
	return j.dev != nil
}

// Device returns the attached device or nil.
func (j *Joystick) Device() Device {
	return j.dev
}

// Poll reads the attached device and updates the canonical state. Returns
// true if the Start button of a controller class device is being held.
//
// An axis direction is pressed if the axis sample, sign flipped for the
// negative direction, is greater than the deadzone threshold for the axis.
// Codes released by the device are only released in the canonical state if
// they were pressed by the joystick.
func (j *Joystick) Poll(st *scancode.State) bool {
	if j.dev == nil {
		return false
	}

	j.dev.Update()

	n := min(j.dev.NumAxes(), MaxAxes)
	for axis := 0; axis < n; axis++ {
		v := j.axis(axis)
		dz := j.prefs.threshold(axis)
		j.update(st, scancode.JoyAxis(axis, 0), -v > dz)
		j.update(st, scancode.JoyAxis(axis, 1), v > dz)
	}

	var buttons uint32
	buttons, j.start = j.buttons()
	for b := 0; b < scancode.NumJoyButtons; b++ {
		j.update(st, scancode.JoyButton(b), buttons&(1<<b) != 0)
	}

	return j.start
}

func (j *Joystick) update(st *scancode.State, code scancode.Code, pressed bool) {
	if code == scancode.None {
		return
	}
	if pressed {
		if !j.held.Get(code) {
			st.LastCode = code
		}
		j.held.Set(code, true)
		st.Set(code, true)
	} else if j.held.Get(code) {
		j.held.Set(code, false)
		st.Set(code, false)
	}
}

// buttons returns the button slots as a bitmask. the start value is true if
// the device is a controller and the Start button is pressed. the Start
// button does not appear in the bitmask.
func (j *Joystick) buttons() (uint32, bool) {
	var mask uint32
	var start bool

	n := j.dev.NumButtons()

	if j.dev.Class() == ClassController {
		for b := 0; b < n && b < scancode.NumJoyButtons; b++ {
			if !j.dev.Button(b) {
				continue
			}
			if b == ControllerStart {
				start = true
			} else {
				mask |= 1 << b
			}
		}
		return mask, start
	}

	slot := 0
	if n < hatThreshold {
		hat := j.dev.Hat()
		for i, h := range []Hat{HatUp, HatRight, HatDown, HatLeft} {
			if hat&h == h {
				mask |= 1 << i
			}
		}
		slot = hatSlots
	}

	for b := 0; b < n && slot < scancode.NumJoyButtons; b++ {
		if j.dev.Button(b) {
			mask |= 1 << slot
		}
		slot++
	}

	return mask, false
}

// axis returns the clamped sample for the axis, taking into account the axis
// order of controller class devices.
func (j *Joystick) axis(axis int) int {
	if j.dev.Class() == ClassController {
		axis = controllerAxes[axis]
	}
	return clamp(j.dev.Axis(axis), -AxisMax, AxisMax)
}

// Axis returns the raw value of the axis. Returns zero if there is no device
// or if the axis does not exist.
func (j *Joystick) Axis(axis int) int {
	if j.dev == nil || axis < 0 || axis >= min(j.dev.NumAxes(), MaxAxes) {
		return 0
	}
	return j.axis(axis)
}

// Start returns true if the Start button of a controller was held at the
// most recent Poll().
func (j *Joystick) Start() bool {
	return j.start
}

// Delta returns the movement of the primary stick in the range -128 to 127.
// The D-pad of a controller or the hat of a joystick adds full deflection.
func (j *Joystick) Delta() (int, int) {
	if j.dev == nil {
		return 0, 0
	}

	j.dev.Update()

	var x, y int

	if j.dev.NumAxes() > 1 {
		x = j.axis(0) >> 8
		y = j.axis(1) >> 8
	}

	var right, left, down, up bool

	if j.dev.Class() == ClassController {
		right = j.dev.Button(ControllerDpadRight)
		left = j.dev.Button(ControllerDpadLeft)
		down = j.dev.Button(ControllerDpadDown)
		up = j.dev.Button(ControllerDpadUp)
	} else {
		hat := j.dev.Hat()
		right = hat&HatRight == HatRight
		left = hat&HatLeft == HatLeft
		down = hat&HatDown == HatDown
		up = hat&HatUp == HatUp
	}

	if right {
		x += 127
	} else if left {
		x -= 127
	}
	if down {
		y += 127
	} else if up {
		y -= 127
	}

	return clamp(x, -128, 127), clamp(y, -128, 127)
}
