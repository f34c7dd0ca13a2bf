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

// Class distinguishes the two kinds of device supported by the package.
type Class int

// List of valid Class values.
const (
	ClassNone Class = iota

	// ClassController devices have a standardised layout of axes and buttons.
	// The D-pad is reported as ordinary buttons.
	ClassController

	// ClassJoystick devices have an arbitrary number of axes and buttons and
	// optionally a hat.
	ClassJoystick
)

func (c Class) String() string {
	switch c {
	case ClassController:
		return "controller"
	case ClassJoystick:
		return "joystick"
	}
	return "none"
}

// Hat is the state of a joystick hat as a set of direction bits. Diagonals
// are represented by two bits being set.
type Hat uint8

// List of Hat bits.
const (
	HatCentered Hat = 0x00
	HatUp       Hat = 0x01
	HatRight    Hat = 0x02
	HatDown     Hat = 0x04
	HatLeft     Hat = 0x08
)

// Controller buttons in the order used by controller class devices.
const (
	ControllerA = iota
	ControllerB
	ControllerX
	ControllerY
	ControllerBack
	ControllerGuide
	ControllerStart
	ControllerLeftStick
	ControllerRightStick
	ControllerLeftShoulder
	ControllerRightShoulder
	ControllerDpadUp
	ControllerDpadDown
	ControllerDpadLeft
	ControllerDpadRight
	ControllerMisc1
	ControllerPaddle1
	ControllerPaddle2
	ControllerPaddle3
	ControllerPaddle4
	ControllerTouchpad

	NumControllerButtons
)

// Controller axes in the order used by controller class devices. Note that
// the Joystick type presents the right stick axes in the opposite order.
const (
	ControllerLeftX = iota
	ControllerLeftY
	ControllerRightX
	ControllerRightY
	ControllerTriggerLeft
	ControllerTriggerRight

	NumControllerAxes
)

// Device is implemented by platform backends for every type of joystick or
// game controller.
//
// The number of axes and buttons is fixed for the lifetime of the Device.
// Axis values are in the range -0x8000 to 0x7fff.
type Device interface {
	Name() string
	Class() Class
	NumAxes() int
	NumButtons() int
	Axis(i int) int
	Button(i int) bool

	// Hat returns the state of the first hat. Always HatCentered for
	// controller class devices.
	Hat() Hat

	// Update refreshes the device state. Called before the state is read.
	Update()

	Close()
}

// Prober is implemented by platform backends that can find a device.
type Prober interface {
	// OpenDevice returns the first device that can be opened. Controller
	// class devices are preferred. Returns nil if there is no device.
	OpenDevice() Device
}
