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

package userinput

// Event represents all the different type of events that can occur in the
// platform.
type Event interface{}

// EventSource is implemented by platform backends.
type EventSource interface {
	// PumpEvents gathers pending events from the platform. Called once before
	// PollEvent() is called until it returns nil.
	PumpEvents()

	// PollEvent returns the next pending event or nil if there are no more
	// events. Must not block.
	PollEvent() Event
}

// EventKeyboard is sent when a key is pressed or released. A held key may
// generate repeated press events, in which case Repeat is true.
type EventKeyboard struct {
	Key    Key
	Down   bool
	Repeat bool

	// the modifier state at the time of the event
	Mod KeyMod
}

// MouseButton identifies the mouse button in the EventMouseButton type.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonX1
	MouseButtonX2
)

// EventMouseButton is sent when a mouse button is pressed or released.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

// EventMouseMotion is sent when the mouse moves. The values are relative to
// the previous position.
type EventMouseMotion struct {
	DX int
	DY int
}

// EventMouseWheel is sent when the mouse wheel is moved. Positive values are
// away from the user. Flipped is true if the platform reports that the
// direction should be inverted ("natural" scrolling).
type EventMouseWheel struct {
	Delta   int
	Flipped bool
}

// EventWindowFocus is sent when the application window gains or loses
// keyboard focus.
type EventWindowFocus struct {
	Gained bool
}

// EventJoystick is sent when there is any activity on a joystick or game
// controller. The event carries no data: the current state should be polled
// from the device.
type EventJoystick struct{}

// EventDeviceAdded is sent when a joystick or game controller is connected.
type EventDeviceAdded struct {
	Index int
}

// EventDeviceRemoved is sent when a joystick or game controller is
// disconnected.
type EventDeviceRemoved struct {
	Index int
}

// EventQuit is sent when the user requests the application to end, for
// example by closing the window.
type EventQuit struct{}
