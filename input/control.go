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

package input

import (
	"github.com/gostone/gostone/pointer"
	"github.com/gostone/gostone/scancode"
)

// Motion is the direction of movement along one axis.
type Motion int

// List of valid Motion values.
const (
	MotionLeft  Motion = -1
	MotionUp    Motion = -1
	MotionNone  Motion = 0
	MotionRight Motion = 1
	MotionDown  Motion = 1
)

// Direction is the combined direction of both axes.
type Direction int

// List of valid Direction values.
const (
	DirNorth Direction = iota
	DirNorthEast
	DirEast
	DirSouthEast
	DirSouth
	DirSouthWest
	DirWest
	DirNorthWest
	DirNone
)

func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "N"
	case DirNorthEast:
		return "NE"
	case DirEast:
		return "E"
	case DirSouthEast:
		return "SE"
	case DirSouth:
		return "S"
	case DirSouthWest:
		return "SW"
	case DirWest:
		return "W"
	case DirNorthWest:
		return "NW"
	}
	return "none"
}

// indexed by (y+1)*3 + (x+1)
var dirTable = [9]Direction{
	DirNorthWest, DirNorth, DirNorthEast,
	DirWest, DirNone, DirEast,
	DirSouthWest, DirSouth, DirSouthEast,
}

// ControlInfo is the result of ReadControl().
type ControlInfo struct {
	X     int
	Y     int
	XAxis Motion
	YAxis Motion

	Button0 bool
	Button1 bool
	Button2 bool
	Button3 bool

	Dir Direction
}

// the keys used by ReadControl()
var controlKeys = struct {
	upLeft, up, upRight    scancode.Code
	left, right            scancode.Code
	downLeft, down, downRt scancode.Code
}{
	upLeft:   scancode.Home,
	up:       scancode.UpArrow,
	upRight:  scancode.PageUp,
	left:     scancode.LeftArrow,
	right:    scancode.RightArrow,
	downLeft: scancode.End,
	down:     scancode.DownArrow,
	downRt:   scancode.PageDown,
}

// ReadControl processes pending events and reads the direction keys of the
// keyboard. If no direction key is pressed then the pointer motion and
// buttons are used instead. The pointer motion is consumed.
//
// Direction keys produce an X and Y value of -127, 0 or 127.
func (m *Manager) ReadControl() ControlInfo {
	m.Pump()

	var ci ControlInfo
	var buttons uint8

	k := &controlKeys
	switch {
	case m.state.Get(k.upLeft):
		ci.XAxis, ci.YAxis = MotionLeft, MotionUp
	case m.state.Get(k.upRight):
		ci.XAxis, ci.YAxis = MotionRight, MotionUp
	case m.state.Get(k.downLeft):
		ci.XAxis, ci.YAxis = MotionLeft, MotionDown
	case m.state.Get(k.downRt):
		ci.XAxis, ci.YAxis = MotionRight, MotionDown
	}

	if m.state.Get(k.up) {
		ci.YAxis = MotionUp
	} else if m.state.Get(k.down) {
		ci.YAxis = MotionDown
	}

	if m.state.Get(k.left) {
		ci.XAxis = MotionLeft
	} else if m.state.Get(k.right) {
		ci.XAxis = MotionRight
	}

	if ci.XAxis != MotionNone || ci.YAxis != MotionNone {
		ci.X = int(ci.XAxis) * 127
		ci.Y = int(ci.YAxis) * 127
	} else {
		ci.X, ci.Y = m.pointer.ReadDelta()
		buttons = pointer.Buttons(&m.state)
		ci.XAxis = sign(ci.X)
		ci.YAxis = sign(ci.Y)
	}

	ci.Button0 = buttons&0x01 == 0x01
	ci.Button1 = buttons&0x02 == 0x02
	ci.Button2 = buttons&0x04 == 0x04
	ci.Button3 = buttons&0x08 == 0x08

	ci.Dir = dirTable[(int(ci.YAxis)+1)*3+int(ci.XAxis)+1]

	return ci
}

func sign(v int) Motion {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}
