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

package pointer_test

import (
	"testing"

	"github.com/gostone/gostone/pointer"
	"github.com/gostone/gostone/scancode"
	"github.com/gostone/gostone/test"
	"github.com/gostone/gostone/userinput"
)

// capturer is a simple implementation of the pointer.Capturer interface
type capturer struct {
	captured bool
	refuse   bool
	attempts int
}

func (c *capturer) IsCaptured() bool {
	return c.captured
}

func (c *capturer) Engage() bool {
	c.attempts++
	if c.refuse {
		return false
	}
	c.captured = true
	return true
}

func TestAutoCapture(t *testing.T) {
	var st scancode.State
	c := &capturer{}
	p := pointer.NewPointer(c)

	// the click that captures the pointer is swallowed
	test.ExpectFailure(t, p.Button(&st, userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true}))
	test.ExpectSuccess(t, c.captured)
	test.ExpectFailure(t, st.Get(scancode.MouseLeft))

	// subsequent clicks are recorded
	test.ExpectSuccess(t, p.Button(&st, userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true}))
	test.ExpectSuccess(t, st.Get(scancode.MouseLeft))
	test.ExpectSuccess(t, p.Button(&st, userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: false}))
	test.ExpectFailure(t, st.Get(scancode.MouseLeft))
	test.ExpectEquality(t, c.attempts, 1)
}

func TestAutoCaptureRefused(t *testing.T) {
	var st scancode.State
	c := &capturer{refuse: true}
	p := pointer.NewPointer(c)

	// the capture attempt fails so the click is recorded
	test.ExpectSuccess(t, p.Button(&st, userinput.EventMouseButton{Button: userinput.MouseButtonRight, Down: true}))
	test.ExpectSuccess(t, st.Get(scancode.MouseRight))

	// releases never attempt a capture
	p.Button(&st, userinput.EventMouseButton{Button: userinput.MouseButtonRight, Down: false})
	test.ExpectEquality(t, c.attempts, 1)
	test.ExpectFailure(t, st.Get(scancode.MouseRight))
}

func TestUnknownButton(t *testing.T) {
	var st scancode.State
	c := &capturer{}
	p := pointer.NewPointer(c)
	test.ExpectFailure(t, p.Button(&st, userinput.EventMouseButton{Button: userinput.MouseButtonNone, Down: true}))
	test.ExpectEquality(t, c.attempts, 0)
}

func TestMotion(t *testing.T) {
	c := &capturer{}
	p := pointer.NewPointer(c)

	p.Motion(userinput.EventMouseMotion{DX: 5, DY: 5})
	dx, dy := p.Delta()
	test.ExpectEquality(t, dx, 0)
	test.ExpectEquality(t, dy, 0)

	c.captured = true
	p.Motion(userinput.EventMouseMotion{DX: 5, DY: -3})
	p.Motion(userinput.EventMouseMotion{DX: 2, DY: -1})
	dx, dy = p.ReadDelta()
	test.ExpectEquality(t, dx, 7)
	test.ExpectEquality(t, dy, -4)

	dx, dy = p.Delta()
	test.ExpectEquality(t, dx, 0)
	test.ExpectEquality(t, dy, 0)

	// losing capture zeroes accumulated motion on the next motion event
	p.Motion(userinput.EventMouseMotion{DX: 1, DY: 1})
	c.captured = false
	p.Motion(userinput.EventMouseMotion{DX: 1, DY: 1})
	dx, dy = p.Delta()
	test.ExpectEquality(t, dx, 0)
	test.ExpectEquality(t, dy, 0)
}

func TestWheel(t *testing.T) {
	var st scancode.State
	c := &capturer{}
	p := pointer.NewPointer(c)

	// ignored when not captured
	p.Wheel(&st, userinput.EventMouseWheel{Delta: 1})
	test.ExpectFailure(t, st.Get(scancode.WheelUp))

	c.captured = true
	p.Wheel(&st, userinput.EventMouseWheel{Delta: 1})
	test.ExpectSuccess(t, st.Get(scancode.WheelUp))
	test.ExpectEquality(t, st.LastCode, scancode.WheelUp)

	p.Wheel(&st, userinput.EventMouseWheel{Delta: 1, Flipped: true})
	test.ExpectSuccess(t, st.Get(scancode.WheelDown))
	test.ExpectEquality(t, st.LastCode, scancode.WheelDown)

	// wheel codes are never released by the pointer
	test.ExpectSuccess(t, st.Get(scancode.WheelUp))

	st.Reset()
	p.Wheel(&st, userinput.EventMouseWheel{Delta: 0})
	test.ExpectFailure(t, st.Any())
}

func TestButtons(t *testing.T) {
	var st scancode.State
	test.ExpectEquality(t, pointer.Buttons(&st), 0)

	st.Set(scancode.MouseLeft, true)
	st.Set(scancode.MouseMiddle, true)
	test.ExpectEquality(t, pointer.Buttons(&st), 0x05)

	st.Set(scancode.MouseX2, true)
	st.Set(scancode.MouseRight, true)
	test.ExpectEquality(t, pointer.Buttons(&st), 0x17)
}
