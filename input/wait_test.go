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

package input_test

import (
	"testing"

	"github.com/gostone/gostone/input"
	"github.com/gostone/gostone/test"
	"github.com/gostone/gostone/userinput"
)

func TestAcknowledge(t *testing.T) {
	f := newFixture(t)

	f.m.StartAcknowledge()
	test.ExpectFailure(t, f.m.CheckAcknowledge())

	f.src.Push(key('x', true))
	test.ExpectSuccess(t, f.m.CheckAcknowledge())

	// the press is only seen once
	f.m.StartAcknowledge()
	test.ExpectFailure(t, f.m.CheckAcknowledge())
}

func TestAcknowledgeHeldButton(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.m.RequestCapture(true))

	f.src.Push(userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true})
	f.m.Pump()
	test.DemandEquality(t, f.m.MouseButtons(), uint8(1))

	// a button held at the start is not an acknowledgement
	f.m.StartAcknowledge()
	test.ExpectFailure(t, f.m.CheckAcknowledge())
	test.ExpectFailure(t, f.m.CheckAcknowledge())

	// released and pressed again
	f.src.Push(userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: false})
	test.ExpectFailure(t, f.m.CheckAcknowledge())
	f.src.Push(userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true})
	test.ExpectSuccess(t, f.m.CheckAcknowledge())
}

func TestAcknowledgeBlocks(t *testing.T) {
	f := newFixture(t)

	f.src.OnPump = func(pumps int) {
		if pumps == 10 {
			f.src.Push(key('y', true))
		}
	}

	f.m.Acknowledge()
	test.ExpectEquality(t, f.src.Pumps, 10)
}

func TestWaitForPrintableCharacter(t *testing.T) {
	f := newFixture(t)

	f.src.OnPump = func(pumps int) {
		switch pumps {
		case 2:
			// no character
			f.src.Push(key(userinput.KeyF1, true))
		case 4:
			f.src.Push(userinput.EventKeyboard{Key: '1', Down: true, Mod: userinput.KeyModRShift})
		}
	}

	test.ExpectEquality(t, f.m.WaitForPrintableCharacter(), '!')
	test.ExpectEquality(t, f.src.Pumps, 4)

	// the character is consumed
	test.ExpectEquality(t, f.m.LastChar(), rune(0))
}

func TestWaitForUserInput(t *testing.T) {
	f := newFixture(t)

	// timeout
	f.clk.Tick = 1000
	test.ExpectFailure(t, f.m.WaitForUserInput(35))
	test.ExpectEquality(t, f.clk.Tick, uint32(1035))
	test.ExpectEquality(t, f.clk.Waits, 35)

	// input is found on the first check
	f.clk.Waits = 0
	f.src.Pending(key('z', true))
	test.ExpectSuccess(t, f.m.WaitForUserInput(35))
	test.ExpectEquality(t, f.clk.Waits, 1)

	// input part way through the wait
	f.clk.Waits = 0
	f.src.OnPump = func(_ int) {
		if f.clk.Waits == 5 {
			f.src.Push(key(userinput.KeyReturn, true))
		}
	}
	test.ExpectSuccess(t, f.m.WaitForUserInput(35))
	test.ExpectEquality(t, f.clk.Waits, 5)

	// no wait at all still checks once
	f.clk.Waits = 0
	f.src.OnPump = nil
	test.ExpectFailure(t, f.m.WaitForUserInput(0))
	test.ExpectEquality(t, f.clk.Waits, 1)
}

func TestReadControl(t *testing.T) {
	f := newFixture(t)

	ci := f.m.ReadControl()
	test.ExpectEquality(t, ci.Dir, input.DirNone)
	test.ExpectEquality(t, ci.X, 0)

	f.src.Push(key(userinput.KeyUp, true), key(userinput.KeyLeft, true))
	ci = f.m.ReadControl()
	test.ExpectEquality(t, ci.Dir, input.DirNorthWest)
	test.ExpectEquality(t, ci.X, -127)
	test.ExpectEquality(t, ci.Y, -127)
	test.ExpectEquality(t, ci.XAxis, input.MotionLeft)

	f.src.Push(key(userinput.KeyUp, false), key(userinput.KeyLeft, false), key(userinput.KeyPageDown, true))
	ci = f.m.ReadControl()
	test.ExpectEquality(t, ci.Dir, input.DirSouthEast)
	test.ExpectEquality(t, ci.Dir.String(), "SE")

	// the pointer is used when no direction key is pressed
	f.src.Push(key(userinput.KeyPageDown, false))
	test.DemandSuccess(t, f.m.RequestCapture(true))
	f.src.Push(
		userinput.EventMouseMotion{DX: 12, DY: 0},
		userinput.EventMouseButton{Button: userinput.MouseButtonRight, Down: true},
	)
	ci = f.m.ReadControl()
	test.ExpectEquality(t, ci.Dir, input.DirEast)
	test.ExpectEquality(t, ci.X, 12)
	test.ExpectEquality(t, ci.Y, 0)
	test.ExpectFailure(t, ci.Button0)
	test.ExpectSuccess(t, ci.Button1)

	// the motion has been consumed
	ci = f.m.ReadControl()
	test.ExpectEquality(t, ci.X, 0)
	test.ExpectSuccess(t, ci.Button1)
}
