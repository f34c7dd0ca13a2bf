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

package userinput_test

import (
	"testing"

	"github.com/gostone/gostone/test"
	"github.com/gostone/gostone/userinput"
)

func TestQueue(t *testing.T) {
	q := userinput.NewQueue(2)
	test.ExpectEquality(t, q.Pop(), userinput.Event(nil))

	test.ExpectSuccess(t, q.Push(userinput.EventQuit{}))
	test.ExpectSuccess(t, q.Push(userinput.EventWindowFocus{Gained: true}))
	test.ExpectFailure(t, q.Push(userinput.EventJoystick{}))
	test.ExpectEquality(t, q.Len(), 2)

	_, ok := q.Pop().(userinput.EventQuit)
	test.ExpectSuccess(t, ok)

	// wraps around the end of the buffer
	test.ExpectSuccess(t, q.Push(userinput.EventMouseMotion{DX: 1, DY: -1}))

	f, ok := q.Pop().(userinput.EventWindowFocus)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, f.Gained)

	m, ok := q.Pop().(userinput.EventMouseMotion)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m.DX, 1)
	test.ExpectEquality(t, m.DY, -1)

	test.ExpectEquality(t, q.Pop(), userinput.Event(nil))

	q.Push(userinput.EventQuit{})
	q.Clear()
	test.ExpectEquality(t, q.Len(), 0)
}

func TestKeys(t *testing.T) {
	test.ExpectEquality(t, userinput.KeyA.String(), "a")
	test.ExpectEquality(t, userinput.KeyF12.String(), "F12")
	test.ExpectEquality(t, userinput.KeyReturn.String(), "Return")
	test.ExpectEquality(t, userinput.KeyKp7.String(), "Keypad 7")
	test.ExpectSuccess(t, userinput.KeySlash.IsPrintable())
	test.ExpectFailure(t, userinput.KeySpace.IsPrintable())
	test.ExpectFailure(t, userinput.KeyUp.IsPrintable())
}

func TestKeyMod(t *testing.T) {
	m := userinput.KeyModRCtrl | userinput.KeyModCaps
	test.ExpectSuccess(t, m.Has(userinput.KeyModCtrl))
	test.ExpectFailure(t, m.Has(userinput.KeyModShift))
	test.ExpectSuccess(t, m.Has(userinput.KeyModCaps))
	test.ExpectFailure(t, userinput.KeyModNone.Has(userinput.KeyModAlt))
}
