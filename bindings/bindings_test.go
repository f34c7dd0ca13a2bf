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

package bindings_test

import (
	"testing"

	"github.com/gostone/gostone/bindings"
	"github.com/gostone/gostone/curated"
	"github.com/gostone/gostone/scancode"
	"github.com/gostone/gostone/test"
)

func TestDefaults(t *testing.T) {
	tab := bindings.NewTable()

	test.ExpectEquality(t, tab.Get(bindings.Forward), bindings.Binding{scancode.W, scancode.None, scancode.JoyAxis1Up})
	test.ExpectEquality(t, tab.Get(bindings.Attack), bindings.Binding{scancode.Control, scancode.MouseLeft, scancode.None})
	test.ExpectEquality(t, tab.Get(bindings.Pause), bindings.Binding{scancode.P, scancode.Pause, scancode.None})
	test.ExpectEquality(t, tab.Get(bindings.Left), bindings.Binding{scancode.LeftArrow, scancode.None, scancode.JoyAxis3Up})
	test.ExpectEquality(t, tab.Get(bindings.StrafeRight), bindings.Binding{scancode.D, scancode.None, scancode.JoyAxis0Down})
	test.ExpectEquality(t, tab.Get(bindings.CycleNextWeapon), bindings.Binding{scancode.E, scancode.WheelUp, scancode.None})
	test.ExpectEquality(t, tab.Get(bindings.Weapon7)[0], scancode.BackQuote)
	test.ExpectEquality(t, tab.Get(bindings.QuickExit)[0], scancode.F10)
	test.ExpectEquality(t, tab.Get(bindings.GrabMouse)[0], scancode.U)

	// actions with no default binding
	test.ExpectEquality(t, tab.Get(bindings.TurnAround), bindings.Binding{})
	test.ExpectEquality(t, tab.Get(bindings.HeartBeat), bindings.Binding{})

	// Defaults() undoes any changes
	test.ExpectSuccess(t, tab.Unbind(bindings.Forward))
	tab.Defaults()
	test.ExpectEquality(t, tab.Get(bindings.Forward)[0], scancode.W)
}

func TestActionNames(t *testing.T) {
	test.ExpectEquality(t, int(bindings.NumActions), 43)
	test.ExpectEquality(t, bindings.Forward.String(), "forward")
	test.ExpectEquality(t, bindings.CycleNextWeapon.String(), "cycle_next_weapon")
	test.ExpectEquality(t, bindings.NumActions.String(), "unknown")

	a, ok := bindings.LookupAction("Radar_Magnify")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, bindings.RadarMagnify)

	_, ok = bindings.LookupAction("jump")
	test.ExpectFailure(t, ok)
}

func TestActive(t *testing.T) {
	tab := bindings.NewTable()
	var st scancode.State

	test.ExpectFailure(t, tab.Active(bindings.Attack, &st))

	st.Set(scancode.MouseLeft, true)
	test.ExpectSuccess(t, tab.Active(bindings.Attack, &st))

	st.Set(scancode.Control, true)
	test.ExpectSuccess(t, tab.Active(bindings.Attack, &st))

	st.Set(scancode.MouseLeft, false)
	test.ExpectSuccess(t, tab.Active(bindings.Attack, &st))

	tab.ResetState(bindings.Attack, &st)
	test.ExpectFailure(t, tab.Active(bindings.Attack, &st))
	test.ExpectFailure(t, st.Get(scancode.Control))

	// an action with nothing bound is never active, whatever is pressed
	test.ExpectSuccess(t, tab.Unbind(bindings.Use))
	for c := 1; c < scancode.NumCodes; c++ {
		st.Set(scancode.Code(c), true)
	}
	test.ExpectFailure(t, tab.Active(bindings.Use, &st))
	test.ExpectSuccess(t, tab.Active(bindings.Forward, &st))

	// duplicates are harmless
	tab.Defaults()
	test.ExpectSuccess(t, tab.Bind(bindings.Run, 1, scancode.LeftShift))
	st.Reset()
	st.Set(scancode.LeftShift, true)
	test.ExpectSuccess(t, tab.Active(bindings.Run, &st))
	tab.ResetState(bindings.Run, &st)
	test.ExpectFailure(t, tab.Active(bindings.Run, &st))
}

func TestBind(t *testing.T) {
	tab := bindings.NewTable()

	test.ExpectSuccess(t, tab.Bind(bindings.TurnAround, 0, scancode.R))
	test.ExpectEquality(t, tab.Matches(bindings.TurnAround, scancode.R), 0)
	test.ExpectEquality(t, tab.Matches(bindings.TurnAround, scancode.None), -1)
	test.ExpectEquality(t, tab.Matches(bindings.GrabMouse, scancode.R), -1)

	err := tab.Bind(bindings.TurnAround, 3, scancode.R)
	test.ExpectSuccess(t, curated.Is(err, bindings.InvalidSlot))

	err = tab.Bind(bindings.NumActions, 0, scancode.R)
	test.ExpectSuccess(t, curated.Is(err, bindings.UnknownAction))

	err = tab.Unbind(bindings.Action(-1))
	test.ExpectSuccess(t, curated.Is(err, bindings.UnknownAction))

	test.ExpectEquality(t, tab.Get(bindings.NumActions), bindings.Binding{})
	test.ExpectEquality(t, tab.Get(bindings.Attack).String(), "Ctrl, Mouse 1")
	test.ExpectEquality(t, tab.Get(bindings.HeartBeat).String(), "unbound")
}

func TestOverrides(t *testing.T) {
	tab := bindings.NewTable()

	err := tab.ParseOverrides("forward=up, joy axis 1 up | weapon_7=0x33 | use= | radar_magnify==")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.Get(bindings.Forward), bindings.Binding{scancode.UpArrow, scancode.JoyAxis1Up, scancode.None})
	test.ExpectEquality(t, tab.Get(bindings.Weapon7), bindings.Binding{scancode.Comma})
	test.ExpectEquality(t, tab.Get(bindings.Use), bindings.Binding{})
	test.ExpectEquality(t, tab.Get(bindings.RadarMagnify), bindings.Binding{scancode.Equals})

	// unchanged
	test.ExpectEquality(t, tab.Get(bindings.Attack)[0], scancode.Control)
}

func TestOverridesErrors(t *testing.T) {
	tab := bindings.NewTable()

	err := tab.ParseOverrides("attack=mouse 2 | jump=space")
	test.ExpectSuccess(t, curated.Is(err, bindings.UnknownAction))

	// the table is unchanged by a failed parse
	test.ExpectEquality(t, tab.Get(bindings.Attack)[0], scancode.Control)

	err = tab.ParseOverrides("attack=mouse 9")
	test.ExpectSuccess(t, curated.Is(err, bindings.UnknownCode))

	err = tab.ParseOverrides("attack=a,b,c,d")
	test.ExpectSuccess(t, curated.Is(err, bindings.InvalidSlot))

	err = tab.ParseOverrides("attack")
	test.ExpectSuccess(t, curated.Is(err, bindings.InvalidSyntax))

	test.ExpectSuccess(t, tab.ParseOverrides(""))
	test.ExpectSuccess(t, tab.ParseOverrides(" | "))
}
