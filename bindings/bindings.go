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

package bindings

import (
	"strings"

	"github.com/gostone/gostone/curated"
	"github.com/gostone/gostone/scancode"
)

// Sentinel error patterns.
const (
	UnknownAction = "bindings: unknown action: %s"
	UnknownCode   = "bindings: unknown code: %s"
	InvalidSlot   = "bindings: invalid slot for %s: %d"
	InvalidSyntax = "bindings: invalid override: %s"
)

// MaxAlternates is the number of codes that can be bound to an action.
const MaxAlternates = 3

// Binding is the list of codes bound to an action. Unused entries are
// scancode.None.
type Binding [MaxAlternates]scancode.Code

func (b Binding) String() string {
	s := strings.Builder{}
	for _, c := range b {
		if c == scancode.None {
			continue
		}
		if s.Len() > 0 {
			s.WriteString(", ")
		}
		s.WriteString(c.String())
	}
	if s.Len() == 0 {
		return "unbound"
	}
	return s.String()
}

// Table maps every Action to a Binding.
//
// The zero value has every action unbound.
type Table struct {
	bindings [NumActions]Binding
}

// NewTable is the preferred method of initialisation for the Table type. The
// table is populated with the default bindings.
func NewTable() *Table {
	tab := &Table{}
	tab.Defaults()
	return tab
}

// Defaults replaces every binding with the default bindings.
func (tab *Table) Defaults() {
	tab.bindings = [NumActions]Binding{}

	tab.bindings[Forward][0] = scancode.W
	tab.bindings[Backward][0] = scancode.S
	tab.bindings[Left][0] = scancode.LeftArrow
	tab.bindings[Right][0] = scancode.RightArrow
	tab.bindings[Strafe][0] = scancode.Alt
	tab.bindings[StrafeLeft][0] = scancode.A
	tab.bindings[StrafeRight][0] = scancode.D
	tab.bindings[Run][0] = scancode.LeftShift

	tab.bindings[Attack][0] = scancode.Control
	tab.bindings[Attack][1] = scancode.MouseLeft
	tab.bindings[Weapon1][0] = scancode.Num1
	tab.bindings[Weapon2][0] = scancode.Num2
	tab.bindings[Weapon3][0] = scancode.Num3
	tab.bindings[Weapon4][0] = scancode.Num4
	tab.bindings[Weapon5][0] = scancode.Num5
	tab.bindings[Weapon6][0] = scancode.Num6
	tab.bindings[Weapon7][0] = scancode.BackQuote

	tab.bindings[CycleNextWeapon][0] = scancode.E
	tab.bindings[CycleNextWeapon][1] = scancode.WheelUp
	tab.bindings[CyclePreviousWeapon][0] = scancode.Q
	tab.bindings[CyclePreviousWeapon][1] = scancode.WheelDown

	tab.bindings[Use][0] = scancode.Space
	tab.bindings[Use][1] = scancode.MouseRight

	tab.bindings[Stats][0] = scancode.Tab
	tab.bindings[RadarMagnify][0] = scancode.Equals
	tab.bindings[RadarMinify][0] = scancode.Minus

	tab.bindings[Help][0] = scancode.F1
	tab.bindings[Save][0] = scancode.F2
	tab.bindings[Load][0] = scancode.F3
	tab.bindings[Sound][0] = scancode.F4
	tab.bindings[Controls][0] = scancode.F6
	tab.bindings[EndGame][0] = scancode.F7
	tab.bindings[QuickSave][0] = scancode.F8
	tab.bindings[QuickLoad][0] = scancode.F9
	tab.bindings[QuickExit][0] = scancode.F10

	tab.bindings[Pause][0] = scancode.P
	tab.bindings[Pause][1] = scancode.Pause

	tab.bindings[GrabMouse][0] = scancode.U

	// joystick alternates are always in the last slot
	tab.bindings[Forward][2] = scancode.JoyAxis1Up
	tab.bindings[Backward][2] = scancode.JoyAxis1Down
	tab.bindings[StrafeLeft][2] = scancode.JoyAxis0Up
	tab.bindings[StrafeRight][2] = scancode.JoyAxis0Down
	tab.bindings[Left][2] = scancode.JoyAxis3Up
	tab.bindings[Right][2] = scancode.JoyAxis3Down
}

// Get the binding for the action. An invalid action has an empty binding.
func (tab *Table) Get(action Action) Binding {
	if action < 0 || action >= NumActions {
		return Binding{}
	}
	return tab.bindings[action]
}

// Bind code to the action in the given slot. Binding scancode.None clears the
// slot.
func (tab *Table) Bind(action Action, slot int, code scancode.Code) error {
	if action < 0 || action >= NumActions {
		return curated.Errorf(UnknownAction, action)
	}
	if slot < 0 || slot >= MaxAlternates {
		return curated.Errorf(InvalidSlot, action, slot)
	}
	tab.bindings[action][slot] = code
	return nil
}

// Unbind every code from the action.
func (tab *Table) Unbind(action Action) error {
	if action < 0 || action >= NumActions {
		return curated.Errorf(UnknownAction, action)
	}
	tab.bindings[action] = Binding{}
	return nil
}

// Active returns true if any of the codes bound to the action are pressed.
func (tab *Table) Active(action Action, st *scancode.State) bool {
	if action < 0 || action >= NumActions {
		return false
	}
	for _, c := range tab.bindings[action] {
		if st.Get(c) {
			return true
		}
	}
	return false
}

// ResetState releases every code bound to the action.
func (tab *Table) ResetState(action Action, st *scancode.State) {
	if action < 0 || action >= NumActions {
		return
	}
	for _, c := range tab.bindings[action] {
		if c != scancode.None {
			st.Set(c, false)
		}
	}
}

// Matches returns the slot of the action's binding that contains code. Returns
// -1 if the code is not bound to the action or if the code is scancode.None.
func (tab *Table) Matches(action Action, code scancode.Code) int {
	if code == scancode.None || action < 0 || action >= NumActions {
		return -1
	}
	for i, c := range tab.bindings[action] {
		if c == code {
			return i
		}
	}
	return -1
}

// String returns every action and its binding, one per line.
func (tab *Table) String() string {
	s := strings.Builder{}
	for a := Action(0); a < NumActions; a++ {
		s.WriteString(a.String())
		s.WriteString(" :: ")
		s.WriteString(tab.bindings[a].String())
		s.WriteString("\n")
	}
	return s.String()
}
