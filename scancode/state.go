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

package scancode

import (
	"github.com/gostone/gostone/assert"
)

// State is the canonical state table. It records which codes are pressed,
// the most recent code to be pressed and the most recent character to be
// typed.
//
// The zero value is ready to use and has nothing pressed.
type State struct {
	pressed [NumCodes / 64]uint64

	// LastCode is the code most recently pressed. None if nothing has been
	// pressed since the last reset or if it has been cleared.
	LastCode Code

	// LastChar is the character most recently typed. Zero if no character
	// has been typed since the last reset.
	LastChar rune
}

// Set the pressed state of code. The None code cannot be pressed.
func (st *State) Set(code Code, pressed bool) {
	if code == None {
		assert.True(false, "scancode: setting the None code")
		return
	}
	if pressed {
		st.pressed[code>>6] |= 1 << (code & 63)
	} else {
		st.pressed[code>>6] &^= 1 << (code & 63)
	}
}

// Get returns true if the code is pressed. Always returns false for the None
// code.
func (st *State) Get(code Code) bool {
	if code == None {
		return false
	}
	return st.pressed[code>>6]&(1<<(code&63)) != 0
}

// Clear releases the code. If the code is also the most recent code then
// LastCode is set to None.
func (st *State) Clear(code Code) {
	if code == None {
		return
	}
	st.Set(code, false)
	if st.LastCode == code {
		st.LastCode = None
	}
}

// ClearPressed releases every code without affecting LastCode or LastChar.
func (st *State) ClearPressed() {
	for i := range st.pressed {
		st.pressed[i] = 0
	}
}

// Reset releases every code and forgets the most recent code and character.
func (st *State) Reset() {
	st.ClearPressed()
	st.LastCode = None
	st.LastChar = 0
}

// Any returns true if any code is pressed.
func (st *State) Any() bool {
	for _, p := range st.pressed {
		if p != 0 {
			return true
		}
	}
	return false
}

// Pressed returns the list of pressed codes in ascending order. Allocates and
// so should not be used in the per-frame path.
func (st *State) Pressed() []Code {
	var p []Code
	for c := 1; c < NumCodes; c++ {
		if st.Get(Code(c)) {
			p = append(p, Code(c))
		}
	}
	return p
}
