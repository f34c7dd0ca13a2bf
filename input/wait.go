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

// StartAcknowledge prepares for CheckAcknowledge(). All state is cleared and
// the pointer buttons that are held are noted. A held pointer button must be
// released and pressed again before it acknowledges.
func (m *Manager) StartAcknowledge() {
	m.checkOwner()
	m.state.Reset()
	m.ackButtons = pointer.Buttons(&m.state)
}

// CheckAcknowledge processes pending events and returns true if a code has
// been pressed or a pointer button has been pressed since StartAcknowledge().
func (m *Manager) CheckAcknowledge() bool {
	m.Pump()

	if m.state.LastCode != scancode.None {
		return true
	}

	buttons := pointer.Buttons(&m.state)
	for bit := uint8(1); bit != 0; bit <<= 1 {
		if buttons&bit == bit {
			if m.ackButtons&bit == 0 {
				return true
			}
		} else {
			m.ackButtons &^= bit
		}
	}

	return false
}

// Acknowledge blocks until a code or pointer button is pressed. The calling
// goroutine spins without sleeping.
func (m *Manager) Acknowledge() {
	m.StartAcknowledge()
	for !m.CheckAcknowledge() {
	}
}

// WaitForPrintableCharacter blocks until a character is typed and returns it.
// The calling goroutine spins without sleeping.
func (m *Manager) WaitForPrintableCharacter() rune {
	m.checkOwner()
	for m.state.LastChar == 0 {
		m.Pump()
	}
	ch := m.state.LastChar
	m.state.LastChar = 0
	return ch
}

// WaitForUserInput waits for at most maxTicks for a code or pointer button to
// be pressed. One frame passes before every check. Returns true if input was
// detected.
func (m *Manager) WaitForUserInput(maxTicks uint32) bool {
	lasttime := m.col.Clock.Ticks()
	m.StartAcknowledge()
	for {
		m.col.Clock.WaitFrame()
		if m.CheckAcknowledge() {
			return true
		}
		if m.col.Clock.Ticks()-lasttime >= maxTicks {
			return false
		}
	}
}
