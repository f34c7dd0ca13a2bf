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
	"github.com/gostone/gostone/bindings"
	"github.com/gostone/gostone/keyboard"
	"github.com/gostone/gostone/logger"
	"github.com/gostone/gostone/pointer"
	"github.com/gostone/gostone/scancode"
	"github.com/gostone/gostone/userinput"
)

// Pump processes every event waiting in the event source and updates the
// canonical state. It never blocks.
//
// Pump must be called before any query that expects the state to be fresh.
// The wait primitives call Pump themselves.
func (m *Manager) Pump() {
	m.checkOwner()

	m.col.Source.PumpEvents()
	for ev := m.col.Source.PollEvent(); ev != nil; ev = m.col.Source.PollEvent() {
		m.handleEvent(ev)
	}
}

func (m *Manager) handleEvent(ev userinput.Event) {
	switch ev := ev.(type) {
	case userinput.EventKeyboard:
		m.handleKeyboard(ev)

	case userinput.EventMouseButton:
		if m.pointer.Button(&m.state, ev) && ev.Down {
			m.state.LastCode = pointer.MapButton(ev.Button)
		}

	case userinput.EventMouseMotion:
		m.pointer.Motion(ev)

	case userinput.EventMouseWheel:
		m.pointer.Wheel(&m.state, ev)

	case userinput.EventWindowFocus:
		if ev.Gained {
			m.capture.FocusGained()
		} else {
			m.capture.FocusLost()
		}
		m.resetState()

	case userinput.EventJoystick:
		m.pollJoystick()

	case userinput.EventDeviceAdded:
		if !m.joystick.IsAttached() {
			m.openJoystick()
		}

	case userinput.EventDeviceRemoved:
		// the removed device may not be the attached device. reopening will
		// find the attached device again if it is still connected
		m.joystick.Detach(&m.state)
		m.releaseStart()
		m.openJoystick()

	case userinput.EventQuit:
		logger.Log(logger.Allow, "input", "quit requested")
		if m.col.Quit != nil {
			m.col.Quit()
		}
	}
}

func (m *Manager) handleKeyboard(ev userinput.EventKeyboard) {
	code := keyboard.MapKey(ev.Key)
	if code == scancode.None {
		return
	}

	m.state.Set(code, keyboard.Pressed(code, ev))

	if !ev.Down {
		return
	}

	if slot := m.bindings.Matches(bindings.GrabMouse, code); slot == 0 || slot == 1 {
		m.capture.Toggle()
	}

	m.state.LastCode = code
	if ch := keyboard.MapChar(ev.Key, ev.Mod, m.Prefs.ForceUpper.Get().(bool)); ch != 0 {
		m.state.LastChar = ch
	}
}

// the controller Start button presses the Escape key and requests the menu.
func (m *Manager) pollJoystick() {
	start := m.joystick.Poll(&m.state)

	if start && !m.start {
		m.state.Set(scancode.Escape, true)
		m.state.LastCode = scancode.Escape
		m.menuRequested = true
	} else if !start && m.start {
		m.state.Set(scancode.Escape, false)
	}

	m.start = start
}

func (m *Manager) releaseStart() {
	if m.start {
		m.state.Set(scancode.Escape, false)
		m.start = false
	}
}
