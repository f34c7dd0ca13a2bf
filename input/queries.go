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
	"github.com/gostone/gostone/assert"
	"github.com/gostone/gostone/bindings"
	"github.com/gostone/gostone/pointer"
	"github.com/gostone/gostone/scancode"
)

// IsPressed returns true if the code is pressed. The state is not refreshed.
func (m *Manager) IsPressed(code scancode.Code) bool {
	m.checkOwner()
	assert.True(code != scancode.None, "input: query of the None code")
	return m.state.Get(code)
}

// Pressed returns the list of pressed codes.
func (m *Manager) Pressed() []scancode.Code {
	m.checkOwner()
	return m.state.Pressed()
}

// ClearKey releases the code. If it is the most recent code to be pressed
// then that is forgotten too.
func (m *Manager) ClearKey(code scancode.Code) {
	m.checkOwner()
	m.state.Clear(code)
}

// ClearKeysDown releases every code and forgets the most recent code and
// character.
func (m *Manager) ClearKeysDown() {
	m.checkOwner()
	m.state.Reset()
}

// LastCode returns the most recently pressed code.
func (m *Manager) LastCode() scancode.Code {
	return m.state.LastCode
}

// LastChar returns the most recently typed character. Zero if no character
// has been typed since the state was last cleared.
func (m *Manager) LastChar() rune {
	return m.state.LastChar
}

// ScanName returns the human readable name of the code.
func (m *Manager) ScanName(code scancode.Code) string {
	return code.String()
}

// IsActionActive returns true if any of the codes bound to the action are
// pressed.
func (m *Manager) IsActionActive(action bindings.Action) bool {
	m.checkOwner()
	return m.bindings.Active(action, &m.state)
}

// ResetActionState releases every code bound to the action.
func (m *Manager) ResetActionState(action bindings.Action) {
	m.checkOwner()
	m.bindings.ResetState(action, &m.state)
}

// PopulateDefaults installs the default bindings and resets the deadzone and
// sensitivity of every joystick axis.
func (m *Manager) PopulateDefaults() {
	m.checkOwner()
	m.bindings.Defaults()
	m.Prefs.Joystick.SetDefaults()
}

// Rebind sets the code in a slot of the action's binding.
func (m *Manager) Rebind(action bindings.Action, slot int, code scancode.Code) error {
	m.checkOwner()
	return m.bindings.Bind(action, slot, code)
}

// Binding returns the codes bound to the action.
func (m *Manager) Binding(action bindings.Action) bindings.Binding {
	return m.bindings.Get(action)
}

// Bindings returns the binding table.
func (m *Manager) Bindings() *bindings.Table {
	return m.bindings
}

// SetDeadzone for the joystick axis.
func (m *Manager) SetDeadzone(axis int, v int) error {
	return m.Prefs.Joystick.SetDeadzone(axis, v)
}

// GetDeadzone for the joystick axis.
func (m *Manager) GetDeadzone(axis int) int {
	return m.Prefs.Joystick.GetDeadzone(axis)
}

// SetSensitivity for the joystick axis.
func (m *Manager) SetSensitivity(axis int, v int) error {
	return m.Prefs.Joystick.SetSensitivity(axis, v)
}

// GetSensitivity for the joystick axis.
func (m *Manager) GetSensitivity(axis int) int {
	return m.Prefs.Joystick.GetSensitivity(axis)
}

// RequestCapture requests the pointer capture state. Returns the resulting
// state.
func (m *Manager) RequestCapture(captured bool) bool {
	m.checkOwner()
	return m.capture.Request(captured)
}

// IsCaptured returns true if the pointer is captured.
func (m *Manager) IsCaptured() bool {
	return m.capture.IsCaptured()
}

// ReadMouseDelta returns the pointer motion since the previous call.
func (m *Manager) ReadMouseDelta() (int, int) {
	m.checkOwner()
	return m.pointer.ReadDelta()
}

// MouseButtons returns the pressed pointer buttons as a bitmask. See the
// pointer package for the meaning of each bit.
func (m *Manager) MouseButtons() uint8 {
	return pointer.Buttons(&m.state)
}

// JoystickPresent returns true if a joystick or controller is attached.
func (m *Manager) JoystickPresent() bool {
	return m.joystick.IsAttached()
}

// JoystickName returns the name of the attached joystick. Empty if there is
// no joystick.
func (m *Manager) JoystickName() string {
	if dev := m.joystick.Device(); dev != nil {
		return dev.Name()
	}
	return ""
}

// JoystickAxis returns the value of the joystick axis. Zero if there is no
// joystick or no such axis.
func (m *Manager) JoystickAxis(axis int) int {
	m.checkOwner()
	return m.joystick.Axis(axis)
}

// JoystickDelta returns the movement of the joystick in the range -128 to
// 127.
func (m *Manager) JoystickDelta() (int, int) {
	m.checkOwner()
	return m.joystick.Delta()
}

// MenuRequested returns true if the controller Start button has been pressed
// since the previous call.
func (m *Manager) MenuRequested() bool {
	r := m.menuRequested
	m.menuRequested = false
	return r
}
