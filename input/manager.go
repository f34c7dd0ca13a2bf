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
	"fmt"

	"github.com/gostone/gostone/assert"
	"github.com/gostone/gostone/bindings"
	"github.com/gostone/gostone/capture"
	"github.com/gostone/gostone/clock"
	"github.com/gostone/gostone/joystick"
	"github.com/gostone/gostone/logger"
	"github.com/gostone/gostone/pointer"
	"github.com/gostone/gostone/prefs"
	"github.com/gostone/gostone/scancode"
	"github.com/gostone/gostone/userinput"
)

// Collaborators are the external dependencies of the Manager.
type Collaborators struct {
	// required
	Source  userinput.EventSource
	Clock   clock.Clock
	Grabber capture.Grabber

	// optional
	Muter  capture.Muter
	Prober joystick.Prober
	Quit   func()
}

// Manager is the input subsystem. It owns the canonical state table, the
// binding table, the pointer capture state machine and the joystick.
//
// Manager functions must be called from the goroutine that called Startup().
// This is checked when the program is built with the assertions tag.
type Manager struct {
	col Collaborators

	// Prefs can be changed at any time
	Prefs *Prefs

	state    scancode.State
	bindings *bindings.Table
	capture  *capture.Capture
	pointer  *pointer.Pointer
	joystick *joystick.Joystick

	started bool
	owner   uint64

	// the pointer buttons at the start of an acknowledgement. a bit is cleared
	// when the button is released
	ackButtons uint8

	// the state of the controller Start button at the previous poll
	start bool

	// set when the controller Start button is pressed. cleared by
	// MenuRequested()
	menuRequested bool
}

// NewManager is the preferred method of initialisation for the Manager type.
// The preferences are added to the registry if one is supplied.
func NewManager(col Collaborators, reg *prefs.Registry) (*Manager, error) {
	if col.Source == nil {
		return nil, fmt.Errorf("input: no event source")
	}
	if col.Clock == nil {
		return nil, fmt.Errorf("input: no clock")
	}
	if col.Grabber == nil {
		return nil, fmt.Errorf("input: no pointer grabber")
	}

	m := &Manager{
		col:      col,
		bindings: &bindings.Table{},
		capture:  capture.NewCapture(col.Grabber, col.Muter),
	}
	m.pointer = pointer.NewPointer(m.capture)

	var err error
	m.Prefs, err = newPrefs(reg)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	m.joystick = joystick.NewJoystick(m.Prefs.Joystick)

	return m, nil
}

// Startup prepares the input subsystem for use. The default bindings are
// installed, followed by any binding overrides in the preferences, and the
// first available joystick is opened.
//
// Calling Startup() on a started Manager does nothing.
func (m *Manager) Startup() {
	if m.started {
		return
	}

	m.owner = assert.Owner()
	m.started = true

	m.state.Reset()
	m.pointer.ClearDelta()
	m.PopulateDefaults()

	if ov := m.Prefs.Bindings.String(); ov != "" {
		if err := m.bindings.ParseOverrides(ov); err != nil {
			logger.Log(logger.Allow, "input", err)
		} else {
			logger.Logf(logger.Allow, "input", "binding overrides applied: %s", ov)
		}
	}

	m.openJoystick()
}

// Shutdown clears all state and closes the joystick. The pointer is
// released.
//
// Calling Shutdown() on a Manager that has not been started does nothing.
func (m *Manager) Shutdown() {
	if !m.started {
		return
	}
	m.checkOwner()

	m.joystick.Detach(&m.state)
	m.capture.Request(false)
	m.state.Reset()
	m.pointer.ClearDelta()
	m.start = false
	m.menuRequested = false

	m.started = false
	m.owner = 0
}

// IsStarted returns true if Startup() has been called and Shutdown() has not.
func (m *Manager) IsStarted() bool {
	return m.started
}

func (m *Manager) checkOwner() {
	assert.SameGoroutine(m.owner, "input.Manager")
}

func (m *Manager) openJoystick() {
	if m.col.Prober == nil {
		return
	}

	dev := m.col.Prober.OpenDevice()
	if dev == nil {
		logger.Log(logger.Allow, "input", "no joystick found")
		return
	}

	m.joystick.Attach(dev)
}

// resetState is called on every change of window focus.
func (m *Manager) resetState() {
	m.state.Reset()
	m.pointer.ClearDelta()
}
