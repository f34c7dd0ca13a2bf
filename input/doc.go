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

// Package input is the input subsystem. It brings together the keyboard,
// pointer and joystick normalisers, the binding table and the pointer
// capture state machine behind the Manager type.
//
// The Manager is created with the collaborators it needs from the platform
// and then started:
//
//	m, err := input.NewManager(input.Collaborators{
//		Source:  src,
//		Clock:   clk,
//		Grabber: grabber,
//		Muter:   muter,
//		Prober:  prober,
//		Quit:    quit,
//	}, reg)
//	if err != nil {
//		return err
//	}
//	m.Startup()
//	defer m.Shutdown()
//
// Each frame the application calls Pump() and then queries the state:
//
//	m.Pump()
//	if m.IsActionActive(bindings.Attack) {
//		fire()
//	}
//
// The wait primitives StartAcknowledge(), CheckAcknowledge(), Acknowledge(),
// WaitForPrintableCharacter() and WaitForUserInput() call Pump() themselves.
//
// Everything happens on the goroutine that called Startup(). There are no
// background goroutines and no locks. The wait primitives are busy loops,
// with WaitForUserInput() pausing for one frame between every check.
//
// Changes of window focus clear all state. The pointer is released when
// focus is lost and captured again when focus is regained if it was captured
// before.
package input
