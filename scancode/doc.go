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

// Package scancode defines the canonical code space shared by every input
// device. A Code is an eight bit value and the code space is divided into
// ranges:
//
//	0x00        the None sentinel
//	0x01 - 0x59 keyboard
//	0x64 - 0x6a pointer buttons and wheel
//	0x80 - 0x8d joystick axis directions (two codes per axis)
//	0x90 - 0xaf joystick buttons
//
// The State type records what is pressed in the code space. It is written to
// by the device normalisers and read by the binding table and the wait
// primitives.
package scancode
