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

// Package bindings maps logical actions to the codes of the canonical code
// space.
//
// Every Action has a Binding of up to three codes. An action is active if any
// of its codes is pressed. Unused entries in a Binding are scancode.None,
// which is never pressed, so an action with no codes bound is never active.
//
// The default bindings put keyboard and mouse codes in the first two slots
// and joystick axis codes in the last slot.
//
// Bindings can be changed from the command line with a string of overrides,
// parsed by Table.ParseOverrides(). The comma key must be given in the
// hexadecimal form because the comma separates codes:
//
//	weapon_7=0x33 | use=space,mouse 2
package bindings
