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

// Package keyboard translates keyboard events into the canonical code space.
//
// MapKey() gives the code for a key and MapChar() gives the character typed,
// taking into account the shift and caps lock state. The keypad digits are
// treated as the navigation keys they double as, regardless of the num lock
// state.
//
// Pressed() decides the pressed state of a code for an event. The Alt and
// Control codes are shared by the left and right keys and so their state
// follows the modifier state carried by the event rather than the individual
// key.
package keyboard
