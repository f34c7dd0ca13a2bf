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

// Package joystick digitises joysticks and game controllers into the
// canonical code space.
//
// Every axis produces two codes, one for each direction. An axis direction
// is pressed when the axis sample in that direction exceeds the deadzone
// threshold, which is calculated from the deadzone preference for the axis:
//
//	threshold = clamp(deadzone * 0x7fff / 20, 0, 0x7fff)
//
// With the default deadzone of 2 the threshold is 3276.
//
// Buttons are mapped to the joystick button codes. Legacy joysticks with
// fewer than 28 buttons report the hat as the first four buttons (up, right,
// down, left) and the physical buttons follow. Controller class devices
// report their buttons in the standard controller order, with the exception
// of the Start button which is reported by the return value of Poll().
//
// The axes of controller class devices are presented in the same order as
// legacy joysticks. This means that the right stick axes are swapped.
package joystick
