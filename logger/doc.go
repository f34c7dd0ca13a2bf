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

// Package logger is the central log for the input layer and its platform
// backends. Log entries are tagged with the name of the component making the
// entry:
//
//	logger.Log(logger.Allow, "joystick", "no device found")
//	logger.Logf(logger.Allow, "sdl", "gamepad: %s", name)
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count. The central log holds a fixed number of entries, older
// entries being dropped as new ones arrive.
//
// The Permission argument lets a caller decide at runtime whether an entry
// should be made at all.
package logger
