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

// Package userinput describes input from real hardware in a way that is
// independent of the platform in use. Each platform backend translates its
// native events into the Event types defined here and makes them available
// through the EventSource interface.
//
// Keys are identified by the Key type. Keys that produce a printable
// character have the value of that character as typed without shift. Other
// keys have values above the range of any character.
//
// The platform backend in use during development was SDL and so there will be
// a bias towards that system.
package userinput
