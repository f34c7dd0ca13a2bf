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

// Package assert contains checks for programming errors. The checks are only
// compiled into the program when the "assertions" build tag is specified:
//
//	go build -tags assertions .
//
// Without the tag every function in the package is a no-op and the compiler
// will remove the calls entirely.
//
// A failed assertion panics. Assertions are not a substitute for error
// handling and should only be used to check for conditions that indicate a
// bug in the calling code, such as calling a single-threaded component from
// the wrong goroutine.
package assert
