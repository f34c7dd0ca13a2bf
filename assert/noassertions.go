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

//go:build !assertions

package assert

// Enabled is true when the assertions build tag has been specified.
const Enabled = false

// True panics with msg if cond is false.
func True(cond bool, msg string, args ...any) {}

// SameGoroutine panics if the calling goroutine is not the goroutine
// identified by owner.
func SameGoroutine(owner uint64, component string) {}

// Owner returns zero when assertions are disabled.
func Owner() uint64 {
	return 0
}
