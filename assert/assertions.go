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

//go:build assertions

package assert

import "fmt"

// Enabled is true when the assertions build tag has been specified.
const Enabled = true

// True panics with msg if cond is false.
func True(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("assertion failed: %s", fmt.Sprintf(msg, args...)))
	}
}

// SameGoroutine panics if the calling goroutine is not the goroutine
// identified by owner. An owner of zero means no owner has been recorded and
// the assertion always succeeds.
func SameGoroutine(owner uint64, component string) {
	if owner == 0 {
		return
	}
	if id := GoroutineID(); id != owner {
		panic(fmt.Sprintf("assertion failed: %s called from goroutine %d (owner is %d)", component, id, owner))
	}
}

// Owner returns the ID of the calling goroutine.
func Owner() uint64 {
	return GoroutineID()
}
