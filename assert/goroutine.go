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

package assert

import (
	"runtime"
	"strconv"
	"strings"
)

// GoroutineID returns the ID of the calling goroutine. The ID is taken from
// the header of the goroutine's stack trace, which makes it expensive. It
// should only be used for assertions and debugging.
func GoroutineID() uint64 {
	var buf [64]byte
	hdr := string(buf[:runtime.Stack(buf[:], false)])

	// "goroutine 18 [running]:"
	f := strings.Fields(hdr)
	if len(f) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(f[1], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
