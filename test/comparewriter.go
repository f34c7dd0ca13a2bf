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

package test

import "bytes"

// CompareWriter collects everything written to it so that it can be compared
// with the expected output.
type CompareWriter struct {
	buf bytes.Buffer
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (int, error) {
	return tw.buf.Write(p)
}

// Clear forgets everything that has been written.
func (tw *CompareWriter) Clear() {
	tw.buf.Reset()
}

// Compare returns true if the output so far is exactly s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.buf.String() == s
}

func (tw *CompareWriter) String() string {
	return tw.buf.String()
}
