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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns that callers are expected to test for should be
// stored as exported const strings. For example:
//
//	const InvalidAxis = "invalid axis: %d"
//
//	e := curated.Errorf(InvalidAxis, 7)
//
//	if curated.Is(e, InvalidAxis) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("joystick: %v", e)
//
//	if curated.Has(f, InvalidAxis) {
//		fmt.Println("true")
//	}
//
// Is() called with f and InvalidAxis returns false because error f does not
// match that pattern. It is "wrapped" inside the pattern "joystick: %v".
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' depending on how we choose to handle the result.
//
// The Error() function ensures that the error chain does not contain
// duplicate adjacent parts. For example, this:
//
//	e := curated.Errorf("bindings: %v", curated.Errorf("bindings: unknown action"))
//
// prints as "bindings: unknown action" and not "bindings: bindings: unknown
// action". Chains are thought of as being composed of parts separated by the
// sub-string ': '.
//
// Curated errors also work with the errors package in the standard library.
// Any error value passed to Errorf() is returned by Unwrap().
package curated
