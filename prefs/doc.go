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

// Package prefs holds typed preference values. The Bool, Int, String and Float
// types can be set from native values or from strings and can have hook
// functions attached which run before and after a value is changed. A pre hook
// that returns an error prevents the change, which is the usual way of
// validating a value.
//
// Preference values are gathered into a Registry under a unique key. Adding
// a value to a registry consults the command line stack, so that any value
// can be overridden from the command line with a prefs string of the form:
//
//	key::value; key::value
//
// Preferences are not persisted.
package prefs
