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

package prefs

import (
	"maps"
	"slices"
	"strings"
)

// overrides is a group of preference values given on the command line. the
// string form is a list of key/value pairs:
//
//	"joystick.deadzone.0::4; input.forceupper::true"
type overrides map[string]string

func parseOverrides(s string) overrides {
	o := make(overrides)
	for _, pair := range strings.Split(s, ";") {
		key, value, ok := strings.Cut(pair, "::")
		if !ok || strings.Contains(value, "::") {
			continue
		}
		o[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return o
}

func (o overrides) String() string {
	pairs := make([]string, 0, len(o))
	for _, key := range slices.Sorted(maps.Keys(o)) {
		pairs = append(pairs, key+"::"+o[key])
	}
	return strings.Join(pairs, "; ")
}

// only the group at the top of the stack is visible to Registry.Add()
var commandLine []overrides

// PushCommandLineStack parses the prefs string and makes it the active group
// of overrides. Malformed pairs are ignored.
func PushCommandLineStack(prefs string) {
	commandLine = append(commandLine, parseOverrides(prefs))
}

// PopCommandLineStack discards the active group of overrides. The overrides
// that were never consumed are returned in the prefs string format, sorted by
// key.
func PopCommandLineStack() string {
	n := len(commandLine)
	if n == 0 {
		return ""
	}
	top := commandLine[n-1]
	commandLine = commandLine[:n-1]
	return top.String()
}

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	return len(commandLine)
}

// GetCommandLinePref consumes the override for key in the active group.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLine) == 0 {
		return false, nil
	}
	top := commandLine[len(commandLine)-1]
	v, ok := top[key]
	if !ok {
		return false, nil
	}
	delete(top, key)
	return true, v
}
