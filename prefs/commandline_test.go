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

package prefs_test

import (
	"testing"

	"github.com/gostone/gostone/prefs"
	"github.com/gostone/gostone/test"
)

func TestCommandLineParsing(t *testing.T) {
	groups := []struct {
		prefs    string
		unused   string
		describe string
	}{
		{prefs: "", unused: "", describe: "empty"},
		{prefs: "input.forceupper::true", unused: "input.forceupper::true", describe: "single pair"},
		{prefs: "  input.forceupper::  true ", unused: "input.forceupper::true", describe: "white space"},
		{prefs: "sound.volume::-2; input.forceupper::true", unused: "input.forceupper::true; sound.volume::-2", describe: "sorted"},
		{prefs: "input.forceupper", unused: "", describe: "no separator"},
		{prefs: "a::b::c; sound.volume::1", unused: "sound.volume::1", describe: "too many separators"},
		{prefs: "input.bindings::forward=w,up | attack=mouse 1", unused: "input.bindings::forward=w,up | attack=mouse 1", describe: "bindings"},
	}

	for _, g := range groups {
		prefs.PushCommandLineStack(g.prefs)
		test.ExpectEquality(t, prefs.PopCommandLineStack(), g.unused, g.describe)
	}

	// popping an empty stack is harmless
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("joystick.deadzone.0::4")
	prefs.PushCommandLineStack("joystick.deadzone.1::6")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the top group is visible
	ok, _ := prefs.GetCommandLinePref("joystick.deadzone.0")
	test.ExpectFailure(t, ok)

	ok, v := prefs.GetCommandLinePref("joystick.deadzone.1")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "6")

	// consumed
	ok, _ = prefs.GetCommandLinePref("joystick.deadzone.1")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "joystick.deadzone.0::4")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	ok, _ = prefs.GetCommandLinePref("joystick.deadzone.0")
	test.ExpectFailure(t, ok)
}
