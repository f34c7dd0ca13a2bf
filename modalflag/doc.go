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

// Package modalflag wraps the flag package from the standard library. It adds
// program modes, each with its own set of flags.
//
// Arguments are given once with NewArgs() and then parsed a layer at a time.
// The first layer might select the platform:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SDL", "GLFW", "TERMINAL")
//	verbose := md.AddBool("log", false, "echo log to stdout")
//
//	p, err := md.Parse()
//	if err != nil || p != modalflag.ParseContinue {
//		return err
//	}
//
// A sub-mode is selected by naming it after the flags. If it is not named then
// the first sub-mode is used. The flags for the selected mode are then parsed
// after a call to NewMode():
//
//	switch md.Mode() {
//	case "TERMINAL":
//		md.NewMode()
//		md.AddPrefs()
//		p, err = md.Parse()
//		...
//	}
//
// Sub-mode names are not case sensitive.
package modalflag
