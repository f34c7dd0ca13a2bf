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
	"fmt"
	"testing"

	"github.com/gostone/gostone/prefs"
	"github.com/gostone/gostone/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.String(), "true")

	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set("True"))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectFailure(t, v.Set(10))

	v.SetDefault(true)
	test.ExpectSuccess(t, v.Set(false))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), true)
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.Get().(int), 0)

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.String(), "10")

	test.ExpectSuccess(t, v.Set(" 20"))
	test.ExpectEquality(t, v.Get().(int), 20)

	test.ExpectFailure(t, v.Set("twenty"))
	test.ExpectEquality(t, v.Get().(int), 20)

	test.ExpectFailure(t, v.Set(1.5))

	v.SetDefault(2)
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(int), 2)
}

func TestFloatAndString(t *testing.T) {
	var f prefs.Float
	test.ExpectSuccess(t, f.Set("0.5"))
	test.ExpectEquality(t, f.String(), "0.500")
	test.ExpectSuccess(t, f.Set(2))
	test.ExpectEquality(t, f.Get().(float64), 2.0)

	var s prefs.String
	s.SetMaxLen(5)
	test.ExpectSuccess(t, s.Set("forward::w"))
	test.ExpectEquality(t, s.String(), "forwa")
	s.SetDefault("x")
	test.ExpectSuccess(t, s.Reset())
	test.ExpectEquality(t, s.Get().(string), "x")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// rejected by pre hook. value and post hook unaffected
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestRegistry(t *testing.T) {
	r := prefs.NewRegistry("test")

	var a prefs.Int
	var b prefs.Bool
	a.SetDefault(2)

	test.ExpectSuccess(t, r.Add("joystick.deadzone.0", &a))
	test.ExpectSuccess(t, r.Add("input.forceupper", &b))
	test.ExpectFailure(t, r.Add("input.forceupper", &b))
	test.ExpectFailure(t, r.Add("bad key", &b))
	test.ExpectFailure(t, r.Add("bad::key", &b))

	test.ExpectSuccess(t, r.Set("joystick.deadzone.0", "7"))
	v, ok := r.Get("joystick.deadzone.0")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(int), 7)

	test.ExpectFailure(t, r.Set("nonexistent", 1))
	_, ok = r.Get("nonexistent")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, r.String(), "input.forceupper :: false\njoystick.deadzone.0 :: 7\n")

	test.ExpectSuccess(t, r.Reset())
	test.ExpectEquality(t, a.Get().(int), 2)
}

func TestRegistryCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("input.forceupper::true; unused::1")
	defer prefs.PopCommandLineStack()

	r := prefs.NewRegistry("test")
	var b prefs.Bool
	test.ExpectSuccess(t, r.Add("input.forceupper", &b))
	test.ExpectEquality(t, b.Get().(bool), true)

	// an override that fails validation is reported by Add()
	prefs.PushCommandLineStack("joystick.sensitivity.0::abc")
	var i prefs.Int
	test.ExpectFailure(t, r.Add("joystick.sensitivity.0", &i))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
