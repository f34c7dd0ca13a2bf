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

package input

import (
	"github.com/gostone/gostone/bindings"
	"github.com/gostone/gostone/joystick"
	"github.com/gostone/gostone/prefs"
)

// Prefs are the preferences of the input subsystem.
type Prefs struct {
	// typed characters are always upper case
	ForceUpper prefs.Bool

	// binding overrides applied at startup. see bindings.ParseOverrides()
	// for the format
	Bindings prefs.String

	Joystick *joystick.Prefs
}

func newPrefs(reg *prefs.Registry) (*Prefs, error) {
	p := &Prefs{}

	p.Bindings.SetHookPre(func(v prefs.Value) error {
		var tab bindings.Table
		return tab.ParseOverrides(v.(string))
	})

	if reg != nil {
		if err := reg.Add("input.forceupper", &p.ForceUpper); err != nil {
			return nil, err
		}
		if err := reg.Add("input.bindings", &p.Bindings); err != nil {
			return nil, err
		}
	}

	var err error
	p.Joystick, err = joystick.NewPrefs(reg)
	if err != nil {
		return nil, err
	}

	return p, nil
}
