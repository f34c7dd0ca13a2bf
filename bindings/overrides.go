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

package bindings

import (
	"strings"

	"github.com/gostone/gostone/curated"
	"github.com/gostone/gostone/scancode"
)

// ParseOverrides applies the bindings described by the string to the table.
// Overrides are separated by the pipe character and each override is an
// action name and a list of codes separated by commas:
//
//	forward=w,up | attack=mouse 1
//
// Each action named in the string has its binding replaced by the list of
// codes, which are named as returned by scancode.Code.String(). No more than
// MaxAlternates codes can be listed and an empty list unbinds the action.
//
// The table is unchanged if an error is returned.
func (tab *Table) ParseOverrides(s string) error {
	staged := tab.bindings

	for _, o := range strings.Split(s, "|") {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}

		kv := strings.SplitN(o, "=", 2)
		if len(kv) != 2 {
			return curated.Errorf(InvalidSyntax, o)
		}

		action, ok := LookupAction(kv[0])
		if !ok {
			return curated.Errorf(UnknownAction, strings.TrimSpace(kv[0]))
		}

		var b Binding
		codes := strings.TrimSpace(kv[1])
		if codes != "" {
			for i, n := range strings.Split(codes, ",") {
				if i >= MaxAlternates {
					return curated.Errorf(InvalidSlot, action, i)
				}
				c, ok := scancode.Lookup(n)
				if !ok {
					return curated.Errorf(UnknownCode, strings.TrimSpace(n))
				}
				b[i] = c
			}
		}

		staged[action] = b
	}

	tab.bindings = staged

	return nil
}
