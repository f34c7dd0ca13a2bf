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

package keyboard

import (
	"github.com/gostone/gostone/scancode"
	"github.com/gostone/gostone/userinput"
)

// the character produced by a key when shift is held. keys without an entry
// produce their own character whether shift is held or not.
var shifted = map[userinput.Key]rune{
	userinput.Key1:            '!',
	userinput.Key2:            '@',
	userinput.Key3:            '#',
	userinput.Key4:            '$',
	userinput.Key5:            '%',
	userinput.Key6:            '^',
	userinput.Key7:            '&',
	userinput.Key8:            '*',
	userinput.Key9:            '(',
	userinput.Key0:            ')',
	userinput.KeyMinus:        '_',
	userinput.KeyEquals:       '+',
	userinput.KeyLeftBracket:  '{',
	userinput.KeyRightBracket: '}',
	userinput.KeySemicolon:    ':',
	userinput.KeyQuote:        '"',
	userinput.KeyBackQuote:    '~',
	userinput.KeyBackslash:    '|',
	userinput.KeyComma:        '<',
	userinput.KeyPeriod:       '>',
	userinput.KeySlash:        '?',
}

// MapChar returns the character typed by the key with the given modifiers. If
// forceUpper is true then letters are always upper case. Returns zero if the
// key does not type a character.
func MapChar(key userinput.Key, mod userinput.KeyMod, forceUpper bool) rune {
	if mod.Has(userinput.KeyModCtrl | userinput.KeyModAlt | userinput.KeyModGUI | userinput.KeyModMode) {
		return 0
	}

	switch key {
	case userinput.KeyEscape, userinput.KeyBackspace, userinput.KeyTab,
		userinput.KeyReturn, userinput.KeySpace, userinput.KeyDelete:
		return rune(key)
	}

	shift := mod.Has(userinput.KeyModShift)

	if key >= userinput.KeyA && key <= userinput.KeyZ {
		upper := forceUpper
		if !upper {
			upper = mod.Has(userinput.KeyModCaps) != shift
		}
		if upper {
			return rune(key) - 'a' + 'A'
		}
		return rune(key)
	}

	if s, ok := shifted[key]; ok {
		if shift {
			return s
		}
		return rune(key)
	}

	return 0
}

// Pressed returns the pressed state of code for the event. The Alt and
// Control codes are pressed for as long as either of the left or right keys
// are held, according to the modifier state of the event.
func Pressed(code scancode.Code, ev userinput.EventKeyboard) bool {
	switch code {
	case scancode.Alt:
		return ev.Mod.Has(userinput.KeyModAlt)
	case scancode.Control:
		return ev.Mod.Has(userinput.KeyModCtrl)
	}
	return ev.Down
}
