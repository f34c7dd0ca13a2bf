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

package keyboard_test

import (
	"testing"

	"github.com/gostone/gostone/keyboard"
	"github.com/gostone/gostone/scancode"
	"github.com/gostone/gostone/test"
	"github.com/gostone/gostone/userinput"
)

func TestMapKey(t *testing.T) {
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyW), scancode.W)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyReturn), scancode.Return)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyKpEnter), scancode.Return)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyLCtrl), scancode.Control)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyRCtrl), scancode.Control)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyRAlt), scancode.Alt)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyF11), scancode.F11)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyPause), scancode.Pause)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyKpDivide), scancode.Slash)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyKpMinus), scancode.KeypadMinus)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyKpA), scancode.A)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyComma), scancode.Comma)
}

func TestKeypadNavigation(t *testing.T) {
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyKp8), scancode.UpArrow)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyKp2), scancode.DownArrow)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyKp4), scancode.LeftArrow)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyKp6), scancode.RightArrow)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyKp7), scancode.Home)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyKp1), scancode.End)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyKp9), scancode.PageUp)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyKp3), scancode.PageDown)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyKp0), scancode.Insert)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyKpComma), scancode.Delete)
}

func TestUnmappedKeys(t *testing.T) {
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyUnknown), scancode.None)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyKp5), scancode.None)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyLGUI), scancode.None)
	test.ExpectEquality(t, keyboard.MapKey(userinput.KeyMode), scancode.None)
}

func TestMapCharLetters(t *testing.T) {
	none := userinput.KeyModNone
	shift := userinput.KeyModLShift
	caps := userinput.KeyModCaps

	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyA, none, false), 'a')
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyA, shift, false), 'A')
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyA, caps, false), 'A')

	// shift and caps lock cancel each other out
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyA, shift|caps, false), 'a')

	// forced upper case ignores the shift/caps combination
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyZ, none, true), 'Z')
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyZ, shift|caps, true), 'Z')
}

func TestMapCharSymbols(t *testing.T) {
	shift := userinput.KeyModRShift

	test.ExpectEquality(t, keyboard.MapChar(userinput.Key1, shift, false), '!')
	test.ExpectEquality(t, keyboard.MapChar(userinput.Key1, userinput.KeyModNone, false), '1')
	test.ExpectEquality(t, keyboard.MapChar(userinput.Key0, shift, false), ')')
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeySlash, shift, false), '?')
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyBackQuote, shift, false), '~')
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyQuote, shift, false), '"')

	// caps lock does not affect symbols
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyMinus, userinput.KeyModCaps, false), '-')
}

func TestMapCharControl(t *testing.T) {
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyReturn, userinput.KeyModNone, false), '\r')
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyEscape, userinput.KeyModLShift, false), rune(0x1b))
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeySpace, userinput.KeyModNone, false), ' ')
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyDelete, userinput.KeyModNone, false), rune(0x7f))

	// modifiers suppress characters entirely
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyA, userinput.KeyModLCtrl, false), rune(0))
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyReturn, userinput.KeyModRAlt, false), rune(0))
	test.ExpectEquality(t, keyboard.MapChar(userinput.Key1, userinput.KeyModLGUI, false), rune(0))

	// keys that type nothing
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyF1, userinput.KeyModNone, false), rune(0))
	test.ExpectEquality(t, keyboard.MapChar(userinput.KeyUp, userinput.KeyModNone, false), rune(0))
}

func TestPressed(t *testing.T) {
	down := userinput.EventKeyboard{Key: userinput.KeyW, Down: true}
	test.ExpectSuccess(t, keyboard.Pressed(scancode.W, down))

	up := userinput.EventKeyboard{Key: userinput.KeyW, Down: false}
	test.ExpectFailure(t, keyboard.Pressed(scancode.W, up))

	// releasing left ctrl while right ctrl is held keeps control pressed
	ev := userinput.EventKeyboard{Key: userinput.KeyLCtrl, Down: false, Mod: userinput.KeyModRCtrl}
	test.ExpectSuccess(t, keyboard.Pressed(scancode.Control, ev))

	ev = userinput.EventKeyboard{Key: userinput.KeyLAlt, Down: true, Mod: userinput.KeyModNone}
	test.ExpectFailure(t, keyboard.Pressed(scancode.Alt, ev))
}
