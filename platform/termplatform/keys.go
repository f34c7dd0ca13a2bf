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

package termplatform

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/gostone/gostone/userinput"
)

// tcell keys that are not runes.
var keys = map[tcell.Key]userinput.Key{
	tcell.KeyEscape:     userinput.KeyEscape,
	tcell.KeyEnter:      userinput.KeyReturn,
	tcell.KeyTab:        userinput.KeyTab,
	tcell.KeyBacktab:    userinput.KeyTab,
	tcell.KeyBackspace:  userinput.KeyBackspace,
	tcell.KeyBackspace2: userinput.KeyBackspace,
	tcell.KeyDelete:     userinput.KeyDelete,
	tcell.KeyInsert:     userinput.KeyInsert,
	tcell.KeyUp:         userinput.KeyUp,
	tcell.KeyDown:       userinput.KeyDown,
	tcell.KeyLeft:       userinput.KeyLeft,
	tcell.KeyRight:      userinput.KeyRight,
	tcell.KeyHome:       userinput.KeyHome,
	tcell.KeyEnd:        userinput.KeyEnd,
	tcell.KeyPgUp:       userinput.KeyPageUp,
	tcell.KeyPgDn:       userinput.KeyPageDown,
	tcell.KeyPrint:      userinput.KeyPrintScreen,
	tcell.KeyPause:      userinput.KeyPause,
	tcell.KeyF1:         userinput.KeyF1,
	tcell.KeyF2:         userinput.KeyF2,
	tcell.KeyF3:         userinput.KeyF3,
	tcell.KeyF4:         userinput.KeyF4,
	tcell.KeyF5:         userinput.KeyF5,
	tcell.KeyF6:         userinput.KeyF6,
	tcell.KeyF7:         userinput.KeyF7,
	tcell.KeyF8:         userinput.KeyF8,
	tcell.KeyF9:         userinput.KeyF9,
	tcell.KeyF10:        userinput.KeyF10,
	tcell.KeyF11:        userinput.KeyF11,
	tcell.KeyF12:        userinput.KeyF12,
}

// terminals report the shifted character rather than the key. this is the
// US layout, which is also what the keyboard package assumes.
var unshifted = map[rune]rune{
	'~': '`', '!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0', '_': '-',
	'+': '=', '{': '[', '}': ']', '|': '\\', ':': ';', '"': '\'',
	'<': ',', '>': '.', '?': '/',
}

// translateKey returns the userinput.Key for the key event. The shift
// modifier is added to the returned modifiers if it was needed to produce the
// character.
func translateKey(ev *tcell.EventKey) (userinput.Key, userinput.KeyMod) {
	mod := translateMod(ev.Modifiers())

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			return userinput.Key(unicode.ToLower(r)), mod | userinput.KeyModLShift
		}
		if u, ok := unshifted[r]; ok {
			return userinput.Key(u), mod | userinput.KeyModLShift
		}
		if r >= ' ' && r < 0x7f {
			return userinput.Key(r), mod
		}
		return userinput.KeyUnknown, mod
	}

	if k, ok := keys[ev.Key()]; ok {
		return k, mod
	}

	// the control keys that do not have a name of their own
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return userinput.Key('a' + rune(ev.Key()-tcell.KeyCtrlA)), mod | userinput.KeyModLCtrl
	}

	return userinput.KeyUnknown, mod
}

// translateMod returns the userinput.KeyMod for the tcell modifiers.
// terminals do not say which side the modifier key is on.
func translateMod(mod tcell.ModMask) userinput.KeyMod {
	var m userinput.KeyMod
	if mod&tcell.ModShift != 0 {
		m |= userinput.KeyModLShift
	}
	if mod&tcell.ModCtrl != 0 {
		m |= userinput.KeyModLCtrl
	}
	if mod&tcell.ModAlt != 0 {
		m |= userinput.KeyModLAlt
	}
	if mod&tcell.ModMeta != 0 {
		m |= userinput.KeyModLGUI
	}
	return m
}
