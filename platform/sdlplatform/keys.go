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

package sdlplatform

import (
	"github.com/gostone/gostone/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// SDL keycodes for keys that do not produce a character. keycodes below 0x80
// are ASCII and have the same value as the userinput.Key.
var keys = map[sdl.Keycode]userinput.Key{
	sdl.K_CAPSLOCK:      userinput.KeyCapsLock,
	sdl.K_F1:            userinput.KeyF1,
	sdl.K_F2:            userinput.KeyF2,
	sdl.K_F3:            userinput.KeyF3,
	sdl.K_F4:            userinput.KeyF4,
	sdl.K_F5:            userinput.KeyF5,
	sdl.K_F6:            userinput.KeyF6,
	sdl.K_F7:            userinput.KeyF7,
	sdl.K_F8:            userinput.KeyF8,
	sdl.K_F9:            userinput.KeyF9,
	sdl.K_F10:           userinput.KeyF10,
	sdl.K_F11:           userinput.KeyF11,
	sdl.K_F12:           userinput.KeyF12,
	sdl.K_PRINTSCREEN:   userinput.KeyPrintScreen,
	sdl.K_SCROLLLOCK:    userinput.KeyScrollLock,
	sdl.K_PAUSE:         userinput.KeyPause,
	sdl.K_INSERT:        userinput.KeyInsert,
	sdl.K_HOME:          userinput.KeyHome,
	sdl.K_PAGEUP:        userinput.KeyPageUp,
	sdl.K_END:           userinput.KeyEnd,
	sdl.K_PAGEDOWN:      userinput.KeyPageDown,
	sdl.K_RIGHT:         userinput.KeyRight,
	sdl.K_LEFT:          userinput.KeyLeft,
	sdl.K_DOWN:          userinput.KeyDown,
	sdl.K_UP:            userinput.KeyUp,
	sdl.K_NUMLOCKCLEAR:  userinput.KeyNumLock,
	sdl.K_KP_DIVIDE:     userinput.KeyKpDivide,
	sdl.K_KP_MULTIPLY:   userinput.KeyKpMultiply,
	sdl.K_KP_MINUS:      userinput.KeyKpMinus,
	sdl.K_KP_PLUS:       userinput.KeyKpPlus,
	sdl.K_KP_ENTER:      userinput.KeyKpEnter,
	sdl.K_KP_1:          userinput.KeyKp1,
	sdl.K_KP_2:          userinput.KeyKp2,
	sdl.K_KP_3:          userinput.KeyKp3,
	sdl.K_KP_4:          userinput.KeyKp4,
	sdl.K_KP_5:          userinput.KeyKp5,
	sdl.K_KP_6:          userinput.KeyKp6,
	sdl.K_KP_7:          userinput.KeyKp7,
	sdl.K_KP_8:          userinput.KeyKp8,
	sdl.K_KP_9:          userinput.KeyKp9,
	sdl.K_KP_0:          userinput.KeyKp0,
	sdl.K_KP_PERIOD:     userinput.KeyKpPeriod,
	sdl.K_KP_COMMA:      userinput.KeyKpComma,
	sdl.K_KP_LEFTBRACE:  userinput.KeyKpLeftBrace,
	sdl.K_KP_RIGHTBRACE: userinput.KeyKpRightBrace,
	sdl.K_KP_TAB:        userinput.KeyKpTab,
	sdl.K_KP_BACKSPACE:  userinput.KeyKpBackspace,
	sdl.K_KP_A:          userinput.KeyKpA,
	sdl.K_KP_B:          userinput.KeyKpB,
	sdl.K_KP_C:          userinput.KeyKpC,
	sdl.K_KP_D:          userinput.KeyKpD,
	sdl.K_KP_E:          userinput.KeyKpE,
	sdl.K_KP_F:          userinput.KeyKpF,
	sdl.K_KP_SPACE:      userinput.KeyKpSpace,
	sdl.K_LCTRL:         userinput.KeyLCtrl,
	sdl.K_LSHIFT:        userinput.KeyLShift,
	sdl.K_LALT:          userinput.KeyLAlt,
	sdl.K_LGUI:          userinput.KeyLGUI,
	sdl.K_RCTRL:         userinput.KeyRCtrl,
	sdl.K_RSHIFT:        userinput.KeyRShift,
	sdl.K_RALT:          userinput.KeyRAlt,
	sdl.K_RGUI:          userinput.KeyRGUI,
	sdl.K_MODE:          userinput.KeyMode,
}

// translateKey returns the userinput.Key for the SDL keycode.
func translateKey(sym sdl.Keycode) userinput.Key {
	if sym > 0 && sym < 0x80 {
		return userinput.Key(sym)
	}
	if k, ok := keys[sym]; ok {
		return k
	}
	return userinput.KeyUnknown
}

var mods = []struct {
	sdl uint16
	mod userinput.KeyMod
}{
	{sdl: sdl.KMOD_LSHIFT, mod: userinput.KeyModLShift},
	{sdl: sdl.KMOD_RSHIFT, mod: userinput.KeyModRShift},
	{sdl: sdl.KMOD_LCTRL, mod: userinput.KeyModLCtrl},
	{sdl: sdl.KMOD_RCTRL, mod: userinput.KeyModRCtrl},
	{sdl: sdl.KMOD_LALT, mod: userinput.KeyModLAlt},
	{sdl: sdl.KMOD_RALT, mod: userinput.KeyModRAlt},
	{sdl: sdl.KMOD_LGUI, mod: userinput.KeyModLGUI},
	{sdl: sdl.KMOD_RGUI, mod: userinput.KeyModRGUI},
	{sdl: sdl.KMOD_NUM, mod: userinput.KeyModNum},
	{sdl: sdl.KMOD_CAPS, mod: userinput.KeyModCaps},
	{sdl: sdl.KMOD_MODE, mod: userinput.KeyModMode},
}

// translateMod returns the userinput.KeyMod for the SDL modifier state.
func translateMod(mod uint16) userinput.KeyMod {
	var m userinput.KeyMod
	for _, t := range mods {
		if mod&t.sdl == t.sdl {
			m |= t.mod
		}
	}
	return m
}
