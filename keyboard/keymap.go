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

var keymap = map[userinput.Key]scancode.Code{
	userinput.KeyReturn:       scancode.Return,
	userinput.KeyKpEnter:      scancode.Return,
	userinput.KeyEscape:       scancode.Escape,
	userinput.KeySpace:        scancode.Space,
	userinput.KeyKpSpace:      scancode.Space,
	userinput.KeyMinus:        scancode.Minus,
	userinput.KeyEquals:       scancode.Equals,
	userinput.KeyBackspace:    scancode.Backspace,
	userinput.KeyKpBackspace:  scancode.Backspace,
	userinput.KeyTab:          scancode.Tab,
	userinput.KeyKpTab:        scancode.Tab,
	userinput.KeyLAlt:         scancode.Alt,
	userinput.KeyRAlt:         scancode.Alt,
	userinput.KeyLeftBracket:  scancode.LeftBracket,
	userinput.KeyKpLeftBrace:  scancode.LeftBracket,
	userinput.KeyRightBracket: scancode.RightBracket,
	userinput.KeyKpRightBrace: scancode.RightBracket,
	userinput.KeyLCtrl:        scancode.Control,
	userinput.KeyRCtrl:        scancode.Control,
	userinput.KeyCapsLock:     scancode.CapsLock,
	userinput.KeyNumLock:      scancode.NumLock,
	userinput.KeyScrollLock:   scancode.ScrollLock,
	userinput.KeyLShift:       scancode.LeftShift,
	userinput.KeyRShift:       scancode.RightShift,

	// navigation. keypad keys are always treated as if num lock is active
	userinput.KeyUp:       scancode.UpArrow,
	userinput.KeyKp8:      scancode.UpArrow,
	userinput.KeyDown:     scancode.DownArrow,
	userinput.KeyKp2:      scancode.DownArrow,
	userinput.KeyLeft:     scancode.LeftArrow,
	userinput.KeyKp4:      scancode.LeftArrow,
	userinput.KeyRight:    scancode.RightArrow,
	userinput.KeyKp6:      scancode.RightArrow,
	userinput.KeyInsert:   scancode.Insert,
	userinput.KeyKp0:      scancode.Insert,
	userinput.KeyDelete:   scancode.Delete,
	userinput.KeyKpComma:  scancode.Delete,
	userinput.KeyHome:     scancode.Home,
	userinput.KeyKp7:      scancode.Home,
	userinput.KeyEnd:      scancode.End,
	userinput.KeyKp1:      scancode.End,
	userinput.KeyPageUp:   scancode.PageUp,
	userinput.KeyKp9:      scancode.PageUp,
	userinput.KeyPageDown: scancode.PageDown,
	userinput.KeyKp3:      scancode.PageDown,

	userinput.KeySlash:     scancode.Slash,
	userinput.KeyKpDivide:  scancode.Slash,
	userinput.KeyBackslash: scancode.Backslash,
	userinput.KeySemicolon: scancode.Semicolon,
	userinput.KeyQuote:     scancode.Quote,
	userinput.KeyComma:     scancode.Comma,
	userinput.KeyPeriod:    scancode.Period,
	userinput.KeyBackQuote: scancode.BackQuote,

	userinput.KeyF1:          scancode.F1,
	userinput.KeyF2:          scancode.F2,
	userinput.KeyF3:          scancode.F3,
	userinput.KeyF4:          scancode.F4,
	userinput.KeyF5:          scancode.F5,
	userinput.KeyF6:          scancode.F6,
	userinput.KeyF7:          scancode.F7,
	userinput.KeyF8:          scancode.F8,
	userinput.KeyF9:          scancode.F9,
	userinput.KeyF10:         scancode.F10,
	userinput.KeyF11:         scancode.F11,
	userinput.KeyF12:         scancode.F12,
	userinput.KeyPrintScreen: scancode.PrintScreen,
	userinput.KeyPause:       scancode.Pause,

	userinput.Key1: scancode.Num1,
	userinput.Key2: scancode.Num2,
	userinput.Key3: scancode.Num3,
	userinput.Key4: scancode.Num4,
	userinput.Key5: scancode.Num5,
	userinput.Key6: scancode.Num6,
	userinput.Key7: scancode.Num7,
	userinput.Key8: scancode.Num8,
	userinput.Key9: scancode.Num9,
	userinput.Key0: scancode.Num0,

	userinput.KeyA:   scancode.A,
	userinput.KeyKpA: scancode.A,
	userinput.KeyB:   scancode.B,
	userinput.KeyKpB: scancode.B,
	userinput.KeyC:   scancode.C,
	userinput.KeyKpC: scancode.C,
	userinput.KeyD:   scancode.D,
	userinput.KeyKpD: scancode.D,
	userinput.KeyE:   scancode.E,
	userinput.KeyKpE: scancode.E,
	userinput.KeyF:   scancode.F,
	userinput.KeyKpF: scancode.F,
	userinput.KeyG:   scancode.G,
	userinput.KeyH:   scancode.H,
	userinput.KeyI:   scancode.I,
	userinput.KeyJ:   scancode.J,
	userinput.KeyK:   scancode.K,
	userinput.KeyL:   scancode.L,
	userinput.KeyM:   scancode.M,
	userinput.KeyN:   scancode.N,
	userinput.KeyO:   scancode.O,
	userinput.KeyP:   scancode.P,
	userinput.KeyQ:   scancode.Q,
	userinput.KeyR:   scancode.R,
	userinput.KeyS:   scancode.S,
	userinput.KeyT:   scancode.T,
	userinput.KeyU:   scancode.U,
	userinput.KeyV:   scancode.V,
	userinput.KeyW:   scancode.W,
	userinput.KeyX:   scancode.X,
	userinput.KeyY:   scancode.Y,
	userinput.KeyZ:   scancode.Z,

	userinput.KeyKpMinus: scancode.KeypadMinus,
	userinput.KeyKpPlus:  scancode.KeypadPlus,
}

// MapKey returns the canonical code for the key. Keys that have no code
// return scancode.None and should be ignored.
func MapKey(key userinput.Key) scancode.Code {
	return keymap[key]
}
