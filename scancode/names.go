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

package scancode

import (
	"fmt"
	"strconv"
	"strings"
)

// names of the keyboard and pointer codes. joystick codes are named
// programmatically.
var names = map[Code]string{
	None:         "None",
	Escape:       "Esc",
	Num1:         "1",
	Num2:         "2",
	Num3:         "3",
	Num4:         "4",
	Num5:         "5",
	Num6:         "6",
	Num7:         "7",
	Num8:         "8",
	Num9:         "9",
	Num0:         "0",
	Minus:        "-",
	Equals:       "=",
	Backspace:    "Backspace",
	Tab:          "Tab",
	Q:            "Q",
	W:            "W",
	E:            "E",
	R:            "R",
	T:            "T",
	Y:            "Y",
	U:            "U",
	I:            "I",
	O:            "O",
	P:            "P",
	LeftBracket:  "[",
	RightBracket: "]",
	Return:       "Enter",
	Control:      "Ctrl",
	A:            "A",
	S:            "S",
	D:            "D",
	F:            "F",
	G:            "G",
	H:            "H",
	J:            "J",
	K:            "K",
	L:            "L",
	Semicolon:    ";",
	Quote:        "'",
	BackQuote:    "`",
	LeftShift:    "Left Shift",
	Backslash:    "\\",
	Z:            "Z",
	X:            "X",
	C:            "C",
	V:            "V",
	B:            "B",
	N:            "N",
	M:            "M",
	Comma:        ",",
	Period:       ".",
	Slash:        "/",
	RightShift:   "Right Shift",
	PrintScreen:  "Print Screen",
	Alt:          "Alt",
	Space:        "Space",
	CapsLock:     "Caps Lock",
	F1:           "F1",
	F2:           "F2",
	F3:           "F3",
	F4:           "F4",
	F5:           "F5",
	F6:           "F6",
	F7:           "F7",
	F8:           "F8",
	F9:           "F9",
	F10:          "F10",
	NumLock:      "Num Lock",
	ScrollLock:   "Scroll Lock",
	Home:         "Home",
	UpArrow:      "Up",
	PageUp:       "Page Up",
	KeypadMinus:  "Keypad -",
	LeftArrow:    "Left",
	RightArrow:   "Right",
	KeypadPlus:   "Keypad +",
	End:          "End",
	DownArrow:    "Down",
	PageDown:     "Page Down",
	Insert:       "Insert",
	Delete:       "Delete",
	Pause:        "Pause",
	F11:          "F11",
	F12:          "F12",
	MouseLeft:    "Mouse 1",
	MouseRight:   "Mouse 2",
	MouseMiddle:  "Mouse 3",
	MouseX1:      "Mouse 4",
	MouseX2:      "Mouse 5",
	WheelDown:    "Wheel Down",
	WheelUp:      "Wheel Up",
}

// lookup is the inverse of names, built on first use. keys are lower case.
var lookup map[string]Code

// String returns the human readable name of the code. Codes without a name
// are returned as a hexadecimal number.
func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	if c >= JoyAxis0Up && c < JoyAxis0Up+NumJoyAxisCodes*2 {
		axis := int(c-JoyAxis0Up) / 2
		if (c-JoyAxis0Up)%2 == 0 {
			return fmt.Sprintf("Joy Axis %d Up", axis)
		}
		return fmt.Sprintf("Joy Axis %d Down", axis)
	}
	if c >= JoyButton0 && c < JoyButton0+NumJoyButtons {
		return fmt.Sprintf("Joy Btn %d", c-JoyButton0)
	}
	return fmt.Sprintf("%#02x", uint8(c))
}

// Lookup returns the code with the given name. The comparison is not case
// sensitive. Any code, named or not, can also be specified with a hexadecimal
// number prefixed with 0x.
func Lookup(name string) (Code, bool) {
	if lookup == nil {
		lookup = make(map[string]Code, NumCodes)
		for c := 0; c < NumCodes; c++ {
			lookup[strings.ToLower(Code(c).String())] = Code(c)
		}
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := lookup[name]; ok {
		return c, true
	}

	if strings.HasPrefix(name, "0x") {
		v, err := strconv.ParseUint(name[2:], 16, 8)
		if err == nil {
			return Code(v), true
		}
	}

	return None, false
}
