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

// Code is a canonical input code. Every physical input, whether a key, a
// mouse button, the direction of a joystick axis or a joystick button, is
// identified by a single Code.
//
// Keyboard codes have the same values as the set 1 scan codes of a PC
// keyboard.
type Code uint8

// NumCodes is the size of the code space.
const NumCodes = 256

// None is the sentinel code. It is never pressed and is used to mark unused
// entries in a binding.
const None Code = 0x00

// keyboard.
const (
	Escape       Code = 0x01
	Num1         Code = 0x02
	Num2         Code = 0x03
	Num3         Code = 0x04
	Num4         Code = 0x05
	Num5         Code = 0x06
	Num6         Code = 0x07
	Num7         Code = 0x08
	Num8         Code = 0x09
	Num9         Code = 0x0a
	Num0         Code = 0x0b
	Minus        Code = 0x0c
	Equals       Code = 0x0d
	Backspace    Code = 0x0e
	Tab          Code = 0x0f
	Q            Code = 0x10
	W            Code = 0x11
	E            Code = 0x12
	R            Code = 0x13
	T            Code = 0x14
	Y            Code = 0x15
	U            Code = 0x16
	I            Code = 0x17
	O            Code = 0x18
	P            Code = 0x19
	LeftBracket  Code = 0x1a
	RightBracket Code = 0x1b
	Return       Code = 0x1c
	Control      Code = 0x1d
	A            Code = 0x1e
	S            Code = 0x1f
	D            Code = 0x20
	F            Code = 0x21
	G            Code = 0x22
	H            Code = 0x23
	J            Code = 0x24
	K            Code = 0x25
	L            Code = 0x26
	Semicolon    Code = 0x27
	Quote        Code = 0x28
	BackQuote    Code = 0x29
	LeftShift    Code = 0x2a
	Backslash    Code = 0x2b
	Z            Code = 0x2c
	X            Code = 0x2d
	C            Code = 0x2e
	V            Code = 0x2f
	B            Code = 0x30
	N            Code = 0x31
	M            Code = 0x32
	Comma        Code = 0x33
	Period       Code = 0x34
	Slash        Code = 0x35
	RightShift   Code = 0x36
	PrintScreen  Code = 0x37
	Alt          Code = 0x38
	Space        Code = 0x39
	CapsLock     Code = 0x3a
	F1           Code = 0x3b
	F2           Code = 0x3c
	F3           Code = 0x3d
	F4           Code = 0x3e
	F5           Code = 0x3f
	F6           Code = 0x40
	F7           Code = 0x41
	F8           Code = 0x42
	F9           Code = 0x43
	F10          Code = 0x44
	NumLock      Code = 0x45
	ScrollLock   Code = 0x46
	Home         Code = 0x47
	UpArrow      Code = 0x48
	PageUp       Code = 0x49
	KeypadMinus  Code = 0x4a
	LeftArrow    Code = 0x4b
	RightArrow   Code = 0x4d
	KeypadPlus   Code = 0x4e
	End          Code = 0x4f
	DownArrow    Code = 0x50
	PageDown     Code = 0x51
	Insert       Code = 0x52
	Delete       Code = 0x53
	Pause        Code = 0x54
	F11          Code = 0x57
	F12          Code = 0x59
)

// pointer. the wheel codes are pulses: they are set by wheel movement but
// are never released by the pointer.
const (
	MouseLeft   Code = 0x64
	MouseMiddle Code = 0x65
	MouseRight  Code = 0x66
	MouseX1     Code = 0x67
	MouseX2     Code = 0x68
	WheelDown   Code = 0x69
	WheelUp     Code = 0x6a
)

// joystick axes. each axis has two codes, the negative direction (up or left)
// followed by the positive direction (down or right).
const (
	JoyAxis0Up   Code = 0x80
	JoyAxis0Down Code = 0x81
	JoyAxis1Up   Code = 0x82
	JoyAxis1Down Code = 0x83
	JoyAxis2Up   Code = 0x84
	JoyAxis2Down Code = 0x85
	JoyAxis3Up   Code = 0x86
	JoyAxis3Down Code = 0x87
	JoyAxis4Up   Code = 0x88
	JoyAxis4Down Code = 0x89
	JoyAxis5Up   Code = 0x8a
	JoyAxis5Down Code = 0x8b
	JoyAxis6Up   Code = 0x8c
	JoyAxis6Down Code = 0x8d
)

// NumJoyAxisCodes is the number of axes that have codes.
const NumJoyAxisCodes = 7

// joystick buttons occupy a contiguous range of codes starting at JoyButton0.
const (
	JoyButton0 Code = 0x90

	// NumJoyButtons is the number of joystick buttons that have codes.
	NumJoyButtons = 32
)

// JoyAxis returns the code for axis in the given direction. Direction zero is
// the negative direction (up or left) and one is the positive direction.
// Returns None if the axis has no code.
func JoyAxis(axis int, dir int) Code {
	if axis < 0 || axis >= NumJoyAxisCodes || dir < 0 || dir > 1 {
		return None
	}
	return JoyAxis0Up + Code(axis*2+dir)
}

// JoyButton returns the code for joystick button n. Returns None if the
// button has no code.
func JoyButton(n int) Code {
	if n < 0 || n >= NumJoyButtons {
		return None
	}
	return JoyButton0 + Code(n)
}

// IsJoystick returns true if the code is in the joystick range.
func (c Code) IsJoystick() bool {
	return c >= JoyAxis0Up && c < JoyButton0+NumJoyButtons
}

// IsPointer returns true if the code is in the pointer range.
func (c Code) IsPointer() bool {
	return c >= MouseLeft && c <= WheelUp
}
