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

package userinput

import "fmt"

// Key identifies a physical key. Keys that produce a printable character
// have the value of that character, without shift applied. Other keys are
// numbered from keySpecial upwards.
type Key int32

// KeyUnknown is the zero value and is used for keys that the platform
// cannot identify.
const KeyUnknown Key = 0

// printable and control character keys.
const (
	KeyBackspace    Key = '\b'
	KeyTab          Key = '\t'
	KeyReturn       Key = '\r'
	KeyEscape       Key = 0x1b
	KeySpace        Key = ' '
	KeyQuote        Key = '\''
	KeyComma        Key = ','
	KeyMinus        Key = '-'
	KeyPeriod       Key = '.'
	KeySlash        Key = '/'
	Key0            Key = '0'
	Key1            Key = '1'
	Key2            Key = '2'
	Key3            Key = '3'
	Key4            Key = '4'
	Key5            Key = '5'
	Key6            Key = '6'
	Key7            Key = '7'
	Key8            Key = '8'
	Key9            Key = '9'
	KeySemicolon    Key = ';'
	KeyEquals       Key = '='
	KeyLeftBracket  Key = '['
	KeyBackslash    Key = '\\'
	KeyRightBracket Key = ']'
	KeyBackQuote    Key = '`'
	KeyA            Key = 'a'
	KeyB            Key = 'b'
	KeyC            Key = 'c'
	KeyD            Key = 'd'
	KeyE            Key = 'e'
	KeyF            Key = 'f'
	KeyG            Key = 'g'
	KeyH            Key = 'h'
	KeyI            Key = 'i'
	KeyJ            Key = 'j'
	KeyK            Key = 'k'
	KeyL            Key = 'l'
	KeyM            Key = 'm'
	KeyN            Key = 'n'
	KeyO            Key = 'o'
	KeyP            Key = 'p'
	KeyQ            Key = 'q'
	KeyR            Key = 'r'
	KeyS            Key = 's'
	KeyT            Key = 't'
	KeyU            Key = 'u'
	KeyV            Key = 'v'
	KeyW            Key = 'w'
	KeyX            Key = 'x'
	KeyY            Key = 'y'
	KeyZ            Key = 'z'
	KeyDelete       Key = 0x7f
)

const keySpecial Key = 1 << 30

// keys that do not produce a printable character.
const (
	KeyCapsLock Key = keySpecial + iota
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyPageUp
	KeyEnd
	KeyPageDown
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyNumLock
	KeyKpDivide
	KeyKpMultiply
	KeyKpMinus
	KeyKpPlus
	KeyKpEnter
	KeyKp1
	KeyKp2
	KeyKp3
	KeyKp4
	KeyKp5
	KeyKp6
	KeyKp7
	KeyKp8
	KeyKp9
	KeyKp0
	KeyKpPeriod
	KeyKpComma
	KeyKpLeftBrace
	KeyKpRightBrace
	KeyKpTab
	KeyKpBackspace
	KeyKpA
	KeyKpB
	KeyKpC
	KeyKpD
	KeyKpE
	KeyKpF
	KeyKpSpace
	KeyLCtrl
	KeyLShift
	KeyLAlt
	KeyLGUI
	KeyRCtrl
	KeyRShift
	KeyRAlt
	KeyRGUI
	KeyMode
)

var keyNames = map[Key]string{
	KeyBackspace:    "Backspace",
	KeyTab:          "Tab",
	KeyReturn:       "Return",
	KeyEscape:       "Escape",
	KeySpace:        "Space",
	KeyDelete:       "Delete",
	KeyCapsLock:     "Caps Lock",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyPrintScreen:  "Print Screen",
	KeyScrollLock:   "Scroll Lock",
	KeyPause:        "Pause",
	KeyInsert:       "Insert",
	KeyHome:         "Home",
	KeyPageUp:       "Page Up",
	KeyEnd:          "End",
	KeyPageDown:     "Page Down",
	KeyRight:        "Right",
	KeyLeft:         "Left",
	KeyDown:         "Down",
	KeyUp:           "Up",
	KeyNumLock:      "Num Lock",
	KeyKpDivide:     "Keypad /",
	KeyKpMultiply:   "Keypad *",
	KeyKpMinus:      "Keypad -",
	KeyKpPlus:       "Keypad +",
	KeyKpEnter:      "Keypad Enter",
	KeyKp1:          "Keypad 1",
	KeyKp2:          "Keypad 2",
	KeyKp3:          "Keypad 3",
	KeyKp4:          "Keypad 4",
	KeyKp5:          "Keypad 5",
	KeyKp6:          "Keypad 6",
	KeyKp7:          "Keypad 7",
	KeyKp8:          "Keypad 8",
	KeyKp9:          "Keypad 9",
	KeyKp0:          "Keypad 0",
	KeyKpPeriod:     "Keypad .",
	KeyKpComma:      "Keypad ,",
	KeyKpLeftBrace:  "Keypad {",
	KeyKpRightBrace: "Keypad }",
	KeyKpTab:        "Keypad Tab",
	KeyKpBackspace:  "Keypad Backspace",
	KeyKpA:          "Keypad A",
	KeyKpB:          "Keypad B",
	KeyKpC:          "Keypad C",
	KeyKpD:          "Keypad D",
	KeyKpE:          "Keypad E",
	KeyKpF:          "Keypad F",
	KeyKpSpace:      "Keypad Space",
	KeyLCtrl:        "Left Ctrl",
	KeyLShift:       "Left Shift",
	KeyLAlt:         "Left Alt",
	KeyLGUI:         "Left GUI",
	KeyRCtrl:        "Right Ctrl",
	KeyRShift:       "Right Shift",
	KeyRAlt:         "Right Alt",
	KeyRGUI:         "Right GUI",
	KeyMode:         "Mode",
}

// IsPrintable returns true if the key produces a printable character.
func (k Key) IsPrintable() bool {
	return k > KeySpace && k < KeyDelete
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	if k.IsPrintable() {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%#x)", int32(k))
}

// KeyMod is the state of the modifier keys.
type KeyMod uint16

// KeyModNone indicates that no modifier is active.
const KeyModNone KeyMod = 0

// List of valid KeyMod bits.
const (
	KeyModLShift KeyMod = 1 << iota
	KeyModRShift
	KeyModLCtrl
	KeyModRCtrl
	KeyModLAlt
	KeyModRAlt
	KeyModLGUI
	KeyModRGUI
	KeyModNum
	KeyModCaps
	KeyModMode
)

// Combinations of left and right modifier bits.
const (
	KeyModShift = KeyModLShift | KeyModRShift
	KeyModCtrl  = KeyModLCtrl | KeyModRCtrl
	KeyModAlt   = KeyModLAlt | KeyModRAlt
	KeyModGUI   = KeyModLGUI | KeyModRGUI
)

// Has returns true if any of the bits in m are set.
func (mod KeyMod) Has(m KeyMod) bool {
	return mod&m != 0
}
