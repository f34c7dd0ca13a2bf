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

package glfwplatform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gostone/gostone/userinput"
)

// GLFW keys that are not printable. printable GLFW keys are ASCII with
// letters in upper case.
var keys = map[glfw.Key]userinput.Key{
	glfw.KeyEscape:       userinput.KeyEscape,
	glfw.KeyEnter:        userinput.KeyReturn,
	glfw.KeyTab:          userinput.KeyTab,
	glfw.KeyBackspace:    userinput.KeyBackspace,
	glfw.KeyDelete:       userinput.KeyDelete,
	glfw.KeyInsert:       userinput.KeyInsert,
	glfw.KeyRight:        userinput.KeyRight,
	glfw.KeyLeft:         userinput.KeyLeft,
	glfw.KeyDown:         userinput.KeyDown,
	glfw.KeyUp:           userinput.KeyUp,
	glfw.KeyPageUp:       userinput.KeyPageUp,
	glfw.KeyPageDown:     userinput.KeyPageDown,
	glfw.KeyHome:         userinput.KeyHome,
	glfw.KeyEnd:          userinput.KeyEnd,
	glfw.KeyCapsLock:     userinput.KeyCapsLock,
	glfw.KeyScrollLock:   userinput.KeyScrollLock,
	glfw.KeyNumLock:      userinput.KeyNumLock,
	glfw.KeyPrintScreen:  userinput.KeyPrintScreen,
	glfw.KeyPause:        userinput.KeyPause,
	glfw.KeyF1:           userinput.KeyF1,
	glfw.KeyF2:           userinput.KeyF2,
	glfw.KeyF3:           userinput.KeyF3,
	glfw.KeyF4:           userinput.KeyF4,
	glfw.KeyF5:           userinput.KeyF5,
	glfw.KeyF6:           userinput.KeyF6,
	glfw.KeyF7:           userinput.KeyF7,
	glfw.KeyF8:           userinput.KeyF8,
	glfw.KeyF9:           userinput.KeyF9,
	glfw.KeyF10:          userinput.KeyF10,
	glfw.KeyF11:          userinput.KeyF11,
	glfw.KeyF12:          userinput.KeyF12,
	glfw.KeyKP0:          userinput.KeyKp0,
	glfw.KeyKP1:          userinput.KeyKp1,
	glfw.KeyKP2:          userinput.KeyKp2,
	glfw.KeyKP3:          userinput.KeyKp3,
	glfw.KeyKP4:          userinput.KeyKp4,
	glfw.KeyKP5:          userinput.KeyKp5,
	glfw.KeyKP6:          userinput.KeyKp6,
	glfw.KeyKP7:          userinput.KeyKp7,
	glfw.KeyKP8:          userinput.KeyKp8,
	glfw.KeyKP9:          userinput.KeyKp9,
	glfw.KeyKPDecimal:    userinput.KeyKpPeriod,
	glfw.KeyKPDivide:     userinput.KeyKpDivide,
	glfw.KeyKPMultiply:   userinput.KeyKpMultiply,
	glfw.KeyKPSubtract:   userinput.KeyKpMinus,
	glfw.KeyKPAdd:        userinput.KeyKpPlus,
	glfw.KeyKPEnter:      userinput.KeyKpEnter,
	glfw.KeyLeftShift:    userinput.KeyLShift,
	glfw.KeyLeftControl:  userinput.KeyLCtrl,
	glfw.KeyLeftAlt:      userinput.KeyLAlt,
	glfw.KeyLeftSuper:    userinput.KeyLGUI,
	glfw.KeyRightShift:   userinput.KeyRShift,
	glfw.KeyRightControl: userinput.KeyRCtrl,
	glfw.KeyRightAlt:     userinput.KeyRAlt,
	glfw.KeyRightSuper:   userinput.KeyRGUI,
}

// translateKey returns the userinput.Key for the GLFW key.
func translateKey(key glfw.Key) userinput.Key {
	if key >= glfw.KeyA && key <= glfw.KeyZ {
		return userinput.Key(key - glfw.KeyA + 'a')
	}
	if key >= glfw.KeySpace && key <= glfw.KeyGraveAccent {
		return userinput.Key(key)
	}
	if k, ok := keys[key]; ok {
		return k
	}
	return userinput.KeyUnknown
}

// modifier keys and the KeyMod bit they control.
var modKeys = map[userinput.Key]userinput.KeyMod{
	userinput.KeyLShift: userinput.KeyModLShift,
	userinput.KeyRShift: userinput.KeyModRShift,
	userinput.KeyLCtrl:  userinput.KeyModLCtrl,
	userinput.KeyRCtrl:  userinput.KeyModRCtrl,
	userinput.KeyLAlt:   userinput.KeyModLAlt,
	userinput.KeyRAlt:   userinput.KeyModRAlt,
	userinput.KeyLGUI:   userinput.KeyModLGUI,
	userinput.KeyRGUI:   userinput.KeyModRGUI,
}

// GLFW does not distinguish between left and right modifiers. if a modifier
// is reported that has not been seen pressed then the left side is assumed.
var mods = []struct {
	glfw  glfw.ModifierKey
	both  userinput.KeyMod
	guess userinput.KeyMod
}{
	{glfw: glfw.ModShift, both: userinput.KeyModShift, guess: userinput.KeyModLShift},
	{glfw: glfw.ModControl, both: userinput.KeyModCtrl, guess: userinput.KeyModLCtrl},
	{glfw: glfw.ModAlt, both: userinput.KeyModAlt, guess: userinput.KeyModLAlt},
	{glfw: glfw.ModSuper, both: userinput.KeyModGUI, guess: userinput.KeyModLGUI},
}

// translateMod combines the GLFW modifier state with the modifier keys known
// to be held.
func translateMod(mod glfw.ModifierKey, held userinput.KeyMod) userinput.KeyMod {
	var m userinput.KeyMod
	for _, t := range mods {
		if mod&t.glfw == 0 {
			continue
		}
		if held&t.both != 0 {
			m |= held & t.both
		} else {
			m |= t.guess
		}
	}
	if mod&glfw.ModCapsLock != 0 {
		m |= userinput.KeyModCaps
	}
	if mod&glfw.ModNumLock != 0 {
		m |= userinput.KeyModNum
	}
	return m
}
