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

package sdlplatform_test

import (
	"testing"

	"github.com/gostone/gostone/platform/sdlplatform"
	"github.com/gostone/gostone/test"
	"github.com/gostone/gostone/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslateKey(t *testing.T) {
	test.ExpectEquality(t, sdlplatform.TranslateKey(sdl.K_a), userinput.KeyA)
	test.ExpectEquality(t, sdlplatform.TranslateKey(sdl.K_RETURN), userinput.KeyReturn)
	test.ExpectEquality(t, sdlplatform.TranslateKey(sdl.K_COMMA), userinput.KeyComma)
	test.ExpectEquality(t, sdlplatform.TranslateKey(sdl.K_F10), userinput.KeyF10)
	test.ExpectEquality(t, sdlplatform.TranslateKey(sdl.K_KP_ENTER), userinput.KeyKpEnter)
	test.ExpectEquality(t, sdlplatform.TranslateKey(sdl.K_RSHIFT), userinput.KeyRShift)
	test.ExpectEquality(t, sdlplatform.TranslateKey(sdl.K_UNKNOWN), userinput.KeyUnknown)
	test.ExpectEquality(t, sdlplatform.TranslateKey(sdl.K_AUDIOMUTE), userinput.KeyUnknown)
}

func TestTranslateMod(t *testing.T) {
	test.ExpectEquality(t, sdlplatform.TranslateMod(sdl.KMOD_NONE), userinput.KeyModNone)
	test.ExpectEquality(t, sdlplatform.TranslateMod(sdl.KMOD_LSHIFT), userinput.KeyModLShift)

	m := sdlplatform.TranslateMod(sdl.KMOD_RCTRL | sdl.KMOD_LALT | sdl.KMOD_CAPS)
	test.ExpectSuccess(t, m.Has(userinput.KeyModRCtrl))
	test.ExpectSuccess(t, m.Has(userinput.KeyModLAlt))
	test.ExpectSuccess(t, m.Has(userinput.KeyModCaps))
	test.ExpectFailure(t, m.Has(userinput.KeyModLShift))
}

func TestTranslateEvent(t *testing.T) {
	ev := sdlplatform.TranslateEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Repeat: 1,
		Keysym: sdl.Keysym{Sym: sdl.K_q, Mod: sdl.KMOD_LSHIFT},
	})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventKeyboard{
		Key:    userinput.KeyQ,
		Down:   true,
		Repeat: true,
		Mod:    userinput.KeyModLShift,
	}))

	// keys with no userinput.Key are dropped
	ev = sdlplatform.TranslateEvent(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_AUDIOMUTE}})
	test.ExpectEquality(t, ev, nil)

	ev = sdlplatform.TranslateEvent(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_RIGHT})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventMouseButton{Button: userinput.MouseButtonRight}))

	ev = sdlplatform.TranslateEvent(&sdl.MouseMotionEvent{XRel: -3, YRel: 4})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventMouseMotion{DX: -3, DY: 4}))

	ev = sdlplatform.TranslateEvent(&sdl.MouseWheelEvent{Y: -1, Direction: sdl.MOUSEWHEEL_FLIPPED})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventMouseWheel{Delta: -1, Flipped: true}))

	ev = sdlplatform.TranslateEvent(&sdl.MouseWheelEvent{X: 1})
	test.ExpectEquality(t, ev, nil)

	ev = sdlplatform.TranslateEvent(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_LOST})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventWindowFocus{Gained: false}))

	ev = sdlplatform.TranslateEvent(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED})
	test.ExpectEquality(t, ev, nil)

	ev = sdlplatform.TranslateEvent(&sdl.ControllerButtonEvent{})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventJoystick{}))

	ev = sdlplatform.TranslateEvent(&sdl.JoyDeviceRemovedEvent{Which: 2})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventDeviceRemoved{Index: 2}))

	ev = sdlplatform.TranslateEvent(&sdl.QuitEvent{})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventQuit{}))
}
