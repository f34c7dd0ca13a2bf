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

package termplatform_test

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gostone/gostone/platform/termplatform"
	"github.com/gostone/gostone/test"
	"github.com/gostone/gostone/userinput"
)

func TestTranslateKey(t *testing.T) {
	k, m := termplatform.TranslateKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	test.ExpectEquality(t, k, userinput.KeyW)
	test.ExpectEquality(t, m, userinput.KeyModNone)

	// shifted characters are reported as the unshifted key
	k, m = termplatform.TranslateKey(tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone))
	test.ExpectEquality(t, k, userinput.KeyW)
	test.ExpectEquality(t, m, userinput.KeyModLShift)

	k, m = termplatform.TranslateKey(tcell.NewEventKey(tcell.KeyRune, '<', tcell.ModNone))
	test.ExpectEquality(t, k, userinput.KeyComma)
	test.ExpectEquality(t, m, userinput.KeyModLShift)

	k, m = termplatform.TranslateKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt))
	test.ExpectEquality(t, k, userinput.KeyX)
	test.ExpectEquality(t, m, userinput.KeyModLAlt)

	k, _ = termplatform.TranslateKey(tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone))
	test.ExpectEquality(t, k, userinput.KeyUnknown)

	k, _ = termplatform.TranslateKey(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	test.ExpectEquality(t, k, userinput.KeyPageDown)

	k, _ = termplatform.TranslateKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	test.ExpectEquality(t, k, userinput.KeyReturn)

	// control keys are the letter with the control modifier
	k, m = termplatform.TranslateKey(tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModCtrl))
	test.ExpectEquality(t, k, userinput.KeyF)
	test.ExpectSuccess(t, m.Has(userinput.KeyModLCtrl))

	test.ExpectEquality(t, termplatform.TranslateMod(tcell.ModShift|tcell.ModMeta), userinput.KeyModLShift|userinput.KeyModLGUI)
}

func TestKeyRelease(t *testing.T) {
	tr := termplatform.NewTranslator()

	tr.Translate(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), 100)
	test.ExpectEquality(t, tr.Pop(), userinput.Event(userinput.EventKeyboard{Key: userinput.KeyUp, Down: true}))

	// terminal repeat keeps the key held
	tr.Translate(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), 130)
	test.ExpectEquality(t, tr.Pop(), userinput.Event(userinput.EventKeyboard{Key: userinput.KeyUp, Down: true, Repeat: true}))

	tr.Expire(130 + termplatform.ReleaseTicks - 1)
	test.ExpectEquality(t, tr.Pop(), nil)

	tr.Expire(130 + termplatform.ReleaseTicks)
	test.ExpectEquality(t, tr.Pop(), userinput.Event(userinput.EventKeyboard{Key: userinput.KeyUp}))
	test.ExpectEquality(t, tr.Pop(), nil)

	// pressed again after release is not a repeat
	tr.Translate(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), 200)
	test.ExpectEquality(t, tr.Pop(), userinput.Event(userinput.EventKeyboard{Key: userinput.KeyUp, Down: true}))

	// losing focus releases everything
	tr.Translate(tcell.NewEventFocus(false), 201)
	test.ExpectEquality(t, tr.Pop(), userinput.Event(userinput.EventKeyboard{Key: userinput.KeyUp}))
	test.ExpectEquality(t, tr.Pop(), userinput.Event(userinput.EventWindowFocus{Gained: false}))
}

func TestMouse(t *testing.T) {
	tr := termplatform.NewTranslator()

	tr.Translate(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone), 0)
	test.ExpectEquality(t, tr.Pop(), userinput.Event(userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true}))
	test.ExpectEquality(t, tr.Pop(), nil)

	// second button pressed while first is held
	tr.Translate(tcell.NewEventMouse(10, 5, tcell.Button1|tcell.Button2, tcell.ModNone), 0)
	test.ExpectEquality(t, tr.Pop(), userinput.Event(userinput.EventMouseButton{Button: userinput.MouseButtonRight, Down: true}))

	tr.Translate(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone), 0)
	test.ExpectEquality(t, tr.Pop(), userinput.Event(userinput.EventMouseButton{Button: userinput.MouseButtonLeft}))
	test.ExpectEquality(t, tr.Pop(), userinput.Event(userinput.EventMouseButton{Button: userinput.MouseButtonRight}))

	tr.Translate(tcell.NewEventMouse(10, 5, tcell.WheelDown, tcell.ModNone), 0)
	test.ExpectEquality(t, tr.Pop(), userinput.Event(userinput.EventMouseWheel{Delta: -1}))

	// no motion until captured
	tr.Translate(tcell.NewEventMouse(12, 5, tcell.ButtonNone, tcell.ModNone), 0)
	test.ExpectEquality(t, tr.Pop(), nil)

	tr.SetCaptured(true)
	tr.Translate(tcell.NewEventMouse(20, 20, tcell.ButtonNone, tcell.ModNone), 0)
	test.ExpectEquality(t, tr.Pop(), nil)
	tr.Translate(tcell.NewEventMouse(18, 23, tcell.ButtonNone, tcell.ModNone), 0)
	test.ExpectEquality(t, tr.Pop(), userinput.Event(userinput.EventMouseMotion{DX: -2, DY: 3}))
}

// pumpUntil pumps the platform until an event is found or the time runs out.
func pumpUntil(plt *termplatform.Platform) userinput.Event {
	for i := 0; i < 200; i++ {
		plt.PumpEvents()
		if ev := plt.PollEvent(); ev != nil {
			return ev
		}
		time.Sleep(5 * time.Millisecond)
	}
	return nil
}

func TestSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	plt, err := termplatform.NewPlatform(screen)
	test.DemandSuccess(t, err)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	test.ExpectEquality(t, pumpUntil(plt), userinput.Event(userinput.EventKeyboard{Key: userinput.KeyQ, Down: true}))

	test.ExpectSuccess(t, plt.SetCapture(true))
	test.ExpectSuccess(t, plt.SetCapture(false))

	// the platform reports the end of the screen as a quit event
	plt.Destroy()
	test.ExpectEquality(t, pumpUntil(plt), userinput.Event(userinput.EventQuit{}))
}
