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
	"github.com/gdamore/tcell/v2"
	"github.com/gostone/gostone/userinput"
)

// terminals do not report key releases. a key is released when it has not
// been reported for this many ticks. long enough to cover the delay before
// the terminal starts repeating a held key
const releaseTicks = 40

// the tcell mouse buttons and the userinput.MouseButton they report.
var buttons = []struct {
	mask   tcell.ButtonMask
	button userinput.MouseButton
}{
	{mask: tcell.Button1, button: userinput.MouseButtonLeft},
	{mask: tcell.Button3, button: userinput.MouseButtonMiddle},
	{mask: tcell.Button2, button: userinput.MouseButtonRight},
	{mask: tcell.Button4, button: userinput.MouseButtonX1},
	{mask: tcell.Button5, button: userinput.MouseButtonX2},
}

// translator turns tcell events into userinput events.
type translator struct {
	// the tick at which each held key was last reported
	held map[userinput.Key]uint32

	// mouse button state from the previous mouse event
	mask tcell.ButtonMask

	// motion is only reported while captured
	captured bool
	mouseX   int
	mouseY   int
	mouseSet bool
}

func newTranslator() *translator {
	return &translator{
		held: make(map[userinput.Key]uint32),
	}
}

// translate appends the events generated by the tcell event to the queue.
// now is the current tick.
func (tr *translator) translate(q *userinput.Queue, ev tcell.Event, now uint32) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, mod := translateKey(ev)
		if key == userinput.KeyUnknown {
			return
		}
		_, repeat := tr.held[key]
		tr.held[key] = now
		q.Push(userinput.EventKeyboard{
			Key:    key,
			Down:   true,
			Repeat: repeat,
			Mod:    mod,
		})

	case *tcell.EventMouse:
		tr.mouse(q, ev)

	case *tcell.EventFocus:
		if !ev.Focused {
			tr.releaseAll(q)
		}
		q.Push(userinput.EventWindowFocus{Gained: ev.Focused})
	}
}

func (tr *translator) mouse(q *userinput.Queue, ev *tcell.EventMouse) {
	mask := ev.Buttons()

	for _, b := range buttons {
		now := mask&b.mask != 0
		was := tr.mask&b.mask != 0
		if now != was {
			q.Push(userinput.EventMouseButton{Button: b.button, Down: now})
		}
	}
	tr.mask = mask & (tcell.Button1 | tcell.Button2 | tcell.Button3 | tcell.Button4 | tcell.Button5)

	if mask&tcell.WheelUp != 0 {
		q.Push(userinput.EventMouseWheel{Delta: 1})
	}
	if mask&tcell.WheelDown != 0 {
		q.Push(userinput.EventMouseWheel{Delta: -1})
	}

	x, y := ev.Position()
	if tr.captured && tr.mouseSet && (x != tr.mouseX || y != tr.mouseY) {
		q.Push(userinput.EventMouseMotion{DX: x - tr.mouseX, DY: y - tr.mouseY})
	}
	tr.mouseX = x
	tr.mouseY = y
	tr.mouseSet = true
}

// setCaptured changes whether motion is reported. the previous position is
// forgotten so that the change does not produce motion.
func (tr *translator) setCaptured(captured bool) {
	tr.captured = captured
	tr.mouseSet = false
}

// expire releases keys that have not been reported recently. modifiers are
// only reported alongside a key so releases have no modifiers.
func (tr *translator) expire(q *userinput.Queue, now uint32) {
	for key, t := range tr.held {
		if now-t >= releaseTicks {
			delete(tr.held, key)
			q.Push(userinput.EventKeyboard{Key: key, Mod: userinput.KeyModNone})
		}
	}
}

// releaseAll releases all held keys and mouse buttons.
func (tr *translator) releaseAll(q *userinput.Queue) {
	for key := range tr.held {
		delete(tr.held, key)
		q.Push(userinput.EventKeyboard{Key: key, Mod: userinput.KeyModNone})
	}
	for _, b := range buttons {
		if tr.mask&b.mask != 0 {
			q.Push(userinput.EventMouseButton{Button: b.button})
		}
	}
	tr.mask = 0
}
