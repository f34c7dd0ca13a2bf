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

const ReleaseTicks = releaseTicks

var (
	TranslateKey = translateKey
	TranslateMod = translateMod
)

// Translator exposes the translator type for testing. Events are collected
// in a queue.
type Translator struct {
	tr *translator
	q  *userinput.Queue
}

func NewTranslator() Translator {
	return Translator{tr: newTranslator(), q: userinput.NewQueue(64)}
}

func (t Translator) Translate(ev tcell.Event, now uint32) {
	t.tr.translate(t.q, ev, now)
}

func (t Translator) Expire(now uint32) {
	t.tr.expire(t.q, now)
}

func (t Translator) SetCaptured(captured bool) {
	t.tr.setCaptured(captured)
}

func (t Translator) Pop() userinput.Event {
	return t.q.Pop()
}
