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

// Package pointer translates mouse events into the canonical code space and
// accumulates relative motion.
//
// The pointer is only active while the pointer is captured. A button press
// while the pointer is not captured is an attempt to capture it and if the
// capture succeeds the press is not recorded. Motion and wheel events are
// ignored while the pointer is not captured.
//
// Wheel codes are pulses. They are set when the wheel moves but the pointer
// never releases them. The consumer of the code is expected to clear it.
package pointer

import (
	"github.com/gostone/gostone/scancode"
	"github.com/gostone/gostone/userinput"
)

// Capturer is the part of the capture state machine that the pointer needs.
type Capturer interface {
	IsCaptured() bool

	// Engage attempts to capture the pointer. Returns true if the pointer is
	// captured as a result of the call.
	Engage() bool
}

// Pointer normalises mouse events.
type Pointer struct {
	capture Capturer

	// accumulated relative motion since the last call to ClearDelta() or
	// ReadDelta()
	dx int
	dy int
}

// NewPointer is the preferred method of initialisation for the Pointer type.
func NewPointer(capture Capturer) *Pointer {
	return &Pointer{capture: capture}
}

// MapButton returns the code for the mouse button or scancode.None if the
// button has no code.
func MapButton(button userinput.MouseButton) scancode.Code {
	switch button {
	case userinput.MouseButtonLeft:
		return scancode.MouseLeft
	case userinput.MouseButtonMiddle:
		return scancode.MouseMiddle
	case userinput.MouseButtonRight:
		return scancode.MouseRight
	case userinput.MouseButtonX1:
		return scancode.MouseX1
	case userinput.MouseButtonX2:
		return scancode.MouseX2
	}
	return scancode.None
}

// Button handles a mouse button event. Returns false if the event was
// swallowed, either because the button has no code or because the press
// caused the pointer to be captured.
func (p *Pointer) Button(st *scancode.State, ev userinput.EventMouseButton) bool {
	code := MapButton(ev.Button)
	if code == scancode.None {
		return false
	}

	if !p.capture.IsCaptured() && ev.Down {
		if p.capture.Engage() {
			return false
		}
	}

	st.Set(code, ev.Down)
	return true
}

// Motion handles a mouse motion event. Motion is accumulated while the
// pointer is captured. Otherwise the accumulated motion is zeroed.
func (p *Pointer) Motion(ev userinput.EventMouseMotion) {
	if !p.capture.IsCaptured() {
		p.dx = 0
		p.dy = 0
		return
	}
	p.dx += ev.DX
	p.dy += ev.DY
}

// Wheel handles a mouse wheel event. The wheel code for the direction of
// movement is set and recorded as the most recent code.
func (p *Pointer) Wheel(st *scancode.State, ev userinput.EventMouseWheel) {
	if !p.capture.IsCaptured() {
		return
	}

	delta := ev.Delta
	if ev.Flipped {
		delta = -delta
	}

	var code scancode.Code
	switch {
	case delta < 0:
		code = scancode.WheelDown
	case delta > 0:
		code = scancode.WheelUp
	default:
		return
	}

	st.Set(code, true)
	st.LastCode = code
}

// Delta returns the accumulated motion.
func (p *Pointer) Delta() (int, int) {
	return p.dx, p.dy
}

// ReadDelta returns the accumulated motion and then zeroes it.
func (p *Pointer) ReadDelta() (int, int) {
	dx, dy := p.dx, p.dy
	p.dx = 0
	p.dy = 0
	return dx, dy
}

// ClearDelta zeroes the accumulated motion.
func (p *Pointer) ClearDelta() {
	p.dx = 0
	p.dy = 0
}

// the bits used by the Buttons() function.
const (
	ButtonLeft   uint8 = 0x01
	ButtonRight  uint8 = 0x02
	ButtonMiddle uint8 = 0x04
	ButtonX1     uint8 = 0x08
	ButtonX2     uint8 = 0x10
)

// Buttons returns the state of the mouse buttons as a bitmask.
func Buttons(st *scancode.State) uint8 {
	var b uint8
	if st.Get(scancode.MouseLeft) {
		b |= ButtonLeft
	}
	if st.Get(scancode.MouseRight) {
		b |= ButtonRight
	}
	if st.Get(scancode.MouseMiddle) {
		b |= ButtonMiddle
	}
	if st.Get(scancode.MouseX1) {
		b |= ButtonX1
	}
	if st.Get(scancode.MouseX2) {
		b |= ButtonX2
	}
	return b
}
