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

// Package capture implements the pointer capture state machine.
//
// The pointer is either captured or released. Transitions are requested
// explicitly with Request(), implicitly by the pointer with Engage() and by
// changes of window focus.
//
// When the window loses focus the pointer is released and the capture state
// before the loss is remembered. When the window regains focus the pointer is
// captured again if it was captured before the loss.
//
// Failure of the platform to capture the pointer is not an error. The pointer
// simply remains released.
package capture

import (
	"github.com/gostone/gostone/logger"
)

// Grabber is implemented by platform backends that can capture the pointer.
type Grabber interface {
	SetCapture(captured bool) error
}

// Muter is implemented by the audio system.
type Muter interface {
	Mute(muted bool)
}

// Capture is the pointer capture state machine.
type Capture struct {
	grabber Grabber
	muter   Muter

	captured bool

	// whether the pointer was captured at the point focus was lost. only
	// meaningful between a FocusLost() and the next FocusGained()
	restore bool
}

// NewCapture is the preferred method of initialisation for the Capture type.
// The muter can be nil.
func NewCapture(grabber Grabber, muter Muter) *Capture {
	return &Capture{
		grabber: grabber,
		muter:   muter,
	}
}

// IsCaptured returns true if the pointer is captured.
func (c *Capture) IsCaptured() bool {
	return c.captured
}

// RestorePending returns true if the pointer will be captured when focus is
// regained.
func (c *Capture) RestorePending() bool {
	return c.restore
}

// Request the capture state. Returns the resulting state, which will be
// released if the request to capture failed. Requesting the current state
// does nothing.
func (c *Capture) Request(captured bool) bool {
	if captured == c.captured {
		return c.captured
	}

	if err := c.grabber.SetCapture(captured); err != nil {
		logger.Log(logger.Allow, "capture", err)
		c.captured = false
		return false
	}

	c.captured = captured
	logger.Logf(logger.Allow, "capture", "captured: %v", c.captured)

	return c.captured
}

// Toggle the capture state. Returns the resulting state.
func (c *Capture) Toggle() bool {
	return c.Request(!c.captured)
}

// Engage is called by the pointer when a button is pressed while the pointer
// is released. Returns true if the pointer was captured as a result.
func (c *Capture) Engage() bool {
	if c.captured {
		return false
	}
	return c.Request(true)
}

// FocusLost releases the pointer and mutes the audio.
func (c *Capture) FocusLost() {
	c.restore = c.captured
	c.Request(false)
	if c.muter != nil {
		c.muter.Mute(true)
	}
	logger.Logf(logger.Allow, "capture", "focus lost (restore: %v)", c.restore)
}

// FocusGained captures the pointer if it was captured when focus was lost and
// unmutes the audio.
func (c *Capture) FocusGained() {
	if c.restore {
		c.Request(true)
	}
	c.restore = false
	if c.muter != nil {
		c.muter.Mute(false)
	}
	logger.Logf(logger.Allow, "capture", "focus gained (captured: %v)", c.captured)
}
