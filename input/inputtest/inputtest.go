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

// Package inputtest provides implementations of the collaborators of the
// input package for use in tests.
package inputtest

import (
	"errors"

	"github.com/gostone/gostone/joystick"
	"github.com/gostone/gostone/userinput"
)

// Source is a scripted implementation of the userinput.EventSource interface.
//
// Events added with Push() are returned by PollEvent() in order. Events added
// with Pending() are only made available by the next call to PumpEvents().
type Source struct {
	queue   []userinput.Event
	pending []userinput.Event

	// the number of calls to PumpEvents()
	Pumps int

	// called at the end of every PumpEvents(). can be used to script input
	// that arrives during a wait
	OnPump func(pumps int)
}

// Push events that will be returned by PollEvent().
func (src *Source) Push(ev ...userinput.Event) {
	src.queue = append(src.queue, ev...)
}

// Pending adds events that will be made available by the next call to
// PumpEvents().
func (src *Source) Pending(ev ...userinput.Event) {
	src.pending = append(src.pending, ev...)
}

// Len returns the number of events waiting to be polled.
func (src *Source) Len() int {
	return len(src.queue)
}

// PumpEvents implements the userinput.EventSource interface.
func (src *Source) PumpEvents() {
	src.Pumps++
	src.queue = append(src.queue, src.pending...)
	src.pending = src.pending[:0]
	if src.OnPump != nil {
		src.OnPump(src.Pumps)
	}
}

// PollEvent implements the userinput.EventSource interface.
func (src *Source) PollEvent() userinput.Event {
	if len(src.queue) == 0 {
		return nil
	}
	ev := src.queue[0]
	src.queue = src.queue[1:]
	return ev
}

// Clock is an implementation of the clock.Clock interface that advances by one
// tick every time WaitFrame() is called.
type Clock struct {
	Tick uint32

	// the number of calls to WaitFrame()
	Waits int
}

// Ticks implements the clock.Clock interface.
func (clk *Clock) Ticks() uint32 {
	return clk.Tick
}

// WaitFrame implements the clock.Clock interface.
func (clk *Clock) WaitFrame() {
	clk.Waits++
	clk.Tick++
}

// ErrRefused is returned by Grabber when Refuse is true.
var ErrRefused = errors.New("inputtest: capture refused")

// Grabber is an implementation of the capture.Grabber interface.
type Grabber struct {
	Captured bool

	// refuse requests to capture the pointer
	Refuse bool

	// the number of calls to SetCapture()
	Calls int
}

// SetCapture implements the capture.Grabber interface.
func (g *Grabber) SetCapture(captured bool) error {
	g.Calls++
	if captured && g.Refuse {
		return ErrRefused
	}
	g.Captured = captured
	return nil
}

// Muter is an implementation of the capture.Muter interface.
type Muter struct {
	Muted bool

	// the number of calls to Mute()
	Calls int
}

// Mute implements the capture.Muter interface.
func (m *Muter) Mute(muted bool) {
	m.Calls++
	m.Muted = muted
}

// Device is an implementation of the joystick.Device interface. The state of
// the device is changed by writing to the Axes, Buttons and HatState fields.
type Device struct {
	DeviceName  string
	DeviceClass joystick.Class
	Axes        []int
	Buttons     []bool
	HatState    joystick.Hat

	Updates int
	Closed  bool
}

// NewController returns a Device of class joystick.ClassController.
func NewController() *Device {
	return &Device{
		DeviceName:  "test controller",
		DeviceClass: joystick.ClassController,
		Axes:        make([]int, joystick.NumControllerAxes),
		Buttons:     make([]bool, joystick.NumControllerButtons),
	}
}

// NewJoystick returns a Device of class joystick.ClassJoystick with the
// specified number of axes and buttons.
func NewJoystick(axes int, buttons int) *Device {
	return &Device{
		DeviceName:  "test joystick",
		DeviceClass: joystick.ClassJoystick,
		Axes:        make([]int, axes),
		Buttons:     make([]bool, buttons),
	}
}

// Name implements the joystick.Device interface.
func (dev *Device) Name() string {
	return dev.DeviceName
}

// Class implements the joystick.Device interface.
func (dev *Device) Class() joystick.Class {
	return dev.DeviceClass
}

// NumAxes implements the joystick.Device interface.
func (dev *Device) NumAxes() int {
	return len(dev.Axes)
}

// NumButtons implements the joystick.Device interface.
func (dev *Device) NumButtons() int {
	return len(dev.Buttons)
}

// Axis implements the joystick.Device interface.
func (dev *Device) Axis(i int) int {
	if i < 0 || i >= len(dev.Axes) {
		return 0
	}
	return dev.Axes[i]
}

// Button implements the joystick.Device interface.
func (dev *Device) Button(i int) bool {
	if i < 0 || i >= len(dev.Buttons) {
		return false
	}
	return dev.Buttons[i]
}

// Hat implements the joystick.Device interface.
func (dev *Device) Hat() joystick.Hat {
	return dev.HatState
}

// Update implements the joystick.Device interface.
func (dev *Device) Update() {
	dev.Updates++
}

// Close implements the joystick.Device interface.
func (dev *Device) Close() {
	dev.Closed = true
}

// Prober is an implementation of the joystick.Prober interface.
type Prober struct {
	// the devices returned by successive calls to OpenDevice(). nil entries
	// are allowed and mean that no device was found
	Devices []*Device

	// the number of calls to OpenDevice()
	Calls int
}

// OpenDevice implements the joystick.Prober interface. A nil Device pointer
// is returned as a nil interface.
func (p *Prober) OpenDevice() joystick.Device {
	p.Calls++
	if len(p.Devices) == 0 {
		return nil
	}
	dev := p.Devices[0]
	p.Devices = p.Devices[1:]
	if dev == nil {
		return nil
	}
	return dev
}

// Quit counts the number of times the quit function is called.
type Quit struct {
	Calls int
}

// Func returns a function suitable for use as the quit collaborator.
func (q *Quit) Func() func() {
	return func() {
		q.Calls++
	}
}
