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

// Package sdlplatform implements the platform collaborators of the input
// package with SDL.
//
// The Platform type implements the userinput.EventSource, capture.Grabber,
// joystick.Prober and clock.Clock interfaces. It must be created and used on
// the main thread.
package sdlplatform

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gostone/gostone/clock"
	"github.com/gostone/gostone/logger"
	"github.com/gostone/gostone/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform is the SDL implementation of the platform collaborators.
type Platform struct {
	window *sdl.Window
}

// NewPlatform is the preferred method of initialisation for the Platform type.
func NewPlatform(title string, width int32, height int32) (*Platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &Platform{}

	plt.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	return plt, nil
}

// Destroy cleans up the resources.
func (plt *Platform) Destroy() error {
	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
		plt.window = nil
	}
	sdl.Quit()
	return nil
}

// SetTitle changes the window title.
func (plt *Platform) SetTitle(title string) {
	plt.window.SetTitle(title)
}

// PumpEvents implements the userinput.EventSource interface.
func (plt *Platform) PumpEvents() {
	sdl.PumpEvents()
}

// PollEvent implements the userinput.EventSource interface. SDL events that
// have no meaning to the input package are discarded.
func (plt *Platform) PollEvent() userinput.Event {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if e := translateEvent(ev); e != nil {
			return e
		}
	}
	return nil
}

func translateEvent(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.KeyboardEvent:
		key := translateKey(ev.Keysym.Sym)
		if key == userinput.KeyUnknown {
			return nil
		}
		return userinput.EventKeyboard{
			Key:    key,
			Down:   ev.Type == sdl.KEYDOWN,
			Repeat: ev.Repeat != 0,
			Mod:    translateMod(ev.Keysym.Mod),
		}

	case *sdl.MouseButtonEvent:
		var button userinput.MouseButton
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			button = userinput.MouseButtonLeft
		case sdl.BUTTON_MIDDLE:
			button = userinput.MouseButtonMiddle
		case sdl.BUTTON_RIGHT:
			button = userinput.MouseButtonRight
		case sdl.BUTTON_X1:
			button = userinput.MouseButtonX1
		case sdl.BUTTON_X2:
			button = userinput.MouseButtonX2
		default:
			return nil
		}
		return userinput.EventMouseButton{
			Button: button,
			Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
		}

	case *sdl.MouseMotionEvent:
		return userinput.EventMouseMotion{
			DX: int(ev.XRel),
			DY: int(ev.YRel),
		}

	case *sdl.MouseWheelEvent:
		if ev.Y == 0 {
			return nil
		}
		return userinput.EventMouseWheel{
			Delta:   int(ev.Y),
			Flipped: ev.Direction == sdl.MOUSEWHEEL_FLIPPED,
		}

	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			return userinput.EventWindowFocus{Gained: true}
		case sdl.WINDOWEVENT_FOCUS_LOST:
			return userinput.EventWindowFocus{Gained: false}
		}

	case *sdl.JoyAxisEvent, *sdl.JoyButtonEvent, *sdl.JoyHatEvent,
		*sdl.ControllerAxisEvent, *sdl.ControllerButtonEvent:
		return userinput.EventJoystick{}

	case *sdl.JoyDeviceAddedEvent:
		return userinput.EventDeviceAdded{Index: int(ev.Which)}

	case *sdl.JoyDeviceRemovedEvent:
		return userinput.EventDeviceRemoved{Index: int(ev.Which)}
	}

	return nil
}

// SetCapture implements the capture.Grabber interface. The pointer is
// captured by putting SDL into relative mouse mode.
func (plt *Platform) SetCapture(captured bool) error {
	if sdl.SetRelativeMouseMode(captured) != 0 {
		err := sdl.GetError()
		if err == nil {
			err = errors.New("relative mouse mode not supported")
		}
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// Ticks implements the clock.Clock interface.
func (plt *Platform) Ticks() uint32 {
	return uint32(uint64(sdl.GetTicks()) * clock.TicksPerSecond / 1000)
}

// WaitFrame implements the clock.Clock interface. Returns at the start of
// the next tick.
func (plt *Platform) WaitFrame() {
	now := uint64(sdl.GetTicks())
	tick := now * clock.TicksPerSecond / 1000
	next := ((tick+1)*1000 + clock.TicksPerSecond - 1) / clock.TicksPerSecond
	sdl.Delay(uint32(next - now))
}
