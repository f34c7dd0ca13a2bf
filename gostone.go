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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/gdamore/tcell/v2"
	"github.com/gostone/gostone/capture"
	"github.com/gostone/gostone/clock"
	"github.com/gostone/gostone/input"
	"github.com/gostone/gostone/joystick"
	"github.com/gostone/gostone/logger"
	"github.com/gostone/gostone/modalflag"
	"github.com/gostone/gostone/performance"
	"github.com/gostone/gostone/platform/glfwplatform"
	"github.com/gostone/gostone/platform/sdlplatform"
	"github.com/gostone/gostone/platform/termplatform"
	"github.com/gostone/gostone/prefs"
	"github.com/gostone/gostone/sound"
	"github.com/gostone/gostone/statsview"
	"github.com/gostone/gostone/userinput"
	"github.com/gostone/gostone/version"
)

// SDL and GLFW both require that window creation and event handling happen
// on the main thread.
func init() {
	runtime.LockOSThread()
}

const (
	defaultWidth  = 640
	defaultHeight = 400
)

// platform is implemented by all the platform packages.
type platform interface {
	userinput.EventSource
	capture.Grabber
	clock.Clock
}

// options from the top level of the command line.
type options struct {
	log       bool
	profile   performance.Profile
	statsview bool
	memviz    string
	bindings  string
	duration  time.Duration
	mute      bool
}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("SDL", "GLFW", "TERMINAL")
	md.AdditionalHelp(fmt.Sprintf("%s reads the keyboard, pointer and joystick and reports the\n"+
		"state of the bound actions. Press Escape or the Start button to end.", version.ApplicationName))

	md.AddPrefs()
	log := md.AddBool("log", false, "echo debugging log to stdout")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))
	memvizFile := md.AddString("memviz", "", "write a graph of the binding table to file on exit")
	bindingOverrides := md.AddString("bindings", "", "binding overrides (action=code,code | action=code)")
	duration := md.AddDuration("duration", 0, "end after duration (zero runs until ended by the user)")
	mute := md.AddBool("mute", false, "do not produce any sound")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	opts := options{
		log:       *log,
		statsview: *stats,
		memviz:    *memvizFile,
		bindings:  *bindingOverrides,
		duration:  *duration,
		mute:      *mute,
	}

	opts.profile, err = performance.ParseProfileString(*profile)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	err = performance.RunProfiler(opts.profile, "gostone", func() error {
		return launch(md, opts)
	})
	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// launch creates the platform selected by the mode and runs the session.
func launch(md *modalflag.Modes, opts options) error {
	var plt platform
	var disp display
	var destroy func()

	md.NewMode()

	switch md.Mode() {
	case "SDL", "GLFW":
		width := md.AddInt("width", defaultWidth, "window width")
		height := md.AddInt("height", defaultHeight, "window height")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		title := version.String()
		if md.Mode() == "SDL" {
			sdl, err := sdlplatform.NewPlatform(title, int32(*width), int32(*height))
			if err != nil {
				return err
			}
			plt = sdl
			destroy = func() {
				if err := sdl.Destroy(); err != nil {
					logger.Log(logger.Allow, "sdl", err)
				}
			}
			disp = &titleDisplay{setTitle: sdl.SetTitle, title: title}
		} else {
			glfw, err := glfwplatform.NewPlatform(title, *width, *height)
			if err != nil {
				return err
			}
			plt = glfw
			destroy = glfw.Destroy
			disp = &titleDisplay{setTitle: glfw.SetTitle, title: title}
		}

		if opts.log {
			logger.SetEcho(os.Stdout)
		}

	case "TERMINAL":
		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		term, err := termplatform.NewPlatform(screen)
		if err != nil {
			return err
		}
		plt = term
		destroy = term.Destroy
		disp = &screenDisplay{screen: term.Screen()}

		// the log cannot be echoed while tcell owns the terminal. it is
		// written out when the session ends instead
		if opts.log {
			defer logger.Write(os.Stdout)
		}
	}

	if len(md.RemainingArgs()) > 0 {
		destroy()
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	err := session(plt, disp, opts)
	destroy()

	return err
}

// session creates the input manager for the platform and runs the main loop.
func session(plt platform, disp display, opts options) error {
	if opts.statsview {
		statsview.Launch(os.Stdout)
	}

	reg := prefs.NewRegistry(version.ApplicationName)

	snd, err := sound.NewSound(reg)
	if err != nil {
		return err
	}
	if !opts.mute {
		if err := snd.Start(); err != nil {
			// the session can continue without sound
			logger.Log(logger.Allow, "sound", err)
		}
		defer snd.Stop()
	}

	var quit atomic.Bool

	col := input.Collaborators{
		Source:  plt,
		Clock:   plt,
		Grabber: plt,
		Muter:   snd,
		Quit: func() {
			quit.Store(true)
		},
	}
	if prober, ok := plt.(joystick.Prober); ok {
		col.Prober = prober
	}

	mgr, err := input.NewManager(col, reg)
	if err != nil {
		return err
	}

	if opts.bindings != "" {
		if err := reg.Set("input.bindings", opts.bindings); err != nil {
			return err
		}
	}

	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
	}

	// ctrl-c ends the session at the next frame
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	go func() {
		for range intChan {
			quit.Store(true)
		}
	}()

	mgr.Startup()
	defer mgr.Shutdown()

	loop := &mainLoop{
		mgr:  mgr,
		clk:  plt,
		snd:  snd,
		disp: disp,
		quit: &quit,
	}

	start := time.Now()
	err = loop.run(opts.duration)
	if err != nil {
		return err
	}

	rate, accuracy := performance.CalcRate(loop.frames, time.Since(start).Seconds())
	logger.Logf(logger.Allow, "gostone", "%d frames at %.2f fps (%.1f%%)", loop.frames, rate, accuracy)

	if opts.memviz != "" {
		f, err := os.Create(opts.memviz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, mgr.Bindings())
	}

	return nil
}
