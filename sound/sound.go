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

// Package sound is the audio output of the application. It is small and only
// exists to give the capture package something to mute when the application
// loses focus, and to produce a click when the user acknowledges a prompt.
//
// Sound must be started with Start() before anything is heard. Until then the
// output can be read with the Stream() function, which is useful for testing.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gostone/gostone/logger"
	"github.com/gostone/gostone/prefs"
)

// SampleRate of the audio output.
const SampleRate = beep.SampleRate(44100)

// the length and pitch of the click sound
const (
	clickDuration  = 30 * time.Millisecond
	clickFrequency = 880.0
)

// Prefs for the sound package.
type Prefs struct {
	// volume adjustment in the same units as effects.Volume. zero is no
	// change, negative values are quieter
	Volume prefs.Float
}

// Sound mixes the sounds played by the application.
type Sound struct {
	Prefs *Prefs

	mixer  *beep.Mixer
	volume *effects.Volume

	started bool
	muted   bool
}

// NewSound is the preferred method of initialisation for the Sound type. The
// reg argument can be nil.
func NewSound(reg *prefs.Registry) (*Sound, error) {
	snd := &Sound{
		Prefs: &Prefs{},
		mixer: &beep.Mixer{},
	}

	snd.volume = &effects.Volume{
		Streamer: snd.mixer,
		Base:     2,
	}

	snd.Prefs.Volume.SetHookPost(func(v prefs.Value) error {
		snd.lock()
		defer snd.unlock()
		snd.volume.Volume = v.(float64)
		return nil
	})

	if reg != nil {
		if err := reg.Add("sound.volume", &snd.Prefs.Volume); err != nil {
			return nil, err
		}
	}

	return snd, nil
}

// Start sends the output to the speaker.
func (snd *Sound) Start() error {
	if snd.started {
		return nil
	}

	err := speaker.Init(SampleRate, SampleRate.N(time.Second/10))
	if err != nil {
		return fmt.Errorf("sound: %w", err)
	}
	speaker.Play(snd.volume)
	snd.started = true

	logger.Logf(logger.Allow, "sound", "started at %dHz", SampleRate)

	return nil
}

// Stop the output to the speaker.
func (snd *Sound) Stop() {
	if !snd.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	snd.started = false
}

// the speaker lock is only needed once the speaker is reading the output.
func (snd *Sound) lock() {
	if snd.started {
		speaker.Lock()
	}
}

func (snd *Sound) unlock() {
	if snd.started {
		speaker.Unlock()
	}
}

// Mute implements the capture.Muter interface.
func (snd *Sound) Mute(muted bool) {
	snd.lock()
	defer snd.unlock()

	if snd.muted == muted {
		return
	}
	snd.muted = muted
	snd.volume.Silent = muted

	if muted {
		logger.Log(logger.Allow, "sound", "muted")
	} else {
		logger.Log(logger.Allow, "sound", "unmuted")
	}
}

// IsMuted returns true if the output is muted.
func (snd *Sound) IsMuted() bool {
	return snd.muted
}

// Click plays a short tone.
func (snd *Sound) Click() error {
	tone, err := generators.SineTone(SampleRate, clickFrequency)
	if err != nil {
		return fmt.Errorf("sound: %w", err)
	}

	snd.lock()
	defer snd.unlock()
	snd.mixer.Add(beep.Take(SampleRate.N(clickDuration), tone))

	return nil
}

// Playing returns the number of sounds being played.
func (snd *Sound) Playing() int {
	snd.lock()
	defer snd.unlock()
	return snd.mixer.Len()
}

// Stream the output of the mixer. Should not be called after Start().
func (snd *Sound) Stream(samples [][2]float64) (int, bool) {
	return snd.volume.Stream(samples)
}
