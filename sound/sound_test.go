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

package sound_test

import (
	"testing"

	"github.com/gostone/gostone/prefs"
	"github.com/gostone/gostone/sound"
	"github.com/gostone/gostone/test"
)

// peak returns the largest absolute sample value.
func peak(samples [][2]float64) float64 {
	var p float64
	for _, s := range samples {
		for _, v := range s {
			if v < 0 {
				v = -v
			}
			p = max(p, v)
		}
	}
	return p
}

func TestClick(t *testing.T) {
	snd, err := sound.NewSound(nil)
	test.DemandSuccess(t, err)

	samples := make([][2]float64, 512)

	snd.Stream(samples)
	test.ExpectEquality(t, peak(samples), 0.0)

	test.ExpectSuccess(t, snd.Click())
	test.ExpectEquality(t, snd.Playing(), 1)
	snd.Stream(samples)
	test.ExpectSuccess(t, peak(samples) > 0.5)

	// the click finishes
	for range 10 {
		snd.Stream(samples)
	}
	test.ExpectEquality(t, snd.Playing(), 0)
}

func TestMute(t *testing.T) {
	snd, err := sound.NewSound(nil)
	test.DemandSuccess(t, err)

	samples := make([][2]float64, 256)

	snd.Mute(true)
	test.ExpectSuccess(t, snd.IsMuted())
	test.DemandSuccess(t, snd.Click())
	snd.Stream(samples)
	test.ExpectEquality(t, peak(samples), 0.0)

	snd.Mute(false)
	test.ExpectFailure(t, snd.IsMuted())
	snd.Stream(samples)
	test.ExpectSuccess(t, peak(samples) > 0.5)
}

func TestVolume(t *testing.T) {
	reg := prefs.NewRegistry("test")
	snd, err := sound.NewSound(reg)
	test.DemandSuccess(t, err)

	// each step of -1 halves the amplitude
	test.DemandSuccess(t, reg.Set("sound.volume", "-2"))
	test.DemandSuccess(t, snd.Click())

	samples := make([][2]float64, 256)
	snd.Stream(samples)
	test.ExpectApproximate(t, peak(samples), 0.25, 0.05)
}
