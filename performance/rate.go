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

package performance

import "github.com/gostone/gostone/clock"

// CalcRate takes the number of frames waited for and the duration (in
// seconds) and returns the frames-per-second and the accuracy of that value
// as a percentage of clock.TicksPerSecond.
func CalcRate(numFrames int, duration float64) (rate float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	rate = float64(numFrames) / duration
	accuracy = 100 * rate / clock.TicksPerSecond
	return rate, accuracy
}
