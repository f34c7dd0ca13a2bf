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

package clock

import "time"

// SetTimeSource replaces the functions used by the Limiter to read the time
// and to sleep.
func (lim *Limiter) SetTimeSource(now func() time.Time, sleep func(time.Duration)) {
	lim.now = now
	lim.sleep = sleep
	lim.start = now()
}
