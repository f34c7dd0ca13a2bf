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

package joystick

import (
	"fmt"

	"github.com/gostone/gostone/curated"
	"github.com/gostone/gostone/prefs"
)

// Sentinel error patterns.
const (
	InvalidAxis  = "joystick: invalid axis: %d"
	InvalidValue = "joystick: invalid %s for axis %d: %d"
)

// default values for every axis.
const (
	DefaultDeadzone    = 2
	DefaultSensitivity = 10
)

// Prefs holds the per-axis configuration.
type Prefs struct {
	Deadzone    [MaxAxes]prefs.Int
	Sensitivity [MaxAxes]prefs.Int
}

// NewPrefs is the preferred method of initialisation for the Prefs type. The
// preferences are added to the registry, if one is supplied, with the keys
// joystick.deadzone.N and joystick.sensitivity.N.
func NewPrefs(reg *prefs.Registry) (*Prefs, error) {
	p := &Prefs{}

	for i := 0; i < MaxAxes; i++ {
		axis := i

		p.Deadzone[i].SetDefault(DefaultDeadzone)
		p.Deadzone[i].SetHookPre(func(v prefs.Value) error {
			if n := v.(int); n < 0 {
				return curated.Errorf(InvalidValue, "deadzone", axis, n)
			}
			return nil
		})

		p.Sensitivity[i].SetDefault(DefaultSensitivity)
		p.Sensitivity[i].SetHookPre(func(v prefs.Value) error {
			if n := v.(int); n < 1 {
				return curated.Errorf(InvalidValue, "sensitivity", axis, n)
			}
			return nil
		})

		if reg != nil {
			if err := reg.Add(fmt.Sprintf("joystick.deadzone.%d", i), &p.Deadzone[i]); err != nil {
				return nil, fmt.Errorf("joystick: %w", err)
			}
			if err := reg.Add(fmt.Sprintf("joystick.sensitivity.%d", i), &p.Sensitivity[i]); err != nil {
				return nil, fmt.Errorf("joystick: %w", err)
			}
		}
	}

	return p, nil
}

// SetDefaults resets the deadzone and sensitivity of every axis.
func (p *Prefs) SetDefaults() {
	for i := 0; i < MaxAxes; i++ {
		_ = p.Deadzone[i].Reset()
		_ = p.Sensitivity[i].Reset()
	}
}

// SetDeadzone for axis. The value must not be negative.
func (p *Prefs) SetDeadzone(axis int, v int) error {
	if axis < 0 || axis >= MaxAxes {
		return curated.Errorf(InvalidAxis, axis)
	}
	return p.Deadzone[axis].Set(v)
}

// GetDeadzone for axis. Returns zero for an invalid axis.
func (p *Prefs) GetDeadzone(axis int) int {
	if axis < 0 || axis >= MaxAxes {
		return 0
	}
	return p.Deadzone[axis].Get().(int)
}

// SetSensitivity for axis. The value must be at least one.
func (p *Prefs) SetSensitivity(axis int, v int) error {
	if axis < 0 || axis >= MaxAxes {
		return curated.Errorf(InvalidAxis, axis)
	}
	return p.Sensitivity[axis].Set(v)
}

// GetSensitivity for axis. Returns zero for an invalid axis.
func (p *Prefs) GetSensitivity(axis int) int {
	if axis < 0 || axis >= MaxAxes {
		return 0
	}
	return p.Sensitivity[axis].Get().(int)
}

// threshold returns the magnitude an axis sample must exceed to count as a
// press.
func (p *Prefs) threshold(axis int) int {
	return clamp(p.GetDeadzone(axis)*AxisMax/20, 0, AxisMax)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
