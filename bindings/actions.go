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

package bindings

import "strings"

// Action is a logical input that can be bound to one or more codes.
type Action int

// List of valid Action values.
const (
	Forward Action = iota
	Backward
	Left
	Right
	Strafe
	StrafeLeft
	StrafeRight
	QuickLeft
	QuickRight
	TurnAround
	Run
	Attack
	Weapon1
	Weapon2
	Weapon3
	Weapon4
	Weapon5
	Weapon6
	Weapon7
	Use
	Stats
	RadarMagnify
	RadarMinify
	Help
	Save
	Load
	Sound
	Controls
	EndGame
	QuickSave
	QuickLoad
	QuickExit
	AttackInfo
	Lightning
	Sfx
	Music
	Ceiling
	Flooring
	HeartBeat
	Pause
	GrabMouse
	CyclePreviousWeapon
	CycleNextWeapon

	NumActions
)

var actionNames = [NumActions]string{
	"forward",
	"backward",
	"left",
	"right",
	"strafe",
	"strafe_left",
	"strafe_right",
	"quick_left",
	"quick_right",
	"turn_around",
	"run",
	"attack",
	"weapon_1",
	"weapon_2",
	"weapon_3",
	"weapon_4",
	"weapon_5",
	"weapon_6",
	"weapon_7",
	"use",
	"stats",
	"radar_magnify",
	"radar_minify",
	"help",
	"save",
	"load",
	"sound",
	"controls",
	"end_game",
	"quick_save",
	"quick_load",
	"quick_exit",
	"attack_info",
	"lightning",
	"sfx",
	"music",
	"ceiling",
	"flooring",
	"heart_beat",
	"pause",
	"grab_mouse",
	"cycle_previous_weapon",
	"cycle_next_weapon",
}

func (a Action) String() string {
	if a < 0 || a >= NumActions {
		return "unknown"
	}
	return actionNames[a]
}

// LookupAction returns the Action with the given name. The name is not case
// sensitive.
func LookupAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return NumActions, false
}
