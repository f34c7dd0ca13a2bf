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
	"strings"

	"github.com/gdamore/tcell/v2"
)

// display shows the status lines produced by the main loop.
type display interface {
	show(lines []string)
}

// titleDisplay puts the first status lines in the window title. there is no
// rendering in the windowed platforms.
type titleDisplay struct {
	setTitle func(string)
	title    string
}

func (d *titleDisplay) show(lines []string) {
	if len(lines) > 2 {
		lines = lines[:2]
	}
	d.setTitle(d.title + " | " + strings.Join(lines, " | "))
}

// screenDisplay draws the status lines to a tcell screen.
type screenDisplay struct {
	screen tcell.Screen
}

func (d *screenDisplay) show(lines []string) {
	d.screen.Clear()
	for y, l := range lines {
		x := 0
		for _, r := range l {
			d.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}
	d.screen.Show()
}
