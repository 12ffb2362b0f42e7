// This file is part of Tickinput.
//
// Tickinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tickinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tickinput.  If not, see <https://www.gnu.org/licenses/>.

package touch

import (
	"math"
	"time"
)

// record is the live state of a single touch.
type record struct {
	id int64

	startX, startY float64
	prevX, prevY   float64
	x, y           float64

	// the furthest the touch has been from its start position
	maxDistance float64

	start time.Time
	end   time.Time

	finished bool
}

func newRecord(id int64, x, y float64, t time.Time) *record {
	return &record{
		id:     id,
		startX: x,
		startY: y,
		prevX:  x,
		prevY:  y,
		x:      x,
		y:      y,
		start:  t,
	}
}

func (r *record) move(x, y float64) {
	r.prevX, r.prevY = r.x, r.y
	r.x, r.y = x, y
	if d := math.Hypot(x-r.startX, y-r.startY); d > r.maxDistance {
		r.maxDistance = d
	}
}

func (r *record) finish(x, y float64, t time.Time) {
	r.move(x, y)
	r.end = t
	r.finished = true
}

// age of the touch. the age of a finished touch is frozen at the time it
// finished
func (r *record) age(now time.Time) time.Duration {
	if r.finished {
		return r.end.Sub(r.start)
	}
	return now.Sub(r.start)
}

// displacement from the start position
func (r *record) displacement() (float64, float64) {
	return r.x - r.startX, r.y - r.startY
}

// still returns true if the touch has never moved further than the deadzone
// from its start position
func (r *record) still(deadzone float64) bool {
	return r.maxDistance <= deadzone
}
