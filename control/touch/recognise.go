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
	"slices"
	"time"

	"github.com/tickinput/tickinput/control"
)

func (t *Interpreter) claimed(r *record) bool {
	_, ok := t.claims[r.id]
	return ok
}

// claimedAgainst returns true if the touch has been claimed by a binding that
// the slide binding cannot share it with. slide bindings on the same axis and
// area share touches so that opposite directions follow the same finger
func (t *Interpreter) claimedAgainst(r *record, b *Binding) bool {
	c, ok := t.claims[r.id]
	if !ok || c == b {
		return false
	}
	return c.gesture != Slide || !b.BindsSameControls(c)
}

// tapCandidate returns true if the touch is uncaptured, started in the area,
// has not moved beyond the tap deadzone and is younger than the timeout
func (t *Interpreter) tapCandidate(b *Binding, r *record) bool {
	return !t.claimed(r) && b.inArea(r) && r.still(TapDeadzone) && r.age(t.cycle) < TapTimeout
}

// tap and long tap. the most recent finished touch that qualifies is claimed
func (t *Interpreter) tap(b *Binding, timeout, minimum time.Duration) control.Intensity {
	var best *record
	for _, r := range t.touches {
		if !r.finished || t.claimed(r) || !b.inArea(r) || !r.still(TapDeadzone) {
			continue
		}
		age := r.age(t.cycle)
		if age >= timeout || age < minimum {
			continue
		}
		if best == nil || !r.start.Before(best.start) {
			best = r
		}
	}

	if best == nil {
		return control.None
	}

	t.claims[best.id] = b
	return control.Edge
}

// multi-point tap. see the package documentation for a description of the
// two phases
func (t *Interpreter) multiTap(b *Binding, n int) control.Intensity {
	if b.phase == searching {
		var found []*record
		for _, r := range t.touches {
			if t.tapCandidate(b, r) {
				found = append(found, r)
			}
		}

		// more than n touches is not the same as n touches
		if len(found) != n {
			return control.None
		}

		b.followed = b.followed[:0]
		for _, r := range found {
			b.followed = append(b.followed, r.id)
		}
		b.phase = following

		// continue with the following phase immediately. this claims the
		// touches for the current tick
	}

	abort := func() control.Intensity {
		b.phase = searching
		b.followed = b.followed[:0]
		return control.None
	}

	finished := true
	for _, id := range b.followed {
		r, ok := t.byID[id]
		if !ok {
			// the touch finished during an earlier tick and has been
			// forgotten
			continue
		}

		if r.age(t.cycle) >= TapTimeout || !r.still(TapDeadzone) {
			return abort()
		}

		if c, ok := t.claims[id]; ok && c != b {
			return abort()
		}

		t.claims[id] = b
		if !r.finished {
			finished = false
		}
	}

	// an extra finger that would have qualified means this is not an n-point
	// tap
	for _, r := range t.touches {
		if slices.Contains(b.followed, r.id) {
			continue
		}
		if t.tapCandidate(b, r) {
			return abort()
		}
	}

	if finished {
		b.phase = searching
		b.followed = b.followed[:0]
		return control.Edge
	}

	return control.None
}

// swipe. the most recent finished touch that moved far enough in the
// direction is claimed
func (t *Interpreter) swipe(b *Binding) control.Intensity {
	var best *record
	for _, r := range t.touches {
		if !r.finished || t.claimed(r) || !b.inArea(r) || r.age(t.cycle) >= SwipeTimeout {
			continue
		}

		dx, dy := r.displacement()
		var d float64
		if b.direction == NoDirection {
			d = math.Hypot(dx, dy)
		} else {
			d = b.direction.along(dx, dy)
		}
		if d <= TapDeadzone {
			continue
		}

		if best == nil || !r.start.Before(best.start) {
			best = r
		}
	}

	if best == nil {
		return control.None
	}

	t.claims[best.id] = b
	return control.Edge
}

// hold. touches are not claimed so more than one hold binding can use the
// same touch. the strongest intensity of all qualifying touches is used
func (t *Interpreter) hold(b *Binding) control.Intensity {
	v := control.None
	for _, r := range t.touches {
		if r.finished || t.claimed(r) || !b.inArea(r) {
			continue
		}

		if b.direction == NoDirection {
			return 1.0
		}

		dx, dy := r.displacement()
		v = control.Stronger(v, b.graded(b.direction.along(dx, dy)))
	}
	return v
}

// slide. the offset accumulates the movement of the followed touch and
// persists when the touch ends. a new touch continues from the existing
// offset. a short still touch resets the offset
func (t *Interpreter) slide(b *Binding) control.Intensity {
	for _, r := range t.touches {
		if r.finished && !t.claimedAgainst(r, b) && b.inArea(r) && r.still(TapDeadzone) && r.age(t.cycle) < TapTimeout {
			t.claims[r.id] = b
			b.offset = 0

			// a touch being followed continues from its current position
			if b.sliding {
				if f, ok := t.byID[b.slideTouch]; ok {
					b.slideLastX = f.x
					b.slideLastY = f.y
				}
			}
			return control.None
		}
	}

	if b.sliding {
		r, ok := t.byID[b.slideTouch]
		if !ok {
			b.sliding = false
		} else if t.claimedAgainst(r, b) {
			b.sliding = false
		} else {
			b.follow(r)
			t.claims[r.id] = b
			if r.finished {
				b.sliding = false
			}
		}
	}

	if !b.sliding {
		for _, r := range t.touches {
			if r.finished || t.claimedAgainst(r, b) || !b.inArea(r) {
				continue
			}
			b.sliding = true
			b.slideTouch = r.id
			b.slideLastX = r.startX
			b.slideLastY = r.startY
			b.follow(r)
			t.claims[r.id] = b
			break
		}
	}

	return b.graded(b.offset)
}

// follow adds the movement of the touch since it was last seen to the slide
// offset
func (b *Binding) follow(r *record) {
	b.offset += b.direction.along(r.x-b.slideLastX, r.y-b.slideLastY)
	b.slideLastX = r.x
	b.slideLastY = r.y

	limit := b.rangePx + MoveDeadzone
	b.offset = math.Max(-limit, math.Min(limit, b.offset))
}
