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
	"time"

	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/control"
	"github.com/tickinput/tickinput/environment"
	"github.com/tickinput/tickinput/userinput"
)

// Type is the name of the interpreter type.
const Type = "touch"

// Interpreter is the control.Interpreter for touch screens.
//
// Touch events only record the state of each touch. Gestures are recognised
// when TriggeredActions() is called, with each binding in the current profile
// examining the set of touches in declaration order. A binding can claim a
// touch for the duration of the tick, in which case bindings later in the
// profile will not use it. Claims do not persist between ticks.
type Interpreter struct {
	*control.Base[*Binding]

	// touches in the order they started
	touches []*record
	byID    map[int64]*record

	// touches claimed by a binding during the current tick
	claims map[int64]*Binding

	// the time at the start of the current tick
	cycle time.Time

	width, height int
}

// NewInterpreter is the preferred method of initialisation for the
// Interpreter type.
//
// No gestures will be recognised until the screen size has been set with
// SetScreenSize() or with a userinput.EventResize event.
func NewInterpreter(env *environment.Environment, cfg config.Interpreter) (*Interpreter, error) {
	t := &Interpreter{
		byID:   make(map[int64]*record),
		claims: make(map[int64]*Binding),
	}

	var err error
	t.Base, err = control.NewBase(env, Type, cfg, LoadBinding, t.intensity)
	if err != nil {
		return nil, err
	}
	t.SetSource(t)

	return t, nil
}

// SetScreenSize sets the size of the screen in pixels. The area and range of
// every binding are recalculated.
func (t *Interpreter) SetScreenSize(w, h int) {
	t.width = w
	t.height = h
	t.EachBinding(func(b *Binding) {
		b.layout(w, h)
	})
}

// ScreenSize returns the size of the screen in pixels.
func (t *Interpreter) ScreenSize() (int, int) {
	return t.width, t.height
}

// the current time according to the environment's clock
func (t *Interpreter) now() time.Time {
	if now := t.Environment().Now; now != nil {
		return now()
	}
	return time.Now()
}

// discard all touches and all gesture state
func (t *Interpreter) reset() {
	t.touches = t.touches[:0]
	clear(t.byID)
	clear(t.claims)
	t.EachBinding(func(b *Binding) {
		b.reset()
	})
}

// StartListening implements the control.Interpreter interface.
func (t *Interpreter) StartListening() {
	t.Base.StartListening()
	t.reset()
}

// StopListening implements the control.Interpreter interface. Gestures in
// progress are discarded.
func (t *Interpreter) StopListening() {
	t.Base.StopListening()
	t.reset()
}

// Touches returns the number of touches being tracked.
func (t *Interpreter) Touches() int {
	return len(t.touches)
}

// TouchStart records the start of a new touch. Positions are in pixels.
func (t *Interpreter) TouchStart(id int64, x, y float64, when time.Time) {
	if !t.IsListening() {
		return
	}
	r := newRecord(id, x, y, when)
	t.touches = append(t.touches, r)
	t.byID[id] = r
}

// TouchMove records the movement of an existing touch.
func (t *Interpreter) TouchMove(id int64, x, y float64, _ time.Time) {
	if !t.IsListening() {
		return
	}
	if r, ok := t.byID[id]; ok && !r.finished {
		r.move(x, y)
	}
}

// TouchEnd records the end of an existing touch.
func (t *Interpreter) TouchEnd(id int64, x, y float64, when time.Time) {
	if !t.IsListening() {
		return
	}
	if r, ok := t.byID[id]; ok && !r.finished {
		r.finish(x, y, when)
	}
}

// TouchCancel is the same as TouchEnd.
func (t *Interpreter) TouchCancel(id int64, x, y float64, when time.Time) {
	t.TouchEnd(id, x, y, when)
}

// HandleEvent implements the userinput.HandleInput interface.
func (t *Interpreter) HandleEvent(ev userinput.Event) (bool, error) {
	switch ev := ev.(type) {
	case userinput.EventTouch:
		when := ev.Time
		if when.IsZero() {
			when = t.now()
		}
		switch ev.Phase {
		case userinput.TouchStart:
			t.TouchStart(ev.ID, ev.X, ev.Y, when)
		case userinput.TouchMove:
			t.TouchMove(ev.ID, ev.X, ev.Y, when)
		case userinput.TouchEnd:
			t.TouchEnd(ev.ID, ev.X, ev.Y, when)
		case userinput.TouchCancel:
			t.TouchCancel(ev.ID, ev.X, ev.Y, when)
		}
		return t.IsListening(), nil

	case userinput.EventResize:
		t.SetScreenSize(ev.Width, ev.Height)
		return true, nil
	}

	return false, nil
}

// TriggeredActions implements the control.Interpreter interface.
//
// Finished touches are forgotten once every binding has had the chance to
// see them. This happens even if the interpreter is disabled.
func (t *Interpreter) TriggeredActions(allow func(string) bool) [][]control.TriggeredAction {
	if !t.IsListening() {
		return nil
	}

	t.cycle = t.now()
	clear(t.claims)

	groups := t.Base.TriggeredActions(allow)

	t.prune()

	return groups
}

// remove finished touches
func (t *Interpreter) prune() {
	live := t.touches[:0]
	for _, r := range t.touches {
		if r.finished {
			if t.byID[r.id] == r {
				delete(t.byID, r.id)
			}
			continue
		}
		live = append(live, r)
	}
	for i := len(live); i < len(t.touches); i++ {
		t.touches[i] = nil
	}
	t.touches = live
}

func (t *Interpreter) intensity(b *Binding) control.Intensity {
	if t.width <= 0 || t.height <= 0 {
		return control.None
	}
	b.layout(t.width, t.height)

	switch b.gesture {
	case Tap:
		return t.tap(b, TapTimeout, 0)
	case LongTap:
		return t.tap(b, LongTapTimeout, TapTimeout)
	case TwoPointTap:
		return t.multiTap(b, 2)
	case ThreePointTap:
		return t.multiTap(b, 3)
	case Swipe:
		return t.swipe(b)
	case Hold:
		return t.hold(b)
	case Slide:
		return t.slide(b)
	}

	return control.None
}
