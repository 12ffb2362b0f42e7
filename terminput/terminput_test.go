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

package terminput

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tickinput/tickinput/test"
	"github.com/tickinput/tickinput/userinput"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	test.DemandSuccess(t, scr.Init())
	scr.SetSize(80, 24)
	t.Cleanup(scr.Fini)
	return &Backend{screen: scr, now: time.Now}
}

func TestTranslateKeys(t *testing.T) {
	b := newTestBackend(t)
	now := time.Now()

	evs := b.translate(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), now)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0], userinput.Event(userinput.EventKeyboard{Key: "A", Down: true}))

	evs = b.translate(tcell.NewEventKey(tcell.KeyRune, 'B', tcell.ModNone), now)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].(userinput.EventKeyboard).Mod, userinput.KeyModShift)

	evs = b.translate(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), now)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].(userinput.EventKeyboard).Key, "Space")

	evs = b.translate(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].(userinput.EventKeyboard).Key, "Up")

	// the key has not been released so this is a repeat
	evs = b.translate(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectSuccess(t, evs[0].(userinput.EventKeyboard).Repeat)

	// all four keys are released after the timeout
	evs = b.release.Expire(now.Add(userinput.DefaultReleaseTimeout))
	test.ExpectEquality(t, len(evs), 4)
}

func TestTranslateMouse(t *testing.T) {
	b := newTestBackend(t)
	now := time.Now()

	// movement without a button is ignored
	evs := b.translate(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone), now)
	test.ExpectEquality(t, len(evs), 0)

	evs = b.translate(tcell.NewEventMouse(2, 3, tcell.Button1, tcell.ModNone), now)
	test.DemandEquality(t, len(evs), 1)
	tev := evs[0].(userinput.EventTouch)
	test.ExpectEquality(t, tev.Phase, userinput.TouchStart)
	test.ExpectEquality(t, tev.ID, int64(1))
	test.ExpectApproximate(t, tev.X, 2*CellWidth+CellWidth/2, 0.001)
	test.ExpectApproximate(t, tev.Y, 3*CellHeight+CellHeight/2, 0.001)

	evs = b.translate(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone), now)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].(userinput.EventTouch).Phase, userinput.TouchMove)

	evs = b.translate(tcell.NewEventMouse(4, 3, tcell.ButtonNone, tcell.ModNone), now)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].(userinput.EventTouch).Phase, userinput.TouchEnd)

	evs = b.translate(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone), now)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].(userinput.EventTouch).ID, int64(2))
}

func TestTranslateResize(t *testing.T) {
	b := newTestBackend(t)
	evs := b.translate(tcell.NewEventResize(100, 40), time.Now())
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0], userinput.Event(userinput.EventResize{Width: 100 * CellWidth, Height: 40 * CellHeight}))

	w, h := b.Size()
	test.ExpectEquality(t, w, 80*CellWidth)
	test.ExpectEquality(t, h, 24*CellHeight)
}
