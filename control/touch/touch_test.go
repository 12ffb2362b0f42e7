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

package touch_test

import (
	"testing"
	"time"

	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/control"
	"github.com/tickinput/tickinput/control/touch"
	"github.com/tickinput/tickinput/curated"
	"github.com/tickinput/tickinput/environment"
	"github.com/tickinput/tickinput/userinput"
	"github.com/tickinput/tickinput/test"
)

// clock is a manually advanced clock for the environment
type clock struct {
	start time.Time
	now   time.Time
}

func newClock() *clock {
	t := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	return &clock{start: t, now: t}
}

func (c *clock) Now() time.Time {
	return c.now
}

// at returns the time ms milliseconds after the start of the clock
func (c *clock) at(ms int) time.Time {
	return c.start.Add(time.Duration(ms) * time.Millisecond)
}

// set the clock to ms milliseconds after the start
func (c *clock) set(ms int) {
	c.now = c.at(ms)
}

func newTestInterpreter(t *testing.T, bindings ...config.Binding) (*touch.Interpreter, *clock) {
	t.Helper()

	clk := newClock()
	env := environment.NewEnvironment("test", nil)
	env.Now = clk.Now

	cfg := config.Interpreter{
		Type:     touch.Type,
		Profiles: []config.Profile{{Name: "default", Bindings: bindings}},
	}

	itp, err := touch.NewInterpreter(env, cfg)
	test.DemandSuccess(t, err)
	itp.StartListening()
	itp.SetScreenSize(1000, 1000)

	return itp, clk
}

// fired returns the names of the triggered actions in group order
func fired(groups [][]control.TriggeredAction) []string {
	var names []string
	for _, g := range groups {
		for _, a := range g {
			names = append(names, a.Name)
		}
	}
	return names
}

func expectFired(t *testing.T, groups [][]control.TriggeredAction, names ...string) {
	t.Helper()
	f := fired(groups)
	if !test.ExpectEquality(t, len(f), len(names)) {
		t.Logf("fired: %v", f)
		return
	}
	for i := range names {
		test.ExpectEquality(t, f[i], names[i])
	}
}

func gesture(action string, typ string) config.Binding {
	return config.Binding{Action: action, Type: typ}
}

func TestLoadBinding(t *testing.T) {
	_, err := touch.LoadBinding("default", config.Binding{Action: "fire", Type: "poke"})
	test.ExpectSuccess(t, curated.Is(err, touch.BindingInvalid))

	_, err = touch.LoadBinding("default", config.Binding{Action: "steer", Type: "slide"})
	test.ExpectSuccess(t, curated.Is(err, touch.BindingInvalid))

	_, err = touch.LoadBinding("default", config.Binding{Action: "fire", Type: "tap", Area: []float64{0.5, 0, 0.2, 1}})
	test.ExpectSuccess(t, curated.Is(err, touch.BindingInvalid))

	_, err = touch.LoadBinding("default", config.Binding{Action: "fire", Type: "tap", Area: []float64{0, 0, 1}})
	test.ExpectSuccess(t, curated.Is(err, touch.BindingInvalid))

	b, err := touch.LoadBinding("default", config.Binding{Action: "fire", Type: "tap", Area: []float64{0, 0, 0.5, 1}})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.Gesture(), touch.Tap)
	test.ExpectEquality(t, b.String(), "tap in 0.00,0.00-0.50,1.00")

	b, err = touch.LoadBinding("default", config.Binding{Action: "steer", Type: "slide", Direction: "left"})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.String(), "slide left")
	c := b.Config()
	test.ExpectApproximate(t, c.Range, touch.DefaultRange, 0.0001)
	test.ExpectEquality(t, c.Direction, "left")
}

func TestBindsSameControls(t *testing.T) {
	mustBind := func(cfg config.Binding) *touch.Binding {
		b, err := touch.LoadBinding("default", cfg)
		test.DemandSuccess(t, err)
		return b
	}

	left := mustBind(config.Binding{Action: "prev", Type: "swipe", Direction: "left"})
	right := mustBind(config.Binding{Action: "next", Type: "swipe", Direction: "right"})
	up := mustBind(config.Binding{Action: "menu", Type: "swipe", Direction: "up"})
	free := mustBind(config.Binding{Action: "skip", Type: "swipe"})
	tap := mustBind(config.Binding{Action: "fire", Type: "tap"})
	tapLeft := mustBind(config.Binding{Action: "fire", Type: "tap", Area: []float64{0, 0, 0.5, 1}})

	test.ExpectSuccess(t, left.BindsSameControls(right))
	test.ExpectFailure(t, left.BindsSameControls(up))
	test.ExpectFailure(t, left.BindsSameControls(free))
	test.ExpectFailure(t, left.BindsSameControls(tap))
	test.ExpectFailure(t, tap.BindsSameControls(tapLeft))
	test.ExpectSuccess(t, tap.BindsSameControls(tap))
}

func TestTap(t *testing.T) {
	itp, clk := newTestInterpreter(t, gesture("fire", "tap"))

	// a quick tap
	itp.TouchStart(1, 500, 500, clk.at(0))
	itp.TouchEnd(1, 502, 500, clk.at(150))
	clk.set(150)
	groups := itp.TriggeredActions(nil)
	expectFired(t, groups, "fire")
	test.ExpectEquality(t, groups[0][0].Intensity, control.Edge)

	// the touch has been forgotten
	clk.set(170)
	expectFired(t, itp.TriggeredActions(nil))
	test.ExpectEquality(t, itp.Touches(), 0)

	// too slow
	itp.TouchStart(2, 500, 500, clk.at(200))
	itp.TouchEnd(2, 500, 500, clk.at(600))
	clk.set(600)
	expectFired(t, itp.TriggeredActions(nil))

	// moved too far
	itp.TouchStart(3, 500, 500, clk.at(700))
	itp.TouchMove(3, 540, 500, clk.at(750))
	itp.TouchEnd(3, 500, 500, clk.at(800))
	clk.set(800)
	expectFired(t, itp.TriggeredActions(nil))
}

func TestLongTap(t *testing.T) {
	itp, clk := newTestInterpreter(t, gesture("fire", "tap"), gesture("reload", "longTap"))

	itp.TouchStart(1, 500, 500, clk.at(0))
	itp.TouchEnd(1, 500, 500, clk.at(150))
	clk.set(150)
	expectFired(t, itp.TriggeredActions(nil), "fire")

	itp.TouchStart(2, 500, 500, clk.at(200))
	itp.TouchEnd(2, 500, 500, clk.at(1200))
	clk.set(1200)
	expectFired(t, itp.TriggeredActions(nil), "reload")

	itp.TouchStart(3, 500, 500, clk.at(2000))
	itp.TouchEnd(3, 500, 500, clk.at(4500))
	clk.set(4500)
	expectFired(t, itp.TriggeredActions(nil))
}

func TestLongTapOnly(t *testing.T) {
	itp, clk := newTestInterpreter(t, gesture("reload", "longTap"))

	// a short tap is not a long tap
	itp.TouchStart(1, 500, 500, clk.at(0))
	itp.TouchEnd(1, 500, 500, clk.at(150))
	clk.set(150)
	expectFired(t, itp.TriggeredActions(nil))
	clk.set(170)
	expectFired(t, itp.TriggeredActions(nil))

	itp.TouchStart(2, 500, 500, clk.at(200))
	itp.TouchEnd(2, 500, 500, clk.at(500))
	clk.set(500)
	expectFired(t, itp.TriggeredActions(nil), "reload")
}

func TestMultiPointTap(t *testing.T) {
	itp, clk := newTestInterpreter(t, gesture("pause", "threePointTap"), gesture("menu", "twoPointTap"))

	// three fingers. the three point tap is declared first and claims the
	// touches
	itp.TouchStart(1, 100, 100, clk.at(0))
	itp.TouchStart(2, 200, 100, clk.at(0))
	itp.TouchStart(3, 300, 100, clk.at(0))
	clk.set(10)
	expectFired(t, itp.TriggeredActions(nil))

	itp.TouchEnd(1, 100, 100, clk.at(100))
	itp.TouchEnd(2, 200, 100, clk.at(100))
	clk.set(100)
	expectFired(t, itp.TriggeredActions(nil))

	itp.TouchEnd(3, 300, 100, clk.at(120))
	clk.set(120)
	expectFired(t, itp.TriggeredActions(nil), "pause")

	// two fingers arriving in different ticks. the two point tap begins
	// following the first two touches but loses them to the three point tap
	// when the third finger arrives
	itp.TouchStart(4, 100, 100, clk.at(1000))
	itp.TouchStart(5, 200, 100, clk.at(1000))
	clk.set(1010)
	expectFired(t, itp.TriggeredActions(nil))
	itp.TouchStart(6, 300, 100, clk.at(1020))
	clk.set(1020)
	expectFired(t, itp.TriggeredActions(nil))
	itp.TouchEnd(4, 100, 100, clk.at(1100))
	itp.TouchEnd(5, 200, 100, clk.at(1100))
	itp.TouchEnd(6, 300, 100, clk.at(1100))
	clk.set(1100)
	expectFired(t, itp.TriggeredActions(nil), "pause")

	// two fingers only
	itp.TouchStart(7, 100, 100, clk.at(2000))
	itp.TouchStart(8, 200, 100, clk.at(2000))
	clk.set(2010)
	expectFired(t, itp.TriggeredActions(nil))
	itp.TouchEnd(7, 100, 100, clk.at(2100))
	itp.TouchEnd(8, 200, 100, clk.at(2100))
	clk.set(2100)
	expectFired(t, itp.TriggeredActions(nil), "menu")
}

func TestMultiPointTapAbort(t *testing.T) {
	itp, clk := newTestInterpreter(t, gesture("menu", "twoPointTap"))

	// fingers held for too long
	itp.TouchStart(1, 100, 100, clk.at(0))
	itp.TouchStart(2, 200, 100, clk.at(0))
	clk.set(10)
	expectFired(t, itp.TriggeredActions(nil))
	clk.set(400)
	expectFired(t, itp.TriggeredActions(nil))
	itp.TouchEnd(1, 100, 100, clk.at(450))
	itp.TouchEnd(2, 200, 100, clk.at(450))
	clk.set(450)
	expectFired(t, itp.TriggeredActions(nil))

	// a finger that moves
	itp.TouchStart(3, 100, 100, clk.at(1000))
	itp.TouchStart(4, 200, 100, clk.at(1000))
	clk.set(1010)
	expectFired(t, itp.TriggeredActions(nil))
	itp.TouchMove(3, 100, 200, clk.at(1050))
	itp.TouchEnd(3, 100, 200, clk.at(1100))
	itp.TouchEnd(4, 200, 100, clk.at(1100))
	clk.set(1100)
	expectFired(t, itp.TriggeredActions(nil))

	// an extra finger
	itp.TouchStart(5, 100, 100, clk.at(2000))
	itp.TouchStart(6, 200, 100, clk.at(2000))
	clk.set(2010)
	expectFired(t, itp.TriggeredActions(nil))
	itp.TouchStart(7, 300, 100, clk.at(2020))
	clk.set(2020)
	expectFired(t, itp.TriggeredActions(nil))
	itp.TouchEnd(5, 100, 100, clk.at(2100))
	itp.TouchEnd(6, 200, 100, clk.at(2100))
	itp.TouchEnd(7, 300, 100, clk.at(2100))
	clk.set(2100)
	expectFired(t, itp.TriggeredActions(nil))
}

func TestSwipe(t *testing.T) {
	itp, clk := newTestInterpreter(t,
		config.Binding{Action: "prev", Type: "swipe", Direction: "left"},
		config.Binding{Action: "next", Type: "swipe", Direction: "right"},
	)

	itp.TouchStart(1, 100, 500, clk.at(0))
	itp.TouchMove(1, 200, 500, clk.at(100))
	itp.TouchEnd(1, 300, 510, clk.at(200))
	clk.set(200)
	groups := itp.TriggeredActions(nil)
	expectFired(t, groups, "next")
	test.ExpectEquality(t, len(groups), 1)
	test.ExpectEquality(t, groups[0][0].Intensity, control.Edge)

	itp.TouchStart(2, 800, 500, clk.at(1000))
	itp.TouchEnd(2, 500, 500, clk.at(1300))
	clk.set(1300)
	expectFired(t, itp.TriggeredActions(nil), "prev")

	// too slow
	itp.TouchStart(3, 100, 500, clk.at(2000))
	itp.TouchEnd(3, 400, 500, clk.at(3500))
	clk.set(3500)
	expectFired(t, itp.TriggeredActions(nil))

	// vertical movement is not a horizontal swipe
	itp.TouchStart(4, 500, 100, clk.at(4000))
	itp.TouchEnd(4, 500, 400, clk.at(4200))
	clk.set(4200)
	expectFired(t, itp.TriggeredActions(nil))
}

func TestHold(t *testing.T) {
	itp, clk := newTestInterpreter(t,
		config.Binding{Action: "fire", Type: "hold", Area: []float64{0, 0, 0.5, 1}},
		config.Binding{Action: "thrust", Type: "hold", Direction: "right", Area: []float64{0.5, 0, 1, 1}},
	)

	itp.TouchStart(1, 100, 500, clk.at(0))
	clk.set(10)
	groups := itp.TriggeredActions(nil)
	expectFired(t, groups, "fire")
	test.ExpectApproximate(t, groups[0][0].Intensity, 1.0, 0.0001)

	// the range is a tenth of the shorter screen dimension, 100 pixels
	itp.TouchStart(2, 600, 500, clk.at(20))
	itp.TouchMove(2, 658, 500, clk.at(30))
	clk.set(30)
	groups = itp.TriggeredActions(nil)
	expectFired(t, groups, "fire", "thrust")
	test.ExpectApproximate(t, groups[1][0].Intensity, 0.5, 0.0001)

	// movement inside the deadzone is ignored
	itp.TouchMove(2, 605, 500, clk.at(40))
	clk.set(40)
	expectFired(t, itp.TriggeredActions(nil), "fire")

	// movement beyond the range is clamped
	itp.TouchMove(2, 900, 500, clk.at(50))
	clk.set(50)
	groups = itp.TriggeredActions(nil)
	expectFired(t, groups, "fire", "thrust")
	test.ExpectApproximate(t, groups[1][0].Intensity, 1.0, 0.0001)

	itp.TouchEnd(1, 100, 500, clk.at(60))
	itp.TouchEnd(2, 900, 500, clk.at(60))
	clk.set(60)
	expectFired(t, itp.TriggeredActions(nil))
}

func TestSlide(t *testing.T) {
	itp, clk := newTestInterpreter(t, config.Binding{Action: "steer", Type: "slide", Direction: "right"})

	b, ok := itp.Binding("steer")
	test.DemandSuccess(t, ok)

	itp.TouchStart(1, 500, 500, clk.at(0))
	itp.TouchMove(1, 558, 500, clk.at(100))
	clk.set(100)
	groups := itp.TriggeredActions(nil)
	expectFired(t, groups, "steer")
	test.ExpectApproximate(t, groups[0][0].Intensity, 0.5, 0.0001)

	// the offset remains after the touch has finished
	itp.TouchEnd(1, 558, 500, clk.at(500))
	clk.set(500)
	expectFired(t, itp.TriggeredActions(nil), "steer")
	clk.set(520)
	groups = itp.TriggeredActions(nil)
	expectFired(t, groups, "steer")
	test.ExpectApproximate(t, groups[0][0].Intensity, 0.5, 0.0001)
	test.ExpectApproximate(t, b.Offset(), 58.0, 0.0001)

	// a new touch continues from the existing offset
	itp.TouchStart(2, 200, 200, clk.at(1000))
	itp.TouchMove(2, 220, 200, clk.at(1100))
	clk.set(1100)
	groups = itp.TriggeredActions(nil)
	expectFired(t, groups, "steer")
	test.ExpectApproximate(t, groups[0][0].Intensity, 0.7, 0.0001)

	// the offset is limited
	itp.TouchMove(2, 600, 200, clk.at(1200))
	clk.set(1200)
	itp.TriggeredActions(nil)
	test.ExpectApproximate(t, b.Offset(), 108.0, 0.0001)

	// moving back reduces the offset immediately
	itp.TouchMove(2, 550, 200, clk.at(1300))
	clk.set(1300)
	itp.TriggeredActions(nil)
	test.ExpectApproximate(t, b.Offset(), 58.0, 0.0001)

	// a short tap resets the offset
	itp.TouchStart(3, 800, 800, clk.at(1400))
	itp.TouchEnd(3, 800, 800, clk.at(1450))
	clk.set(1450)
	expectFired(t, itp.TriggeredActions(nil))
	test.ExpectApproximate(t, b.Offset(), 0.0, 0.0001)

	// touch 2 is still being followed from where it was
	itp.TouchMove(2, 608, 200, clk.at(1500))
	clk.set(1500)
	groups = itp.TriggeredActions(nil)
	expectFired(t, groups, "steer")
	test.ExpectApproximate(t, groups[0][0].Intensity, 0.5, 0.0001)
}

func TestOppositeSlides(t *testing.T) {
	itp, clk := newTestInterpreter(t,
		config.Binding{Action: "steerRight", Type: "slide", Direction: "right"},
		config.Binding{Action: "steerLeft", Type: "slide", Direction: "left"},
	)

	left, ok := itp.Binding("steerLeft")
	test.DemandSuccess(t, ok)
	right, ok := itp.Binding("steerRight")
	test.DemandSuccess(t, ok)

	// both bindings follow the same touch
	itp.TouchStart(1, 500, 500, clk.at(0))
	itp.TouchMove(1, 442, 500, clk.at(100))
	clk.set(100)
	groups := itp.TriggeredActions(nil)
	expectFired(t, groups, "steerLeft")
	test.ExpectEquality(t, len(groups), 1)
	test.ExpectApproximate(t, groups[0][0].Intensity, 0.5, 0.0001)
	test.ExpectApproximate(t, left.Offset(), 58.0, 0.0001)
	test.ExpectApproximate(t, right.Offset(), -58.0, 0.0001)

	// and the other direction
	itp.TouchMove(1, 558, 500, clk.at(200))
	clk.set(200)
	groups = itp.TriggeredActions(nil)
	expectFired(t, groups, "steerRight")
	test.ExpectApproximate(t, groups[0][0].Intensity, 0.5, 0.0001)

	// a short tap resets both offsets
	itp.TouchEnd(1, 558, 500, clk.at(300))
	itp.TouchStart(2, 800, 800, clk.at(400))
	itp.TouchEnd(2, 800, 800, clk.at(450))
	clk.set(450)
	expectFired(t, itp.TriggeredActions(nil))
	test.ExpectApproximate(t, left.Offset(), 0.0, 0.0001)
	test.ExpectApproximate(t, right.Offset(), 0.0, 0.0001)
}

func TestStopDiscardsGestures(t *testing.T) {
	itp, clk := newTestInterpreter(t, gesture("menu", "twoPointTap"))

	// the two point tap is following both touches when listening stops
	itp.TouchStart(1, 100, 100, clk.at(0))
	itp.TouchStart(2, 200, 100, clk.at(0))
	clk.set(10)
	expectFired(t, itp.TriggeredActions(nil))

	itp.StopListening()
	itp.StartListening()
	test.ExpectEquality(t, itp.Touches(), 0)

	itp.TouchEnd(1, 100, 100, clk.at(100))
	itp.TouchEnd(2, 200, 100, clk.at(100))
	clk.set(100)
	expectFired(t, itp.TriggeredActions(nil))
	clk.set(120)
	expectFired(t, itp.TriggeredActions(nil))

	// a new two point tap is still recognised
	itp.TouchStart(3, 100, 100, clk.at(200))
	itp.TouchStart(4, 200, 100, clk.at(200))
	clk.set(210)
	expectFired(t, itp.TriggeredActions(nil))
	itp.TouchEnd(3, 100, 100, clk.at(300))
	itp.TouchEnd(4, 200, 100, clk.at(300))
	clk.set(300)
	expectFired(t, itp.TriggeredActions(nil), "menu")
}

func TestStopDiscardsSlideOffset(t *testing.T) {
	itp, clk := newTestInterpreter(t, config.Binding{Action: "steer", Type: "slide", Direction: "right"})

	b, ok := itp.Binding("steer")
	test.DemandSuccess(t, ok)

	itp.TouchStart(1, 500, 500, clk.at(0))
	itp.TouchMove(1, 558, 500, clk.at(100))
	clk.set(100)
	expectFired(t, itp.TriggeredActions(nil), "steer")
	test.ExpectApproximate(t, b.Offset(), 58.0, 0.0001)

	itp.StopListening()
	itp.StartListening()
	test.ExpectApproximate(t, b.Offset(), 0.0, 0.0001)

	// the touch that built the offset is no longer followed
	itp.TouchMove(1, 600, 500, clk.at(200))
	clk.set(200)
	expectFired(t, itp.TriggeredActions(nil))
	test.ExpectApproximate(t, b.Offset(), 0.0, 0.0001)
}

func TestScreenSize(t *testing.T) {
	itp, clk := newTestInterpreter(t, config.Binding{Action: "fire", Type: "tap", Area: []float64{0, 0, 0.5, 0.5}})

	itp.TouchStart(1, 400, 400, clk.at(0))
	itp.TouchEnd(1, 400, 400, clk.at(100))
	clk.set(100)
	expectFired(t, itp.TriggeredActions(nil), "fire")

	// the same position is outside the area on a smaller screen
	handled, err := itp.HandleEvent(userinput.EventResize{Width: 600, Height: 600})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, handled)
	w, h := itp.ScreenSize()
	test.ExpectEquality(t, w, 600)
	test.ExpectEquality(t, h, 600)

	itp.TouchStart(2, 400, 400, clk.at(200))
	itp.TouchEnd(2, 400, 400, clk.at(300))
	clk.set(300)
	expectFired(t, itp.TriggeredActions(nil))

	itp.TouchStart(3, 200, 200, clk.at(400))
	itp.TouchEnd(3, 200, 200, clk.at(500))
	clk.set(500)
	expectFired(t, itp.TriggeredActions(nil), "fire")

	// nothing is recognised when the screen size is unknown
	itp.SetScreenSize(0, 0)
	itp.TouchStart(4, 200, 200, clk.at(600))
	itp.TouchEnd(4, 200, 200, clk.at(700))
	clk.set(700)
	expectFired(t, itp.TriggeredActions(nil))
}

func TestTouchEvents(t *testing.T) {
	itp, clk := newTestInterpreter(t, gesture("fire", "tap"))

	events := []userinput.EventTouch{
		{Phase: userinput.TouchStart, ID: 9, X: 10, Y: 10, Time: clk.at(0)},
		{Phase: userinput.TouchMove, ID: 9, X: 12, Y: 10, Time: clk.at(50)},
		{Phase: userinput.TouchCancel, ID: 9, X: 12, Y: 10, Time: clk.at(100)},
	}
	for _, ev := range events {
		handled, err := itp.HandleEvent(ev)
		test.ExpectSuccess(t, err)
		test.ExpectSuccess(t, handled)
	}

	clk.set(100)
	expectFired(t, itp.TriggeredActions(nil), "fire")

	// unrelated events are not handled
	handled, err := itp.HandleEvent(userinput.EventKeyboard{Key: "a", Down: true})
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, handled)
}

func TestDisabled(t *testing.T) {
	itp, clk := newTestInterpreter(t, gesture("fire", "tap"))

	itp.Disable()
	itp.TouchStart(1, 500, 500, clk.at(0))
	itp.TouchEnd(1, 500, 500, clk.at(100))
	clk.set(100)
	expectFired(t, itp.TriggeredActions(nil))

	// the tap was discarded while the interpreter was disabled
	itp.Enable()
	clk.set(120)
	expectFired(t, itp.TriggeredActions(nil))
	test.ExpectEquality(t, itp.Touches(), 0)

	// touches are not recorded when not listening
	itp.StopListening()
	itp.TouchStart(2, 500, 500, clk.at(200))
	test.ExpectEquality(t, itp.Touches(), 0)
}

func TestFilter(t *testing.T) {
	itp, clk := newTestInterpreter(t, gesture("fire", "tap"), gesture("reload", "longTap"))

	allow := func(action string) bool {
		return action != "fire"
	}

	itp.TouchStart(1, 500, 500, clk.at(0))
	itp.TouchEnd(1, 500, 500, clk.at(100))
	clk.set(100)
	expectFired(t, itp.TriggeredActions(allow))
}
