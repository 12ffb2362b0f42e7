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
	"fmt"

	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/control"
	"github.com/tickinput/tickinput/curated"
)

// Sentinal error patterns.
const (
	BindingInvalid = "touch: binding for %s: %s"
)

// Area is a rectangle in which a gesture must start. Edges are fractions of
// the screen size.
type Area struct {
	Left, Top, Right, Bottom float64
}

// FullScreen is the area used by bindings that do not specify an area.
var FullScreen = Area{Left: 0, Top: 0, Right: 1, Bottom: 1}

func (a Area) String() string {
	return fmt.Sprintf("%.2f,%.2f-%.2f,%.2f", a.Left, a.Top, a.Right, a.Bottom)
}

// rect is an area in pixels
type rect struct {
	left, top, right, bottom float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.left && x <= r.right && y >= r.top && y <= r.bottom
}

// the phases of a multi-point tap
type multiPhase int

const (
	searching multiPhase = iota
	following
)

// Binding is a touch gesture bound to an action. Some gestures keep state
// between ticks. The state belongs to the binding and is not shared with any
// other binding.
type Binding struct {
	control.Assignment

	gesture   Gesture
	direction Direction
	area      Area

	// fraction of the shorter screen dimension
	rng float64

	// area and range in pixels for the screen size in cachedW and cachedH
	cachedW, cachedH int
	areaPx           rect
	rangePx          float64

	// multi-point tap state
	phase    multiPhase
	followed []int64

	// slide state. the offset persists across touches. the followed touch
	// and the position of the touch as last seen are only meaningful while
	// sliding is true
	offset     float64
	sliding    bool
	slideTouch int64
	slideLastX float64
	slideLastY float64
}

// NewBinding binds a gesture to an action. The direction can be NoDirection
// except for Slide gestures. A range of zero means DefaultRange.
func NewBinding(profile string, action string, gesture Gesture, direction Direction, area Area, rng float64) (*Binding, error) {
	if area.Left >= area.Right || area.Top >= area.Bottom {
		return nil, curated.Errorf(BindingInvalid, action, "area is empty")
	}
	if area.Left < 0 || area.Top < 0 || area.Right > 1 || area.Bottom > 1 {
		return nil, curated.Errorf(BindingInvalid, action, "area is outside the screen")
	}
	if gesture == Slide && direction == NoDirection {
		return nil, curated.Errorf(BindingInvalid, action, "slide gesture requires a direction")
	}
	if rng < 0 || rng > 1 {
		return nil, curated.Errorf(BindingInvalid, action, "range out of bounds")
	}
	if rng == 0 {
		rng = DefaultRange
	}

	return &Binding{
		Assignment: control.Assignment{ActionName: action, ProfileName: profile},
		gesture:    gesture,
		direction:  direction,
		area:       area,
		rng:        rng,
	}, nil
}

// LoadBinding creates a binding from its configuration. It implements the
// control.Loader type.
func LoadBinding(profile string, cfg config.Binding) (*Binding, error) {
	gesture, ok := gestureFromString(cfg.Type)
	if !ok {
		return nil, curated.Errorf(BindingInvalid, cfg.Action, fmt.Sprintf("unknown gesture type %q", cfg.Type))
	}

	direction, ok := directionFromString(cfg.Direction)
	if !ok {
		return nil, curated.Errorf(BindingInvalid, cfg.Action, fmt.Sprintf("unknown direction %q", cfg.Direction))
	}

	area := FullScreen
	switch len(cfg.Area) {
	case 0:
	case 4:
		area = Area{Left: cfg.Area[0], Top: cfg.Area[1], Right: cfg.Area[2], Bottom: cfg.Area[3]}
	default:
		return nil, curated.Errorf(BindingInvalid, cfg.Action, "area must have four values")
	}

	return NewBinding(profile, cfg.Action, gesture, direction, area, cfg.Range)
}

// Gesture returns the type of gesture the binding recognises.
func (b *Binding) Gesture() Gesture {
	return b.gesture
}

// layout recalculates the area and range in pixels if the screen size has
// changed since the last call
func (b *Binding) layout(w, h int) {
	if w == b.cachedW && h == b.cachedH {
		return
	}
	b.cachedW, b.cachedH = w, h

	fw, fh := float64(w), float64(h)
	b.areaPx = rect{
		left:   b.area.Left * fw,
		top:    b.area.Top * fh,
		right:  b.area.Right * fw,
		bottom: b.area.Bottom * fh,
	}
	b.rangePx = b.rng * min(fw, fh)
}

// inArea returns true if the touch started in the binding's area
func (b *Binding) inArea(r *record) bool {
	return b.areaPx.contains(r.startX, r.startY)
}

// graded intensity for a distance moved in the binding's direction
func (b *Binding) graded(distance float64) control.Intensity {
	if b.rangePx <= 0 || distance <= MoveDeadzone {
		return control.None
	}
	return control.Clamp(control.Intensity((distance - MoveDeadzone) / b.rangePx))
}

// reset gesture state
func (b *Binding) reset() {
	b.phase = searching
	b.followed = b.followed[:0]
	b.offset = 0
	b.sliding = false
}

// Offset returns the accumulated offset of a Slide gesture in pixels.
func (b *Binding) Offset() float64 {
	return b.offset
}

// BindsSameControls implements the control.Binding interface. Bindings of
// the same gesture type in the same area bind the same controls. For swipe,
// hold and slide gestures the direction must also be on the same axis.
func (b *Binding) BindsSameControls(other control.Binding) bool {
	o, ok := other.(*Binding)
	if !ok {
		return false
	}
	if b.gesture != o.gesture || b.area != o.area {
		return false
	}
	switch b.gesture {
	case Swipe, Hold, Slide:
		if b.direction == NoDirection || o.direction == NoDirection {
			return b.direction == o.direction
		}
		return b.direction.horizontal() == o.direction.horizontal()
	}
	return true
}

// Config implements the control.Binding interface.
func (b *Binding) Config() config.Binding {
	c := config.Binding{
		Action:    b.ActionName,
		Type:      b.gesture.String(),
		Direction: b.direction.String(),
		Area:      []float64{b.area.Left, b.area.Top, b.area.Right, b.area.Bottom},
	}
	switch b.gesture {
	case Hold, Slide:
		c.Range = b.rng
	}
	return c
}

func (b *Binding) String() string {
	s := b.gesture.String()
	if b.direction != NoDirection {
		s = fmt.Sprintf("%s %s", s, b.direction)
	}
	if b.area != FullScreen {
		s = fmt.Sprintf("%s in %s", s, b.area)
	}
	return s
}
