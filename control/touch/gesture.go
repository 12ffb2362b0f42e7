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

import "time"

// Timing and distance thresholds shared by all gesture types. Distances are in
// pixels.
const (
	TapTimeout     = 300 * time.Millisecond
	LongTapTimeout = 2000 * time.Millisecond
	SwipeTimeout   = 1000 * time.Millisecond

	// the distance a touch can move and still be considered a tap
	TapDeadzone = 15.0

	// the distance a touch must move before hold and slide gestures register
	// any movement
	MoveDeadzone = 8.0
)

// DefaultRange is the range used by hold and slide gestures that do not
// specify a range. It is a fraction of the shorter screen dimension.
const DefaultRange = 0.1

// Gesture is the type of gesture a binding recognises.
type Gesture int

// List of valid Gesture values.
const (
	Tap Gesture = iota
	LongTap
	TwoPointTap
	ThreePointTap
	Swipe
	Hold
	Slide
)

var gestureNames = []string{"tap", "longTap", "twoPointTap", "threePointTap", "swipe", "hold", "slide"}

func (g Gesture) String() string {
	if int(g) < len(gestureNames) {
		return gestureNames[g]
	}
	return "unknown"
}

func gestureFromString(s string) (Gesture, bool) {
	for i, n := range gestureNames {
		if n == s {
			return Gesture(i), true
		}
	}
	return 0, false
}

// Direction constrains a gesture to one direction of movement.
type Direction int

// List of valid Direction values.
const (
	NoDirection Direction = iota
	Left
	Right
	Up
	Down
)

var directionNames = []string{"", "left", "right", "up", "down"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

func directionFromString(s string) (Direction, bool) {
	for i, n := range directionNames {
		if n == s {
			return Direction(i), true
		}
	}
	return 0, false
}

// horizontal returns true for Left and Right
func (d Direction) horizontal() bool {
	return d == Left || d == Right
}

// along returns the component of the movement (dx, dy) in the direction. the
// value is positive for movement in the direction and negative for movement
// in the opposite direction. screen coordinates increase downwards
func (d Direction) along(dx, dy float64) float64 {
	switch d {
	case Left:
		return -dx
	case Right:
		return dx
	case Up:
		return -dy
	case Down:
		return dy
	}
	return 0
}
