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

package userinput

import "time"

// Event represents all the different type of events that can occur in the
// backend.
//
// Events are forwarded to interpreters with the Router.HandleUserInput()
// function.
type Event interface{}

// EventQuit is sent when the backend wants the program to end.
type EventQuit struct{}

// KeyMod identifies the modifier keys held down at the time of a keyboard
// event. The values can be combined.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone  KeyMod = 0
	KeyModShift KeyMod = 1 << iota
	KeyModCtrl
	KeyModAlt
)

func (m KeyMod) String() string {
	s := ""
	if m&KeyModCtrl == KeyModCtrl {
		s += "Ctrl+"
	}
	if m&KeyModAlt == KeyModAlt {
		s += "Alt+"
	}
	if m&KeyModShift == KeyModShift {
		s += "Shift+"
	}
	return s
}

// EventKeyboard is sent when a key is pressed or released. The Key field is
// the name of the key as reported by SDL.
type EventKeyboard struct {
	Key    string
	Mod    KeyMod
	Down   bool
	Repeat bool
}

// TouchPhase identifies the stage in the life of a touch.
type TouchPhase int

// List of valid TouchPhase values.
const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
	TouchCancel
)

func (p TouchPhase) String() string {
	switch p {
	case TouchStart:
		return "start"
	case TouchMove:
		return "move"
	case TouchEnd:
		return "end"
	case TouchCancel:
		return "cancel"
	}
	return "unknown"
}

// EventTouch is sent for every change to a touch on a touch screen. Positions
// are in pixels. If Time is the zero value then the receiver of the event
// should use the current time.
type EventTouch struct {
	Phase TouchPhase
	ID    int64
	X, Y  float64
	Time  time.Time
}

// EventGamepadDevice is sent when a gamepad is connected or disconnected.
type EventGamepadDevice struct {
	Index     int
	ID        string
	Connected bool
}

// EventResize is sent when the size of the screen changes. Dimensions are in
// pixels.
type EventResize struct {
	Width  int
	Height int
}
