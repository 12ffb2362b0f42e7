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

package config

import "fmt"

// Document is the top-level configuration of a control context.
type Document struct {
	Interpreters []Interpreter `json:"interpreters"`
	Controllers  []Controller  `json:"controllers"`

	// names of controllers in priority order. controllers not listed are
	// given a lower priority in the order in which they are declared
	Priority []string `json:"priority,omitempty"`

	// actions that are disabled when the document is loaded
	DisabledActions []string `json:"disabledActions,omitempty"`
}

// Interpreter configures a single input interpreter.
type Interpreter struct {
	Type string `json:"type"`

	// the profile to activate when the interpreter is created. if empty then
	// the first profile is used
	Profile string `json:"profile,omitempty"`

	Profiles []Profile `json:"profiles"`

	// gamepad only
	SensitivityProfile *SensitivityProfile `json:"sensitivityProfile,omitempty"`
	Vibration          *bool               `json:"vibration,omitempty"`
}

// Profile is a named set of bindings. If BasedOn is not empty then the
// profile extends the named profile.
type Profile struct {
	Name     string    `json:"name"`
	BasedOn  string    `json:"basedOn,omitempty"`
	Bindings []Binding `json:"bindings"`
}

// Binding associates an action with a physical control. Which fields are
// meaningful depends on the type of interpreter the binding belongs to.
type Binding struct {
	Action string `json:"action"`

	// keyboard
	Key   string `json:"key,omitempty"`
	Shift bool   `json:"shift,omitempty"`
	Ctrl  bool   `json:"ctrl,omitempty"`
	Alt   bool   `json:"alt,omitempty"`

	// gamepad
	Button   *int     `json:"button,omitempty"`
	Analog   bool     `json:"analog,omitempty"`
	Axis     *int     `json:"axis,omitempty"`
	Deadzone *float64 `json:"deadzone,omitempty"`

	// gamepad and touch. for gamepad axes the direction is either positive
	// or negative. for touch gestures the direction is one of left, right,
	// up or down
	Direction string `json:"direction,omitempty"`

	// touch. the area is the left, top, right and bottom edges of the
	// rectangle in which the gesture must start, as fractions of the screen
	// size. the range is a fraction of the shorter screen dimension
	Type  string    `json:"type,omitempty"`
	Area  []float64 `json:"area,omitempty"`
	Range float64   `json:"range,omitempty"`
}

func (b Binding) String() string {
	return fmt.Sprintf("binding for %s", b.Action)
}

// SensitivityProfile post-processes the intensity of gamepad actions.
type SensitivityProfile struct {
	ActionGroups []ActionGroup `json:"actionGroups"`
}

// ActionGroup is a single group in the sensitivity profile. If Static is true
// then the intensity of the actions in the group is unspecified. Otherwise the
// intensity is scaled by Factor, after being squared if Quadratic is true.
type ActionGroup struct {
	Actions   []string `json:"actions"`
	Factor    *float64 `json:"factor,omitempty"`
	Static    bool     `json:"static,omitempty"`
	Quadratic bool     `json:"quadratic,omitempty"`
}

// Controller configures a single controller.
type Controller struct {
	Type    string   `json:"type"`
	Name    string   `json:"name"`
	Actions []Action `json:"actions"`
}

// Action declares an action that a controller recognises.
type Action struct {
	Name       string `json:"name"`
	Continuous bool   `json:"continuous,omitempty"`
}

// IntPtr is a convenience function for filling in the optional integer fields
// of a Binding.
func IntPtr(v int) *int {
	return &v
}

// FloatPtr is a convenience function for filling in the optional float fields
// of a Binding or ActionGroup.
func FloatPtr(v float64) *float64 {
	return &v
}
