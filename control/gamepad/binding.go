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

package gamepad

import (
	"fmt"

	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/control"
	"github.com/tickinput/tickinput/curated"
)

// Sentinal error patterns.
const (
	BindingInvalid = "gamepad: binding for %s: %s"
)

// DefaultDeadzone is used by axis bindings that do not specify a deadzone.
const DefaultDeadzone = 0.1

type kind int

const (
	kindButton kind = iota
	kindAnalogButton
	kindAxis
)

// Binding is a gamepad button or axis bound to an action.
type Binding struct {
	control.Assignment

	kind kind

	// button or axis index
	index int

	// axis bindings only
	negative bool
	deadzone float64
}

// NewButtonBinding binds a button to an action. The intensity of an analog
// button is the button's value.
func NewButtonBinding(profile string, action string, button int, analog bool) *Binding {
	b := &Binding{
		Assignment: control.Assignment{ActionName: action, ProfileName: profile},
		kind:       kindButton,
		index:      button,
	}
	if analog {
		b.kind = kindAnalogButton
	}
	return b
}

// NewAxisBinding binds one direction of an axis to an action.
func NewAxisBinding(profile string, action string, axis int, negative bool, deadzone float64) *Binding {
	return &Binding{
		Assignment: control.Assignment{ActionName: action, ProfileName: profile},
		kind:       kindAxis,
		index:      axis,
		negative:   negative,
		deadzone:   deadzone,
	}
}

// LoadBinding creates a binding from its configuration. It implements the
// control.Loader type.
func LoadBinding(profile string, cfg config.Binding) (*Binding, error) {
	switch {
	case cfg.Button != nil && cfg.Axis != nil:
		return nil, curated.Errorf(BindingInvalid, cfg.Action, "both button and axis specified")

	case cfg.Button != nil:
		if *cfg.Button < 0 {
			return nil, curated.Errorf(BindingInvalid, cfg.Action, "negative button index")
		}
		return NewButtonBinding(profile, cfg.Action, *cfg.Button, cfg.Analog), nil

	case cfg.Axis != nil:
		if *cfg.Axis < 0 {
			return nil, curated.Errorf(BindingInvalid, cfg.Action, "negative axis index")
		}

		var negative bool
		switch cfg.Direction {
		case "positive", "":
		case "negative":
			negative = true
		default:
			return nil, curated.Errorf(BindingInvalid, cfg.Action, fmt.Sprintf("unknown axis direction %q", cfg.Direction))
		}

		deadzone := DefaultDeadzone
		if cfg.Deadzone != nil {
			deadzone = *cfg.Deadzone
		}
		if deadzone < 0 || deadzone >= 1 {
			return nil, curated.Errorf(BindingInvalid, cfg.Action, "deadzone out of range")
		}

		return NewAxisBinding(profile, cfg.Action, *cfg.Axis, negative, deadzone), nil
	}

	return nil, curated.Errorf(BindingInvalid, cfg.Action, "no button or axis specified")
}

// TriggeredIntensity returns the intensity of the binding for the device
// state. A device that is not connected never triggers a binding.
func (b *Binding) TriggeredIntensity(st *State) control.Intensity {
	if st == nil || !st.Connected {
		return control.None
	}

	switch b.kind {
	case kindButton:
		if b.index < len(st.Buttons) && st.Buttons[b.index].Pressed {
			return control.Unspecified
		}

	case kindAnalogButton:
		if b.index >= len(st.Buttons) {
			return control.None
		}
		btn := st.Buttons[b.index]
		if btn.Value > 0 {
			return control.Clamp(control.Intensity(btn.Value))
		}
		if btn.Pressed {
			return control.Unspecified
		}

	case kindAxis:
		if b.index >= len(st.Axes) {
			return control.None
		}
		v := st.Axes[b.index]
		if b.negative {
			v = -v
		}
		if v <= b.deadzone {
			return control.None
		}
		return control.Clamp(control.Intensity((v - b.deadzone) / (1 - b.deadzone)))
	}

	return control.None
}

// BindsSameControls implements the control.Binding interface. Analog and
// non-analog bindings of the same button are the same control, as are both
// directions of an axis.
func (b *Binding) BindsSameControls(other control.Binding) bool {
	o, ok := other.(*Binding)
	if !ok {
		return false
	}
	return (b.kind == kindAxis) == (o.kind == kindAxis) && b.index == o.index
}

// Config implements the control.Binding interface.
func (b *Binding) Config() config.Binding {
	c := config.Binding{Action: b.ActionName}
	switch b.kind {
	case kindButton, kindAnalogButton:
		c.Button = config.IntPtr(b.index)
		c.Analog = b.kind == kindAnalogButton
	case kindAxis:
		c.Axis = config.IntPtr(b.index)
		c.Direction = "positive"
		if b.negative {
			c.Direction = "negative"
		}
		c.Deadzone = config.FloatPtr(b.deadzone)
	}
	return c
}

func (b *Binding) String() string {
	switch b.kind {
	case kindAnalogButton:
		return fmt.Sprintf("analog button %d", b.index)
	case kindAxis:
		if b.negative {
			return fmt.Sprintf("axis %d-", b.index)
		}
		return fmt.Sprintf("axis %d+", b.index)
	}
	return fmt.Sprintf("button %d", b.index)
}
