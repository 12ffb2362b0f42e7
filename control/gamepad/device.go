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

import "time"

// Button is the state of a single gamepad button. Value is only meaningful
// for analog buttons.
type Button struct {
	Pressed bool
	Value   float64
}

// State is the state of a single gamepad slot.
type State struct {
	// identifier of the device. usually the product name
	ID string

	// the slot index of the device
	Index int

	Connected bool

	Buttons []Button

	// axis values are in the range -1 to 1
	Axes []float64
}

// Devices is implemented by the gamepad backend.
type Devices interface {
	// ListDevices returns the state of every device slot. Slots that no
	// longer have a device attached can be omitted or returned with
	// Connected set to false
	ListDevices() []State
}

// Rumbler is optionally implemented by the gamepad backend.
type Rumbler interface {
	// Rumble the device at the slot index. Strength is in the range 0 to 1
	Rumble(index int, strength float64, duration time.Duration) error
}
