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


// Package gamepad implements the control.Interpreter interface for gamepads.
//
// Gamepad state is read from an implementation of the Devices interface,
// which is polled once per tick. Only one device is used at a time. The
// device is chosen by a small state machine:
//
//	Unset                no device has been chosen. the first connected
//	                     device will be bound
//	DetectingPreference  a device was chosen in a previous session. the
//	                     device with the remembered ID is bound if it is
//	                     connected, otherwise the first connected device
//	BoundToIndex         a device slot has been bound. if the slot becomes
//	                     empty the state returns to Unset
//	Disabled             gamepads have been turned off by the user
//
// The remembered device and the disabled flag are kept in the environment's
// prefs store.
//
// Bindings are to buttons or to one direction of an axis. Analog buttons and
// axes produce graded intensities. The sensitivity profile of the
// interpreter can scale graded intensities, square them, or replace them
// with control.Unspecified, by action group.
package gamepad
