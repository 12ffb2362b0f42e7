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

// Package sdlinput is a userinput.Backend for SDL. It opens a window to
// receive keyboard, touch and window events and opens every connected game
// controller.
//
// The Backend type also implements the gamepad.Devices and gamepad.Rumbler
// interfaces and so can be used as the source of gamepad state for the
// gamepad interpreter.
//
// All functions must be called from the same goroutine that created the
// Backend. For most platforms this should be the main thread. See
// sdl.Main() for details.
package sdlinput
