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

// Package terminput is a userinput.Backend for terminals using tcell. In
// addition to key presses it reports mouse input as touch events, which
// means touch gestures can be tried out with a mouse.
//
// Terminals do not report key releases so release events are synthesised
// with a userinput.KeyRelease.
//
// Positions and sizes are reported in pixels by assuming that each character
// cell is CellWidth by CellHeight pixels.
package terminput
