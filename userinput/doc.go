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

// Package userinput defines device-neutral events for the input that the user
// provides through real hardware.
//
// It can be thought of as a translation layer between a backend (SDL or a
// terminal for example) and the input interpreters of the control package. As
// such, this package attempts to hide details of the backend implementation
// while protecting the interpreters from complication.
//
// The backend in use during development was SDL and so there will be a bias
// towards that system. Key names for example are SDL key names.
package userinput
