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

// Package notifications allow communication from an input interpreter, or the
// configuration layer, to whatever is hosting the control context. For
// example, the gamepad interpreter sends NotifyGamepadConnected when it binds
// to a device slot.
//
// Notifications are sometimes passed onto a UI to indicate to the user the
// event that has happened (eg. gamepad disconnected, etc.) For some
// notifications however, it is appropriate for the host to deal with the
// notification invisibly.
package notifications
