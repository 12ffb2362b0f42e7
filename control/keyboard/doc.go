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

// Package keyboard implements the control.Interpreter interface for
// keyboards.
//
// A binding names a key and the modifier keys that must be held with it. The
// name of the key is compared without regard to case, so "A" and "a" bind the
// same key. The modifiers must match exactly: a binding for "S" will not
// trigger if Ctrl is also being held. Bindings trigger with the
// control.Unspecified intensity for as long as the key is held down.
package keyboard
