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

// Backend is a source of user input events. Implementations translate events
// from a windowing system or terminal into the types in this package.
type Backend interface {
	// PollEvents returns the events that have arrived since the previous
	// call. It must not block.
	PollEvents() ([]Event, error)

	// Close releases any resources held by the backend.
	Close() error
}

// Service polls the backend once and forwards every event to the handler
// through the router. Returns true if a quit event was seen. Forwarding stops
// at the first quit event or error.
func Service(backend Backend, r *Router, handle HandleInput) (bool, error) {
	evs, err := backend.PollEvents()
	if err != nil {
		return false, err
	}
	for _, ev := range evs {
		if err := r.HandleUserInput(ev, handle); err != nil {
			return false, err
		}
		if r.Quit {
			return true, nil
		}
	}
	return false, nil
}
