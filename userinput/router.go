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

// Router forwards events to a handler and records what happened to the most
// recent event.
type Router struct {
	// whether or not the last HandleUserInput() was for an event that was
	// used by the handler
	Handled bool

	// is true if last event was a quit event
	Quit bool

	// the number of events forwarded to the handler and the number of those
	// events that were used
	Forwarded int
	Used      int
}

// HandleUserInput deciphers the Event and forwards it to the handler. Quit
// events are not forwarded but are recorded in the Quit field.
func (r *Router) HandleUserInput(ev Event, handle HandleInput) error {
	r.Quit = false
	r.Handled = false

	switch ev := ev.(type) {
	case EventQuit:
		r.Quit = true
		return nil
	case EventKeyboard:
		// repeated key events carry no new information
		if ev.Repeat {
			return nil
		}
	case nil:
		return nil
	}

	r.Forwarded++

	handled, err := handle.HandleEvent(ev)
	if err != nil {
		return err
	}

	if handled {
		r.Handled = true
		r.Used++
	}

	return nil
}
