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

package userinput_test

import (
	"testing"

	"github.com/tickinput/tickinput/test"
	"github.com/tickinput/tickinput/userinput"
)

type keysOnly struct {
	keys []string
}

func (k *keysOnly) HandleEvent(ev userinput.Event) (bool, error) {
	if ev, ok := ev.(userinput.EventKeyboard); ok {
		k.keys = append(k.keys, ev.Key)
		return true, nil
	}
	return false, nil
}

func TestRouter(t *testing.T) {
	var r userinput.Router
	h := &keysOnly{}

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventKeyboard{Key: "A", Down: true}, h))
	test.ExpectSuccess(t, r.Handled)
	test.ExpectFailure(t, r.Quit)

	// repeats are dropped
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventKeyboard{Key: "A", Down: true, Repeat: true}, h))
	test.ExpectFailure(t, r.Handled)

	// events the handler has no interest in
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventResize{Width: 640, Height: 480}, h))
	test.ExpectFailure(t, r.Handled)

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventQuit{}, h))
	test.ExpectSuccess(t, r.Quit)

	test.ExpectEquality(t, len(h.keys), 1)
	test.ExpectEquality(t, r.Forwarded, 2)
	test.ExpectEquality(t, r.Used, 1)
}

func TestKeyMod(t *testing.T) {
	test.ExpectEquality(t, userinput.KeyModNone.String(), "")
	test.ExpectEquality(t, (userinput.KeyModCtrl | userinput.KeyModShift).String(), "Ctrl+Shift+")
}

type queue struct {
	events []userinput.Event
}

func (q *queue) PollEvents() ([]userinput.Event, error) {
	evs := q.events
	q.events = nil
	return evs, nil
}

func (q *queue) Close() error {
	return nil
}

func TestService(t *testing.T) {
	var r userinput.Router
	h := &keysOnly{}
	q := &queue{events: []userinput.Event{
		userinput.EventKeyboard{Key: "A", Down: true},
		userinput.EventKeyboard{Key: "B", Down: true},
		userinput.EventQuit{},
		userinput.EventKeyboard{Key: "C", Down: true},
	}}

	quit, err := userinput.Service(q, &r, h)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)
	test.ExpectEquality(t, len(h.keys), 2)

	quit, err = userinput.Service(q, &r, h)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, quit)
}
