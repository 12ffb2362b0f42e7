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

import (
	"slices"
	"time"
)

// DefaultReleaseTimeout is the timeout used by a KeyRelease instance with a
// zero Timeout field. It is longer than the delay before a typical terminal
// starts repeating a held key.
const DefaultReleaseTimeout = 600 * time.Millisecond

// KeyRelease synthesises key release events for backends that only report
// key presses. A key is considered released if it has not been pressed again
// within the timeout. The zero value is ready to use.
type KeyRelease struct {
	Timeout time.Duration

	held map[string]held
}

type held struct {
	mod  KeyMod
	seen time.Time
}

func (r *KeyRelease) timeout() time.Duration {
	if r.Timeout <= 0 {
		return DefaultReleaseTimeout
	}
	return r.Timeout
}

// Press records a key press and returns the events that result. A key that
// is already held produces a repeat event. A change of modifiers releases
// the key before pressing it again.
func (r *KeyRelease) Press(key string, mod KeyMod, now time.Time) []Event {
	if r.held == nil {
		r.held = make(map[string]held)
	}

	var evs []Event

	if h, ok := r.held[key]; ok {
		if h.mod == mod {
			r.held[key] = held{mod: mod, seen: now}
			return []Event{EventKeyboard{Key: key, Mod: mod, Down: true, Repeat: true}}
		}
		evs = append(evs, EventKeyboard{Key: key, Mod: h.mod})
	}

	r.held[key] = held{mod: mod, seen: now}
	return append(evs, EventKeyboard{Key: key, Mod: mod, Down: true})
}

// Expire returns release events for the keys that have timed out. Events are
// in key name order.
func (r *KeyRelease) Expire(now time.Time) []Event {
	var keys []string
	for k, h := range r.held {
		if now.Sub(h.seen) >= r.timeout() {
			keys = append(keys, k)
		}
	}
	return r.release(keys)
}

// ReleaseAll returns release events for every held key.
func (r *KeyRelease) ReleaseAll() []Event {
	var keys []string
	for k := range r.held {
		keys = append(keys, k)
	}
	return r.release(keys)
}

func (r *KeyRelease) release(keys []string) []Event {
	slices.Sort(keys)
	var evs []Event
	for _, k := range keys {
		evs = append(evs, EventKeyboard{Key: k, Mod: r.held[k].mod})
		delete(r.held, k)
	}
	return evs
}
