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

package notifications

// Notice describes events that somehow change the state of the input system in
// a way the user might want to know about.
type Notice string

// List of defined notifications.
const (
	// the gamepad interpreter has bound to a device slot
	NotifyGamepadConnected Notice = "NotifyGamepadConnected"

	// the device slot the gamepad interpreter was bound to is now empty
	NotifyGamepadDisconnected Notice = "NotifyGamepadDisconnected"

	// the user has turned off all gamepads
	NotifyGamepadDisabled Notice = "NotifyGamepadDisabled"

	// an interpreter has changed the active profile
	NotifyProfileChanged Notice = "NotifyProfileChanged"

	// the configuration file has changed on disk and has been reloaded
	NotifyConfigReloaded Notice = "NotifyConfigReloaded"
)

// Notify is used for direct communication between the interpreters and the
// host of the control context.
type Notify interface {
	Notify(notice Notice) error
}

// Discard is an implementation of Notify that ignores every notice.
type Discard struct{}

// Notify implements the Notify interface.
func (Discard) Notify(_ Notice) error {
	return nil
}

// Recorder is an implementation of Notify that keeps every notice it receives
// in the order they were received. Useful for testing.
type Recorder struct {
	Notices []Notice
}

// Notify implements the Notify interface.
func (r *Recorder) Notify(notice Notice) error {
	r.Notices = append(r.Notices, notice)
	return nil
}

// Last returns the most recent notice. Empty string if no notice has been
// received.
func (r *Recorder) Last() Notice {
	if len(r.Notices) == 0 {
		return ""
	}
	return r.Notices[len(r.Notices)-1]
}
