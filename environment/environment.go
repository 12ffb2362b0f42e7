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

package environment

import (
	"time"

	"github.com/tickinput/tickinput/notifications"
	"github.com/tickinput/tickinput/prefs"
)

// Label is used to name the environment
type Label string

// MainContext is the label of the environment for the main control context.
const MainContext Label = ""

// Environment is used to provide context for a control context and the
// interpreters it creates. Particularly useful when more than one control
// context is running at the same time, for example, in tests
type Environment struct {
	Label Label

	// the key-value store used by interpreters to remember device preferences
	// and custom bindings. the namespace of the store is the label of the
	// environment
	Prefs *prefs.Store

	// the clock used to timestamp events and to measure gesture durations
	Now func() time.Time

	// notifications are sent here
	Notify notifications.Notify

	// suppress logging for this environment
	Quiet bool
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The dsk argument can be nil in which case an in-memory prefs disk will be
// created. Providing a non-nil value allows preferences to be saved to a file
// and to be shared with other environments.
func NewEnvironment(label Label, dsk *prefs.Disk) *Environment {
	if dsk == nil {
		dsk = prefs.NewMemoryDisk()
	}

	return &Environment{
		Label:  label,
		Prefs:  prefs.NewStore(dsk, string(label)),
		Now:    time.Now,
		Notify: notifications.Discard{},
	}
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return !env.Quiet
}

// IsMainContext returns true if the environment is intended for the main
// control context in the system
func (env *Environment) IsMainContext() bool {
	return env.Label == MainContext
}

// IsContext checks the environment label and returns true if it matches
func (env *Environment) IsContext(label Label) bool {
	return env.Label == label
}

// Notice sends the notice to the environment's notifier. Any error is
// returned.
func (env *Environment) Notice(notice notifications.Notice) error {
	if env.Notify == nil {
		return nil
	}
	return env.Notify.Notify(notice)
}
