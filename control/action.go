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

package control

import "time"

// TriggerFunc is called when an action is triggered. For continuous actions it
// is called every tick the action is triggered. For all other actions it is
// called once per trigger episode.
type TriggerFunc func(intensity Intensity, dt time.Duration)

// ReleaseFunc is called once on the first tick an action is no longer
// triggered.
type ReleaseFunc func(dt time.Duration)

// Action is a named trigger owned by a controller.
type Action struct {
	name       string
	continuous bool

	// triggered state for the current tick
	triggered bool
	intensity Intensity

	// executed is true once the trigger function has been called for the
	// current trigger episode. nonTriggeredExecuted is true once the release
	// function has been called after the end of an episode
	executed             bool
	nonTriggeredExecuted bool

	onTrigger TriggerFunc
	onRelease ReleaseFunc
}

// NewAction is the preferred method of initialisation for the Action type.
func NewAction(name string, continuous bool) *Action {
	return &Action{
		name:                 name,
		continuous:           continuous,
		nonTriggeredExecuted: true,
	}
}

// Name of the action.
func (a *Action) Name() string {
	return a.name
}

// Continuous returns true if the action is a continuous action.
func (a *Action) Continuous() bool {
	return a.continuous
}

// Triggered returns true if the action has been triggered during the current
// tick.
func (a *Action) Triggered() bool {
	return a.triggered
}

// Intensity returns the intensity the action has been triggered with during
// the current tick.
func (a *Action) Intensity() Intensity {
	return a.intensity
}

// SetFunctions sets the trigger and release functions. Either can be nil.
func (a *Action) SetFunctions(onTrigger TriggerFunc, onRelease ReleaseFunc) {
	a.onTrigger = onTrigger
	a.onRelease = onRelease
}

// SetTriggered marks the action as triggered for the current tick. If the
// action has already been triggered this tick then the stronger of the two
// intensities is kept.
func (a *Action) SetTriggered(intensity Intensity) {
	if !intensity.Triggered() {
		return
	}

	if a.triggered {
		a.intensity = Stronger(a.intensity, intensity)
	} else {
		a.intensity = intensity
		a.triggered = true
	}
}

// Execute calls the trigger or release function as appropriate and prepares
// the action for the next tick.
func (a *Action) Execute(dt time.Duration) {
	if a.triggered {
		if a.continuous || !a.executed {
			if a.onTrigger != nil {
				a.onTrigger(a.intensity, dt)
			}
			a.executed = true
		}
		a.nonTriggeredExecuted = false
	} else {
		if !a.nonTriggeredExecuted {
			if a.onRelease != nil {
				a.onRelease(dt)
			}
			a.nonTriggeredExecuted = true
		}
		a.executed = false
	}

	a.triggered = false
	a.intensity = None
}

// Reset the action to its initial state. The release function is not called.
func (a *Action) Reset() {
	a.triggered = false
	a.intensity = None
	a.executed = false
	a.nonTriggeredExecuted = true
}
