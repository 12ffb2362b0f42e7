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

package gamepad

import (
	"time"

	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/control"
	"github.com/tickinput/tickinput/curated"
	"github.com/tickinput/tickinput/environment"
	"github.com/tickinput/tickinput/logger"
	"github.com/tickinput/tickinput/notifications"
	"github.com/tickinput/tickinput/prefs"
	"github.com/tickinput/tickinput/userinput"
)

// Type is the name of the interpreter type.
const Type = "gamepad"

// Sentinal error patterns.
const (
	NoDevice   = "gamepad: no device connected at index %d"
	NoRumble   = "gamepad: backend does not support vibration"
	PrefsError = "gamepad: prefs: %v"
)

// Selection is the state of the device selection state machine.
type Selection int

// List of valid Selection values.
const (
	// no device has been chosen. the first connected device will be bound
	Unset Selection = iota

	// a device has been remembered from a previous session. a connected
	// device with the remembered ID will be bound in preference to any other
	DetectingPreference

	// a device slot has been bound
	BoundToIndex

	// the user has turned off all gamepads
	Disabled
)

func (s Selection) String() string {
	switch s {
	case Unset:
		return "unset"
	case DetectingPreference:
		return "detecting preference"
	case BoundToIndex:
		return "bound to index"
	case Disabled:
		return "disabled"
	}
	return "unknown"
}

// the keys used in the store
const (
	deviceKey    = "device"
	disabledKey  = "disabled"
	vibrationKey = "vibration"
)

// Interpreter is the control.Interpreter for gamepads.
type Interpreter struct {
	*control.Base[*Binding]

	env     *environment.Environment
	devices Devices

	selection Selection
	index     int

	// the state of the bound device as of the most recent poll
	state State

	// remembered device ID and disabled flag
	device    prefs.String
	disabled  prefs.Bool
	vibration prefs.Bool

	sensitivity sensitivity
}

// NewInterpreter is the preferred method of initialisation for the
// Interpreter type.
func NewInterpreter(env *environment.Environment, cfg config.Interpreter, devices Devices) (*Interpreter, error) {
	g := &Interpreter{
		env:     env,
		devices: devices,
	}

	var err error
	g.Base, err = control.NewBase(env, Type, cfg, LoadBinding, g.intensity)
	if err != nil {
		return nil, err
	}
	g.SetSource(g)

	if cfg.Vibration != nil {
		_ = g.vibration.Set(*cfg.Vibration)
	}

	if err := g.addPrefs(); err != nil {
		return nil, err
	}

	g.sensitivity = newSensitivity(env, cfg.SensitivityProfile)
	g.reset()

	return g, nil
}

// reset selection state to the initial state implied by the stored
// preferences
func (g *Interpreter) reset() {
	g.state = State{}
	g.index = -1
	switch {
	case g.disabled.Get().(bool):
		g.selection = Disabled
	case g.device.Get().(string) != "":
		g.selection = DetectingPreference
	default:
		g.selection = Unset
	}
}

// add typed preferences to the store. if any of the preferences cannot be
// added then the preferences that were added are released
func (g *Interpreter) addPrefs() error {
	store := g.Store()

	if err := store.Add(deviceKey, &g.device); err != nil {
		return curated.Errorf(PrefsError, err)
	}
	if err := store.Add(disabledKey, &g.disabled); err != nil {
		_ = store.Release(deviceKey)
		return curated.Errorf(PrefsError, err)
	}
	if err := store.Add(vibrationKey, &g.vibration); err != nil {
		_ = store.Release(deviceKey)
		_ = store.Release(disabledKey)
		return curated.Errorf(PrefsError, err)
	}

	return nil
}

func (g *Interpreter) release() {
	store := g.Store()
	for _, k := range []string{deviceKey, disabledKey, vibrationKey} {
		_ = store.Release(k)
	}
}

// Close implements the io.Closer interface. The interpreter's preferences are
// released so that another gamepad interpreter can be created with the same
// environment.
func (g *Interpreter) Close() error {
	g.release()
	return nil
}

// StartListening implements the control.Interpreter interface.
func (g *Interpreter) StartListening() {
	g.Base.StartListening()
	g.reset()
}

// StopListening implements the control.Interpreter interface.
func (g *Interpreter) StopListening() {
	g.Base.StopListening()
	g.reset()
}

// Selection returns the state of the device selection state machine and the
// bound device index. The index is -1 if no device is bound.
func (g *Interpreter) Selection() (Selection, int) {
	return g.selection, g.index
}

// Device returns the state of the bound device as of the most recent poll.
func (g *Interpreter) Device() State {
	return g.state
}

// Poll the devices and update the device selection. Called automatically by
// TriggeredActions() but can be called at any time.
func (g *Interpreter) Poll() {
	if g.selection == Disabled {
		g.state = State{}
		return
	}

	list := g.devices.ListDevices()

	if g.selection == BoundToIndex {
		for _, st := range list {
			if st.Index == g.index && st.Connected {
				g.state = st
				return
			}
		}

		// the bound slot is empty. fall through to the unset state so that
		// another device can be chosen during this poll
		logger.Logf(g.env, "gamepad", "device at index %d has been disconnected", g.index)
		g.selection = Unset
		g.index = -1
		g.state = State{}
		_ = g.env.Notice(notifications.NotifyGamepadDisconnected)
	}

	if preferred := g.device.Get().(string); preferred != "" {
		for _, st := range list {
			if st.Connected && st.ID == preferred {
				g.bind(st)
				return
			}
		}
	}

	for _, st := range list {
		if st.Connected {
			g.bind(st)
			return
		}
	}

	g.state = State{}
}

func (g *Interpreter) bind(st State) {
	g.selection = BoundToIndex
	g.index = st.Index
	g.state = st
	logger.Logf(g.env, "gamepad", "bound to %s at index %d", st.ID, st.Index)
	_ = g.env.Notice(notifications.NotifyGamepadConnected)
}

// SelectDevice binds the device at the slot index and remembers the device
// as the preferred device.
func (g *Interpreter) SelectDevice(index int) error {
	for _, st := range g.devices.ListDevices() {
		if st.Index == index && st.Connected {
			if err := g.device.Set(st.ID); err != nil {
				return curated.Errorf(PrefsError, err)
			}
			if err := g.disabled.Set(false); err != nil {
				return curated.Errorf(PrefsError, err)
			}
			if err := g.Store().Save(); err != nil {
				return curated.Errorf(PrefsError, err)
			}
			g.bind(st)
			return nil
		}
	}
	return curated.Errorf(NoDevice, index)
}

// DisableDevices turns off all gamepads. The choice is remembered.
func (g *Interpreter) DisableDevices() error {
	if err := g.disabled.Set(true); err != nil {
		return curated.Errorf(PrefsError, err)
	}
	if err := g.Store().Save(); err != nil {
		return curated.Errorf(PrefsError, err)
	}
	g.selection = Disabled
	g.index = -1
	g.state = State{}
	return g.env.Notice(notifications.NotifyGamepadDisabled)
}

// AutoSelect forgets the preferred device and turns gamepads back on if they
// have been disabled. The first connected device will be bound on the next
// poll.
func (g *Interpreter) AutoSelect() error {
	if err := g.device.Set(""); err != nil {
		return curated.Errorf(PrefsError, err)
	}
	if err := g.disabled.Set(false); err != nil {
		return curated.Errorf(PrefsError, err)
	}
	if err := g.Store().Save(); err != nil {
		return curated.Errorf(PrefsError, err)
	}
	g.selection = Unset
	g.index = -1
	g.state = State{}
	return nil
}

// SetVibration turns vibration on or off. The choice is remembered.
func (g *Interpreter) SetVibration(on bool) error {
	if err := g.vibration.Set(on); err != nil {
		return curated.Errorf(PrefsError, err)
	}
	if err := g.Store().Save(); err != nil {
		return curated.Errorf(PrefsError, err)
	}
	return nil
}

// Vibration returns true if vibration is turned on.
func (g *Interpreter) Vibration() bool {
	return g.vibration.Get().(bool)
}

// Rumble the bound device. Does nothing if vibration is turned off or if no
// device is bound.
func (g *Interpreter) Rumble(strength float64, duration time.Duration) error {
	if !g.Vibration() || g.selection != BoundToIndex {
		return nil
	}
	r, ok := g.devices.(Rumbler)
	if !ok {
		return curated.Errorf(NoRumble)
	}
	return r.Rumble(g.index, strength, duration)
}

// HandleEvent implements the userinput.HandleInput interface. Device events
// cause an immediate poll.
func (g *Interpreter) HandleEvent(ev userinput.Event) (bool, error) {
	if _, ok := ev.(userinput.EventGamepadDevice); !ok {
		return false, nil
	}
	if !g.IsListening() {
		return false, nil
	}
	g.Poll()
	return true, nil
}

// TriggeredActions implements the control.Interpreter interface.
func (g *Interpreter) TriggeredActions(allow func(string) bool) [][]control.TriggeredAction {
	if !g.IsListening() {
		return nil
	}
	g.Poll()
	return g.Base.TriggeredActions(allow)
}

func (g *Interpreter) intensity(b *Binding) control.Intensity {
	return g.sensitivity.apply(b.Action(), b.TriggeredIntensity(&g.state))
}
