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

package keyboard_test

import (
	"testing"

	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/control"
	"github.com/tickinput/tickinput/control/keyboard"
	"github.com/tickinput/tickinput/curated"
	"github.com/tickinput/tickinput/environment"
	"github.com/tickinput/tickinput/test"
	"github.com/tickinput/tickinput/userinput"
)

func newTestInterpreter(t *testing.T, bindings ...config.Binding) *keyboard.Interpreter {
	t.Helper()
	env := environment.NewEnvironment("test", nil)
	cfg := config.Interpreter{
		Type:     keyboard.Type,
		Profiles: []config.Profile{{Name: "default", Bindings: bindings}},
	}
	k, err := keyboard.NewInterpreter(env, cfg)
	test.DemandSuccess(t, err)
	k.StartListening()
	return k
}

func press(t *testing.T, k *keyboard.Interpreter, key string, mod userinput.KeyMod, down bool) {
	t.Helper()
	handled, err := k.HandleEvent(userinput.EventKeyboard{Key: key, Mod: mod, Down: down})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, handled)
}

func names(groups [][]control.TriggeredAction) []string {
	var n []string
	for _, g := range groups {
		for _, a := range g {
			n = append(n, a.Name)
		}
	}
	return n
}

func TestLoadBinding(t *testing.T) {
	_, err := keyboard.LoadBinding("default", config.Binding{Action: "jump"})
	test.ExpectSuccess(t, curated.Is(err, keyboard.BindingInvalid))

	b, err := keyboard.LoadBinding("default", config.Binding{Action: "save", Key: "S", Ctrl: true})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.Key(), "s")
	test.ExpectEquality(t, b.Mod(), userinput.KeyModCtrl)
	test.ExpectEquality(t, b.String(), "Ctrl+S")
	test.ExpectSuccess(t, b.Matches("s", userinput.KeyModCtrl))
	test.ExpectFailure(t, b.Matches("s", userinput.KeyModCtrl|userinput.KeyModShift))

	c := b.Config()
	test.ExpectEquality(t, c.Key, "s")
	test.ExpectSuccess(t, c.Ctrl)
	test.ExpectFailure(t, c.Shift)

	plain, err := keyboard.LoadBinding("default", config.Binding{Action: "down", Key: "s"})
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, plain.BindsSameControls(b))

	upper, err := keyboard.LoadBinding("other", config.Binding{Action: "crouch", Key: "S"})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, plain.BindsSameControls(upper))
}

func TestHeldKeys(t *testing.T) {
	k := newTestInterpreter(t,
		config.Binding{Action: "down", Key: "s"},
		config.Binding{Action: "save", Key: "s", Ctrl: true},
		config.Binding{Action: "jump", Key: "Space"},
	)

	test.ExpectEquality(t, len(k.TriggeredActions(nil)), 0)

	press(t, k, "S", userinput.KeyModNone, true)
	groups := k.TriggeredActions(nil)
	test.DemandEquality(t, len(groups), 1)
	test.ExpectEquality(t, groups[0][0].Name, "down")
	test.ExpectEquality(t, groups[0][0].Intensity, control.Unspecified)

	// the binding triggers for as long as the key is held
	test.ExpectEquality(t, len(k.TriggeredActions(nil)), 1)

	// exact modifiers
	press(t, k, "S", userinput.KeyModCtrl, true)
	n := names(k.TriggeredActions(nil))
	test.DemandEquality(t, len(n), 1)
	test.ExpectEquality(t, n[0], "save")

	press(t, k, "space", userinput.KeyModCtrl, true)
	n = names(k.TriggeredActions(nil))
	test.ExpectEquality(t, len(n), 1)

	press(t, k, "space", userinput.KeyModNone, true)
	n = names(k.TriggeredActions(nil))
	test.DemandEquality(t, len(n), 2)
	test.ExpectEquality(t, n[0], "down")
	test.ExpectEquality(t, n[1], "jump")

	press(t, k, "s", userinput.KeyModNone, false)
	n = names(k.TriggeredActions(nil))
	test.DemandEquality(t, len(n), 1)
	test.ExpectEquality(t, n[0], "jump")

	// repeats do not change the held state
	handled, err := k.HandleEvent(userinput.EventKeyboard{Key: "space", Repeat: true})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, handled)
	test.ExpectSuccess(t, k.IsHeld("Space"))

	// stopping forgets all keys
	k.StopListening()
	k.StartListening()
	test.ExpectFailure(t, k.IsHeld("space"))
	test.ExpectEquality(t, len(k.TriggeredActions(nil)), 0)
}

func TestOtherEvents(t *testing.T) {
	k := newTestInterpreter(t, config.Binding{Action: "jump", Key: "space"})
	handled, err := k.HandleEvent(userinput.EventResize{Width: 10, Height: 10})
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, handled)

	k.StopListening()
	handled, err = k.HandleEvent(userinput.EventKeyboard{Key: "space", Down: true})
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, handled)
}

func TestModifierWhileHeld(t *testing.T) {
	k := newTestInterpreter(t,
		config.Binding{Action: "left", Key: "left"},
		config.Binding{Action: "strafe", Key: "left", Shift: true},
	)

	press(t, k, "left", userinput.KeyModNone, true)
	n := names(k.TriggeredActions(nil))
	test.DemandEquality(t, len(n), 1)
	test.ExpectEquality(t, n[0], "left")

	// pressing shift while left is held changes the binding that triggers
	press(t, k, "lshift", userinput.KeyModShift, true)
	test.ExpectSuccess(t, k.IsHeld("left"))
	n = names(k.TriggeredActions(nil))
	test.DemandEquality(t, len(n), 1)
	test.ExpectEquality(t, n[0], "strafe")

	// and releasing it changes it back
	press(t, k, "lshift", userinput.KeyModNone, false)
	n = names(k.TriggeredActions(nil))
	test.DemandEquality(t, len(n), 1)
	test.ExpectEquality(t, n[0], "left")
}
