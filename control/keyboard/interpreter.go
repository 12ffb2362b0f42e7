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

package keyboard

import (
	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/control"
	"github.com/tickinput/tickinput/environment"
	"github.com/tickinput/tickinput/userinput"
)

// Type is the name of the interpreter type.
const Type = "keyboard"

// Interpreter is the control.Interpreter for keyboards.
//
// Modifiers must match exactly and are taken from the most recent keyboard
// event. Pressing or releasing a modifier while a key is held therefore
// changes which bindings are triggered: holding "left" and then pressing
// shift stops a binding for "left" and starts any binding for "shift+left".
type Interpreter struct {
	*control.Base[*Binding]

	// keys currently held down, by normalised name
	held map[string]bool

	// modifiers as of the most recent keyboard event
	mod userinput.KeyMod
}

// NewInterpreter is the preferred method of initialisation for the
// Interpreter type.
func NewInterpreter(env *environment.Environment, cfg config.Interpreter) (*Interpreter, error) {
	k := &Interpreter{
		held: make(map[string]bool),
	}

	var err error
	k.Base, err = control.NewBase(env, Type, cfg, LoadBinding, k.intensity)
	if err != nil {
		return nil, err
	}
	k.SetSource(k)

	return k, nil
}

func (k *Interpreter) reset() {
	clear(k.held)
	k.mod = userinput.KeyModNone
}

// StartListening implements the control.Interpreter interface.
func (k *Interpreter) StartListening() {
	k.Base.StartListening()
	k.reset()
}

// StopListening implements the control.Interpreter interface. All keys are
// considered to be released.
func (k *Interpreter) StopListening() {
	k.Base.StopListening()
	k.reset()
}

// IsHeld returns true if the key is currently held down.
func (k *Interpreter) IsHeld(key string) bool {
	return k.held[normalise(key)]
}

// HandleEvent implements the userinput.HandleInput interface.
func (k *Interpreter) HandleEvent(ev userinput.Event) (bool, error) {
	kev, ok := ev.(userinput.EventKeyboard)
	if !ok || !k.IsListening() {
		return false, nil
	}

	k.mod = kev.Mod
	if kev.Repeat {
		return true, nil
	}

	key := normalise(kev.Key)
	if kev.Down {
		k.held[key] = true
	} else {
		delete(k.held, key)
	}

	return true, nil
}

func (k *Interpreter) intensity(b *Binding) control.Intensity {
	if k.held[b.key] && k.mod == b.mod {
		return control.Unspecified
	}
	return control.None
}
