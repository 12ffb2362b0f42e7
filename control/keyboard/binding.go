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
	"strings"

	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/control"
	"github.com/tickinput/tickinput/curated"
	"github.com/tickinput/tickinput/userinput"
)

// Sentinal error patterns.
const (
	BindingInvalid = "keyboard: binding for %s: %s"
)

// Binding is a key and modifier combination bound to an action.
type Binding struct {
	control.Assignment

	// normalised key name
	key string
	mod userinput.KeyMod
}

// NewBinding binds a key to an action.
func NewBinding(profile string, action string, key string, mod userinput.KeyMod) (*Binding, error) {
	key = normalise(key)
	if key == "" {
		return nil, curated.Errorf(BindingInvalid, action, "no key specified")
	}
	return &Binding{
		Assignment: control.Assignment{ActionName: action, ProfileName: profile},
		key:        key,
		mod:        mod,
	}, nil
}

// LoadBinding creates a binding from its configuration. It implements the
// control.Loader type.
func LoadBinding(profile string, cfg config.Binding) (*Binding, error) {
	var mod userinput.KeyMod
	if cfg.Shift {
		mod |= userinput.KeyModShift
	}
	if cfg.Ctrl {
		mod |= userinput.KeyModCtrl
	}
	if cfg.Alt {
		mod |= userinput.KeyModAlt
	}
	return NewBinding(profile, cfg.Action, cfg.Key, mod)
}

func normalise(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Key returns the normalised name of the bound key.
func (b *Binding) Key() string {
	return b.key
}

// Mod returns the modifiers that must be held with the key.
func (b *Binding) Mod() userinput.KeyMod {
	return b.mod
}

// Matches returns true if the key and modifiers are those of the binding.
func (b *Binding) Matches(key string, mod userinput.KeyMod) bool {
	return b.mod == mod && b.key == normalise(key)
}

// BindsSameControls implements the control.Binding interface.
func (b *Binding) BindsSameControls(other control.Binding) bool {
	o, ok := other.(*Binding)
	return ok && o.key == b.key && o.mod == b.mod
}

// Config implements the control.Binding interface.
func (b *Binding) Config() config.Binding {
	return config.Binding{
		Action: b.ActionName,
		Key:    b.key,
		Shift:  b.mod&userinput.KeyModShift == userinput.KeyModShift,
		Ctrl:   b.mod&userinput.KeyModCtrl == userinput.KeyModCtrl,
		Alt:    b.mod&userinput.KeyModAlt == userinput.KeyModAlt,
	}
}

func (b *Binding) String() string {
	return b.mod.String() + strings.ToUpper(b.key[:1]) + b.key[1:]
}
