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

package control_test

import (
	"fmt"

	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/control"
	"github.com/tickinput/tickinput/environment"
)

// button is a minimal binding used for testing. the physical control is
// identified by the Key field of the binding configuration
type button struct {
	control.Assignment
	key string
}

func (b *button) BindsSameControls(other control.Binding) bool {
	o, ok := other.(*button)
	return ok && o.key == b.key
}

func (b *button) Config() config.Binding {
	return config.Binding{Action: b.ActionName, Key: b.key}
}

func (b *button) String() string {
	return fmt.Sprintf("button %s", b.key)
}

func loadButton(profile string, cfg config.Binding) (*button, error) {
	if cfg.Key == "" {
		return nil, fmt.Errorf("no key")
	}
	return &button{
		Assignment: control.Assignment{ActionName: cfg.Action, ProfileName: profile},
		key:        cfg.Key,
	}, nil
}

// panel is a minimal interpreter used for testing. the intensity of each
// binding is looked up in the levels map by the action name
type panel struct {
	*control.Base[*button]
	levels map[string]control.Intensity

	// the actions for which an intensity was calculated during the most
	// recent call to TriggeredActions()
	evaluated []string
}

func newPanel(env *environment.Environment, cfg config.Interpreter) (*panel, error) {
	p := &panel{levels: make(map[string]control.Intensity)}
	b, err := control.NewBase(env, "panel", cfg, loadButton, p.intensity)
	if err != nil {
		return nil, err
	}
	p.Base = b
	p.SetSource(p)
	return p, nil
}

func (p *panel) intensity(b *button) control.Intensity {
	p.evaluated = append(p.evaluated, b.Action())
	return p.levels[b.Action()]
}

func (p *panel) TriggeredActions(allow func(string) bool) [][]control.TriggeredAction {
	p.evaluated = p.evaluated[:0]
	return p.Base.TriggeredActions(allow)
}

func bind(action string, key string) config.Binding {
	return config.Binding{Action: action, Key: key}
}

func panelConfig(profiles ...config.Profile) config.Interpreter {
	return config.Interpreter{Type: "panel", Profiles: profiles}
}
