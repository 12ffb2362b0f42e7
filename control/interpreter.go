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

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/curated"
	"github.com/tickinput/tickinput/environment"
	"github.com/tickinput/tickinput/logger"
	"github.com/tickinput/tickinput/notifications"
	"github.com/tickinput/tickinput/prefs"
)

// TriggeredAction is an action triggered by an interpreter during the current
// tick.
type TriggeredAction struct {
	Name      string
	Intensity Intensity
	Source    Interpreter
}

// Interpreter turns the state of an input device into triggered actions.
//
// Listening and enabled are independent. An interpreter that is listening but
// disabled tracks the state of the device but does not produce any triggered
// actions.
type Interpreter interface {
	// the type of interpreter. the same as the name used to register the
	// interpreter type with the context
	Type() string

	// StartListening and StopListening both discard any device state that
	// has been tracked so far
	StartListening()
	StopListening()
	IsListening() bool

	Enable()
	Disable()
	IsEnabled() bool

	SetProfile(name string) error
	Profile() string
	Profiles() []string

	// TriggeredActions returns the actions triggered during the current tick.
	// Actions triggered by bindings that bind the same controls are in the
	// same group. Groups are ordered by the first binding in the profile
	// that contributed to the group.
	//
	// Only actions for which the allow function returns true are considered.
	// A nil allow function allows all actions.
	TriggeredActions(allow func(action string) bool) [][]TriggeredAction

	// human readable description of the binding for the action in the
	// current profile
	Describe(action string) string
}

// the store key used to remember the active profile
const profileKey = "profile"

// the store key used for custom bindings. the value is a JSON document of
// the form {profile: {action: binding}}
const customKey = "bindings"

// Base implements the parts of the Interpreter interface that are common to
// all interpreters. Interpreter implementations embed a pointer to Base and
// supply a function to calculate the intensity of a binding.
type Base[B Binding] struct {
	env *environment.Environment
	typ string

	// the interpreter that has embedded this instance of Base. used as the
	// Source field of a TriggeredAction
	source Interpreter

	intensity func(b B) Intensity
	load      Loader[B]

	listening bool
	enabled   bool

	// profiles in declaration order and the same profiles indexed by name.
	// defaults is the resolved profiles before any custom bindings were
	// applied
	order    []*Profile[B]
	profiles map[string]*Profile[B]
	defaults map[string]*Profile[B]
	current  *Profile[B]

	store *prefs.Store
}

// NewBase is the preferred method of initialisation for the Base type.
//
// The profiles in the configuration are created with the load function and
// resolved. Any custom bindings found in the environment's store are applied
// to the resolved profiles. The active profile is the one remembered in the
// store, the one named in the configuration or the first profile, in that
// order of preference.
func NewBase[B Binding](env *environment.Environment, typ string, cfg config.Interpreter, load Loader[B], intensity func(b B) Intensity) (*Base[B], error) {
	if len(cfg.Profiles) == 0 {
		return nil, curated.Errorf(ProfileMissing, typ)
	}

	loaded, err := LoadProfiles(cfg.Profiles, load)
	if err != nil {
		return nil, err
	}

	resolved, err := ResolveProfiles(loaded)
	if err != nil {
		return nil, err
	}

	b := &Base[B]{
		env:       env,
		typ:       typ,
		intensity: intensity,
		load:      load,
		enabled:   true,
		order:     resolved,
		profiles:  make(map[string]*Profile[B]),
		defaults:  make(map[string]*Profile[B]),
		store:     env.Prefs.Sub(typ),
	}

	for _, p := range resolved {
		b.defaults[p.name] = p
		b.profiles[p.name] = p.clone()
	}
	for i, p := range b.order {
		b.order[i] = b.profiles[p.name]
	}

	b.applyCustomBindings()

	b.current = b.order[0]
	if cfg.Profile != "" {
		p, ok := b.profiles[cfg.Profile]
		if !ok {
			return nil, curated.Errorf(ProfileUnknown, cfg.Profile)
		}
		b.current = p
	}
	if name, ok := b.store.Get(profileKey); ok {
		if p, ok := b.profiles[name]; ok {
			b.current = p
		}
	}

	return b, nil
}

func (b *Base[B]) applyCustomBindings() {
	b.store.GetJSON(customKey, "").ForEach(func(profile, actions gjson.Result) bool {
		p, ok := b.profiles[profile.String()]
		if !ok {
			return true
		}

		actions.ForEach(func(action, value gjson.Result) bool {
			var c config.Binding
			if err := json.Unmarshal([]byte(value.Raw), &c); err != nil {
				logger.Log(b.env, b.typ, curated.Errorf(CustomBindingError, err))
				return true
			}
			c.Action = action.String()

			bnd, err := b.load(p.name, c)
			if err != nil {
				logger.Log(b.env, b.typ, curated.Errorf(CustomBindingError, err))
				return true
			}

			p.Set(bnd)
			return true
		})

		return true
	})
}

// SetSource sets the interpreter that is reported as the source of triggered
// actions. Should be called by the interpreter that embeds Base.
func (b *Base[B]) SetSource(itp Interpreter) {
	b.source = itp
}

// Environment returns the environment the interpreter was created with.
func (b *Base[B]) Environment() *environment.Environment {
	return b.env
}

// Store returns the store used by the interpreter. The namespace of the store
// is the interpreter type.
func (b *Base[B]) Store() *prefs.Store {
	return b.store
}

// Type implements the Interpreter interface.
func (b *Base[B]) Type() string {
	return b.typ
}

// StartListening implements the Interpreter interface.
func (b *Base[B]) StartListening() {
	b.listening = true
}

// StopListening implements the Interpreter interface.
func (b *Base[B]) StopListening() {
	b.listening = false
}

// IsListening implements the Interpreter interface.
func (b *Base[B]) IsListening() bool {
	return b.listening
}

// Enable implements the Interpreter interface.
func (b *Base[B]) Enable() {
	b.enabled = true
}

// Disable implements the Interpreter interface.
func (b *Base[B]) Disable() {
	b.enabled = false
}

// IsEnabled implements the Interpreter interface.
func (b *Base[B]) IsEnabled() bool {
	return b.enabled
}

// SetProfile implements the Interpreter interface. The profile is remembered
// in the store.
func (b *Base[B]) SetProfile(name string) error {
	p, ok := b.profiles[name]
	if !ok {
		return curated.Errorf(ProfileUnknown, name)
	}

	if b.current == p {
		return nil
	}
	b.current = p

	if err := b.store.Set(profileKey, name); err != nil {
		return err
	}

	return b.env.Notice(notifications.NotifyProfileChanged)
}

// Profile implements the Interpreter interface.
func (b *Base[B]) Profile() string {
	return b.current.name
}

// Profiles implements the Interpreter interface.
func (b *Base[B]) Profiles() []string {
	names := make([]string, 0, len(b.order))
	for _, p := range b.order {
		names = append(names, p.name)
	}
	return names
}

// Bindings returns the bindings of the current profile in declaration order.
func (b *Base[B]) Bindings() []B {
	return b.current.Bindings()
}

// Binding returns the binding for the action in the current profile.
func (b *Base[B]) Binding(action string) (B, bool) {
	return b.current.Binding(action)
}

// EachBinding calls the function for every binding in every profile. A binding
// that is shared by more than one profile, because of basedOn inheritance,
// is visited once for every profile it is part of.
func (b *Base[B]) EachBinding(f func(bnd B)) {
	for _, p := range b.order {
		for _, bnd := range p.bindings {
			f(bnd)
		}
	}
}

// Describe implements the Interpreter interface.
func (b *Base[B]) Describe(action string) string {
	bnd, ok := b.current.Binding(action)
	if !ok {
		return "unbound"
	}
	return bnd.String()
}

// TriggeredActions implements the Interpreter interface.
//
// The intensity of every allowed binding is calculated, even if an earlier
// binding of the same control has already triggered. Some interpreters rely
// on this to update per-binding state.
func (b *Base[B]) TriggeredActions(allow func(action string) bool) [][]TriggeredAction {
	if !b.listening || !b.enabled {
		return nil
	}

	// one representative binding for each group
	var keys []B
	var groups [][]TriggeredAction

	for _, bnd := range b.current.Bindings() {
		if allow != nil && !allow(bnd.Action()) {
			continue
		}

		g := -1
		for i, k := range keys {
			if k.BindsSameControls(bnd) {
				g = i
				break
			}
		}
		if g == -1 {
			g = len(keys)
			keys = append(keys, bnd)
			groups = append(groups, nil)
		}

		v := b.intensity(bnd)
		if !v.Triggered() {
			continue
		}

		groups[g] = append(groups[g], TriggeredAction{
			Name:      bnd.Action(),
			Intensity: v,
			Source:    b.source,
		})
	}

	// remove groups with no triggered actions
	triggered := groups[:0]
	for _, g := range groups {
		if len(g) > 0 {
			triggered = append(triggered, g)
		}
	}

	return triggered
}

// SetCustomBinding replaces the binding for an action in the named profile.
// The binding is remembered in the store and reapplied whenever an
// interpreter of the same type is created with the same environment.
//
// Only the named profile is affected. Profiles that are based on the named
// profile keep the binding they were resolved with.
func (b *Base[B]) SetCustomBinding(profile string, bnd B) error {
	p, ok := b.profiles[profile]
	if !ok {
		return curated.Errorf(ProfileUnknown, profile)
	}

	c := bnd.Config()
	c.Action = ""
	data, err := json.Marshal(c)
	if err != nil {
		return curated.Errorf(CustomBindingError, err)
	}

	path := prefs.EscapePath(profile) + "." + prefs.EscapePath(bnd.Action())
	if err := b.store.SetJSON(customKey, path, data); err != nil {
		return curated.Errorf(CustomBindingError, err)
	}

	p.Set(bnd)

	return nil
}

// RemoveCustomBinding restores the configured binding for an action in the
// named profile. If the action was not bound by the configuration then the
// action is unbound.
func (b *Base[B]) RemoveCustomBinding(profile string, action string) error {
	p, ok := b.profiles[profile]
	if !ok {
		return curated.Errorf(ProfileUnknown, profile)
	}

	path := prefs.EscapePath(profile) + "." + prefs.EscapePath(action)
	if err := b.store.DeleteJSON(customKey, path); err != nil {
		return curated.Errorf(CustomBindingError, err)
	}

	if def, ok := b.defaults[profile].Binding(action); ok {
		p.Set(def)
	} else {
		p.Remove(action)
	}

	return nil
}

// IsCustomBinding returns true if the binding for the action in the named
// profile has been set with SetCustomBinding().
func (b *Base[B]) IsCustomBinding(profile string, action string) bool {
	path := prefs.EscapePath(profile) + "." + prefs.EscapePath(action)
	return b.store.GetJSON(customKey, path).Exists()
}
