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
	"strings"

	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/curated"
)

// Profile is a named set of bindings with at most one binding per action. The
// order in which bindings are added is preserved.
type Profile[B Binding] struct {
	name    string
	basedOn string

	bindings []B
	index    map[string]int
}

// NewProfile is the preferred method of initialisation for the Profile type.
// The basedOn argument can be empty.
func NewProfile[B Binding](name string, basedOn string) *Profile[B] {
	return &Profile[B]{
		name:    name,
		basedOn: basedOn,
		index:   make(map[string]int),
	}
}

// Name of the profile.
func (p *Profile[B]) Name() string {
	return p.name
}

// BasedOn returns the name of the profile this profile extends. Empty string
// if the profile does not extend another profile.
func (p *Profile[B]) BasedOn() string {
	return p.basedOn
}

// Add a binding to the profile. It is an error to add a binding for an action
// that already has a binding in the profile.
func (p *Profile[B]) Add(b B) error {
	if _, ok := p.index[b.Action()]; ok {
		return curated.Errorf(ProfileDuplicate, p.name, b.Action())
	}
	p.index[b.Action()] = len(p.bindings)
	p.bindings = append(p.bindings, b)
	return nil
}

// Set the binding for the action, replacing any existing binding for the
// action. A replaced binding keeps its position in the profile.
func (p *Profile[B]) Set(b B) {
	if i, ok := p.index[b.Action()]; ok {
		p.bindings[i] = b
		return
	}
	p.index[b.Action()] = len(p.bindings)
	p.bindings = append(p.bindings, b)
}

// Remove the binding for the action. Returns false if there was no binding.
func (p *Profile[B]) Remove(action string) bool {
	i, ok := p.index[action]
	if !ok {
		return false
	}

	p.bindings = append(p.bindings[:i], p.bindings[i+1:]...)
	delete(p.index, action)
	for j := i; j < len(p.bindings); j++ {
		p.index[p.bindings[j].Action()] = j
	}

	return true
}

// Binding returns the binding for the action.
func (p *Profile[B]) Binding(action string) (B, bool) {
	i, ok := p.index[action]
	if !ok {
		var zero B
		return zero, false
	}
	return p.bindings[i], true
}

// Bindings returns the bindings in the order they were added. The returned
// slice should not be modified.
func (p *Profile[B]) Bindings() []B {
	return p.bindings
}

// Len returns the number of bindings in the profile.
func (p *Profile[B]) Len() int {
	return len(p.bindings)
}

// LoadProfiles creates a profile for every profile configuration, using the
// load function to create the bindings. The profiles are not resolved. See
// ResolveProfiles().
func LoadProfiles[B Binding](cfgs []config.Profile, load Loader[B]) ([]*Profile[B], error) {
	profiles := make([]*Profile[B], 0, len(cfgs))

	for _, c := range cfgs {
		p := NewProfile[B](c.Name, c.BasedOn)
		for _, bc := range c.Bindings {
			b, err := load(c.Name, bc)
			if err != nil {
				return nil, curated.Errorf(BindingError, c.Name, err)
			}
			if err := p.Add(b); err != nil {
				return nil, err
			}
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}

// ResolveProfiles flattens the basedOn chain of every profile. The bindings of
// a resolved profile are the bindings of the most distant ancestor, overridden
// and then extended by the bindings of each descendant in turn.
//
// The returned profiles are in the same order as the profiles argument. A
// basedOn reference to a missing profile, or a chain of references that loops
// back on itself, is an error.
func ResolveProfiles[B Binding](profiles []*Profile[B]) ([]*Profile[B], error) {
	byName := make(map[string]*Profile[B], len(profiles))
	for _, p := range profiles {
		if _, ok := byName[p.name]; ok {
			return nil, curated.Errorf(ProfileRedeclared, p.name)
		}
		byName[p.name] = p
	}

	resolved := make([]*Profile[B], 0, len(profiles))

	for _, p := range profiles {
		chain := []*Profile[B]{p}
		seen := map[string]bool{p.name: true}

		for q := p; q.basedOn != ""; {
			parent, ok := byName[q.basedOn]
			if !ok {
				return nil, curated.Errorf(ProfileUnknownParent, q.name, q.basedOn)
			}

			if seen[parent.name] {
				names := make([]string, 0, len(chain)+1)
				for _, c := range chain {
					names = append(names, c.name)
				}
				names = append(names, parent.name)
				return nil, curated.Errorf(ProfileCycle, strings.Join(names, " -> "))
			}

			seen[parent.name] = true
			chain = append(chain, parent)
			q = parent
		}

		r := NewProfile[B](p.name, p.basedOn)
		for i := len(chain) - 1; i >= 0; i-- {
			for _, b := range chain[i].bindings {
				r.Set(b)
			}
		}

		resolved = append(resolved, r)
	}

	return resolved, nil
}

// copy of the profile. the bindings themselves are not copied
func (p *Profile[B]) clone() *Profile[B] {
	c := NewProfile[B](p.name, p.basedOn)
	for _, b := range p.bindings {
		c.Set(b)
	}
	return c
}
