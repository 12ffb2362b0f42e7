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
	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/curated"
	"github.com/tickinput/tickinput/environment"
)

// InterpreterConstructor creates an interpreter from its configuration.
type InterpreterConstructor func(env *environment.Environment, cfg config.Interpreter) (Interpreter, error)

// registry is a table of named types. kind is used in error messages
type registry[T any] struct {
	kind    string
	entries map[string]T
	order   []string
}

func newRegistry[T any](kind string) *registry[T] {
	return &registry[T]{
		kind:    kind,
		entries: make(map[string]T),
	}
}

func (r *registry[T]) register(name string, v T) error {
	if _, ok := r.entries[name]; ok {
		return curated.Errorf(DuplicateType, r.kind, name)
	}
	r.entries[name] = v
	r.order = append(r.order, name)
	return nil
}

func (r *registry[T]) lookup(name string) (T, error) {
	v, ok := r.entries[name]
	if !ok {
		return v, curated.Errorf(UnknownType, r.kind, name)
	}
	return v, nil
}

func (r *registry[T]) names() []string {
	return append([]string(nil), r.order...)
}
