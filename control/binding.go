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

import "github.com/tickinput/tickinput/config"

// Binding associates one physical control with one action. Each type of
// interpreter has its own implementation of the Binding interface and is
// responsible for deciding the intensity with which the binding is triggered.
type Binding interface {
	// the name of the action that the binding triggers
	Action() string

	// the name of the profile the binding was declared in
	Profile() string

	// BindsSameControls returns true if the other binding is triggered by
	// the same physical control. For example, the two directions of a
	// gamepad axis are the same control. Actions triggered by bindings that
	// bind the same controls are grouped together so that only one of them
	// fires.
	BindsSameControls(other Binding) bool

	// the configuration that would recreate the binding
	Config() config.Binding

	// human readable description of the physical control
	String() string
}

// Assignment is the part of a binding that is common to every type of
// interpreter. It is intended to be embedded in the interpreter specific
// binding type.
type Assignment struct {
	ActionName  string
	ProfileName string
}

// Action implements the Binding interface.
func (a Assignment) Action() string {
	return a.ActionName
}

// Profile implements the Binding interface.
func (a Assignment) Profile() string {
	return a.ProfileName
}

// Loader creates a binding from the configuration of a binding. The profile
// argument is the name of the profile the binding is declared in.
type Loader[B Binding] func(profile string, cfg config.Binding) (B, error)
