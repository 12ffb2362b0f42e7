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
	"time"

	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/curated"
)

// ControllerSetup is called for every controller of the registered type when
// the controller is loaded from a configuration document. It is the setup
// function's job to attach trigger and release functions to the controller's
// actions.
type ControllerSetup func(ctrl *Controller) error

// Controller is a named set of actions.
type Controller struct {
	typ  string
	name string

	actions []*Action
	index   map[string]*Action
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(typ string, name string, actions []config.Action) (*Controller, error) {
	ctrl := &Controller{
		typ:   typ,
		name:  name,
		index: make(map[string]*Action),
	}

	for _, a := range actions {
		if _, ok := ctrl.index[a.Name]; ok {
			return nil, curated.Errorf(ControllerActions, name, a.Name)
		}
		act := NewAction(a.Name, a.Continuous)
		ctrl.actions = append(ctrl.actions, act)
		ctrl.index[a.Name] = act
	}

	return ctrl, nil
}

// Type of the controller.
func (ctrl *Controller) Type() string {
	return ctrl.typ
}

// Name of the controller.
func (ctrl *Controller) Name() string {
	return ctrl.name
}

func (ctrl *Controller) String() string {
	return ctrl.name
}

// Recognizes returns true if the controller has an action with the name.
func (ctrl *Controller) Recognizes(action string) bool {
	_, ok := ctrl.index[action]
	return ok
}

// Action returns the named action. Returns nil if the controller does not
// recognise the action.
func (ctrl *Controller) Action(action string) *Action {
	return ctrl.index[action]
}

// Actions returns the names of the controller's actions in declaration order.
func (ctrl *Controller) Actions() []string {
	names := make([]string, 0, len(ctrl.actions))
	for _, a := range ctrl.actions {
		names = append(names, a.name)
	}
	return names
}

// SetActionFunctions sets the trigger and release functions for the named
// action.
func (ctrl *Controller) SetActionFunctions(action string, onTrigger TriggerFunc, onRelease ReleaseFunc) error {
	a, ok := ctrl.index[action]
	if !ok {
		return curated.Errorf(ActionUnknown, ctrl.name, action)
	}
	a.SetFunctions(onTrigger, onRelease)
	return nil
}

// Execute every action owned by the controller exactly once.
func (ctrl *Controller) Execute(dt time.Duration) {
	for _, a := range ctrl.actions {
		a.Execute(dt)
	}
}

// Reset every action owned by the controller.
func (ctrl *Controller) Reset() {
	for _, a := range ctrl.actions {
		a.Reset()
	}
}
