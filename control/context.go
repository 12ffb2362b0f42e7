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
	"io"
	"time"

	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/curated"
	"github.com/tickinput/tickinput/environment"
	"github.com/tickinput/tickinput/logger"
	"github.com/tickinput/tickinput/userinput"
)

// Stats records the work done by the Context.Control() function.
type Stats struct {
	// number of calls to Control()
	Ticks uint64

	// number of groups of triggered actions collected from interpreters
	Groups uint64

	// number of actions set triggered on a controller
	Dispatched uint64

	// number of triggered actions that lost to a stronger action in the
	// same group
	Discarded uint64

	// number of triggered actions not recognised by any controller
	Unrecognised uint64
}

// Context owns the interpreters and the controllers and dispatches triggered
// actions from the former to the latter, once per tick.
type Context struct {
	env *environment.Environment

	interpreterTypes *registry[InterpreterConstructor]
	controllerTypes  *registry[ControllerSetup]

	interpreters []Interpreter

	// controllers in the order they were added and in priority order. the
	// two slices always have the same members
	controllers []*Controller
	priority    []*Controller

	disabled map[string]bool

	// action names that have been reported as unrecognised
	reported map[string]bool

	stats Stats
}

// NewContext is the preferred method of initialisation for the Context type.
func NewContext(env *environment.Environment) *Context {
	return &Context{
		env:              env,
		interpreterTypes: newRegistry[InterpreterConstructor]("interpreter"),
		controllerTypes:  newRegistry[ControllerSetup]("controller"),
		disabled:         make(map[string]bool),
		reported:         make(map[string]bool),
	}
}

// Environment returns the environment the context was created with.
func (c *Context) Environment() *environment.Environment {
	return c.env
}

// RegisterInterpreterType adds an interpreter type to the type table. Only
// interpreters of a registered type can be added to the context.
func (c *Context) RegisterInterpreterType(typ string, create InterpreterConstructor) error {
	return c.interpreterTypes.register(typ, create)
}

// RegisterControllerType adds a controller type to the type table. Only
// controllers of a registered type can be added to the context. The setup
// function can be nil.
func (c *Context) RegisterControllerType(typ string, setup ControllerSetup) error {
	return c.controllerTypes.register(typ, setup)
}

// InterpreterTypes returns the names of the registered interpreter types.
func (c *Context) InterpreterTypes() []string {
	return c.interpreterTypes.names()
}

// ControllerTypes returns the names of the registered controller types.
func (c *Context) ControllerTypes() []string {
	return c.controllerTypes.names()
}

// AddInputInterpreter adds an interpreter to the context. The type of the
// interpreter must have been registered and there can be only one interpreter
// of each type.
func (c *Context) AddInputInterpreter(itp Interpreter) error {
	if _, err := c.interpreterTypes.lookup(itp.Type()); err != nil {
		return err
	}
	if c.Interpreter(itp.Type()) != nil {
		return curated.Errorf(InterpreterDuplicate, itp.Type())
	}
	c.interpreters = append(c.interpreters, itp)
	return nil
}

// AddController adds a controller to the context. The type of the controller
// must have been registered. The controller is given the lowest priority.
func (c *Context) AddController(ctrl *Controller) error {
	if _, err := c.controllerTypes.lookup(ctrl.Type()); err != nil {
		return err
	}
	if c.Controller(ctrl.Name()) != nil {
		return curated.Errorf(ControllerDuplicate, ctrl.Name())
	}
	c.controllers = append(c.controllers, ctrl)
	c.priority = append(c.priority, ctrl)
	return nil
}

// MakeControllerPriority moves the controller to the front of the priority
// queue. The controller must already be part of the context.
func (c *Context) MakeControllerPriority(ctrl *Controller) error {
	for i, p := range c.priority {
		if p == ctrl {
			copy(c.priority[1:i+1], c.priority[:i])
			c.priority[0] = ctrl
			return nil
		}
	}
	return curated.Errorf(ControllerUnregistered, ctrl.Name())
}

// Interpreter returns the interpreter of the specified type. Returns nil if
// there is no such interpreter.
func (c *Context) Interpreter(typ string) Interpreter {
	for _, itp := range c.interpreters {
		if itp.Type() == typ {
			return itp
		}
	}
	return nil
}

// Interpreters returns all interpreters in the order they were added.
func (c *Context) Interpreters() []Interpreter {
	return append([]Interpreter(nil), c.interpreters...)
}

// Controller returns the named controller. Returns nil if there is no such
// controller.
func (c *Context) Controller(name string) *Controller {
	for _, ctrl := range c.controllers {
		if ctrl.Name() == name {
			return ctrl
		}
	}
	return nil
}

// Controllers returns all controllers in priority order.
func (c *Context) Controllers() []*Controller {
	return append([]*Controller(nil), c.priority...)
}

// EnableAction allows the named action to be triggered. Actions are enabled
// by default.
func (c *Context) EnableAction(action string) {
	delete(c.disabled, action)
}

// DisableAction prevents the named action from being triggered by any
// interpreter.
func (c *Context) DisableAction(action string) {
	c.disabled[action] = true
}

// IsActionEnabled returns false if the action has been disabled.
func (c *Context) IsActionEnabled(action string) bool {
	return !c.disabled[action]
}

func (c *Context) allow(action string) bool {
	return !c.disabled[action]
}

// StartListening calls StartListening() on every interpreter.
func (c *Context) StartListening() {
	for _, itp := range c.interpreters {
		itp.StartListening()
	}
}

// StopListening calls StopListening() on every interpreter.
func (c *Context) StopListening() {
	for _, itp := range c.interpreters {
		itp.StopListening()
	}
}

// HandleEvent implements the userinput.HandleInput interface. The event is
// forwarded to every interpreter that can handle user input events.
func (c *Context) HandleEvent(ev userinput.Event) (bool, error) {
	var handled bool
	for _, itp := range c.interpreters {
		if h, ok := itp.(userinput.HandleInput); ok {
			used, err := h.HandleEvent(ev)
			if err != nil {
				return handled, err
			}
			handled = handled || used
		}
	}
	return handled, nil
}

// Control collects the triggered actions from every interpreter and
// dispatches them to the controllers. Must be called once per tick.
//
// Controllers are visited in priority order. For each group of triggered
// actions the strongest action recognised by the controller is set triggered
// on the controller and the group is consumed. Lower priority controllers
// never see a consumed group. Once all groups have been visited the
// controller's actions are executed.
func (c *Context) Control(dt time.Duration) {
	c.stats.Ticks++

	var groups [][]TriggeredAction
	for _, itp := range c.interpreters {
		groups = append(groups, itp.TriggeredActions(c.allow)...)
	}
	c.stats.Groups += uint64(len(groups))

	for _, ctrl := range c.priority {
		for i, grp := range groups {
			if grp == nil {
				continue
			}

			winner := -1
			for j, e := range grp {
				if !ctrl.Recognizes(e.Name) {
					continue
				}
				if winner == -1 || Beats(e.Intensity, grp[winner].Intensity) {
					winner = j
				}
			}

			if winner == -1 {
				continue
			}

			ctrl.Action(grp[winner].Name).SetTriggered(grp[winner].Intensity)
			c.stats.Dispatched++
			c.stats.Discarded += uint64(len(grp) - 1)
			groups[i] = nil
		}

		ctrl.Execute(dt)
	}

	for _, grp := range groups {
		for _, e := range grp {
			c.stats.Unrecognised++
			if !c.reported[e.Name] {
				c.reported[e.Name] = true
				logger.Log(c.env, "control", curated.Errorf(ActionUnrecognised, e.Name))
			}
		}
	}
}

// Stats returns a copy of the dispatch statistics.
func (c *Context) Stats() Stats {
	return c.stats
}

// Load the interpreters and controllers in the configuration document. An
// entry with an unregistered type, or that otherwise fails to load, is logged
// and skipped. The rest of the document is still loaded. The first such
// failure is returned once the whole document has been processed.
//
// Loaded interpreters are listening.
func (c *Context) Load(doc *config.Document) error {
	var first error
	fail := func(entry string, err error) {
		err = curated.Errorf(LoadError, entry, err)
		logger.Log(c.env, "control", err)
		if first == nil {
			first = err
		}
	}

	for _, cfg := range doc.Interpreters {
		create, err := c.interpreterTypes.lookup(cfg.Type)
		if err != nil {
			fail("interpreter", err)
			continue
		}

		itp, err := create(c.env, cfg)
		if err != nil {
			fail(cfg.Type, err)
			continue
		}

		if err := c.AddInputInterpreter(itp); err != nil {
			fail(cfg.Type, err)
			continue
		}

		itp.StartListening()
	}

	for _, cfg := range doc.Controllers {
		setup, err := c.controllerTypes.lookup(cfg.Type)
		if err != nil {
			fail("controller", err)
			continue
		}

		ctrl, err := NewController(cfg.Type, cfg.Name, cfg.Actions)
		if err != nil {
			fail(cfg.Name, err)
			continue
		}

		if setup != nil {
			if err := setup(ctrl); err != nil {
				fail(cfg.Name, err)
				continue
			}
		}

		if err := c.AddController(ctrl); err != nil {
			fail(cfg.Name, err)
			continue
		}
	}

	// working backwards through the priority list means the first named
	// controller ends up at the front of the queue
	for i := len(doc.Priority) - 1; i >= 0; i-- {
		ctrl := c.Controller(doc.Priority[i])
		if ctrl == nil {
			fail("priority", curated.Errorf(ControllerUnregistered, doc.Priority[i]))
			continue
		}
		_ = c.MakeControllerPriority(ctrl)
	}

	for _, a := range doc.DisabledActions {
		c.DisableAction(a)
	}

	return first
}

// Clear removes all interpreters and controllers from the context. Registered
// types and disabled actions are not affected. Interpreters that implement the
// io.Closer interface are closed.
func (c *Context) Clear() error {
	c.StopListening()

	var first error
	for _, itp := range c.interpreters {
		if cl, ok := itp.(io.Closer); ok {
			if err := cl.Close(); err != nil && first == nil {
				first = err
			}
		}
	}

	c.interpreters = c.interpreters[:0]
	c.controllers = c.controllers[:0]
	c.priority = c.priority[:0]
	c.reported = make(map[string]bool)

	return first
}

// Reload clears the context and loads the configuration document.
func (c *Context) Reload(doc *config.Document) error {
	if err := c.Clear(); err != nil {
		return err
	}
	return c.Load(doc)
}
