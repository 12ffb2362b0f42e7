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

// Package devices registers the interpreter types provided by the control
// sub-packages with a control.Context.
package devices

import (
	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/control"
	"github.com/tickinput/tickinput/control/gamepad"
	"github.com/tickinput/tickinput/control/keyboard"
	"github.com/tickinput/tickinput/control/touch"
	"github.com/tickinput/tickinput/environment"
)

// NoGamepads is an implementation of gamepad.Devices with no devices.
type NoGamepads struct{}

// ListDevices implements the gamepad.Devices interface.
func (NoGamepads) ListDevices() []gamepad.State {
	return nil
}

// Register the keyboard, touch and gamepad interpreter types with the
// context. The gamepads argument is the source of gamepad state for any
// gamepad interpreter created by the context. It can be nil, in which case
// gamepad interpreters will never see a connected device.
func Register(ctx *control.Context, gamepads gamepad.Devices) error {
	if gamepads == nil {
		gamepads = NoGamepads{}
	}

	err := ctx.RegisterInterpreterType(keyboard.Type, func(env *environment.Environment, cfg config.Interpreter) (control.Interpreter, error) {
		return keyboard.NewInterpreter(env, cfg)
	})
	if err != nil {
		return err
	}

	err = ctx.RegisterInterpreterType(touch.Type, func(env *environment.Environment, cfg config.Interpreter) (control.Interpreter, error) {
		return touch.NewInterpreter(env, cfg)
	})
	if err != nil {
		return err
	}

	return ctx.RegisterInterpreterType(gamepad.Type, func(env *environment.Environment, cfg config.Interpreter) (control.Interpreter, error) {
		return gamepad.NewInterpreter(env, cfg, gamepads)
	})
}
