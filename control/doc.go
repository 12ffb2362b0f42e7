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

// Package control translates the state of input devices into named actions
// that controllers can consume, once per tick.
//
// An Interpreter owns the state of one type of input device (a gamepad, a
// touch screen, a keyboard) and a set of profiles. A Profile is a named set of
// bindings and a Binding associates one physical control with one action.
// Profiles can be based on other profiles, in which case they inherit the
// bindings of the parent profile. See ResolveProfiles().
//
// The Context owns all interpreters and a priority ordered list of
// controllers. Once per tick the Context.Control() function asks every
// interpreter for the actions that have been triggered and dispatches them to
// the controllers:
//
//	ctx := control.NewContext(env)
//	devices.Register(ctx, gamepads)
//	ctx.RegisterControllerType("player", setupPlayer)
//
//	err := ctx.Load(doc)
//
//	for {
//		ctx.Control(dt)
//	}
//
// Triggered actions are grouped by the physical control that triggered them.
// Only one action in a group is dispatched, to the highest priority
// controller that recognises any action in the group. If more than one action
// in the group is recognised then the action with the strongest Intensity
// wins.
//
// Intensity is a value between 0 and 1 or one of the non-graded values
// Unspecified and Edge. An Unspecified intensity comes from a binary control
// such as a key press. An Edge intensity comes from a one-shot gesture such
// as a tap. Non-graded intensities always beat graded intensities. See the
// Beats() function.
//
// Actions are either continuous or edge triggered. The trigger function of a
// continuous action is called every tick that it is triggered. The trigger
// function of an edge triggered action is called once per trigger episode. In
// both cases the release function is called once, on the first tick after the
// episode ends.
package control
