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

// Sentinal error patterns.
const (
	ProfileUnknownParent = "control: profile %s: unknown parent profile (%s)"
	ProfileCycle         = "control: profile: cyclic basedOn chain (%s)"
	ProfileDuplicate     = "control: profile %s: more than one binding for action (%s)"
	ProfileRedeclared    = "control: profile declared more than once (%s)"
	ProfileUnknown       = "control: unknown profile (%s)"
	ProfileMissing       = "control: no profiles for %s interpreter"
	BindingError         = "control: profile %s: %v"
	CustomBindingError   = "control: custom binding: %v"

	UnknownType   = "control: unknown %s type (%s)"
	DuplicateType = "control: %s type already registered (%s)"

	InterpreterDuplicate   = "control: interpreter of type already added (%s)"
	ControllerDuplicate    = "control: controller name already in use (%s)"
	ControllerUnregistered = "control: controller is not part of the context (%s)"
	ControllerActions      = "control: controller %s: action declared more than once (%s)"

	ActionUnknown      = "control: controller %s: does not recognise action (%s)"
	ActionUnrecognised = "control: action not recognised by any controller (%s)"

	LoadError = "control: load %s: %v"
)
