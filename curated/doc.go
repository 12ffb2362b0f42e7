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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is what identifies
// the error, not the formatted message. Packages that return curated errors
// should keep their patterns as exported constants. For example, from the
// control package:
//
//	const ProfileCycle = "control: profile: cyclic basedOn chain (%s)"
//
//	err := curated.Errorf(control.ProfileCycle, "a -> b -> a")
//
//	if curated.Is(err, control.ProfileCycle) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(control.ProfileCycle, "a -> b -> a")
//	f := curated.Errorf(control.LoadError, "keyboard", e)
//
//	curated.Has(f, control.ProfileCycle) // true
//	curated.Is(f, control.ProfileCycle)  // false
//
// The Error() function ensures that the error chain is normalised.
// Specifically, that the chain does not contain duplicate adjacent parts. So
// wrapping "control: bad value" in "control: %v" produces "control: bad value"
// and not "config: config: bad value". Chains are thought of as being composed
// of parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Curated errors also implement Unwrap() so that a plain error placed in the
// values list (an os.PathError for example) is visible to errors.Is() and
// errors.As() from the standard library.
package curated
