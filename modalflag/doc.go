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

// Package modalflag wraps the flag package in the standard library and adds
// program modes. Each mode can have its own set of flags.
//
// Arguments are given with NewArgs() and parsed with Parse(). Before each
// call to Parse() the flags and the sub-modes for the current mode are added:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "VALIDATE", "DUMP")
//	verbose := md.AddBool("verbose", false, "log to stdout")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default. If the first non-flag argument matches a
// sub-mode (without regard to case) then that mode is selected and the
// argument consumed. Otherwise the default is selected.
//
// NewMode() prepares for the flags and sub-modes of the selected mode, which
// are parsed from the remaining arguments with another call to Parse():
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		tick := md.AddDuration("tick", time.Second/60, "tick duration")
//		_, _ = md.Parse()
//	}
//
// Help is printed automatically when the -help flag is present. The help
// includes the list of sub-modes and any text set with AdditionalHelp().
package modalflag
