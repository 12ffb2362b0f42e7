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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectApproximate() functions test values against
// one another and report a test failure with a consistent message. The
// ExpectSuccess() and ExpectFailure() functions are used to test values that
// indicate success or failure: a bool value of true or a nil error indicate
// success. The Demand*() functions are the same but will end the test
// immediately with t.Fatalf().
//
// The CompareWriter type is an implementation of io.Writer that is useful for
// capturing output (from the logger package for example) and comparing it
// against an expected string.
package test
