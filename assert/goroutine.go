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

// Package assert contains checks that are useful during development but
// which have no place in the normal flow of a program.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns the ID of the calling goroutine. The ID is taken from
// the first line of the stack trace and is zero if it cannot be found.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that created it. Some libraries, SDL for
// example, must only be called from a single goroutine.
type Owner uint64

// NewOwner returns an Owner for the calling goroutine.
func NewOwner() Owner {
	return Owner(GoroutineID())
}

// IsOwner returns true if called from the goroutine that created the Owner.
func (o Owner) IsOwner() bool {
	return uint64(o) == GoroutineID()
}
