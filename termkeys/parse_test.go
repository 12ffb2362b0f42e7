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

package termkeys

import (
	"testing"

	"github.com/tickinput/tickinput/test"
	"github.com/tickinput/tickinput/userinput"
)

func TestParse(t *testing.T) {
	p := parse([]byte("a B"))
	test.DemandEquality(t, len(p), 3)
	test.ExpectEquality(t, p[0], press{key: "A"})
	test.ExpectEquality(t, p[1], press{key: "Space"})
	test.ExpectEquality(t, p[2], press{key: "B", mod: userinput.KeyModShift})

	p = parse([]byte{0x1b, '[', 'A', 0x1b, 'O', 'D', 0x1b, '[', 'Z'})
	test.DemandEquality(t, len(p), 2)
	test.ExpectEquality(t, p[0].key, "Up")
	test.ExpectEquality(t, p[1].key, "Left")

	p = parse([]byte{0x13, 0x0d, 0x7f, 0x09})
	test.DemandEquality(t, len(p), 4)
	test.ExpectEquality(t, p[0], press{key: "S", mod: userinput.KeyModCtrl})
	test.ExpectEquality(t, p[1].key, "Return")
	test.ExpectEquality(t, p[2].key, "Backspace")
	test.ExpectEquality(t, p[3].key, "Tab")

	p = parse([]byte{0x1b, 'x', 0x1b})
	test.DemandEquality(t, len(p), 2)
	test.ExpectEquality(t, p[0], press{key: "X", mod: userinput.KeyModAlt})
	test.ExpectEquality(t, p[1].key, "Escape")

	p = parse([]byte{0x03})
	test.DemandEquality(t, len(p), 1)
	test.ExpectSuccess(t, p[0].quit)
}
