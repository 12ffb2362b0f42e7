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
	"unicode"
	"unicode/utf8"

	"github.com/tickinput/tickinput/userinput"
)

// a key press decoded from terminal input
type press struct {
	key  string
	mod  userinput.KeyMod
	quit bool
}

const esc = 0x1b

// names of keys that are reported as a single control byte
var controlNames = map[byte]string{
	0x09: "Tab",
	0x0a: "Return",
	0x0d: "Return",
	0x7f: "Backspace",
	' ':  "Space",
}

// final bytes of CSI sequences for cursor keys
var cursorNames = map[byte]string{
	'A': "Up",
	'B': "Down",
	'C': "Right",
	'D': "Left",
	'H': "Home",
	'F': "End",
}

// parse the bytes read from the terminal into key presses. incomplete or
// unrecognised escape sequences are discarded
func parse(b []byte) []press {
	var presses []press

	for len(b) > 0 {
		c := b[0]

		switch {
		case c == 0x03:
			presses = append(presses, press{quit: true})
			b = b[1:]

		case c == esc:
			if len(b) == 1 {
				presses = append(presses, press{key: "Escape"})
				b = b[1:]
				continue
			}

			// cursor keys
			if b[1] == '[' || b[1] == 'O' {
				if len(b) >= 3 {
					if n, ok := cursorNames[b[2]]; ok {
						presses = append(presses, press{key: n})
					}
					b = b[3:]
				} else {
					b = b[len(b):]
				}
				continue
			}

			// alt is reported as escape followed by the key
			p := parse(b[1:2])
			for i := range p {
				p[i].mod |= userinput.KeyModAlt
			}
			presses = append(presses, p...)
			b = b[2:]

		default:
			if n, ok := controlNames[c]; ok {
				presses = append(presses, press{key: n})
				b = b[1:]
				continue
			}

			if c < 0x20 {
				presses = append(presses, press{
					key: string(rune('A' + c - 1)),
					mod: userinput.KeyModCtrl,
				})
				b = b[1:]
				continue
			}

			r, sz := utf8.DecodeRune(b)
			b = b[sz:]
			if r == utf8.RuneError {
				continue
			}

			p := press{key: string(unicode.ToUpper(r))}
			if unicode.IsUpper(r) {
				p.mod = userinput.KeyModShift
			}
			presses = append(presses, p)
		}
	}

	return presses
}
