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

package terminput

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/tickinput/tickinput/userinput"
)

var keyNames = map[tcell.Key]string{
	tcell.KeyUp:         "Up",
	tcell.KeyDown:       "Down",
	tcell.KeyLeft:       "Left",
	tcell.KeyRight:      "Right",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PageUp",
	tcell.KeyPgDn:       "PageDown",
	tcell.KeyInsert:     "Insert",
	tcell.KeyDelete:     "Delete",
	tcell.KeyEnter:      "Return",
	tcell.KeyTab:        "Tab",
	tcell.KeyBacktab:    "Tab",
	tcell.KeyEscape:     "Escape",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyF1:         "F1",
	tcell.KeyF2:         "F2",
	tcell.KeyF3:         "F3",
	tcell.KeyF4:         "F4",
	tcell.KeyF5:         "F5",
	tcell.KeyF6:         "F6",
	tcell.KeyF7:         "F7",
	tcell.KeyF8:         "F8",
	tcell.KeyF9:         "F9",
	tcell.KeyF10:        "F10",
	tcell.KeyF11:        "F11",
	tcell.KeyF12:        "F12",
}

func keyMod(m tcell.ModMask) userinput.KeyMod {
	var mod userinput.KeyMod
	if m&tcell.ModShift == tcell.ModShift {
		mod |= userinput.KeyModShift
	}
	if m&tcell.ModCtrl == tcell.ModCtrl {
		mod |= userinput.KeyModCtrl
	}
	if m&tcell.ModAlt == tcell.ModAlt {
		mod |= userinput.KeyModAlt
	}
	return mod
}

// translate a key event into a key name and modifiers. returns false if the
// event has no equivalent
func translateKey(ev *tcell.EventKey) (string, userinput.KeyMod, bool) {
	mod := keyMod(ev.Modifiers())

	if n, ok := keyNames[ev.Key()]; ok {
		if ev.Key() == tcell.KeyBacktab {
			mod |= userinput.KeyModShift
		}
		return n, mod, true
	}

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "Space", mod, true
		}
		if unicode.IsUpper(r) {
			mod |= userinput.KeyModShift
		}
		return string(unicode.ToUpper(r)), mod, true
	}

	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return string(rune('A' + ev.Key() - tcell.KeyCtrlA)), mod | userinput.KeyModCtrl, true
	}

	return "", mod, false
}
