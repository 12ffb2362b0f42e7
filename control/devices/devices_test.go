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

package devices_test

import (
	"testing"
	"time"

	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/control"
	"github.com/tickinput/tickinput/control/devices"
	"github.com/tickinput/tickinput/control/gamepad"
	"github.com/tickinput/tickinput/control/keyboard"
	"github.com/tickinput/tickinput/control/touch"
	"github.com/tickinput/tickinput/curated"
	"github.com/tickinput/tickinput/environment"
	"github.com/tickinput/tickinput/test"
	"github.com/tickinput/tickinput/userinput"
)

const document = `
interpreters:
  - type: keyboard
    profiles:
      - name: default
        bindings:
          - action: jump
            key: space
  - type: touch
    profiles:
      - name: default
        bindings:
          - action: jump
            type: tap
  - type: gamepad
    profiles:
      - name: default
        bindings:
          - action: jump
            button: 0
controllers:
  - type: player
    name: player
    actions:
      - name: jump
`

func TestRegister(t *testing.T) {
	env := environment.NewEnvironment("test", nil)
	ctx := control.NewContext(env)

	test.DemandSuccess(t, devices.Register(ctx, nil))
	test.ExpectEquality(t, len(ctx.InterpreterTypes()), 3)

	err := devices.Register(ctx, nil)
	test.ExpectSuccess(t, curated.Is(err, control.DuplicateType))

	test.DemandSuccess(t, ctx.RegisterControllerType("player", nil))

	doc, err := config.Parse([]byte(document), config.YAML)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ctx.Load(doc))

	for _, typ := range []string{keyboard.Type, touch.Type, gamepad.Type} {
		itp := ctx.Interpreter(typ)
		if test.ExpectInequality(t, itp, nil, typ) {
			test.ExpectSuccess(t, itp.IsListening(), typ)
		}
	}

	var jumps int
	err = ctx.Controller("player").SetActionFunctions("jump", func(control.Intensity, time.Duration) {
		jumps++
	}, nil)
	test.DemandSuccess(t, err)

	_, err = ctx.HandleEvent(userinput.EventKeyboard{Key: "Space", Down: true})
	test.ExpectSuccess(t, err)
	ctx.Control(time.Second / 60)
	test.ExpectEquality(t, jumps, 1)
}
