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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/environment"
	"github.com/tickinput/tickinput/modalflag"
	"github.com/tickinput/tickinput/test"
	"github.com/tickinput/tickinput/userinput"
)

const goodConfig = `
interpreters:
  - type: keyboard
    profiles:
      - name: default
        bindings:
          - action: jump
            key: space
controllers:
  - type: demo
    name: player
    actions:
      - name: jump
`

const badConfig = `
interpreters:
  - type: keyboard
    profiles:
      - name: default
        basedOn: missing
        bindings:
          - action: jump
            key: space
`

func TestDemoController(t *testing.T) {
	var out []string
	env := environment.NewEnvironment("test", nil)
	ctx, err := newContext(env, nil, func(l string) {
		out = append(out, l)
	})
	test.DemandSuccess(t, err)

	doc, err := config.Parse([]byte(goodConfig), config.YAML)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ctx.Load(doc))

	_, err = ctx.HandleEvent(userinput.EventKeyboard{Key: "Space", Down: true})
	test.ExpectSuccess(t, err)
	ctx.Control(time.Second / 60)

	_, err = ctx.HandleEvent(userinput.EventKeyboard{Key: "Space"})
	test.ExpectSuccess(t, err)
	ctx.Control(time.Second / 60)

	test.DemandEquality(t, len(out), 2)
	test.ExpectSuccess(t, strings.HasPrefix(out[0], "player: jump"))
	test.ExpectEquality(t, out[1], "player: jump released")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	test.DemandSuccess(t, os.WriteFile(good, []byte(goodConfig), 0o600))
	test.DemandSuccess(t, os.WriteFile(bad, []byte(badConfig), 0o600))

	tw := &test.CompareWriter{}
	md := &modalflag.Modes{}
	md.NewArgs([]string{good})
	test.ExpectSuccess(t, validate(md, tw))
	test.ExpectEquality(t, tw.String(), good+": ok\n")

	tw.Clear()
	md.NewArgs([]string{good, bad})
	test.ExpectFailure(t, validate(md, tw))
	test.ExpectSuccess(t, strings.Contains(tw.String(), bad+": "))
}

func TestSettings(t *testing.T) {
	t.Setenv("TICKINPUT_TICK", "20ms")
	t.Setenv("TICKINPUT_BACKEND", "sdl")

	s, err := loadSettings()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Tick, 20*time.Millisecond)
	test.ExpectEquality(t, s.Backend, "sdl")
	test.ExpectEquality(t, s.Config, "controls.yaml")
}
