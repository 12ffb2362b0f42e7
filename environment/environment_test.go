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

package environment_test

import (
	"testing"

	"github.com/tickinput/tickinput/environment"
	"github.com/tickinput/tickinput/notifications"
	"github.com/tickinput/tickinput/test"
)

func TestEnvironment(t *testing.T) {
	env := environment.NewEnvironment("", nil)
	test.ExpectSuccess(t, env.IsMainContext())
	test.ExpectSuccess(t, env.AllowLogging())
	test.ExpectEquality(t, env.Prefs.Namespace(), "")

	env = environment.NewEnvironment("player2", nil)
	test.ExpectFailure(t, env.IsMainContext())
	test.ExpectSuccess(t, env.IsContext("player2"))
	test.ExpectEquality(t, env.Prefs.Namespace(), "player2")

	env.Quiet = true
	test.ExpectFailure(t, env.AllowLogging())

	rec := &notifications.Recorder{}
	env.Notify = rec
	test.ExpectSuccess(t, env.Notice(notifications.NotifyGamepadConnected))
	test.ExpectEquality(t, rec.Last(), notifications.NotifyGamepadConnected)
}
