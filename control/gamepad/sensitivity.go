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

package gamepad

import (
	"math"

	"github.com/tickinput/tickinput/config"
	"github.com/tickinput/tickinput/control"
	"github.com/tickinput/tickinput/curated"
	"github.com/tickinput/tickinput/logger"
)

// Sentinal error patterns.
const (
	SensitivityConflict = "gamepad: sensitivity group %d: factor and static both specified, static takes precedence"
)

type sensitivityGroup struct {
	actions   map[string]bool
	factor    float64
	static    bool
	quadratic bool
}

// sensitivity is an ordered list of groups. the first group that contains an
// action decides how the action's intensity is modified
type sensitivity []sensitivityGroup

func newSensitivity(perm logger.Permission, cfg *config.SensitivityProfile) sensitivity {
	if cfg == nil {
		return nil
	}

	var s sensitivity
	for i, g := range cfg.ActionGroups {
		grp := sensitivityGroup{
			actions:   make(map[string]bool),
			factor:    1.0,
			static:    g.Static,
			quadratic: g.Quadratic,
		}
		for _, a := range g.Actions {
			grp.actions[a] = true
		}
		if g.Factor != nil {
			grp.factor = *g.Factor
			if g.Static {
				logger.Log(perm, "gamepad", curated.Errorf(SensitivityConflict, i))
			}
		}
		s = append(s, grp)
	}

	return s
}

// apply the sensitivity profile to the intensity of an action. non-graded
// intensities are changed only by static groups
func (s sensitivity) apply(action string, v control.Intensity) control.Intensity {
	if !v.Triggered() {
		return v
	}

	for _, g := range s {
		if !g.actions[action] {
			continue
		}

		if g.static {
			return control.Unspecified
		}

		if !v.Graded() {
			return v
		}

		f := float64(v)
		if g.quadratic {
			f = math.Pow(f, 2)
		}
		return control.Clamp(control.Intensity(f * g.factor))
	}

	return v
}
