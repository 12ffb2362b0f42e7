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

package control

import "fmt"

// Intensity is the strength with which an action is triggered. Graded values
// are in the range 0 to 1. The non-graded values Unspecified and Edge are
// always considered to be triggered.
type Intensity float64

// List of special intensity values.
const (
	// the action is not triggered
	None Intensity = 0

	// the action is triggered by a binary control such as a key or a
	// non-analog button
	Unspecified Intensity = -1

	// the action is triggered by a one-shot gesture such as a tap or a swipe
	Edge Intensity = -2
)

// Triggered returns true if the intensity indicates that an action has been
// triggered.
func (i Intensity) Triggered() bool {
	return i > 0 || i == Unspecified || i == Edge
}

// Graded returns true if the intensity is not one of the non-graded values.
func (i Intensity) Graded() bool {
	return i != Unspecified && i != Edge
}

// Value returns the intensity as a number in the range 0 to 1. Non-graded
// intensities are returned as 1.
func (i Intensity) Value() float64 {
	if !i.Graded() {
		return 1
	}
	return float64(Clamp(i))
}

func (i Intensity) String() string {
	switch i {
	case Unspecified:
		return "unspecified"
	case Edge:
		return "edge"
	}
	return fmt.Sprintf("%.3f", float64(i))
}

// rank is used to order intensities of different kinds
func (i Intensity) rank() int {
	switch i {
	case Unspecified:
		return 2
	case Edge:
		return 1
	}
	return 0
}

// Beats returns true if a is strictly stronger than b. A non-graded intensity
// beats any graded intensity, with Unspecified preferred over Edge. Otherwise
// the numerically higher intensity is stronger.
func Beats(a, b Intensity) bool {
	if a.rank() != b.rank() {
		return a.rank() > b.rank()
	}
	return a.Graded() && a > b
}

// Stronger returns whichever of the two intensities is the stronger. If
// neither beats the other then a is returned.
func Stronger(a, b Intensity) Intensity {
	if Beats(b, a) {
		return b
	}
	return a
}

// Clamp the intensity to the range 0 to 1. Non-graded intensities are
// returned unchanged.
func Clamp(i Intensity) Intensity {
	if !i.Graded() {
		return i
	}
	if i < 0 {
		return 0
	}
	if i > 1 {
		return 1
	}
	return i
}
