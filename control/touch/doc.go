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

// Package touch implements the control.Interpreter interface for touch
// screens.
//
// Bindings describe gestures rather than physical controls. The supported
// gestures are:
//
//	tap            a short touch that does not move
//	longTap        a longer touch that does not move
//	twoPointTap    two touches that start and finish together
//	threePointTap  three touches that start and finish together
//	swipe          a quick movement, optionally in one direction
//	hold           a touch that remains on the screen
//	slide          a movement that adjusts a persistent offset
//
// Each binding can be restricted to an area of the screen. The area is
// expressed as fractions of the screen size so the screen size must be known
// before any gesture is recognised. The screen size is set with
// SetScreenSize() or with a userinput.EventResize event.
//
// Tap, longTap and swipe are edge gestures. They trigger once for the tick
// in which the touch finishes and have the control.Edge intensity.
//
// A tap must finish within TapTimeout. A longTap must last at least
// TapTimeout and finish within LongTapTimeout, so a longTap binding on its
// own ignores short taps.
//
// Multi-point taps happen in two phases. The searching phase looks for
// exactly the right number of new touches in the binding's area. Once found
// the touches are followed until they have all finished, at which point the
// gesture triggers. The gesture is abandoned if any of the touches move or
// take too long, if another finger touches the area, or if another binding
// takes ownership of one of the touches.
//
// Bindings are examined in the order in which they appear in the profile. A
// binding that recognises a gesture claims the touches it used for the
// remainder of the tick. This means that a threePointTap binding declared
// before a twoPointTap binding will take precedence when three fingers touch
// the screen.
//
// Hold and slide gestures are graded. The intensity of a hold with a
// direction is the distance the touch has moved in that direction as a
// proportion of the binding's range. A hold without a direction has an
// intensity of 1.0 for as long as the touch remains. The intensity of a slide
// is its accumulated offset as a proportion of the range. The offset is kept
// when the touch finishes and a new touch continues from where the last one
// left off. A short tap in the binding's area resets the offset to zero.
//
// Slide bindings in the same area and on the same axis share the touches they
// follow. A "slide right" and a "slide left" binding therefore make a pair in
// which one or the other triggers depending on the direction of movement.
package touch
