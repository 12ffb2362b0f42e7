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
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tickinput/tickinput/userinput"
)

// The assumed size of a character cell in pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Backend implements the userinput.Backend interface using tcell.
type Backend struct {
	screen tcell.Screen

	events  chan tcell.Event
	done    chan struct{}
	release userinput.KeyRelease
	now     func() time.Time

	// the emulated touch. touchID is incremented for every new touch
	touching bool
	touchID  int64
}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend() (*Backend, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminput: %w", err)
	}
	return newBackend(scr)
}

func newBackend(scr tcell.Screen) (*Backend, error) {
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("terminput: %w", err)
	}
	scr.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	scr.Clear()

	b := &Backend{
		screen: scr,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
		now:    time.Now,
	}

	go func() {
		defer close(b.done)
		for {
			// PollEvent returns nil once the screen has been finalised
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			b.events <- ev
		}
	}()

	return b, nil
}

// Size returns the size of the terminal in pixels.
func (b *Backend) Size() (int, int) {
	w, h := b.screen.Size()
	return w * CellWidth, h * CellHeight
}

// PollEvents implements the userinput.Backend interface.
func (b *Backend) PollEvents() ([]userinput.Event, error) {
	var evs []userinput.Event
	now := b.now()

	for done := false; !done; {
		select {
		case ev := <-b.events:
			evs = append(evs, b.translate(ev, now)...)
		default:
			done = true
		}
	}

	return append(evs, b.release.Expire(now)...), nil
}

func (b *Backend) translate(ev tcell.Event, now time.Time) []userinput.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return []userinput.Event{userinput.EventQuit{}}
		}
		if key, mod, ok := translateKey(ev); ok {
			return b.release.Press(key, mod, now)
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		tev := userinput.EventTouch{
			X: float64(x*CellWidth + CellWidth/2),
			Y: float64(y*CellHeight + CellHeight/2),
		}

		pressed := ev.Buttons()&tcell.Button1 == tcell.Button1
		switch {
		case pressed && !b.touching:
			b.touching = true
			b.touchID++
			tev.Phase = userinput.TouchStart
		case pressed:
			tev.Phase = userinput.TouchMove
		case b.touching:
			b.touching = false
			tev.Phase = userinput.TouchEnd
		default:
			return nil
		}
		tev.ID = b.touchID
		return []userinput.Event{tev}

	case *tcell.EventResize:
		b.screen.Sync()
		w, h := ev.Size()
		return []userinput.Event{userinput.EventResize{
			Width:  w * CellWidth,
			Height: h * CellHeight,
		}}
	}

	return nil
}

// Draw replaces the contents of the terminal with the lines of text.
func (b *Backend) Draw(lines []string) {
	b.screen.Clear()
	for y, l := range lines {
		x := 0
		for _, r := range l {
			b.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}
	b.screen.Show()
}

// Close implements the userinput.Backend interface.
func (b *Backend) Close() error {
	b.screen.Fini()

	// drain events until the polling goroutine ends
	for {
		select {
		case <-b.events:
		case <-b.done:
			return nil
		}
	}
}
