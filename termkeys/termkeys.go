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
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/term"
	"github.com/tickinput/tickinput/logger"
	"github.com/tickinput/tickinput/userinput"
)

// Backend implements the userinput.Backend interface for a terminal.
type Backend struct {
	tty *term.Term

	input   chan []byte
	release userinput.KeyRelease
	now     func() time.Time

	// stop is closed to end the reader goroutine. done is closed by the
	// reader goroutine when it ends
	stop chan struct{}
	done chan struct{}

	closeOnce sync.Once
}

// NewBackend is the preferred method of initialisation for the Backend type.
// The device is the name of the terminal device, usually "/dev/tty".
func NewBackend(device string) (*Backend, error) {
	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("termkeys: %w", err)
	}

	// a short read timeout means the reader goroutine can notice the stop
	// signal in good time
	if err := tty.SetReadTimeout(50 * time.Millisecond); err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return nil, fmt.Errorf("termkeys: %w", err)
	}

	b := &Backend{
		tty:   tty,
		input: make(chan []byte, 32),
		now:   time.Now,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}

	go b.read()

	return b, nil
}

func (b *Backend) read() {
	defer close(b.done)

	buf := make([]byte, 64)
	for {
		select {
		case <-b.stop:
			return
		default:
		}

		n, err := b.tty.Read(buf)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrDeadlineExceeded) {
			logger.Log(logger.Allow, "termkeys", err)
			return
		}
		if n == 0 {
			continue
		}

		chunk := make([]byte, n)
		copy(chunk, buf[:n])

		select {
		case b.input <- chunk:
		default:
			logger.Log(logger.Allow, "termkeys", "dropped key input")
		}
	}
}

// PollEvents implements the userinput.Backend interface.
func (b *Backend) PollEvents() ([]userinput.Event, error) {
	var evs []userinput.Event
	now := b.now()

	for done := false; !done; {
		select {
		case chunk := <-b.input:
			for _, p := range parse(chunk) {
				if p.quit {
					evs = append(evs, userinput.EventQuit{})
					continue
				}
				evs = append(evs, b.release.Press(p.key, p.mod, now)...)
			}
		default:
			done = true
		}
	}

	return append(evs, b.release.Expire(now)...), nil
}

// Close implements the userinput.Backend interface. The terminal is restored
// to the mode it was in before the backend was created.
func (b *Backend) Close() error {
	var err error
	b.closeOnce.Do(func() {
		close(b.stop)
		<-b.done
		if e := b.tty.Restore(); e != nil {
			err = fmt.Errorf("termkeys: %w", e)
		}
		if e := b.tty.Close(); e != nil && err == nil {
			err = fmt.Errorf("termkeys: %w", e)
		}
	})
	return err
}
