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

package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tickinput/tickinput/curated"
)

// Sentinal error patterns.
const (
	WatcherError = "config: watcher: %v"
)

// the amount of time to wait after the last change to the file before
// reloading. editors often write a file in more than one step
const debounceDelay = 100 * time.Millisecond

// Watcher reloads a document whenever the file it was loaded from changes.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	reload  func(doc *Document)

	errors chan error

	crit     sync.Mutex
	debounce *time.Timer
	closed   bool

	done chan struct{}
}

// NewWatcher is the preferred method of initialisation for the Watcher type.
// The reload function is called with the newly loaded document every time the
// file changes and the document is valid. The reload function is called from
// a goroutine other than the caller's and must not call Close().
func NewWatcher(path string, reload func(doc *Document)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf(WatcherError, err)
	}

	// watching the directory rather than the file means we see files that
	// are replaced by rename
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, curated.Errorf(WatcherError, err)
	}

	w := &Watcher{
		path:    path,
		watcher: fsw,
		reload:  reload,
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}

	go w.loop()

	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(ev.Name) != filepath.Base(w.path) {
				continue
			}

			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}

			w.crit.Lock()
			if !w.closed {
				if w.debounce != nil {
					w.debounce.Stop()
				}
				w.debounce = time.AfterFunc(debounceDelay, w.load)
			}
			w.crit.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(curated.Errorf(WatcherError, err))
		}
	}
}

func (w *Watcher) load() {
	doc, err := Load(w.path)
	if err != nil {
		w.sendError(err)
		return
	}

	// the reload function is called with the lock held so that Close()
	// cannot return while it is running
	w.crit.Lock()
	defer w.crit.Unlock()

	if !w.closed {
		w.reload(doc)
	}
}

// errors are dropped if nobody is reading them
func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}

// Errors returns a channel for receiving errors that occur while watching or
// reloading. An invalid document is reported here.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching the file. The reload function will not be called after
// Close() returns.
func (w *Watcher) Close() error {
	w.crit.Lock()
	w.closed = true
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.crit.Unlock()

	err := w.watcher.Close()
	<-w.done

	if err != nil {
		return curated.Errorf(WatcherError, err)
	}
	return nil
}
