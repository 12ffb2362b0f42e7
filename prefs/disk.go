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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tickinput/tickinput/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand while the program is running ***"

// the separator between key and value in the prefs file.
const separator = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile   = "prefs: no prefs file (%s)"
	InvalidKey    = "prefs: invalid key (%s)"
	DuplicateKey  = "prefs: key already added (%s)"
	LoadError     = "prefs: load: %v"
	SaveError     = "prefs: save: %v"
	NotRegistered = "prefs: key not registered (%s)"
)

// Disk represents preference values as stored on disk. Values can be
// registered with the Add() function, in which case they are typed (see
// Bool, String, Int and Float) or they can be unregistered in which case
// they are raw strings (see the Store type).
type Disk struct {
	crit sync.Mutex

	// path is empty for disks that exist only in memory
	path string

	// registered prefs values
	entries map[string]pref

	// unregistered values. either loaded from the file or set through a
	// Store
	raw map[string]string

	// keys removed since the last save. the file might still contain these
	// keys so we need to remember to drop them
	removed map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: empty path for disk")
	}
	dsk := NewMemoryDisk()
	dsk.path = path
	return dsk, nil
}

// NewMemoryDisk returns a Disk that is never written to the file system. The
// Load() and Save() functions do nothing. Useful for testing and for contexts
// that should not leave any trace.
func NewMemoryDisk() *Disk {
	return &Disk{
		entries: make(map[string]pref),
		raw:     make(map[string]string),
		removed: make(map[string]bool),
	}
}

func validKey(key string) bool {
	return key != "" && !strings.Contains(key, strings.TrimSpace(separator)) && !strings.ContainsAny(key, "\n ")
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.value(k)))
	}
	return s.String()
}

// keys returns the sorted list of all keys, registered or otherwise. should
// be called with the critical section locked.
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries)+len(dsk.raw))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	for k := range dsk.raw {
		if _, ok := dsk.entries[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// value returns the string value for the key. should be called with the
// critical section locked.
func (dsk *Disk) value(key string) string {
	if p, ok := dsk.entries[key]; ok {
		return p.String()
	}
	return dsk.raw[key]
}

// Add preference value to list of values to store/load from Disk. If a value
// for the key has already been loaded (or set through a Store) then the
// preference value is set immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if !validKey(key) {
		return curated.Errorf(InvalidKey, key)
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}

	dsk.entries[key] = p
	delete(dsk.removed, key)

	if v, ok := dsk.raw[key]; ok {
		delete(dsk.raw, key)
		if err := p.Set(v); err != nil {
			return curated.Errorf(LoadError, err)
		}
	}

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(LoadError, err)
		}
	}

	return nil
}

// Release a preference value previously added with Add(). The current value
// is kept as an unregistered value so that it is still saved to disk and so
// that it is set immediately if the key is added again.
func (dsk *Disk) Release(key string) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	p, ok := dsk.entries[key]
	if !ok {
		return curated.Errorf(NotRegistered, key)
	}

	dsk.raw[key] = p.String()
	delete(dsk.entries, key)

	return nil
}

// Load preference values from disk. If saveOnFirstUse is true then the prefs
// file will be created if it does not exist. The NoPrefsFile error is
// returned in all cases where the file does not exist.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	if dsk.path == "" {
		return nil
	}

	data, err := dsk.read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if saveOnFirstUse {
				if err := dsk.Save(); err != nil {
					return err
				}
			}
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
		return curated.Errorf(LoadError, err)
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for k, v := range data {
		if isDefunct(k) {
			continue
		}
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(LoadError, err)
			}
		} else {
			dsk.raw[k] = v
		}
	}

	// command line values take priority over the values in the file
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(LoadError, err)
			}
		}
	}

	return nil
}

// read the prefs file into a map of strings. the boilerplate line is skipped.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data := make(map[string]string)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)

	// first line is the boilerplate
	if !scanner.Scan() {
		return data, scanner.Err()
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) != 2 {
			continue
		}
		data[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	return data, scanner.Err()
}

// Save current preference values to disk. Values in the existing prefs file
// that are not known to this Disk instance are preserved. This means that
// more than one Disk instance can share the same file.
func (dsk *Disk) Save() error {
	if dsk.path == "" {
		return nil
	}

	data, err := dsk.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(SaveError, err)
		}
		data = make(map[string]string)
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for k := range dsk.removed {
		delete(data, k)
	}
	for _, k := range dsk.keys() {
		data[k] = dsk.value(k)
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		if !isDefunct(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, data[k]))
	}

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return curated.Errorf(SaveError, err)
	}
	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(SaveError, err)
	}

	dsk.removed = make(map[string]bool)

	return nil
}

// Reset all registered preference values to their zero value. Unregistered
// values are untouched.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// getRaw returns the string value for the key. registered values are
// returned as their string representation.
func (dsk *Disk) getRaw(key string) (string, bool) {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	if p, ok := dsk.entries[key]; ok {
		return p.String(), true
	}
	v, ok := dsk.raw[key]
	return v, ok
}

// setRaw sets the value for the key. if the key is registered then the
// preference value is set through its Set() function.
func (dsk *Disk) setRaw(key string, value string) error {
	if !validKey(key) {
		return curated.Errorf(InvalidKey, key)
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	delete(dsk.removed, key)
	if p, ok := dsk.entries[key]; ok {
		return p.Set(value)
	}
	dsk.raw[key] = strings.ReplaceAll(value, "\n", " ")
	return nil
}

// removeRaw forgets the value for the key. registered values are reset
// instead.
func (dsk *Disk) removeRaw(key string) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if p, ok := dsk.entries[key]; ok {
		return p.Reset()
	}
	delete(dsk.raw, key)
	dsk.removed[key] = true
	return nil
}
