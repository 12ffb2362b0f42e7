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
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/tickinput/tickinput/curated"
)

// Sentinal error patterns.
const (
	JSONError = "prefs: json value (%s): %v"
)

// Store is a key/value view of a Disk. Every key is prefixed with the
// namespace given to NewStore() so that more than one user of the Disk can
// use the same key names without conflict.
//
// Values set through the Store are written to disk immediately.
type Store struct {
	dsk       *Disk
	namespace string
}

// NewStore is the preferred method of initialisation for the Store type. The
// namespace can be empty.
func NewStore(dsk *Disk, namespace string) *Store {
	return &Store{
		dsk:       dsk,
		namespace: strings.Trim(namespace, "."),
	}
}

// Namespace returns the namespace of the Store.
func (s *Store) Namespace() string {
	return s.namespace
}

// Sub returns a new Store with the namespace appended to the namespace of the
// existing Store. The same Disk is used.
func (s *Store) Sub(namespace string) *Store {
	return NewStore(s.dsk, s.key(namespace))
}

func (s *Store) key(key string) string {
	if s.namespace == "" {
		return key
	}
	return s.namespace + "." + key
}

// Add a typed preference value to the underlying Disk, using the Store's
// namespace. If a value for the key has previously been loaded from disk
// then the preference value will be set.
func (s *Store) Add(key string, p pref) error {
	return s.dsk.Add(s.key(key), p)
}

// Release a typed preference value previously added with Add(). See
// Disk.Release() for details.
func (s *Store) Release(key string) error {
	return s.dsk.Release(s.key(key))
}

// Get returns the value for the key. The second return value is false if the
// key is not present in which case the caller should use a default value.
func (s *Store) Get(key string) (string, bool) {
	return s.dsk.getRaw(s.key(key))
}

// Set the value for the key and save the Disk.
func (s *Store) Set(key string, value string) error {
	if err := s.dsk.setRaw(s.key(key), value); err != nil {
		return err
	}
	return s.dsk.Save()
}

// Remove the value for the key and save the Disk.
func (s *Store) Remove(key string) error {
	if err := s.dsk.removeRaw(s.key(key)); err != nil {
		return err
	}
	return s.dsk.Save()
}

// Save the underlying Disk. Useful after changing the value of a typed
// preference added with the Add() function.
func (s *Store) Save() error {
	return s.dsk.Save()
}

// GetJSON treats the value of the key as a JSON document and returns the
// value found at the path. The path syntax is that of the gjson package. Use
// EscapePath() for path components that might contain dots.
//
// The Exists() function of the returned result will be false if the key or
// the path is not present.
func (s *Store) GetJSON(key string, path string) gjson.Result {
	v, ok := s.Get(key)
	if !ok || !gjson.Valid(v) {
		return gjson.Result{}
	}
	if path == "" {
		return gjson.Parse(v)
	}
	return gjson.Get(v, path)
}

// SetJSON treats the value of the key as a JSON document and sets the value
// at the path. A missing key is treated as an empty document.
func (s *Store) SetJSON(key string, path string, value interface{}) error {
	v, ok := s.Get(key)
	if !ok || !gjson.Valid(v) {
		v = "{}"
	}

	var err error
	switch value := value.(type) {
	case []byte:
		v, err = sjson.SetRaw(v, path, string(value))
	default:
		v, err = sjson.Set(v, path, value)
	}
	if err != nil {
		return curated.Errorf(JSONError, key, err)
	}

	return s.Set(key, v)
}

// DeleteJSON treats the value of the key as a JSON document and removes the
// value at the path. If the document is empty after the deletion the key is
// removed entirely.
func (s *Store) DeleteJSON(key string, path string) error {
	v, ok := s.Get(key)
	if !ok {
		return nil
	}

	v, err := sjson.Delete(v, path)
	if err != nil {
		return curated.Errorf(JSONError, key, err)
	}

	if strings.TrimSpace(v) == "{}" {
		return s.Remove(key)
	}

	return s.Set(key, v)
}

// EscapePath escapes characters in a path component that have special
// meaning to the gjson and sjson packages.
func EscapePath(component string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`, "|", `\|`, "#", `\#`, "@", `\@`)
	return r.Replace(component)
}
