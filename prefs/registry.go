// This file is part of Gostone.
//
// Gostone is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gostone is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gostone.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Registry collects named preference values. Values are held in memory only.
//
// When a value is added to the registry the command line stack is checked
// for an override and the value is set accordingly.
type Registry struct {
	name    string
	entries map[string]pref
}

// NewRegistry is the preferred method of initialisation for the Registry
// type. The name is used in error messages.
func NewRegistry(name string) *Registry {
	return &Registry{
		name:    name,
		entries: make(map[string]pref),
	}
}

// Add a preference value to the registry. Keys must be unique and must not
// contain the "::" separator or white space.
func (r *Registry) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t;") || strings.Contains(key, "::") {
		return fmt.Errorf("%s: illegal key %q", r.name, key)
	}
	if _, ok := r.entries[key]; ok {
		return fmt.Errorf("%s: duplicate key %q", r.name, key)
	}
	r.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("%s: %s: %w", r.name, key, err)
		}
	}

	return nil
}

// Set the value of the preference named by key.
func (r *Registry) Set(key string, v Value) error {
	p, ok := r.entries[key]
	if !ok {
		return fmt.Errorf("%s: no such key %q", r.name, key)
	}
	if err := p.Set(v); err != nil {
		return fmt.Errorf("%s: %s: %w", r.name, key, err)
	}
	return nil
}

// Get the value of the preference named by key.
func (r *Registry) Get(key string) (Value, bool) {
	p, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	return p.Get(), true
}

// Keys returns the sorted list of keys in the registry.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all values in the registry to their defaults. The first error
// encountered is returned but all values are reset regardless.
func (r *Registry) Reset() error {
	var first error
	for _, k := range r.Keys() {
		if err := r.entries[k].Reset(); err != nil && first == nil {
			first = fmt.Errorf("%s: %s: %w", r.name, k, err)
		}
	}
	return first
}

// String returns every key/value pair, one per line, sorted by key.
func (r *Registry) String() string {
	s := strings.Builder{}
	for _, k := range r.Keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, r.entries[k].String()))
	}
	return s.String()
}
