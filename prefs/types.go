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
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types support by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are shared by all preference types. the pre hook can reject a new
// value by returning an error, in which case the stored value is unchanged.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the callback function to be called just before the value
// changes. An error from the callback leaves the value as it was.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the callback function to be called after the value has
// been stored, even if it is the same as the previous value.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

// cell is the storage shared by the preference types. the zero value holds
// the default.
type cell[T any] struct {
	v   atomic.Value
	def T
}

func (c *cell[T]) load() T {
	if v, ok := c.v.Load().(T); ok {
		return v
	}
	return c.def
}

func (c *cell[T]) store(h *hooks, nv T) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}
	c.v.Store(nv)
	if h.post != nil {
		return h.post(nv)
	}
	return nil
}

// SetDefault changes the value used by Reset(). The current value is not
// changed.
func (c *cell[T]) SetDefault(v T) {
	c.def = v
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	cell[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load())
}

// Set accepts a bool or a string. Any string other than "true" (case
// insensitive) is false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(&p.hooks, v)
	case string:
		return p.store(&p.hooks, strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load()
}

// Reset sets the value to the default value.
func (p *Bool) Reset() error {
	return p.Set(p.def)
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	cell[string]
	maxLen int
}

func (p *String) String() string {
	return p.load()
}

// SetMaxLen limits the length of strings given to Set(). A value of zero or
// less means no limit. The current value is not cropped.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
}

// Set accepts any value. Values that are not strings are formatted with the
// %v verb.
func (p *String) Set(v Value) error {
	nv, ok := v.(string)
	if !ok {
		nv = fmt.Sprintf("%v", v)
	}
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	return p.store(&p.hooks, nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load()
}

// Reset sets the value to the default value.
func (p *String) Reset() error {
	return p.Set(p.def)
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	cell[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// Set accepts any of the int types or a string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(&p.hooks, v)
	case int32:
		return p.store(&p.hooks, int(v))
	case int64:
		return p.store(&p.hooks, int(v))
	case string:
		nv, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int: %w", v, err)
		}
		return p.store(&p.hooks, nv)
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load()
}

// Reset sets the value to the default value.
func (p *Int) Reset() error {
	return p.Set(p.def)
}

// Float implements a floating-point type in the prefs system.
type Float struct {
	hooks
	cell[float64]
}

func (p *Float) String() string {
	return strconv.FormatFloat(p.load(), 'f', 3, 64)
}

// Set accepts a float, an int or a string.
func (p *Float) Set(v Value) error {
	switch v := v.(type) {
	case float64:
		return p.store(&p.hooks, v)
	case float32:
		return p.store(&p.hooks, float64(v))
	case int:
		return p.store(&p.hooks, float64(v))
	case string:
		nv, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Float: %w", v, err)
		}
		return p.store(&p.hooks, nv)
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Float", v)
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	return p.load()
}

// Reset sets the value to the default value.
func (p *Float) Reset() error {
	return p.Set(p.def)
}
