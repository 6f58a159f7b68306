// Package style holds the ordered CSS declaration map shared by the class
// transformer and the inline style merger.
package style

import "strings"

// Declarations is an ordered mapping from CSS property name to value.
// Setting an existing property overwrites its value in place; new
// properties are appended.
type Declarations struct {
	keys   []string
	values map[string]string
}

// New returns an empty declaration set.
func New() *Declarations {
	return &Declarations{values: make(map[string]string)}
}

// Of builds a declaration set from alternating property/value pairs.
// A trailing property without a value is ignored.
func Of(pairs ...string) *Declarations {
	d := New()
	for i := 0; i+1 < len(pairs); i += 2 {
		d.Set(pairs[i], pairs[i+1])
	}
	return d
}

// Set writes value for prop.
func (d *Declarations) Set(prop, value string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, ok := d.values[prop]; !ok {
		d.keys = append(d.keys, prop)
	}
	d.values[prop] = value
}

// Get returns the value stored for prop.
func (d *Declarations) Get(prop string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.values[prop]
	return v, ok
}

// Len returns the number of properties. A nil set is empty.
func (d *Declarations) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Properties returns the property names in insertion order.
func (d *Declarations) Properties() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Each calls fn for every declaration in order.
func (d *Declarations) Each(fn func(prop, value string)) {
	if d == nil {
		return
	}
	for _, k := range d.keys {
		fn(k, d.values[k])
	}
}

// Overlay writes every declaration of other into d, later values winning.
func (d *Declarations) Overlay(other *Declarations) {
	other.Each(d.Set)
}

// String serializes the set as "prop: value; prop2: value2".
func (d *Declarations) String() string {
	if d.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range d.keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(d.values[k])
	}
	return b.String()
}
