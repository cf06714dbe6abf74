package param

import (
	"errors"
	"fmt"
	"sort"
)

// Name is the name of the parameter holding the form field name in a
// form-data Content-disposition header.
const Name = "name"

// ErrReservedParameterName is returned by NewTable when a parameter name, or
// the value of the name parameter, is a reserved identifier.
var ErrReservedParameterName = errors.New("reserved parameter name")

// reservedNames are identifiers that generic object lookups in other
// environments resolve to the object prototype. They are never accepted into
// a Table.
var reservedNames = map[string]struct{}{
	"__proto__": {},
}

// IsReservedName returns true if s is refused by NewTable as a parameter name.
func IsReservedName(s string) bool {
	_, reserved := reservedNames[s]
	return reserved
}

// Table maps lowercase parameter names to their effective values.
//
// When a parameter is repeated, the last occurrence wins. When a parameter is
// given in both the plain and the extended form, the extended form wins no
// matter which came first.
type Table struct {
	values   map[string]string
	extended map[string]bool
}

// NewTable folds the given parameters into a Table. It fails with
// ErrReservedParameterName if any parameter is named with a reserved
// identifier or if the name parameter carries one as its value.
func NewTable(ps []RawParameter) (*Table, error) {
	t := &Table{
		values:   make(map[string]string, len(ps)),
		extended: make(map[string]bool, len(ps)),
	}

	for _, p := range ps {
		if IsReservedName(p.Name) {
			return nil, fmt.Errorf("%w: %q", ErrReservedParameterName, p.Name)
		}

		if p.Name == Name && IsReservedName(p.Value) {
			return nil, fmt.Errorf("%w: %s=%q", ErrReservedParameterName, p.Name, p.Value)
		}

		if t.extended[p.Name] && !p.Extended {
			continue
		}

		t.values[p.Name] = p.Value
		if p.Extended {
			t.extended[p.Name] = true
		}
	}

	return t, nil
}

// Get returns the effective value of the named parameter and whether it was
// present. The name must be lowercase.
func (t *Table) Get(name string) (string, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Extended returns true if the value returned by Get for name came from an
// extended parameter.
func (t *Table) Extended(name string) bool {
	return t.extended[name]
}

// Len returns the number of distinct parameters.
func (t *Table) Len() int {
	return len(t.values)
}

// Names returns the parameter names in sorted order.
func (t *Table) Names() []string {
	ns := make([]string, 0, len(t.values))
	for n := range t.values {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

// Map returns a copy of the table as a map.
func (t *Table) Map() map[string]string {
	m := make(map[string]string, len(t.values))
	for k, v := range t.values {
		m[k] = v
	}
	return m
}
