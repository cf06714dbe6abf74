package param

import (
	"sort"
	"strings"

	"github.com/zostay/go-content/internal/scanner"
)

const (
	// Charset is the name of the charset parameter that may be present in the
	// Content-type header.
	Charset = "charset"

	// Boundary is the name of the boundary parameter that may be present in
	// the Content-type header.
	Boundary = "boundary"

	// Filename is the name of the filename parameter that may be present in
	// the Content-disposition header.
	Filename = "filename"
)

// Value represents a parameterized header field value, such as is used in the
// Content-type and Content-disposition headers. A Value object is immutable:
// You cannot change it in place. However, a Modify() function is provided to
// perform transformation of a Value into a new Value.
type Value struct {
	v  string
	ps map[string]string
}

// ParseValue parses a header field body with Parse and NewTable and returns
// the result as a Value.
func ParseValue(v string, opts ...ParseOption) (*Value, error) {
	pv, ps, err := Parse(v, opts...)
	if err != nil {
		return nil, err
	}

	t, err := NewTable(ps)
	if err != nil {
		return nil, err
	}

	return &Value{pv, t.Map()}, nil
}

// New creates a new parameterized header field with no parameters.
func New(v string) *Value {
	return &Value{v, map[string]string{}}
}

// NewWithParams creates a new parameterized header field with the given
// parameters. The map is copied.
func NewWithParams(v string, ps map[string]string) *Value {
	return (&Value{v, ps}).Clone()
}

// Modifier is a modification to apply to a Value when calling the Modify()
// function.
type Modifier func(*Value)

// Change is a Modifier that replaces the primary value of the Value.
func Change(value string) Modifier {
	return func(pv *Value) {
		pv.v = value
	}
}

// Set is a Modifier that sets a parameter with the given name on the Value.
func Set(name, value string) Modifier {
	return func(pv *Value) {
		pv.ps[strings.ToLower(name)] = value
	}
}

// Delete is a Modifier that removes the parameter with the given name from the
// Value.
func Delete(name string) Modifier {
	return func(pv *Value) {
		delete(pv.ps, strings.ToLower(name))
	}
}

// Modify clones a Value, applies the given modifications (if any) and returns
// the new Value:
//
//	v := param.New("multipart/mixed")
//	nv := param.Modify(v, param.Change("multipart/form-data"), param.Set(param.Boundary, "abc"))
func Modify(pv *Value, changes ...Modifier) *Value {
	c := pv.Clone()
	for _, change := range changes {
		change(c)
	}
	return c
}

// Value returns the primary value of the Value. This is the value before the
// first semi-colon.
func (pv *Value) Value() string {
	return pv.v
}

// Parameters returns a copy of the parameters of this Value.
func (pv *Value) Parameters() map[string]string {
	return pv.Clone().ps
}

// Parameter returns the value of the parameter with the given name.
func (pv *Value) Parameter(k string) string {
	return pv.ps[k]
}

// String returns the serialized value of the Value including the primary value
// and all parameters. Parameters are written in name order. Values that are not
// tokens are quoted, and values that cannot be quoted (anything outside
// printable ASCII) are written as RFC 8187 extended parameters.
func (pv *Value) String() string {
	pks := make([]string, 0, len(pv.ps))
	for k := range pv.ps {
		pks = append(pks, k)
	}
	sort.Strings(pks)

	var b strings.Builder
	b.WriteString(pv.v)
	for _, k := range pks {
		b.WriteString("; ")
		writeParam(&b, k, pv.ps[k])
	}

	return b.String()
}

// Bytes returns the serialized value of the Value including the primary value
// and all parameters.
func (pv *Value) Bytes() []byte {
	return []byte(pv.String())
}

// Clone returns a deep copy of the Value.
func (pv *Value) Clone() *Value {
	var c Value
	c.v = pv.v
	c.ps = make(map[string]string, len(pv.ps))
	for k, v := range pv.ps {
		c.ps[k] = v
	}
	return &c
}

func writeParam(b *strings.Builder, name, value string) {
	switch {
	case scanner.IsTokenString(value):
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(value)
	case quotable(value):
		b.WriteString(name)
		b.WriteByte('=')
		writeQuoted(b, value)
	default:
		b.WriteString(name)
		b.WriteString("*=")
		b.WriteString(EncodeExtValue(value))
	}
}

// quotable returns true if every byte of s is printable ASCII or a tab.
func quotable(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 0x20 && c != '\t') || c >= 0x7f {
			return false
		}
	}
	return true
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
}
