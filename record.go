package htmlschema

import "strings"

// Record is one extracted instance: an ordered mapping from field name to
// resolved value. Records are produced per parse call and never share state.
type Record struct {
	names  []string
	values map[string]Value
}

func newRecord(capacity int) *Record {
	return &Record{
		names:  make([]string, 0, capacity),
		values: make(map[string]Value, capacity),
	}
}

func (r *Record) set(name string, value Value) {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
}

// Get returns the resolved value for a field and whether the field exists.
func (r *Record) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Value returns the resolved value for a field, or the absent value when the
// field does not exist.
func (r *Record) Value(name string) Value {
	return r.values[name]
}

// Fields returns the field names in schema registration order.
func (r *Record) Fields() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// String lists every field and its resolved value in registration order.
func (r *Record) String() string {
	if r == nil {
		return "Record()"
	}
	var b strings.Builder
	b.WriteString("Record(")
	for i, name := range r.names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(r.values[name].String())
	}
	b.WriteString(")")
	return b.String()
}
