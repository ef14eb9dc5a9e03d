package htmlschema

import (
	"strconv"
	"strings"
)

// Kind identifies the shape of a resolved Value.
type Kind uint8

const (
	// KindAbsent is the zero Kind: no matching element produced a value.
	KindAbsent Kind = iota
	// KindText is a single extracted string.
	KindText
	// KindList is an ordered sequence of extracted strings.
	KindList
	// KindRecord is a single nested record.
	KindRecord
	// KindRecordList is an ordered sequence of nested records.
	KindRecordList
)

// Value is the result of resolving a selector: absent, a single string, a list
// of strings, a nested record, or a list of nested records. The zero Value is
// absent.
type Value struct {
	kind    Kind
	text    string
	list    []string
	record  *Record
	records []*Record
}

// Absent returns the no-value sentinel.
func Absent() Value {
	return Value{}
}

// TextValue returns a single-string value.
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// ListValue returns an ordered list value. A nil slice is a valid empty list,
// distinct from absent.
func ListValue(items []string) Value {
	return Value{kind: KindList, list: items}
}

// RecordValue returns a nested record value.
func RecordValue(r *Record) Value {
	return Value{kind: KindRecord, record: r}
}

// RecordListValue returns an ordered list of nested records.
func RecordListValue(rs []*Record) Value {
	return Value{kind: KindRecordList, records: rs}
}

// Kind returns the shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether no matching element produced a value.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// IsEmpty reports whether the value counts as missing for required and
// fallback checks: absent, the empty string, or an empty sequence. A non-empty
// list is never empty, even when its elements are empty strings.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindAbsent:
		return true
	case KindText:
		return v.text == ""
	case KindList:
		return len(v.list) == 0
	case KindRecord:
		return v.record == nil
	case KindRecordList:
		return len(v.records) == 0
	default:
		return true
	}
}

// Text returns the string payload of a KindText value, or "" otherwise.
func (v Value) Text() string {
	return v.text
}

// List returns the string sequence of a KindList value, or nil otherwise.
func (v Value) List() []string {
	return v.list
}

// Record returns the nested record of a KindRecord value, or nil otherwise.
func (v Value) Record() *Record {
	return v.record
}

// Records returns the record sequence of a KindRecordList value, or nil otherwise.
func (v Value) Records() []*Record {
	return v.records
}

// String returns a human-readable representation of the value.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return strconv.Quote(v.text)
	case KindList:
		parts := make([]string, len(v.list))
		for i, s := range v.list {
			parts[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindRecord:
		return v.record.String()
	case KindRecordList:
		parts := make([]string, len(v.records))
		for i, r := range v.records {
			parts[i] = r.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "<absent>"
	}
}
