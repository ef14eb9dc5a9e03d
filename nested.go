package htmlschema

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/jacoelho/htmlschema/errors"
)

// SchemaSelector resolves a nested schema against each element matched by a
// CSS selector pattern, producing one record per match. The referenced schema
// is shared read-only; resolving never mutates it.
type SchemaSelector struct {
	pattern  string
	schema   *Schema
	required bool
	asList   bool
}

// Nested returns a selector resolving schema against each element matching
// pattern.
func Nested(pattern string, schema *Schema, opts ...Option) *SchemaSelector {
	cfg := applyOptions(opts)
	return &SchemaSelector{
		pattern:  pattern,
		schema:   schema,
		required: cfg.required,
		asList:   cfg.asList,
	}
}

// Resolve evaluates the selector against node. Each matched element becomes
// the root node for one resolution of the nested schema; the first failing
// nested resolution aborts.
func (s *SchemaSelector) Resolve(node *goquery.Selection) (Value, error) {
	if node == nil {
		return Absent(), errors.NewValidation(errors.ErrMarkupParse, "nil selection", s.pattern)
	}

	var value Value
	if s.asList {
		matches := node.Find(s.pattern)
		records := make([]*Record, 0, matches.Length())
		var resolveErr error
		matches.EachWithBreak(func(_ int, m *goquery.Selection) bool {
			rec, err := s.schema.Resolve(m)
			if err != nil {
				resolveErr = err
				return false
			}
			records = append(records, rec)
			return true
		})
		if resolveErr != nil {
			return Absent(), resolveErr
		}
		value = RecordListValue(records)
	} else {
		m := node.Find(s.pattern).First()
		value = Absent()
		if m.Length() > 0 {
			rec, err := s.schema.Resolve(m)
			if err != nil {
				return Absent(), err
			}
			value = RecordValue(rec)
		}
	}

	return requireNonEmpty(value, s.required, s.pattern)
}

// String returns the selector in constructor form.
func (s *SchemaSelector) String() string {
	return fmt.Sprintf("Nested(%q)", s.pattern)
}
