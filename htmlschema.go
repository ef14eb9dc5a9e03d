package htmlschema

import (
	"bytes"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jacoelho/htmlschema/errors"
)

// Schema is an ordered collection of named selectors. A schema is authored
// once with NewSchema and Add, then resolved against any number of documents;
// resolution never mutates the schema, so it is safe to share across
// goroutines.
type Schema struct {
	names     []string
	selectors map[string]Selector
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{selectors: make(map[string]Selector)}
}

// Add registers a named selector and returns the schema for chaining. Adding
// a name twice replaces the selector while keeping the original position.
func (s *Schema) Add(name string, sel Selector) *Schema {
	if _, ok := s.selectors[name]; !ok {
		s.names = append(s.names, name)
	}
	s.selectors[name] = sel
	return s
}

// Fields returns the registered field names in registration order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Parse reads markup from r, parses it once, and resolves every registered
// field against the document. It returns a validation error as soon as a
// required field resolves to no value; there is no partial record on failure.
func (s *Schema) Parse(r io.Reader) (*Record, error) {
	doc, err := parseDocument(r)
	if err != nil {
		return nil, err
	}
	return s.Resolve(doc.Selection)
}

// ParseString parses markup from a string.
func (s *Schema) ParseString(markup string) (*Record, error) {
	return s.Parse(strings.NewReader(markup))
}

// ParseBytes parses markup from a byte sequence.
func (s *Schema) ParseBytes(markup []byte) (*Record, error) {
	return s.Parse(bytes.NewReader(markup))
}

// Resolve resolves every registered field against an already-parsed node, in
// registration order. Nested selectors call this with their matched elements.
func (s *Schema) Resolve(node *goquery.Selection) (*Record, error) {
	rec := newRecord(len(s.names))
	for _, name := range s.names {
		value, err := s.selectors[name].Resolve(node)
		if err != nil {
			if v, ok := errors.AsValidation(err); ok && v.Field == "" {
				return nil, v.WithField(name)
			}
			return nil, err
		}
		rec.set(name, value)
	}
	return rec, nil
}

// Resolve parses markup from r and resolves a single selector against the
// document root. It allows a selector to be used standalone, outside a schema.
func Resolve(sel Selector, r io.Reader) (Value, error) {
	doc, err := parseDocument(r)
	if err != nil {
		return Absent(), err
	}
	return sel.Resolve(doc.Selection)
}

// ResolveString parses markup from a string and resolves a single selector.
func ResolveString(sel Selector, markup string) (Value, error) {
	return Resolve(sel, strings.NewReader(markup))
}

func parseDocument(r io.Reader) (*goquery.Document, error) {
	if r == nil {
		return nil, errors.NewValidation(errors.ErrMarkupParse, "nil reader", "")
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.NewValidationf(errors.ErrMarkupParse, "", "parse markup: %v", err)
	}
	return doc, nil
}
