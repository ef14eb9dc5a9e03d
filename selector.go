package htmlschema

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/jacoelho/htmlschema/errors"
)

// Selector resolves a value from a document node. Implementations are
// immutable after construction and safe for concurrent use.
type Selector interface {
	// Resolve evaluates the selector against node and returns the extracted
	// value. A required selector returns a validation error instead of an
	// empty value.
	Resolve(node *goquery.Selection) (Value, error)
}

// Option configures a selector at construction time.
type Option interface{ apply(*selectorConfig) }

type selectorConfig struct {
	required bool
	asList   bool
}

type optionFunc func(*selectorConfig)

func (f optionFunc) apply(cfg *selectorConfig) {
	if cfg == nil {
		return
	}
	f(cfg)
}

// Required makes resolution fail with a validation error when the selector
// produces no value.
func Required() Option {
	return optionFunc(func(cfg *selectorConfig) {
		cfg.required = true
	})
}

// AsList makes the selector resolve every matching element in document order
// instead of only the first. List selectors always produce a list, possibly
// empty, never an absent value.
func AsList() Option {
	return optionFunc(func(cfg *selectorConfig) {
		cfg.asList = true
	})
}

func applyOptions(opts []Option) selectorConfig {
	var cfg selectorConfig
	for _, o := range opts {
		o.apply(&cfg)
	}
	return cfg
}

// ElementSelector extracts element content using a CSS selector pattern. For
// each matched element the value is the element's "content" attribute when
// present, otherwise its text content. Many vocabularies carry the canonical
// value in a content attribute (meta tags), hence the heuristic.
type ElementSelector struct {
	pattern  string
	required bool
	asList   bool
}

// Element returns a selector extracting element content for pattern.
func Element(pattern string, opts ...Option) *ElementSelector {
	cfg := applyOptions(opts)
	return &ElementSelector{pattern: pattern, required: cfg.required, asList: cfg.asList}
}

// Resolve evaluates the selector against node.
func (s *ElementSelector) Resolve(node *goquery.Selection) (Value, error) {
	if node == nil {
		return Absent(), errors.NewValidation(errors.ErrMarkupParse, "nil selection", s.pattern)
	}

	var value Value
	if s.asList {
		var items []string
		node.Find(s.pattern).Each(func(_ int, m *goquery.Selection) {
			items = append(items, elementContent(m))
		})
		value = ListValue(items)
	} else {
		m := node.Find(s.pattern).First()
		value = Absent()
		if m.Length() > 0 {
			value = TextValue(elementContent(m))
		}
	}

	return requireNonEmpty(value, s.required, s.pattern)
}

// String returns the selector in constructor form.
func (s *ElementSelector) String() string {
	return fmt.Sprintf("Element(%q)", s.pattern)
}

// AttrSelector extracts a named attribute from elements matched by a CSS
// selector pattern. Elements missing the attribute produce no value; the
// content-attribute heuristic of ElementSelector does not apply.
type AttrSelector struct {
	pattern   string
	attribute string
	required  bool
	asList    bool
}

// Attr returns a selector extracting the named attribute for pattern.
func Attr(pattern, attribute string, opts ...Option) *AttrSelector {
	cfg := applyOptions(opts)
	return &AttrSelector{
		pattern:   pattern,
		attribute: attribute,
		required:  cfg.required,
		asList:    cfg.asList,
	}
}

// Resolve evaluates the selector against node.
func (s *AttrSelector) Resolve(node *goquery.Selection) (Value, error) {
	if node == nil {
		return Absent(), errors.NewValidation(errors.ErrMarkupParse, "nil selection", s.pattern)
	}

	var value Value
	if s.asList {
		var items []string
		node.Find(s.pattern).Each(func(_ int, m *goquery.Selection) {
			if v, ok := m.Attr(s.attribute); ok {
				items = append(items, v)
			}
		})
		value = ListValue(items)
	} else {
		m := node.Find(s.pattern).First()
		value = Absent()
		if m.Length() > 0 {
			if v, ok := m.Attr(s.attribute); ok {
				value = TextValue(v)
			}
		}
	}

	return requireNonEmpty(value, s.required, s.pattern)
}

// String returns the selector in constructor form.
func (s *AttrSelector) String() string {
	return fmt.Sprintf("Attr(%q, %q)", s.pattern, s.attribute)
}

func elementContent(m *goquery.Selection) string {
	if v, ok := m.Attr("content"); ok {
		return v
	}
	return m.Text()
}

func requireNonEmpty(value Value, required bool, pattern string) (Value, error) {
	if required && value.IsEmpty() {
		return Absent(), errors.NewValidation(
			errors.ErrSelectorRequired,
			"required selector resolved to no value",
			pattern,
		)
	}
	return value, nil
}
