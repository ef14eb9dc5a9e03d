package htmlschema

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jacoelho/htmlschema/errors"
)

// AnySelector resolves an ordered list of member selectors and keeps the first
// non-empty value. Member validation failures are swallowed so a strict early
// member never blocks a later fallback; only the AnySelector's own required
// flag decides whether exhaustion is an error. The result shape is whatever
// the winning member produced.
type AnySelector struct {
	members  []Selector
	required bool
}

// Any returns a fallback selector over members, tried left to right.
func Any(members []Selector, opts ...Option) *AnySelector {
	cfg := applyOptions(opts)
	return &AnySelector{members: members, required: cfg.required}
}

// Resolve evaluates each member in order and returns the first non-empty value.
func (s *AnySelector) Resolve(node *goquery.Selection) (Value, error) {
	for _, m := range s.members {
		value, err := m.Resolve(node)
		if err != nil {
			if _, ok := errors.AsValidation(err); ok {
				continue
			}
			return Absent(), err
		}
		if !value.IsEmpty() {
			return value, nil
		}
	}

	if s.required {
		return Absent(), errors.NewValidation(
			errors.ErrAnyExhausted,
			"no fallback member resolved to a value",
			s.String(),
		)
	}
	return Absent(), nil
}

// String returns the selector in constructor form, listing every member.
func (s *AnySelector) String() string {
	parts := make([]string, len(s.members))
	for i, m := range s.members {
		parts[i] = fmt.Sprintf("%v", m)
	}
	return "Any(" + strings.Join(parts, ", ") + ")"
}
