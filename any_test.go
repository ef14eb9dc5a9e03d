package htmlschema_test

import (
	"reflect"
	"testing"

	"github.com/jacoelho/htmlschema"
	"github.com/jacoelho/htmlschema/errors"
)

func TestAnySelectorFirstNonEmptyWins(t *testing.T) {
	markup := `<html><head><title>Fallback</title><h1>Primary</h1></head></html>`

	sel := htmlschema.Any([]htmlschema.Selector{
		htmlschema.Element("h1"),
		htmlschema.Element("title"),
	})

	got, err := htmlschema.ResolveString(sel, markup)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.Text() != "Primary" {
		t.Fatalf("Text() = %q, want %q", got.Text(), "Primary")
	}
}

func TestAnySelectorSwallowsMemberValidationError(t *testing.T) {
	markup := `<html><head><title>Fallback</title></head></html>`

	sel := htmlschema.Any([]htmlschema.Selector{
		htmlschema.Element("h1", htmlschema.Required()),
		htmlschema.Element("title"),
	})

	got, err := htmlschema.ResolveString(sel, markup)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.Text() != "Fallback" {
		t.Fatalf("Text() = %q, want %q", got.Text(), "Fallback")
	}
}

func TestAnySelectorSkipsEmptyValues(t *testing.T) {
	markup := `<html><body><h1></h1><p>present</p></body></html>`

	sel := htmlschema.Any([]htmlschema.Selector{
		htmlschema.Element("h1"),
		htmlschema.Element("p"),
	})

	got, err := htmlschema.ResolveString(sel, markup)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.Text() != "present" {
		t.Fatalf("Text() = %q, want %q", got.Text(), "present")
	}
}

func TestAnySelectorListOfEmptyStringsIsNonEmpty(t *testing.T) {
	markup := `<html><body><ul><li></li><li></li></ul><p>later</p></body></html>`

	sel := htmlschema.Any([]htmlschema.Selector{
		htmlschema.Element("li", htmlschema.AsList()),
		htmlschema.Element("p"),
	})

	got, err := htmlschema.ResolveString(sel, markup)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.Kind() != htmlschema.KindList {
		t.Fatalf("Kind() = %v, want KindList", got.Kind())
	}
	if !reflect.DeepEqual(got.List(), []string{"", ""}) {
		t.Fatalf("List() = %v, want two empty strings", got.List())
	}
}

func TestAnySelectorExhausted(t *testing.T) {
	markup := `<div></div>`
	members := []htmlschema.Selector{
		htmlschema.Element("h1"),
		htmlschema.Element("title", htmlschema.Required()),
	}

	got, err := htmlschema.ResolveString(htmlschema.Any(members), markup)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !got.IsAbsent() {
		t.Fatalf("Resolve() = %v, want absent", got)
	}

	_, err = htmlschema.ResolveString(htmlschema.Any(members, htmlschema.Required()), markup)
	v, ok := errors.AsValidation(err)
	if !ok {
		t.Fatalf("Resolve() error = %v, want validation error", err)
	}
	if v.Code != string(errors.ErrAnyExhausted) {
		t.Fatalf("Code = %q, want %q", v.Code, errors.ErrAnyExhausted)
	}
	want := `Any(Element("h1"), Element("title"))`
	if v.Selector != want {
		t.Fatalf("Selector = %q, want %q", v.Selector, want)
	}
}
