// Package recipe provides a ready-made schema for extracting schema.org
// recipe metadata from HTML documents.
package recipe

import (
	"io"

	"github.com/jacoelho/htmlschema"
)

// Schema extracts recipe metadata marked up with schema.org microdata,
// falling back to OpenGraph and plain meta tags where publishers omit the
// itemprop annotations.
var Schema = htmlschema.NewSchema().
	Add("author", htmlschema.Element("[itemprop=author]")).
	Add("categories", htmlschema.Element("[itemprop=recipeCategory]", htmlschema.AsList())).
	Add("description", htmlschema.Any([]htmlschema.Selector{
		htmlschema.Element("[itemprop=description]"),
		htmlschema.Element(`[name="og:description"]`),
		htmlschema.Element("[name=description]"),
	}, htmlschema.Required())).
	Add("name", htmlschema.Any([]htmlschema.Selector{
		htmlschema.Element("[itemprop=name]"),
		htmlschema.Element(`[property="og:title"]`),
	}, htmlschema.Required())).
	Add("yield", htmlschema.Element("[itemprop=recipeYield]")).
	Add("ingredients", htmlschema.Any([]htmlschema.Selector{
		htmlschema.Element("[itemprop=recipeIngredient]", htmlschema.AsList()),
		htmlschema.Element("[itemprop=ingredients]", htmlschema.AsList()),
	}, htmlschema.Required())).
	Add("instructions", htmlschema.Element("[itemprop=recipeInstructions]", htmlschema.AsList(), htmlschema.Required())).
	Add("cook_time", htmlschema.Attr("[itemprop=cookTime]", "datetime")).
	Add("prep_time", htmlschema.Attr("[itemprop=prepTime]", "datetime")).
	Add("total_time", htmlschema.Attr("[itemprop=totalTime]", "datetime")).
	Add("calories", htmlschema.Element("[itemprop=calories]")).
	Add("carbohydrate_content", htmlschema.Element("[itemprop=carbohydrateContent]")).
	Add("cholesterol_content", htmlschema.Element("[itemprop=cholesterolContent]")).
	Add("fat_content", htmlschema.Element("[itemprop=fatContent]")).
	Add("protein_content", htmlschema.Element("[itemprop=proteinContent]")).
	Add("sodium_content", htmlschema.Element("[itemprop=sodiumContent]"))

// Parse extracts recipe metadata from an HTML document.
func Parse(r io.Reader) (*htmlschema.Record, error) {
	return Schema.Parse(r)
}

// ParseString extracts recipe metadata from an HTML document string.
func ParseString(markup string) (*htmlschema.Record, error) {
	return Schema.ParseString(markup)
}
