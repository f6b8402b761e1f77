package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	doc := `<p>Hi</p><img src="image:p1" alt="profile">`

	got := Resolve(doc, map[string]string{"p1": "data:image/png;base64,AAA="})

	assert.Equal(t, `<p>Hi</p><img src="data:image/png;base64,AAA=" alt="profile">`, got)
}

func TestResolveRoundTripNoPlaceholders(t *testing.T) {
	doc := `<html><body><h1>Jane Doe</h1><p>Engineer</p></body></html>`

	got := Resolve(doc, map[string]string{"anything": "data:image/png;base64,AAA="})

	assert.Equal(t, doc, got)
}

func TestResolveIdempotent(t *testing.T) {
	doc := `<img src="image:p1" alt="profile"><p>text</p><img src="image:p2" alt="banner">`
	images := map[string]string{
		"p1": "data:image/png;base64,AAA=",
		"p2": "https://example.com/banner.jpg",
	}

	once := Resolve(doc, images)
	twice := Resolve(once, images)

	assert.Equal(t, once, twice)
}

func TestResolveSelectiveSubstitution(t *testing.T) {
	doc := `<img src="image:a" alt="cat"><img src="image:b" alt="dog">`

	got := Resolve(doc, map[string]string{"a": "data:image/png;base64,AAA="})

	assert.Equal(t, `<img src="data:image/png;base64,AAA=" alt="cat"><img src="image:b" alt="dog">`, got)
}

func TestResolveNonInterference(t *testing.T) {
	prefix := "<div class=\"header\">\n  <h1>Jane</h1>\n</div>\n"
	suffix := "\n<p>trailing   whitespace preserved  </p>"
	doc := prefix + `<img src="image:a" alt="photo">` + suffix

	got := Resolve(doc, map[string]string{"a": "https://example.com/a.png"})

	assert.Equal(t, prefix+`<img src="https://example.com/a.png" alt="photo">`+suffix, got)
}

func TestResolveUnknownIDsAreNoOps(t *testing.T) {
	doc := `<img src="image:present" alt="here">`

	// Image for an id that is not in the document
	got := Resolve(doc, map[string]string{"absent": "data:image/png;base64,AAA="})
	assert.Equal(t, doc, got)

	// Empty map
	assert.Equal(t, doc, Resolve(doc, nil))
}

func TestResolvePreservesEachTokenDescription(t *testing.T) {
	// Duplicate id: both tokens resolve, each keeping its own description
	doc := `<img src="image:p1" alt="first"><img src="image:p1" alt="second">`

	got := Resolve(doc, map[string]string{"p1": "u"})

	assert.Equal(t, `<img src="u" alt="first"><img src="u" alt="second">`, got)
}
