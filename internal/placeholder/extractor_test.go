package placeholder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	doc := `<p>Hi</p><img src="image:p1" alt="profile">`

	m := Extract(doc)

	require.Equal(t, 1, m.Len())
	desc, ok := m.Get("p1")
	require.True(t, ok)
	assert.Equal(t, "profile", desc)
}

func TestExtractDocumentOrder(t *testing.T) {
	doc := `<img src="image:header" alt="City skyline">` +
		`<h1>Jane</h1>` +
		`<img src="image:photo" alt="Headshot">` +
		`<img src="image:footer" alt="Logo">`

	m := Extract(doc)

	assert.Equal(t, []string{"header", "photo", "footer"}, m.IDs())
}

func TestExtractNoPlaceholders(t *testing.T) {
	m := Extract(`<p>No images here</p><img src="https://example.com/a.png" alt="real">`)

	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.IDs())
}

func TestExtractMalformedTokensIgnored(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing alt", `<img src="image:p1">`},
		{"wrong scheme", `<img src="img:p1" alt="x">`},
		{"attributes reversed", `<img alt="x" src="image:p1">`},
		{"extra attribute between", `<img src="image:p1" class="c" alt="x">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, Extract(tt.doc).Len())
		})
	}
}

func TestExtractDuplicateIDsFirstWins(t *testing.T) {
	doc := `<img src="image:p1" alt="first"><img src="image:p1" alt="second">`

	m := Extract(doc)

	require.Equal(t, 1, m.Len())
	desc, _ := m.Get("p1")
	assert.Equal(t, "first", desc)
	assert.Equal(t, []string{"p1"}, m.Duplicates())
}

func TestExtractSelfClosingToken(t *testing.T) {
	m := Extract(`<img src="image:p1" alt="profile"/>`)

	require.Equal(t, 1, m.Len())
	desc, _ := m.Get("p1")
	assert.Equal(t, "profile", desc)
}

func TestMapMarshalJSONPreservesOrder(t *testing.T) {
	doc := `<img src="image:b" alt="two"><img src="image:a" alt="one">`

	data, err := json.Marshal(Extract(doc))
	require.NoError(t, err)

	assert.Equal(t, `{"b":"two","a":"one"}`, string(data))

	// Still a valid JSON object
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, map[string]string{"a": "one", "b": "two"}, decoded)
}

func TestMapMarshalJSONEmpty(t *testing.T) {
	data, err := json.Marshal(Extract("nothing"))
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestMapUnmarshalJSONRoundTrip(t *testing.T) {
	doc := `<img src="image:b" alt="two"><img src="image:a" alt="one">`
	data, err := json.Marshal(Extract(doc))
	require.NoError(t, err)

	var m Map
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, []string{"b", "a"}, m.IDs())
	desc, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "one", desc)

	again, err := json.Marshal(&m)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestMapUnmarshalJSONRejectsNonObject(t *testing.T) {
	var m Map
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &m))
	assert.Error(t, json.Unmarshal([]byte(`"a"`), &m))
}
