// Package placeholder implements the image-placeholder grammar shared by the
// document generator and the resolver. A placeholder token is an <img> element
// whose src attribute carries the image: scheme and whose alt attribute holds
// the human-readable description:
//
//	<img src="image:profile_photo" alt="Professional headshot">
//
// Extraction and resolution operate on the same grammar, so any token
// extracted here re-serializes to the exact substring the resolver matches.
package placeholder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
)

// tokenRe matches a single placeholder token. Group 1 captures the opaque id,
// group 2 the description. Tokens with missing attributes, a different
// attribute order or extra attributes are simply not matched.
var tokenRe = regexp.MustCompile(`<img\s+src="image:([^"]+)"\s+alt="([^"]*)"\s*/?>`)

// Map is an ordered mapping of placeholder id to description. Insertion order
// mirrors document order.
type Map struct {
	ids        []string
	desc       map[string]string
	duplicates []string
}

// Extract scans document markup for placeholder tokens and returns them in
// document order. Duplicate ids keep their first occurrence; the later ones
// are recorded and can be inspected via Duplicates. Extract never fails: a
// document without placeholders yields an empty Map.
func Extract(document string) *Map {
	m := &Map{desc: make(map[string]string)}

	for _, match := range tokenRe.FindAllStringSubmatch(document, -1) {
		id, desc := match[1], match[2]
		if _, seen := m.desc[id]; seen {
			m.duplicates = append(m.duplicates, id)
			continue
		}
		m.ids = append(m.ids, id)
		m.desc[id] = desc
	}

	return m
}

// Len returns the number of distinct placeholders
func (m *Map) Len() int {
	return len(m.ids)
}

// IDs returns the placeholder ids in document order
func (m *Map) IDs() []string {
	ids := make([]string, len(m.ids))
	copy(ids, m.ids)
	return ids
}

// Get returns the description for a placeholder id
func (m *Map) Get(id string) (string, bool) {
	desc, ok := m.desc[id]
	return desc, ok
}

// Duplicates returns the ids that appeared more than once in the document.
// Callers should surface these as warnings; they are not a hard failure.
func (m *Map) Duplicates() []string {
	dups := make([]string, len(m.duplicates))
	copy(dups, m.duplicates)
	return dups
}

// MarshalJSON serializes the map as a JSON object whose keys appear in
// document order, keeping API responses deterministic.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range m.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.desc[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds a Map from a JSON object, preserving the key order
// of the encoded form. Duplicate keys keep their first occurrence, matching
// Extract.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("placeholder map: expected JSON object, got %v", tok)
	}

	m.ids = nil
	m.desc = make(map[string]string)
	m.duplicates = nil

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("placeholder map: non-string key %v", keyTok)
		}

		var desc string
		if err := dec.Decode(&desc); err != nil {
			return err
		}

		if _, seen := m.desc[id]; seen {
			m.duplicates = append(m.duplicates, id)
			continue
		}
		m.ids = append(m.ids, id)
		m.desc[id] = desc
	}

	_, err = dec.Token()
	return err
}
