package placeholder

import "strings"

// Resolve replaces placeholder tokens in document markup with final image
// elements. For every token whose id has an entry in images, the exact token
// substring is replaced by an <img> carrying the resolved reference (a data
// URI or URL) and that token's own description. Everything outside token
// boundaries is copied byte for byte.
//
// Ids present in images but absent from the document are ignored; tokens
// without a matching image are left verbatim. Resolve is pure and idempotent:
// a resolved element no longer matches the placeholder grammar, so resolving
// twice with the same map yields the same document.
func Resolve(document string, images map[string]string) string {
	if len(images) == 0 {
		return document
	}

	matches := tokenRe.FindAllStringSubmatchIndex(document, -1)
	if len(matches) == 0 {
		return document
	}

	var b strings.Builder
	b.Grow(len(document))

	last := 0
	for _, m := range matches {
		id := document[m[2]:m[3]]
		ref, ok := images[id]
		if !ok {
			continue
		}

		desc := document[m[4]:m[5]]
		b.WriteString(document[last:m[0]])
		b.WriteString(`<img src="`)
		b.WriteString(ref)
		b.WriteString(`" alt="`)
		b.WriteString(desc)
		b.WriteString(`">`)
		last = m[1]
	}
	b.WriteString(document[last:])

	return b.String()
}
