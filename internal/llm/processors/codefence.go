// Package processors post-processes raw LLM completions before they enter
// the pipeline. Models frequently wrap markup in code fences despite being
// told not to; the fence stripper normalizes that away.
package processors

import (
	"regexp"
	"strings"
)

var htmlFenceRe = regexp.MustCompile("(?s)```html\\s+(.*?)\\s+```")

// ExtractHTML strips code fences from a raw model completion and returns the
// markup inside. A ```html fence anywhere in the response wins; otherwise a
// response that is itself a generic fenced block is unwrapped. Responses
// without fences pass through trimmed.
func ExtractHTML(raw string) string {
	if m := htmlFenceRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}

	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "```") && strings.HasSuffix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(trimmed, "```")
		// Drop a language tag left on the first line, e.g. "html".
		if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
			first := strings.TrimSpace(trimmed[:idx])
			if first != "" && !strings.ContainsAny(first, "<> ") {
				trimmed = trimmed[idx+1:]
			}
		}
		return strings.TrimSpace(trimmed)
	}

	return trimmed
}
