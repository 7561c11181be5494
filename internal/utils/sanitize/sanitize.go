package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict is a cached bluemonday policy that removes all HTML tags and
// attributes. Safe for concurrent use as the policy is read-only after build.
var strict = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true) // prevents word concatenation
	return p
}()

// Clean strips HTML from note text and normalizes whitespace.
// Every title, content string and tag passes through Clean before it is
// submitted to the note service; the stub service applies it again before
// storing, so both sides agree on what a note looks like.
//
// Examples:
//   - "<script>alert('x')</script>Buy milk" -> "Buy milk"
//   - "<p>line one</p>\nline two"           -> "line one\nline two"
//   - "  a   b  "                           -> "a b"
func Clean(s string) string {
	sanitized := strict.Sanitize(s)
	sanitized = strings.TrimSpace(sanitized)

	// Unescape entities so "&amp;" round-trips as "&"
	sanitized = html.UnescapeString(sanitized)

	// Normalize non-breaking spaces for substring search
	sanitized = strings.ReplaceAll(sanitized, "\u00a0", " ")

	// Collapse runs of spaces while preserving newlines
	lines := strings.Split(sanitized, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}

// CleanAll applies Clean to every element and drops entries that end up empty.
func CleanAll(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if c := Clean(s); c != "" {
			out = append(out, c)
		}
	}
	return out
}
