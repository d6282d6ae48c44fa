// ABOUTME: Text utilities for display strings coming back from upstream APIs
// ABOUTME: Decodes HTML entities and collapses runs of whitespace

package text

import (
	"html"
	"strings"
)

// CleanTitle decodes HTML entities and collapses whitespace so titles render
// on a single line, e.g. "Linen&nbsp;shirt &amp;\n  trousers" becomes
// "Linen shirt & trousers".
func CleanTitle(s string) string {
	if s == "" {
		return ""
	}
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}
