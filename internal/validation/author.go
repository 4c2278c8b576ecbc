package validation

import (
	"strings"
)

const (
	// AnonymousAuthor is used when a request carries no author name.
	AnonymousAuthor = "anonymous"

	// maxAuthorLen caps the normalized author name. The normalized form is
	// also used to derive rating document ids, so the cap bounds id length.
	maxAuthorLen = 40
)

// NormalizeAuthor trims the name, collapses internal whitespace runs to single
// spaces, caps the result at maxAuthorLen runes and falls back to
// AnonymousAuthor when nothing remains. Case is preserved: "Alice" and "alice"
// are distinct authors.
func NormalizeAuthor(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return AnonymousAuthor
	}
	normalized := strings.Join(fields, " ")
	runes := []rune(normalized)
	if len(runes) > maxAuthorLen {
		normalized = strings.TrimSpace(string(runes[:maxAuthorLen]))
	}
	return normalized
}
