package preset

import (
	"strings"
	"unicode"
)

// Normalize canonicalises a field name or preset key for matching: lowercase
// with brackets, dots, hyphens, and all whitespace removed. "address[line1]"
// and "AddressLine1" collide on purpose. The function is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '[' || r == ']' || r == '.' || r == '-':
			continue
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
