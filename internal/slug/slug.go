package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make derives a URL-safe identifier from a title: lowercase, diacritics
// stripped, every run of characters outside [a-z0-9] collapsed to a single
// hyphen, leading/trailing hyphens trimmed. Deterministic and total; an
// all-symbol title yields "" and the caller must reject it, since stores
// require non-empty unique slugs. Uniqueness itself is the database's job.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))

	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
