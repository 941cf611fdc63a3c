package webcite

import (
	"strings"
	"unicode"
)

// Key part placeholders used when a field is unknown.
const (
	keyUnknownAuthor = "Unknown"
	keyNoDate        = "ND"
	keyNoTitle       = "NoTitle"
)

// CitationKey derives a deterministic BibTeX key like "Doe2024Hi" from the
// first author's surname, the year, and the title's first word. Unknown
// fields fall back to "Unknown", "ND" and "NoTitle", so the key is never
// empty. Author and title tokens are stripped of non-alphanumeric runes;
// the year is used verbatim. Keys are not guaranteed unique across calls.
func CitationKey(author, year, title string) string {
	authorPart := surname(author)
	yearPart := year
	if yearPart == "" {
		yearPart = keyNoDate
	}
	titlePart := firstToken(title, keyNoTitle)

	return alnumOnly(authorPart) + yearPart + alnumOnly(titlePart)
}

// surname returns the last name token of the first author. Multi-author
// strings use the BibTeX "A and B" form, so everything past the first
// " and " is ignored.
func surname(author string) string {
	first, _, _ := strings.Cut(author, " and ")
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return keyUnknownAuthor
	}
	return fields[len(fields)-1]
}

// firstToken returns the first whitespace-delimited token of s, or fallback
// when s contains none.
func firstToken(s, fallback string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return fallback
	}
	return fields[0]
}

// alnumOnly strips every rune that is not a letter or digit.
func alnumOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
