package webcite

import (
	"fmt"
	"strings"
	"time"
)

// recordDateFormat renders access dates as YYYY-MM-DD.
const recordDateFormat = "2006-01-02"

// FormatRecord assembles a BibTeX @misc record from extracted metadata.
// Optional fields (author, year) are omitted when empty; howpublished,
// note, urldate and publisher are always present. The accessed time is
// rendered in its own location (callers pass local time).
//
// Field values are embedded without BibTeX escaping: a title containing
// "{", "}" or "\" produces a corrupt record. Known limitation, kept so
// output stays byte-comparable with upstream registry records.
func FormatRecord(meta *Metadata, rawURL, host string, accessed time.Time) string {
	key := CitationKey(meta.Author, meta.Year, meta.Title)
	date := accessed.Format(recordDateFormat)

	var b strings.Builder
	b.WriteString("@misc{")
	b.WriteString(key)
	b.WriteString(",\n")
	fmt.Fprintf(&b, "  title = {%s},\n", meta.Title)
	if meta.Author != "" {
		fmt.Fprintf(&b, "  author = {%s},\n", meta.Author)
	}
	fmt.Fprintf(&b, "  howpublished = {\\url{%s}},\n", rawURL)
	fmt.Fprintf(&b, "  note = {Accessed: %s},\n", date)
	if meta.Year != "" {
		fmt.Fprintf(&b, "  year = {%s},\n", meta.Year)
	}
	fmt.Fprintf(&b, "  urldate = {%s},\n", date)
	fmt.Fprintf(&b, "  publisher = {%s},\n", host)
	b.WriteString("}")

	return b.String()
}

// TruncateYear reduces a date string to its leading 4 characters, the
// conventional year prefix of ISO-style dates. No calendar validation is
// performed; a short or garbage date yields a short or garbage year.
func TruncateYear(date string) string {
	if len(date) > 4 {
		return date[:4]
	}
	return date
}
