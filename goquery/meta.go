package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webcite"
)

// Ensure MetaTags implements webcite.MetadataExtractor at compile time.
var _ webcite.MetadataExtractor = (*MetaTags)(nil)

// MetaTags extracts metadata from OpenGraph and generic meta tags. It is
// the fallback when no JSON-LD article is present.
type MetaTags struct{}

// NewMetaTags creates a new MetaTags extractor.
func NewMetaTags() *MetaTags {
	return &MetaTags{}
}

// Extract resolves title, author and year independently; a missing tag
// leaves its field empty and never fails the other fields. The result is
// never nil — the caller decides whether an empty title is fatal.
func (e *MetaTags) Extract(html string) *webcite.Metadata {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &webcite.Metadata{}
	}

	title := selectValue(doc, "meta[property='og:title']", "content")
	if title == "" {
		title = selectValue(doc, "title", "text")
	}

	author := selectValue(doc, "meta[name='author']", "content")
	if author == "" {
		author = selectValue(doc, "meta[property='article:author']", "content")
	}

	year := webcite.TruncateYear(selectValue(doc, "meta[property='article:published_time']", "content"))

	return &webcite.Metadata{Title: title, Author: author, Year: year}
}

// selectValue returns the trimmed attribute value of the first element
// matching the selector, or the trimmed inner HTML when attr is "text".
// A selector matching nothing yields "".
func selectValue(doc *goquery.Document, selector, attr string) string {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return ""
	}

	if attr == "text" {
		inner, err := sel.Html()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(inner)
	}

	value, ok := sel.Attr(attr)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}
