// Package goquery provides goquery-based implementations of
// webcite.MetadataExtractor. StructuredData reads Schema.org JSON-LD
// blocks; MetaTags is the OpenGraph/meta-tag fallback.
package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webcite"
)

// Ensure StructuredData implements webcite.MetadataExtractor at compile time.
var _ webcite.MetadataExtractor = (*StructuredData)(nil)

// schemaArticle is the transient decode target for one JSON-LD block.
// Author is raw so a malformed author value degrades to an empty list
// instead of rejecting the whole block.
type schemaArticle struct {
	Type          string          `json:"@type"`
	Headline      string          `json:"headline"`
	Author        json.RawMessage `json:"author"`
	DatePublished string          `json:"datePublished"`
}

type schemaAuthor struct {
	Name string `json:"name"`
}

// articleTypes are the Schema.org types accepted as citable articles.
var articleTypes = map[string]bool{
	"Article":     true,
	"NewsArticle": true,
	"BlogPosting": true,
}

// StructuredData extracts article metadata from Schema.org JSON-LD blocks.
type StructuredData struct{}

// NewStructuredData creates a new StructuredData extractor.
func NewStructuredData() *StructuredData {
	return &StructuredData{}
}

// Extract scans script[type='application/ld+json'] blocks in document
// order and returns metadata from the first block that decodes as an
// accepted article type with a non-empty headline. Decode failures on
// individual blocks are swallowed and the scan continues. Returns nil
// when no block is accepted.
func (e *StructuredData) Extract(html string) *webcite.Metadata {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var meta *webcite.Metadata
	doc.Find("script[type='application/ld+json']").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var article schemaArticle
		if err := json.Unmarshal([]byte(sel.Text()), &article); err != nil {
			return true // malformed block, keep scanning
		}
		if !articleTypes[article.Type] || article.Headline == "" {
			return true
		}

		meta = &webcite.Metadata{
			Title:  article.Headline,
			Author: joinAuthors(article.Author),
			Year:   webcite.TruncateYear(article.DatePublished),
		}
		return false
	})

	return meta
}

// joinAuthors decodes the raw author value and joins the names with the
// BibTeX "and" separator. Anything that is not a list of {name} objects
// yields an empty string.
func joinAuthors(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var authors []schemaAuthor
	if err := json.Unmarshal(raw, &authors); err != nil {
		return ""
	}

	names := make([]string, 0, len(authors))
	for _, a := range authors {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return strings.Join(names, " and ")
}
