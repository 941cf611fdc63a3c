// Package webcite turns web page URLs into best-effort BibTeX citations.
// It resolves DOI links through registry content negotiation and falls
// back to scraping page metadata (Schema.org JSON-LD, then OpenGraph and
// generic meta tags) when the URL is not a DOI.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/).
package webcite
