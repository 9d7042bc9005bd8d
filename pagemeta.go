// Package pagemeta extracts structured metadata from a single web page.
// It fetches a URL over HTTP, parses the response as HTML, and produces a
// PageRecord describing the page's title, headings, paragraphs, links,
// images, and social metadata, along with derived statistics.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, zerolog/).
package pagemeta
