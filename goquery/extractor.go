// Package goquery provides a goquery-based implementation of
// pagemeta.Extractor using CSS selector traversal of the parsed document.
package goquery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jwiater/pagemeta"
)

// Ensure Extractor implements pagemeta.Extractor at compile time.
var _ pagemeta.Extractor = (*Extractor)(nil)

// Extractor extracts structured metadata from HTML documents.
// The underlying parser is tolerant of malformed markup, so extraction never
// fails on bad input; missing elements yield placeholder values.
type Extractor struct{}

// NewExtractor creates a new goquery-based Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract walks the document and harvests title, basic metadata, headings,
// paragraphs, links, images, and social metadata. Link and image URLs are
// resolved against pageURL; references that cannot be resolved to an
// absolute http(s) URL are skipped silently.
func (e *Extractor) Extract(html string, pageURL string) (*pagemeta.Extraction, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINTERNAL, "failed to parse HTML: %v", err)
	}

	extraction := &pagemeta.Extraction{
		Title:       textOr(doc.Find("title").First(), pagemeta.NoTitle),
		Description: attrOr(doc.Find(`meta[name="description"]`).First(), "content", pagemeta.NoDescription),
		Language:    attrOr(doc.Find("html").First(), "lang", pagemeta.NotSpecified),
		Keywords:    attrOr(doc.Find(`meta[name="keywords"]`).First(), "content", pagemeta.NotSpecified),
		Headings:    extractHeadings(doc),
		Paragraphs:  extractParagraphs(doc),
		Links:       extractLinks(doc, base),
		Images:      extractImages(doc, base),
		OpenGraph:   extractMetaMap(doc, "property", "og:"),
		TwitterCard: extractMetaMap(doc, "name", "twitter:"),
	}

	return extraction, nil
}

func extractHeadings(doc *goquery.Document) map[string][]string {
	headings := make(map[string][]string, 6)
	for level := 1; level <= 6; level++ {
		tag := fmt.Sprintf("h%d", level)
		texts := []string{}
		doc.Find(tag).Each(func(_ int, sel *goquery.Selection) {
			if text := strings.TrimSpace(sel.Text()); text != "" {
				texts = append(texts, text)
			}
		})
		headings[tag] = texts
	}
	return headings
}

func extractParagraphs(doc *goquery.Document) []string {
	paragraphs := []string{}
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return paragraphs
}

func extractLinks(doc *goquery.Document, base *url.URL) []pagemeta.LinkEntry {
	links := []pagemeta.LinkEntry{}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		resolved, ok := resolveURL(base, href)
		if !ok {
			return
		}

		text := strings.TrimSpace(sel.Text())
		if text == "" {
			text = pagemeta.NoLinkText
		}

		links = append(links, pagemeta.LinkEntry{
			URL:      resolved.String(),
			Text:     text,
			External: origin(resolved) != origin(base),
		})
	})
	return links
}

func extractImages(doc *goquery.Document, base *url.URL) []pagemeta.ImageEntry {
	images := []pagemeta.ImageEntry{}
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, exists := sel.Attr("src")
		if !exists || src == "" {
			return
		}

		resolved, ok := resolveURL(base, src)
		if !ok {
			return
		}

		images = append(images, pagemeta.ImageEntry{
			Src:    resolved.String(),
			Alt:    attrOr(sel, "alt", pagemeta.NoAltText),
			Title:  attrOr(sel, "title", pagemeta.NoImageTitle),
			Width:  attrOr(sel, "width", pagemeta.NotSpecified),
			Height: attrOr(sel, "height", pagemeta.NotSpecified),
		})
	})
	return images
}

// extractMetaMap collects meta elements whose attr value starts with prefix,
// keyed by the suffix after the prefix. Later duplicate keys overwrite
// earlier ones.
func extractMetaMap(doc *goquery.Document, attr, prefix string) map[string]string {
	meta := map[string]string{}
	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		name, exists := sel.Attr(attr)
		if !exists || !strings.HasPrefix(name, prefix) {
			return
		}
		key := strings.TrimPrefix(name, prefix)
		if key == "" {
			return
		}
		meta[key] = sel.AttrOr("content", "")
	})
	return meta
}

// resolveURL resolves href against base and reports whether the result is a
// usable absolute http(s) URL. Unparseable references and non-HTTP schemes
// (javascript:, mailto:, tel:, data:) are rejected.
func resolveURL(base *url.URL, href string) (*url.URL, bool) {
	ref, err := url.Parse(href)
	if err != nil {
		return nil, false
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return nil, false
	}
	if resolved.Host == "" {
		return nil, false
	}
	if resolved.Path == "" {
		resolved.Path = "/"
	}
	return resolved, true
}

// origin returns the scheme://host portion of a URL, used to classify links
// as internal or external. Host includes the port when one is present.
func origin(u *url.URL) string {
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host)
}

// attrOr returns the trimmed attribute value, or def when the attribute is
// absent or empty after trimming.
func attrOr(sel *goquery.Selection, name, def string) string {
	val := strings.TrimSpace(sel.AttrOr(name, ""))
	if val == "" {
		return def
	}
	return val
}

// textOr returns the trimmed text of the selection, or def when empty.
func textOr(sel *goquery.Selection, def string) string {
	text := strings.TrimSpace(sel.Text())
	if text == "" {
		return def
	}
	return text
}
