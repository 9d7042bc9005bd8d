package pagemeta

// Extraction holds the raw harvest from an HTML document, before statistics
// and summary counts are computed. Missing elements yield placeholder values
// rather than errors; malformed link and image references are skipped
// silently.
type Extraction struct {
	// Title is the trimmed text of the title element, or NoTitle.
	Title string

	// Description, Language, and Keywords come from meta and html element
	// attributes, each with its placeholder when absent.
	Description string
	Language    string
	Keywords    string

	// Headings maps "h1" through "h6" to the trimmed, non-empty heading
	// texts at that level, in document order. All six keys are present.
	Headings map[string][]string

	// Paragraphs holds the trimmed, non-empty paragraph texts in document
	// order.
	Paragraphs []string

	// Links and Images hold entries with URLs resolved against the page
	// URL, in first-seen document order.
	Links  []LinkEntry
	Images []ImageEntry

	// OpenGraph and TwitterCard map property suffixes to content values.
	OpenGraph   map[string]string
	TwitterCard map[string]string
}

// Extractor extracts structured metadata from HTML documents.
// Implementations must be tolerant of malformed markup: a parse never fails,
// missing elements simply yield absent or default values.
type Extractor interface {
	// Extract walks the document and returns everything it can harvest.
	// pageURL is the page's own URL, used to resolve relative references
	// and to classify links as internal or external.
	Extract(html string, pageURL string) (*Extraction, error)
}
