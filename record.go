package pagemeta

// Placeholder values used when an element or attribute is absent from the
// page. They are part of the output contract: consumers can rely on fields
// always being present.
const (
	NoTitle       = "No title found"
	NoDescription = "No description found"
	NotSpecified  = "Not specified"
	NoLinkText    = "No text"
	NoAltText     = "No alt text"
	NoImageTitle  = "No title"
)

// StatusSuccess marks a completed extraction.
const StatusSuccess = "success"

// PageRecord is the structured result of analyzing a single page. It is a
// snapshot of one fetch and is never mutated after assembly.
type PageRecord struct {
	URL        string     `json:"url"`
	BasicInfo  BasicInfo  `json:"basicInfo"`
	Structure  Structure  `json:"structure"`
	Links      Links      `json:"links"`
	Images     Images     `json:"images"`
	Metadata   SocialMeta `json:"metadata"`
	Statistics Statistics `json:"statistics"`
	Status     string     `json:"status"`
}

// BasicInfo holds the page's single-value metadata fields.
type BasicInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Keywords    string `json:"keywords"`
	AnalyzedAt  string `json:"analyzedAt"`
}

// Structure describes the page's heading and paragraph layout. Headings maps
// "h1" through "h6" to the heading texts at that level, in document order.
type Structure struct {
	Headings      map[string][]string `json:"headings"`
	Paragraphs    []string            `json:"paragraphs"`
	TotalSections int                 `json:"totalSections"`
}

// LinkEntry is a single hyperlink found on the page. URL is always absolute,
// resolved against the page's own URL.
type LinkEntry struct {
	URL      string `json:"url"`
	Text     string `json:"text"`
	External bool   `json:"external"`
}

// LinkSummary breaks down the links found on a page.
type LinkSummary struct {
	Total    int `json:"total"`
	Internal int `json:"internal"`
	External int `json:"external"`
}

// Links holds the page's hyperlinks in document order plus their summary.
type Links struct {
	Items   []LinkEntry `json:"items"`
	Summary LinkSummary `json:"summary"`
}

// ImageEntry is a single image found on the page. Src is always absolute.
// Width and Height are raw attribute values, not parsed numbers.
type ImageEntry struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Title  string `json:"title"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// Images holds the page's images in document order plus their total.
type Images struct {
	Items []ImageEntry `json:"items"`
	Total int          `json:"total"`
}

// SocialMeta holds Open Graph and Twitter Card properties keyed by the
// suffix after their respective "og:" and "twitter:" prefixes. Duplicate
// keys keep the last value seen in document order.
type SocialMeta struct {
	OpenGraph   map[string]string `json:"openGraph"`
	TwitterCard map[string]string `json:"twitterCard"`
}

// Statistics holds counts derived from the extracted content.
type Statistics struct {
	ParagraphCount    int     `json:"paragraphCount"`
	WordCount         int     `json:"wordCount"`
	WordsPerParagraph float64 `json:"wordsPerParagraph"`
}
