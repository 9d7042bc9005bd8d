package pagemeta

import (
	"context"
	"errors"
	"net/url"
	"time"
)

// Service orchestrates one page's fetch-and-extract pipeline.
// Each call is independent and stateless; the returned PageRecord is a
// snapshot of a single fetch.
type Service struct {
	Fetcher   Fetcher
	Extractor Extractor

	// Now returns the timestamp recorded as the analysis time.
	// Defaults to time.Now; tests inject a fixed clock.
	Now func() time.Time
}

// NewService returns a Service backed by the given Fetcher and Extractor.
func NewService(fetcher Fetcher, extractor Extractor) *Service {
	return &Service{
		Fetcher:   fetcher,
		Extractor: extractor,
		Now:       time.Now,
	}
}

// Analyze fetches the URL, extracts its metadata, and returns the assembled
// PageRecord. The URL is validated before any network access; a syntactically
// invalid URL fails with EINVALID and no request is issued.
func (s *Service) Analyze(ctx context.Context, rawURL string) (*PageRecord, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, classify(err)
	}

	extraction, err := s.Extractor.Extract(html, rawURL)
	if err != nil {
		return nil, classify(err)
	}

	now := s.Now
	if now == nil {
		now = time.Now
	}

	wordCount := CountWords(extraction.Paragraphs)

	return &PageRecord{
		URL: rawURL,
		BasicInfo: BasicInfo{
			Title:       extraction.Title,
			Description: extraction.Description,
			Language:    extraction.Language,
			Keywords:    extraction.Keywords,
			AnalyzedAt:  now().Format(time.RFC3339),
		},
		Structure: Structure{
			Headings:      extraction.Headings,
			Paragraphs:    extraction.Paragraphs,
			TotalSections: TotalSections(extraction.Headings),
		},
		Links: Links{
			Items:   extraction.Links,
			Summary: SummarizeLinks(extraction.Links),
		},
		Images: Images{
			Items: extraction.Images,
			Total: len(extraction.Images),
		},
		Metadata: SocialMeta{
			OpenGraph:   extraction.OpenGraph,
			TwitterCard: extraction.TwitterCard,
		},
		Statistics: Statistics{
			ParagraphCount:    len(extraction.Paragraphs),
			WordCount:         wordCount,
			WordsPerParagraph: WordsPerParagraph(wordCount, len(extraction.Paragraphs)),
		},
		Status: StatusSuccess,
	}, nil
}

// ValidateURL checks that rawURL is a syntactically valid absolute http or
// https URL. It performs no network access.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return Errorf(EINVALID, "URL must be absolute with a scheme and host (e.g., https://example.com)")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Errorf(EINVALID, "only http and https URLs are supported, got %q", parsed.Scheme)
	}
	return nil
}

// classify wraps unexpected failures into EINTERNAL while passing
// application errors through unchanged.
func classify(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Errorf(EINTERNAL, "unexpected error: %v", err)
}
