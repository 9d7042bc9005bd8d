package pagemeta

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations classify transport failures into application error codes
// (ETIMEOUT, EUNREACHABLE, ENORESPONSE, EUPSTREAM) so that callers never
// need to inspect transport internals.
type Fetcher interface {
	// Fetch issues a single GET for the URL and returns the response body
	// decoded to UTF-8. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
