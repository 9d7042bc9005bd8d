// Package http provides an HTTP-based implementation of pagemeta.Fetcher.
// It issues a single GET per call, applies a fixed timeout and identifying
// User-Agent, and classifies transport failures into application errors.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/jwiater/pagemeta"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the tool on outbound requests.
const DefaultUserAgent = "pagemeta/1.0 (+https://github.com/jwiater/pagemeta)"

// Ensure Fetcher implements pagemeta.Fetcher at compile time.
var _ pagemeta.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// It performs no retries: a single failed attempt surfaces as the
// corresponding classified error immediately.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent on requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL, decoded to UTF-8.
// Errors are returned as pagemeta.Error values: ETIMEOUT when no response
// arrives within the window, EUNREACHABLE on connection-level failures,
// EUPSTREAM on non-success status codes, and ENORESPONSE for other
// transport failures.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", pagemeta.Errorf(pagemeta.EINVALID, "failed to build request: %v", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classifyTransport(err, f.timeout)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", pagemeta.StatusErrorf(resp.StatusCode, "HTTP %d %s for %s",
			resp.StatusCode, http.StatusText(resp.StatusCode), url)
	}

	// Goquery expects UTF-8 input; decode the body according to the
	// declared or sniffed charset.
	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", pagemeta.Errorf(pagemeta.ENORESPONSE, "failed to decode response body: %v", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", pagemeta.Errorf(pagemeta.ENORESPONSE, "failed to read response body: %v", err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// classifyTransport maps a transport-level failure onto the application
// error taxonomy: timed out, connection failed, or no response received.
func classifyTransport(err error, timeout time.Duration) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return pagemeta.Errorf(pagemeta.ETIMEOUT, "request timed out after %s", timeout)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return pagemeta.Errorf(pagemeta.EUNREACHABLE, "connection failed: %v", dnsErr)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return pagemeta.Errorf(pagemeta.EUNREACHABLE, "connection failed: %v", opErr)
	}

	return pagemeta.Errorf(pagemeta.ENORESPONSE, "no response received: %v", err)
}
