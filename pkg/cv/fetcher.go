package cv

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
)

// DefaultFetchTimeout bounds a single record fetch.
const DefaultFetchTimeout = 30 * time.Second

// maxRecordBytes caps how much of a response body is read.
const maxRecordBytes = 5 * 1024 * 1024

// Fetcher retrieves a resume record from a URL or a file path.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a fetcher whose HTTP requests time out after timeout.
func NewFetcher(timeout time.Duration) (fetcher *Fetcher) {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	fetcher = &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	return fetcher
}

// Fetch retrieves and decodes the record from file or URL.
func Fetch(source string) (doc Document, err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, DefaultFetchTimeout)
	defer cancel()

	doc, err = FetchWithContext(ctx, source)
	return doc, err
}

// FetchWithContext retrieves and decodes the record with the default fetcher.
func FetchWithContext(ctx context.Context, source string) (doc Document, err error) {
	doc, err = NewFetcher(DefaultFetchTimeout).Fetch(ctx, source)
	return doc, err
}

// Fetch retrieves and decodes the record. Sources with an http or https
// scheme are requested with a single GET, anything else is read from disk.
func (f *Fetcher) Fetch(ctx context.Context, source string) (doc Document, err error) {
	var data []byte
	data, err = f.FetchRaw(ctx, source)
	if err != nil {
		return doc, err
	}

	doc, err = Decode(data)
	return doc, err
}

// FetchRaw retrieves the undecoded record bytes.
func (f *Fetcher) FetchRaw(ctx context.Context, source string) (data []byte, err error) {
	if IsURL(source) {
		data, err = f.fetchFromURL(ctx, source)
		return data, err
	}

	data, err = fetchFromFile(source)
	return data, err
}

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) (ok bool) {
	parsedURL, urlErr := url.Parse(source)
	ok = urlErr == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https")
	return ok
}

// fetchFromFile reads the record from a file.
func fetchFromFile(path string) (data []byte, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return data, err
	}

	return data, err
}

// fetchFromURL requests the record over HTTP.
func (f *Fetcher) fetchFromURL(ctx context.Context, urlStr string) (data []byte, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return data, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "resume-page/1.0")

	var resp *http.Response
	resp, err = f.httpClient.Do(req)
	if err != nil {
		return data, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err = errors.Errorf("HTTP error %d", resp.StatusCode)
		return data, err
	}

	data, err = io.ReadAll(io.LimitReader(resp.Body, maxRecordBytes))
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return data, err
	}

	return data, err
}
