package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	scerrors "scaffer/internal/errors"
	"scaffer/internal/output"
)

// DefaultGitignoreBaseURL is the raw content root of github.com/github/gitignore
const DefaultGitignoreBaseURL = "https://raw.githubusercontent.com/github/gitignore/refs/heads/main"

// DefaultFetchTimeout bounds a single ignore-file download
const DefaultFetchTimeout = 10 * time.Second

// ErrNoIgnoreFile is the cause of a FetchFailure when the collection has no
// ignore file for the identifier.
var ErrNoIgnoreFile = errors.New("no published .gitignore")

// maxIgnoreSize caps the body read from the remote
const maxIgnoreSize = 1 << 20

// HTTPFetcher downloads ignore files from a gitignore collection served over HTTP
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFetcher creates a fetcher rooted at baseURL. Empty values fall back to the defaults.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	if baseURL == "" {
		baseURL = DefaultGitignoreBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	return &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// EncodeIdentifier percent-encodes the characters that the collection's file names
// carry but URLs do not tolerate. Only '+' needs it ("C++" -> "C%2B%2B").
func EncodeIdentifier(identifier string) string {
	return strings.ReplaceAll(identifier, "+", "%2B")
}

// GitignoreURL returns the address of the ignore file for identifier
func (f *HTTPFetcher) GitignoreURL(identifier string) string {
	return fmt.Sprintf("%s/%s.gitignore", f.baseURL, EncodeIdentifier(identifier))
}

// Fetch downloads the ignore file for identifier. Any transport failure or
// non-200 status is reported as a FetchFailure.
func (f *HTTPFetcher) Fetch(ctx context.Context, identifier string) (string, error) {
	url := f.GitignoreURL(identifier)
	output.Debug("fetching ignore file", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", scerrors.FetchFailure(identifier, url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", scerrors.FetchFailure(identifier, url, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", scerrors.FetchFailure(identifier, url, fmt.Errorf("%w (%s)", ErrNoIgnoreFile, resp.Status))
	default:
		return "", scerrors.FetchFailure(identifier, url, fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxIgnoreSize))
	if err != nil {
		return "", scerrors.FetchFailure(identifier, url, err)
	}

	return string(body), nil
}
