// Package roster maintains the in-memory snapshot of available experts,
// fed from a spreadsheet CSV export and refreshed on a staleness window.
package roster

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/boardroom-ai/boardroom/internal/domain/expert"
)

// Source fetches and parses the CSV feed into expert records.
type Source struct {
	url    string
	client *http.Client
}

// NewSource creates a Source for the given CSV export URL.
func NewSource(url string, opts ...SourceOption) (*Source, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}
	s := &Source{
		url:    url,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Fetch downloads the feed and returns the retained records. A non-2xx
// response or transport failure is reported as a fetch error; the caller
// (the cache) decides what to do with the previous snapshot.
func (s *Source) Fetch(ctx context.Context) ([]expert.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	return expert.ParseCSV(string(body)), nil
}
