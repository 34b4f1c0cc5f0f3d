package lists

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/maksimkurb/dns-blackhole/src/internal/errors"
	"github.com/maksimkurb/dns-blackhole/src/internal/hashing"
	"github.com/maksimkurb/dns-blackhole/src/internal/utils"
)

// FetchResult is the body of a fetched list, already split into lines.
type FetchResult struct {
	URL      string
	Lines    []string
	Checksum string
	Size     int64
}

// ListFetcher retrieves a plaintext list. Failures are *errors.FetchError.
type ListFetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Fetcher fetches lists over HTTP(S) with plain GET requests.
type Fetcher struct {
	client *http.Client
}

var _ ListFetcher = (*Fetcher)(nil)

// NewFetcher creates a fetcher. A zero timeout leaves requests unbounded.
func NewFetcher(timeout time.Duration) *Fetcher {
	return NewFetcherWithClient(&http.Client{Timeout: timeout})
}

func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch downloads url and expects HTTP 200. Any other status, and any
// transport or read failure, is returned as *errors.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewTransportError(url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.NewTransportError(url, err)
	}
	defer utils.CloseOrWarn(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewStatusError(url, resp.StatusCode)
	}

	bodyProxy := hashing.NewMD5ReaderProxy(resp.Body)
	content, err := io.ReadAll(bodyProxy)
	if err != nil {
		return nil, errors.NewTransportError(url, err)
	}

	checksum, err := bodyProxy.GetChecksum()
	if err != nil {
		return nil, errors.NewInternalError("failed to calculate checksum", err)
	}

	return &FetchResult{
		URL:      url,
		Lines:    utils.SplitLines(string(content)),
		Checksum: checksum,
		Size:     bodyProxy.Size(),
	}, nil
}
