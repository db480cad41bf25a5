/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bennypowers.dev/fptokens/config"
	"bennypowers.dev/fptokens/internal/logger"
	"bennypowers.dev/fptokens/internal/version"
)

const (
	// DefaultTimeout is the maximum time to wait for a remote config.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize is the maximum allowed config size (1 MB).
	DefaultMaxSize int64 = 1024 * 1024
)

// ErrRemoteDisabled is returned for a remote config when no Fetcher is set.
var ErrRemoteDisabled = errors.New("remote config requires a fetcher")

// Fetcher fetches content from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches content over HTTP with size limiting.
type HTTPFetcher struct {
	maxSize int64
	client  *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher with the given maximum response size.
func NewHTTPFetcher(maxSize int64) *HTTPFetcher {
	return &HTTPFetcher{
		maxSize: maxSize,
		client:  &http.Client{},
	}
}

// Fetch fetches content from the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", "fptokens/"+version.Get())
	req.Header.Set("Accept", "application/yaml, application/json;q=0.9, */*;q=0.1")

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("timeout fetching %s: %w", rawURL, err)
		}
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", rawURL, resp.Status)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", rawURL, err)
	}
	if int64(len(content)) > f.maxSize {
		return nil, fmt.Errorf("response from %s exceeds maximum size of %d bytes", rawURL, f.maxSize)
	}
	return content, nil
}

// IsRemote reports whether a config location is an http(s) URL.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "https://") || strings.HasPrefix(location, "http://")
}

// fetchConfig downloads and parses a remote config. The format follows the
// extension of the URL path; a relative root is resolved against root.
func fetchConfig(ctx context.Context, rawURL, root string, fetcher Fetcher, timeout time.Duration) (*config.Config, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("%w: %s", ErrRemoteDisabled, rawURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid config URL %s: %w", rawURL, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	data, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	logger.Debug("fetched %d bytes of config from %s", len(data), u.Host)
	return config.Parse(data, u.Path, root)
}
