// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	relaierrors "github.com/sirseerhq/sirseer-prstats/internal/errors"
)

// maxPageBytes bounds how much of a single response body is read. A full page
// of 100 issues with 65536-byte bodies stays well under it.
const maxPageBytes = 64 << 20

// HTTPOptions configures an HTTPFetcher.
type HTTPOptions struct {
	// UserAgent is sent on every request. Defaults to DefaultUserAgent.
	UserAgent string

	// Timeout bounds each request including reading the body. Zero means no
	// client-side timeout.
	Timeout time.Duration

	// Transport overrides the base transport; nil uses http.DefaultTransport.
	Transport http.RoundTripper
}

// HTTPFetcher implements Fetcher with a plain net/http client.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher whose client follows redirects the default
// way and does not retry.
func NewHTTPFetcher(opts HTTPOptions) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Transport: newUserAgentTransport(opts.UserAgent, opts.Transport),
			Timeout:   opts.Timeout,
		},
	}
}

// FetchPage performs the GET and reads the whole body. Any failure to reach the
// server or to read its answer is wrapped with ErrNetworkFailure.
func (f *HTTPFetcher) FetchPage(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w: %w", url, err, relaierrors.ErrNetworkFailure)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w: %w", url, err, relaierrors.ErrNetworkFailure)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
