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
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	relaierrors "github.com/sirseerhq/sirseer-prstats/internal/errors"
)

// ScriptedResponse is what ScriptedFetcher answers for one page index.
type ScriptedResponse struct {
	StatusCode int
	Body       []byte
	Err        error
}

// ScriptedFetcher is a Fetcher that replays canned responses keyed by the page
// query parameter. Pages without a script answer with an empty items page.
type ScriptedFetcher struct {
	mu    sync.Mutex
	pages map[int]ScriptedResponse

	// Track calls for verification
	CallCount int
	URLs      []string
	Pages     []int
}

// ScriptedFetcherOption configures a ScriptedFetcher.
type ScriptedFetcherOption func(*ScriptedFetcher)

// NewScriptedFetcher creates a fetcher with the given scripts applied.
func NewScriptedFetcher(opts ...ScriptedFetcherOption) *ScriptedFetcher {
	f := &ScriptedFetcher{pages: make(map[int]ScriptedResponse)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithItemsPage makes page answer 200 with the given items.
func WithItemsPage(page int, items ...IssueSummary) ScriptedFetcherOption {
	return func(f *ScriptedFetcher) {
		f.pages[page] = ScriptedResponse{StatusCode: http.StatusOK, Body: EncodeItems(items)}
	}
}

// WithStatusPage makes page answer with a bare status and body.
func WithStatusPage(page, status int, body string) ScriptedFetcherOption {
	return func(f *ScriptedFetcher) {
		f.pages[page] = ScriptedResponse{StatusCode: status, Body: []byte(body)}
	}
}

// WithRawPage makes page answer 200 with an arbitrary body.
func WithRawPage(page int, body string) ScriptedFetcherOption {
	return WithStatusPage(page, http.StatusOK, body)
}

// WithTransportError makes page fail as if the network were unreachable.
func WithTransportError(page int, err error) ScriptedFetcherOption {
	return func(f *ScriptedFetcher) {
		if err == nil {
			err = fmt.Errorf("dial tcp: connection refused: %w", relaierrors.ErrNetworkFailure)
		}
		f.pages[page] = ScriptedResponse{Err: err}
	}
}

// FetchPage implements the Fetcher interface.
func (f *ScriptedFetcher) FetchPage(ctx context.Context, rawURL string) (*Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	page, err := pageIndex(rawURL)
	if err != nil {
		return nil, err
	}

	f.CallCount++
	f.URLs = append(f.URLs, rawURL)
	f.Pages = append(f.Pages, page)

	// Check for context cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	script, ok := f.pages[page]
	if !ok {
		return &Response{StatusCode: http.StatusOK, Body: EncodeItems(nil)}, nil
	}
	if script.Err != nil {
		return nil, script.Err
	}
	return &Response{StatusCode: script.StatusCode, Body: script.Body}, nil
}

// pageIndex extracts the page parameter from a search URL.
func pageIndex(rawURL string) (int, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0, fmt.Errorf("scripted fetcher: bad url %q: %w", rawURL, err)
	}
	page, err := strconv.Atoi(u.Query().Get("page"))
	if err != nil {
		return 0, fmt.Errorf("scripted fetcher: no page index in %q: %w", rawURL, err)
	}
	return page, nil
}

// EncodeItems renders items as a search response body.
func EncodeItems(items []IssueSummary) []byte {
	if items == nil {
		items = []IssueSummary{}
	}
	data, err := json.Marshal(SearchPage{TotalCount: len(items), Items: items})
	if err != nil {
		// IssueSummary holds only strings and ints
		panic(err)
	}
	return data
}
