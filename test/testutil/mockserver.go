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

// Package testutil provides common test helpers for sirseer-prstats
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirseerhq/sirseer-prstats/internal/github"
)

// emptyPage is what GitHub answers once the results are exhausted.
const emptyPage = `{"total_count":0,"incomplete_results":false,"items":[]}`

// PageResponse is the canned answer for one page index.
type PageResponse struct {
	Status int
	Body   string
	// Delay holds the response back, for timeout tests.
	Delay time.Duration
}

// ItemsPage answers 200 with a search page holding items.
func ItemsPage(items ...github.IssueSummary) PageResponse {
	return PageResponse{Status: http.StatusOK, Body: string(github.EncodeItems(items))}
}

// StatusPage answers with the given status and body.
func StatusPage(status int, body string) PageResponse {
	return PageResponse{Status: status, Body: body}
}

// RawPage answers 200 with body as-is, typically something that is not a
// search page.
func RawPage(body string) PageResponse {
	return PageResponse{Status: http.StatusOK, Body: body}
}

// RecordedRequest is what the server saw for one request.
type RecordedRequest struct {
	Page      int
	Query     url.Values
	UserAgent string
	Accept    string
}

// MockServer is an httptest server that serves the issue search endpoint
// from a table of page responses. Pages missing from the table get an empty
// result set.
type MockServer struct {
	*httptest.Server
	requestCount atomic.Int32

	mu       sync.Mutex
	pages    map[int]PageResponse
	fallback *PageResponse
	requests []RecordedRequest
}

// NewMockServer starts a search server answering pages from the table. The
// server is closed when the test ends.
func NewMockServer(t *testing.T, pages map[int]PageResponse) *MockServer {
	t.Helper()
	m := &MockServer{pages: pages}
	m.Server = httptest.NewServer(http.HandlerFunc(m.serveSearch))
	t.Cleanup(m.Close)
	return m
}

// NewPagedServer serves perPage-sized pages of the given issues starting at
// page index start, followed by empty pages.
func NewPagedServer(t *testing.T, start, perPage int, issues []github.IssueSummary) *MockServer {
	t.Helper()
	pages := make(map[int]PageResponse)
	for i := 0; i < len(issues); i += perPage {
		end := min(i+perPage, len(issues))
		pages[start+i/perPage] = ItemsPage(issues[i:end]...)
	}
	return NewMockServer(t, pages)
}

// NewErrorServer answers every page with statusCode.
func NewErrorServer(t *testing.T, statusCode int) *MockServer {
	t.Helper()
	m := NewMockServer(t, nil)
	m.mu.Lock()
	m.fallback = &PageResponse{
		Status: statusCode,
		Body:   fmt.Sprintf(`{"message": "%s"}`, http.StatusText(statusCode)),
	}
	m.mu.Unlock()
	return m
}

func (m *MockServer) serveSearch(w http.ResponseWriter, r *http.Request) {
	m.requestCount.Add(1)

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		http.Error(w, `{"message": "Validation Failed"}`, http.StatusUnprocessableEntity)
		return
	}

	m.mu.Lock()
	m.requests = append(m.requests, RecordedRequest{
		Page:      page,
		Query:     r.URL.Query(),
		UserAgent: r.Header.Get("User-Agent"),
		Accept:    r.Header.Get("Accept"),
	})
	resp, ok := m.pages[page]
	if !ok && m.fallback != nil {
		resp, ok = *m.fallback, true
	}
	m.mu.Unlock()

	if !ok {
		resp = PageResponse{Status: http.StatusOK, Body: emptyPage}
	}
	if resp.Delay > 0 {
		select {
		case <-time.After(resp.Delay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.Status)
	_, _ = w.Write([]byte(resp.Body))
}

// Endpoint returns the search URL to configure the fetcher with.
func (m *MockServer) Endpoint() string {
	return m.URL + "/search/issues"
}

// RequestCount returns the number of requests received.
func (m *MockServer) RequestCount() int {
	return int(m.requestCount.Load())
}

// Requests returns a copy of the recorded requests in arrival order.
func (m *MockServer) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RecordedRequest(nil), m.requests...)
}

// RequestedPages returns the page indices requested, in order.
func (m *MockServer) RequestedPages() []int {
	reqs := m.Requests()
	pages := make([]int, 0, len(reqs))
	for _, r := range reqs {
		pages = append(pages, r.Page)
	}
	return pages
}
