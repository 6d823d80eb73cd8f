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
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultSearchEndpoint is GitHub's issue search path.
const DefaultSearchEndpoint = "https://api.github.com/search/issues"

// MaxPerPage is the largest page size the search API honors.
const MaxPerPage = 100

// SearchQuery describes the open pull request search for one repository.
type SearchQuery struct {
	// Repository in owner/name form.
	Repository string

	// PerPage is the page size, 1..MaxPerPage.
	PerPage int

	// Sort and Order are passed through as the sort and order parameters.
	Sort  string
	Order string
}

// DefaultSearchQuery returns the query for all open pull requests of repo,
// oldest first, 100 per page.
func DefaultSearchQuery(repo string) SearchQuery {
	return SearchQuery{
		Repository: repo,
		PerPage:    MaxPerPage,
		Sort:       "created_at",
		Order:      "asc",
	}
}

// buildSearchQuery constructs the q parameter, e.g.
// "repo:rust-lang/rust is:open type:pr".
func buildSearchQuery(repo string) string {
	parts := []string{
		fmt.Sprintf("repo:%s", repo),
		"is:open",
		"type:pr",
	}
	return strings.Join(parts, " ")
}

// BaseURL renders the search URL without a page number. The result always
// ends in "page=" so a page index can be appended directly.
func (q SearchQuery) BaseURL(endpoint string) string {
	if endpoint == "" {
		endpoint = DefaultSearchEndpoint
	}

	// url.Values.Encode sorts keys, so the parameter order is built by hand to
	// keep page last.
	params := []struct{ key, value string }{
		{"q", buildSearchQuery(q.Repository)},
		{"sort", q.Sort},
		{"order", q.Order},
		{"per_page", strconv.Itoa(q.PerPage)},
	}

	var b strings.Builder
	b.WriteString(endpoint)
	if strings.Contains(endpoint, "?") {
		b.WriteByte('&')
	} else {
		b.WriteByte('?')
	}
	for _, p := range params {
		if p.value == "" {
			continue
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
		b.WriteByte('&')
	}
	b.WriteString("page=")
	return b.String()
}

// PageURL returns the search URL for the given page index.
func (q SearchQuery) PageURL(endpoint string, page int) string {
	return q.BaseURL(endpoint) + strconv.Itoa(page)
}
