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

// IssueSummary is one pull request as returned in the items of a search page.
// CreatedAt is kept as the API's text and never parsed.
type IssueSummary struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	URL       string `json:"url"`
	Body      string `json:"body"`
}

// SearchPage is the decoded body of one search response.
type SearchPage struct {
	TotalCount        int            `json:"total_count"`
	IncompleteResults bool           `json:"incomplete_results"`
	Items             []IssueSummary `json:"items"`
}

// PullRequest is the retained form of an IssueSummary. The body is replaced by
// its length so an accumulated run never holds full PR bodies.
type PullRequest struct {
	Number     int    `json:"number"`
	Title      string `json:"title"`
	CreatedAt  string `json:"created_at"`
	URL        string `json:"url"`
	BodyLength int    `json:"body_length"`
}

// Reduce projects the summary onto a PullRequest. BodyLength counts bytes of
// the UTF-8 body, which is how the API encodes text.
func (s IssueSummary) Reduce() PullRequest {
	return PullRequest{
		Number:     s.Number,
		Title:      s.Title,
		CreatedAt:  s.CreatedAt,
		URL:        s.URL,
		BodyLength: len(s.Body),
	}
}

// Response is the raw outcome of one page request.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}
