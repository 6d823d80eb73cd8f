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

// Package github talks to GitHub's issue search REST API. It builds paginated
// search URLs, performs the raw GET for one page and decodes the response into
// pull request summaries.
//
// The package includes:
//   - A Fetcher interface returning the raw status and body of one page
//   - An HTTP implementation that sets the User-Agent GitHub requires
//   - A SearchQuery type that renders the search URL for a page index
//   - DecodePage, which parses a page body into a SearchPage
//   - ScriptedFetcher, a Fetcher that replays canned responses for tests
//
// Basic usage:
//
//	fetcher := github.NewHTTPFetcher(github.HTTPOptions{UserAgent: "AwesomeBuilder"})
//	query := github.DefaultSearchQuery("rust-lang/rust")
//	resp, err := fetcher.FetchPage(ctx, query.PageURL(github.DefaultSearchEndpoint, 0))
//	if err != nil {
//	    // Transport failure
//	}
//	page, err := github.DecodePage(resp.Body)
package github
