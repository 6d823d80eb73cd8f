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

import "context"

// Fetcher performs a single GET against a fully formed search URL.
// This interface allows for easy mocking in tests.
type Fetcher interface {
	// FetchPage returns the status and body of the response. A non-2xx status is
	// not an error; only transport failures are.
	FetchPage(ctx context.Context, url string) (*Response, error)
}
