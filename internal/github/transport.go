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
	"net/http"
)

// DefaultUserAgent identifies the client when no other value is configured.
// GitHub rejects API requests that carry no User-Agent.
const DefaultUserAgent = "AwesomeBuilder"

// userAgentTransport stamps the identifying headers on every request before
// handing it to the base transport. It never retries.
type userAgentTransport struct {
	userAgent string
	base      http.RoundTripper
}

func newUserAgentTransport(userAgent string, base http.RoundTripper) http.RoundTripper {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if base == nil {
		base = http.DefaultTransport
	}
	return &userAgentTransport{
		userAgent: userAgent,
		base:      base,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/vnd.github+json")
	}
	return t.base.RoundTrip(req)
}
