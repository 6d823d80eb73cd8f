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

// Package stats reduces a finished accumulator of pull requests to the figures
// the report prints. Each reduction is a separate linear scan so it can be
// checked against a literal list.
package stats

import (
	"github.com/sirseerhq/sirseer-prstats/internal/github"
)

// Summary is the outcome of reducing one run.
type Summary struct {
	Repository string              `json:"repository"`
	Count      int                 `json:"count"`
	Oldest     *github.PullRequest `json:"oldest,omitempty"`
	Longest    *github.PullRequest `json:"longest_body,omitempty"`
}

// Empty reports whether the run produced no pull requests.
func (s Summary) Empty() bool {
	return s.Count == 0
}

// Oldest returns the last record. The search is sorted by creation time
// ascending, so the last record is the one the API ordered last; no dates are
// compared here.
func Oldest(records []github.PullRequest) (github.PullRequest, bool) {
	if len(records) == 0 {
		return github.PullRequest{}, false
	}
	return records[len(records)-1], true
}

// Longest returns the record with the largest BodyLength. Ties go to the
// earliest record.
func Longest(records []github.PullRequest) (github.PullRequest, bool) {
	if len(records) == 0 {
		return github.PullRequest{}, false
	}
	best := 0
	for i := 1; i < len(records); i++ {
		if records[i].BodyLength > records[best].BodyLength {
			best = i
		}
	}
	return records[best], true
}

// Summarize runs both reductions over records.
func Summarize(repo string, records []github.PullRequest) Summary {
	s := Summary{Repository: repo, Count: len(records)}
	if oldest, ok := Oldest(records); ok {
		s.Oldest = &oldest
	}
	if longest, ok := Longest(records); ok {
		s.Longest = &longest
	}
	return s
}
