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
	"encoding/json"
	"fmt"

	relaierrors "github.com/sirseerhq/sirseer-prstats/internal/errors"
)

// searchPageWire mirrors SearchPage with items as a pointer so a missing or
// null items field can be told apart from an empty one.
type searchPageWire struct {
	TotalCount        int             `json:"total_count"`
	IncompleteResults bool            `json:"incomplete_results"`
	Items             *[]IssueSummary `json:"items"`
}

// DecodePage parses a response body as a SearchPage. The body must be an
// object with an items array; anything else, including a JSON error document
// or an item with a negative number, is wrapped with ErrMalformedPage. An empty
// items array is a valid page with zero items.
func DecodePage(body []byte) (*SearchPage, error) {
	var wire searchPageWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: %w", relaierrors.ErrMalformedPage, err)
	}
	if wire.Items == nil {
		return nil, fmt.Errorf("%w: missing items array", relaierrors.ErrMalformedPage)
	}
	for i, item := range *wire.Items {
		if item.Number < 0 {
			return nil, fmt.Errorf("%w: item %d has negative number %d",
				relaierrors.ErrMalformedPage, i, item.Number)
		}
	}
	return &SearchPage{
		TotalCount:        wire.TotalCount,
		IncompleteResults: wire.IncompleteResults,
		Items:             *wire.Items,
	}, nil
}

// ReduceAll projects every item of the page, preserving order.
func (p *SearchPage) ReduceAll() []PullRequest {
	if p == nil || len(p.Items) == 0 {
		return nil
	}
	prs := make([]PullRequest, 0, len(p.Items))
	for _, item := range p.Items {
		prs = append(prs, item.Reduce())
	}
	return prs
}
