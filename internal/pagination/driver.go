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

package pagination

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sirseerhq/sirseer-prstats/internal/giterror"
	"github.com/sirseerhq/sirseer-prstats/internal/github"
	"github.com/sirseerhq/sirseer-prstats/internal/metadata"
)

// MalformedPolicy decides what a page that fails to decode does to the loop.
type MalformedPolicy string

const (
	// MalformedSkip counts the page as zero items and keeps paginating.
	MalformedSkip MalformedPolicy = "skip"

	// MalformedStop ends pagination at the malformed page.
	MalformedStop MalformedPolicy = "stop"
)

// StopReason names the condition that ended pagination.
type StopReason string

const (
	StopExhausted StopReason = "exhausted"
	StopStatus    StopReason = "status"
	StopMalformed StopReason = "malformed"
	StopMaxPages  StopReason = "max_pages"
)

// Options configures a Driver.
type Options struct {
	// Endpoint is the search URL the query is appended to.
	Endpoint string

	// Query selects the repository and page shape.
	Query github.SearchQuery

	// StartPage is the first page index requested.
	StartPage int

	// MaxPages caps the number of requests. Zero means no cap.
	MaxPages int

	// OnMalformed defaults to MalformedSkip.
	OnMalformed MalformedPolicy
}

// Stop describes where and why pagination ended.
type Stop struct {
	Reason StopReason
	// Page is the index of the page that triggered the stop.
	Page int
	// StatusCode and Class are set only for StopStatus.
	StatusCode int
	Class      giterror.StatusClass
}

// Result is the finished accumulator and how it was produced.
type Result struct {
	// Records holds one entry per item of every decoded page, in page order
	// then item order.
	Records []github.PullRequest

	// PagesFetched counts requests that got an HTTP answer.
	PagesFetched int

	Stop Stop
}

// Driver runs the fetch, decode, reduce and accumulate loop.
type Driver struct {
	fetcher   github.Fetcher
	opts      Options
	log       zerolog.Logger
	tracker   *metadata.Tracker
	inspector giterror.Inspector
}

// NewDriver creates a driver. A nil tracker gets a fresh one.
func NewDriver(fetcher github.Fetcher, opts Options, logger zerolog.Logger, tracker *metadata.Tracker) *Driver {
	if opts.OnMalformed == "" {
		opts.OnMalformed = MalformedSkip
	}
	if tracker == nil {
		tracker = metadata.New()
	}
	return &Driver{
		fetcher:   fetcher,
		opts:      opts,
		log:       logger.With().Str("component", "pagination").Str("repo", opts.Query.Repository).Logger(),
		tracker:   tracker,
		inspector: giterror.NewInspector(),
	}
}

// Collect paginates until a stop condition is met and returns the accumulated
// records. It returns an error only when a request fails at the transport
// level; the records gathered so far are discarded in that case.
func (d *Driver) Collect(ctx context.Context) (*Result, error) {
	var (
		base   = d.opts.Query.BaseURL(d.opts.Endpoint)
		result = &Result{}
		page   = d.opts.StartPage
	)

	for {
		if d.opts.MaxPages > 0 && result.PagesFetched >= d.opts.MaxPages {
			d.stop(result, Stop{Reason: StopMaxPages, Page: page})
			break
		}

		pageURL := fmt.Sprintf("%s%d", base, page)
		resp, err := d.fetcher.FetchPage(ctx, pageURL)
		if err != nil {
			d.log.Error().Err(err).Int("page", page).
				Bool("network", d.inspector.IsNetworkError(err)).
				Bool("timeout", d.inspector.IsTimeout(err)).
				Msg("page request failed")
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}
		result.PagesFetched++
		d.tracker.IncrementAPICall()

		if !resp.OK() {
			class := d.inspector.ClassifyStatus(resp.StatusCode)
			d.log.Warn().Int("page", page).Int("status", resp.StatusCode).
				Str("class", string(class)).
				Msg("non-success status, treating as end of results")
			d.stop(result, Stop{Reason: StopStatus, Page: page, StatusCode: resp.StatusCode, Class: class})
			break
		}

		searchPage, err := github.DecodePage(resp.Body)
		if err != nil {
			d.tracker.RecordMalformed()
			if d.opts.OnMalformed == MalformedStop {
				d.log.Warn().Err(err).Int("page", page).Msg("malformed page, stopping")
				d.stop(result, Stop{Reason: StopMalformed, Page: page})
				break
			}
			d.log.Warn().Err(err).Int("page", page).Int("bytes", len(resp.Body)).
				Msg("malformed page skipped")
			page++
			continue
		}

		d.tracker.RecordPage(len(searchPage.Items))
		if len(searchPage.Items) == 0 {
			d.stop(result, Stop{Reason: StopExhausted, Page: page})
			break
		}

		result.Records = append(result.Records, searchPage.ReduceAll()...)
		d.log.Debug().Int("page", page).Int("items", len(searchPage.Items)).
			Int("total", len(result.Records)).Msg("page accumulated")
		page++
	}

	return result, nil
}

func (d *Driver) stop(result *Result, stop Stop) {
	result.Stop = stop
	d.tracker.RecordStop(string(stop.Reason), stop.Page, stop.StatusCode)
	d.log.Debug().Str("reason", string(stop.Reason)).Int("page", stop.Page).
		Int("records", len(result.Records)).Msg("pagination finished")
}
