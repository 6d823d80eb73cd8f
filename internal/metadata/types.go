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

// Package metadata types define the structures used for describing a single
// statistics run: what was asked for, how pagination went and why it stopped.
package metadata

import (
	"time"
)

// RunMetadata is the complete bookkeeping record for one run.
type RunMetadata struct {
	ToolVersion string     `json:"tool_version"`
	RunID       string     `json:"run_id"`
	Parameters  RunParams  `json:"parameters"`
	Results     RunResults `json:"results"`
}

// RunParams captures the input parameters of a run.
type RunParams struct {
	Repository      string `json:"repository"`
	Endpoint        string `json:"endpoint"`
	PerPage         int    `json:"per_page"`
	StartPage       int    `json:"start_page"`
	MaxPages        int    `json:"max_pages,omitempty"`
	MalformedPolicy string `json:"on_malformed_page"`
}

// RunResults contains the counters gathered while paginating.
type RunResults struct {
	Records        int       `json:"records"`
	APICallCount   int       `json:"api_calls_made"`
	PagesDecoded   int       `json:"pages_decoded"`
	PagesMalformed int       `json:"pages_malformed"`
	StopReason     string    `json:"stop_reason"`
	StopPage       int       `json:"stop_page"`
	StopStatus     int       `json:"stop_status,omitempty"`
	Duration       string    `json:"duration"`
	StartedAt      time.Time `json:"started_at"`
	CompletedAt    time.Time `json:"completed_at"`
}
