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

// Package metadata tracks what happened during one pagination run. It counts
// API calls and page outcomes, remembers where and why pagination stopped, and
// produces a RunMetadata record that the CLI logs and can print as JSON.
package metadata

import (
	"time"

	"github.com/google/uuid"
)

// Tracker collects statistics during a run. Create one at the start of a run
// and feed it page outcomes; it is not safe for concurrent use.
type Tracker struct {
	runID          string
	startTime      time.Time
	now            func() time.Time
	apiCallCount   int
	pagesDecoded   int
	pagesMalformed int
	records        int
	stopReason     string
	stopPage       int
	stopStatus     int
}

// New creates a new tracker stamped with a fresh run ID and the current time.
func New() *Tracker {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Tracker {
	return &Tracker{
		runID:     uuid.NewString(),
		startTime: now(),
		now:       now,
	}
}

// RunID returns the identifier of this run.
func (t *Tracker) RunID() string {
	return t.runID
}

// IncrementAPICall records that a page request was answered.
func (t *Tracker) IncrementAPICall() {
	t.apiCallCount++
}

// RecordPage records a successfully decoded page holding items records.
func (t *Tracker) RecordPage(items int) {
	t.pagesDecoded++
	t.records += items
}

// RecordMalformed records a page whose body could not be decoded.
func (t *Tracker) RecordMalformed() {
	t.pagesMalformed++
}

// RecordStop remembers why pagination ended. status is zero unless the stop
// was caused by an HTTP status.
func (t *Tracker) RecordStop(reason string, page, status int) {
	t.stopReason = reason
	t.stopPage = page
	t.stopStatus = status
}

// APICallCount returns the number of answered page requests so far.
func (t *Tracker) APICallCount() int {
	return t.apiCallCount
}

// GenerateMetadata creates the RunMetadata record for the run. Call it once
// pagination has finished.
func (t *Tracker) GenerateMetadata(toolVersion string, params RunParams) *RunMetadata {
	completedAt := t.now()
	duration := completedAt.Sub(t.startTime)

	return &RunMetadata{
		ToolVersion: toolVersion,
		RunID:       t.runID,
		Parameters:  params,
		Results: RunResults{
			Records:        t.records,
			APICallCount:   t.apiCallCount,
			PagesDecoded:   t.pagesDecoded,
			PagesMalformed: t.pagesMalformed,
			StopReason:     t.stopReason,
			StopPage:       t.stopPage,
			StopStatus:     t.stopStatus,
			Duration:       duration.Round(time.Millisecond).String(),
			StartedAt:      t.startTime,
			CompletedAt:    completedAt,
		},
	}
}
