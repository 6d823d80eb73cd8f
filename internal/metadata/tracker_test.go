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

package metadata

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_Counters(t *testing.T) {
	tracker := New()

	tracker.IncrementAPICall()
	tracker.RecordPage(100)
	tracker.IncrementAPICall()
	tracker.RecordMalformed()
	tracker.IncrementAPICall()
	tracker.RecordPage(42)
	tracker.IncrementAPICall()
	tracker.RecordPage(0)
	tracker.RecordStop("exhausted", 3, 0)

	md := tracker.GenerateMetadata("test", RunParams{Repository: "o/r"})

	assert.Equal(t, 4, md.Results.APICallCount)
	assert.Equal(t, 3, md.Results.PagesDecoded)
	assert.Equal(t, 1, md.Results.PagesMalformed)
	assert.Equal(t, 142, md.Results.Records)
	assert.Equal(t, "exhausted", md.Results.StopReason)
	assert.Equal(t, 3, md.Results.StopPage)
	assert.Zero(t, md.Results.StopStatus)
	assert.Equal(t, 4, tracker.APICallCount())
}

func TestTracker_GenerateMetadata(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := start
	tracker := newWithClock(func() time.Time { return clock })

	tracker.IncrementAPICall()
	tracker.RecordStop("status", 0, 403)
	clock = start.Add(1500 * time.Millisecond)

	params := RunParams{
		Repository:      "rust-lang/rust",
		Endpoint:        "https://api.github.com/search/issues",
		PerPage:         100,
		MalformedPolicy: "skip",
	}
	md := tracker.GenerateMetadata("v1.2.3", params)

	assert.Equal(t, "v1.2.3", md.ToolVersion)
	assert.Equal(t, params, md.Parameters)
	assert.Equal(t, "1.5s", md.Results.Duration)
	assert.Equal(t, start, md.Results.StartedAt)
	assert.Equal(t, clock, md.Results.CompletedAt)
	assert.Equal(t, 403, md.Results.StopStatus)

	_, err := uuid.Parse(md.RunID)
	require.NoError(t, err)
	assert.Equal(t, tracker.RunID(), md.RunID)
}

func TestTracker_UniqueRunIDs(t *testing.T) {
	assert.NotEqual(t, New().RunID(), New().RunID())
}

func TestRunMetadata_JSONFieldNames(t *testing.T) {
	md := New().GenerateMetadata("dev", RunParams{Repository: "o/r"})

	data, err := json.Marshal(md)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "run_id")
	assert.Contains(t, decoded, "parameters")

	results, ok := decoded["results"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, results, "api_calls_made")
	assert.Contains(t, results, "stop_reason")
	assert.NotContains(t, results, "stop_status")
}
