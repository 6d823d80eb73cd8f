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

package output

import (
	"github.com/sirseerhq/sirseer-prstats/internal/metadata"
	"github.com/sirseerhq/sirseer-prstats/internal/stats"
)

// ReportWriter defines the interface for writing the statistics report.
// This abstraction lets the CLI pick a format without changing the pipeline.
type ReportWriter interface {
	// Start is called once before pagination begins.
	Start(repo string) error

	// Report writes the final summary. md may be nil.
	Report(summary stats.Summary, md *metadata.RunMetadata) error
}
