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
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirseerhq/sirseer-prstats/internal/metadata"
	"github.com/sirseerhq/sirseer-prstats/internal/stats"
)

// Format selects a ReportWriter implementation.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// NoResultsMessage is printed when a run accumulates nothing.
const NoResultsMessage = "The query didn't turn any results"

// NewWriter returns the ReportWriter for format writing to w.
func NewWriter(w io.Writer, format Format) (ReportWriter, error) {
	switch format {
	case FormatText, "":
		return &TextWriter{output: w}, nil
	case FormatJSON:
		return &JSONWriter{output: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text or json)", format)
	}
}

// TextWriter prints the report as plain lines.
type TextWriter struct {
	output io.Writer
}

// Start prints the startup line naming the repository.
func (w *TextWriter) Start(repo string) error {
	if _, err := fmt.Fprintf(w.output, "Fetching data from Github for %s..\n", repo); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Report prints the count and the two selected pull requests, or the no
// results line. Metadata is not part of the text report.
func (w *TextWriter) Report(summary stats.Summary, _ *metadata.RunMetadata) error {
	if summary.Empty() || summary.Oldest == nil || summary.Longest == nil {
		if _, err := fmt.Fprintln(w.output, NoResultsMessage); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}

	lines := []string{
		fmt.Sprintf("Number of open PRs: %d", summary.Count),
		fmt.Sprintf("Oldest: %s#%d: %s", summary.Repository, summary.Oldest.Number, summary.Oldest.Title),
		fmt.Sprintf("Longest body: %s#%d: %s", summary.Repository, summary.Longest.Number, summary.Longest.Title),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w.output, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// JSONWriter prints one indented JSON document.
type JSONWriter struct {
	output io.Writer
}

// jsonReport is the document written by JSONWriter.
type jsonReport struct {
	stats.Summary
	Metadata *metadata.RunMetadata `json:"metadata,omitempty"`
}

// Start is a no-op; the document is written in one piece by Report.
func (w *JSONWriter) Start(string) error {
	return nil
}

// Report encodes the summary and metadata.
func (w *JSONWriter) Report(summary stats.Summary, md *metadata.RunMetadata) error {
	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(jsonReport{Summary: summary, Metadata: md}); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
