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

// Package output renders the statistics report. The text format reproduces the
// plain lines operators are used to; the JSON format emits a single document
// with the summary and the run metadata for scripts.
//
// Example usage:
//
//	w, err := output.NewWriter(os.Stdout, output.FormatText)
//	if err != nil {
//	    return err
//	}
//	_ = w.Start("rust-lang/rust")
//	// ... paginate ...
//	_ = w.Report(stats.Summarize("rust-lang/rust", records), md)
package output
