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

// Package main implements the sirseer-prstats command-line interface.
// It walks the GitHub issue search for the open pull requests of one
// repository, page by page, and reports how many there are, the oldest one
// and the one with the longest description.
//
// Usage:
//
//	sirseer-prstats [owner/repo] [flags]
//
// Example:
//
//	sirseer-prstats rust-lang/rust --max-pages 5 --format json
//
// The report is written to stdout; logs go to stderr.
//
// Exit codes:
//   - 0: Success, including a search with no results
//   - 1: General or configuration error
//   - 3: Network error
package main
