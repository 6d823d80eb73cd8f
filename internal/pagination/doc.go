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

// Package pagination drives the page-by-page search: it requests page indices
// in order, decodes each answer, reduces its items and appends them to one
// ordered accumulator until the API signals the end of the data.
//
// Pagination ends when:
//   - a page answers with a non-2xx status (rate limits and errors included)
//   - a page decodes to zero items, which is how GitHub signals exhaustion
//   - a page fails to decode and the policy is MalformedStop
//   - the optional MaxPages cap is reached
//
// A transport failure aborts the run and is returned as an error.
package pagination
