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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrNetworkFailure indicates a transport-level failure (DNS, refused
	// connection, timeout) while requesting a search page.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrInvalidRepository indicates the repository is not in owner/name form.
	// Maps to exit code 1.
	ErrInvalidRepository = errors.New("invalid repository")

	// ErrInvalidConfig indicates the loaded configuration failed validation.
	// Maps to exit code 1.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMalformedPage indicates a search page body could not be decoded.
	// The pagination driver swallows it unless configured to stop.
	ErrMalformedPage = errors.New("malformed search page")
)
