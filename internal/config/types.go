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

// Package config types define the configuration structures used throughout
// sirseer-prstats. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

import (
	"time"

	"github.com/sirseerhq/sirseer-prstats/internal/logger"
)

// Config represents the complete configuration for sirseer-prstats.
type Config struct {
	GitHub       GitHubConfig          `yaml:"github"`
	Query        QueryConfig           `yaml:"query"`
	Repositories map[string]RepoConfig `yaml:"repositories" validate:"-"`
	Log          logger.Config         `yaml:"log"`
	Output       OutputConfig          `yaml:"output"`
}

// GitHubConfig contains the search endpoint and request settings. A custom
// endpoint allows GitHub Enterprise or a local mock.
type GitHubConfig struct {
	SearchEndpoint string        `yaml:"search_endpoint" validate:"required,url"`
	UserAgent      string        `yaml:"user_agent" validate:"required"`
	Timeout        time.Duration `yaml:"timeout" validate:"gte=0"`
}

// QueryConfig describes which pull requests are searched and how the pages
// are walked.
type QueryConfig struct {
	Repository      string `yaml:"repository" validate:"required,repo"`
	PerPage         int    `yaml:"per_page" validate:"min=1,max=100"`
	Sort            string `yaml:"sort"`
	Order           string `yaml:"order" validate:"omitempty,oneof=asc desc"`
	StartPage       int    `yaml:"start_page" validate:"min=0"`
	MaxPages        int    `yaml:"max_pages" validate:"min=0"`
	OnMalformedPage string `yaml:"on_malformed_page" validate:"oneof=skip stop"`
}

// RepoConfig contains repository-specific overrides, for example a page cap
// for repositories with thousands of open pull requests.
type RepoConfig struct {
	PerPage  int `yaml:"per_page"`
	MaxPages int `yaml:"max_pages"`
}

// OutputConfig selects the report format.
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=text json"`
}

// DefaultConfig returns the configuration that reproduces the classic run:
// every open pull request of rust-lang/rust, 100 per page, oldest first.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			SearchEndpoint: "https://api.github.com/search/issues",
			UserAgent:      "AwesomeBuilder",
			Timeout:        30 * time.Second,
		},
		Query: QueryConfig{
			Repository:      "rust-lang/rust",
			PerPage:         100,
			Sort:            "created_at",
			Order:           "asc",
			StartPage:       0,
			MaxPages:        0,
			OnMalformedPage: "skip",
		},
		Repositories: make(map[string]RepoConfig),
		Log:          logger.DefaultConfig(),
		Output: OutputConfig{
			Format: "text",
		},
	}
}
