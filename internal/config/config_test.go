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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	relaierrors "github.com/sirseerhq/sirseer-prstats/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://api.github.com/search/issues", cfg.GitHub.SearchEndpoint)
	assert.Equal(t, "AwesomeBuilder", cfg.GitHub.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.GitHub.Timeout)

	assert.Equal(t, "rust-lang/rust", cfg.Query.Repository)
	assert.Equal(t, 100, cfg.Query.PerPage)
	assert.Equal(t, "created_at", cfg.Query.Sort)
	assert.Equal(t, "asc", cfg.Query.Order)
	assert.Equal(t, 0, cfg.Query.StartPage)
	assert.Equal(t, 0, cfg.Query.MaxPages)
	assert.Equal(t, "skip", cfg.Query.OnMalformedPage)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Output.Format)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	configContent := `
github:
  search_endpoint: https://github.enterprise.com/api/v3/search/issues
  user_agent: corp-prstats
  timeout: 5s

query:
  repository: torvalds/linux
  per_page: 50
  order: desc
  start_page: 1
  on_malformed_page: stop

repositories:
  "torvalds/linux":
    max_pages: 20

log:
  level: debug
  format: json

output:
  format: json
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "https://github.enterprise.com/api/v3/search/issues", cfg.GitHub.SearchEndpoint)
	assert.Equal(t, "corp-prstats", cfg.GitHub.UserAgent)
	assert.Equal(t, 5*time.Second, cfg.GitHub.Timeout)

	assert.Equal(t, "torvalds/linux", cfg.Query.Repository)
	assert.Equal(t, 50, cfg.Query.PerPage)
	assert.Equal(t, "created_at", cfg.Query.Sort, "unset keys keep defaults")
	assert.Equal(t, "desc", cfg.Query.Order)
	assert.Equal(t, 1, cfg.Query.StartPage)
	assert.Equal(t, 20, cfg.Query.MaxPages, "repository override applied")
	assert.Equal(t, "stop", cfg.Query.OnMalformedPage)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "json", cfg.Output.Format)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("query: [unclosed"), 0o644))

	_, err := LoadConfig(configPath)
	assert.Error(t, err)
}

func TestLoadConfig_DefaultLocation(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	content := "query:\n  repository: golang/go\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sirseer-prstats.yaml"), []byte(content), 0o644))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "golang/go", cfg.Query.Repository)
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Query, cfg.Query)
}

func TestEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GITHUB_SEARCH_ENDPOINT", "http://localhost:9999/search/issues")
	t.Setenv("PRSTATS_REPOSITORY", "kubernetes/kubernetes")
	t.Setenv("PRSTATS_PER_PAGE", "30")
	t.Setenv("PRSTATS_MAX_PAGES", "4")
	t.Setenv("PRSTATS_LOG_LEVEL", " WARN ")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/search/issues", cfg.GitHub.SearchEndpoint)
	assert.Equal(t, "kubernetes/kubernetes", cfg.Query.Repository)
	assert.Equal(t, 30, cfg.Query.PerPage)
	assert.Equal(t, 4, cfg.Query.MaxPages)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestEnvOverrides_MaxPagesZeroLiftsFileCap(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "prstats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("query:\n  max_pages: 5\n"), 0o600))
	t.Setenv("PRSTATS_MAX_PAGES", "0")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Query.MaxPages)
}

func TestEnvOverrides_InvalidNumbers(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{"per page not a number", "PRSTATS_PER_PAGE", "lots"},
		{"per page zero", "PRSTATS_PER_PAGE", "0"},
		{"per page trailing text", "PRSTATS_PER_PAGE", "30abc"},
		{"max pages negative", "PRSTATS_MAX_PAGES", "-3"},
		{"max pages not a number", "PRSTATS_MAX_PAGES", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv("HOME", t.TempDir())
			t.Setenv(tt.env, tt.value)

			_, err := LoadConfig("")
			require.Error(t, err)
			assert.ErrorIs(t, err, relaierrors.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.env)
		})
	}
}

func TestApplyRepository(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Repositories["golang/go"] = RepoConfig{PerPage: 40, MaxPages: 3}

	cfg.ApplyRepository("golang/go")

	assert.Equal(t, "golang/go", cfg.Query.Repository)
	assert.Equal(t, 40, cfg.Query.PerPage)
	assert.Equal(t, 3, cfg.Query.MaxPages)
}

func TestParseRepository(t *testing.T) {
	tests := []struct {
		input     string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{input: "rust-lang/rust", wantOwner: "rust-lang", wantRepo: "rust"},
		{input: "kubernetes/kubernetes", wantOwner: "kubernetes", wantRepo: "kubernetes"},
		{input: "invalid", wantErr: true},
		{input: "too/many/slashes", wantErr: true},
		{input: "/repo", wantErr: true},
		{input: "owner/", wantErr: true},
		{input: "owner/re po", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			owner, repo, err := ParseRepository(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, relaierrors.ErrInvalidRepository)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "valid default config",
			modify: func(c *Config) {},
		},
		{
			name:    "zero page size",
			modify:  func(c *Config) { c.Query.PerPage = 0 },
			wantErr: relaierrors.ErrInvalidConfig,
		},
		{
			name:    "page size exceeds limit",
			modify:  func(c *Config) { c.Query.PerPage = 101 },
			wantErr: relaierrors.ErrInvalidConfig,
		},
		{
			name:    "negative start page",
			modify:  func(c *Config) { c.Query.StartPage = -1 },
			wantErr: relaierrors.ErrInvalidConfig,
		},
		{
			name:    "negative max pages",
			modify:  func(c *Config) { c.Query.MaxPages = -1 },
			wantErr: relaierrors.ErrInvalidConfig,
		},
		{
			name:    "unknown malformed policy",
			modify:  func(c *Config) { c.Query.OnMalformedPage = "retry" },
			wantErr: relaierrors.ErrInvalidConfig,
		},
		{
			name:    "unknown order",
			modify:  func(c *Config) { c.Query.Order = "sideways" },
			wantErr: relaierrors.ErrInvalidConfig,
		},
		{
			name:   "empty order allowed",
			modify: func(c *Config) { c.Query.Order = "" },
		},
		{
			name:    "empty endpoint",
			modify:  func(c *Config) { c.GitHub.SearchEndpoint = "" },
			wantErr: relaierrors.ErrInvalidConfig,
		},
		{
			name:    "empty user agent",
			modify:  func(c *Config) { c.GitHub.UserAgent = "" },
			wantErr: relaierrors.ErrInvalidConfig,
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.GitHub.Timeout = -time.Second },
			wantErr: relaierrors.ErrInvalidConfig,
		},
		{
			name:    "bad log level",
			modify:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: relaierrors.ErrInvalidConfig,
		},
		{
			name:    "bad output format",
			modify:  func(c *Config) { c.Output.Format = "csv" },
			wantErr: relaierrors.ErrInvalidConfig,
		},
		{
			name:    "bad repository",
			modify:  func(c *Config) { c.Query.Repository = "just-a-name" },
			wantErr: relaierrors.ErrInvalidRepository,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir for Go < 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
