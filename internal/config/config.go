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

// Package config provides configuration management for sirseer-prstats with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Repository-specific configuration
//  4. Configuration file
//  5. Built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	relaierrors "github.com/sirseerhq/sirseer-prstats/internal/errors"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .sirseer-prstats.yaml (current directory)
//   - .sirseer-prstats.yml (current directory)
//   - ~/.sirseer/prstats.yaml
//   - ~/.sirseer/prstats.yml
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		for _, path := range defaultPaths() {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyRepoOverrides(cfg)
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultPaths() []string {
	paths := []string{
		".sirseer-prstats.yaml",
		".sirseer-prstats.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".sirseer", "prstats.yaml"),
			filepath.Join(home, ".sirseer", "prstats.yml"),
		)
	}
	return paths
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// ApplyRepository switches the configured repository and re-applies its
// repository-specific overrides. Used when the repository comes from the
// command line.
func (c *Config) ApplyRepository(repo string) {
	c.Query.Repository = repo
	applyRepoOverrides(c)
}

// applyRepoOverrides applies the overrides configured for the current repository
func applyRepoOverrides(cfg *Config) {
	repoConfig, ok := cfg.Repositories[cfg.Query.Repository]
	if !ok {
		return
	}
	if repoConfig.PerPage > 0 {
		cfg.Query.PerPage = repoConfig.PerPage
	}
	if repoConfig.MaxPages > 0 {
		cfg.Query.MaxPages = repoConfig.MaxPages
	}
}

// applyEnvOverrides applies environment variable overrides to config. A
// numeric variable that does not parse is an error rather than being ignored.
func applyEnvOverrides(cfg *Config) error {
	if endpoint := os.Getenv("GITHUB_SEARCH_ENDPOINT"); endpoint != "" {
		cfg.GitHub.SearchEndpoint = endpoint
	}
	if repo := os.Getenv("PRSTATS_REPOSITORY"); repo != "" {
		cfg.ApplyRepository(repo)
	}
	if perPage := os.Getenv("PRSTATS_PER_PAGE"); perPage != "" {
		size, err := parseEnvInt("PRSTATS_PER_PAGE", perPage, 1)
		if err != nil {
			return err
		}
		cfg.Query.PerPage = size
	}
	// Zero is meaningful here: it lifts a page cap set in the config file.
	if maxPages := os.Getenv("PRSTATS_MAX_PAGES"); maxPages != "" {
		n, err := parseEnvInt("PRSTATS_MAX_PAGES", maxPages, 0)
		if err != nil {
			return err
		}
		cfg.Query.MaxPages = n
	}
	if level := os.Getenv("PRSTATS_LOG_LEVEL"); level != "" {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(level))
	}
	return nil
}

// parseEnvInt parses the value of environment variable name as an integer of
// at least minimum.
func parseEnvInt(name, value string, minimum int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", relaierrors.ErrInvalidConfig, name, value)
	}
	if n < minimum {
		return 0, fmt.Errorf("%w: %s must be at least %d, got %d", relaierrors.ErrInvalidConfig, name, minimum, n)
	}
	return n, nil
}

// ParseRepository splits an owner/name string into its components.
func ParseRepository(repoArg string) (owner, repo string, err error) {
	parts := strings.Split(repoArg, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: expected <owner>/<repo>, got: %q", relaierrors.ErrInvalidRepository, repoArg)
	}

	owner = strings.TrimSpace(parts[0])
	repo = strings.TrimSpace(parts[1])

	if owner == "" || repo == "" || strings.ContainsAny(repoArg, " \t") {
		return "", "", fmt.Errorf("%w: expected <owner>/<repo>, got: %q", relaierrors.ErrInvalidRepository, repoArg)
	}

	return owner, repo, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only fails on an empty or reserved tag
	_ = v.RegisterValidation("repo", func(fl validator.FieldLevel) bool {
		_, _, err := ParseRepository(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks if the configuration contains valid values: a well-formed
// repository, a page size within GitHub's limit of 100, known enumerations
// and a usable endpoint. Call it after all overrides have been applied.
func (c *Config) Validate() error {
	if _, _, err := ParseRepository(c.Query.Repository); err != nil {
		return err
	}

	if err := newValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)",
				relaierrors.ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %w", relaierrors.ErrInvalidConfig, err)
	}
	return nil
}
