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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sirseerhq/sirseer-prstats/internal/config"
	relaierrors "github.com/sirseerhq/sirseer-prstats/internal/errors"
	"github.com/sirseerhq/sirseer-prstats/internal/github"
	"github.com/sirseerhq/sirseer-prstats/internal/logger"
	"github.com/sirseerhq/sirseer-prstats/internal/metadata"
	"github.com/sirseerhq/sirseer-prstats/internal/output"
	"github.com/sirseerhq/sirseer-prstats/internal/pagination"
	"github.com/sirseerhq/sirseer-prstats/internal/stats"
)

// newRootCommand builds the CLI. The report goes to stdout, logs to stderr.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sirseer-prstats [owner/repo]",
		Short: "Report statistics about the open pull requests of a GitHub repository",
		Long: `Walk the GitHub issue search for every open pull request of a repository
and report how many there are, the oldest one and the one with the longest body.

The repository defaults to the configured one (rust-lang/rust unless changed).
Configuration is read from --config, .sirseer-prstats.yaml in the current
directory or ~/.sirseer/prstats.yaml; environment variables and flags override it.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // main prints the error
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags(), args)
			if err != nil {
				return err
			}

			fetcher := github.NewHTTPFetcher(github.HTTPOptions{
				UserAgent: cfg.GitHub.UserAgent,
				Timeout:   cfg.GitHub.Timeout,
			})
			return runReport(cmd.Context(), cfg, fetcher, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.String("config", "", "Path to a YAML config file")
	flags.String("endpoint", "", "Issue search endpoint (default https://api.github.com/search/issues)")
	flags.String("user-agent", "", "User-Agent header sent with every request")
	flags.Duration("timeout", 0, "Per-request timeout, 0 disables it")
	flags.Int("per-page", 0, "Results per page, 1-100")
	flags.Int("start-page", 0, "First page index to request")
	flags.Int("max-pages", 0, "Stop after this many pages, 0 for no limit")
	flags.String("on-malformed-page", "", "What to do with an undecodable page: skip or stop")
	flags.String("format", "", "Report format: text or json")
	flags.String("log-level", "", "Log level: debug, info, warn, error or disabled")
	flags.String("log-format", "", "Log format: console or json")

	return cmd
}

// resolveConfig layers the config file, environment, positional repository and
// flags, then validates the result.
func resolveConfig(flags *pflag.FlagSet, args []string) (*config.Config, error) {
	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if len(args) == 1 {
		cfg.ApplyRepository(args[0])
	}

	if err := applyFlagOverrides(flags, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlagOverrides copies the flags the user actually set over cfg.
func applyFlagOverrides(flags *pflag.FlagSet, cfg *config.Config) error {
	var err error
	str := func(name string, dst *string) {
		if err == nil && flags.Changed(name) {
			*dst, err = flags.GetString(name)
		}
	}
	num := func(name string, dst *int) {
		if err == nil && flags.Changed(name) {
			*dst, err = flags.GetInt(name)
		}
	}

	str("endpoint", &cfg.GitHub.SearchEndpoint)
	str("user-agent", &cfg.GitHub.UserAgent)
	if err == nil && flags.Changed("timeout") {
		cfg.GitHub.Timeout, err = flags.GetDuration("timeout")
	}
	num("per-page", &cfg.Query.PerPage)
	num("start-page", &cfg.Query.StartPage)
	num("max-pages", &cfg.Query.MaxPages)
	str("on-malformed-page", &cfg.Query.OnMalformedPage)
	str("format", &cfg.Output.Format)
	str("log-level", &cfg.Log.Level)
	str("log-format", &cfg.Log.Format)

	return err
}

// runReport paginates the search described by cfg and writes the report.
func runReport(ctx context.Context, cfg *config.Config, fetcher github.Fetcher, stdout, stderr io.Writer) error {
	log, err := logger.New(cfg.Log, stderr)
	if err != nil {
		return fmt.Errorf("%w: %w", relaierrors.ErrInvalidConfig, err)
	}

	writer, err := output.NewWriter(stdout, output.Format(cfg.Output.Format))
	if err != nil {
		return err
	}

	repo := cfg.Query.Repository
	if err := writer.Start(repo); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	tracker := metadata.New()
	log = log.With().Str("run_id", tracker.RunID()).Logger()

	opts := pagination.Options{
		Endpoint: cfg.GitHub.SearchEndpoint,
		Query: github.SearchQuery{
			Repository: repo,
			PerPage:    cfg.Query.PerPage,
			Sort:       cfg.Query.Sort,
			Order:      cfg.Query.Order,
		},
		StartPage:   cfg.Query.StartPage,
		MaxPages:    cfg.Query.MaxPages,
		OnMalformed: pagination.MalformedPolicy(cfg.Query.OnMalformedPage),
	}

	result, err := pagination.NewDriver(fetcher, opts, log, tracker).Collect(ctx)
	if err != nil {
		return err
	}

	summary := stats.Summarize(repo, result.Records)
	md := tracker.GenerateMetadata(version, metadata.RunParams{
		Repository:      repo,
		Endpoint:        opts.Endpoint,
		PerPage:         opts.Query.PerPage,
		StartPage:       opts.StartPage,
		MaxPages:        opts.MaxPages,
		MalformedPolicy: string(opts.OnMalformed),
	})
	logRunComplete(log, md)

	if err := writer.Report(summary, md); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func logRunComplete(log zerolog.Logger, md *metadata.RunMetadata) {
	r := md.Results
	event := log.Info().
		Str("repository", md.Parameters.Repository).
		Int("records", r.Records).
		Int("api_calls", r.APICallCount).
		Int("pages_decoded", r.PagesDecoded).
		Int("pages_malformed", r.PagesMalformed).
		Str("stop_reason", r.StopReason).
		Int("stop_page", r.StopPage).
		Str("duration", r.Duration)
	if r.StopStatus != 0 {
		event = event.Int("stop_status", r.StopStatus)
	}
	event.Msg("run complete")
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, relaierrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General and configuration errors
}
