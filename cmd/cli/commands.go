package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/mauv0809/league-overlay/internal/poller"
	"github.com/mauv0809/league-overlay/internal/summary"
	"github.com/spf13/cobra"
)

var (
	dryRun       bool
	limit        int
	currentMatch string
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(currentMatchCmd)
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(rendersCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(renderCmd)

	refreshCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Format the summary without storing or publishing it")
	rendersCmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of renders to list")
	renderCmd.Flags().StringVar(&currentMatch, "current-match", "", "Path to a current_match.json to highlight the live match")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.do(cmd.Context(), http.MethodGet, "/health")
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the latest formatted leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.do(cmd.Context(), http.MethodGet, "/leaderboard")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Show the latest formatted match history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.do(cmd.Context(), http.MethodGet, "/matches")
	},
}

var currentMatchCmd = &cobra.Command{
	Use:   "current-match",
	Short: "Show the intro card of the match being played",
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.do(cmd.Context(), http.MethodGet, "/current-match")
	},
}

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Show the live match comms feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.do(cmd.Context(), http.MethodGet, "/actions")
	},
}

var rendersCmd = &cobra.Command{
	Use:   "renders",
	Short: "List stored renders, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{"limit": {strconv.Itoa(limit)}}
		return api.do(cmd.Context(), http.MethodGet, "/renders?"+q.Encode())
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Poll the summary files now instead of waiting for the next tick",
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.do(cmd.Context(), http.MethodPost, "/refresh?dry_run="+strconv.FormatBool(dryRun))
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.do(cmd.Context(), http.MethodGet, "/metrics")
	},
}

var renderCmd = &cobra.Command{
	Use:   "render <summary.json>",
	Short: "Format a summary file locally and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderFile(cmd.OutOrStdout(), args[0], currentMatch)
	},
}

// renderFile formats a summary file without a server.
func renderFile(out io.Writer, summaryPath, currentMatchPath string) error {
	f, err := os.Open(summaryPath)
	if err != nil {
		return fmt.Errorf("failed to open summary: %w", err)
	}
	defer f.Close()

	s, err := summary.Decode(f)
	if err != nil {
		return err
	}

	var current *summary.CurrentMatch
	if currentMatchPath != "" {
		cf, err := os.Open(currentMatchPath)
		if err != nil {
			return fmt.Errorf("failed to open current match: %w", err)
		}
		defer cf.Close()
		if current, err = summary.DecodeCurrentMatch(cf); err != nil {
			return err
		}
	}

	render, err := poller.Format(s, current)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(render)
}
