package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	host    string
	timeout time.Duration
	api     *apiClient
)

var rootCmd = &cobra.Command{
	Use:   "overlay-cli",
	Short: "Query a league overlay server or render summary files offline",
	Long: `overlay-cli talks to a running league overlay server. It can show the
leaderboard, the match history, the intro card of the match being played and
the live match comms feed. The render command formats a summary.json locally
without a server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		api = newAPIClient(host, timeout, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "Base URL of the overlay server")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Give up on a request after this long")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error("overlay-cli failed", "error", err)
		os.Exit(1)
	}
}
