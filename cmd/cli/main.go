package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	host    string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "courtmate-cli",
	Short: "Query a running courtmate server",
	Long: `courtmate-cli talks to a running courtmate instance over HTTP. It can
check server health, kick off digest processing, and render daily results
and period leaderboards as tables.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "Base URL of the courtmate server")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Timeout for each request")
}

// client builds the HTTP client every command shares. Leaderboard aggregation
// over a long session log can take a moment, hence the configurable timeout.
func client() *http.Client {
	return &http.Client{Timeout: timeout}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "courtmate-cli: %s\n", err)
		os.Exit(1)
	}
}
