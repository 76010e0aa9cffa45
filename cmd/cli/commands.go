package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/minsuk-hwang/courtmate/internal/stats"
)

var (
	rankBy    string
	rankYear  int
	rankMonth int
	dailyDate string
	digestDry bool
)

func init() {
	rankingsCmd.Flags().StringVar(&rankBy, "by", "points", "Ranking criterion (points, winRate, scoreTotal, scoreAvg, attendance, scoreDiff)")
	rankingsCmd.Flags().IntVar(&rankYear, "year", 0, "Restrict to a single month of this year")
	rankingsCmd.Flags().IntVar(&rankMonth, "month", 0, "Restrict to this month (requires --year)")
	dailyCmd.Flags().StringVar(&dailyDate, "date", "", "Session date (YYYY-MM-DD)")
	dailyCmd.MarkFlagRequired("date")
	digestCmd.Flags().BoolVar(&digestDry, "dry-run", false, "Log the digest instead of sending it")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(datesCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List the session dates in the club store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/sessions/dates")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Process pending session digests",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/digest/run"
		if digestDry {
			endpoint += "?dry_run=true"
		}
		return performGetRequest(endpoint)
	},
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show one day's results as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		var summary stats.DaySummary
		if err := getJSON(fmt.Sprintf("/daily?date=%s", dailyDate), &summary); err != nil {
			return err
		}

		fmt.Printf("Results for %s\n\n", summary.Date)
		table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
			Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
			Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
		}))
		table.Header("NAME", "GAMES", "W", "D", "L", "PTS", "DIFF")
		for _, p := range sortedByPoints(summary.Stats) {
			table.Append(p.Name,
				fmt.Sprintf("%d", p.Games),
				fmt.Sprintf("%d", p.Wins),
				fmt.Sprintf("%d", p.Draws),
				fmt.Sprintf("%d", p.Losses),
				fmt.Sprintf("%d", p.Points),
				fmt.Sprintf("%+d", p.ScoreDiff()),
			)
		}
		table.Render()

		if summary.MVP != "" {
			fmt.Printf("\nMVP: %s\n", summary.MVP)
		}
		for _, w := range summary.Warnings {
			fmt.Printf("warning: %s\n", w)
		}
		return nil
	},
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Show the leaderboard as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := fmt.Sprintf("/rankings?by=%s", rankBy)
		if rankYear != 0 && rankMonth != 0 {
			endpoint += fmt.Sprintf("&year=%d&month=%d", rankYear, rankMonth)
		}

		var resp struct {
			Period   string         `json:"period"`
			By       string         `json:"by"`
			Rankings []stats.Ranked `json:"rankings"`
		}
		if err := getJSON(endpoint, &resp); err != nil {
			return err
		}

		fmt.Printf("Leaderboard (%s, by %s)\n\n", resp.Period, resp.By)
		table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
			Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
			Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
		}))
		table.Header("RANK", "NAME", "GAMES", "W", "D", "L", "PTS", "WIN%", "DAYS")
		for _, r := range resp.Rankings {
			table.Append(
				fmt.Sprintf("%d", r.Rank),
				r.Name,
				fmt.Sprintf("%d", r.Games),
				fmt.Sprintf("%d", r.Wins),
				fmt.Sprintf("%d", r.Draws),
				fmt.Sprintf("%d", r.Losses),
				fmt.Sprintf("%d", r.Points),
				fmt.Sprintf("%.0f%%", r.WinRate*100),
				fmt.Sprintf("%d", r.Attendance),
			)
		}
		table.Render()
		return nil
	},
}

func sortedByPoints(m map[string]*stats.PlayerStats) []*stats.PlayerStats {
	rows := make([]*stats.PlayerStats, 0, len(m))
	for _, p := range m {
		rows = append(rows, p)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// performGetRequest hits an endpoint and echoes the raw response, for the
// commands that just relay server output.
func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("GET %s\n", url)

	resp, err := client().Get(url)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("%s\n%s\n", resp.Status, string(body))
	return nil
}

func getJSON(endpoint string, out any) error {
	url := host + endpoint
	resp, err := client().Get(url)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
