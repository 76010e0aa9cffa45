package slack

import (
	"fmt"
	"strings"

	"github.com/minsuk-hwang/courtmate/internal/stats"
	"github.com/slack-go/slack"
)

// formatDailySummary creates the Slack message for one day's highlights using
// Block Kit.
func formatDailySummary(summary *stats.DaySummary) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🎾 Results for %s 🎾", summary.Date), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if summary.Special {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject("plain_text", "Exhibition day. Results do not count toward rankings.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var lines []string
	if summary.MVP != "" {
		lines = append(lines, fmt.Sprintf("🏆 MVP: %s", summary.MVP))
	}
	if len(summary.Undefeated) > 0 {
		lines = append(lines, fmt.Sprintf("🛡️ Undefeated: %s", strings.Join(summary.Undefeated, ", ")))
	}
	if len(summary.ShutoutLeaders) > 0 {
		lines = append(lines, fmt.Sprintf("🥖 Most shutouts: %s", strings.Join(summary.ShutoutLeaders, ", ")))
	}
	if len(lines) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))
	}

	var playerLines []string
	for _, row := range rankRows(summary.Stats) {
		playerLines = append(playerLines, fmt.Sprintf("%d. %s: %dW %dD %dL (%d pts)",
			row.Rank, row.Name, row.Wins, row.Draws, row.Losses, row.Points))
	}
	if len(playerLines) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject("plain_text", strings.Join(playerLines, "\n"), true, false), nil, nil))
	}

	if len(summary.Warnings) > 0 {
		var contextElements []slack.MixedElement
		for _, w := range summary.Warnings {
			contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", "⚠️ "+w, true, false))
		}
		blocks = append(blocks, slack.NewContextBlock("", contextElements...))
	}

	return slack.NewBlockMessage(blocks...)
}

func rankRows(playerStats map[string]*stats.PlayerStats) []stats.Ranked {
	return stats.Rank(playerStats, nil, stats.ByPoints)
}

// formatLeaderboard creates the Slack message for a period leaderboard.
func formatLeaderboard(rows []stats.Ranked, period string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 Leaderboard: %s 🏆", period), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(rows) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject("plain_text", "No counted matches in this period yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	medals := []string{"🥇", "🥈", "🥉"}
	var lines []string
	for i, row := range rows {
		prefix := fmt.Sprintf("%d.", row.Rank)
		if i < len(medals) {
			prefix = medals[i]
		}
		lines = append(lines, fmt.Sprintf("%s %s: %d pts (%dW %dD %dL, %.0f%%)",
			prefix, row.Name, row.Points, row.Wins, row.Draws, row.Losses, row.WinRate*100))
	}
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
