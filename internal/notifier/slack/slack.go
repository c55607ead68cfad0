package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/metrics"
	"github.com/mauv0809/handball-stats/internal/notifier"
	"github.com/mauv0809/handball-stats/internal/stats"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// topScorers is how many players the result message lists.
const topScorers = 3

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendResultNotification announces the final score of a match.
func (s *Notifier) SendResultNotification(match *handball.Match, dryRun bool) error {
	msg := s.formatResultNotification(match)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// formatResultNotification creates the Slack message for a finished match using Block Kit.
func (s *Notifier) formatResultNotification(match *handball.Match) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🤾 Match finished! 🤾", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	// Details
	detailsText := fmt.Sprintf("vs %s at %s, %s", match.Opponent, match.Location, match.Date.Format("Monday 02 Jan 2006"))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, false, false), nil, nil))

	// Result
	teamScore := match.TeamScore()
	resultText := fmt.Sprintf("*%s* %d - %d", stats.MatchResult(teamScore, match.OpponentScore), teamScore, match.OpponentScore)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", resultText, false, false), nil, nil))

	// Scorers
	scorers := make([]handball.MatchPlayer, 0, len(match.MatchPlayers))
	for _, mp := range match.MatchPlayers {
		if mp.Goals > 0 {
			scorers = append(scorers, mp)
		}
	}
	sort.SliceStable(scorers, func(i, j int) bool { return scorers[i].Goals > scorers[j].Goals })
	if len(scorers) > topScorers {
		scorers = scorers[:topScorers]
	}
	if len(scorers) > 0 {
		var lines []string
		for _, mp := range scorers {
			lines = append(lines, fmt.Sprintf("• %s: %d", playerName(mp), mp.Goals))
		}
		scorersText := "Top scorers:\n" + strings.Join(lines, "\n")
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", scorersText, true, false), nil, nil))
	}

	// Context
	saves := 0
	for _, mp := range match.MatchPlayers {
		saves += mp.Saves
	}
	if saves > 0 {
		savesText := fmt.Sprintf("🧤 %d saves", saves)
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", savesText, true, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

func playerName(mp handball.MatchPlayer) string {
	if mp.Player == nil {
		return fmt.Sprintf("Player %d", mp.PlayerID)
	}
	return fmt.Sprintf("#%d %s", mp.Player.Number, mp.Player.Name)
}
