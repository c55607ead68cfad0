package processor

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/metrics"
	"github.com/mauv0809/handball-stats/internal/pubsub"
)

// New creates a new Processor. notifier and pubsub may be nil.
func New(store Store, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		store:    store,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
	}
}

// MatchCreated records a newly set up match.
func (p *Processor) MatchCreated(match *handball.Match, dryRun bool) {
	p.metrics.IncMatchesCreated()
	log.Info("Match created", "matchID", match.ID, "opponent", match.Opponent, "players", len(match.MatchPlayers))
	p.publish(pubsub.EventMatchCreated, match, dryRun)
}

// MatchFinalized handles a match whose final stats were just saved.
func (p *Processor) MatchFinalized(matchID int64, dryRun bool) error {
	match, err := p.store.GetMatch(matchID)
	if err != nil {
		return fmt.Errorf("failed to load finalized match: %w", err)
	}
	p.metrics.IncMatchesFinalized()
	log.Info("Match finalized", "matchID", match.ID, "team_score", match.TeamScore(), "opponent_score", match.OpponentScore)

	if p.pubsub != nil {
		p.publish(pubsub.EventMatchFinalized, match, dryRun)
		return nil
	}
	return p.notify(match, dryRun)
}

// NotifyResult announces the result of a match, when a notifier is configured.
func (p *Processor) NotifyResult(matchID int64, dryRun bool) error {
	if p.notifier == nil {
		log.Debug("No notifier configured, skipping result notification", "matchID", matchID)
		return nil
	}
	match, err := p.store.GetMatch(matchID)
	if err != nil {
		return fmt.Errorf("failed to load match for notification: %w", err)
	}
	return p.notify(match, dryRun)
}

func (p *Processor) notify(match *handball.Match, dryRun bool) error {
	if p.notifier == nil {
		log.Debug("No notifier configured, skipping result notification", "matchID", match.ID)
		return nil
	}
	log.Info("Sending result notification", "matchID", match.ID)
	return p.notifier.SendResultNotification(match, dryRun)
}

// HandleEvent processes a pushed Pub/Sub event.
func (p *Processor) HandleEvent(topic pubsub.EventType, data []byte, dryRun bool) error {
	if p.pubsub == nil {
		return fmt.Errorf("pubsub is not configured")
	}
	var event pubsub.MatchEvent
	if err := p.pubsub.ProcessMessage(data, &event); err != nil {
		return fmt.Errorf("%w: undecodable event: %v", handball.ErrInvalidInput, err)
	}
	log.Debug("Received event", "topic", topic, "matchID", event.MatchID)

	switch topic {
	case pubsub.EventMatchFinalized:
		return p.NotifyResult(event.MatchID, dryRun)
	case pubsub.EventMatchCreated:
		return nil
	}
	return fmt.Errorf("%w: unknown event %q", handball.ErrInvalidInput, topic)
}

func (p *Processor) publish(topic pubsub.EventType, match *handball.Match, dryRun bool) {
	if p.pubsub == nil {
		return
	}
	event := pubsub.NewMatchEvent(match)
	if dryRun {
		log.Info("[Dry Run] Would publish event", "topic", topic, "matchID", match.ID)
		return
	}
	if err := p.pubsub.SendMessage(topic, event); err != nil {
		log.Error("Failed to publish event", "error", err, "topic", topic, "matchID", match.ID)
	}
}
