package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventMatchCreated   EventType = "match-created"
	EventMatchFinalized EventType = "match-finalized"
)

// MatchEvent is the payload of every match lifecycle event.
type MatchEvent struct {
	MatchID       int64  `msgpack:"match_id"`
	Opponent      string `msgpack:"opponent"`
	Date          int64  `msgpack:"date"`
	Location      string `msgpack:"location"`
	TeamScore     int    `msgpack:"team_score"`
	OpponentScore int    `msgpack:"opponent_score"`
	Players       int    `msgpack:"players"`
}

// PushMessage is the envelope Pub/Sub push subscriptions POST to the server.
type PushMessage struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data      string `json:"data"`
		MessageID string `json:"messageId"`
	} `json:"message"`
}
