package processor

import (
	"github.com/mauv0809/handball-stats/internal/metrics"
	"github.com/mauv0809/handball-stats/internal/pubsub"
)

// Processor reacts to match lifecycle events. When a Pub/Sub client is set
// events are published and follow-up work arrives through push handlers;
// otherwise it runs in-process.
type Processor struct {
	store    Store
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
}
