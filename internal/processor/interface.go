package processor

import (
	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/notifier"
)

// Store defines the database operations required by the processor.
type Store interface {
	GetMatch(id int64) (*handball.Match, error)
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	notifier.Notifier
}
