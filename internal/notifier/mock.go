package notifier

import (
	"context"
	"sync"

	"github.com/mauv0809/handball-stats/internal/handball"
)

// Mock is a mock implementation of the Notifier and Mailer interfaces for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendResultNotificationFunc func(match *handball.Match, dryRun bool) error
	SendMassEmailFunc          func(ctx context.Context, email MassEmail, dryRun bool) (any, error)

	// Call records
	SendResultNotificationCalls []*handball.Match
	SendMassEmailCalls          []MassEmail
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = nil
	m.SendMassEmailCalls = nil
}

func (m *Mock) SendResultNotification(match *handball.Match, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, match)
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(match, dryRun)
	}
	return nil
}

func (m *Mock) SendMassEmail(ctx context.Context, email MassEmail, dryRun bool) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMassEmailCalls = append(m.SendMassEmailCalls, email)
	if m.SendMassEmailFunc != nil {
		return m.SendMassEmailFunc(ctx, email, dryRun)
	}
	return map[string]any{"Messages": []any{}}, nil
}

// ResultNotifications returns the matches passed to SendResultNotification.
func (m *Mock) ResultNotifications() []*handball.Match {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*handball.Match, len(m.SendResultNotificationCalls))
	copy(out, m.SendResultNotificationCalls)
	return out
}

// MassEmails returns the emails passed to SendMassEmail.
func (m *Mock) MassEmails() []MassEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MassEmail, len(m.SendMassEmailCalls))
	copy(out, m.SendMassEmailCalls)
	return out
}
