package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	playersCreated   int
	matchesCreated   int
	matchesFinalized int
	emailsSent       int
	emailRecipients  int
	emailsFailed     int
	slackNotifSent   int
	slackNotifFailed int
	requestRoutes    []string
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		requestRoutes: make([]string, 0),
	}
}

func (m *Mock) IncPlayersCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersCreated++
}

func (m *Mock) IncMatchesCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesCreated++
}

func (m *Mock) IncMatchesFinalized() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesFinalized++
}

func (m *Mock) IncEmailsSent(recipients int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emailsSent++
	m.emailRecipients += recipients
}

func (m *Mock) IncEmailsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emailsFailed++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) ObserveRequestDuration(route string, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestRoutes = append(m.requestRoutes, route)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// PlayersCreated returns the number of times IncPlayersCreated was called.
func (m *Mock) PlayersCreated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersCreated
}

// MatchesCreated returns the number of times IncMatchesCreated was called.
func (m *Mock) MatchesCreated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesCreated
}

// MatchesFinalized returns the number of times IncMatchesFinalized was called.
func (m *Mock) MatchesFinalized() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesFinalized
}

// EmailsSent returns the number of sent emails and the total recipients.
func (m *Mock) EmailsSent() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.emailsSent, m.emailRecipients
}

// EmailsFailed returns the number of times IncEmailsFailed was called.
func (m *Mock) EmailsFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.emailsFailed
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// RequestRoutes returns the routes passed to ObserveRequestDuration.
func (m *Mock) RequestRoutes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.requestRoutes))
	copy(out, m.requestRoutes)
	return out
}
