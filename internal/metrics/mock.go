package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	pollerRuns         int
	rendersProduced    int
	sourceErrors       int
	validationFailures int
	renderDurations    []float64
	leaderboardSize    int
	updatesPublished   int
	slackNotifSent     int
	slackNotifFailed   int
	startupTime        float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		renderDurations: make([]float64, 0),
	}
}

func (m *Mock) IncPollerRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pollerRuns++
}

func (m *Mock) IncRendersProduced() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rendersProduced++
}

func (m *Mock) IncSourceErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sourceErrors++
}

func (m *Mock) IncValidationFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validationFailures++
}

func (m *Mock) ObserveRenderDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renderDurations = append(m.renderDurations, duration)
}

func (m *Mock) SetLeaderboardSize(entries int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaderboardSize = entries
}

func (m *Mock) IncUpdatesPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updatesPublished++
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

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// PollerRuns returns the number of times IncPollerRuns was called.
func (m *Mock) PollerRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pollerRuns
}

// RendersProduced returns the number of times IncRendersProduced was called.
func (m *Mock) RendersProduced() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rendersProduced
}

// SourceErrors returns the number of times IncSourceErrors was called.
func (m *Mock) SourceErrors() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sourceErrors
}

// ValidationFailures returns the number of times IncValidationFailures was called.
func (m *Mock) ValidationFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validationFailures
}

// LeaderboardSize returns the last value passed to SetLeaderboardSize.
func (m *Mock) LeaderboardSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.leaderboardSize
}

// UpdatesPublished returns the number of times IncUpdatesPublished was called.
func (m *Mock) UpdatesPublished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updatesPublished
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
