package notifier

import (
	"sync"

	"github.com/mauv0809/league-overlay/internal/overlay"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendLeaderboardCalls  [][]overlay.RankRecord
	SendMatchHistoryCalls [][]overlay.MatchRow

	// Spies
	SendLeaderboardFunc            func(ranks []overlay.RankRecord, dryRun bool) error
	SendMatchHistoryFunc           func(rows []overlay.MatchRow, dryRun bool) error
	FormatLeaderboardResponseFunc  func(ranks []overlay.RankRecord) (any, error)
	FormatMatchHistoryResponseFunc func(rows []overlay.MatchRow) (any, error)
	FormatActionsResponseFunc      func(feed overlay.ActionFeed) (any, error)
	FormatIntroCardResponseFunc    func(card overlay.IntroCard) (any, error)

	LastLeaderboardResponse any
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = nil
	m.SendMatchHistoryCalls = nil
	m.LastLeaderboardResponse = nil
}

func (m *Mock) SendLeaderboard(ranks []overlay.RankRecord, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, ranks)
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(ranks, dryRun)
	}
	return nil
}

func (m *Mock) SendMatchHistory(rows []overlay.MatchRow, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchHistoryCalls = append(m.SendMatchHistoryCalls, rows)
	if m.SendMatchHistoryFunc != nil {
		return m.SendMatchHistoryFunc(rows, dryRun)
	}
	return nil
}

func (m *Mock) FormatLeaderboardResponse(ranks []overlay.RankRecord) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var (
		resp any = ranks
		err  error
	)
	if m.FormatLeaderboardResponseFunc != nil {
		resp, err = m.FormatLeaderboardResponseFunc(ranks)
	}
	m.LastLeaderboardResponse = resp
	return resp, err
}

func (m *Mock) FormatMatchHistoryResponse(rows []overlay.MatchRow) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatMatchHistoryResponseFunc != nil {
		return m.FormatMatchHistoryResponseFunc(rows)
	}
	return rows, nil
}

func (m *Mock) FormatActionsResponse(feed overlay.ActionFeed) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatActionsResponseFunc != nil {
		return m.FormatActionsResponseFunc(feed)
	}
	return feed, nil
}

func (m *Mock) FormatIntroCardResponse(card overlay.IntroCard) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatIntroCardResponseFunc != nil {
		return m.FormatIntroCardResponseFunc(card)
	}
	return card, nil
}

// LeaderboardsSent returns how many times SendLeaderboard was called.
func (m *Mock) LeaderboardsSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SendLeaderboardCalls)
}

// MatchHistoriesSent returns how many times SendMatchHistory was called.
func (m *Mock) MatchHistoriesSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SendMatchHistoryCalls)
}
