package board

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Mock is an in-memory Store for tests. It is safe for concurrent use.
type Mock struct {
	mu      sync.Mutex
	renders []Render

	SaveFunc func(r *Render) error
}

var _ Store = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Save(r *Render) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveFunc != nil {
		if err := m.SaveFunc(r); err != nil {
			return err
		}
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	m.renders = append(m.renders, *r)
	return nil
}

func (m *Mock) Latest() (*Render, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.renders) == 0 {
		return nil, ErrNoRender
	}
	r := m.renders[len(m.renders)-1]
	return &r, nil
}

func (m *Mock) List(limit int) ([]RenderInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	infos := make([]RenderInfo, 0, len(m.renders))
	for i := len(m.renders) - 1; i >= 0; i-- {
		r := m.renders[i]
		infos = append(infos, RenderInfo{ID: r.ID, CreatedAt: r.CreatedAt, EntryCount: len(r.Ranks), MatchCount: len(r.Matches), Live: r.Live})
	}
	if limit > 0 && len(infos) > limit {
		infos = infos[:limit]
	}
	return infos, nil
}

func (m *Mock) Prune(keep int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.renders) <= keep {
		return 0, nil
	}
	removed := len(m.renders) - keep
	m.renders = append([]Render(nil), m.renders[removed:]...)
	return removed, nil
}

// Count returns the number of saved renders.
func (m *Mock) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.renders)
}
