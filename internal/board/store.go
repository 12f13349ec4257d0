package board

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// New creates a new Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

func (s *store) Save(r *Render) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	payload, err := msgpack.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode render: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO renders (id, created_at, entry_count, match_count, live, payload)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.UnixNano(), len(r.Ranks), len(r.Matches), r.Live, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to insert render %s: %w", r.ID, err)
	}
	log.Debug("Saved render", "id", r.ID, "entries", len(r.Ranks), "matches", len(r.Matches))
	return nil
}

func (s *store) Latest() (*Render, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		id        string
		createdAt int64
		payload   []byte
	)
	err := s.db.QueryRow(`SELECT id, created_at, payload FROM renders ORDER BY created_at DESC LIMIT 1`).
		Scan(&id, &createdAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRender
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest render: %w", err)
	}

	var r Render
	if err := msgpack.Unmarshal(payload, &r); err != nil {
		return nil, fmt.Errorf("failed to decode render %s: %w", id, err)
	}
	r.ID = id
	r.CreatedAt = time.Unix(0, createdAt).UTC()
	return &r, nil
}

func (s *store) List(limit int) ([]RenderInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, created_at, entry_count, match_count, live
		FROM renders ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list renders: %w", err)
	}
	defer rows.Close()

	infos := make([]RenderInfo, 0)
	for rows.Next() {
		var (
			info      RenderInfo
			createdAt int64
		)
		if err := rows.Scan(&info.ID, &createdAt, &info.EntryCount, &info.MatchCount, &info.Live); err != nil {
			return nil, err
		}
		info.CreatedAt = time.Unix(0, createdAt).UTC()
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

func (s *store) Prune(keep int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keep < 0 {
		keep = 0
	}
	res, err := s.db.Exec(`
		DELETE FROM renders WHERE id NOT IN (
			SELECT id FROM renders ORDER BY created_at DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune renders: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Info("Pruned old renders", "removed", n, "kept", keep)
	}
	return int(n), nil
}
