package board

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/mauv0809/league-overlay/internal/overlay"
)

// ErrNoRender is returned by Latest when nothing has been rendered yet.
var ErrNoRender = errors.New("no render available")

// store handles all database operations for rendered boards.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Render is the output of one poll: the formatted leaderboard and match history.
type Render struct {
	ID        string               `json:"id" msgpack:"id"`
	CreatedAt time.Time            `json:"created_at" msgpack:"created_at"`
	Live      bool                 `json:"live" msgpack:"live"`
	Ranks     []overlay.RankRecord `json:"ranks" msgpack:"ranks"`
	Matches   []overlay.MatchRow   `json:"matches" msgpack:"matches"`
}

// RenderInfo describes a stored render without its payload.
type RenderInfo struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	EntryCount int       `json:"entry_count"`
	MatchCount int       `json:"match_count"`
	Live       bool      `json:"live"`
}
