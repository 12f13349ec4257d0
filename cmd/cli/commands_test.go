package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mauv0809/league-overlay/internal/board"
	"github.com/mauv0809/league-overlay/internal/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSummary = `{
  "matches": [{"index": 0, "blue_names": ["Nexto"], "orange_names": ["Atba"], "blue_goals": 0, "orange_goals": 1}],
  "bots_by_rank": [
    {"bot_id": "Nexto", "mmr": 40, "old_mmr": 45, "cur_rank": 1, "old_rank": 1, "tickets": 2, "wins": [false]},
    {"bot_id": "Atba", "mmr": 12, "cur_rank": 2, "tickets": 1, "wins": [true]}
  ]
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderFile(t *testing.T) {
	summaryPath := writeTemp(t, "summary.json", testSummary)
	currentPath := writeTemp(t, "current_match.json", `{"blue": [{"name": "Atba"}], "orange": [], "map": "Mannfield"}`)

	var out bytes.Buffer
	require.NoError(t, renderFile(&out, summaryPath, currentPath))

	var render board.Render
	require.NoError(t, json.Unmarshal(out.Bytes(), &render))
	assert.True(t, render.Live)
	require.Len(t, render.Ranks, 2)
	assert.Equal(t, "(-5)", render.Ranks[0].DeltaText)
	assert.Equal(t, overlay.RowPlayingForBlue, render.Ranks[1].Class)
	require.Len(t, render.Matches, 1)
	assert.Equal(t, overlay.WinnerB, render.Matches[0].Winner)
}

func TestRenderFile_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, renderFile(&out, filepath.Join(t.TempDir(), "missing.json"), ""))

	invalid := writeTemp(t, "summary.json", `{"bots_by_rank": [{"bot_id": "Nexto", "cur_rank": 0, "tickets": 1}]}`)
	err := renderFile(&out, invalid, "")
	assert.ErrorIs(t, err, overlay.ErrValidation)
	assert.Empty(t, out.String())
}

func TestAPIClient_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/actions":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"active":true,"rows":[]}`))
		case "/current-match":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"no match is being played"}`))
		default:
			w.Write([]byte("OK!"))
		}
	}))
	defer srv.Close()

	var out bytes.Buffer
	c := newAPIClient(srv.URL+"/", time.Second, &out)

	require.NoError(t, c.do(context.Background(), http.MethodGet, "/actions"))
	assert.Equal(t, "{\n  \"active\": true,\n  \"rows\": []\n}\n", out.String())

	out.Reset()
	require.NoError(t, c.do(context.Background(), http.MethodGet, "/health"))
	assert.Equal(t, "OK!\n", out.String())

	out.Reset()
	err := c.do(context.Background(), http.MethodGet, "/current-match")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, out.String(), "no match is being played")
}

func TestAPIClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	var out bytes.Buffer
	c := newAPIClient(srv.URL, 20*time.Millisecond, &out)
	assert.Error(t, c.do(context.Background(), http.MethodGet, "/health"))
	assert.Empty(t, out.String())
}
