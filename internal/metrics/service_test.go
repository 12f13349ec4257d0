package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncPollerRuns()
	svc.IncPollerRuns()
	svc.IncValidationFailures()
	svc.SetLeaderboardSize(12)

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.PollerRuns))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.ValidationFailures))
	assert.Equal(t, 0.0, testutil.ToFloat64(svc.RendersProduced))
	assert.Equal(t, 12.0, testutil.ToFloat64(svc.LeaderboardSize))
}

func TestMetricsHandler_ExposesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)
	svc.IncRendersProduced()

	srv := httptest.NewServer(NewMetricsHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "overlay_renders_produced_total 1")
}
