package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studio/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMetrics_ObserveSync(t *testing.T) {
	registry := NewRegistry()
	recorder := NewSyncMetrics(registry)
	m := recorder.(*syncMetrics)

	recorder.ObserveSync(entity.ModeInternal, entity.SyncTypeFull, entity.JobStatusSuccess, 2*time.Second,
		entity.SyncCounts{Locations: 2, Reviews: 5, Media: 1})
	recorder.ObserveSync(entity.ModeInternal, entity.SyncTypeFull, entity.JobStatusSuccess, time.Second,
		entity.SyncCounts{Locations: 1})

	assert.InDelta(t, 2, testutil.ToFloat64(m.syncsTotal.WithLabelValues("internal", "full", "success")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.syncedRecords.WithLabelValues("locations")), 0)
	assert.InDelta(t, 5, testutil.ToFloat64(m.syncedRecords.WithLabelValues("reviews")), 0)
}

func TestSyncMetrics_ObserveGoogleRequest(t *testing.T) {
	recorder := NewSyncMetrics(NewRegistry())
	m := recorder.(*syncMetrics)

	recorder.ObserveGoogleRequest("locations", 500)
	recorder.ObserveGoogleRequest("locations", 0)

	assert.InDelta(t, 1, testutil.ToFloat64(m.googleRequests.WithLabelValues("locations", "500")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.googleRequests.WithLabelValues("locations", "network_error")), 0)
}

func TestHandler_ServesRegisteredCollectors(t *testing.T) {
	registry := NewRegistry()
	recorder := NewSyncMetrics(registry)
	recorder.ObserveHTTPRequest(http.MethodPost, "/api/v1/gmb/sync", http.StatusOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	NewHandler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "studio_http_requests_total"))
}

func TestNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		r := NewNoop()
		r.ObserveSync("external", entity.SyncTypeIncremental, entity.JobStatusError, 0, entity.SyncCounts{})
		r.ObserveGoogleRequest("accounts", 200)
		r.ObserveHTTPRequest("GET", "/health", 200, 0)
	})
}
