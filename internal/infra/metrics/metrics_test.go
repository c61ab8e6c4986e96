package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ipay4u/config"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(&config.Config{})

	m.RecordAuthOutcome("ok")
	m.RecordAuthOutcome("ok")
	m.RecordAuthOutcome("REPLAY_DETECTED")
	m.RecordIngestOutcome("duplicate_ignored")
	m.RecordRegistration("ok")
	m.RecordNoncesPruned(5)
	m.RecordNoncesPruned(0)

	assert.InDelta(t, 2, testutil.ToFloat64(m.authOutcomesTotal.WithLabelValues("ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.authOutcomesTotal.WithLabelValues("REPLAY_DETECTED")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ingestOutcomesTotal.WithLabelValues("duplicate_ignored")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.registrationsTotal.WithLabelValues("ok")), 0)
	assert.InDelta(t, 5, testutil.ToFloat64(m.noncesPrunedTotal), 0)
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	first := New(&config.Config{})
	second := New(&config.Config{})

	first.RecordAuthOutcome("ok")

	assert.InDelta(t, 0, testutil.ToFloat64(second.authOutcomesTotal.WithLabelValues("ok")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New(&config.Config{})
	m.ObserveHTTPRequest(http.MethodPost, "/notify", http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `ipay4u_http_requests_total{method="POST",path="/notify",service="ipay4u",status="200"} 1`)
}

func TestMetrics_RegisterDBStats(t *testing.T) {
	m := New(&config.Config{})

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, m.RegisterDBStats(sqlDB, "postgres"))
	assert.Error(t, m.RegisterDBStats(sqlDB, "postgres"), "duplicate registration")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `go_sql_max_open_connections{db_name="postgres"}`)
}
