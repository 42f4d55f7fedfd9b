package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"runtime/debug"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/learning-journal/internal/mocks"
	"github.com/jsamuelsen/learning-journal/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func probeRouter(t *testing.T, registry ports.HealthRegistry, gatherer prometheus.Gatherer) *gin.Engine {
	t.Helper()

	router := gin.New()
	NewHealthHandler(registry, NewBuildInfo("0.3.0", "9f1c2ab", "2024-05-20T08:00:00Z"), gatherer).Register(router)

	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	return w
}

func TestNewBuildInfo_KeepsLdflags(t *testing.T) {
	bi := NewBuildInfo("0.3.0", "9f1c2ab", "2024-05-20T08:00:00Z")

	assert.Equal(t, "0.3.0", bi.Version)
	assert.Equal(t, "9f1c2ab", bi.Commit)
	assert.Equal(t, "2024-05-20T08:00:00Z", bi.BuildTime)
	assert.Equal(t, runtime.Version(), bi.GoVersion)
}

func TestBuildInfo_FillFromVCS(t *testing.T) {
	settings := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "4e2d81f0"},
		{Key: "vcs.time", Value: "2024-05-19T21:14:03Z"},
		{Key: "vcs.modified", Value: "true"},
	}

	unstamped := BuildInfo{Version: "dev", Commit: "unknown", BuildTime: ""}
	unstamped.fillFromVCS(settings)

	assert.Equal(t, "4e2d81f0", unstamped.Commit)
	assert.Equal(t, "2024-05-19T21:14:03Z", unstamped.BuildTime)
	assert.True(t, unstamped.Modified)

	stamped := BuildInfo{Commit: "9f1c2ab", BuildTime: "2024-05-20T08:00:00Z"}
	stamped.fillFromVCS(settings)

	assert.Equal(t, "9f1c2ab", stamped.Commit, "ldflags win")
	assert.Equal(t, "2024-05-20T08:00:00Z", stamped.BuildTime)
}

func TestHealthHandler_Liveness(t *testing.T) {
	w := get(probeRouter(t, mocks.NewMockHealthRegistry(t), nil), "/-/live")

	require.Equal(t, http.StatusOK, w.Code)

	var resp livenessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, int64(0))
}

func TestHealthHandler_Readiness(t *testing.T) {
	checkedAt := time.Date(2024, time.May, 20, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		result *ports.HealthResult
		code   int
		status string
	}{
		{
			name: "database reachable",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{"database": {Status: ports.HealthStatusHealthy}},
			},
			code:   http.StatusOK,
			status: "healthy",
		},
		{
			name: "database locked",
			result: &ports.HealthResult{
				Status: ports.HealthStatusUnhealthy,
				Checks: map[string]*ports.CheckResult{
					"database": {Status: ports.HealthStatusUnhealthy, Message: "database is locked"},
				},
			},
			code:   http.StatusServiceUnavailable,
			status: "unhealthy",
		},
		{
			name:   "nothing registered",
			result: &ports.HealthResult{Status: ports.HealthStatusHealthy},
			code:   http.StatusOK,
			status: "healthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.result.Timestamp = checkedAt

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.result)

			w := get(probeRouter(t, registry, nil), "/-/ready")
			require.Equal(t, tt.code, w.Code)

			var resp readinessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.status, resp.Status)
			assert.True(t, checkedAt.Equal(resp.CheckedAt))
			assert.Len(t, resp.Checks, len(tt.result.Checks))
		})
	}
}

func TestHealthHandler_Build(t *testing.T) {
	w := get(probeRouter(t, mocks.NewMockHealthRegistry(t), nil), "/-/build")
	require.Equal(t, http.StatusOK, w.Code)

	var bi BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bi))
	assert.Equal(t, "0.3.0", bi.Version)
	assert.Equal(t, "9f1c2ab", bi.Commit)
}

func TestHealthHandler_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	streak := prometheus.NewGauge(prometheus.GaugeOpts{Name: "journal_test_streak_days", Help: "test"})
	reg.MustRegister(streak)
	streak.Set(4)

	w := get(probeRouter(t, mocks.NewMockHealthRegistry(t), reg), "/-/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "journal_test_streak_days 4")
}

func TestHealthHandler_ProbesStayOutsideAPI(t *testing.T) {
	router := probeRouter(t, mocks.NewMockHealthRegistry(t), nil)

	paths := map[string]bool{}
	for _, r := range router.Routes() {
		paths[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{"GET /-/live", "GET /-/ready", "GET /-/build", "GET /-/metrics"} {
		assert.True(t, paths[want], "missing %s", want)
	}

	assert.Equal(t, http.StatusNotFound, get(router, "/api/live").Code)
}
