package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen/learning-journal/internal/platform/config"
	"github.com/jsamuelsen/learning-journal/internal/platform/logging"
)

func TestJournalMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewJournalMetrics(reg)
	require.NoError(t, err)

	m.EntryChanged("create")
	m.EntryChanged("create")
	m.EntryChanged("delete")
	m.TagsCreated(3)
	m.TagsCreated(0)

	assert.InDelta(t, 2, testutil.ToFloat64(m.entries.WithLabelValues("create")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.entries.WithLabelValues("delete")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.tagsCreated), 0)

	expected := `
# HELP journal_tags_created_total Tags created on first use.
# TYPE journal_tags_created_total counter
journal_tags_created_total 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "journal_tags_created_total"))
}

func TestNewJournalMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewJournalMetrics(reg)
	require.NoError(t, err)

	_, err = NewJournalMetrics(reg)
	assert.Error(t, err)
}

func TestNew_DisabledIsNoop(t *testing.T) {
	p, err := New(context.Background(), config.AppConfig{Name: "journal"}, config.TelemetryConfig{Enabled: false})

	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestMiddleware_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(Middleware("journal")...)
	engine.GET("/api/entries", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/entries", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Empty(t, w.Header().Get(TraceHeader), "noop tracer has no trace IDs")
}

func TestMiddleware_EchoesTraceAndEnrichesLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tp := sdktrace.NewTracerProvider()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	var logged bytes.Buffer

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		logger := slog.New(slog.NewJSONHandler(&logged, nil))
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
	})
	engine.Use(Middleware("journal")...)
	engine.GET("/api/stats", func(c *gin.Context) {
		logging.FromContext(c.Request.Context()).Info("stats served")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	traceID := w.Header().Get(TraceHeader)
	require.Len(t, traceID, 32)
	assert.Contains(t, logged.String(), `"trace_id":"`+traceID+`"`)
}
