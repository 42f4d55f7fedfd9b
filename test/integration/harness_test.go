//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/learning-journal/internal/adapters/clients"
	"github.com/jsamuelsen/learning-journal/internal/adapters/clients/acl"
	journalhttp "github.com/jsamuelsen/learning-journal/internal/adapters/http"
	"github.com/jsamuelsen/learning-journal/internal/adapters/http/handlers"
	"github.com/jsamuelsen/learning-journal/internal/adapters/persistence/gormstore"
	"github.com/jsamuelsen/learning-journal/internal/app"
	"github.com/jsamuelsen/learning-journal/internal/platform/config"
	"github.com/jsamuelsen/learning-journal/internal/platform/telemetry"
	"github.com/jsamuelsen/learning-journal/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// journalServer is a complete journal API over a SQLite file, served by
// httptest.
type journalServer struct {
	URL   string
	Store *gormstore.Store

	server *httptest.Server
}

func (s *journalServer) Close() {
	s.server.Close()
	_ = s.Store.Close()
}

// startJournal boots the same stack as `journal serve` on a fresh database
// in dir.
func startJournal(dir string) (*journalServer, error) {
	store, err := gormstore.Open(context.Background(), config.DatabaseConfig{
		Driver:      "sqlite",
		DSN:         filepath.Join(dir, "journal.db"),
		AutoMigrate: true,
	}, gormstore.WithLogger(quietLogger()))
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()

	metrics, err := telemetry.NewJournalMetrics(registry)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	journal := app.NewJournalService(app.JournalServiceConfig{
		Entries: store.Entries(),
		Tags:    store.Tags(),
		Metrics: metrics,
		Logger:  quietLogger(),
	})
	stats := app.NewStatsService(app.StatsServiceConfig{
		Source:   store.Entries(),
		Location: time.UTC,
		Logger:   quietLogger(),
	})

	health := ports.NewHealthRegistry()
	if err := health.Register(store); err != nil {
		_ = store.Close()
		return nil, err
	}

	engine := gin.New()
	journalhttp.SetupRouter(engine, journalhttp.NewDefaultRouterConfig(
		quietLogger(),
		&config.AppConfig{Name: "learning-journal", Version: "integration", Environment: "test"},
		handlers.NewHealthHandler(health, handlers.NewBuildInfo("integration", "none", "now"), registry),
		handlers.NewEntryHandler(journal),
		handlers.NewTagHandler(journal),
		handlers.NewStatsHandler(stats),
		handlers.NewBackupHandler(journal, time.UTC),
	))

	srv := httptest.NewServer(engine)

	return &journalServer{URL: srv.URL, Store: store, server: srv}, nil
}

func mustStartJournal(t *testing.T) *journalServer {
	t.Helper()

	srv, err := startJournal(t.TempDir())
	require.NoError(t, err)

	t.Cleanup(srv.Close)

	return srv
}

func clientSettings() config.ClientConfig {
	return config.ClientConfig{
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
			JitterFactor:    0.1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 2,
		},
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

func newJournalClient(t *testing.T, baseURL string) *acl.JournalClient {
	t.Helper()

	httpClient, err := clients.New(&clients.Config{
		BaseURL:     baseURL,
		ServiceName: "remote-journal",
		Settings:    clientSettings(),
		Logger:      quietLogger(),
	})
	require.NoError(t, err)

	return acl.NewJournalClient(acl.JournalClientConfig{Client: httpClient, Logger: quietLogger()})
}
