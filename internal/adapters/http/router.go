package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/learning-journal/internal/adapters/http/handlers"
	"github.com/jsamuelsen/learning-journal/internal/adapters/http/middleware"
	"github.com/jsamuelsen/learning-journal/internal/platform/config"
	"github.com/jsamuelsen/learning-journal/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds /api requests when no timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

// APIPrefix is the mount point of the journal API.
const APIPrefix = "/api"

// RouteRegistrar mounts a handler's routes on a group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterConfig contains everything SetupRouter mounts.
type RouterConfig struct {
	Logger    *slog.Logger
	AppConfig *config.AppConfig

	// HealthHandler serves /-/live, /-/ready, /-/build and /-/metrics.
	HealthHandler *handlers.HealthHandler

	// API handlers, mounted under /api in order.
	API []RouteRegistrar

	// Timeout is the /api request deadline. Zero disables it.
	Timeout time.Duration
}

// SetupRouter installs the middleware chain and routes on engine.
// Middleware order, first to last:
//  1. Recovery
//  2. ContextLogger, RequestID, CorrelationID
//  3. OpenTelemetry tracing and the X-Trace-ID header
//  4. Logging (skips /-/ probes)
//
// /api routes additionally get the request timeout.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	serviceName := "learning-journal"
	if cfg.AppConfig != nil && cfg.AppConfig.Name != "" {
		serviceName = cfg.AppConfig.Name
	}

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(noRoute)
	engine.NoMethod(noMethod)

	engine.Use(
		middleware.Recovery(),
		middleware.ContextLogger(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(serviceName)...)
	engine.Use(middleware.Logging())

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.Register(engine)
	}

	api := engine.Group(APIPrefix)
	api.Use(middleware.Timeout(cfg.Timeout))

	for _, r := range cfg.API {
		r.RegisterRoutes(api)
	}
}

// NewDefaultRouterConfig builds a RouterConfig with the default timeout.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	api ...RouteRegistrar,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		HealthHandler: healthHandler,
		API:           api,
		Timeout:       DefaultRequestTimeout,
	}
}
