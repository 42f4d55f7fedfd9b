// Package handlers provides the gin handlers of the journal API and the
// operational /-/ endpoints.
package handlers

import (
	"net/http"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/learning-journal/internal/ports"
)

// ProbePrefix is where the operational endpoints live, outside /api.
const ProbePrefix = "/-"

// BuildInfo is served on /-/build.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	Modified  bool   `json:"modified,omitempty"`
}

// NewBuildInfo records the ldflags values. When they were not set, the VCS
// stamp the Go toolchain embeds is used instead.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	bi := BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if stamped, ok := debug.ReadBuildInfo(); ok {
		bi.fillFromVCS(stamped.Settings)
	}

	return bi
}

func (bi *BuildInfo) fillFromVCS(settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if unset(bi.Commit) {
				bi.Commit = s.Value
			}
		case "vcs.time":
			if unset(bi.BuildTime) {
				bi.BuildTime = s.Value
			}
		case "vcs.modified":
			bi.Modified = s.Value == "true"
		}
	}
}

func unset(v string) bool {
	return v == "" || v == "unknown"
}

// HealthHandler serves liveness, readiness, build info and metrics.
type HealthHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
	gatherer  prometheus.Gatherer
	started   time.Time
}

// NewHealthHandler serves metrics from gatherer, or from the default
// Prometheus registry when it is nil.
func NewHealthHandler(registry ports.HealthRegistry, buildInfo BuildInfo, gatherer prometheus.Gatherer) *HealthHandler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &HealthHandler{
		registry:  registry,
		buildInfo: buildInfo,
		gatherer:  gatherer,
		started:   time.Now(),
	}
}

type livenessResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

// Liveness never touches the database.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, livenessResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	})
}

type readinessResponse struct {
	Status    string                        `json:"status"`
	Checks    map[string]*ports.CheckResult `json:"checks,omitempty"`
	CheckedAt time.Time                     `json:"checkedAt"`
}

// Readiness answers 503 while any registered check, the database ping
// included, is failing.
func (h *HealthHandler) Readiness(c *gin.Context) {
	result := h.registry.CheckAll(c.Request.Context())

	code := http.StatusOK
	if result.Status == ports.HealthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, readinessResponse{
		Status:    string(result.Status),
		Checks:    result.Checks,
		CheckedAt: result.Timestamp,
	})
}

func (h *HealthHandler) Build(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// Register mounts the probes under ProbePrefix:
//
//	GET /-/live
//	GET /-/ready
//	GET /-/build
//	GET /-/metrics
func (h *HealthHandler) Register(r gin.IRouter) {
	probes := r.Group(ProbePrefix)
	probes.GET("/live", h.Liveness)
	probes.GET("/ready", h.Readiness)
	probes.GET("/build", h.Build)
	probes.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})))
}
