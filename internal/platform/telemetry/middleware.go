package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/learning-journal/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/learning-journal/telemetry"

	// TraceHeader echoes the trace ID so a failed journal call can be
	// found in the tracing backend.
	TraceHeader = "X-Trace-ID"

	unmatchedRoute = "unmatched"
)

type httpInstruments struct {
	duration metric.Float64Histogram
	inFlight metric.Int64UpDownCounter
}

func newHTTPInstruments(meter metric.Meter) (*httpInstruments, error) {
	duration, err := meter.Float64Histogram("journal.http.server.duration",
		metric.WithDescription("Time spent serving journal API and probe requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5),
	)
	if err != nil {
		return nil, err
	}

	inFlight, err := meter.Int64UpDownCounter("journal.http.server.in_flight",
		metric.WithDescription("Requests currently being served"),
	)
	if err != nil {
		return nil, err
	}

	return &httpInstruments{duration: duration, inFlight: inFlight}, nil
}

// Middleware returns the tracing and request-metrics chain. The span is
// started first so the trace ID is known when the logger is enriched.
func Middleware(serviceName string) []gin.HandlerFunc {
	instruments, err := newHTTPInstruments(otel.Meter(instrumentationName))
	if err != nil {
		otel.Handle(err)
	}

	return []gin.HandlerFunc{
		otelgin.Middleware(serviceName),
		observe(instruments),
	}
}

func observe(instruments *httpInstruments) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			traceID := sc.TraceID().String()
			c.Header(TraceHeader, traceID)

			ctx = logging.WithTraceID(ctx, traceID)
			c.Request = c.Request.WithContext(ctx)
		}

		if instruments == nil {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		method := attribute.String("http.request.method", c.Request.Method)
		routeAttr := attribute.String("http.route", route)

		instruments.inFlight.Add(ctx, 1, metric.WithAttributes(method, routeAttr))

		start := time.Now()

		c.Next()

		instruments.inFlight.Add(ctx, -1, metric.WithAttributes(method, routeAttr))
		instruments.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
			method, routeAttr,
			attribute.Int("http.response.status_code", c.Writer.Status()),
		))
	}
}
