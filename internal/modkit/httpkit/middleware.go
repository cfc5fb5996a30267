package httpkit

import (
	"net/http"
	"time"

	"astroref/internal/platform/metrics"
	"astroref/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	SlowRequest time.Duration
	Metrics     bool
}

// CommonStack is the middleware applied to every /api/v1 route, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	mw := []func(http.Handler) http.Handler{
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.RecoverJSON,
	}
	if o.Metrics {
		mw = append(mw, metrics.InstrumentHandler)
	}
	return mw
}
