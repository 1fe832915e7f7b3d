package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/aatuh/ulid-toolkit/chi"
	"github.com/aatuh/ulid-toolkit/cors"
	"github.com/aatuh/ulid-toolkit/health"
	recoverx "github.com/aatuh/ulid-toolkit/httpx/recover"
	metricsmw "github.com/aatuh/ulid-toolkit/middleware/metrics"
	rateln "github.com/aatuh/ulid-toolkit/middleware/ratelimit"
	"github.com/aatuh/ulid-toolkit/middleware/requestlog"
	securemw "github.com/aatuh/ulid-toolkit/middleware/secure"
	timeoutmw "github.com/aatuh/ulid-toolkit/middleware/timeout"
	"github.com/aatuh/ulid-toolkit/ports"
	"github.com/aatuh/ulid-toolkit/specs"
)

// RouterOptions tunes the default middleware stack.
type RouterOptions struct {
	CORSOrigins  []string
	RateCapacity float64
	RateRefill   float64
	Timeout      time.Duration
}

// NewDefaultRouter constructs a router with the service's middleware stack.
func NewDefaultRouter(log ports.Logger, rec *metricsmw.Recorder, opts RouterOptions) ports.HTTPRouter {
	var r ports.HTTPRouter = chi.New()
	var mw ports.HTTPMiddleware = chi.NewMiddleware()

	r.Use(mw.RequestID())
	r.Use(mw.RealIP())
	r.Use(recoverx.Middleware())

	corsOpts := cors.DefaultOptions()
	if len(opts.CORSOrigins) > 0 {
		corsOpts.AllowedOrigins = opts.CORSOrigins
	}
	r.Use(cors.New().Handler(corsOpts))
	r.Use(securemw.New().Middleware())
	r.Use(rateln.New(rateln.Options{
		Capacity:   opts.RateCapacity,
		RefillRate: opts.RateRefill,
	}).Handler)
	if opts.Timeout > 0 {
		r.Use(timeoutmw.New(opts.Timeout).Handler)
	}
	r.Use(requestlog.New(log).Handler)
	r.Use(metricsmw.New(rec).Handler)

	return r
}

// MountSystemEndpoints registers health and metrics endpoints.
func MountSystemEndpoints(r ports.HTTPRouter, hm *health.Handler) {
	hm.RegisterRoutes(r)
	r.Get(specs.Metrics, func(w http.ResponseWriter, r *http.Request) {
		metricsmw.PrometheusHandler().ServeHTTP(w, r)
	})
}

// StartServer runs an HTTP server and performs graceful shutdown when the
// context is canceled.
func StartServer(ctx context.Context, addr string, handler http.Handler, log ports.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shctx)
		return nil
	case err := <-errCh:
		return err
	}
}
