// Command ulidd serves ULIDs over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aatuh/ulid-toolkit/bootstrap"
	"github.com/aatuh/ulid-toolkit/clock"
	"github.com/aatuh/ulid-toolkit/config"
	"github.com/aatuh/ulid-toolkit/entropy"
	"github.com/aatuh/ulid-toolkit/health"
	"github.com/aatuh/ulid-toolkit/idgen"
	"github.com/aatuh/ulid-toolkit/logzap"
	metricsmw "github.com/aatuh/ulid-toolkit/middleware/metrics"
	"github.com/aatuh/ulid-toolkit/mint"
)

func main() {
	cfg := config.MustLoadFromEnv()
	log := logzap.NewWithLevel(cfg.LogLevel)

	clk := clock.NewSystemClock()
	ent := entropy.NewCryptoSource()
	gen := idgen.New(idgen.WithClock(clk), idgen.WithEntropy(ent))

	rec := metricsmw.NewRecorder(nil)
	r := bootstrap.NewDefaultRouter(log, rec, bootstrap.RouterOptions{
		CORSOrigins:  cfg.Origins(),
		RateCapacity: cfg.RateCapacity,
		RateRefill:   cfg.RateRefill,
		Timeout:      time.Duration(cfg.RequestTimeout) * time.Millisecond,
	})

	hm := health.New()
	hm.RegisterChecker(health.NewClockChecker(clk))
	hm.RegisterChecker(health.NewEntropyChecker(ent))
	bootstrap.MountSystemEndpoints(r, health.NewHandler(hm))

	mint.NewHandler(gen, rec, cfg.MaxCount).RegisterRoutes(r)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.StartServer(ctx, cfg.Addr, r, log); err != nil {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
