// cmd/web/main.go
//
// Halyard – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load configuration (dotenv → conf/global.yaml → HALYARD_ env vars).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Mount every registered component's routes on a chi router, wrapped
//     with request-ID and security-header middleware (plus ForceHTTPS when
//     configured).
//
//  4. Expose Prometheus /metrics.
//
//  5. Serve with hardened timeouts; SIGINT/SIGTERM drain via graceful
//     shutdown.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/yanizio/halyard/internal/component"
	"github.com/yanizio/halyard/internal/config"
	"github.com/yanizio/halyard/internal/logger"
	"github.com/yanizio/halyard/internal/middleware"
	"github.com/yanizio/halyard/internal/server"

	_ "github.com/yanizio/halyard/components/albums" // demo component
)

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Paths.Root, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	//
	// ── 1.  Router: components + metrics ────────────────────────────────
	//
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Handle("/metrics", promhttp.Handler())

	for _, c := range component.All() {
		logOut.Infow("component online", "component", c.Name())
		r.Mount("/", c.Routes())
	}

	var root http.Handler = middleware.Security(r)
	if cfg.HTTP.ForceHTTPS {
		root = middleware.ForceHTTPS(root)
	}

	//
	// ── 2.  Serve with graceful shutdown ────────────────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, root)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logOut.Fatalw("server failed", "err", err)
	}
	logOut.Infow("server drained")
}
