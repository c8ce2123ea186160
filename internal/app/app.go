// Package app wires storage, handlers and servers into the running API.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/georgemunganga/storefront-api/internal/apidocs"
	"github.com/georgemunganga/storefront-api/internal/bootstrap"
	"github.com/georgemunganga/storefront-api/internal/config"
	"github.com/georgemunganga/storefront-api/internal/health"
	"github.com/georgemunganga/storefront-api/internal/modules/category"
	"github.com/georgemunganga/storefront-api/internal/modules/customer"
	"github.com/georgemunganga/storefront-api/internal/modules/vendor"
	"github.com/georgemunganga/storefront-api/internal/platform/httpx"
)

// NewRouter builds the API router over the given repositories. A non-nil
// docs handler is served at apidocs.Path.
func NewRouter(repos *Repositories, docs http.Handler, metrics *httpx.Metrics, logger *log.Entry) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(httpx.RequestID)
	router.Use(httpx.RequestLogger(logger.WithField("layer", "http")))
	router.Use(metrics.Middleware)
	router.Use(middleware.Recoverer)

	category.NewHandler(category.NewService(repos.Categories, logger)).RegisterRoutes(router)
	customer.NewHandler(customer.NewService(repos.Customers, logger)).RegisterRoutes(router)
	vendor.NewHandler(vendor.NewService(repos.Vendors, logger)).RegisterRoutes(router)
	if docs != nil {
		router.Method(http.MethodGet, apidocs.Path, docs)
	}

	return router
}

// NewMetricsHandler serves /metrics, /healthz and /livez.
func NewMetricsHandler(gatherer prometheus.Gatherer, healthHandler http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", health.LivenessHandler)
	return mux
}

// Run serves the API until ctx is cancelled or a server fails.
func Run(ctx context.Context, cfg config.Config, root *log.Logger) error {
	logger := root.WithField("component", "app")

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.Close(); err != nil {
			logger.WithError(err).Warn("failed to close storage")
		}
	}()

	if cfg.SeedData {
		if err := bootstrap.NewLoader(repos.Categories, repos.Customers, repos.Vendors, logger).Run(ctx); err != nil {
			return fmt.Errorf("seed data: %w", err)
		}
	}

	doc, err := apidocs.Load(ctx)
	if err != nil {
		return err
	}
	docs, err := apidocs.Handler(doc)
	if err != nil {
		return err
	}

	healthHandler := health.NewHandler()
	healthHandler.Register("storage", repos.StorageChecker())

	metrics := httpx.NewMetrics(prometheus.DefaultRegisterer)
	apiSrv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           NewRouter(repos, docs, metrics, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	metricsSrv := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           NewMetricsHandler(prometheus.DefaultGatherer, healthHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go serve(apiSrv, "api", logger, errCh)
	go serve(metricsSrv, "metrics", logger, errCh)

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping servers")
		shutdownHTTP(metricsSrv, cfg.ShutdownTimeout, logger)
		shutdownHTTP(apiSrv, cfg.ShutdownTimeout, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(metricsSrv, cfg.ShutdownTimeout, logger)
		shutdownHTTP(apiSrv, cfg.ShutdownTimeout, logger)
		return err
	}
}

func serve(srv *http.Server, name string, logger *log.Entry, errCh chan<- error) {
	logger.WithFields(log.Fields{"server": name, "addr": srv.Addr}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errCh <- fmt.Errorf("%s server: %w", name, err)
	}
}

func shutdownHTTP(srv *http.Server, timeout time.Duration, logger *log.Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).WithField("addr", srv.Addr).Warn("server shutdown with error")
	}
}
