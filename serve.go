package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/SergeyParamoshkin/articles/internal/logging"
	"github.com/SergeyParamoshkin/articles/internal/server"
	"github.com/SergeyParamoshkin/articles/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and diagnostics servers",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer logger.Sync() // flushes buffer, if any
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InstallTracing(telemetry.TracingOptions{
		ServiceName: ServiceName,
		Exporter:    cfg.Trace.Exporter,
		SampleRatio: cfg.Trace.SampleRatio,
	})
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			sugar.Errorw("flush traces", "error", err)
		}
	}()

	exporter, err := telemetry.NewPrometheusExporter()
	if err != nil {
		sugar.Errorw("failed to initialize prometheus exporter", "error", err)

		return err
	}

	app, err := newApp(ctx, cfg, sugar)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			sugar.Errorw("close store", "error", err)
		}
	}()

	r := server.NewRouter(app.RouterOptions(telemetry.NewMetrics(ServiceName)))

	diagRouter := chi.NewRouter()
	diagRouter.Get("/metrics", exporter.ServeHTTP)

	srv := newHTTPServer(cfg.Addr, r)
	diag := newHTTPServer(cfg.DiagAddr, diagRouter)

	errs := make(chan error, 2)
	for _, s := range []*http.Server{srv, diag} {
		s := s
		go func() {
			sugar.Infow("listening", "addr", s.Addr)
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs <- err
			}
		}()
	}

	select {
	case err = <-errs:
		sugar.Errorw("server error", "error", err)
	case <-ctx.Done():
		sugar.Infow("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	for _, s := range []*http.Server{srv, diag} {
		if serr := s.Shutdown(shutdownCtx); serr != nil {
			sugar.Errorw("shutdown", "addr", s.Addr, "error", serr)
		}
	}

	return err
}

func newHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
