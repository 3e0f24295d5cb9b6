package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	_ "contributorsboard/docs"
	"contributorsboard/internal/adapters/render"
	"contributorsboard/internal/adapters/twitter"
	httpdelivery "contributorsboard/internal/delivery/http"
	"contributorsboard/internal/delivery/http/controllers"
	"contributorsboard/internal/delivery/http/middleware"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := loadBoard(ctx)
	if err != nil {
		return err
	}
	defer b.close()
	cfg, logger := b.cfg, b.logger

	renderer, err := render.NewRenderer()
	if err != nil {
		return err
	}
	embeds := twitter.NewOEmbedFetcher(&http.Client{Timeout: cfg.RequestTimeout}, logger, twitter.OEmbedConfig{
		MaxAttempts: cfg.EmbedMaxAttempts,
		RetryDelay:  cfg.EmbedRetryDelay,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		return err
	}

	router := httpdelivery.NewRouter(
		controllers.NewBoardController(logger, b.service, embeds, renderer, cfg.EnableExternal),
		controllers.NewAPIController(logger, b.service),
		render.StaticFS(),
		metrics.Handler(),
	)
	handler := middleware.LoggingMiddleware(logger,
		middleware.CORS(cfg.CORSAllowedOrigins, metrics.Middleware(router)))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment, "data_source", cfg.DataSource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "err", err)
		return err
	}
	return nil
}
