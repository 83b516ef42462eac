package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/joshuamatosdev/insight-sub001/internal/config"
	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/contract/store"
	"github.com/joshuamatosdev/insight-sub001/internal/database"
	"github.com/joshuamatosdev/insight-sub001/internal/events"
	insightHttp "github.com/joshuamatosdev/insight-sub001/internal/http"
	contractHandler "github.com/joshuamatosdev/insight-sub001/internal/http/contract"
	authmw "github.com/joshuamatosdev/insight-sub001/internal/http/middleware"
	reportHandler "github.com/joshuamatosdev/insight-sub001/internal/http/report"
	"github.com/joshuamatosdev/insight-sub001/internal/importer"
	"github.com/joshuamatosdev/insight-sub001/internal/report"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return err
	}

	publisher, err := events.New(cfg.NATS.URL)
	if err != nil {
		return err
	}
	defer publisher.Close()

	var (
		contractService = contract.NewService(
			store.New(db),
			contract.WithPublisher(publisher),
			contract.WithDueSoonWindow(cfg.Deliverables.DueSoonWindow),
		)
		importService = importer.NewService()
	)

	var archiver reportHandler.Archiver
	if cfg.Reports.S3Bucket != "" {
		a, err := report.NewS3Archive(ctx, cfg.Reports.S3Bucket, cfg.Reports.S3Prefix, cfg.Reports.S3Region, cfg.Reports.S3Endpoint)
		if err != nil {
			return err
		}

		archiver = a
		slog.Info("archiving reports", "bucket", cfg.Reports.S3Bucket, "prefix", cfg.Reports.S3Prefix)
	}

	opts := insightHttp.Options{AllowedOrigins: cfg.CORS.AllowedOrigins}
	if cfg.Auth.Secret != "" {
		opts.Auth = authmw.NewAuth(cfg.Auth.Secret)
	} else {
		slog.Warn("AUTH_SECRET is not set; the API is unauthenticated")
	}

	router := insightHttp.New(
		contractHandler.NewHandler(contractService, importService),
		reportHandler.NewHandler(contractService, archiver),
		opts,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 30*time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "port", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
