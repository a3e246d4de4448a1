package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/procurement-mock/internal/catalog"
	"github.com/mamadbah2/procurement-mock/internal/config"
	"github.com/mamadbah2/procurement-mock/internal/scheduler"
	"github.com/mamadbah2/procurement-mock/internal/server/handlers"
	"github.com/mamadbah2/procurement-mock/internal/server/router"
	"github.com/mamadbah2/procurement-mock/internal/service/procurement"
	"github.com/mamadbah2/procurement-mock/internal/service/reporting"
	"github.com/mamadbah2/procurement-mock/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	variant, err := catalog.Lookup(cfg.Generator.Variant)
	if err != nil {
		baseLogger.Fatal("failed to resolve catalog variant", zap.Error(err))
	}

	procurementSvc := procurement.NewService(variant, procurement.Options{
		PaginationTotal: cfg.Generator.PaginationTotal,
		MaxAttempts:     cfg.Generator.MaxAttempts,
	}, baseLogger.Named("svc.procurement"))
	reportingSvc := reporting.NewService(procurementSvc, baseLogger.Named("svc.reporting"))

	handler := handlers.NewPurchaseOrderHandler(procurementSvc, baseLogger.Named("handlers.procurement"))
	engine := router.New(handler, cfg.Server.CORSAllowedOrigins, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Digest, reportingSvc, reporting.Format, baseLogger.Named("scheduler"))
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("variant", variant.Name),
			zap.String("strategy", string(variant.Strategy)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
