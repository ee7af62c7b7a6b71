package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"samvidhan-be/internal/bootstrap"
	"samvidhan-be/internal/config"
	"samvidhan-be/internal/pkg/logger"
	"samvidhan-be/internal/server"
	"samvidhan-be/internal/tracer"
	"samvidhan-be/pkg/database"
)

func main() {
	// 1. Configuration and logging
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	if cfg.IsProduction() && cfg.App.ExposeOTP {
		sysLogger.Warn("MAIN", "APP_EXPOSE_OTP is enabled in production", nil)
	}

	shutdownTracer := tracer.InitTracer(cfg.App.OtelEnabled, sysLogger)
	defer shutdownTracer(context.Background())

	// 2. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.Database.Debug)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Dependencies
	container, err := bootstrap.NewContainer(gormDB, cfg, sysLogger)
	if err != nil {
		log.Panicf("Unable to build container: %v", err)
	}
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Background workers
	container.Start(ctx)

	// 5. HTTP
	srv := server.New(cfg, container)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sysLogger.Error("MAIN", "Graceful shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	if err := srv.Run(); err != nil {
		sysLogger.Error("MAIN", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
