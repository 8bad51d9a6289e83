package main

// @title           Book Catalog API
// @version         1.0
// @description     List and delete books of the catalog.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/robinjoseph08/golib/signals"
	"github.com/snnyvrz/bookcatalog/internal/config"
	"github.com/snnyvrz/bookcatalog/internal/db"
	"github.com/snnyvrz/bookcatalog/internal/docs"
	"github.com/snnyvrz/bookcatalog/internal/handler"
	"github.com/snnyvrz/bookcatalog/internal/repository"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()
	ctx := context.Background()
	log := logger.New()

	log.Info("starting book catalog", logger.Data{"version": appVersion})

	cfg, err := config.Load()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	settingsPath := config.SettingsPath()
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		log.Err(err).Fatal("settings error")
	}
	if !settings.FileFound {
		log.Warn("settings file not found, using defaults", logger.Data{"settings": settingsPath})
	}

	gin.SetMode(cfg.GinMode)

	database, err := db.ConnectWithRetry(ctx, cfg, log)
	if err != nil {
		log.Err(err).Fatal("database error")
	}

	if err := db.Migrate(database); err != nil {
		log.Err(err).Fatal("migration error")
	}

	if cfg.DBSeed {
		seeded, err := db.Seed(ctx, database)
		if err != nil {
			log.Err(err).Fatal("seed error")
		}
		log.Info("seed finished", logger.Data{"inserted": seeded})
	}

	docs.SwaggerInfo.Host = settings.Addr()

	bookHandler := handler.NewBookHandler(repository.NewGormBookRepository(database))
	healthHandler := handler.NewHealthHandler(database, startTime, appVersion)

	srv := &http.Server{
		Addr:              settings.Addr(),
		Handler:           handler.NewRouter(log, bookHandler, healthHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	graceful := signals.Setup()

	go func() {
		log.Info("server started", logger.Data{
			"addr":     srv.Addr,
			"settings": settingsPath,
			"driver":   cfg.DBDriver,
		})

		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Err(err).Fatal("server stopped")
		}
		log.Info("server stopped")
	}()

	<-graceful
	log.Info("starting graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Err(err).Error("server shutdown error")
	}
	log.Info("server shutdown")

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Err(err).Error("database close error")
		}
	}
	log.Info("database closed")
}
