package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/snnyvrz/bookcatalog/internal/config"
	"github.com/snnyvrz/bookcatalog/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	defaultMaxAttempts     = 10
	defaultDelayBetweenTry = 2 * time.Second
)

func dialector(cfg *config.Config) gorm.Dialector {
	if cfg.DBDriver == config.DriverPostgres {
		return postgres.Open(cfg.DSN())
	}
	// Foreign keys are off by default in sqlite.
	return sqlite.Open(cfg.DBPath + "?_foreign_keys=on")
}

func ConnectWithRetry(ctx context.Context, cfg *config.Config, log logger.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if cfg.GinMode == "debug" {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	var err error

	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		var db *gorm.DB
		db, err = gorm.Open(dialector(cfg), gormCfg)
		if err == nil {
			sqlDB, err2 := db.DB()
			if err2 == nil {
				pingErr := sqlDB.PingContext(ctx)
				if pingErr == nil {
					return db, nil
				}
				err = pingErr
			} else {
				err = err2
			}
		}

		log.Warn("db not ready", logger.Data{
			"attempt":      attempt,
			"max_attempts": defaultMaxAttempts,
			"driver":       cfg.DBDriver,
			"error":        err.Error(),
		})

		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case <-time.After(defaultDelayBetweenTry):
		}
	}

	return nil, errors.Wrapf(err, "could not connect to db after %d attempts", defaultMaxAttempts)
}

// Migrate creates the catalog tables when they are missing.
func Migrate(db *gorm.DB) error {
	return errors.WithStack(db.AutoMigrate(&model.Genre{}, &model.Author{}, &model.Book{}))
}
