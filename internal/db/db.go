package db

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/BruksfildServices01/agenda-negocios/internal/config"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

// Open connects to the configured database. Postgres is the production
// engine; sqlite serves local runs and tests.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err = OpenSQLite(cfg.DBUrl, gcfg)
	default:
		gcfg.PrepareStmt = true
		db, err = gorm.Open(postgres.Open(cfg.DBUrl), gcfg)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.OTEL.Enabled {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			return nil, fmt.Errorf("gorm tracing: %w", err)
		}
	}

	if cfg.DBDriver == config.DriverSQLite {
		return db, nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// OpenSQLite opens a sqlite database with foreign keys on. The pool is pinned
// to one long-lived connection: the pragma is per connection and an in-memory
// database lives only as long as its connection.
func OpenSQLite(dsn string, gcfg *gorm.Config) (*gorm.DB, error) {
	if gcfg == nil {
		gcfg = &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true}
	}

	db, err := gorm.Open(sqlite.Open(dsn), gcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}
	db.Exec("PRAGMA busy_timeout = 5000")

	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// linhas antigas sem fuso recebem o padrão
	res := db.Exec(`UPDATE businesses SET timezone = 'America/Sao_Paulo' WHERE timezone IS NULL OR timezone = ''`)
	if res.Error != nil {
		return fmt.Errorf("backfill timezone: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		log.Info().Int64("rows", res.RowsAffected).Msg("business timezone backfilled")
	}
	return nil
}
