package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-negocios/internal/db"
	"github.com/BruksfildServices01/agenda-negocios/internal/logger"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "agenda",
		Short:        "Agenda de negócios: API, migrações e cargas de dados",
		SilenceUsage: true,
	}

	cmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		importCitiesCmd(),
		seedCmd(),
	)
	return cmd
}

// bootstrap loads config, sets up logging and opens the database.
// The returned cleanup closes the pool.
func bootstrap() (*config.Config, *gorm.DB, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Setup(cfg.LogLevel, cfg.LogPretty)

	db, err := dbpkg.Open(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Warn().Err(err).Msg("closing database")
			}
		}
	}
	return cfg, db, cleanup, nil
}
