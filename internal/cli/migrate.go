package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	dbpkg "github.com/BruksfildServices01/agenda-negocios/internal/db"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, db, cleanup, err := bootstrap()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := dbpkg.Migrate(db); err != nil {
				return err
			}
			log.Info().Msg("schema up to date")
			return nil
		},
	}
}
