package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/agenda-negocios/internal/cityimport"
	dbpkg "github.com/BruksfildServices01/agenda-negocios/internal/db"
)

func importCitiesCmd() *cobra.Command {
	var url string
	var purge bool

	c := &cobra.Command{
		Use:   "import-cities",
		Short: "Load the IBGE municipality list into the cities table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, db, cleanup, err := bootstrap()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := dbpkg.Migrate(db); err != nil {
				return err
			}

			if url == "" {
				url = cfg.CitiesURL
			}
			imp := cityimport.NewImporter(db, cityimport.NewClient(url, cfg.CitiesTimeout))

			if purge {
				deleted, err := imp.Purge(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(map[string]int64{"deleted": deleted})
			}

			res, err := imp.Run(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}

	c.Flags().StringVar(&url, "url", "", "Municipalities endpoint (default from CITIES_URL)")
	c.Flags().BoolVar(&purge, "purge", false, "Delete every imported city instead of importing")
	return c
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
