package cli

import (
	"github.com/spf13/cobra"

	dbpkg "github.com/BruksfildServices01/agenda-negocios/internal/db"
	"github.com/BruksfildServices01/agenda-negocios/internal/seed"
)

func seedCmd() *cobra.Command {
	opts := seed.DefaultOptions()

	c := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with fake businesses, customers and appointments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, cleanup, err := bootstrap()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := dbpkg.Migrate(db); err != nil {
				return err
			}

			res, err := seed.Run(cmd.Context(), db, opts)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}

	c.Flags().IntVar(&opts.Businesses, "businesses", opts.Businesses, "Businesses to create")
	c.Flags().IntVar(&opts.Customers, "customers", opts.Customers, "Customers per business")
	c.Flags().IntVar(&opts.Services, "services", opts.Services, "Services per business")
	c.Flags().IntVar(&opts.Professionals, "professionals", opts.Professionals, "Professionals per business")
	c.Flags().IntVar(&opts.Appointments, "appointments", opts.Appointments, "Appointments per business")
	c.Flags().Uint64Var(&opts.Seed, "seed", 0, "Random seed (0 = time based)")
	return c
}
