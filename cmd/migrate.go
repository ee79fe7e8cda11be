package cmd

import (
	"github.com/spf13/cobra"

	"hotelops/config"
)

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer log.Sync()

			if err := config.Migrate(db); err != nil {
				return err
			}
			log.Info("database schema migrated")
			return nil
		},
	}
}
