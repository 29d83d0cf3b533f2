package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"portfolio/internal/database"
)

var migrationFile string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the SQL migration file to the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.ConnectDB(appConfig, logger)
		if err != nil {
			return err
		}
		defer db.CloseDB()

		path := appConfig.MigrationsPath
		if migrationFile != "" {
			path = migrationFile
		}
		if err := db.RunMigrations(path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", path)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVarP(&migrationFile, "file", "f", "", "migration file (default MIGRATIONS_PATH)")
}
