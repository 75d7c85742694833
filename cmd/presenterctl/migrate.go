package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schedule schema if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		logger.Infow("schema is up to date")
		return nil
	},
}
