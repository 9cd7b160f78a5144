package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Aleph-Alpha/geoloc/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "geoloc",
	Short: "Location import and proximity search over a Redis GEO index",
	Long:  "Repairs and sanitizes location records from JSON or CSV, imports them into a Redis GEO index with per-location attribute hashes, and answers nearest-location queries.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c
		return nil
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
